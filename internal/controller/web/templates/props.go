package templates

import (
	"fmt"
	"strconv"

	"github.com/jrammler/userdesk/internal/entity"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
)

type ButtonProps struct {
	Label   string
	Variant ButtonVariant
	// Type defaults to "submit".
	Type string
	// FormAction overrides the action of the enclosing form.
	FormAction string
	Disabled   bool
}

func (p ButtonProps) buttonType() string {
	if p.Type == "" {
		return "submit"
	}
	return p.Type
}

func (p ButtonProps) variant() ButtonVariant {
	if p.Variant == "" {
		return ButtonPrimary
	}
	return p.Variant
}

type InputProps struct {
	Label       string
	Name        string
	Value       string
	Type        string
	Placeholder string
	Required    bool
}

func (p InputProps) inputType() string {
	if p.Type == "" {
		return "text"
	}
	return p.Type
}

type PasswordInputProps struct {
	Label    string
	Name     string
	Required bool
	// Visible is the initial state of the toggle.
	Visible bool
}

func (p PasswordInputProps) inputType() string {
	if p.Visible {
		return "text"
	}
	return "password"
}

func (p PasswordInputProps) toggleLabel() string {
	if p.Visible {
		return "Hide"
	}
	return "Show"
}

type RoleSelectProps struct {
	Name     string
	Selected entity.Role
	// EmptyLabel names the option that leaves the role unset. It is selected
	// whenever Selected is not a known role.
	EmptyLabel string
}

type DialogProps struct {
	Title   string
	Message string
	// CloseHref is where cancelling navigates to.
	CloseHref string
	// ConfirmAction is the form action posted on confirm.
	ConfirmAction string
	ConfirmLabel  string
}

func (p DialogProps) confirmLabel() string {
	if p.ConfirmLabel == "" {
		return "Confirm"
	}
	return p.ConfirmLabel
}

type UserFormProps struct {
	// User is nil when creating.
	User  *entity.User
	Error string
}

func (p UserFormProps) creating() bool {
	return p.User == nil
}

func (p UserFormProps) current() entity.User {
	if p.User == nil {
		return entity.User{}
	}
	return *p.User
}

func (p UserFormProps) title() string {
	if p.creating() {
		return "New user"
	}
	return fmt.Sprintf("Edit user %d", p.User.Id)
}

func (p UserFormProps) action() string {
	if p.creating() {
		return "/users"
	}
	return userURL(p.User.Id, "")
}

func (p UserFormProps) cancelHref() string {
	return p.action()
}

func (p UserFormProps) submitLabel() string {
	if p.creating() {
		return "Create"
	}
	return "Save"
}

func (p UserFormProps) roleEmptyLabel() string {
	if p.creating() {
		return "(default)"
	}
	return "(unchanged)"
}

func userURL(id int, suffix string) string {
	return "/users/" + strconv.Itoa(id) + suffix
}

func deleteMessage(user entity.User) string {
	return fmt.Sprintf("Delete %s (id %d)? This cannot be undone.", user.Email, user.Id)
}
