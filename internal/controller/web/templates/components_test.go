package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/jrammler/userdesk/internal/entity"
)

func renderString(t *testing.T, c templ.Component) string {
	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Unexpected render error %q", err)
	}
	return buf.String()
}

func TestButton(t *testing.T) {
	testCases := []struct {
		name     string
		props    ButtonProps
		contains []string
	}{
		{
			name:     "Defaults",
			props:    ButtonProps{Label: "Save"},
			contains: []string{`type="submit"`, `class="btn" data-variant="primary"`, ">Save</button>"},
		},
		{
			name:     "Danger with action",
			props:    ButtonProps{Label: "Delete", Variant: ButtonDanger, FormAction: "/users/1/delete"},
			contains: []string{`data-variant="danger"`, `formaction="/users/1/delete"`},
		},
		{
			name:     "Label is escaped",
			props:    ButtonProps{Label: "<b>"},
			contains: []string{"&lt;b&gt;"},
		},
		{
			name:     "Disabled",
			props:    ButtonProps{Label: "Wait", Disabled: true},
			contains: []string{" disabled>"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			html := renderString(t, Button(tc.props))
			for _, want := range tc.contains {
				if !strings.Contains(html, want) {
					t.Errorf("Expected %q in %q", want, html)
				}
			}
		})
	}
}

func TestPasswordInputUsesToggleScript(t *testing.T) {
	html := renderString(t, PasswordInput(PasswordInputProps{Label: "Password", Name: "password", Required: true}))
	if !strings.Contains(html, `onclick="togglePassword(this)"`) {
		t.Errorf("Expected toggle handler, got %q", html)
	}
	if !strings.Contains(html, `autocomplete="new-password" required>`) {
		t.Errorf("Expected required password input, got %q", html)
	}
}

func TestRoleSelect(t *testing.T) {
	testCases := []struct {
		name             string
		selected         entity.Role
		expectedSelected string
	}{
		{name: "Known role", selected: entity.RoleAdmin, expectedSelected: `<option value="ADMIN" selected>`},
		{name: "Empty role", selected: "", expectedSelected: `<option value="" selected>`},
		{name: "Unknown role", selected: "OWNER", expectedSelected: `<option value="" selected>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			html := renderString(t, RoleSelect(RoleSelectProps{Name: "role", Selected: tc.selected, EmptyLabel: "(unchanged)"}))
			if !strings.Contains(html, tc.expectedSelected) {
				t.Errorf("Expected %q in %q", tc.expectedSelected, html)
			}
			if strings.Count(html, " selected") != 1 {
				t.Errorf("Expected exactly one selected option, got %q", html)
			}
		})
	}
}

func TestPasswordInputVisibility(t *testing.T) {
	hidden := renderString(t, PasswordInput(PasswordInputProps{Label: "Password", Name: "password"}))
	if !strings.Contains(hidden, `type="password"`) || !strings.Contains(hidden, `data-visible="false"`) {
		t.Errorf("Expected hidden password input, got %q", hidden)
	}
	if !strings.Contains(hidden, ">Show</button>") {
		t.Errorf("Expected Show toggle, got %q", hidden)
	}

	visible := renderString(t, PasswordInput(PasswordInputProps{Label: "Password", Name: "password", Visible: true}))
	if !strings.Contains(visible, `type="text"`) || !strings.Contains(visible, `data-visible="true"`) {
		t.Errorf("Expected visible password input, got %q", visible)
	}
	if !strings.Contains(visible, ">Hide</button>") {
		t.Errorf("Expected Hide toggle, got %q", visible)
	}
}

func TestTextInputOmitsEmptyAttributes(t *testing.T) {
	html := renderString(t, TextInput(InputProps{Label: "Email", Name: "email"}))
	if strings.Contains(html, "value=") || strings.Contains(html, "placeholder=") {
		t.Errorf("Expected no empty attributes, got %q", html)
	}
	if !strings.Contains(html, `type="text"`) {
		t.Errorf("Expected default text type, got %q", html)
	}
}

func TestConfirmDialogWiresCallbacks(t *testing.T) {
	html := renderString(t, ConfirmDialog(DialogProps{
		Title:         "Delete user",
		Message:       "Sure?",
		CloseHref:     "/users/4",
		ConfirmAction: "/users/4/delete",
	}))
	if !strings.Contains(html, `href="/users/4"`) {
		t.Errorf("Expected close link, got %q", html)
	}
	if !strings.Contains(html, `action="/users/4/delete"`) {
		t.Errorf("Expected confirm action, got %q", html)
	}
	if !strings.Contains(html, ">Confirm</button>") {
		t.Errorf("Expected default confirm label, got %q", html)
	}
}

func TestUserListPreservesOrder(t *testing.T) {
	html := renderString(t, UserList([]entity.User{
		{Id: 2, Email: "second@x.com", Role: entity.RoleUser},
		{Id: 1, Email: "first@x.com", Role: entity.RoleAdmin},
	}))
	second := strings.Index(html, "second@x.com")
	first := strings.Index(html, "first@x.com")
	if second < 0 || first < 0 || second > first {
		t.Errorf("Expected users rendered in given order, got %q", html)
	}
}

func TestUserListNameColumn(t *testing.T) {
	html := renderString(t, UserList([]entity.User{{Id: 1, Email: "nameless@x.com"}}))
	if strings.Contains(html, "<td> </td>") {
		t.Errorf("Expected no blank name cell, got %q", html)
	}
	if strings.Count(html, "nameless@x.com") != 2 {
		t.Errorf("Expected email to stand in for the missing name, got %q", html)
	}
}

func TestLayoutLinksAssets(t *testing.T) {
	html := renderString(t, Login(false))
	if !strings.Contains(html, `<script src="/static/userdesk.js"></script>`) {
		t.Errorf("Expected toggle script to be linked, got %q", html)
	}
	if strings.Contains(html, "/logout") {
		t.Errorf("Expected no logout link on the login page, got %q", html)
	}
}

func TestUserFormModes(t *testing.T) {
	create := renderString(t, UserForm(UserFormProps{}))
	if !strings.Contains(create, `action="/users"`) || !strings.Contains(create, ">Create</button>") {
		t.Errorf("Expected create form, got %q", create)
	}

	user := entity.User{Id: 5, Email: "a@b.com", Role: entity.RoleAdmin}
	edit := renderString(t, UserForm(UserFormProps{User: &user, Error: "backend down"}))
	if !strings.Contains(edit, `action="/users/5"`) || !strings.Contains(edit, `value="a@b.com"`) {
		t.Errorf("Expected edit form, got %q", edit)
	}
	if !strings.Contains(edit, `<option value="ADMIN" selected>`) {
		t.Errorf("Expected current role selected, got %q", edit)
	}
	if !strings.Contains(edit, `action="/users/5"`) || !strings.Contains(edit, "(unchanged)") {
		t.Errorf("Expected unchanged role option, got %q", edit)
	}
	if !strings.Contains(edit, "backend down") {
		t.Errorf("Expected error message, got %q", edit)
	}
}
