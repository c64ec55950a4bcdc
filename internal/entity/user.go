package entity

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var Roles = []Role{RoleUser, RoleAdmin}

func (r Role) IsKnown() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the read model owned by the backend. Timestamps are kept in
// whatever format the backend sends them.
type User struct {
	Id        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Email
}

// UserPayload is the request body for create and update. Unset fields are
// left out so that an update only touches what was set. The names are
// pointers so that an update can clear them by sending "".
type UserPayload struct {
	Email     string  `json:"email,omitempty"`
	Password  string  `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      Role    `json:"role,omitempty"`
}

func (p UserPayload) IsEmpty() bool {
	return p.Email == "" && p.Password == "" && p.FirstName == nil && p.LastName == nil && p.Role == ""
}

// Optional returns nil for an empty string.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
