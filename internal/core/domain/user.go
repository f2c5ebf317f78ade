package domain

import (
	"strings"
	"unicode"
)

// User is the identity persisted alongside the bearer token.
type User struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"tokenType,omitempty"`
}

// Initials returns the two-letter avatar label for the admin sidebar.
func (u *User) Initials() string {
	if u == nil {
		return "AD"
	}
	src := u.Name
	if strings.TrimSpace(src) == "" {
		src = u.Email
	}
	if out := initials(src); out != "" {
		return out
	}
	return "AD"
}

// initials returns the first two letters or digits of src, upper-cased.
func initials(src string) string {
	var out []rune
	for _, r := range src {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToUpper(r))
			if len(out) == 2 {
				break
			}
		}
	}
	return string(out)
}

// LoginResult is a successful credential exchange.
type LoginResult struct {
	Token string
	User  User
}

// Credentials is the login form.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks the login form before any network call.
func (c Credentials) Validate() error {
	f := FieldErrors{}
	if f.required("email", c.Email, "Email is required") {
		f.match("email", c.Email, emailPattern, "Invalid email")
	}
	f.required("password", c.Password, "Password is required")
	return f.Err()
}
