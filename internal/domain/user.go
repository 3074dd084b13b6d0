package domain

import (
	"strings"
	"time"
)

// User is the admin account mirror kept alongside the content collections.
// The password hash never leaves the identity layer; API responses must
// use a redacted view.
type User struct {
	ID           string    `json:"id,omitempty"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
}

func (u *User) Validate() error {
	email := strings.TrimSpace(u.Email)
	if email == "" {
		return Required("email")
	}
	if !strings.Contains(email, "@") {
		return Invalid("email", "not an email address")
	}
	return nil
}
