// Package models defines the account and session types shared by the
// AuthMaster client layers.
package models

import "time"

// Role is the authorization flag stored with an account. It is recorded
// but not enforced anywhere in the client.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is the public projection of a registered account: everything
// except the credential digest, which stays inside the account store.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberSince formats CreatedAt the way the dashboard shows it, e.g. "March 2026".
func (a Account) MemberSince() string {
	return a.CreatedAt.Format("January 2006")
}
