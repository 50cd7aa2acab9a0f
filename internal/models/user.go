package models

import "time"

// Role is the server-side role attached to a user. The known values are
// enumerated below; unrecognized strings round-trip unchanged so a newer
// server does not break an older console.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCollector Role = "collector"
	RoleRegular   Role = "regular"
)

// Known reports whether the role is one the console understands.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleCollector, RoleRegular:
		return true
	}
	return false
}

// UserProfile is the authoritative profile returned by GET /users/me and the
// user CRUD endpoints. The token's embedded role is only a hint; this is the
// source of truth for UI decisions.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      Role      `json:"role"`
	CompanyID string    `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
