package domain

import "time"

type User struct {
	ID                string
	Email             string // lowercased, unique
	FullName          string
	PasswordHash      string   // argon2 encoded
	RoleIDs           []string // resolved to roles at decision time
	PrimaryRoleID     string   // optional
	Departments       []string
	IsActive          bool
	LastLogin         *time.Time
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ChangedPasswordAfter reports whether the password was changed after t,
// which invalidates access tokens issued at t.
func (u User) ChangedPasswordAfter(t time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.Truncate(time.Second).After(t)
}

type BootstrapData struct {
	Email    string
	FullName string
	Password string
}
