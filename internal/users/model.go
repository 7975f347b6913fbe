package users

import "time"

// Roles recognized by the portal.
const (
	RoleAdmin     = "ADMIN"
	RoleRecruiter = "RECRUITER"
	RoleCandidate = "CANDIDATE"
	RoleUser      = "USER"
)

// ValidRole reports whether role is one of the portal's fixed roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRecruiter, RoleCandidate, RoleUser:
		return true
	}
	return false
}

// User is a portal account. PasswordHash never leaves the package boundary
// unhashed; DTO conversion drops it entirely.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	UUID         string
	Role         string
	IsLocked     bool
	CreatedOn    time.Time
	LastLoginOn  *time.Time
}
