package entities

import "strings"

type Role string

const (
	RolePublisher  Role = "publisher"
	RoleAdvertiser Role = "advertiser"
	RoleAdmin      Role = "admin"
)

// Session is the authenticated caller identity carried through every request.
// It is resolved once at the transport edge and passed explicitly; no handler
// reads credentials on its own.
type Session struct {
	UserID string
	Role   Role
}

func (s Session) Valid() bool {
	return strings.TrimSpace(s.UserID) != "" && IsSupportedRole(s.Role)
}

func IsSupportedRole(role Role) bool {
	switch role {
	case RolePublisher, RoleAdvertiser, RoleAdmin:
		return true
	default:
		return false
	}
}
