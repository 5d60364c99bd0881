package entities

type ActorRole string

const (
	RolePublisher  ActorRole = "publisher"
	RoleAdvertiser ActorRole = "advertiser"
	RoleAdmin      ActorRole = "admin"
)

// Actor is the authenticated caller, resolved from the session token at the
// HTTP edge and passed into every operation explicitly. Admin acts as an
// override authority equivalent to both marketplace roles.
type Actor struct {
	UserID string
	Role   ActorRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the given user, or an admin override.
func (a Actor) Owns(userID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == userID)
}
