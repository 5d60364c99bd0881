package sessionservice

import (
	"time"

	"admarket/contexts/identity-access/session-service/application"
)

// Module is the session-service composition root exposed to runtime wiring.
type Module struct {
	Tokens application.TokenService
}

func NewModule(secret string, ttl time.Duration) Module {
	return Module{
		Tokens: application.NewTokenService(secret, ttl),
	}
}
