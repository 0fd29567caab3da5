// Package auth implements the optional bearer-token check for the metrics
// endpoint. Protection is opt-in: when no secret is configured every request
// is allowed. This mirrors how the probe is deployed on trusted networks and
// must not be tightened to deny-by-default.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

const bearerPrefix = "Bearer "

// UnauthorizedError reports a missing, malformed, or incorrect credential.
type UnauthorizedError struct {
	Reason string
}

func (e UnauthorizedError) Error() string {
	return e.Reason
}

// Guard validates Authorization headers against a single static secret.
// The zero value (empty secret) allows everything.
type Guard struct {
	secret string
}

// NewGuard creates a Guard for the given secret. An empty secret disables
// authentication entirely.
func NewGuard(secret string) *Guard {
	return &Guard{secret: secret}
}

// Enabled reports whether a secret is configured.
func (g *Guard) Enabled() bool {
	return g.secret != ""
}

// Check validates the raw Authorization header value. It is pure: no side
// effects, no logging. The header must be "Bearer <secret>" with the scheme
// matched case-sensitively; surrounding whitespace on the token is ignored.
func (g *Guard) Check(authorization string) error {
	if !g.Enabled() {
		return nil
	}
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return UnauthorizedError{Reason: "Missing Authorization Bearer token"}
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if subtle.ConstantTimeCompare([]byte(token), []byte(g.secret)) != 1 {
		return UnauthorizedError{Reason: "Invalid token"}
	}
	return nil
}

// String implements fmt.Stringer without leaking the secret.
func (g *Guard) String() string {
	return fmt.Sprintf("auth.Guard{enabled: %t}", g.Enabled())
}
