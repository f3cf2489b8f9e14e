package providers

import "context"

// AuthProvider verifies the token a client presents at login.
type AuthProvider interface {
	VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error)
}

// TokenClaims identifies the user a session result is recorded for.
type TokenClaims struct {
	UID string `json:"uid"`
}
