package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var _ AuthProvider = &AnonymousAuthProvider{}

// AnonymousAuthProvider accepts any token and uses it as the user ID, minting
// a random guest ID for an empty token. It is meant for local play and tests.
type AnonymousAuthProvider struct{}

func NewAnonymousAuthProvider() *AnonymousAuthProvider {
	return &AnonymousAuthProvider{}
}

func (p *AnonymousAuthProvider) VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error) {
	uid := strings.TrimSpace(idToken)
	if uid == "" {
		uid = "guest-" + uuid.NewString()
	}
	if len(uid) > 128 {
		return nil, fmt.Errorf("token too long")
	}
	return &TokenClaims{
		UID: uid,
	}, nil
}
