package authz

import (
	"context"
	"fmt"
	"strings"
)

const bearerPrefix = "Bearer "

// TokenVerifier checks a signed credential and returns the identity it carries.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// Resolver turns an Authorization header into a Principal.
type Resolver struct {
	verifier TokenVerifier
}

func NewResolver(v TokenVerifier) *Resolver {
	return &Resolver{verifier: v}
}

// Resolve fails with ErrUnauthenticated when the header is missing, is not a
// bearer credential, or the verifier rejects the token.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (Principal, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return Principal{}, fmt.Errorf("%w: bearer credential required", ErrUnauthenticated)
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if raw == "" {
		return Principal{}, fmt.Errorf("%w: empty bearer credential", ErrUnauthenticated)
	}
	p, err := r.verifier.Verify(ctx, raw)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !p.Role.Valid() {
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrUnauthenticated, p.Role)
	}
	return p, nil
}
