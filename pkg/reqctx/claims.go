package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// AuthClaims abstracts the verified token payload so the authorization
// layer does not depend on a concrete token format.
type AuthClaims interface {
	GetUserID() uuid.UUID
	GetSessionID() *uuid.UUID

	// GetRole returns the staff role embedded in the token, or "".
	GetRole() string

	// GetTokenType returns "access" or "refresh".
	GetTokenType() string

	IsExpired() bool
}

// WithClaims stores verified claims in the context. Only authenticated
// requests carry claims.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, keyClaims, claims)
}

// ClaimsFromContext returns the claims, or nil for unauthenticated requests.
func ClaimsFromContext(ctx context.Context) AuthClaims {
	claims, ok := ctx.Value(keyClaims).(AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// UserIDFromContext extracts the authenticated user's ID from claims.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.GetUserID(), true
}
