package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/pkg/reqctx"
)

var ErrNoSubjectInContext = errors.New("no subject found in context")

// ClaimsProvider is the minimal interface a claims type needs for
// authorization. reqctx.AuthClaims satisfies it.
type ClaimsProvider interface {
	GetUserID() uuid.UUID
}

type ctxKeyClaimsProvider struct{}

// WithClaimsProvider stores a ClaimsProvider directly in the context. The
// HTTP layer stores claims through reqctx instead; this path serves callers
// outside a request, such as CLI commands and tests.
func WithClaimsProvider(ctx context.Context, cp ClaimsProvider) context.Context {
	return context.WithValue(ctx, ctxKeyClaimsProvider{}, cp)
}

func userIDFrom(ctx context.Context) (uuid.UUID, bool) {
	if claims := reqctx.ClaimsFromContext(ctx); claims != nil {
		if id := claims.GetUserID(); id != uuid.Nil {
			return id, true
		}
	}
	if cp, ok := ctx.Value(ctxKeyClaimsProvider{}).(ClaimsProvider); ok {
		if id := cp.GetUserID(); id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

// SubjectFromContext extracts the enforcement subject (the user ID) from
// either reqctx claims or a directly-stored ClaimsProvider.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id, ok := userIDFrom(ctx)
	if !ok {
		return "", ErrNoSubjectInContext
	}
	return GroupSubject(id.String()), nil
}

// MustSubjectFromContext panics when no subject is present. Use only after
// authentication middleware has run.
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext returns the authenticated user's ID.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id, ok := userIDFrom(ctx)
	if !ok {
		return uuid.Nil, ErrNoSubjectInContext
	}
	return id, nil
}

// DomainFromResource picks the enforcement domain for a resource: the
// owner's private domain when an owner is given, the system domain otherwise.
func DomainFromResource(userID *string) Domain {
	if userID != nil && *userID != "" {
		return UserDomain(*userID)
	}
	return DomainSys
}

// UserSelfDomain returns the user's private domain for self-owned resources.
func UserSelfDomain(userID string) Domain {
	return UserDomain(userID)
}

// DomainFromContext returns the current user's private domain.
func DomainFromContext(ctx context.Context) (Domain, error) {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		return "", err
	}
	return UserDomain(string(subject)), nil
}
