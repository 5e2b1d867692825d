package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/caretide/caretide_backend/pkg/paseto"
	"github.com/caretide/caretide_backend/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token and checks that its
// session is still live in Redis. On success the claims are stored both in
// c.Locals(pasetotoken.CtxKeyClaims) for handlers and in the request context
// for code that only sees a context.Context.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c.Get("Authorization"))
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(token)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Refresh tokens are only valid on the refresh endpoint.
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// A revoked session invalidates the token before it expires.
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
