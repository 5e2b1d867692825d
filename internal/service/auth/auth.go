// Package auth implements staff sign-in with PASETO tokens and Redis-backed
// sessions. Access tokens are short-lived; the session entry in Redis is what
// keeps a refresh token usable, so deleting it revokes the pair at once.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/repo"
	entuser "github.com/caretide/caretide_backend/internal/repo/user"
	pasetotoken "github.com/caretide/caretide_backend/pkg/paseto"
	"github.com/caretide/caretide_backend/pkg/util/password"
)

func sessionKey(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until the access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(db *repo.Client, rdb *redis.Client, paseto *pasetotoken.Manager, cfg *config.Config) Service {
	return &authService{db: db, rdb: rdb, paseto: paseto, cfg: cfg}
}

func (s *authService) accessTTL() time.Duration {
	return time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
}

func (s *authService) refreshTTL() time.Duration {
	return time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDeactivated
	}
	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best-effort last-login stamp, not on the critical path.
	if _, err := s.db.User.UpdateOne(u).SetLastLoginAt(time.Now()).Save(ctx); err != nil {
		slog.Warn("failed to update last login timestamp", "user_id", u.ID, "error", err)
	}

	return s.openSession(ctx, u)
}

// RefreshTokens re-issues the access token against a live session. The
// refresh token itself stays fixed for the session's lifetime; the session
// TTL slides forward on every refresh.
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil || claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	key := sessionKey(claims.SessionID.String())
	switch err := s.rdb.Get(ctx, key).Err(); {
	case errors.Is(err, redis.Nil):
		return nil, ErrSessionNotFound
	case err != nil:
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	if err := s.rdb.Expire(ctx, key, s.refreshTTL()).Err(); err != nil {
		slog.Warn("failed to extend session TTL", "session_id", claims.SessionID, "error", err)
	}

	access, err := s.paseto.IssueAccess(claims.UserID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, sessionKey(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Already expired; the client still ends up logged out.
		slog.Debug("logout for an expired session", "session_id", sessionID)
	}
	return nil
}

func (s *authService) openSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	if err := s.rdb.Set(ctx, sessionKey(sessionID.String()), u.ID.String(), s.refreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	role := string(u.Role)
	access, err := s.paseto.IssueAccess(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}
