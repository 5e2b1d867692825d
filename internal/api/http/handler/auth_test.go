package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/service/auth"
	pasetotoken "github.com/caretide/caretide_backend/pkg/paseto"
)

type mockAuthService struct {
	login   func(ctx context.Context, req auth.LoginRequest) (*auth.AuthTokens, error)
	refresh func(ctx context.Context, refreshToken string) (*auth.AuthTokens, error)
	logout  func(ctx context.Context, sessionID uuid.UUID) error
}

func (m *mockAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthTokens, error) {
	return m.login(ctx, req)
}

func (m *mockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*auth.AuthTokens, error) {
	return m.refresh(ctx, refreshToken)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return m.logout(ctx, sessionID)
}

func newAuthApp(svc auth.Service) *fiber.App {
	h := NewAuthHandler(svc)
	app := fiber.New()
	app.Post("/auth/login", h.Login)
	app.Post("/auth/refresh", h.Refresh)
	app.Post("/auth/logout", h.Logout)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestAuthLogin(t *testing.T) {
	svc := &mockAuthService{
		login: func(_ context.Context, req auth.LoginRequest) (*auth.AuthTokens, error) {
			if req.Email != "doc@caretide.dev" {
				t.Errorf("email = %q, want doc@caretide.dev", req.Email)
			}
			return &auth.AuthTokens{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				ExpiresIn:    900,
			}, nil
		},
	}
	app := newAuthApp(svc)

	resp, env := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"doc@caretide.dev","password":"secret"}`))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.AccessToken != "access-token" || data.RefreshToken != "refresh-token" {
		t.Errorf("unexpected token payload: %+v", data)
	}
	if data.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", data.ExpiresIn)
	}
}

func TestAuthLoginValidation(t *testing.T) {
	app := newAuthApp(&mockAuthService{})

	resp, env := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"doc@caretide.dev"}`))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if env.Success {
		t.Error("success should be false")
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := &mockAuthService{
		login: func(context.Context, auth.LoginRequest) (*auth.AuthTokens, error) {
			return nil, auth.ErrInvalidCredentials
		},
	}
	app := newAuthApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"doc@caretide.dev","password":"wrong"}`))

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthRefresh(t *testing.T) {
	svc := &mockAuthService{
		refresh: func(_ context.Context, token string) (*auth.AuthTokens, error) {
			if token != "old-refresh" {
				t.Errorf("refresh token = %q, want old-refresh", token)
			}
			return &auth.AuthTokens{AccessToken: "new-access", RefreshToken: "old-refresh"}, nil
		},
	}
	app := newAuthApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/refresh",
		`{"refresh_token":"old-refresh"}`))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthRefreshExpiredSession(t *testing.T) {
	svc := &mockAuthService{
		refresh: func(context.Context, string) (*auth.AuthTokens, error) {
			return nil, auth.ErrSessionNotFound
		},
	}
	app := newAuthApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/refresh",
		`{"refresh_token":"stale"}`))

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthLogout(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV7())
	var gotSession uuid.UUID
	svc := &mockAuthService{
		logout: func(_ context.Context, id uuid.UUID) error {
			gotSession = id
			return nil
		},
	}

	h := NewAuthHandler(svc)
	app := fiber.New()
	app.Post("/auth/logout", func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{SessionID: &sessionID})
		return h.Logout(c)
	})

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/logout", "{}"))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if gotSession != sessionID {
		t.Errorf("logged out session %s, want %s", gotSession, sessionID)
	}
}

func TestAuthLogoutWithoutClaims(t *testing.T) {
	app := newAuthApp(&mockAuthService{})

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/logout", "{}"))

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
