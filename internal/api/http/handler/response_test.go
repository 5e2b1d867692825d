package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

// testEnvelope mirrors the wire shape of envelope with Data left raw so
// individual tests can decode it into whatever they expect.
type testEnvelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Timestamp  string          `json:"timestamp"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, testEnvelope) {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var env testEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return resp, env
}

func TestEnvelopeShape(t *testing.T) {
	tests := []struct {
		name        string
		handler     fiber.Handler
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "ok",
			handler:     func(c fiber.Ctx) error { return ok(c, "done", fiber.Map{"k": "v"}) },
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "done",
		},
		{
			name:        "created",
			handler:     func(c fiber.Ctx) error { return created(c, "made", nil) },
			wantStatus:  http.StatusCreated,
			wantSuccess: true,
			wantMessage: "made",
		},
		{
			name:        "bad request",
			handler:     func(c fiber.Ctx) error { return badRequest(c, "nope") },
			wantStatus:  http.StatusBadRequest,
			wantSuccess: false,
			wantMessage: "nope",
		},
		{
			name:        "unauthorized default message",
			handler:     func(c fiber.Ctx) error { return unauthorized(c, "") },
			wantStatus:  http.StatusUnauthorized,
			wantSuccess: false,
			wantMessage: "unauthorized",
		},
		{
			name:        "not found",
			handler:     func(c fiber.Ctx) error { return notFound(c, "missing") },
			wantStatus:  http.StatusNotFound,
			wantSuccess: false,
			wantMessage: "missing",
		},
		{
			name:        "conflict",
			handler:     func(c fiber.Ctx) error { return conflict(c, "taken") },
			wantStatus:  http.StatusConflict,
			wantSuccess: false,
			wantMessage: "taken",
		},
		{
			name:        "internal error",
			handler:     func(c fiber.Ctx) error { return internalError(c) },
			wantStatus:  http.StatusInternalServerError,
			wantSuccess: false,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", tt.handler)

			resp, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("transport status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if env.StatusCode != tt.wantStatus {
				t.Errorf("envelope statusCode = %d, want %d", env.StatusCode, tt.wantStatus)
			}
			if env.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", env.Success, tt.wantSuccess)
			}
			if env.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMessage)
			}
			if _, err := time.Parse(time.RFC3339, env.Timestamp); err != nil {
				t.Errorf("timestamp %q is not RFC3339: %v", env.Timestamp, err)
			}
		})
	}
}

func TestEnvelopeOmitsEmptyData(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error { return ok(c, "done", nil) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if _, present := raw["data"]; present {
		t.Error("data key should be omitted when nil")
	}
}
