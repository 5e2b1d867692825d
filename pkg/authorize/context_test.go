package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/pkg/reqctx"
)

type stubProvider struct {
	userID uuid.UUID
}

func (s *stubProvider) GetUserID() uuid.UUID { return s.userID }

type stubAuthClaims struct {
	userID uuid.UUID
}

func (s *stubAuthClaims) GetUserID() uuid.UUID     { return s.userID }
func (s *stubAuthClaims) GetSessionID() *uuid.UUID { return nil }
func (s *stubAuthClaims) GetRole() string          { return "doctor" }
func (s *stubAuthClaims) GetTokenType() string     { return "access" }
func (s *stubAuthClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	uid := uuid.New()

	tests := []struct {
		name    string
		ctx     context.Context
		want    GroupSubject
		wantErr bool
	}{
		{
			name: "claims provider set",
			ctx:  WithClaimsProvider(context.Background(), &stubProvider{userID: uid}),
			want: GroupSubject(uid.String()),
		},
		{
			name: "request claims set",
			ctx:  reqctx.WithClaims(context.Background(), &stubAuthClaims{userID: uid}),
			want: GroupSubject(uid.String()),
		},
		{
			name:    "empty context",
			ctx:     context.Background(),
			wantErr: true,
		},
		{
			name:    "nil user id",
			ctx:     WithClaimsProvider(context.Background(), &stubProvider{userID: uuid.Nil}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubjectFromContext(tt.ctx)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("SubjectFromContext() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SubjectFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics without claims", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns the subject", func(t *testing.T) {
		uid := uuid.New()
		ctx := WithClaimsProvider(context.Background(), &stubProvider{userID: uid})
		if got, want := MustSubjectFromContext(ctx), GroupSubject(uid.String()); got != want {
			t.Errorf("MustSubjectFromContext() = %q, want %q", got, want)
		}
	})
}

func TestDomainFromResource(t *testing.T) {
	owner := "3f2c1a90-0000-0000-0000-000000000001"
	empty := ""

	tests := []struct {
		name   string
		userID *string
		want   Domain
	}{
		{"owned resource", &owner, Domain("user:" + owner)},
		{"no owner", nil, DomainSys},
		{"empty owner", &empty, DomainSys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromResource(tt.userID); got != tt.want {
				t.Errorf("DomainFromResource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserSelfDomain(t *testing.T) {
	id := "550e8400-e29b-41d4-a716-446655440000"
	if got, want := UserSelfDomain(id), Domain("user:"+id); got != want {
		t.Errorf("UserSelfDomain(%q) = %q, want %q", id, got, want)
	}
}
