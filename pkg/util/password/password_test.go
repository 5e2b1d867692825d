package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "hunter2"},
		{"long", strings.Repeat("correct horse battery staple ", 8)},
		{"unicode", "pässwörd-日本語"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash: %v", err)
			}
			if !strings.HasPrefix(hash, "$argon2id$") {
				t.Errorf("hash %q is not PHC argon2id", hash)
			}
			if err := Verify(hash, tt.password); err != nil {
				t.Errorf("Verify with correct password: %v", err)
			}
			if err := Verify(hash, tt.password+"x"); !errors.Is(err, ErrMismatch) {
				t.Errorf("Verify with wrong password = %v, want ErrMismatch", err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt is not random")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plainhash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"missing sections", "$argon2id$v=19$m=65536,t=3,p=2"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.hash, "whatever")
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrMismatch) {
				t.Errorf("got ErrMismatch, want a format error")
			}
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := Hash("some-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("freshly generated hash should not need a rehash")
	}

	// Hash produced under different cost parameters.
	stale := "$argon2id$v=19$m=32768,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	if !NeedsRehash(stale) {
		t.Error("hash with outdated parameters should need a rehash")
	}

	if !NeedsRehash("garbage") {
		t.Error("unparseable hash should need a rehash")
	}
}

func TestGenerate(t *testing.T) {
	for _, length := range []int{1, 12, 16, 32, 64} {
		got, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d): %v", length, err)
		}
		if len(got) != length {
			t.Errorf("Generate(%d) returned %d characters", length, len(got))
		}
	}

	got, err := Generate(0)
	if err != nil {
		t.Fatalf("Generate(0): %v", err)
	}
	if len(got) != 16 {
		t.Errorf("Generate(0) length = %d, want fallback 16", len(got))
	}

	a, _ := Generate(24)
	b, _ := Generate(24)
	if a == b {
		t.Error("two generated passwords are identical")
	}
}
