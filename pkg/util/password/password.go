// Package password hashes and verifies credentials with Argon2id and
// generates random initial passwords for staff accounts.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("invalid password hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrMismatch            = errors.New("password does not match")
)

// Params holds the Argon2id cost parameters.
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32 // bytes
	KeyLength   uint32 // bytes
}

// DefaultParams follows the OWASP password storage cheat sheet.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

var active = DefaultParams()

// Configure replaces the package-wide hashing parameters. Call once at
// startup, before any Hash or NeedsRehash call.
func Configure(p Params) {
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 ||
		p.SaltLength == 0 || p.KeyLength == 0 {
		return
	}
	active = p
}

// Hash derives an Argon2id hash of the password and encodes it in PHC
// string format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>.
func Hash(password string) (string, error) {
	p := active

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks a password against a PHC-encoded hash. It returns nil on a
// match, ErrMismatch otherwise. The comparison is constant time.
func Verify(hash, password string) error {
	p, salt, want, err := parsePHC(hash)
	if err != nil {
		return err
	}

	got := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return ErrMismatch
	}
	return nil
}

// NeedsRehash reports whether the hash was produced with cost parameters
// that differ from the currently configured ones.
func NeedsRehash(hash string) bool {
	p, _, _, err := parsePHC(hash)
	if err != nil {
		return true
	}
	return p.Memory != active.Memory ||
		p.Iterations != active.Iterations ||
		p.Parallelism != active.Parallelism ||
		p.KeyLength != active.KeyLength
}

// Generate returns a random password of the given length drawn from the
// URL-safe base64 alphabet. Lengths below 1 fall back to 16.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = 16
	}

	raw := make([]byte, (length*6+7)/8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating random password: %w", err)
	}

	s := base64.RawURLEncoding.EncodeToString(raw)
	if len(s) > length {
		s = s[:length]
	}
	return s, nil
}

func parsePHC(encoded string) (Params, []byte, []byte, error) {
	var p Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, ErrInvalidHash
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	return p, salt, key, nil
}
