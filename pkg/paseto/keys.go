package pasetotoken

import (
	"strings"

	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // v4.local, symmetric encryption
	ModePublic Mode = "public" // v4.public, Ed25519 signatures
)

type Keys struct {
	Mode Mode

	// ModeLocal
	Symmetric *paseto.V4SymmetricKey

	// ModePublic
	Secret *paseto.V4AsymmetricSecretKey
	Public *paseto.V4AsymmetricPublicKey
}

// KeyStrings is the hex-encoded form keys take in configuration.
type KeyStrings struct {
	Mode Mode

	SymmetricHex string

	SecretHex string
	PublicHex string
}

// LoadKeys parses configured key material. In public mode either half may be
// omitted: secret-only derives the public key, public-only suits
// verify-only deployments.
func LoadKeys(in KeyStrings) (Keys, error) {
	switch in.Mode {
	case ModeLocal:
		return loadLocalKeys(in)
	case ModePublic:
		return loadPublicKeys(in)
	default:
		return Keys{}, ErrConfig{Msg: "unknown mode (use local|public)"}
	}
}

func loadLocalKeys(in KeyStrings) (Keys, error) {
	hex := strings.TrimSpace(in.SymmetricHex)
	if hex == "" {
		return Keys{}, ErrConfig{Msg: "local mode requires a symmetric key"}
	}
	k, err := paseto.V4SymmetricKeyFromHex(hex)
	if err != nil {
		return Keys{}, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
	}
	return Keys{Mode: ModeLocal, Symmetric: &k}, nil
}

func loadPublicKeys(in KeyStrings) (Keys, error) {
	out := Keys{Mode: ModePublic}

	if secHex := strings.TrimSpace(in.SecretHex); secHex != "" {
		sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(secHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid secret key hex: " + err.Error()}
		}
		pk := sk.Public()
		out.Secret, out.Public = &sk, &pk
	}

	if pubHex := strings.TrimSpace(in.PublicHex); pubHex != "" {
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(pubHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key hex: " + err.Error()}
		}
		out.Public = &pk
	}

	if out.Public == nil && out.Secret == nil {
		return Keys{}, ErrConfig{Msg: "public mode requires a secret and/or public key"}
	}
	return out, nil
}

// NewLocalKeys generates a fresh symmetric key. Used by tests and key setup.
func NewLocalKeys() Keys {
	k := paseto.NewV4SymmetricKey()
	return Keys{Mode: ModeLocal, Symmetric: &k}
}

// NewPublicKeys generates a fresh Ed25519 key pair.
func NewPublicKeys() Keys {
	sk := paseto.NewV4AsymmetricSecretKey()
	pk := sk.Public()
	return Keys{Mode: ModePublic, Secret: &sk, Public: &pk}
}
