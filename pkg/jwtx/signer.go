package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access tokens.
type Signer interface {
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

// EdDSASigner signs with an Ed25519 private key.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
}

// NewSignerEdDSA loads a PKCS8 PEM Ed25519 key.
func NewSignerEdDSA(kid string, pemKey []byte) (*EdDSASigner, error) {
	key, err := cryptox.ParseEd25519Key(pemKey)
	if err != nil {
		return nil, err
	}
	if kid == "" {
		return nil, errors.New("jwtx: signer requires a kid")
	}
	return &EdDSASigner{kid: kid, key: key}, nil
}

func (s *EdDSASigner) KID() string { return s.kid }

func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

func (s *EdDSASigner) PublicJWK() JWK {
	pub := s.key.Public().(ed25519.PublicKey)
	return NewEd25519JWK(s.kid, "sig", AlgorithmEdDSA, pub)
}
