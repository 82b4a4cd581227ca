package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMissingKID  = errors.New("jwtx: missing kid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrInvalid     = errors.New("jwtx: invalid token")
)

// EdDSAVerifier validates EdDSA tokens against a KeySet.
type EdDSAVerifier struct {
	keys   *KeySet
	issuer string
	aud    []string
	leeway time.Duration
}

// NewVerifierEdDSA creates a verifier; leeway absorbs clock skew on exp/nbf.
func NewVerifierEdDSA(keys *KeySet, issuer string, aud []string, leeway time.Duration) *EdDSAVerifier {
	return &EdDSAVerifier{keys: keys, issuer: issuer, aud: aud, leeway: leeway}
}

func (v *EdDSAVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithLeeway(v.leeway),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKID
		}
		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, fmt.Errorf("jwtx: unknown kid %q: %w", kid, err)
		}
		return pub, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalid
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.aud); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.leeway); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
