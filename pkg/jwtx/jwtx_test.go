package jwtx_test

import (
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://shepherd.test"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return signer
}

func TestSignAndVerify(t *testing.T) {
	signer := newSigner(t, "key-1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims("user-1", "grace@example.org", "Grace", 5*time.Minute, testIssuer, []string{"shepherd"}, now)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	v := jwtx.NewVerifierEdDSA(keys, testIssuer, []string{"shepherd"}, 0)
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "grace@example.org", got.Email)
	require.Equal(t, "Grace", got.Name)
	require.NotEmpty(t, got.ID)
	require.Equal(t, now.Truncate(time.Second), got.IssuedAtTime().UTC())
}

func TestVerifyRejects(t *testing.T) {
	signer := newSigner(t, "key-1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	now := time.Now().UTC()

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("u", "", "", time.Minute, "other", nil, now))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil, 0).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("u", "", "", time.Minute, testIssuer, []string{"other"}, now))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, []string{"shepherd"}, 0).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("u", "", "", time.Minute, testIssuer, nil, now.Add(-time.Hour)))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil, 0).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown key", func(t *testing.T) {
		stranger := newSigner(t, "key-2")
		token, err := stranger.Sign(jwtx.NewAccessClaims("u", "", "", time.Minute, testIssuer, nil, now))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil, 0).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keys, testIssuer, nil, 0).Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestClaimsValidation(t *testing.T) {
	now := time.Now().UTC()

	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "auth",
		Audience:  []string{"a", "b"},
		NotBefore: jwt.NewNumericDate(now.Add(10 * time.Second)),
	}}
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
	require.NoError(t, c.ValidateAudience([]string{"x", "b"}))
	require.ErrorIs(t, c.ValidateAudience([]string{"x"}), jwtx.ErrAudience)
	require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
	require.NoError(t, c.ValidateExpiryWithLeeway(time.Minute))
	require.True(t, c.IssuedAtTime().IsZero())
}

func TestKeyManager(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, NumKeys: 3})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	require.Equal(t, 3, km.NumSigners())
	require.Len(t, km.KeySet.PublicJWKS().Keys, 3)

	for range 5 {
		token, err := km.GetSigner().Sign(jwtx.NewAccessClaims("u", "", "", time.Minute, testIssuer, nil, time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(token)
		require.NoError(t, err)
	}

	_, err = jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)

	capped, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, NumKeys: 50})
	require.NoError(t, err)
	require.Equal(t, 10, capped.NumSigners())
}

func TestJWKPEM(t *testing.T) {
	signer := newSigner(t, "key-1")
	jwk := signer.PublicJWK()
	require.Equal(t, "OKP", jwk.Kty)
	require.Equal(t, "Ed25519", jwk.Crv)
	require.Equal(t, jwtx.AlgorithmEdDSA, jwk.Alg)

	out, err := jwk.PEM()
	require.NoError(t, err)
	block, _ := pem.Decode([]byte(out))
	require.NotNil(t, block)
	_, err = x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{jwk}}))
	_, err = keys.Get("key-1")
	require.NoError(t, err)

	require.Error(t, keys.AddJWK(jwtx.JWK{Kty: "RSA"}))
}
