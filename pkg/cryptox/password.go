package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for new hashes. Verification reads the parameters
// from the encoded hash so these can be raised without invalidating
// existing passwords.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

// MinPasswordLength is enforced by the user service, not by HashPassword.
const MinPasswordLength = 8

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrHashFormat       = errors.New("invalid hash format")
)

// HashPassword returns a PHC-encoded Argon2id hash of password mixed with
// the process pepper.
func HashPassword(password string) (string, error) {
	pep, err := Pepper()
	if err != nil {
		return "", err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	sum := argon2.IDKey([]byte(password+pep), salt, iterations, memory, parallelism, keyLength)
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// VerifyPassword checks password against a hash produced by HashPassword.
// It returns ErrPasswordMismatch on a wrong password and an error wrapping
// ErrHashFormat when the stored hash cannot be parsed.
func VerifyPassword(password, encodedHash string) error {
	// "", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return fmt.Errorf("%w: expected 6 parts", ErrHashFormat)
	}
	if parts[1] != "argon2id" {
		return fmt.Errorf("%w: not argon2id", ErrHashFormat)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return fmt.Errorf("%w: wrong version", ErrHashFormat)
	}

	var (
		mem, iters uint32
		par        uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %v", ErrHashFormat, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrHashFormat, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: hash: %v", ErrHashFormat, err)
	}

	pep, err := Pepper()
	if err != nil {
		return err
	}

	got := argon2.IDKey([]byte(password+pep), salt, iters, mem, par, uint32(len(want))) // #nosec G115
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// GeneratePassword returns a random alphanumeric password of the given
// length, used for temporary credentials.
func GeneratePassword(length int) (string, error) {
	const charset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	if length < MinPasswordLength {
		length = MinPasswordLength
	}

	out := make([]byte, length)
	limit := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("cryptox: generate password: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
