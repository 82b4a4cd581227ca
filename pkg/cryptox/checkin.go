package cryptox

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// CheckInPeriod is how long a rotating check-in code stays current. One
// period of skew either side is accepted.
const CheckInPeriod = 60 * time.Second

var checkInOpts = totp.ValidateOpts{
	Period:    uint(CheckInPeriod / time.Second),
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// GenerateCheckInSecret creates a base32 TOTP secret for an event. The
// issuer and label only appear in the provisioning URI.
func GenerateCheckInSecret(issuer, label string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: label,
		Period:      checkInOpts.Period,
		Digits:      checkInOpts.Digits,
		Algorithm:   checkInOpts.Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("cryptox: generate check-in secret: %w", err)
	}
	return key.Secret(), nil
}

// CheckInCode returns the code that is current at t.
func CheckInCode(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, checkInOpts)
}

// ValidateCheckInCode reports whether code is current for secret at t.
func ValidateCheckInCode(code, secret string, t time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, t, checkInOpts)
	return err == nil && ok
}
