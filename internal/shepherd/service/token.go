package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

var ErrUserInactive = errors.New("user_inactive")

type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
}

// AccessToken is the result of a successful sign in.
type AccessToken struct {
	Token     string
	ExpiresIn time.Duration
	User      domain.User
}

// Signin checks the credentials and issues a signed access token.
func (s *TokenService) Signin(ctx context.Context, email, password string) (AccessToken, error) {
	l := slogx.FromContext(ctx)
	now := time.Now()

	u, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AccessToken{}, ErrInvalidCredentials
		}
		return AccessToken{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("signin failed", slog.String("user_id", u.ID))
		return AccessToken{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return AccessToken{}, ErrUserInactive
	}

	token, err := s.Issue(u, now)
	if err != nil {
		return AccessToken{}, err
	}

	if err := s.Store.Users().TouchLastLogin(ctx, u.ID, now); err != nil {
		l.Warn("failed to record last login", slog.Any("error", err))
	}
	u.LastLogin = &now

	return AccessToken{Token: token, ExpiresIn: s.ttl(), User: u}, nil
}

// Issue signs an access token for u with a randomly chosen key.
func (s *TokenService) Issue(u domain.User, now time.Time) (string, error) {
	signer := s.KeyManager.GetSigner()
	if signer == nil {
		return "", errors.New("no signing key available")
	}
	claims := jwtx.NewAccessClaims(u.ID, u.Email, u.FullName, s.ttl(), s.Issuer, s.Audience, now)
	return signer.Sign(claims)
}

func (s *TokenService) ttl() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}
