package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

// ErrTokenStale means the token predates the user's last password change.
var ErrTokenStale = errors.New("token_stale")

// AccessService turns verified token claims into an rbac.Principal.
type AccessService struct {
	Store store.Store
}

// Principal loads the user named by the token subject and resolves their
// roles. Every failure to establish who is calling wraps
// rbac.ErrAuthenticationMissing.
func (s *AccessService) Principal(ctx context.Context, claims jwtx.Claims) (rbac.Principal, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("token subject no longer exists", slog.String("sub", claims.Subject))
			return rbac.Principal{}, rbac.ErrAuthenticationMissing
		}
		return rbac.Principal{}, err
	}

	if !u.IsActive {
		return rbac.Principal{}, fmt.Errorf("%w: user is inactive", rbac.ErrAuthenticationMissing)
	}
	if u.ChangedPasswordAfter(claims.IssuedAtTime()) {
		return rbac.Principal{}, fmt.Errorf("%w: %w", rbac.ErrAuthenticationMissing, ErrTokenStale)
	}

	return rbac.Resolve(ctx, s.Store.Roles(), u)
}
