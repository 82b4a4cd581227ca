package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first Senior Pastor account on an empty
// system.
type BootstrapService struct {
	Store store.Store
	Roles *RolesService
	Token string // pre-configured bootstrap token; empty disables bootstrap
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req domain.BootstrapData) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if s.Token == "" || !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	if done, err := s.IsBootstrapped(ctx); err != nil {
		return domain.User{}, err
	} else if done {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, ErrBootstrapAlready
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := (Signup{Email: req.Email, Password: req.Password, FullName: req.FullName}).validate(); err != nil {
		return domain.User{}, err
	}

	if _, err := s.Roles.Initialize(ctx); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        req.Email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		IsActive:     true,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		senior, err := tx.Roles().GetRoleByName(ctx, rbac.RoleSeniorPastor)
		if err != nil {
			return err
		}
		u.RoleIDs = []string{senior.ID}
		u.PrimaryRoleID = senior.ID

		if empty, err := tx.Users().IsEmpty(ctx); err != nil {
			return err
		} else if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, u)
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("successfully bootstrapped system", slog.String("user_id", u.ID))
	return s.Store.Users().GetUserByID(ctx, u.ID)
}
