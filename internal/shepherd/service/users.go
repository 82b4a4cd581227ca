package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

type UserService struct {
	Store store.Store
}

// Signup is a self-registration request. New users hold no roles.
type Signup struct {
	Email       string
	Password    string
	FullName    string
	Departments []string
}

func (s Signup) validate() error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(s.Password) < cryptox.MinPasswordLength {
		fields["password"] = "must be at least 8 characters"
	}
	if strings.TrimSpace(s.FullName) == "" {
		fields["fullName"] = "required"
	}
	return invalidFields(fields)
}

func (s *UserService) Signup(ctx context.Context, req Signup) (domain.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.validate(); err != nil {
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
		Departments:  req.Departments,
		IsActive:     true,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user signed up", slog.String("user_id", u.ID))
	return s.Get(ctx, u.ID)
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// Profile is a user with their role records resolved.
type Profile struct {
	User  domain.User
	Roles []domain.Role
}

func (s *UserService) Me(ctx context.Context, userID string) (Profile, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	var roles []domain.Role
	if len(u.RoleIDs) > 0 {
		if roles, err = s.Store.Roles().FindByIDs(ctx, u.RoleIDs); err != nil {
			return Profile{}, err
		}
	}
	return Profile{User: u, Roles: roles}, nil
}

// ChangePassword replaces the password after checking the current one.
// Tokens issued before the change stop resolving to a principal.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(current, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	if len(next) < cryptox.MinPasswordLength {
		return invalid("newPassword", "must be at least 8 characters")
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash, time.Now()); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

// AssignRoles replaces a user's roles. Every role must exist, newly granted
// roles must be active, and the caller must be at least as senior as each role assigned. An empty
// primaryRoleID defaults to the first role.
func (s *UserService) AssignRoles(ctx context.Context, p rbac.Principal, userID string, roleIDs []string, primaryRoleID string) (domain.User, error) {
	if err := p.RequirePermission("roles", domain.ActionUpdate); err != nil {
		return domain.User{}, err
	}
	u, err := s.Get(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	roleIDs = dedupe(roleIDs)
	roles, err := s.Store.Roles().FindByIDs(ctx, roleIDs)
	if err != nil {
		return domain.User{}, err
	}
	if len(roles) != len(roleIDs) {
		return domain.User{}, ErrRoleNotFound
	}
	for _, r := range roles {
		// A role deactivated after it was granted may be kept.
		if !r.IsActive && !slices.Contains(u.RoleIDs, r.ID) {
			return domain.User{}, ErrRoleInactive
		}
		if err := p.RequireLevel(r.Level); err != nil {
			return domain.User{}, err
		}
	}

	switch {
	case primaryRoleID == "" && len(roleIDs) > 0:
		primaryRoleID = roleIDs[0]
	case primaryRoleID != "" && !slices.Contains(roleIDs, primaryRoleID):
		return domain.User{}, invalid("primaryRole", "must be one of the assigned roles")
	}

	if err := s.Store.Users().SetUserRoles(ctx, userID, roleIDs, primaryRoleID); err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("roles assigned",
		slog.String("user_id", userID),
		slog.Any("role_ids", roleIDs),
		slog.String("assigned_by", p.UserID),
	)
	return s.Get(ctx, userID)
}

// dedupe drops repeated values, keeping first occurrences in order.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
