package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

type RolesService struct {
	Store store.Store

	// Catalog is the seed set applied by Initialize. Nil means
	// rbac.PredefinedRoles.
	Catalog []domain.Role
}

// InitializeResult counts what Initialize changed.
type InitializeResult struct {
	Created int
	Updated int
}

// Initialize upserts the seed catalog by role name in one transaction.
// Existing roles keep their IDs, so running it again changes nothing but
// the definitions.
func (s *RolesService) Initialize(ctx context.Context) (InitializeResult, error) {
	l := slogx.FromContext(ctx)

	catalog := s.Catalog
	if catalog == nil {
		catalog = rbac.PredefinedRoles()
	}

	var res InitializeResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, def := range catalog {
			def.IsSystem = true

			existing, err := tx.Roles().GetRoleByName(ctx, def.Name)
			switch {
			case errors.Is(err, store.ErrNotFound):
				def.ID = idx.New().String()
				def.IsActive = true
				if err := tx.Roles().CreateRole(ctx, def); err != nil {
					return err
				}
				res.Created++
			case err != nil:
				return err
			default:
				// Deactivation survives a reseed.
				def.ID = existing.ID
				def.IsActive = existing.IsActive
				if err := tx.Roles().UpdateRole(ctx, def); err != nil {
					return err
				}
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		l.Error("failed to initialize roles", slog.Any("error", err))
		return InitializeResult{}, err
	}

	l.Info("roles initialized", slog.Int("created", res.Created), slog.Int("updated", res.Updated))
	return res, nil
}

// List returns active roles, most senior first.
func (s *RolesService) List(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListActive(ctx)
}

func (s *RolesService) Get(ctx context.Context, id string) (domain.Role, error) {
	r, err := s.Store.Roles().GetRoleByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return r, err
}

// Create adds a custom role. Callers cannot create a role more senior than
// the most senior role they hold.
func (s *RolesService) Create(ctx context.Context, p rbac.Principal, r domain.Role) (domain.Role, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.DepartmentScope == "" {
		r.DepartmentScope = domain.ScopeNone
	}
	if err := r.Validate(); err != nil {
		return domain.Role{}, invalid("role", err.Error())
	}
	if err := p.RequireLevel(r.Level); err != nil {
		return domain.Role{}, err
	}

	r.ID = idx.New().String()
	r.IsActive = true
	r.IsSystem = false

	if err := s.Store.Roles().CreateRole(ctx, r); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Role{}, ErrRoleNameTaken
		}
		return domain.Role{}, err
	}

	slogx.FromContext(ctx).Info("role created", slog.String("role_id", r.ID), slog.String("name", r.Name))
	return s.Get(ctx, r.ID)
}

// Update applies patch to a custom role. System roles are immutable apart
// from deactivation.
func (s *RolesService) Update(ctx context.Context, p rbac.Principal, id string, patch func(*domain.Role)) (domain.Role, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}
	if r.IsSystem {
		return domain.Role{}, ErrSystemRole
	}
	if err := p.RequireLevel(r.Level); err != nil {
		return domain.Role{}, err
	}

	patch(&r)
	r.ID = id
	r.IsSystem = false
	r.Name = strings.TrimSpace(r.Name)
	if err := r.Validate(); err != nil {
		return domain.Role{}, invalid("role", err.Error())
	}
	if err := p.RequireLevel(r.Level); err != nil {
		return domain.Role{}, err
	}

	if err := s.Store.Roles().UpdateRole(ctx, r); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Role{}, ErrRoleNameTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.Role{}, ErrRoleNotFound
		}
		return domain.Role{}, err
	}
	return s.Get(ctx, id)
}

// Deactivate soft deletes a role. Holders keep it; it only disappears from
// listings and cannot be newly assigned.
func (s *RolesService) Deactivate(ctx context.Context, p rbac.Principal, id string) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := p.RequireLevel(r.Level); err != nil {
		return err
	}
	if err := s.Store.Roles().SetRoleActive(ctx, id, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("role deactivated", slog.String("role_id", id), slog.Bool("system", r.IsSystem))
	return nil
}
