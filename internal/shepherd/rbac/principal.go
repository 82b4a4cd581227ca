package rbac

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

// Registry is the read side of role storage the resolver depends on.
// Unknown names or IDs are simply absent from the result.
type Registry interface {
	FindByNames(ctx context.Context, names []string) ([]domain.Role, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Role, error)
}

// Principal is an authenticated user with roles resolved for one decision.
type Principal struct {
	UserID      string
	Roles       []domain.Role
	Departments []string
}

// Resolve loads the current role records for u. Roles are looked up on
// every call so edits to a role take effect on the next request.
func Resolve(ctx context.Context, reg Registry, u domain.User) (Principal, error) {
	if u.ID == "" {
		return Principal{}, ErrAuthenticationMissing
	}

	var roles []domain.Role
	if len(u.RoleIDs) > 0 {
		found, err := reg.FindByIDs(ctx, u.RoleIDs)
		if err != nil {
			return Principal{}, fmt.Errorf("rbac: resolve roles: %w", err)
		}
		roles = found
	}

	return Principal{
		UserID:      u.ID,
		Roles:       EffectiveRoles(roles),
		Departments: u.Departments,
	}, nil
}

func (p Principal) HasRole(names ...string) bool {
	return AuthorizeByRole(p.Roles, names...)
}

func (p Principal) Can(resource string, action domain.Action) bool {
	return AuthorizeByPermission(p.Roles, resource, action)
}

func (p Principal) InDepartment(department string) bool {
	return HasDepartmentAccess(p.Roles, department)
}

func (p Principal) AtLeast(level int) bool {
	return MeetsHierarchy(p.Roles, level)
}

// RequireRole returns a *DeniedError unless p holds one of names.
func (p Principal) RequireRole(names ...string) error {
	if p.UserID == "" {
		return ErrAuthenticationMissing
	}
	if !p.HasRole(names...) {
		return deniedRole(names)
	}
	return nil
}

func (p Principal) RequirePermission(resource string, action domain.Action) error {
	if p.UserID == "" {
		return ErrAuthenticationMissing
	}
	if !p.Can(resource, action) {
		return deniedPermission(resource, string(action))
	}
	return nil
}

func (p Principal) RequireDepartment(department string) error {
	if p.UserID == "" {
		return ErrAuthenticationMissing
	}
	if !p.InDepartment(department) {
		return deniedDepartment(department)
	}
	return nil
}

func (p Principal) RequireLevel(level int) error {
	if p.UserID == "" {
		return ErrAuthenticationMissing
	}
	if !p.AtLeast(level) {
		return deniedHierarchy(level)
	}
	return nil
}
