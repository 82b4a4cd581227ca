package rbac

import (
	"slices"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

// EffectiveRoles decides which of a principal's resolved roles take part in
// access decisions. Deactivated roles are kept: deactivation hides a role from
// listings and new assignment but does not revoke it from current holders.
func EffectiveRoles(roles []domain.Role) []domain.Role {
	return roles
}

// AuthorizeByRole allows when any role's name is one of required.
func AuthorizeByRole(roles []domain.Role, required ...string) bool {
	for _, r := range roles {
		if slices.Contains(required, r.Name) {
			return true
		}
	}
	return false
}

// AuthorizeByPermission allows when any role holds an entry whose resource is
// the requested one or "*", and whose expanded actions include action.
func AuthorizeByPermission(roles []domain.Role, resource string, action domain.Action) bool {
	for _, r := range roles {
		for _, p := range r.Permissions {
			if Grants(p, resource, action) {
				return true
			}
		}
	}
	return false
}

// HasDepartmentAccess allows when any role has scope all, or scope specific
// with department listed. Scope none never grants.
func HasDepartmentAccess(roles []domain.Role, department string) bool {
	for _, r := range roles {
		switch r.DepartmentScope {
		case domain.ScopeAll:
			return true
		case domain.ScopeSpecific:
			if slices.Contains(r.AllowedDepartments, department) {
				return true
			}
		}
	}
	return false
}

// BestLevel returns the most senior (numerically lowest) level held.
// ok is false for an empty role set.
func BestLevel(roles []domain.Role) (level int, ok bool) {
	if len(roles) == 0 {
		return 0, false
	}
	level = roles[0].Level
	for _, r := range roles[1:] {
		if r.Level < level {
			level = r.Level
		}
	}
	return level, true
}

// MeetsHierarchy allows when the best level held is at or above required
// (numerically <= required). An empty role set is denied.
func MeetsHierarchy(roles []domain.Role, required int) bool {
	best, ok := BestLevel(roles)
	if !ok {
		return false
	}
	return best <= required
}
