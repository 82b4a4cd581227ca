package rbac

import "github.com/aussiebroadwan/shepherd/internal/shepherd/domain"

// crudActions are the actions a manage entry implies.
var crudActions = []domain.Action{
	domain.ActionCreate,
	domain.ActionRead,
	domain.ActionUpdate,
	domain.ActionDelete,
}

// ExpandActions returns the set of actions a permission entry grants.
// The stored entry is never rewritten; manage is only widened here.
func ExpandActions(p domain.Permission) map[domain.Action]struct{} {
	set := map[domain.Action]struct{}{p.Action: {}}
	if p.Action == domain.ActionManage {
		for _, a := range crudActions {
			set[a] = struct{}{}
		}
	}
	return set
}

// Grants reports whether the entry covers (resource, action).
func Grants(p domain.Permission, resource string, action domain.Action) bool {
	if p.Resource != resource && p.Resource != domain.WildcardResource {
		return false
	}
	_, ok := ExpandActions(p)[action]
	return ok
}
