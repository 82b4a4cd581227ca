package domain

import (
	"errors"
	"strings"
	"time"
)

// Action is the verb half of a permission.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage:
		return true
	}
	return false
}

// DepartmentScope describes which departments a role may act within.
type DepartmentScope string

const (
	ScopeAll      DepartmentScope = "all"
	ScopeSpecific DepartmentScope = "specific"
	ScopeNone     DepartmentScope = "none"
)

func (s DepartmentScope) Valid() bool {
	return s == ScopeAll || s == ScopeSpecific || s == ScopeNone
}

// WildcardResource matches every resource in a permission entry.
const WildcardResource = "*"

const (
	MinRoleLevel = 1 // most senior
	MaxRoleLevel = 10
)

type Permission struct {
	Name        string
	Description string
	Resource    string // "*" for every resource
	Action      Action
}

type Role struct {
	ID                 string
	Name               string // unique across active and inactive roles
	Description        string
	Level              int // 1 (highest) to 10
	DepartmentScope    DepartmentScope
	AllowedDepartments []string // only consulted when DepartmentScope is specific
	Permissions        []Permission
	IsActive           bool
	IsSystem           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

var (
	ErrRoleNameRequired   = errors.New("role name is required")
	ErrRoleLevelRange     = errors.New("role level must be between 1 and 10")
	ErrRoleScopeInvalid   = errors.New("role department scope must be all, specific or none")
	ErrPermissionInvalid  = errors.New("permission requires a resource and a known action")
	ErrRoleDescriptionReq = errors.New("role description is required")
)

// Validate checks the structural invariants of a role definition.
func (r Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrRoleNameRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrRoleDescriptionReq
	}
	if r.Level < MinRoleLevel || r.Level > MaxRoleLevel {
		return ErrRoleLevelRange
	}
	if !r.DepartmentScope.Valid() {
		return ErrRoleScopeInvalid
	}
	for _, p := range r.Permissions {
		if strings.TrimSpace(p.Resource) == "" || !p.Action.Valid() {
			return ErrPermissionInvalid
		}
	}
	return nil
}
