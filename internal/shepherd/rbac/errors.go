package rbac

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthenticationMissing means no principal could be established for the request.
	ErrAuthenticationMissing = errors.New("rbac: authentication required")

	// ErrAuthorizationDenied means a principal exists but lacks the capability.
	ErrAuthorizationDenied = errors.New("rbac: access denied")
)

// DeniedError describes which capability a principal was missing.
type DeniedError struct {
	Kind     string // role, permission, department, hierarchy, ownership or visibility
	Required string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("rbac: access denied: requires %s %s", e.Kind, e.Required)
}

func (e *DeniedError) Unwrap() error { return ErrAuthorizationDenied }

func deniedRole(names []string) error {
	return &DeniedError{Kind: "role", Required: "one of [" + strings.Join(names, ", ") + "]"}
}

func deniedPermission(resource string, action string) error {
	return &DeniedError{Kind: "permission", Required: resource + ":" + action}
}

func deniedDepartment(department string) error {
	return &DeniedError{Kind: "department", Required: department}
}

func deniedHierarchy(level int) error {
	return &DeniedError{Kind: "hierarchy", Required: fmt.Sprintf("level <= %d", level)}
}
