package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation = errors.New("validation_failed")

	ErrUserNotFound       = errors.New("user_not_found")
	ErrRoleNotFound       = errors.New("role_not_found")
	ErrMemberNotFound     = errors.New("member_not_found")
	ErrEventNotFound      = errors.New("event_not_found")
	ErrAttendanceNotFound = errors.New("attendance_not_found")
	ErrJourneyNotFound    = errors.New("journey_not_found")

	ErrEmailTaken        = errors.New("email_taken")
	ErrRoleNameTaken     = errors.New("role_name_taken")
	ErrAlreadyRecorded   = errors.New("attendance_already_recorded")
	ErrJourneyExists     = errors.New("journey_exists")
	ErrAlreadyCheckedOut = errors.New("already_checked_out")

	ErrSystemRole         = errors.New("system_role")
	ErrRoleInactive       = errors.New("role_inactive")
	ErrInvalidCheckInCode = errors.New("invalid_checkin_code")
)

// ValidationError lists field problems keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func invalidFields(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
