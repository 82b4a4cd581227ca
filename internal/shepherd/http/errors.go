package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

type errorMapping struct {
	err    error
	status int
	code   string
	desc   string // empty means err.Error()
}

// serviceErrors is checked in order with errors.Is.
var serviceErrors = []errorMapping{
	{rbac.ErrAuthenticationMissing, http.StatusUnauthorized, shepherdsdk.ErrorCodeUnauthorized, "Not authorized to access this route"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, shepherdsdk.ErrorCodeInvalidCredential, "Invalid email or password"},
	{service.ErrUserInactive, http.StatusUnauthorized, shepherdsdk.ErrorCodeInvalidCredential, "Account is disabled"},
	{service.ErrBootstrapUnauthorized, http.StatusUnauthorized, shepherdsdk.ErrorCodeUnauthorized, "Invalid bootstrap token"},

	{rbac.ErrAuthorizationDenied, http.StatusForbidden, shepherdsdk.ErrorCodeForbidden, ""},
	{service.ErrSystemRole, http.StatusForbidden, shepherdsdk.ErrorCodeForbidden, "System roles can only be deactivated"},

	{service.ErrUserNotFound, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "User not found"},
	{service.ErrRoleNotFound, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Role not found"},
	{service.ErrMemberNotFound, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Member not found"},
	{service.ErrEventNotFound, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Event not found"},
	{service.ErrAttendanceNotFound, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Attendance record not found"},
	{service.ErrJourneyNotFound, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Discipleship journey not found"},

	{service.ErrEmailTaken, http.StatusConflict, shepherdsdk.ErrorCodeConflict, "Email is already registered"},
	{service.ErrRoleNameTaken, http.StatusConflict, shepherdsdk.ErrorCodeConflict, "Role name is already in use"},
	{service.ErrAlreadyRecorded, http.StatusConflict, shepherdsdk.ErrorCodeConflict, "Attendance already recorded for this event"},
	{service.ErrJourneyExists, http.StatusConflict, shepherdsdk.ErrorCodeConflict, "Member already has a discipleship journey"},
	{service.ErrAlreadyCheckedOut, http.StatusConflict, shepherdsdk.ErrorCodeConflict, "Already checked out"},
	{service.ErrBootstrapAlready, http.StatusConflict, shepherdsdk.ErrorCodeConflict, "System is already bootstrapped"},

	{service.ErrRoleInactive, http.StatusBadRequest, shepherdsdk.ErrorCodeInvalidRequest, "Deactivated roles cannot be assigned"},
	{service.ErrInvalidCheckInCode, http.StatusBadRequest, shepherdsdk.ErrorCodeInvalidRequest, "Check-in code is invalid or expired"},
}

// writeServiceError maps err to a status code and JSON error body.
// Anything unrecognised is logged and answered with a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteValidation(w, verr.Fields)
		return
	}

	for _, m := range serviceErrors {
		if !errors.Is(err, m.err) {
			continue
		}
		desc := m.desc
		if desc == "" {
			desc = err.Error()
		}
		httpx.WriteError(w, m.status, m.code, desc)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, shepherdsdk.ErrorCodeServerError, "Internal server error")
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, shepherdsdk.ErrorCodeInvalidRequest, desc)
}
