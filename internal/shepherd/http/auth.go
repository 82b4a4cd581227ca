package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the system
//	@Description	Seeds the role catalog and creates the first user with the Senior Pastor role. Only available when a bootstrap token is configured and no user exists yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token for authorization"
//	@Param			request				body		shepherdsdk.BootstrapRequest	true	"First account"
//	@Success		201					{object}	shepherdsdk.UserResponse		"The Senior Pastor account"
//	@Failure		400					{object}	shepherdsdk.ErrorResponse		"Invalid request body or validation failed"
//	@Failure		401					{object}	shepherdsdk.ErrorResponse		"Missing or invalid bootstrap token"
//	@Failure		404					{object}	shepherdsdk.ErrorResponse		"Bootstrap not enabled (no token configured)"
//	@Failure		409					{object}	shepherdsdk.ErrorResponse		"System already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, shepherdsdk.ErrorCodeUnauthorized,
			"Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req shepherdsdk.BootstrapRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.BootstrapData{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// AuthHandler serves account endpoints: signup, signin and the caller's
// own profile.
type AuthHandler struct {
	TokenService *service.TokenService
	UserService  *service.UserService
}

// HandleSignup handles POST /v1/auth/signup
//
//	@Summary		Create an account
//	@Description	Self registration. New accounts hold no roles until a leader assigns them.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shepherdsdk.SignupRequest	true	"Account details"
//	@Success		201		{object}	shepherdsdk.UserResponse	"Created account"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Validation failed"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse	"Email already registered"
//	@Failure		429		{object}	shepherdsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.UserService.Signup(r.Context(), service.Signup{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Departments: req.Departments,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// HandleSignin handles POST /v1/auth/signin
//
//	@Summary		Sign in
//	@Description	Exchanges an email and password for a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shepherdsdk.SigninRequest	true	"Credentials"
//	@Success		200		{object}	shepherdsdk.TokenResponse	"Access token and the signed in user"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	shepherdsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	shepherdsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/signin [post].
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.SigninRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httpx.WriteValidation(w, map[string]string{"credentials": "email and password are required"})
		return
	}

	tok, err := h.TokenService.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user signed in", "user_id", tok.User.ID)
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.TokenResponse{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(tok.ExpiresIn.Seconds()),
		User:        toUserResponse(tok.User),
	})
}

// HandleMe handles GET /v1/auth/me
//
//	@Summary		Current user
//	@Description	Returns the signed in user with their role records.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	shepherdsdk.MeResponse		"User and roles"
//	@Failure		401	{object}	shepherdsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.UserService.Me(r.Context(), principal(r).UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.MeResponse{
		User:  toUserResponse(profile.User),
		Roles: toRoleResponses(profile.Roles),
	})
}

// HandleChangePassword handles POST /v1/auth/change-password
//
//	@Summary		Change password
//	@Description	Replaces the caller's password. Tokens issued before the change stop working.
//	@Tags			Auth
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request	body	shepherdsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		204
//	@Failure		400	{object}	shepherdsdk.ErrorResponse	"New password too short"
//	@Failure		401	{object}	shepherdsdk.ErrorResponse	"Current password is wrong"
//	@Router			/v1/auth/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	err := h.UserService.ChangePassword(r.Context(), principal(r).UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAssignRoles handles PUT /v1/users/{id}/roles
//
//	@Summary		Assign roles
//	@Description	Replaces a user's roles. Requires roles:update, and the caller must be at least as senior as every role assigned. Deactivated roles cannot be assigned.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		shepherdsdk.AssignRolesRequest	true	"Role IDs"
//	@Success		200		{object}	shepherdsdk.UserResponse		"Updated user"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse		"Inactive role or invalid primary role"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse		"Forbidden"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse		"User or role not found"
//	@Router			/v1/users/{id}/roles [put].
func (h *AuthHandler) HandleAssignRoles(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.AssignRolesRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.UserService.AssignRoles(r.Context(), principal(r), r.PathValue("id"), req.RoleIDs, req.PrimaryRoleID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
