package http

import (
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleInitialize handles POST /v1/roles/initialize
//
//	@Summary		Seed the role catalog
//	@Description	Creates or refreshes the predefined system roles. Safe to run repeatedly. Senior Pastor only.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	shepherdsdk.InitializeRolesResponse	"Counts of created and updated roles"
//	@Failure		401	{object}	shepherdsdk.ErrorResponse			"Unauthorized"
//	@Failure		403	{object}	shepherdsdk.ErrorResponse			"Forbidden"
//	@Router			/v1/roles/initialize [post].
func (h *RolesHandler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	res, err := h.RolesService.Initialize(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.InitializeRolesResponse{
		Created: res.Created,
		Updated: res.Updated,
	})
}

// HandleList handles GET /v1/roles
//
//	@Summary		List roles
//	@Description	Returns every active role, most senior first.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	shepherdsdk.ListRolesResponse	"List of roles"
//	@Failure		401	{object}	shepherdsdk.ErrorResponse		"Unauthorized"
//	@Failure		403	{object}	shepherdsdk.ErrorResponse		"Forbidden"
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.RolesService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.ListRolesResponse{Roles: toRoleResponses(roles)})
}

// HandleGet handles GET /v1/roles/{id}
//
//	@Summary		Get a role
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Role ID"
//	@Success		200	{object}	shepherdsdk.RoleResponse	"Role"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Role not found"
//	@Router			/v1/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	role, err := h.RolesService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// HandleCreate handles POST /v1/roles
//
//	@Summary		Create a custom role
//	@Description	The new role cannot be more senior than the caller's most senior role.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		shepherdsdk.RoleRequest		true	"Role definition"
//	@Success		201		{object}	shepherdsdk.RoleResponse	"Created role"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Validation failed"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse	"Role name in use"
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.RoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var role domain.Role
	applyRoleRequest(&role, req)
	role, err := h.RolesService.Create(r.Context(), principal(r), role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRoleResponse(role))
}

// HandleUpdate handles PUT /v1/roles/{id}
//
//	@Summary		Update a custom role
//	@Description	Only the fields present in the body change. System roles cannot be edited.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Role ID"
//	@Param			request	body		shepherdsdk.RoleRequest		true	"Fields to change"
//	@Success		200		{object}	shepherdsdk.RoleResponse	"Updated role"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Validation failed"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse	"Forbidden or system role"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse	"Role not found"
//	@Router			/v1/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	raw, err := readPatch(r, &shepherdsdk.RoleRequest{})
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	role, err := h.RolesService.Update(r.Context(), principal(r), r.PathValue("id"), func(role *domain.Role) {
		req := roleRequestFrom(*role)
		mergePatch(&req, raw)
		applyRoleRequest(role, req)
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// HandleDelete handles DELETE /v1/roles/{id}
//
//	@Summary		Deactivate a role
//	@Description	Soft delete. Users holding the role keep it, but it can no longer be assigned.
//	@Tags			Roles
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Role ID"
//	@Success		204
//	@Failure		403	{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Role not found"
//	@Router			/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.RolesService.Deactivate(r.Context(), principal(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
