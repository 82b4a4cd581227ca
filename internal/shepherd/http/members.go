package http

import (
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
)

type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleRegister handles POST /v1/members
//
//	@Summary		Register a member
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		shepherdsdk.MemberRequest	true	"Member record"
//	@Success		201		{object}	shepherdsdk.MemberResponse	"Registered member"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Validation failed"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse	"Email already registered"
//	@Router			/v1/members [post].
func (h *MembersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.MemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var m domain.Member
	applyMemberRequest(&m, req)
	m, err := h.MemberService.Register(r.Context(), m)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMemberResponse(m))
}

// HandleList handles GET /v1/members
//
//	@Summary		List members
//	@Description	Active members, newest first.
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int								false	"Page number (default 1)"
//	@Param			limit	query		int								false	"Page size (default 10)"
//	@Success		200		{object}	shepherdsdk.ListMembersResponse	"One page of members"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse		"Invalid paging parameters"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse		"Forbidden"
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	page := domain.Page{Number: q.Int("page"), Limit: q.Int("limit")}
	if !q.Ok(w) {
		return
	}

	res, err := h.MemberService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	members := make([]shepherdsdk.MemberResponse, len(res.Members))
	for i, m := range res.Members {
		members[i] = toMemberResponse(m)
	}
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.ListMembersResponse{
		Members: members,
		Total:   res.Total,
		Page:    res.Page,
		Pages:   res.Pages,
	})
}

// HandleGet handles GET /v1/members/{id}
//
//	@Summary		Get a member
//	@Tags			Members
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Member ID"
//	@Success		200	{object}	shepherdsdk.MemberResponse	"Member"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Member not found"
//	@Router			/v1/members/{id} [get].
func (h *MembersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.MemberService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(m))
}

// HandleUpdate handles PATCH /v1/members/{id}
//
//	@Summary		Update a member
//	@Description	Only the fields present in the body change. The result is validated as a whole.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Member ID"
//	@Param			request	body		shepherdsdk.MemberRequest	true	"Fields to change"
//	@Success		200		{object}	shepherdsdk.MemberResponse	"Updated member"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Validation failed"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse	"Member not found"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse	"Email already registered"
//	@Router			/v1/members/{id} [patch].
func (h *MembersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	raw, err := readPatch(r, &shepherdsdk.MemberRequest{})
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	m, err := h.MemberService.Update(r.Context(), r.PathValue("id"), func(m *domain.Member) {
		req := memberRequestFrom(*m)
		mergePatch(&req, raw)
		applyMemberRequest(m, req)
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(m))
}

// HandleArchive handles PATCH /v1/members/{id}/archive
//
//	@Summary		Archive a member
//	@Description	Soft delete. Archived members disappear from the directory.
//	@Tags			Members
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Member ID"
//	@Success		204
//	@Failure		403	{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Member not found"
//	@Router			/v1/members/{id}/archive [patch].
func (h *MembersHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	if err := h.MemberService.Archive(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
