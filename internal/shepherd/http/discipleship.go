package http

import (
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
)

type DiscipleshipHandler struct {
	DiscipleshipService *service.DiscipleshipService
}

// HandleStart handles POST /v1/discipleship/start
//
//	@Summary		Start a discipleship journey
//	@Description	Pairs a member with a mentor. Each member has at most one journey. The first check-in is scheduled a week out.
//	@Tags			Discipleship
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		shepherdsdk.StartJourneyRequest	true	"Member and mentor"
//	@Success		201		{object}	shepherdsdk.JourneyResponse		"Created journey"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse		"Forbidden"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse		"Member or mentor not found"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse		"Member already has a journey"
//	@Router			/v1/discipleship/start [post].
func (h *DiscipleshipHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.StartJourneyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	d, err := h.DiscipleshipService.Start(r.Context(), principal(r), service.StartJourney{
		MemberID: req.MemberID,
		MentorID: req.MentorID,
		Goals:    req.Goals,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toJourneyResponse(d))
}

// HandleUpdate handles PATCH /v1/discipleship/{id}
//
//	@Summary		Update a journey
//	@Tags			Discipleship
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Journey ID"
//	@Param			request	body		shepherdsdk.UpdateJourneyRequest	true	"Fields to change"
//	@Success		200		{object}	shepherdsdk.JourneyResponse		"Updated journey"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse		"Invalid status"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse		"Journey not found"
//	@Router			/v1/discipleship/{id} [patch].
func (h *DiscipleshipHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.UpdateJourneyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u := service.JourneyUpdate{
		Goals:            req.Goals,
		CompletedModules: req.CompletedModules,
		SpiritualGifts:   req.SpiritualGiftsIdentified,
	}
	if req.Status != nil {
		status := domain.JourneyStatus(*req.Status)
		u.Status = &status
	}

	d, err := h.DiscipleshipService.Update(r.Context(), principal(r), r.PathValue("id"), u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toJourneyResponse(d))
}

// HandleAddNote handles PATCH /v1/discipleship/{id}/add-note
//
//	@Summary		Add a progress note
//	@Description	The caller is recorded as the author. Confidential notes are only shown to pastors.
//	@Tags			Discipleship
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Journey ID"
//	@Param			request	body		shepherdsdk.AddNoteRequest	true	"Note"
//	@Success		200		{object}	shepherdsdk.JourneyResponse	"Updated journey"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Empty note"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse	"Journey not found"
//	@Router			/v1/discipleship/{id}/add-note [patch].
func (h *DiscipleshipHandler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.AddNoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	d, err := h.DiscipleshipService.AddNote(r.Context(), principal(r), r.PathValue("id"), req.Note, req.IsConfidential)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toJourneyResponse(d))
}

// HandleMemberJourney handles GET /v1/discipleship/member/{memberId}
//
//	@Summary		A member's journey
//	@Description	Visible to the member and to pastors. Confidential notes are hidden from everyone else.
//	@Tags			Discipleship
//	@Produce		json
//	@Security		BearerAuth
//	@Param			memberId	path		string						true	"User ID of the member"
//	@Success		200			{object}	shepherdsdk.JourneyResponse	"Journey"
//	@Failure		403			{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		404			{object}	shepherdsdk.ErrorResponse	"No journey for this member"
//	@Router			/v1/discipleship/member/{memberId} [get].
func (h *DiscipleshipHandler) HandleMemberJourney(w http.ResponseWriter, r *http.Request) {
	d, err := h.DiscipleshipService.MemberJourney(r.Context(), principal(r), r.PathValue("memberId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toJourneyResponse(d))
}

// HandleMentees handles GET /v1/discipleship/mentor/{mentorId}
//
//	@Summary		A mentor's mentees
//	@Description	Visible to the mentor and to pastors. Progress notes are omitted.
//	@Tags			Discipleship
//	@Produce		json
//	@Security		BearerAuth
//	@Param			mentorId	path		string								true	"User ID of the mentor"
//	@Success		200			{object}	shepherdsdk.ListJourneysResponse	"Journeys"
//	@Failure		403			{object}	shepherdsdk.ErrorResponse			"Forbidden"
//	@Router			/v1/discipleship/mentor/{mentorId} [get].
func (h *DiscipleshipHandler) HandleMentees(w http.ResponseWriter, r *http.Request) {
	journeys, err := h.DiscipleshipService.Mentees(r.Context(), principal(r), r.PathValue("mentorId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := shepherdsdk.ListJourneysResponse{Journeys: make([]shepherdsdk.JourneyResponse, len(journeys))}
	for i, d := range journeys {
		res.Journeys[i] = toJourneyResponse(d)
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

// HandleDelete handles DELETE /v1/discipleship/{id}
//
//	@Summary		Delete a journey
//	@Tags			Discipleship
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Journey ID"
//	@Success		204
//	@Failure		403	{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Journey not found"
//	@Router			/v1/discipleship/{id} [delete].
func (h *DiscipleshipHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DiscipleshipService.Delete(r.Context(), principal(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
