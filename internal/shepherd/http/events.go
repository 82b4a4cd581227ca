package http

import (
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
)

type EventsHandler struct {
	EventService *service.EventService
}

// HandleCreate handles POST /v1/events
//
//	@Summary		Create an event
//	@Description	Recurring events store a template plus one instance per occurrence, all in one transaction. The caller needs access to the host department.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		shepherdsdk.EventRequest		true	"Event"
//	@Success		201		{object}	shepherdsdk.CreateEventResponse	"Created event and instance count"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse		"Validation failed"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse		"Forbidden"
//	@Router			/v1/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.EventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	var e domain.Event
	applyEventRequest(&e, req)
	created, err := h.EventService.Create(r.Context(), principal(r), e)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, shepherdsdk.CreateEventResponse{
		Event:            toEventResponse(created.Event),
		InstancesCreated: created.Instances,
	})
}

// HandleList handles GET /v1/events
//
//	@Summary		List events
//	@Description	Private and group-specific events are filtered by what the caller may see.
//	@Tags			Events
//	@Produce		json
//	@Security		BearerAuth
//	@Param			type		query		string							false	"Event type"
//	@Param			department	query		string							false	"Host department"
//	@Param			status		query		string							false	"Event status"
//	@Param			visibility	query		string							false	"Visibility"
//	@Param			from		query		string							false	"Start at or after (RFC 3339)"
//	@Param			to			query		string							false	"Start at or before (RFC 3339)"
//	@Param			limit		query		int								false	"Maximum results"
//	@Success		200			{object}	shepherdsdk.ListEventsResponse	"Events"
//	@Failure		400			{object}	shepherdsdk.ErrorResponse		"Invalid query parameters"
//	@Router			/v1/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	query := store.EventQuery{
		Type:           domain.EventType(q.String("type")),
		HostDepartment: q.String("department"),
		Status:         domain.EventStatus(q.String("status")),
		Visibility:     domain.Visibility(q.String("visibility")),
		From:           q.Time("from"),
		To:             q.Time("to"),
		Limit:          q.Int("limit"),
	}
	if !q.Ok(w) {
		return
	}

	events, err := h.EventService.List(r.Context(), principal(r), query)
	h.writeList(w, r, events, err)
}

// HandleUpcoming handles GET /v1/events/upcoming
//
//	@Summary		Upcoming events
//	@Description	The next scheduled events the caller may see.
//	@Tags			Events
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	shepherdsdk.ListEventsResponse	"Events"
//	@Router			/v1/events/upcoming [get].
func (h *EventsHandler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.EventService.Upcoming(r.Context(), principal(r))
	h.writeList(w, r, events, err)
}

// HandleByDepartment handles GET /v1/events/department/{department}
//
//	@Summary		Events hosted by a department
//	@Tags			Events
//	@Produce		json
//	@Security		BearerAuth
//	@Param			department	path		string							true	"Department"
//	@Param			from		query		string							false	"Start at or after (RFC 3339)"
//	@Param			to			query		string							false	"Start at or before (RFC 3339)"
//	@Success		200			{object}	shepherdsdk.ListEventsResponse	"Events"
//	@Failure		403			{object}	shepherdsdk.ErrorResponse		"No access to the department"
//	@Router			/v1/events/department/{department} [get].
func (h *EventsHandler) HandleByDepartment(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	from, to := q.Time("from"), q.Time("to")
	if !q.Ok(w) {
		return
	}

	events, err := h.EventService.ByDepartment(r.Context(), principal(r), r.PathValue("department"), from, to)
	h.writeList(w, r, events, err)
}

func (h *EventsHandler) writeList(w http.ResponseWriter, r *http.Request, events []domain.Event, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.ListEventsResponse{Events: toEventResponses(events)})
}

// HandleGet handles GET /v1/events/{id}
//
//	@Summary		Get an event
//	@Tags			Events
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Event ID"
//	@Success		200	{object}	shepherdsdk.EventResponse	"Event"
//	@Failure		403	{object}	shepherdsdk.ErrorResponse	"Event not visible to the caller"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Event not found"
//	@Router			/v1/events/{id} [get].
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.EventService.Get(r.Context(), principal(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEventResponse(e))
}

// HandleUpdate handles PATCH /v1/events/{id}
//
//	@Summary		Update an event
//	@Description	Only the fields present in the body change. Non-privileged managers may only edit events they created. Generated instances are not rewritten.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Event ID"
//	@Param			request	body		shepherdsdk.EventRequest	true	"Fields to change"
//	@Success		200		{object}	shepherdsdk.EventResponse	"Updated event"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse	"Validation failed"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse	"Event not found"
//	@Router			/v1/events/{id} [patch].
func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	raw, err := readPatch(r, &shepherdsdk.EventRequest{})
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	e, err := h.EventService.Update(r.Context(), principal(r), r.PathValue("id"), func(e *domain.Event) {
		req := eventRequestFrom(*e)
		mergePatch(&req, raw)
		applyEventRequest(e, req)
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEventResponse(e))
}

// HandleDelete handles DELETE /v1/events/{id}
//
//	@Summary		Delete an event
//	@Description	Deleting a recurring template also deletes its instances and their attendance.
//	@Tags			Events
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Event ID"
//	@Success		204
//	@Failure		403	{object}	shepherdsdk.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse	"Event not found"
//	@Router			/v1/events/{id} [delete].
func (h *EventsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EventService.Delete(r.Context(), principal(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCheckInCode handles GET /v1/events/{id}/checkin-code
//
//	@Summary		Current check-in code
//	@Description	The rotating code attendees enter to check themselves in. Codes change every minute.
//	@Tags			Events
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Event ID"
//	@Success		200	{object}	shepherdsdk.CheckInCodeResponse	"Code and expiry"
//	@Failure		403	{object}	shepherdsdk.ErrorResponse		"Forbidden"
//	@Failure		404	{object}	shepherdsdk.ErrorResponse		"Event not found"
//	@Router			/v1/events/{id}/checkin-code [get].
func (h *EventsHandler) HandleCheckInCode(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("resource") != "checkin-code" {
		httpx.WriteError(w, http.StatusNotFound, shepherdsdk.ErrorCodeNotFound, "Not found")
		return
	}

	code, err := h.EventService.CheckInCode(r.Context(), principal(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, shepherdsdk.CheckInCodeResponse{
		Code:       code.Code,
		ValidUntil: code.ValidUntil,
	})
}
