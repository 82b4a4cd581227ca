package http

import (
	"net/http"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/pkg/httpx"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
)

type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleRecord handles POST /v1/attendance
//
//	@Summary		Record attendance
//	@Description	One record per member and event. Lateness is measured from the event start in whole minutes. The token method requires the event's current check-in code.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		shepherdsdk.RecordAttendanceRequest	true	"Check-in"
//	@Success		201		{object}	shepherdsdk.AttendanceResponse		"Recorded attendance"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse			"Validation failed or invalid code"
//	@Failure		403		{object}	shepherdsdk.ErrorResponse			"Forbidden"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse			"Event or member not found"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse			"Already recorded"
//	@Router			/v1/attendance [post].
func (h *AttendanceHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.RecordAttendanceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	a, err := h.AttendanceService.Record(r.Context(), principal(r), service.RecordAttendance{
		MemberID:    req.MemberID,
		EventID:     req.EventID,
		Status:      domain.AttendanceStatus(req.Status),
		Method:      domain.CheckInMethod(req.CheckInMethod),
		CheckInTime: req.CheckInTime,
		Remarks:     req.Remarks,
		Code:        req.Code,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAttendanceResponse(a))
}

// HandleSelfCheckIn handles POST /v1/attendance/self-checkin
//
//	@Summary		Check yourself in
//	@Description	Records the caller as present using the event's current check-in code.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		shepherdsdk.SelfCheckInRequest	true	"Event and code"
//	@Success		201		{object}	shepherdsdk.AttendanceResponse	"Recorded attendance"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse		"Invalid code"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse		"Event not found"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse		"Already recorded"
//	@Router			/v1/attendance/self-checkin [post].
func (h *AttendanceHandler) HandleSelfCheckIn(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.SelfCheckInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	a, err := h.AttendanceService.SelfCheckIn(r.Context(), principal(r), req.EventID, req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAttendanceResponse(a))
}

// HandleCheckOut handles PATCH /v1/attendance/{id}/checkout
//
//	@Summary		Check out
//	@Description	Stamps the check-out time. A record can only be checked out once.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Attendance ID"
//	@Param			request	body		shepherdsdk.CheckOutRequest		false	"Optional remarks"
//	@Success		200		{object}	shepherdsdk.AttendanceResponse	"Updated attendance"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse		"Attendance not found"
//	@Failure		409		{object}	shepherdsdk.ErrorResponse		"Already checked out"
//	@Router			/v1/attendance/{id}/checkout [patch].
func (h *AttendanceHandler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.CheckOutRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			writeBadRequest(w, err.Error())
			return
		}
	}

	a, err := h.AttendanceService.CheckOut(r.Context(), r.PathValue("id"), req.Remarks)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAttendanceResponse(a))
}

// HandleUpdateStatus handles PATCH /v1/attendance/{id}/status
//
//	@Summary		Change attendance status
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string										true	"Attendance ID"
//	@Param			request	body		shepherdsdk.UpdateAttendanceStatusRequest	true	"New status"
//	@Success		200		{object}	shepherdsdk.AttendanceResponse				"Updated attendance"
//	@Failure		400		{object}	shepherdsdk.ErrorResponse					"Invalid status"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse					"Attendance not found"
//	@Router			/v1/attendance/{id}/status [patch].
func (h *AttendanceHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req shepherdsdk.UpdateAttendanceStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	a, err := h.AttendanceService.UpdateStatus(r.Context(), r.PathValue("id"), domain.AttendanceStatus(req.Status), req.Remarks)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAttendanceResponse(a))
}

// HandleEventAttendance handles GET /v1/attendance/event/{eventId}
//
//	@Summary		Attendance for an event
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			eventId	path		string								true	"Event ID"
//	@Param			status	query		string								false	"present, absent or livestream"
//	@Success		200		{object}	shepherdsdk.ListAttendanceResponse	"Records in check-in order"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse			"Event not found"
//	@Router			/v1/attendance/event/{eventId} [get].
func (h *AttendanceHandler) HandleEventAttendance(w http.ResponseWriter, r *http.Request) {
	status := domain.AttendanceStatus(r.URL.Query().Get("status"))
	records, err := h.AttendanceService.EventAttendance(r.Context(), r.PathValue("eventId"), status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAttendanceList(records))
}

// HandleEventStats handles GET /v1/attendance/event/{eventId}/stats
//
//	@Summary		Attendance counts for an event
//	@Description	Counts per status. Statuses with no records are reported as zero.
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			eventId	path		string								true	"Event ID"
//	@Success		200		{object}	shepherdsdk.AttendanceStatsResponse	"Counts"
//	@Failure		404		{object}	shepherdsdk.ErrorResponse			"Event not found"
//	@Router			/v1/attendance/event/{eventId}/stats [get].
func (h *AttendanceHandler) HandleEventStats(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	stats, err := h.AttendanceService.EventStats(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := shepherdsdk.AttendanceStatsResponse{EventID: eventID, Stats: make(map[string]int, len(stats))}
	for status, n := range stats {
		res.Stats[string(status)] = n
		res.Total += n
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

// HandleMemberHistory handles GET /v1/attendance/member/{memberId}
//
//	@Summary		A member's attendance history
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			memberId	path		string								true	"User ID of the member"
//	@Param			status		query		string								false	"present, absent or livestream"
//	@Param			from		query		string								false	"Checked in at or after (RFC 3339)"
//	@Param			to			query		string								false	"Checked in at or before (RFC 3339)"
//	@Success		200			{object}	shepherdsdk.ListAttendanceResponse	"Records, newest first"
//	@Failure		400			{object}	shepherdsdk.ErrorResponse			"Invalid query parameters"
//	@Router			/v1/attendance/member/{memberId} [get].
func (h *AttendanceHandler) HandleMemberHistory(w http.ResponseWriter, r *http.Request) {
	f, ok := attendanceFilter(w, r)
	if !ok {
		return
	}

	records, err := h.AttendanceService.MemberHistory(r.Context(), r.PathValue("memberId"), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAttendanceList(records))
}

// HandleDepartmentReport handles GET /v1/attendance/department/{department}/report
//
//	@Summary		Department attendance report
//	@Description	Counts per event and status for events hosted by the department, filtered on check-in time.
//	@Tags			Attendance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			department	path		string									true	"Department"
//	@Param			from		query		string									false	"Checked in at or after (RFC 3339)"
//	@Param			to			query		string									false	"Checked in at or before (RFC 3339)"
//	@Success		200			{object}	shepherdsdk.DepartmentReportResponse	"Report rows"
//	@Failure		403			{object}	shepherdsdk.ErrorResponse				"No access to the department"
//	@Router			/v1/attendance/department/{department}/report [get].
func (h *AttendanceHandler) HandleDepartmentReport(w http.ResponseWriter, r *http.Request) {
	f, ok := attendanceFilter(w, r)
	if !ok {
		return
	}

	department := r.PathValue("department")
	rows, err := h.AttendanceService.DepartmentReport(r.Context(), principal(r), department, f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := shepherdsdk.DepartmentReportResponse{
		Department: department,
		Rows:       make([]shepherdsdk.DepartmentReportRow, len(rows)),
	}
	for i, row := range rows {
		res.Rows[i] = shepherdsdk.DepartmentReportRow{
			EventID:    row.EventID,
			EventTitle: row.EventTitle,
			Status:     string(row.Status),
			Count:      row.Count,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func attendanceFilter(w http.ResponseWriter, r *http.Request) (domain.AttendanceFilter, bool) {
	q := newQueryParams(r)
	f := domain.AttendanceFilter{
		Status: domain.AttendanceStatus(q.String("status")),
		From:   q.Time("from"),
		To:     q.Time("to"),
	}
	return f, q.Ok(w)
}
