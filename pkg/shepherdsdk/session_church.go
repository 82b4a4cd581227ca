package shepherdsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ============================================================================
// Members
// ============================================================================

func (s *Session) RegisterMember(ctx context.Context, req MemberRequest) (*MemberResponse, error) {
	var m MemberResponse
	if err := s.call(ctx, http.MethodPost, "/v1/members", req, &m, http.StatusCreated); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Session) ListMembers(ctx context.Context, page, limit int) (*ListMembersResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var res ListMembersResponse
	if err := s.call(ctx, http.MethodGet, withQuery("/v1/members", q), nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) GetMember(ctx context.Context, id string) (*MemberResponse, error) {
	var m MemberResponse
	if err := s.call(ctx, http.MethodGet, "/v1/members/"+url.PathEscape(id), nil, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMember sends patch as the body; only the fields present change.
func (s *Session) UpdateMember(ctx context.Context, id string, patch any) (*MemberResponse, error) {
	var m MemberResponse
	if err := s.call(ctx, http.MethodPatch, "/v1/members/"+url.PathEscape(id), patch, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Session) ArchiveMember(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodPatch, "/v1/members/"+url.PathEscape(id)+"/archive", nil, nil, http.StatusNoContent)
}

// ============================================================================
// Events
// ============================================================================

func (s *Session) CreateEvent(ctx context.Context, req EventRequest) (*CreateEventResponse, error) {
	var res CreateEventResponse
	if err := s.call(ctx, http.MethodPost, "/v1/events", req, &res, http.StatusCreated); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) ListEvents(ctx context.Context, f EventQuery) (*ListEventsResponse, error) {
	q := url.Values{}
	for key, v := range map[string]string{
		"type":       f.Type,
		"department": f.Department,
		"status":     f.Status,
		"visibility": f.Visibility,
	} {
		if v != "" {
			q.Set(key, v)
		}
	}
	setTime(q, "from", f.From)
	setTime(q, "to", f.To)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return s.listEvents(ctx, withQuery("/v1/events", q))
}

func (s *Session) UpcomingEvents(ctx context.Context) (*ListEventsResponse, error) {
	return s.listEvents(ctx, "/v1/events/upcoming")
}

func (s *Session) DepartmentEvents(ctx context.Context, department string, f EventQuery) (*ListEventsResponse, error) {
	q := url.Values{}
	setTime(q, "from", f.From)
	setTime(q, "to", f.To)
	return s.listEvents(ctx, withQuery("/v1/events/department/"+url.PathEscape(department), q))
}

func (s *Session) listEvents(ctx context.Context, path string) (*ListEventsResponse, error) {
	var res ListEventsResponse
	if err := s.call(ctx, http.MethodGet, path, nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) GetEvent(ctx context.Context, id string) (*EventResponse, error) {
	var e EventResponse
	if err := s.call(ctx, http.MethodGet, "/v1/events/"+url.PathEscape(id), nil, &e, http.StatusOK); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent sends patch as the body; only the fields present change.
func (s *Session) UpdateEvent(ctx context.Context, id string, patch any) (*EventResponse, error) {
	var e EventResponse
	if err := s.call(ctx, http.MethodPatch, "/v1/events/"+url.PathEscape(id), patch, &e, http.StatusOK); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Session) DeleteEvent(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/events/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) CheckInCode(ctx context.Context, eventID string) (*CheckInCodeResponse, error) {
	var res CheckInCodeResponse
	path := "/v1/events/" + url.PathEscape(eventID) + "/checkin-code"
	if err := s.call(ctx, http.MethodGet, path, nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

// ============================================================================
// Attendance
// ============================================================================

func (s *Session) RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (*AttendanceResponse, error) {
	return s.attendance(ctx, http.MethodPost, "/v1/attendance", req, http.StatusCreated)
}

func (s *Session) SelfCheckIn(ctx context.Context, eventID, code string) (*AttendanceResponse, error) {
	req := SelfCheckInRequest{EventID: eventID, Code: code}
	return s.attendance(ctx, http.MethodPost, "/v1/attendance/self-checkin", req, http.StatusCreated)
}

func (s *Session) CheckOut(ctx context.Context, id, remarks string) (*AttendanceResponse, error) {
	path := "/v1/attendance/" + url.PathEscape(id) + "/checkout"
	return s.attendance(ctx, http.MethodPatch, path, CheckOutRequest{Remarks: remarks}, http.StatusOK)
}

func (s *Session) UpdateAttendanceStatus(ctx context.Context, id string, req UpdateAttendanceStatusRequest) (*AttendanceResponse, error) {
	path := "/v1/attendance/" + url.PathEscape(id) + "/status"
	return s.attendance(ctx, http.MethodPatch, path, req, http.StatusOK)
}

func (s *Session) attendance(ctx context.Context, method, path string, in any, expected int) (*AttendanceResponse, error) {
	var a AttendanceResponse
	if err := s.call(ctx, method, path, in, &a, expected); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Session) EventAttendance(ctx context.Context, eventID, status string) (*ListAttendanceResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return s.listAttendance(ctx, withQuery("/v1/attendance/event/"+url.PathEscape(eventID), q))
}

func (s *Session) MemberAttendance(ctx context.Context, memberID string, f AttendanceFilter) (*ListAttendanceResponse, error) {
	return s.listAttendance(ctx, withQuery("/v1/attendance/member/"+url.PathEscape(memberID), filterQuery(f)))
}

func (s *Session) listAttendance(ctx context.Context, path string) (*ListAttendanceResponse, error) {
	var res ListAttendanceResponse
	if err := s.call(ctx, http.MethodGet, path, nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) AttendanceStats(ctx context.Context, eventID string) (*AttendanceStatsResponse, error) {
	var res AttendanceStatsResponse
	path := "/v1/attendance/event/" + url.PathEscape(eventID) + "/stats"
	if err := s.call(ctx, http.MethodGet, path, nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) DepartmentReport(ctx context.Context, department string, f AttendanceFilter) (*DepartmentReportResponse, error) {
	var res DepartmentReportResponse
	path := withQuery("/v1/attendance/department/"+url.PathEscape(department)+"/report", filterQuery(f))
	if err := s.call(ctx, http.MethodGet, path, nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func filterQuery(f AttendanceFilter) url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	setTime(q, "from", f.From)
	setTime(q, "to", f.To)
	return q
}

// ============================================================================
// Discipleship
// ============================================================================

func (s *Session) StartJourney(ctx context.Context, req StartJourneyRequest) (*JourneyResponse, error) {
	return s.journey(ctx, http.MethodPost, "/v1/discipleship/start", req, http.StatusCreated)
}

func (s *Session) UpdateJourney(ctx context.Context, id string, req UpdateJourneyRequest) (*JourneyResponse, error) {
	return s.journey(ctx, http.MethodPatch, "/v1/discipleship/"+url.PathEscape(id), req, http.StatusOK)
}

func (s *Session) AddJourneyNote(ctx context.Context, id string, req AddNoteRequest) (*JourneyResponse, error) {
	return s.journey(ctx, http.MethodPatch, "/v1/discipleship/"+url.PathEscape(id)+"/add-note", req, http.StatusOK)
}

func (s *Session) MemberJourney(ctx context.Context, memberID string) (*JourneyResponse, error) {
	return s.journey(ctx, http.MethodGet, "/v1/discipleship/member/"+url.PathEscape(memberID), nil, http.StatusOK)
}

func (s *Session) journey(ctx context.Context, method, path string, in any, expected int) (*JourneyResponse, error) {
	var j JourneyResponse
	if err := s.call(ctx, method, path, in, &j, expected); err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *Session) Mentees(ctx context.Context, mentorID string) (*ListJourneysResponse, error) {
	var res ListJourneysResponse
	if err := s.call(ctx, http.MethodGet, "/v1/discipleship/mentor/"+url.PathEscape(mentorID), nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) DeleteJourney(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/discipleship/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}
