package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
	"github.com/stretchr/testify/require"
)

func testMemberRequest(email string) shepherdsdk.MemberRequest {
	return shepherdsdk.MemberRequest{
		FullName:      "Ruth Moabite",
		Gender:        "Female",
		DateOfBirth:   time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC),
		PhoneNumber:   "+61 400 000 000",
		Email:         email,
		HomeAddress:   "1 Field Road",
		City:          "Bethlehem",
		Region:        "Judah",
		MaritalStatus: "Married",
		EmergencyContact: shepherdsdk.EmergencyContact{
			Name:         "Naomi",
			Relationship: "Mother-in-law",
			PhoneNumber:  "+61 400 000 001",
		},
	}
}

func testEventRequest(title string, start time.Time) shepherdsdk.EventRequest {
	return shepherdsdk.EventRequest{
		Title:          title,
		Type:           "service",
		HostDepartment: "Youth",
		Location:       "Main hall",
		StartDateTime:  start,
		EndDateTime:    start.Add(2 * time.Hour),
	}
}

func TestSystemEndpoints(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[shepherdsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	rec = ts.do(http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health = decode[shepherdsdk.HealthResponse](t, rec)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	rec = ts.do(http.MethodGet, "/.well-known/jwks.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	jwks := decode[map[string][]map[string]any](t, rec)
	require.Len(t, jwks["keys"], 1)
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/v1/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/members", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPrincipalStoreFailure(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	_, token := ts.seedUser("pastor@example.com", nil, rbac.RolePastor)

	// A valid token against an unreachable store is a server fault.
	require.NoError(t, ts.store.Close())

	rec := ts.do(http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, shepherdsdk.ErrorCodeServerError, decode[shepherdsdk.ErrorResponse](t, rec).Error)
}

func TestSignupSigninMe(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/auth/signup", "", shepherdsdk.SignupRequest{
		Email:    "Hannah@Example.com",
		Password: testPassword,
		FullName: "Hannah",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[shepherdsdk.UserResponse](t, rec)
	require.Equal(t, "hannah@example.com", user.Email)
	require.Empty(t, user.RoleIDs)

	rec = ts.do(http.MethodPost, "/v1/auth/signup", "", shepherdsdk.SignupRequest{
		Email:    "hannah@example.com",
		Password: testPassword,
		FullName: "Hannah again",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodPost, "/v1/auth/signin", "", shepherdsdk.SigninRequest{
		Email:    "hannah@example.com",
		Password: "wrong password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, shepherdsdk.ErrorCodeInvalidCredential, decode[shepherdsdk.ErrorResponse](t, rec).Error)

	rec = ts.do(http.MethodPost, "/v1/auth/signin", "", shepherdsdk.SigninRequest{
		Email:    "hannah@example.com",
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[shepherdsdk.TokenResponse](t, rec)
	require.Equal(t, "Bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	require.Positive(t, token.ExpiresIn)

	rec = ts.do(http.MethodGet, "/v1/auth/me", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := decode[shepherdsdk.MeResponse](t, rec)
	require.Equal(t, user.ID, me.User.ID)
	require.Empty(t, me.Roles)
}

func TestSigninRequiresCredentials(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/auth/signin", "", shepherdsdk.SigninRequest{Email: "a@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, shepherdsdk.ErrorCodeValidationFailed, decode[shepherdsdk.ErrorResponse](t, rec).Error)

	rec = ts.do(http.MethodPost, "/v1/auth/signin", "", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	_, pastor := ts.seedUser("pastor@example.com", nil, rbac.RoleSeniorPastor)
	_, member := ts.seedUser("member@example.com", nil)

	rec := ts.do(http.MethodGet, "/v1/roles", member, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, shepherdsdk.ErrorCodeForbidden, decode[shepherdsdk.ErrorResponse](t, rec).Error)

	rec = ts.do(http.MethodGet, "/v1/roles", pastor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	roles := decode[shepherdsdk.ListRolesResponse](t, rec)
	require.Len(t, roles.Roles, 7)
	require.Equal(t, rbac.RoleSeniorPastor, roles.Roles[0].Name)

	rec = ts.do(http.MethodPost, "/v1/roles", pastor, shepherdsdk.RoleRequest{
		Name:        rbac.RoleITOfficer,
		Description: "Maintains the member directory",
		Level:       5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[shepherdsdk.RoleResponse](t, rec)
	require.False(t, created.IsSystem)

	rec = ts.do(http.MethodPut, "/v1/roles/"+created.ID, pastor, `{"level": 4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[shepherdsdk.RoleResponse](t, rec)
	require.Equal(t, 4, updated.Level)
	require.Equal(t, "Maintains the member directory", updated.Description)

	rec = ts.do(http.MethodDelete, "/v1/roles/"+created.ID, pastor, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/roles/missing", pastor, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMemberLifecycle(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	_, pastor := ts.seedUser("pastor@example.com", nil, rbac.RolePastor)
	_, deacon := ts.seedUser("deacon@example.com", nil, rbac.RoleDeacon)
	_, member := ts.seedUser("member@example.com", nil)

	rec := ts.do(http.MethodPost, "/v1/members", member, testMemberRequest("ruth@example.com"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPost, "/v1/members", deacon, testMemberRequest("ruth@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ruth := decode[shepherdsdk.MemberResponse](t, rec)
	require.Equal(t, "Visitor", ruth.MembershipStatus)

	bad := testMemberRequest("not an email")
	bad.Gender = "unknown"
	rec = ts.do(http.MethodPost, "/v1/members", deacon, bad)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	verr := decode[shepherdsdk.ErrorResponse](t, rec)
	require.Equal(t, shepherdsdk.ErrorCodeValidationFailed, verr.Error)
	require.Contains(t, verr.Fields, "email")
	require.Contains(t, verr.Fields, "gender")

	rec = ts.do(http.MethodPatch, "/v1/members/"+ruth.ID, deacon, `{"city": "Moab"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[shepherdsdk.MemberResponse](t, rec)
	require.Equal(t, "Moab", patched.City)
	require.Equal(t, ruth.FullName, patched.FullName)
	require.Equal(t, ruth.EmergencyContact, patched.EmergencyContact)

	rec = ts.do(http.MethodPatch, "/v1/members/"+ruth.ID, deacon, `["city"]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/members?page=1&limit=10", deacon, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[shepherdsdk.ListMembersResponse](t, rec)
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Members, 1)

	rec = ts.do(http.MethodGet, "/v1/members?page=zero", deacon, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPatch, "/v1/members/"+ruth.ID+"/archive", deacon, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPatch, "/v1/members/"+ruth.ID+"/archive", pastor, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/members", pastor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, decode[shepherdsdk.ListMembersResponse](t, rec).Total)
}

func TestEventRoutes(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	_, deacon := ts.seedUser("deacon@example.com", nil, rbac.RoleDeacon)
	_, member := ts.seedUser("member@example.com", nil)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	end := start.AddDate(0, 0, 14)
	req := testEventRequest("Youth night", start)
	req.IsRecurring = true
	req.RecurringPattern = &shepherdsdk.RecurrencePattern{Frequency: "weekly", EndDate: &end}

	rec := ts.do(http.MethodPost, "/v1/events", member, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPost, "/v1/events", deacon, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[shepherdsdk.CreateEventResponse](t, rec)
	require.Equal(t, 2, created.InstancesCreated)
	require.Equal(t, "public", created.Event.Visibility)
	require.Equal(t, "scheduled", created.Event.Status)
	id := created.Event.ID

	rec = ts.do(http.MethodGet, "/v1/events/"+id, member, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/events/department/Youth", deacon, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[shepherdsdk.ListEventsResponse](t, rec).Events, 3)

	rec = ts.do(http.MethodGet, "/v1/events?type=service&limit=abc", deacon, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/events/"+id+"/checkin-code", deacon, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"), "rotating codes must not be cached")
	code := decode[shepherdsdk.CheckInCodeResponse](t, rec)
	require.Len(t, code.Code, 6)
	require.True(t, code.ValidUntil.After(time.Now().Add(-time.Second)))

	rec = ts.do(http.MethodGet, "/v1/events/"+id+"/checkin-code", member, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/events/"+id+"/unknown", deacon, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodPatch, "/v1/events/"+id, deacon, `{"location": "Chapel"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[shepherdsdk.EventResponse](t, rec)
	require.Equal(t, "Chapel", patched.Location)
	require.Equal(t, "Youth night", patched.Title)

	rec = ts.do(http.MethodGet, "/v1/events/missing", deacon, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Deletion is reserved for pastors.
	rec = ts.do(http.MethodDelete, "/v1/events/"+id, deacon, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSelfCheckIn(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	_, deacon := ts.seedUser("deacon@example.com", nil, rbac.RoleDeacon)
	attendee, token := ts.seedUser("member@example.com", nil)

	rec := ts.do(http.MethodPost, "/v1/events", deacon, testEventRequest("Prayer meeting", time.Now().UTC().Add(-5*time.Minute)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	eventID := decode[shepherdsdk.CreateEventResponse](t, rec).Event.ID

	rec = ts.do(http.MethodPost, "/v1/attendance/self-checkin", token, shepherdsdk.SelfCheckInRequest{
		EventID: eventID,
		Code:    "000000x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/events/"+eventID+"/checkin-code", deacon, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	code := decode[shepherdsdk.CheckInCodeResponse](t, rec)

	rec = ts.do(http.MethodPost, "/v1/attendance/self-checkin", token, shepherdsdk.SelfCheckInRequest{
		EventID: eventID,
		Code:    code.Code,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	a := decode[shepherdsdk.AttendanceResponse](t, rec)
	require.Equal(t, attendee.ID, a.MemberID)
	require.Equal(t, "present", a.Status)
	require.Equal(t, "token", a.CheckInMethod)
	require.True(t, a.IsLate)

	rec = ts.do(http.MethodPost, "/v1/attendance/self-checkin", token, shepherdsdk.SelfCheckInRequest{
		EventID: eventID,
		Code:    code.Code,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodPatch, "/v1/attendance/"+a.ID+"/checkout", deacon, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, decode[shepherdsdk.AttendanceResponse](t, rec).CheckOutTime)

	rec = ts.do(http.MethodPatch, "/v1/attendance/"+a.ID+"/checkout", deacon, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/attendance/event/"+eventID+"/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[shepherdsdk.AttendanceStatsResponse](t, rec)
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Stats["present"])
	require.Zero(t, stats.Stats["absent"])
}

func TestDiscipleshipRoutes(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	mentor, pastor := ts.seedUser("pastor@example.com", nil, rbac.RolePastor)
	disciple, memberToken := ts.seedUser("member@example.com", nil)
	_, deacon := ts.seedUser("deacon@example.com", nil, rbac.RoleDeacon)

	start := shepherdsdk.StartJourneyRequest{MemberID: disciple.ID, MentorID: mentor.ID, Goals: []string{"Read Mark"}}

	rec := ts.do(http.MethodPost, "/v1/discipleship/start", deacon, start)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPost, "/v1/discipleship/start", pastor, start)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	journey := decode[shepherdsdk.JourneyResponse](t, rec)
	require.Equal(t, "in_progress", journey.Status)
	require.NotNil(t, journey.NextCheckIn)

	rec = ts.do(http.MethodPost, "/v1/discipleship/start", pastor, start)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodPatch, "/v1/discipleship/"+journey.ID+"/add-note", pastor,
		shepherdsdk.AddNoteRequest{Note: "Struggling with doubt", IsConfidential: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, decode[shepherdsdk.JourneyResponse](t, rec).ProgressNotes, 1)

	rec = ts.do(http.MethodGet, "/v1/discipleship/member/"+disciple.ID, memberToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Empty(t, decode[shepherdsdk.JourneyResponse](t, rec).ProgressNotes)

	rec = ts.do(http.MethodGet, "/v1/discipleship/mentor/"+mentor.ID, memberToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodDelete, "/v1/discipleship/"+journey.ID, pastor, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	body := shepherdsdk.BootstrapRequest{Email: "lead@example.com", FullName: "Lead Pastor", Password: testPassword}

	rec := ts.do(http.MethodPost, "/v1/bootstrap", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := func() *http.Request {
		r := newJSONRequest(t, http.MethodPost, "/v1/bootstrap", body)
		r.Header.Set("X-Bootstrap-Token", testBootstrap)
		return r
	}

	rec = ts.serve(req())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[shepherdsdk.UserResponse](t, rec)
	require.Len(t, user.RoleIDs, 1)

	rec = ts.serve(req())
	require.Equal(t, http.StatusConflict, rec.Code)
}
