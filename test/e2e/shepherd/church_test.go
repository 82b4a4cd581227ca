package shepherd_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
	"github.com/stretchr/testify/require"
)

// TestMemberRegistry runs a member record through registration, a partial
// update and archival with each role's guard in play.
func TestMemberRegistry(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, pastor := bootstrapPastor(t, client)
	_, deacon := signupWithRoles(t, client, pastor, "deacon@example.com", []string{"Ushering"}, "Deacon")
	_, plain := signupWithRoles(t, client, pastor, "plain@example.com", nil)

	_, err := plain.RegisterMember(ctx, testMember("lydia@example.com"))
	assertStatus(t, err, http.StatusForbidden, "Member without roles registering")

	member, err := deacon.RegisterMember(ctx, testMember("Lydia@Example.com"))
	require.NoError(t, err)
	require.Equal(t, "lydia@example.com", member.Email)
	require.Equal(t, "Visitor", member.MembershipStatus)

	_, err = deacon.RegisterMember(ctx, testMember("lydia@example.com"))
	assertStatus(t, err, http.StatusConflict, "Duplicate member email")

	updated, err := deacon.UpdateMember(ctx, member.ID, map[string]any{"city": "Thessalonica"})
	require.NoError(t, err)
	require.Equal(t, "Thessalonica", updated.City)
	require.Equal(t, member.FullName, updated.FullName)

	list, err := plain.ListMembers(ctx, 1, 10)
	assertStatus(t, err, http.StatusForbidden, "Member without roles listing")
	require.Nil(t, list)

	list, err = deacon.ListMembers(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	err = deacon.ArchiveMember(ctx, member.ID)
	assertStatus(t, err, http.StatusForbidden, "Deacon archiving")

	require.NoError(t, pastor.ArchiveMember(ctx, member.ID))

	list, err = pastor.ListMembers(ctx, 1, 10)
	require.NoError(t, err)
	require.Zero(t, list.Total)
}

// TestRecurringEventCheckIn creates a weekly service, fetches the rotating
// code and checks in with it.
func TestRecurringEventCheckIn(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, pastor := bootstrapPastor(t, client)
	_, deacon := signupWithRoles(t, client, pastor, "deacon@example.com", []string{"Ushering"}, "Deacon")
	attendee, member := signupWithRoles(t, client, pastor, "attendee@example.com", nil)

	start := time.Now().UTC().Add(-10 * time.Minute).Truncate(time.Second)
	end := start.Add(15 * 24 * time.Hour)
	req := testEvent("Sunday Service", "Ushering", start)
	req.IsRecurring = true
	req.RecurringPattern = &shepherdsdk.RecurrencePattern{
		Frequency:  "weekly",
		Interval:   1,
		DaysOfWeek: []int{int(start.Weekday())},
		EndDate:    &end,
	}

	_, err := member.CreateEvent(ctx, req)
	assertStatus(t, err, http.StatusForbidden, "Member without roles creating an event")

	created, err := deacon.CreateEvent(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 2, created.InstancesCreated)
	require.Equal(t, "public", created.Event.Visibility)
	require.Equal(t, "scheduled", created.Event.Status)

	events, err := deacon.DepartmentEvents(ctx, "Ushering", shepherdsdk.EventQuery{})
	require.NoError(t, err)
	require.Len(t, events.Events, 3)

	_, err = member.DepartmentEvents(ctx, "Ushering", shepherdsdk.EventQuery{})
	assertStatus(t, err, http.StatusForbidden, "Member outside the department")

	_, err = member.CheckInCode(ctx, created.Event.ID)
	assertStatus(t, err, http.StatusForbidden, "Member without roles fetching the check-in code")

	code, err := deacon.CheckInCode(ctx, created.Event.ID)
	require.NoError(t, err)
	require.Len(t, code.Code, 6)
	require.True(t, code.ValidUntil.After(time.Now().Add(-time.Minute)))

	_, err = member.SelfCheckIn(ctx, created.Event.ID, "000000x")
	assertStatus(t, err, http.StatusBadRequest, "Self check-in with a bad code")

	record, err := member.SelfCheckIn(ctx, created.Event.ID, code.Code)
	require.NoError(t, err)
	require.Equal(t, attendee.ID, record.MemberID)
	require.Equal(t, "present", record.Status)
	require.Equal(t, "token", record.CheckInMethod)
	require.True(t, record.IsLate)

	_, err = member.SelfCheckIn(ctx, created.Event.ID, code.Code)
	assertStatus(t, err, http.StatusConflict, "Second self check-in")

	out, err := deacon.CheckOut(ctx, record.ID, "left after the sermon")
	require.NoError(t, err)
	require.NotNil(t, out.CheckOutTime)

	stats, err := member.AttendanceStats(ctx, created.Event.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Stats["present"])

	history, err := member.MemberAttendance(ctx, attendee.ID, shepherdsdk.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, history.Attendance, 1)

	err = deacon.DeleteEvent(ctx, created.Event.ID)
	assertStatus(t, err, http.StatusForbidden, "Deacon deleting an event")
	require.NoError(t, pastor.DeleteEvent(ctx, created.Event.ID))

	_, err = member.GetEvent(ctx, created.Event.ID)
	assertStatus(t, err, http.StatusNotFound, "Deleted event")
}

// TestDiscipleshipJourney covers who may start a journey and who may read
// its confidential notes.
func TestDiscipleshipJourney(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	pastorUser, pastor := bootstrapPastor(t, client)
	_, deacon := signupWithRoles(t, client, pastor, "deacon@example.com", nil, "Deacon")
	disciple, member := signupWithRoles(t, client, pastor, "disciple@example.com", nil)

	start := shepherdsdk.StartJourneyRequest{
		MemberID: disciple.ID,
		MentorID: pastorUser.ID,
		Goals:    []string{"Read the gospels"},
	}

	_, err := deacon.StartJourney(ctx, start)
	assertStatus(t, err, http.StatusForbidden, "Deacon starting a journey")

	journey, err := pastor.StartJourney(ctx, start)
	require.NoError(t, err)
	require.Equal(t, "in_progress", journey.Status)
	require.NotNil(t, journey.NextCheckIn)

	_, err = pastor.StartJourney(ctx, start)
	assertStatus(t, err, http.StatusConflict, "Second journey for the member")

	_, err = pastor.AddJourneyNote(ctx, journey.ID, shepherdsdk.AddNoteRequest{Note: "Shared openly"})
	require.NoError(t, err)
	_, err = pastor.AddJourneyNote(ctx, journey.ID, shepherdsdk.AddNoteRequest{Note: "Family matters", IsConfidential: true})
	require.NoError(t, err)

	own, err := member.MemberJourney(ctx, disciple.ID)
	require.NoError(t, err)
	require.Len(t, own.ProgressNotes, 1)
	require.Equal(t, "Shared openly", own.ProgressNotes[0].Note)

	full, err := pastor.MemberJourney(ctx, disciple.ID)
	require.NoError(t, err)
	require.Len(t, full.ProgressNotes, 2)

	_, err = member.Mentees(ctx, pastorUser.ID)
	assertStatus(t, err, http.StatusForbidden, "Member listing the mentor's mentees")

	mentees, err := pastor.Mentees(ctx, pastorUser.ID)
	require.NoError(t, err)
	require.Len(t, mentees.Journeys, 1)
	require.Empty(t, mentees.Journeys[0].ProgressNotes)

	completed := "completed"
	updated, err := pastor.UpdateJourney(ctx, journey.ID, shepherdsdk.UpdateJourneyRequest{Status: &completed})
	require.NoError(t, err)
	require.Equal(t, "completed", updated.Status)

	require.NoError(t, pastor.DeleteJourney(ctx, journey.ID))
	_, err = pastor.MemberJourney(ctx, disciple.ID)
	assertStatus(t, err, http.StatusNotFound, "Deleted journey")
}

// TestRateLimiting verifies sign in is throttled under the production
// limits.
func TestRateLimiting(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := shepherdsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	var lastErr error
	for range 10 {
		_, lastErr = client.Signin(ctx, "nobody@example.com", "wrong-password")
		if shepherdsdk.StatusCode(lastErr) == http.StatusTooManyRequests {
			break
		}
	}
	assertStatus(t, lastErr, http.StatusTooManyRequests, "Repeated sign in attempts")
}
