package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func testEvent(title string, start time.Time) domain.Event {
	return domain.Event{
		Title:          title,
		Type:           domain.EventService,
		HostDepartment: "Youth",
		Location:       "Main hall",
		StartDateTime:  start,
		EndDateTime:    start.Add(2 * time.Hour),
	}
}

func TestEventCreateExpandsInstances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s, Now: func() time.Time { return testNow }}
	deacon := principalFor(t, s, seedUser(t, s, "deacon@example.com", nil, rbac.RoleDeacon))

	start := testNow.Add(24 * time.Hour)
	end := start.AddDate(0, 0, 28)
	e := testEvent("Sunday service", start)
	e.IsRecurring = true
	e.RecurringPattern = &domain.RecurrencePattern{Frequency: domain.FrequencyWeekly, EndDate: &end}

	created, err := svc.Create(ctx, deacon, e)
	require.NoError(t, err)
	require.Equal(t, 4, created.Instances)
	require.Equal(t, deacon.UserID, created.Event.CreatedBy)
	require.Equal(t, domain.VisibilityPublic, created.Event.Visibility)
	require.Equal(t, domain.StatusScheduled, created.Event.Status)
	require.Equal(t, 1, created.Event.RecurringPattern.Interval)
	require.NotEmpty(t, created.Event.CheckInSecret)

	instances, err := s.Events().ListInstances(ctx, created.Event.ID)
	require.NoError(t, err)
	require.Len(t, instances, 4)

	secrets := map[string]struct{}{created.Event.CheckInSecret: {}}
	for i, inst := range instances {
		require.Equal(t, created.Event.ID, inst.ParentEvent)
		require.False(t, inst.IsRecurring)
		require.True(t, inst.StartDateTime.Equal(start.AddDate(0, 0, 7*(i+1))))
		require.Equal(t, 2*time.Hour, inst.Duration())
		secrets[inst.CheckInSecret] = struct{}{}
	}
	require.Len(t, secrets, 5)
}

func TestEventCreateGuards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s}

	t.Run("lane leaders are not event managers", func(t *testing.T) {
		p := principalFor(t, s, seedUser(t, s, "lane@example.com", nil, rbac.RoleLaneLeader))
		_, err := svc.Create(ctx, p, testEvent("Lane night", testNow))
		require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)
	})

	t.Run("department leaders need the host department", func(t *testing.T) {
		p := principalFor(t, s, seedUser(t, s, "leader@example.com", []string{"Youth"}, rbac.RoleDepartmentLeader))
		_, err := svc.Create(ctx, p, testEvent("Youth night", testNow))
		var denied *rbac.DeniedError
		require.ErrorAs(t, err, &denied)
		require.Equal(t, "department", denied.Kind)
	})

	t.Run("invalid window", func(t *testing.T) {
		p := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))
		e := testEvent("Backwards", testNow)
		e.EndDateTime = e.StartDateTime.Add(-time.Minute)
		_, err := svc.Create(ctx, p, e)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestEventVisibility(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s, Now: func() time.Time { return testNow }}

	creator := principalFor(t, s, seedUser(t, s, "deacon@example.com", nil, rbac.RoleDeacon))
	pastor := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))
	youth := principalFor(t, s, seedUser(t, s, "youth@example.com", []string{"Youth"}))
	outsider := principalFor(t, s, seedUser(t, s, "outsider@example.com", []string{"Choir"}))

	create := func(title string, v domain.Visibility, groups ...string) domain.Event {
		e := testEvent(title, testNow.Add(time.Hour))
		e.Visibility = v
		e.AllowedGroups = groups
		created, err := svc.Create(ctx, creator, e)
		require.NoError(t, err)
		return created.Event
	}
	public := create("Open", domain.VisibilityPublic)
	private := create("Leaders", domain.VisibilityPrivate)
	group := create("Youth only", domain.VisibilityGroupSpecific, "Youth")

	titles := func(p rbac.Principal) []string {
		events, err := svc.List(ctx, p, store.EventQuery{})
		require.NoError(t, err)
		var out []string
		for _, e := range events {
			out = append(out, e.Title)
		}
		return out
	}

	require.ElementsMatch(t, []string{"Open", "Leaders", "Youth only"}, titles(pastor))
	require.ElementsMatch(t, []string{"Open", "Leaders", "Youth only"}, titles(creator))
	require.ElementsMatch(t, []string{"Open", "Youth only"}, titles(youth))
	require.ElementsMatch(t, []string{"Open"}, titles(outsider))

	_, err := svc.Get(ctx, outsider, public.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, youth, private.ID)
	var denied *rbac.DeniedError
	require.ErrorAs(t, err, &denied)
	require.Equal(t, "visibility", denied.Kind)

	_, err = svc.Get(ctx, outsider, group.ID)
	require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)

	_, err = svc.Get(ctx, pastor, "missing")
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventUpcoming(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s, Now: func() time.Time { return testNow }}
	pastor := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))

	_, err := svc.Create(ctx, pastor, testEvent("Yesterday", testNow.Add(-24*time.Hour)))
	require.NoError(t, err)

	days := 20
	e := testEvent("Morning prayer", testNow.Add(time.Hour))
	e.Type = domain.EventPrayer
	e.IsRecurring = true
	e.RecurringPattern = &domain.RecurrencePattern{Frequency: domain.FrequencyDaily, EndAfterOccurrences: &days}
	_, err = svc.Create(ctx, pastor, e)
	require.NoError(t, err)

	upcoming, err := svc.Upcoming(ctx, pastor)
	require.NoError(t, err)
	require.Len(t, upcoming, UpcomingLimit)
	for i, ev := range upcoming {
		require.Equal(t, "Morning prayer", ev.Title)
		if i > 0 {
			require.False(t, ev.StartDateTime.Before(upcoming[i-1].StartDateTime))
		}
	}
}

func TestEventUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s}

	owner := principalFor(t, s, seedUser(t, s, "owner@example.com", nil, rbac.RoleDeacon))
	other := principalFor(t, s, seedUser(t, s, "other@example.com", nil, rbac.RoleDeacon))
	pastor := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))

	created, err := svc.Create(ctx, owner, testEvent("Prayer meeting", testNow))
	require.NoError(t, err)
	orig := created.Event

	t.Run("owner edits", func(t *testing.T) {
		e, err := svc.Update(ctx, owner, orig.ID, func(e *domain.Event) {
			e.Title = "Evening prayer"
			e.CreatedBy = "someone else"
			e.CheckInSecret = "stolen"
		})
		require.NoError(t, err)
		require.Equal(t, "Evening prayer", e.Title)
		require.Equal(t, owner.UserID, e.CreatedBy)
		require.Equal(t, orig.CheckInSecret, e.CheckInSecret)
	})

	t.Run("other managers need ownership", func(t *testing.T) {
		_, err := svc.Update(ctx, other, orig.ID, func(e *domain.Event) { e.Title = "Mine now" })
		var denied *rbac.DeniedError
		require.ErrorAs(t, err, &denied)
		require.Equal(t, "ownership", denied.Kind)
	})

	t.Run("privileged users edit anything", func(t *testing.T) {
		e, err := svc.Update(ctx, pastor, orig.ID, func(e *domain.Event) { e.Location = "Chapel" })
		require.NoError(t, err)
		require.Equal(t, "Chapel", e.Location)
	})

	t.Run("invalid patch", func(t *testing.T) {
		_, err := svc.Update(ctx, pastor, orig.ID, func(e *domain.Event) { e.Type = "concert" })
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestEventDeleteCascadesInstances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s}

	deacon := principalFor(t, s, seedUser(t, s, "deacon@example.com", nil, rbac.RoleDeacon))
	senior := principalFor(t, s, seedUser(t, s, "senior@example.com", nil, rbac.RoleSeniorPastor))

	e := testEvent("Bible study", testNow)
	e.IsRecurring = true
	end := testNow.AddDate(0, 2, 0)
	e.RecurringPattern = &domain.RecurrencePattern{Frequency: domain.FrequencyMonthly, EndDate: &end}
	created, err := svc.Create(ctx, deacon, e)
	require.NoError(t, err)
	require.Equal(t, 2, created.Instances)

	require.ErrorIs(t, svc.Delete(ctx, deacon, created.Event.ID), rbac.ErrAuthorizationDenied)
	require.NoError(t, svc.Delete(ctx, senior, created.Event.ID))

	_, err = svc.Get(ctx, senior, created.Event.ID)
	require.ErrorIs(t, err, ErrEventNotFound)

	instances, err := s.Events().ListInstances(ctx, created.Event.ID)
	require.NoError(t, err)
	require.Empty(t, instances)

	require.ErrorIs(t, svc.Delete(ctx, senior, created.Event.ID), ErrEventNotFound)
}

func TestEventCheckInCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &EventService{Store: s, Now: func() time.Time { return testNow.Add(15 * time.Second) }}
	deacon := principalFor(t, s, seedUser(t, s, "deacon@example.com", nil, rbac.RoleDeacon))
	member := principalFor(t, s, seedUser(t, s, "member@example.com", nil))

	created, err := svc.Create(ctx, deacon, testEvent("Service", testNow))
	require.NoError(t, err)

	code, err := svc.CheckInCode(ctx, deacon, created.Event.ID)
	require.NoError(t, err)
	require.Len(t, code.Code, 6)
	require.True(t, code.ValidUntil.Equal(testNow.Add(time.Minute)))
	require.True(t, cryptox.ValidateCheckInCode(code.Code, created.Event.CheckInSecret, testNow.Add(15*time.Second)))

	_, err = svc.CheckInCode(ctx, member, created.Event.ID)
	require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)
}
