package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingAdvancesEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	events := &EventService{Store: s}
	pastor := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))

	create := func(title string, start time.Time) string {
		created, err := events.Create(ctx, pastor, testEvent(title, start))
		require.NoError(t, err)
		return created.Event.ID
	}
	running := create("Running", testNow.Add(-time.Hour))
	finished := create("Finished", testNow.Add(-5*time.Hour))
	future := create("Future", testNow.Add(time.Hour))

	hk := NewHousekeepingService(s, slog.New(slog.NewTextHandler(io.Discard, nil)), "")
	require.Equal(t, DefaultHousekeepingSchedule, hk.Schedule)
	hk.Now = func() time.Time { return testNow }
	hk.RunOnce(ctx)

	status := func(id string) domain.EventStatus {
		e, err := s.Events().GetEventByID(ctx, id)
		require.NoError(t, err)
		return e.Status
	}
	require.Equal(t, domain.StatusInProgress, status(running))
	require.Equal(t, domain.StatusCompleted, status(finished))
	require.Equal(t, domain.StatusScheduled, status(future))

	hk.Now = func() time.Time { return testNow.Add(3 * time.Hour) }
	hk.RunOnce(ctx)
	require.Equal(t, domain.StatusCompleted, status(running))
	require.Equal(t, domain.StatusInProgress, status(future))
}

func TestHousekeepingRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	hk := NewHousekeepingService(newTestStore(t), nil, "every now and then")
	require.Error(t, hk.Start())
}
