package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/stretchr/testify/require"
)

func TestDiscipleshipJourney(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &DiscipleshipService{Store: s, Now: func() time.Time { return testNow }}

	senior := principalFor(t, s, seedUser(t, s, "senior@example.com", nil, rbac.RoleSeniorPastor))
	pastor := principalFor(t, s, seedUser(t, s, "pastor@example.com", nil, rbac.RolePastor))
	deacon := principalFor(t, s, seedUser(t, s, "deacon@example.com", nil, rbac.RoleDeacon))
	member := principalFor(t, s, seedUser(t, s, "member@example.com", nil))
	other := principalFor(t, s, seedUser(t, s, "other@example.com", nil))

	_, err := svc.Start(ctx, deacon, StartJourney{MemberID: member.UserID, MentorID: deacon.UserID})
	require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)

	_, err = svc.Start(ctx, pastor, StartJourney{MemberID: "missing", MentorID: pastor.UserID})
	require.ErrorIs(t, err, ErrUserNotFound)

	d, err := svc.Start(ctx, pastor, StartJourney{
		MemberID: member.UserID,
		MentorID: pastor.UserID,
		Goals:    []string{"Read the gospels"},
	})
	require.NoError(t, err)
	require.Equal(t, domain.JourneyInProgress, d.Status)
	require.NotNil(t, d.NextCheckIn)
	require.True(t, d.NextCheckIn.Equal(testNow.Add(domain.DefaultCheckInInterval)))

	_, err = svc.Start(ctx, pastor, StartJourney{MemberID: member.UserID, MentorID: pastor.UserID})
	require.ErrorIs(t, err, ErrJourneyExists)

	t.Run("notes", func(t *testing.T) {
		_, err := svc.AddNote(ctx, pastor, d.ID, "   ", false)
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.AddNote(ctx, pastor, d.ID, "Finished Mark", false)
		require.NoError(t, err)
		withNotes, err := svc.AddNote(ctx, pastor, d.ID, "Struggling at home", true)
		require.NoError(t, err)
		require.Len(t, withNotes.ProgressNotes, 2)
		require.Equal(t, pastor.UserID, withNotes.ProgressNotes[0].AuthorID)
	})

	t.Run("confidential notes are pastors only", func(t *testing.T) {
		own, err := svc.MemberJourney(ctx, member, member.UserID)
		require.NoError(t, err)
		require.Len(t, own.ProgressNotes, 1)
		require.False(t, own.ProgressNotes[0].IsConfidential)

		full, err := svc.MemberJourney(ctx, senior, member.UserID)
		require.NoError(t, err)
		require.Len(t, full.ProgressNotes, 2)

		_, err = svc.MemberJourney(ctx, other, member.UserID)
		require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)

		_, err = svc.MemberJourney(ctx, other, other.UserID)
		require.ErrorIs(t, err, ErrJourneyNotFound)
	})

	t.Run("mentees hide notes", func(t *testing.T) {
		mentees, err := svc.Mentees(ctx, pastor, pastor.UserID)
		require.NoError(t, err)
		require.Len(t, mentees, 1)
		require.Empty(t, mentees[0].ProgressNotes)

		_, err = svc.Mentees(ctx, member, pastor.UserID)
		require.ErrorIs(t, err, rbac.ErrAuthorizationDenied)
	})

	t.Run("update", func(t *testing.T) {
		bad := domain.JourneyStatus("abandoned")
		_, err := svc.Update(ctx, pastor, d.ID, JourneyUpdate{Status: &bad})
		require.ErrorIs(t, err, ErrValidation)

		done := domain.JourneyCompleted
		modules := []string{"Foundations"}
		updated, err := svc.Update(ctx, pastor, d.ID, JourneyUpdate{Status: &done, CompletedModules: &modules})
		require.NoError(t, err)
		require.Equal(t, domain.JourneyCompleted, updated.Status)
		require.Equal(t, modules, updated.CompletedModules)
		require.Equal(t, []string{"Read the gospels"}, updated.Goals)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, pastor, d.ID), rbac.ErrAuthorizationDenied)
		require.NoError(t, svc.Delete(ctx, senior, d.ID))
		require.ErrorIs(t, svc.Delete(ctx, senior, d.ID), ErrJourneyNotFound)

		_, err := svc.MemberJourney(ctx, member, member.UserID)
		require.ErrorIs(t, err, ErrJourneyNotFound)
	})
}
