package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

// MentorLevel is the least senior role level allowed to run journeys.
const MentorLevel = 2

type DiscipleshipService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *DiscipleshipService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// isPastor mirrors who may read other people's journeys and confidential
// notes.
func isPastor(p rbac.Principal) bool {
	return p.HasRole(rbac.RoleSeniorPastor, rbac.RolePastor)
}

type StartJourney struct {
	MemberID string
	MentorID string
	Goals    []string
}

// Start opens a journey for a member and schedules the first check-in.
func (s *DiscipleshipService) Start(ctx context.Context, p rbac.Principal, req StartJourney) (domain.Discipleship, error) {
	if err := p.RequireLevel(MentorLevel); err != nil {
		return domain.Discipleship{}, err
	}
	for _, id := range []string{req.MemberID, req.MentorID} {
		if _, err := s.Store.Users().GetUserByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Discipleship{}, ErrUserNotFound
			}
			return domain.Discipleship{}, err
		}
	}

	now := s.now()
	d := domain.Discipleship{
		ID:        idx.New().String(),
		MemberID:  req.MemberID,
		MentorID:  req.MentorID,
		StartDate: now,
		Goals:     req.Goals,
		Status:    domain.JourneyInProgress,
	}
	d.ScheduleNextCheckIn(now, domain.DefaultCheckInInterval)

	if err := s.Store.Discipleship().CreateJourney(ctx, d); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Discipleship{}, ErrJourneyExists
		}
		return domain.Discipleship{}, err
	}

	slogx.FromContext(ctx).Info("discipleship journey started",
		slog.String("journey_id", d.ID),
		slog.String("mentor_id", d.MentorID),
	)
	return s.get(ctx, d.ID)
}

func (s *DiscipleshipService) get(ctx context.Context, id string) (domain.Discipleship, error) {
	d, err := s.Store.Discipleship().GetJourneyByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Discipleship{}, ErrJourneyNotFound
	}
	return d, err
}

// JourneyUpdate replaces the non-nil fields.
type JourneyUpdate struct {
	Goals            *[]string
	Status           *domain.JourneyStatus
	CompletedModules *[]string
	SpiritualGifts   *[]string
}

func (s *DiscipleshipService) Update(ctx context.Context, p rbac.Principal, id string, u JourneyUpdate) (domain.Discipleship, error) {
	if err := p.RequireLevel(MentorLevel); err != nil {
		return domain.Discipleship{}, err
	}
	d, err := s.get(ctx, id)
	if err != nil {
		return domain.Discipleship{}, err
	}

	if u.Goals != nil {
		d.Goals = *u.Goals
	}
	if u.Status != nil {
		if !u.Status.Valid() {
			return domain.Discipleship{}, invalid("status", domain.ErrJourneyStatusInvalid.Error())
		}
		d.Status = *u.Status
	}
	if u.CompletedModules != nil {
		d.CompletedModules = *u.CompletedModules
	}
	if u.SpiritualGifts != nil {
		d.SpiritualGiftsIdentified = *u.SpiritualGifts
	}

	if err := s.Store.Discipleship().UpdateJourney(ctx, d); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Discipleship{}, ErrJourneyNotFound
		}
		return domain.Discipleship{}, err
	}
	return s.get(ctx, id)
}

// AddNote appends a progress note authored by the caller.
func (s *DiscipleshipService) AddNote(ctx context.Context, p rbac.Principal, id, note string, confidential bool) (domain.Discipleship, error) {
	if err := p.RequireLevel(MentorLevel); err != nil {
		return domain.Discipleship{}, err
	}
	note = strings.TrimSpace(note)
	if note == "" {
		return domain.Discipleship{}, invalid("note", domain.ErrNoteRequired.Error())
	}
	if _, err := s.get(ctx, id); err != nil {
		return domain.Discipleship{}, err
	}

	n := domain.ProgressNote{
		ID:             idx.New().String(),
		Date:           s.now(),
		Note:           note,
		AuthorID:       p.UserID,
		IsConfidential: confidential,
	}
	if err := s.Store.Discipleship().AddProgressNote(ctx, id, n); err != nil {
		return domain.Discipleship{}, err
	}
	return s.get(ctx, id)
}

// MemberJourney returns a member's journey to the member or a pastor.
// Confidential notes are only shown to pastors.
func (s *DiscipleshipService) MemberJourney(ctx context.Context, p rbac.Principal, memberID string) (domain.Discipleship, error) {
	if p.UserID != memberID && !isPastor(p) {
		return domain.Discipleship{}, &rbac.DeniedError{Kind: "role", Required: "Pastor or the member"}
	}

	d, err := s.Store.Discipleship().GetJourneyByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Discipleship{}, ErrJourneyNotFound
		}
		return domain.Discipleship{}, err
	}
	if !isPastor(p) {
		d = d.WithoutConfidentialNotes()
	}
	return d, nil
}

// Mentees lists a mentor's journeys without their notes.
func (s *DiscipleshipService) Mentees(ctx context.Context, p rbac.Principal, mentorID string) ([]domain.Discipleship, error) {
	if p.UserID != mentorID && !isPastor(p) {
		return nil, &rbac.DeniedError{Kind: "role", Required: "Pastor or the mentor"}
	}

	journeys, err := s.Store.Discipleship().ListJourneysByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	for i := range journeys {
		journeys[i].ProgressNotes = nil
	}
	return journeys, nil
}

func (s *DiscipleshipService) Delete(ctx context.Context, p rbac.Principal, id string) error {
	if err := p.RequireRole(rbac.RoleSeniorPastor); err != nil {
		return err
	}
	if err := s.Store.Discipleship().DeleteJourney(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrJourneyNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("discipleship journey deleted", slog.String("journey_id", id))
	return nil
}
