package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/recurrence"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

// UpcomingLimit is how many events Upcoming returns.
const UpcomingLimit = 10

type EventService struct {
	Store store.Store

	// Issuer labels generated check-in secrets.
	Issuer string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *EventService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IsPrivileged reports whether p sees and edits every event.
func IsPrivileged(p rbac.Principal) bool {
	return p.HasRole(rbac.RoleSeniorPastor, rbac.RolePastor)
}

// RequireEventManager allows Senior Pastors, Pastors and Department
// Leaders, or anyone holding the events permission for action.
func RequireEventManager(p rbac.Principal, action domain.Action) error {
	err := p.RequireRole(rbac.RoleSeniorPastor, rbac.RolePastor, rbac.RoleDepartmentLeader)
	if err == nil || p.Can("events", action) {
		return nil
	}
	return err
}

// CanView applies event visibility: privileged users and the creator see
// everything, public events are open to all, and group-specific events are
// visible when an allowed group is one of the viewer's departments.
func CanView(p rbac.Principal, e domain.Event) bool {
	if IsPrivileged(p) || e.CreatedBy == p.UserID {
		return true
	}
	switch e.Visibility {
	case domain.VisibilityPublic:
		return true
	case domain.VisibilityGroupSpecific:
		for _, g := range e.AllowedGroups {
			if slices.Contains(p.Departments, g) {
				return true
			}
		}
	}
	return false
}

func (s *EventService) visible(p rbac.Principal, events []domain.Event) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if CanView(p, e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *EventService) checkInSecret(e domain.Event) (string, error) {
	issuer := s.Issuer
	if issuer == "" {
		issuer = "shepherd"
	}
	label := e.Title + " " + e.StartDateTime.UTC().Format(time.DateOnly)
	return cryptox.GenerateCheckInSecret(issuer, label)
}

func applyEventDefaults(e *domain.Event) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Visibility == "" {
		e.Visibility = domain.VisibilityPublic
	}
	if e.Status == "" {
		e.Status = domain.StatusScheduled
	}
	if p := e.RecurringPattern; p != nil {
		if p.Interval == 0 {
			p.Interval = 1
		}
		if p.Frequency == "" {
			p.Frequency = domain.FrequencyNone
		}
	}
	if e.RecurringPattern == nil {
		e.IsRecurring = false
	}
}

// CreatedEvent is a stored template and the instances expanded from it.
type CreatedEvent struct {
	Event     domain.Event
	Instances int
}

// Create stores e and, for recurring events, every generated instance in
// one transaction.
func (s *EventService) Create(ctx context.Context, p rbac.Principal, e domain.Event) (CreatedEvent, error) {
	if err := RequireEventManager(p, domain.ActionCreate); err != nil {
		return CreatedEvent{}, err
	}

	applyEventDefaults(&e)
	if err := e.Validate(); err != nil {
		return CreatedEvent{}, invalid("event", err.Error())
	}
	if err := p.RequireDepartment(e.HostDepartment); err != nil {
		return CreatedEvent{}, err
	}

	e.ID = idx.New().String()
	e.CreatedBy = p.UserID
	e.ParentEvent = ""

	secret, err := s.checkInSecret(e)
	if err != nil {
		return CreatedEvent{}, err
	}
	e.CheckInSecret = secret

	instances := recurrence.Expand(e)
	for i := range instances {
		instances[i].ID = idx.New().String()
		if instances[i].CheckInSecret, err = s.checkInSecret(instances[i]); err != nil {
			return CreatedEvent{}, err
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Events().CreateEvent(ctx, e); err != nil {
			return err
		}
		for _, inst := range instances {
			if err := tx.Events().CreateEvent(ctx, inst); err != nil {
				return fmt.Errorf("instance %s: %w", inst.StartDateTime.Format(time.RFC3339), err)
			}
		}
		return nil
	})
	if err != nil {
		return CreatedEvent{}, err
	}

	slogx.FromContext(ctx).Info("event created",
		slog.String("event_id", e.ID),
		slog.Bool("recurring", e.IsRecurring),
		slog.Int("instances", len(instances)),
	)

	created, err := s.get(ctx, e.ID)
	if err != nil {
		return CreatedEvent{}, err
	}
	return CreatedEvent{Event: created, Instances: len(instances)}, nil
}

func (s *EventService) get(ctx context.Context, id string) (domain.Event, error) {
	e, err := s.Store.Events().GetEventByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Event{}, ErrEventNotFound
	}
	return e, err
}

// Get returns an event the caller is allowed to see.
func (s *EventService) Get(ctx context.Context, p rbac.Principal, id string) (domain.Event, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if !CanView(p, e) {
		return domain.Event{}, &rbac.DeniedError{Kind: "visibility", Required: string(e.Visibility) + " event access"}
	}
	return e, nil
}

// List returns the events matching q that the caller may see.
func (s *EventService) List(ctx context.Context, p rbac.Principal, q store.EventQuery) ([]domain.Event, error) {
	limit := q.Limit
	q.Limit = 0

	events, err := s.Store.Events().ListEvents(ctx, q)
	if err != nil {
		return nil, err
	}
	events = s.visible(p, events)
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// Upcoming returns the next scheduled events the caller may see.
func (s *EventService) Upcoming(ctx context.Context, p rbac.Principal) ([]domain.Event, error) {
	now := s.now()
	return s.List(ctx, p, store.EventQuery{
		Status: domain.StatusScheduled,
		From:   &now,
		Limit:  UpcomingLimit,
	})
}

// ByDepartment lists events hosted by department in [from, to].
func (s *EventService) ByDepartment(ctx context.Context, p rbac.Principal, department string, from, to *time.Time) ([]domain.Event, error) {
	if err := p.RequireDepartment(department); err != nil {
		return nil, err
	}
	return s.List(ctx, p, store.EventQuery{HostDepartment: department, From: from, To: to})
}

// Update applies patch to an event. Non-privileged managers may only edit
// events they created, and need access to both the old and new host
// departments. Generated instances are left as they are.
func (s *EventService) Update(ctx context.Context, p rbac.Principal, id string, patch func(*domain.Event)) (domain.Event, error) {
	if err := RequireEventManager(p, domain.ActionUpdate); err != nil {
		return domain.Event{}, err
	}

	e, err := s.get(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if err := p.RequireDepartment(e.HostDepartment); err != nil {
		return domain.Event{}, err
	}
	if !IsPrivileged(p) && e.CreatedBy != p.UserID {
		return domain.Event{}, &rbac.DeniedError{Kind: "ownership", Required: "event creator"}
	}

	orig := e
	patch(&e)
	e.ID = orig.ID
	e.CreatedBy = orig.CreatedBy
	e.ParentEvent = orig.ParentEvent
	e.CheckInSecret = orig.CheckInSecret
	e.CreatedAt = orig.CreatedAt

	applyEventDefaults(&e)
	if err := e.Validate(); err != nil {
		return domain.Event{}, invalid("event", err.Error())
	}
	if e.HostDepartment != orig.HostDepartment {
		if err := p.RequireDepartment(e.HostDepartment); err != nil {
			return domain.Event{}, err
		}
	}

	if err := s.Store.Events().UpdateEvent(ctx, e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, err
	}
	return s.get(ctx, id)
}

// Delete removes an event together with its generated instances and their
// attendance.
func (s *EventService) Delete(ctx context.Context, p rbac.Principal, id string) error {
	if err := p.RequireRole(rbac.RoleSeniorPastor, rbac.RolePastor); err != nil {
		return err
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Events().DeleteEvent(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("event deleted", slog.String("event_id", id))
	return nil
}

// CheckInCode is the rotating code attendees enter to check themselves in.
type CheckInCode struct {
	Code       string
	ValidUntil time.Time
}

func (s *EventService) CheckInCode(ctx context.Context, p rbac.Principal, id string) (CheckInCode, error) {
	if err := RequireEventManager(p, domain.ActionUpdate); err != nil {
		return CheckInCode{}, err
	}
	e, err := s.get(ctx, id)
	if err != nil {
		return CheckInCode{}, err
	}
	if err := p.RequireDepartment(e.HostDepartment); err != nil {
		return CheckInCode{}, err
	}

	now := s.now()
	code, err := cryptox.CheckInCode(e.CheckInSecret, now)
	if err != nil {
		return CheckInCode{}, err
	}
	period := int64(cryptox.CheckInPeriod / time.Second)
	end := (now.Unix()/period + 1) * period
	return CheckInCode{Code: code, ValidUntil: time.Unix(end, 0).UTC()}, nil
}
