package domain

import (
	"errors"
	"strings"
	"time"
)

type EventType string

const (
	EventService EventType = "service"
	EventPrayer  EventType = "prayer"
	EventYouth   EventType = "youth"
	EventWedding EventType = "wedding"
	EventBaptism EventType = "baptism"
	EventOther   EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventService, EventPrayer, EventYouth, EventWedding, EventBaptism, EventOther:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityPrivate       Visibility = "private"
	VisibilityGroupSpecific Visibility = "group-specific"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate || v == VisibilityGroupSpecific
}

type EventStatus string

const (
	StatusScheduled  EventStatus = "scheduled"
	StatusInProgress EventStatus = "in-progress"
	StatusCompleted  EventStatus = "completed"
	StatusCancelled  EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyNone    Frequency = "none"
)

// MaxRecurrenceDays is the furthest a recurring pattern may reach past its
// template's start, roughly ten years.
const MaxRecurrenceDays = 3660

// RecurrencePattern describes how a template event repeats.
type RecurrencePattern struct {
	Frequency  Frequency
	Interval   int   // positive, defaults to 1
	DaysOfWeek []int // 0 (Sunday) to 6; stored but not used for expansion
	EndDate    *time.Time

	// EndAfterOccurrences bounds the horizon in days, not occurrences.
	EndAfterOccurrences *int
}

type Event struct {
	ID                 string
	Title              string
	Type               EventType
	HostDepartment     string
	Location           string
	StartDateTime      time.Time
	EndDateTime        time.Time
	Description        string
	CreatedBy          string
	Visibility         Visibility
	AllowedGroups      []string
	RecurringPattern   *RecurrencePattern
	IsRecurring        bool
	ParentEvent        string // template ID for generated instances
	Status             EventStatus
	ExpectedAttendees  []string
	MaxCapacity        *int
	IsVirtual          bool
	VirtualMeetingLink string
	CheckInSecret      string // TOTP secret for token check-in, never exposed
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Duration is the length of a single occurrence.
func (e Event) Duration() time.Duration {
	return e.EndDateTime.Sub(e.StartDateTime)
}

func (e Event) IsActiveAt(now time.Time) bool {
	return !now.Before(e.StartDateTime) && !now.After(e.EndDateTime)
}

func (e Event) IsUpcomingAt(now time.Time) bool {
	return e.StartDateTime.After(now)
}

func (e Event) IsPastAt(now time.Time) bool {
	return e.EndDateTime.Before(now)
}

var (
	ErrEventTitleRequired    = errors.New("event title is required")
	ErrEventTypeInvalid      = errors.New("event type is invalid")
	ErrEventDepartmentReq    = errors.New("host department is required")
	ErrEventLocationRequired = errors.New("event location is required")
	ErrEventWindowInvalid    = errors.New("event end must be after its start")
	ErrEventVisibility       = errors.New("event visibility is invalid")
	ErrEventStatusInvalid    = errors.New("event status is invalid")
	ErrEventPatternInvalid   = errors.New("recurring pattern is invalid")
	ErrEventCapacityInvalid  = errors.New("max capacity must be positive")
)

// Validate checks the fields required to persist an event.
func (e Event) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return ErrEventTitleRequired
	case !e.Type.Valid():
		return ErrEventTypeInvalid
	case strings.TrimSpace(e.HostDepartment) == "":
		return ErrEventDepartmentReq
	case strings.TrimSpace(e.Location) == "":
		return ErrEventLocationRequired
	case !e.EndDateTime.After(e.StartDateTime):
		return ErrEventWindowInvalid
	case !e.Visibility.Valid():
		return ErrEventVisibility
	case !e.Status.Valid():
		return ErrEventStatusInvalid
	case e.MaxCapacity != nil && *e.MaxCapacity <= 0:
		return ErrEventCapacityInvalid
	}

	if p := e.RecurringPattern; p != nil {
		switch p.Frequency {
		case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyNone:
		default:
			return ErrEventPatternInvalid
		}
		if p.Interval < 1 {
			return ErrEventPatternInvalid
		}
		for _, d := range p.DaysOfWeek {
			if d < 0 || d > 6 {
				return ErrEventPatternInvalid
			}
		}
		if p.EndAfterOccurrences != nil && (*p.EndAfterOccurrences < 1 || *p.EndAfterOccurrences > MaxRecurrenceDays) {
			return ErrEventPatternInvalid
		}
		if p.EndDate != nil && p.EndDate.After(e.StartDateTime.AddDate(0, 0, MaxRecurrenceDays)) {
			return ErrEventPatternInvalid
		}
	}
	return nil
}
