package domain

import (
	"errors"
	"time"
)

type JourneyStatus string

const (
	JourneyInProgress JourneyStatus = "in_progress"
	JourneyCompleted  JourneyStatus = "completed"
	JourneyPaused     JourneyStatus = "paused"
)

func (s JourneyStatus) Valid() bool {
	return s == JourneyInProgress || s == JourneyCompleted || s == JourneyPaused
}

// DefaultCheckInInterval is how far out the next mentor check-in is scheduled.
const DefaultCheckInInterval = 7 * 24 * time.Hour

type ProgressNote struct {
	ID             string
	Date           time.Time
	Note           string
	AuthorID       string
	IsConfidential bool
}

// Discipleship is a mentoring journey; each member has at most one.
type Discipleship struct {
	ID                       string
	MemberID                 string
	MentorID                 string
	StartDate                time.Time
	Goals                    []string
	ProgressNotes            []ProgressNote
	CompletedModules         []string
	SpiritualGiftsIdentified []string
	Status                   JourneyStatus
	LastCheckIn              *time.Time
	NextCheckIn              *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// ScheduleNextCheckIn stamps the last check-in as now and the next one after interval.
func (d *Discipleship) ScheduleNextCheckIn(now time.Time, interval time.Duration) {
	last := now
	next := now.Add(interval)
	d.LastCheckIn = &last
	d.NextCheckIn = &next
}

// WithoutConfidentialNotes returns a copy with confidential progress notes removed.
func (d Discipleship) WithoutConfidentialNotes() Discipleship {
	notes := make([]ProgressNote, 0, len(d.ProgressNotes))
	for _, n := range d.ProgressNotes {
		if !n.IsConfidential {
			notes = append(notes, n)
		}
	}
	d.ProgressNotes = notes
	return d
}

var (
	ErrJourneyStatusInvalid = errors.New("journey status must be in_progress, completed or paused")
	ErrNoteRequired         = errors.New("note content is required")
)
