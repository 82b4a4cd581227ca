// Package recurrence expands a recurring event template into concrete
// instances up to a bounded horizon.
package recurrence

import (
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

// DefaultHorizonDays applies when a pattern has neither an end date nor an
// occurrence bound.
const DefaultHorizonDays = 365

// Expand generates the instances of a recurring template. It returns an
// empty slice for non-recurring templates, frequency none or an unknown
// frequency, and for a non-positive interval.
//
// Expansion runs until the cursor passes the horizon. Event.Validate bounds
// the horizon at domain.MaxRecurrenceDays, so callers expand validated
// templates only.
//
// The cursor is advanced before anything is emitted, so the template's own
// start is never duplicated as an instance.
func Expand(template domain.Event) []domain.Event {
	if !template.IsRecurring || template.RecurringPattern == nil {
		return []domain.Event{}
	}
	return ExpandPattern(template, *template.RecurringPattern)
}

// ExpandPattern expands template using pattern, ignoring the template's own
// pattern field except to copy it onto instances.
func ExpandPattern(template domain.Event, pattern domain.RecurrencePattern) []domain.Event {
	if !template.IsRecurring || pattern.Interval < 1 {
		return []domain.Event{}
	}

	step, ok := stepper(pattern)
	if !ok {
		return []domain.Event{}
	}

	duration := template.Duration()
	horizon := Horizon(template.StartDateTime, pattern)

	instances := []domain.Event{}
	cursor := step(template.StartDateTime)
	for !cursor.After(horizon) {
		instances = append(instances, instanceAt(template, cursor, duration))
		cursor = step(cursor)
	}
	return instances
}

// Horizon is the inclusive upper bound on instance start times.
//
// EndAfterOccurrences is applied as a number of calendar days from start,
// not a count of instances.
func Horizon(start time.Time, pattern domain.RecurrencePattern) time.Time {
	switch {
	case pattern.EndDate != nil:
		return *pattern.EndDate
	case pattern.EndAfterOccurrences != nil:
		return start.AddDate(0, 0, *pattern.EndAfterOccurrences)
	default:
		return start.AddDate(0, 0, DefaultHorizonDays)
	}
}

// stepper returns the advance function for a frequency. Month steps use
// calendar arithmetic, so Jan 31 + 1 month normalizes into March.
func stepper(p domain.RecurrencePattern) (func(time.Time) time.Time, bool) {
	n := p.Interval
	switch p.Frequency {
	case domain.FrequencyDaily:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, n) }, true
	case domain.FrequencyWeekly:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 7*n) }, true
	case domain.FrequencyMonthly:
		return func(t time.Time) time.Time { return t.AddDate(0, n, 0) }, true
	default:
		return nil, false
	}
}

func instanceAt(template domain.Event, start time.Time, duration time.Duration) domain.Event {
	inst := template
	inst.ID = ""
	inst.StartDateTime = start
	inst.EndDateTime = start.Add(duration)
	inst.ParentEvent = template.ID
	inst.IsRecurring = false

	// Slices are copied so instances never alias the template.
	inst.AllowedGroups = append([]string(nil), template.AllowedGroups...)
	inst.ExpectedAttendees = append([]string(nil), template.ExpectedAttendees...)
	if template.RecurringPattern != nil {
		p := *template.RecurringPattern
		p.DaysOfWeek = append([]int(nil), p.DaysOfWeek...)
		inst.RecurringPattern = &p
	}
	return inst
}
