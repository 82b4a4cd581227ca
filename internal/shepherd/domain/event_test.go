package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventValidateRecurrenceBounds(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
	days := func(n int) *int { return &n }
	until := func(d int) *time.Time {
		t := start.AddDate(0, 0, d)
		return &t
	}

	cases := []struct {
		name    string
		pattern RecurrencePattern
		wantErr error
	}{
		{name: "day count at bound", pattern: RecurrencePattern{Frequency: FrequencyDaily, Interval: 1, EndAfterOccurrences: days(MaxRecurrenceDays)}},
		{name: "day count past bound", pattern: RecurrencePattern{Frequency: FrequencyDaily, Interval: 1, EndAfterOccurrences: days(200000)}, wantErr: ErrEventPatternInvalid},
		{name: "zero day count", pattern: RecurrencePattern{Frequency: FrequencyDaily, Interval: 1, EndAfterOccurrences: days(0)}, wantErr: ErrEventPatternInvalid},
		{name: "end date at bound", pattern: RecurrencePattern{Frequency: FrequencyWeekly, Interval: 1, EndDate: until(MaxRecurrenceDays)}},
		{name: "end date fifty years out", pattern: RecurrencePattern{Frequency: FrequencyWeekly, Interval: 1, EndDate: until(50 * 365)}, wantErr: ErrEventPatternInvalid},
		{name: "unknown frequency", pattern: RecurrencePattern{Frequency: "yearly", Interval: 1}, wantErr: ErrEventPatternInvalid},
		{name: "weekday out of range", pattern: RecurrencePattern{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []int{7}}, wantErr: ErrEventPatternInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.pattern
			e := Event{
				Title:            "Morning Prayer",
				Type:             EventPrayer,
				HostDepartment:   "Prayer",
				Location:         "Chapel",
				StartDateTime:    start,
				EndDateTime:      start.Add(time.Hour),
				Visibility:       VisibilityPublic,
				Status:           StatusScheduled,
				IsRecurring:      true,
				RecurringPattern: &p,
			}
			if tc.wantErr != nil {
				require.ErrorIs(t, e.Validate(), tc.wantErr)
				return
			}
			require.NoError(t, e.Validate())
		})
	}
}
