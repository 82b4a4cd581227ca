package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
)

const eventColumns = `id, title, type, host_department, location, start_at, end_at, description,
	created_by, visibility, allowed_groups, recurring_pattern, is_recurring, parent_event_id,
	status, expected_attendees, max_capacity, is_virtual, virtual_meeting_link, checkin_secret,
	created_at, updated_at`

type eventsRepo struct {
	q querier
}

type patternRow struct {
	Frequency           string `json:"frequency"`
	Interval            int    `json:"interval"`
	DaysOfWeek          []int  `json:"daysOfWeek,omitempty"`
	EndDate             *int64 `json:"endDate,omitempty"`
	EndAfterOccurrences *int   `json:"endAfterOccurrences,omitempty"`
}

func encodePattern(p *domain.RecurrencePattern) (sql.NullString, error) {
	if p == nil {
		return sql.NullString{}, nil
	}
	row := patternRow{
		Frequency:           string(p.Frequency),
		Interval:            p.Interval,
		DaysOfWeek:          p.DaysOfWeek,
		EndAfterOccurrences: p.EndAfterOccurrences,
	}
	if p.EndDate != nil {
		ms := toMillis(*p.EndDate)
		row.EndDate = &ms
	}
	b, err := json.Marshal(row)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodePattern(ns sql.NullString) (*domain.RecurrencePattern, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	var row patternRow
	if err := json.Unmarshal([]byte(ns.String), &row); err != nil {
		return nil, err
	}
	p := &domain.RecurrencePattern{
		Frequency:           domain.Frequency(row.Frequency),
		Interval:            row.Interval,
		DaysOfWeek:          row.DaysOfWeek,
		EndAfterOccurrences: row.EndAfterOccurrences,
	}
	if row.EndDate != nil {
		t := fromMillis(*row.EndDate)
		p.EndDate = &t
	}
	return p, nil
}

type eventLists struct {
	groups, attendees string
	pattern           sql.NullString
}

func encodeEventLists(e domain.Event) (eventLists, error) {
	var (
		out eventLists
		err error
	)
	if out.groups, err = encodeJSON(e.AllowedGroups); err != nil {
		return out, err
	}
	if out.attendees, err = encodeJSON(e.ExpectedAttendees); err != nil {
		return out, err
	}
	if out.pattern, err = encodePattern(e.RecurringPattern); err != nil {
		return out, err
	}
	return out, nil
}

func scanEvent(sc scanner) (domain.Event, error) {
	var (
		e                       domain.Event
		typ, visibility, status string
		startAt, endAt          int64
		createdAt, updatedAt    int64
		parent                  sql.NullString
		capacity                sql.NullInt64
		lists                   eventLists
	)
	err := sc.Scan(
		&e.ID, &e.Title, &typ, &e.HostDepartment, &e.Location, &startAt, &endAt, &e.Description,
		&e.CreatedBy, &visibility, &lists.groups, &lists.pattern, &e.IsRecurring, &parent,
		&status, &lists.attendees, &capacity, &e.IsVirtual, &e.VirtualMeetingLink, &e.CheckInSecret,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}

	e.Type = domain.EventType(typ)
	e.Visibility = domain.Visibility(visibility)
	e.Status = domain.EventStatus(status)
	e.StartDateTime = fromMillis(startAt)
	e.EndDateTime = fromMillis(endAt)
	e.ParentEvent = mapNullString(parent)
	e.MaxCapacity = mapNullIntPtr(capacity)
	if e.AllowedGroups, err = decodeJSON[string](lists.groups); err != nil {
		return domain.Event{}, fmt.Errorf("event %s allowed groups: %w", e.ID, err)
	}
	if e.ExpectedAttendees, err = decodeJSON[string](lists.attendees); err != nil {
		return domain.Event{}, fmt.Errorf("event %s expected attendees: %w", e.ID, err)
	}
	if e.RecurringPattern, err = decodePattern(lists.pattern); err != nil {
		return domain.Event{}, fmt.Errorf("event %s pattern: %w", e.ID, err)
	}
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return e, nil
}

func (r *eventsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return e, nil
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	lists, err := encodeEventLists(e)
	if err != nil {
		return err
	}

	now := toMillis(time.Now())
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, string(e.Type), e.HostDepartment, e.Location,
		toMillis(e.StartDateTime), toMillis(e.EndDateTime), e.Description,
		e.CreatedBy, string(e.Visibility), lists.groups, lists.pattern, e.IsRecurring, mapStringNull(e.ParentEvent),
		string(e.Status), lists.attendees, mapOptionalInt(e.MaxCapacity), e.IsVirtual, e.VirtualMeetingLink,
		e.CheckInSecret, now, now,
	)
	return mapConflict(err)
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	lists, err := encodeEventLists(e)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE events SET
			title = ?, type = ?, host_department = ?, location = ?, start_at = ?, end_at = ?,
			description = ?, visibility = ?, allowed_groups = ?, recurring_pattern = ?,
			is_recurring = ?, status = ?, expected_attendees = ?, max_capacity = ?,
			is_virtual = ?, virtual_meeting_link = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, string(e.Type), e.HostDepartment, e.Location, toMillis(e.StartDateTime), toMillis(e.EndDateTime),
		e.Description, string(e.Visibility), lists.groups, lists.pattern,
		e.IsRecurring, string(e.Status), lists.attendees, mapOptionalInt(e.MaxCapacity),
		e.IsVirtual, e.VirtualMeetingLink, toMillis(time.Now()),
		e.ID,
	)
	return requireAffected(res, err)
}

func (r *eventsRepo) DeleteEvent(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM attendance WHERE event_id IN (
			SELECT id FROM events WHERE id = ? OR parent_event_id = ?)`,
		id, id,
	)
	if err != nil {
		return err
	}
	if _, err := r.q.ExecContext(ctx, `DELETE FROM events WHERE parent_event_id = ?`, id); err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return requireAffected(res, err)
}

func (r *eventsRepo) ListEvents(ctx context.Context, q store.EventQuery) ([]domain.Event, error) {
	var (
		where []string
		args  []any
	)
	if q.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(q.Type))
	}
	if q.HostDepartment != "" {
		where = append(where, "host_department = ?")
		args = append(args, q.HostDepartment)
	}
	if q.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(q.Status))
	}
	if q.Visibility != "" {
		where = append(where, "visibility = ?")
		args = append(args, string(q.Visibility))
	}
	if q.From != nil {
		where = append(where, "start_at >= ?")
		args = append(args, toMillis(*q.From))
	}
	if q.To != nil {
		where = append(where, "start_at <= ?")
		args = append(args, toMillis(*q.To))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY start_at, id`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}
	return r.list(ctx, query, args...)
}

func (r *eventsRepo) ListInstances(ctx context.Context, templateID string) ([]domain.Event, error) {
	return r.list(ctx,
		`SELECT `+eventColumns+` FROM events WHERE parent_event_id = ? ORDER BY start_at, id`,
		templateID,
	)
}

func (r *eventsRepo) AdvanceStatuses(ctx context.Context, now time.Time) (int64, int64, error) {
	at := toMillis(now)

	res, err := r.q.ExecContext(ctx,
		`UPDATE events SET status = ?, updated_at = ?
		WHERE status IN (?, ?) AND end_at < ?`,
		string(domain.StatusCompleted), at,
		string(domain.StatusScheduled), string(domain.StatusInProgress), at,
	)
	if err != nil {
		return 0, 0, err
	}
	completed, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	res, err = r.q.ExecContext(ctx,
		`UPDATE events SET status = ?, updated_at = ?
		WHERE status = ? AND start_at <= ? AND end_at >= ?`,
		string(domain.StatusInProgress), at,
		string(domain.StatusScheduled), at, at,
	)
	if err != nil {
		return 0, 0, err
	}
	started, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	return started, completed, nil
}
