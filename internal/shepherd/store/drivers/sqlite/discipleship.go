package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

const journeyColumns = `id, member_id, mentor_id, start_date, goals, completed_modules,
	spiritual_gifts, status, last_check_in, next_check_in, created_at, updated_at`

type discipleshipRepo struct {
	q querier
}

func scanJourney(sc scanner) (domain.Discipleship, error) {
	var (
		d                      domain.Discipleship
		goals, modules, gifts  string
		status                 string
		startDate              int64
		lastCheckIn, nextCheck sql.NullInt64
		createdAt, updatedAt   int64
	)
	err := sc.Scan(
		&d.ID, &d.MemberID, &d.MentorID, &startDate, &goals, &modules,
		&gifts, &status, &lastCheckIn, &nextCheck, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Discipleship{}, err
	}

	d.StartDate = fromMillis(startDate)
	d.Status = domain.JourneyStatus(status)
	d.LastCheckIn = mapNullTimePtr(lastCheckIn)
	d.NextCheckIn = mapNullTimePtr(nextCheck)
	if d.Goals, err = decodeJSON[string](goals); err != nil {
		return domain.Discipleship{}, fmt.Errorf("journey %s goals: %w", d.ID, err)
	}
	if d.CompletedModules, err = decodeJSON[string](modules); err != nil {
		return domain.Discipleship{}, fmt.Errorf("journey %s modules: %w", d.ID, err)
	}
	if d.SpiritualGiftsIdentified, err = decodeJSON[string](gifts); err != nil {
		return domain.Discipleship{}, fmt.Errorf("journey %s gifts: %w", d.ID, err)
	}
	d.CreatedAt = fromMillis(createdAt)
	d.UpdatedAt = fromMillis(updatedAt)
	return d, nil
}

func (r *discipleshipRepo) notes(ctx context.Context, journeyID string) ([]domain.ProgressNote, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, noted_at, note, author_id, is_confidential
		FROM progress_notes WHERE journey_id = ? ORDER BY noted_at, id`,
		journeyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.ProgressNote
	for rows.Next() {
		var (
			n       domain.ProgressNote
			notedAt int64
		)
		if err := rows.Scan(&n.ID, &notedAt, &n.Note, &n.AuthorID, &n.IsConfidential); err != nil {
			return nil, err
		}
		n.Date = fromMillis(notedAt)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *discipleshipRepo) get(ctx context.Context, where string, arg any) (domain.Discipleship, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+journeyColumns+` FROM discipleship WHERE `+where, arg)
	d, err := scanJourney(row)
	if err != nil {
		return domain.Discipleship{}, mapNotFound(err)
	}
	if d.ProgressNotes, err = r.notes(ctx, d.ID); err != nil {
		return domain.Discipleship{}, err
	}
	return d, nil
}

func (r *discipleshipRepo) GetJourneyByID(ctx context.Context, id string) (domain.Discipleship, error) {
	return r.get(ctx, `id = ?`, id)
}

func (r *discipleshipRepo) GetJourneyByMember(ctx context.Context, memberID string) (domain.Discipleship, error) {
	return r.get(ctx, `member_id = ?`, memberID)
}

func (r *discipleshipRepo) ListJourneysByMentor(ctx context.Context, mentorID string) ([]domain.Discipleship, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+journeyColumns+` FROM discipleship WHERE mentor_id = ? ORDER BY start_date, id`,
		mentorID,
	)
	if err != nil {
		return nil, err
	}

	var journeys []domain.Discipleship
	for rows.Next() {
		d, err := scanJourney(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		journeys = append(journeys, d)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// Notes are loaded after the cursor is released; the pool holds one connection.
	if err := rows.Close(); err != nil {
		return nil, err
	}

	for i := range journeys {
		if journeys[i].ProgressNotes, err = r.notes(ctx, journeys[i].ID); err != nil {
			return nil, err
		}
	}
	return journeys, nil
}

func (r *discipleshipRepo) CreateJourney(ctx context.Context, d domain.Discipleship) error {
	goals, err := encodeJSON(d.Goals)
	if err != nil {
		return err
	}
	modules, err := encodeJSON(d.CompletedModules)
	if err != nil {
		return err
	}
	gifts, err := encodeJSON(d.SpiritualGiftsIdentified)
	if err != nil {
		return err
	}

	now := toMillis(time.Now())
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO discipleship (`+journeyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.MemberID, d.MentorID, toMillis(d.StartDate), goals, modules,
		gifts, string(d.Status), mapOptionalTime(d.LastCheckIn), mapOptionalTime(d.NextCheckIn), now, now,
	)
	if err != nil {
		return mapConflict(err)
	}

	for _, n := range d.ProgressNotes {
		if err := r.AddProgressNote(ctx, d.ID, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *discipleshipRepo) UpdateJourney(ctx context.Context, d domain.Discipleship) error {
	goals, err := encodeJSON(d.Goals)
	if err != nil {
		return err
	}
	modules, err := encodeJSON(d.CompletedModules)
	if err != nil {
		return err
	}
	gifts, err := encodeJSON(d.SpiritualGiftsIdentified)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE discipleship SET
			mentor_id = ?, goals = ?, completed_modules = ?, spiritual_gifts = ?, status = ?,
			last_check_in = ?, next_check_in = ?, updated_at = ?
		WHERE id = ?`,
		d.MentorID, goals, modules, gifts, string(d.Status),
		mapOptionalTime(d.LastCheckIn), mapOptionalTime(d.NextCheckIn), toMillis(time.Now()),
		d.ID,
	)
	return requireAffected(res, err)
}

func (r *discipleshipRepo) AddProgressNote(ctx context.Context, journeyID string, n domain.ProgressNote) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO progress_notes (id, journey_id, noted_at, note, author_id, is_confidential)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, journeyID, toMillis(n.Date), n.Note, n.AuthorID, n.IsConfidential,
	)
	return mapConflict(err)
}

func (r *discipleshipRepo) DeleteJourney(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM progress_notes WHERE journey_id = ?`, id); err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, `DELETE FROM discipleship WHERE id = ?`, id)
	return requireAffected(res, err)
}
