package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

const attendanceColumns = `id, member_id, event_id, status, check_in_at, check_out_at, remarks,
	recorded_by, check_in_method, is_late, late_minutes, created_at, updated_at`

type attendanceRepo struct {
	q querier
}

func scanAttendance(sc scanner) (domain.Attendance, error) {
	var (
		a                    domain.Attendance
		status, method       string
		checkIn              int64
		checkOut             sql.NullInt64
		createdAt, updatedAt int64
	)
	err := sc.Scan(
		&a.ID, &a.MemberID, &a.EventID, &status, &checkIn, &checkOut, &a.Remarks,
		&a.RecordedBy, &method, &a.IsLate, &a.LateMinutes, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Attendance{}, err
	}
	a.Status = domain.AttendanceStatus(status)
	a.CheckInMethod = domain.CheckInMethod(method)
	a.CheckInTime = fromMillis(checkIn)
	a.CheckOutTime = mapNullTimePtr(checkOut)
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}

func (r *attendanceRepo) list(ctx context.Context, query string, args ...any) ([]domain.Attendance, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepo) GetAttendanceByID(ctx context.Context, id string) (domain.Attendance, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE id = ?`, id)
	a, err := scanAttendance(row)
	if err != nil {
		return domain.Attendance{}, mapNotFound(err)
	}
	return a, nil
}

func (r *attendanceRepo) CreateAttendance(ctx context.Context, a domain.Attendance) error {
	now := toMillis(time.Now())
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO attendance (`+attendanceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.MemberID, a.EventID, string(a.Status), toMillis(a.CheckInTime), mapOptionalTime(a.CheckOutTime),
		a.Remarks, a.RecordedBy, string(a.CheckInMethod), a.IsLate, a.LateMinutes, now, now,
	)
	return mapConflict(err)
}

func (r *attendanceRepo) SetCheckOut(ctx context.Context, id string, at time.Time, remarks string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE attendance SET check_out_at = ?, remarks = ?, updated_at = ? WHERE id = ?`,
		toMillis(at), remarks, toMillis(time.Now()), id,
	)
	return requireAffected(res, err)
}

func (r *attendanceRepo) SetStatus(ctx context.Context, id string, status domain.AttendanceStatus, remarks string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE attendance SET status = ?, remarks = ?, updated_at = ? WHERE id = ?`,
		string(status), remarks, toMillis(time.Now()), id,
	)
	return requireAffected(res, err)
}

func (r *attendanceRepo) ListByEvent(ctx context.Context, eventID string, status domain.AttendanceStatus) ([]domain.Attendance, error) {
	if status != "" {
		return r.list(ctx,
			`SELECT `+attendanceColumns+` FROM attendance WHERE event_id = ? AND status = ? ORDER BY check_in_at, id`,
			eventID, string(status),
		)
	}
	return r.list(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE event_id = ? ORDER BY check_in_at, id`,
		eventID,
	)
}

func (r *attendanceRepo) ListByMember(ctx context.Context, memberID string, f domain.AttendanceFilter) ([]domain.Attendance, error) {
	where := []string{"member_id = ?"}
	args := []any{memberID}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.From != nil {
		where = append(where, "check_in_at >= ?")
		args = append(args, toMillis(*f.From))
	}
	if f.To != nil {
		where = append(where, "check_in_at <= ?")
		args = append(args, toMillis(*f.To))
	}
	return r.list(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE `+strings.Join(where, " AND ")+
			` ORDER BY check_in_at DESC, id`,
		args...,
	)
}

func (r *attendanceRepo) EventStats(ctx context.Context, eventID string) (domain.AttendanceStats, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM attendance WHERE event_id = ? GROUP BY status`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(domain.AttendanceStats, len(domain.AttendanceStatuses))
	for _, s := range domain.AttendanceStatuses {
		stats[s] = 0
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[domain.AttendanceStatus(status)] = count
	}
	return stats, rows.Err()
}

func (r *attendanceRepo) DepartmentReport(ctx context.Context, department string, f domain.AttendanceFilter) ([]domain.DepartmentReportRow, error) {
	where := []string{"e.host_department = ?"}
	args := []any{department}
	if f.Status != "" {
		where = append(where, "a.status = ?")
		args = append(args, string(f.Status))
	}
	if f.From != nil {
		where = append(where, "a.check_in_at >= ?")
		args = append(args, toMillis(*f.From))
	}
	if f.To != nil {
		where = append(where, "a.check_in_at <= ?")
		args = append(args, toMillis(*f.To))
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT e.id, e.title, a.status, COUNT(*)
		FROM attendance a
		JOIN events e ON e.id = a.event_id
		WHERE `+strings.Join(where, " AND ")+`
		GROUP BY e.id, e.title, a.status
		ORDER BY MIN(e.start_at), e.id, a.status`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.DepartmentReportRow
	for rows.Next() {
		var (
			row    domain.DepartmentReportRow
			status string
		)
		if err := rows.Scan(&row.EventID, &row.EventTitle, &status, &row.Count); err != nil {
			return nil, err
		}
		row.Status = domain.AttendanceStatus(status)
		report = append(report, row)
	}
	return report, rows.Err()
}
