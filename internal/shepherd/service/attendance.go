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
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

type AttendanceService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RecordAttendance is one check-in. CheckInTime defaults to now; Code is
// only read for the token method.
type RecordAttendance struct {
	MemberID    string
	EventID     string
	Status      domain.AttendanceStatus
	Method      domain.CheckInMethod
	CheckInTime *time.Time
	Remarks     string
	Code        string
}

// Record stores a member's attendance for an event. Lateness is measured
// against the event start in whole minutes.
func (s *AttendanceService) Record(ctx context.Context, p rbac.Principal, req RecordAttendance) (domain.Attendance, error) {
	if req.Status == "" {
		req.Status = domain.AttendancePresent
	}
	if req.Method == "" {
		req.Method = domain.CheckInManual
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.MemberID) == "" {
		fields["memberId"] = "required"
	}
	if strings.TrimSpace(req.EventID) == "" {
		fields["eventId"] = "required"
	}
	if !req.Status.Valid() {
		fields["status"] = domain.ErrAttendanceStatusInvalid.Error()
	}
	if !req.Method.Valid() {
		fields["checkInMethod"] = domain.ErrCheckInMethodInvalid.Error()
	}
	if err := invalidFields(fields); err != nil {
		return domain.Attendance{}, err
	}

	event, err := s.Store.Events().GetEventByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Attendance{}, ErrEventNotFound
		}
		return domain.Attendance{}, err
	}
	if _, err := s.Store.Users().GetUserByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Attendance{}, ErrUserNotFound
		}
		return domain.Attendance{}, err
	}

	now := s.now()
	if req.Method == domain.CheckInToken &&
		!cryptox.ValidateCheckInCode(strings.TrimSpace(req.Code), event.CheckInSecret, now) {
		return domain.Attendance{}, ErrInvalidCheckInCode
	}

	checkIn := now
	if req.CheckInTime != nil && req.Method != domain.CheckInToken {
		checkIn = *req.CheckInTime
	}
	late, minutes := domain.Lateness(event.StartDateTime, checkIn)

	a := domain.Attendance{
		ID:            idx.New().String(),
		MemberID:      req.MemberID,
		EventID:       req.EventID,
		Status:        req.Status,
		CheckInTime:   checkIn,
		Remarks:       req.Remarks,
		RecordedBy:    p.UserID,
		CheckInMethod: req.Method,
		IsLate:        late,
		LateMinutes:   minutes,
	}
	if err := s.Store.Attendance().CreateAttendance(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Attendance{}, ErrAlreadyRecorded
		}
		return domain.Attendance{}, err
	}

	slogx.FromContext(ctx).Info("attendance recorded",
		slog.String("attendance_id", a.ID),
		slog.String("event_id", a.EventID),
		slog.String("method", string(a.CheckInMethod)),
		slog.Bool("late", late),
	)
	return s.get(ctx, a.ID)
}

// SelfCheckIn records the caller as present using the event's current
// check-in code.
func (s *AttendanceService) SelfCheckIn(ctx context.Context, p rbac.Principal, eventID, code string) (domain.Attendance, error) {
	return s.Record(ctx, p, RecordAttendance{
		MemberID: p.UserID,
		EventID:  eventID,
		Status:   domain.AttendancePresent,
		Method:   domain.CheckInToken,
		Code:     code,
	})
}

func (s *AttendanceService) get(ctx context.Context, id string) (domain.Attendance, error) {
	a, err := s.Store.Attendance().GetAttendanceByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Attendance{}, ErrAttendanceNotFound
	}
	return a, err
}

// CheckOut stamps the check-out time once. Empty remarks keep the existing
// ones.
func (s *AttendanceService) CheckOut(ctx context.Context, id, remarks string) (domain.Attendance, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return domain.Attendance{}, err
	}
	if a.CheckOutTime != nil {
		return domain.Attendance{}, ErrAlreadyCheckedOut
	}
	if remarks == "" {
		remarks = a.Remarks
	}
	if err := s.Store.Attendance().SetCheckOut(ctx, id, s.now(), remarks); err != nil {
		return domain.Attendance{}, err
	}
	return s.get(ctx, id)
}

func (s *AttendanceService) UpdateStatus(ctx context.Context, id string, status domain.AttendanceStatus, remarks string) (domain.Attendance, error) {
	if !status.Valid() {
		return domain.Attendance{}, invalid("status", domain.ErrAttendanceStatusInvalid.Error())
	}
	a, err := s.get(ctx, id)
	if err != nil {
		return domain.Attendance{}, err
	}
	if remarks == "" {
		remarks = a.Remarks
	}
	if err := s.Store.Attendance().SetStatus(ctx, id, status, remarks); err != nil {
		return domain.Attendance{}, err
	}
	return s.get(ctx, id)
}

// EventAttendance lists an event's records in check-in order, optionally
// narrowed to one status.
func (s *AttendanceService) EventAttendance(ctx context.Context, eventID string, status domain.AttendanceStatus) ([]domain.Attendance, error) {
	if status != "" && !status.Valid() {
		return nil, invalid("status", domain.ErrAttendanceStatusInvalid.Error())
	}
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.Store.Attendance().ListByEvent(ctx, eventID, status)
}

// MemberHistory lists a member's records, newest first.
func (s *AttendanceService) MemberHistory(ctx context.Context, memberID string, f domain.AttendanceFilter) ([]domain.Attendance, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("status", domain.ErrAttendanceStatusInvalid.Error())
	}
	return s.Store.Attendance().ListByMember(ctx, memberID, f)
}

// EventStats counts an event's records per status, including zeros.
func (s *AttendanceService) EventStats(ctx context.Context, eventID string) (domain.AttendanceStats, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.Store.Attendance().EventStats(ctx, eventID)
}

// DepartmentReport counts records per event and status for events hosted
// by department.
func (s *AttendanceService) DepartmentReport(ctx context.Context, p rbac.Principal, department string, f domain.AttendanceFilter) ([]domain.DepartmentReportRow, error) {
	if err := p.RequireDepartment(department); err != nil {
		return nil, err
	}
	return s.Store.Attendance().DepartmentReport(ctx, department, f)
}

func (s *AttendanceService) requireEvent(ctx context.Context, eventID string) error {
	if _, err := s.Store.Events().GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}
