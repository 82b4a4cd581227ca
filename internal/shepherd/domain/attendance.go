package domain

import (
	"errors"
	"time"
)

type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceLivestream AttendanceStatus = "livestream"
)

func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent || s == AttendanceLivestream
}

// AttendanceStatuses lists every status in report order.
var AttendanceStatuses = []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLivestream}

type CheckInMethod string

const (
	CheckInManual CheckInMethod = "manual"
	CheckInQRCode CheckInMethod = "qr_code"
	CheckInToken  CheckInMethod = "token"
)

func (m CheckInMethod) Valid() bool {
	return m == CheckInManual || m == CheckInQRCode || m == CheckInToken
}

// Attendance is one member's record for one event. (MemberID, EventID) is unique.
type Attendance struct {
	ID            string
	MemberID      string
	EventID       string
	Status        AttendanceStatus
	CheckInTime   time.Time
	CheckOutTime  *time.Time
	Remarks       string
	RecordedBy    string
	CheckInMethod CheckInMethod
	IsLate        bool
	LateMinutes   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Lateness returns whether checkIn is after start and by how many whole minutes.
func Lateness(start, checkIn time.Time) (bool, int) {
	if !checkIn.After(start) {
		return false, 0
	}
	return true, int(checkIn.Sub(start) / time.Minute)
}

var (
	ErrAttendanceStatusInvalid = errors.New("attendance status must be present, absent or livestream")
	ErrCheckInMethodInvalid    = errors.New("check-in method must be manual, qr_code or token")
)

// AttendanceFilter narrows member history and department reports.
type AttendanceFilter struct {
	Status AttendanceStatus
	From   *time.Time
	To     *time.Time
}

// AttendanceStats counts records per status for a single event.
type AttendanceStats map[AttendanceStatus]int

// DepartmentReportRow is one (event, status) bucket of a department report.
type DepartmentReportRow struct {
	EventID    string
	EventTitle string
	Status     AttendanceStatus
	Count      int
}
