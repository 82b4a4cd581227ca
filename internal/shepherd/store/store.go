package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories; a Tx-scoped Store cannot open another transaction.
type Store interface {
	Users() Users
	Roles() Roles
	Members() Members
	Events() Events
	Attendance() Attendance
	Discipleship() Discipleship

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts the user and its role links.
	CreateUser(ctx context.Context, u domain.User) error

	// SetUserRoles replaces the user's role links and primary role.
	SetUserRoles(ctx context.Context, userID string, roleIDs []string, primaryRoleID string) error

	UpdatePasswordHash(ctx context.Context, userID, hash string, changedAt time.Time) error
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	// FindByNames and FindByIDs return only the roles that exist; missing
	// keys are not an error.
	FindByNames(ctx context.Context, names []string) ([]domain.Role, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Role, error)

	GetRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListActive returns active roles ordered by level then name.
	ListActive(ctx context.Context) ([]domain.Role, error)

	CreateRole(ctx context.Context, r domain.Role) error
	UpdateRole(ctx context.Context, r domain.Role) error
	SetRoleActive(ctx context.Context, roleID string, active bool) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Members interface {
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)
	CreateMember(ctx context.Context, m domain.Member) error
	UpdateMember(ctx context.Context, m domain.Member) error

	// ListMembers returns non-archived members newest first and the total count.
	ListMembers(ctx context.Context, page domain.Page) ([]domain.Member, int, error)

	ArchiveMember(ctx context.Context, id string) error
}

// EventQuery filters ListEvents. Zero fields are ignored.
type EventQuery struct {
	Type           domain.EventType
	HostDepartment string
	Status         domain.EventStatus
	Visibility     domain.Visibility
	From           *time.Time
	To             *time.Time
	Limit          int
}

type Events interface {
	GetEventByID(ctx context.Context, id string) (domain.Event, error)
	CreateEvent(ctx context.Context, e domain.Event) error
	UpdateEvent(ctx context.Context, e domain.Event) error

	// DeleteEvent removes the event and any instances generated from it.
	DeleteEvent(ctx context.Context, id string) error

	// ListEvents returns matching events ordered by start time.
	ListEvents(ctx context.Context, q EventQuery) ([]domain.Event, error)

	// ListInstances returns events whose parent is templateID.
	ListInstances(ctx context.Context, templateID string) ([]domain.Event, error)

	// AdvanceStatuses moves scheduled events that have started to in-progress
	// and scheduled or in-progress events that have ended to completed.
	AdvanceStatuses(ctx context.Context, now time.Time) (started, completed int64, err error)
}

type Attendance interface {
	GetAttendanceByID(ctx context.Context, id string) (domain.Attendance, error)

	// CreateAttendance fails with ErrAlreadyExists for a repeated (member, event).
	CreateAttendance(ctx context.Context, a domain.Attendance) error

	SetCheckOut(ctx context.Context, id string, at time.Time, remarks string) error
	SetStatus(ctx context.Context, id string, status domain.AttendanceStatus, remarks string) error

	ListByEvent(ctx context.Context, eventID string, status domain.AttendanceStatus) ([]domain.Attendance, error)
	ListByMember(ctx context.Context, memberID string, f domain.AttendanceFilter) ([]domain.Attendance, error)
	EventStats(ctx context.Context, eventID string) (domain.AttendanceStats, error)
	DepartmentReport(ctx context.Context, department string, f domain.AttendanceFilter) ([]domain.DepartmentReportRow, error)
}

type Discipleship interface {
	GetJourneyByID(ctx context.Context, id string) (domain.Discipleship, error)
	GetJourneyByMember(ctx context.Context, memberID string) (domain.Discipleship, error)
	ListJourneysByMentor(ctx context.Context, mentorID string) ([]domain.Discipleship, error)

	// CreateJourney fails with ErrAlreadyExists when the member already has one.
	CreateJourney(ctx context.Context, d domain.Discipleship) error
	UpdateJourney(ctx context.Context, d domain.Discipleship) error
	AddProgressNote(ctx context.Context, journeyID string, n domain.ProgressNote) error
	DeleteJourney(ctx context.Context, id string) error
}
