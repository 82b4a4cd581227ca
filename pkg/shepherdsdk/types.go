package shepherdsdk

import (
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
)

// ============================================================================
// Errors and system
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// JWKSResponse is the public key set used to verify access tokens.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Authentication and users
// ============================================================================

type BootstrapRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FullName    string   `json:"fullName"`
	Departments []string `json:"departments,omitempty"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful sign in.
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int          `json:"expiresIn"` // seconds
	User        UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"fullName"`
	RoleIDs       []string   `json:"roleIds"`
	PrimaryRoleID string     `json:"primaryRoleId,omitempty"`
	Departments   []string   `json:"departments"`
	IsActive      bool       `json:"isActive"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// MeResponse is the signed-in user with role records resolved.
type MeResponse struct {
	User  UserResponse   `json:"user"`
	Roles []RoleResponse `json:"roles"`
}

type AssignRolesRequest struct {
	RoleIDs       []string `json:"roleIds"`
	PrimaryRoleID string   `json:"primaryRoleId,omitempty"`
}

// ============================================================================
// Roles
// ============================================================================

type Permission struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
}

// RoleRequest creates a role. For updates only the fields present in the
// body are changed.
type RoleRequest struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Level              int          `json:"level"`
	DepartmentScope    string       `json:"departmentScope,omitempty"`
	AllowedDepartments []string     `json:"allowedDepartments,omitempty"`
	Permissions        []Permission `json:"permissions,omitempty"`
}

type RoleResponse struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Level              int          `json:"level"`
	DepartmentScope    string       `json:"departmentScope"`
	AllowedDepartments []string     `json:"allowedDepartments"`
	Permissions        []Permission `json:"permissions"`
	IsActive           bool         `json:"isActive"`
	IsSystem           bool         `json:"isSystem"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

type ListRolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

type InitializeRolesResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// ============================================================================
// Members
// ============================================================================

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phoneNumber"`
}

// MemberRequest registers a member. For updates only the fields present in
// the body are changed.
type MemberRequest struct {
	FullName            string           `json:"fullName"`
	Gender              string           `json:"gender"`
	DateOfBirth         time.Time        `json:"dateOfBirth"`
	PhoneNumber         string           `json:"phoneNumber"`
	Email               string           `json:"email"`
	HomeAddress         string           `json:"homeAddress"`
	City                string           `json:"city"`
	Region              string           `json:"region"`
	Occupation          string           `json:"occupation,omitempty"`
	Employer            string           `json:"employer,omitempty"`
	EducationLevel      string           `json:"educationLevel,omitempty"`
	MaritalStatus       string           `json:"maritalStatus"`
	SpouseName          string           `json:"spouseName,omitempty"`
	ChildrenNames       []string         `json:"childrenNames,omitempty"`
	BaptismDate         *time.Time       `json:"baptismDate,omitempty"`
	SpiritualGifts      []string         `json:"spiritualGifts,omitempty"`
	DepartmentsInvolved []string         `json:"departmentsInvolved,omitempty"`
	MembershipStatus    string           `json:"membershipStatus,omitempty"`
	EmergencyContact    EmergencyContact `json:"emergencyContact"`
	MedicalNotes        string           `json:"medicalNotes,omitempty"`
	ProfilePictureURL   string           `json:"profilePictureUrl,omitempty"`
}

type MemberResponse struct {
	ID string `json:"id"`
	MemberRequest
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
}

// ============================================================================
// Events
// ============================================================================

type RecurrencePattern struct {
	Frequency           string     `json:"frequency"`
	Interval            int        `json:"interval,omitempty"`
	DaysOfWeek          []int      `json:"daysOfWeek,omitempty"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	EndAfterOccurrences *int       `json:"endAfterOccurrences,omitempty"`
}

// EventRequest creates an event. For updates only the fields present in the
// body are changed.
type EventRequest struct {
	Title              string             `json:"title"`
	Type               string             `json:"type"`
	HostDepartment     string             `json:"hostDepartment"`
	Location           string             `json:"location"`
	StartDateTime      time.Time          `json:"startDateTime"`
	EndDateTime        time.Time          `json:"endDateTime"`
	Description        string             `json:"description,omitempty"`
	Visibility         string             `json:"visibility,omitempty"`
	AllowedGroups      []string           `json:"allowedGroups,omitempty"`
	RecurringPattern   *RecurrencePattern `json:"recurringPattern,omitempty"`
	IsRecurring        bool               `json:"isRecurring"`
	Status             string             `json:"status,omitempty"`
	ExpectedAttendees  []string           `json:"expectedAttendees,omitempty"`
	MaxCapacity        *int               `json:"maxCapacity,omitempty"`
	IsVirtual          bool               `json:"isVirtual"`
	VirtualMeetingLink string             `json:"virtualMeetingLink,omitempty"`
}

type EventResponse struct {
	ID string `json:"id"`
	EventRequest
	CreatedBy   string    `json:"createdBy"`
	ParentEvent string    `json:"parentEvent,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateEventResponse struct {
	Event            EventResponse `json:"event"`
	InstancesCreated int           `json:"instancesCreated"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// EventQuery filters ListEvents. Zero fields are omitted.
type EventQuery struct {
	Type       string
	Department string
	Status     string
	Visibility string
	From       *time.Time
	To         *time.Time
	Limit      int
}

type CheckInCodeResponse struct {
	Code       string    `json:"code"`
	ValidUntil time.Time `json:"validUntil"`
}

// ============================================================================
// Attendance
// ============================================================================

type RecordAttendanceRequest struct {
	MemberID      string     `json:"memberId"`
	EventID       string     `json:"eventId"`
	Status        string     `json:"status,omitempty"`
	CheckInMethod string     `json:"checkInMethod,omitempty"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	Code          string     `json:"code,omitempty"` // required for the token method
}

type SelfCheckInRequest struct {
	EventID string `json:"eventId"`
	Code    string `json:"code"`
}

type CheckOutRequest struct {
	Remarks string `json:"remarks,omitempty"`
}

type UpdateAttendanceStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}

type AttendanceResponse struct {
	ID            string     `json:"id"`
	MemberID      string     `json:"memberId"`
	EventID       string     `json:"eventId"`
	Status        string     `json:"status"`
	CheckInTime   time.Time  `json:"checkInTime"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	RecordedBy    string     `json:"recordedBy"`
	CheckInMethod string     `json:"checkInMethod"`
	IsLate        bool       `json:"isLate"`
	LateMinutes   int        `json:"lateMinutes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}

// AttendanceFilter narrows member history and department reports.
type AttendanceFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

type AttendanceStatsResponse struct {
	EventID string         `json:"eventId"`
	Total   int            `json:"total"`
	Stats   map[string]int `json:"stats"`
}

type DepartmentReportRow struct {
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle"`
	Status     string `json:"status"`
	Count      int    `json:"count"`
}

type DepartmentReportResponse struct {
	Department string                `json:"department"`
	Rows       []DepartmentReportRow `json:"rows"`
}

// ============================================================================
// Discipleship
// ============================================================================

type StartJourneyRequest struct {
	MemberID string   `json:"memberId"`
	MentorID string   `json:"mentorId"`
	Goals    []string `json:"goals,omitempty"`
}

// UpdateJourneyRequest changes only the non-nil fields.
type UpdateJourneyRequest struct {
	Goals                    *[]string `json:"goals,omitempty"`
	Status                   *string   `json:"status,omitempty"`
	CompletedModules         *[]string `json:"completedModules,omitempty"`
	SpiritualGiftsIdentified *[]string `json:"spiritualGiftsIdentified,omitempty"`
}

type AddNoteRequest struct {
	Note           string `json:"note"`
	IsConfidential bool   `json:"isConfidential"`
}

type ProgressNote struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Note           string    `json:"note"`
	AuthorID       string    `json:"authorId"`
	IsConfidential bool      `json:"isConfidential"`
}

type JourneyResponse struct {
	ID                       string         `json:"id"`
	MemberID                 string         `json:"memberId"`
	MentorID                 string         `json:"mentorId"`
	StartDate                time.Time      `json:"startDate"`
	Goals                    []string       `json:"goals"`
	ProgressNotes            []ProgressNote `json:"progressNotes"`
	CompletedModules         []string       `json:"completedModules"`
	SpiritualGiftsIdentified []string       `json:"spiritualGiftsIdentified"`
	Status                   string         `json:"status"`
	LastCheckIn              *time.Time     `json:"lastCheckIn,omitempty"`
	NextCheckIn              *time.Time     `json:"nextCheckIn,omitempty"`
	CreatedAt                time.Time      `json:"createdAt"`
	UpdatedAt                time.Time      `json:"updatedAt"`
}

type ListJourneysResponse struct {
	Journeys []JourneyResponse `json:"journeys"`
}
