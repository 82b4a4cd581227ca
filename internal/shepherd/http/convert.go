package http

import (
	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/pkg/shepherdsdk"
)

// nonNil keeps empty lists as [] rather than null in responses.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toUserResponse(u domain.User) shepherdsdk.UserResponse {
	return shepherdsdk.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		RoleIDs:       nonNil(u.RoleIDs),
		PrimaryRoleID: u.PrimaryRoleID,
		Departments:   nonNil(u.Departments),
		IsActive:      u.IsActive,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
	}
}

// ============================================================================
// Roles
// ============================================================================

func toRoleResponse(r domain.Role) shepherdsdk.RoleResponse {
	perms := make([]shepherdsdk.Permission, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = shepherdsdk.Permission{
			Name:        p.Name,
			Description: p.Description,
			Resource:    p.Resource,
			Action:      string(p.Action),
		}
	}
	return shepherdsdk.RoleResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		Level:              r.Level,
		DepartmentScope:    string(r.DepartmentScope),
		AllowedDepartments: nonNil(r.AllowedDepartments),
		Permissions:        perms,
		IsActive:           r.IsActive,
		IsSystem:           r.IsSystem,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func toRoleResponses(roles []domain.Role) []shepherdsdk.RoleResponse {
	out := make([]shepherdsdk.RoleResponse, len(roles))
	for i, r := range roles {
		out[i] = toRoleResponse(r)
	}
	return out
}

func roleRequestFrom(r domain.Role) shepherdsdk.RoleRequest {
	res := toRoleResponse(r)
	return shepherdsdk.RoleRequest{
		Name:               res.Name,
		Description:        res.Description,
		Level:              res.Level,
		DepartmentScope:    res.DepartmentScope,
		AllowedDepartments: res.AllowedDepartments,
		Permissions:        res.Permissions,
	}
}

// applyRoleRequest copies the editable fields of req onto r.
func applyRoleRequest(r *domain.Role, req shepherdsdk.RoleRequest) {
	r.Name = req.Name
	r.Description = req.Description
	r.Level = req.Level
	r.DepartmentScope = domain.DepartmentScope(req.DepartmentScope)
	r.AllowedDepartments = req.AllowedDepartments
	r.Permissions = make([]domain.Permission, len(req.Permissions))
	for i, p := range req.Permissions {
		r.Permissions[i] = domain.Permission{
			Name:        p.Name,
			Description: p.Description,
			Resource:    p.Resource,
			Action:      domain.Action(p.Action),
		}
	}
}

// ============================================================================
// Members
// ============================================================================

func memberRequestFrom(m domain.Member) shepherdsdk.MemberRequest {
	return shepherdsdk.MemberRequest{
		FullName:       m.FullName,
		Gender:         string(m.Gender),
		DateOfBirth:    m.DateOfBirth,
		PhoneNumber:    m.PhoneNumber,
		Email:          m.Email,
		HomeAddress:    m.HomeAddress,
		City:           m.City,
		Region:         m.Region,
		Occupation:     m.Occupation,
		Employer:       m.Employer,
		EducationLevel: m.EducationLevel,
		MaritalStatus:  string(m.MaritalStatus),
		SpouseName:     m.SpouseName,
		ChildrenNames:  m.ChildrenNames,
		BaptismDate:    m.BaptismDate,
		SpiritualGifts: m.SpiritualGifts,

		DepartmentsInvolved: m.DepartmentsInvolved,
		MembershipStatus:    string(m.MembershipStatus),
		EmergencyContact: shepherdsdk.EmergencyContact{
			Name:         m.EmergencyContact.Name,
			Relationship: m.EmergencyContact.Relationship,
			PhoneNumber:  m.EmergencyContact.PhoneNumber,
		},
		MedicalNotes:      m.MedicalNotes,
		ProfilePictureURL: m.ProfilePictureURL,
	}
}

func applyMemberRequest(m *domain.Member, req shepherdsdk.MemberRequest) {
	m.FullName = req.FullName
	m.Gender = domain.Gender(req.Gender)
	m.DateOfBirth = req.DateOfBirth
	m.PhoneNumber = req.PhoneNumber
	m.Email = req.Email
	m.HomeAddress = req.HomeAddress
	m.City = req.City
	m.Region = req.Region
	m.Occupation = req.Occupation
	m.Employer = req.Employer
	m.EducationLevel = req.EducationLevel
	m.MaritalStatus = domain.MaritalStatus(req.MaritalStatus)
	m.SpouseName = req.SpouseName
	m.ChildrenNames = req.ChildrenNames
	m.BaptismDate = req.BaptismDate
	m.SpiritualGifts = req.SpiritualGifts
	m.DepartmentsInvolved = req.DepartmentsInvolved
	m.MembershipStatus = domain.MembershipStatus(req.MembershipStatus)
	m.EmergencyContact = domain.EmergencyContact{
		Name:         req.EmergencyContact.Name,
		Relationship: req.EmergencyContact.Relationship,
		PhoneNumber:  req.EmergencyContact.PhoneNumber,
	}
	m.MedicalNotes = req.MedicalNotes
	m.ProfilePictureURL = req.ProfilePictureURL
}

func toMemberResponse(m domain.Member) shepherdsdk.MemberResponse {
	return shepherdsdk.MemberResponse{
		ID:            m.ID,
		MemberRequest: memberRequestFrom(m),
		IsArchived:    m.IsArchived,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ============================================================================
// Events
// ============================================================================

func eventRequestFrom(e domain.Event) shepherdsdk.EventRequest {
	req := shepherdsdk.EventRequest{
		Title:              e.Title,
		Type:               string(e.Type),
		HostDepartment:     e.HostDepartment,
		Location:           e.Location,
		StartDateTime:      e.StartDateTime,
		EndDateTime:        e.EndDateTime,
		Description:        e.Description,
		Visibility:         string(e.Visibility),
		AllowedGroups:      e.AllowedGroups,
		IsRecurring:        e.IsRecurring,
		Status:             string(e.Status),
		ExpectedAttendees:  e.ExpectedAttendees,
		MaxCapacity:        e.MaxCapacity,
		IsVirtual:          e.IsVirtual,
		VirtualMeetingLink: e.VirtualMeetingLink,
	}
	if p := e.RecurringPattern; p != nil {
		req.RecurringPattern = &shepherdsdk.RecurrencePattern{
			Frequency:           string(p.Frequency),
			Interval:            p.Interval,
			DaysOfWeek:          p.DaysOfWeek,
			EndDate:             p.EndDate,
			EndAfterOccurrences: p.EndAfterOccurrences,
		}
	}
	return req
}

// applyEventRequest copies the fields a client may set. Ownership, the
// parent link and the check-in secret are never taken from a request.
func applyEventRequest(e *domain.Event, req shepherdsdk.EventRequest) {
	e.Title = req.Title
	e.Type = domain.EventType(req.Type)
	e.HostDepartment = req.HostDepartment
	e.Location = req.Location
	e.StartDateTime = req.StartDateTime
	e.EndDateTime = req.EndDateTime
	e.Description = req.Description
	e.Visibility = domain.Visibility(req.Visibility)
	e.AllowedGroups = req.AllowedGroups
	e.IsRecurring = req.IsRecurring
	e.Status = domain.EventStatus(req.Status)
	e.ExpectedAttendees = req.ExpectedAttendees
	e.MaxCapacity = req.MaxCapacity
	e.IsVirtual = req.IsVirtual
	e.VirtualMeetingLink = req.VirtualMeetingLink

	e.RecurringPattern = nil
	if p := req.RecurringPattern; p != nil {
		e.RecurringPattern = &domain.RecurrencePattern{
			Frequency:           domain.Frequency(p.Frequency),
			Interval:            p.Interval,
			DaysOfWeek:          p.DaysOfWeek,
			EndDate:             p.EndDate,
			EndAfterOccurrences: p.EndAfterOccurrences,
		}
	}
}

func toEventResponse(e domain.Event) shepherdsdk.EventResponse {
	return shepherdsdk.EventResponse{
		ID:           e.ID,
		EventRequest: eventRequestFrom(e),
		CreatedBy:    e.CreatedBy,
		ParentEvent:  e.ParentEvent,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toEventResponses(events []domain.Event) []shepherdsdk.EventResponse {
	out := make([]shepherdsdk.EventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	return out
}

// ============================================================================
// Attendance
// ============================================================================

func toAttendanceResponse(a domain.Attendance) shepherdsdk.AttendanceResponse {
	return shepherdsdk.AttendanceResponse{
		ID:            a.ID,
		MemberID:      a.MemberID,
		EventID:       a.EventID,
		Status:        string(a.Status),
		CheckInTime:   a.CheckInTime,
		CheckOutTime:  a.CheckOutTime,
		Remarks:       a.Remarks,
		RecordedBy:    a.RecordedBy,
		CheckInMethod: string(a.CheckInMethod),
		IsLate:        a.IsLate,
		LateMinutes:   a.LateMinutes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toAttendanceList(records []domain.Attendance) shepherdsdk.ListAttendanceResponse {
	out := make([]shepherdsdk.AttendanceResponse, len(records))
	for i, a := range records {
		out[i] = toAttendanceResponse(a)
	}
	return shepherdsdk.ListAttendanceResponse{Attendance: out}
}

// ============================================================================
// Discipleship
// ============================================================================

func toJourneyResponse(d domain.Discipleship) shepherdsdk.JourneyResponse {
	notes := make([]shepherdsdk.ProgressNote, len(d.ProgressNotes))
	for i, n := range d.ProgressNotes {
		notes[i] = shepherdsdk.ProgressNote{
			ID:             n.ID,
			Date:           n.Date,
			Note:           n.Note,
			AuthorID:       n.AuthorID,
			IsConfidential: n.IsConfidential,
		}
	}
	return shepherdsdk.JourneyResponse{
		ID:                       d.ID,
		MemberID:                 d.MemberID,
		MentorID:                 d.MentorID,
		StartDate:                d.StartDate,
		Goals:                    nonNil(d.Goals),
		ProgressNotes:            notes,
		CompletedModules:         nonNil(d.CompletedModules),
		SpiritualGiftsIdentified: nonNil(d.SpiritualGiftsIdentified),
		Status:                   string(d.Status),
		LastCheckIn:              d.LastCheckIn,
		NextCheckIn:              d.NextCheckIn,
		CreatedAt:                d.CreatedAt,
		UpdatedAt:                d.UpdatedAt,
	}
}
