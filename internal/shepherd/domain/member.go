package domain

import (
	"net/mail"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type MaritalStatus string

const (
	Single   MaritalStatus = "Single"
	Married  MaritalStatus = "Married"
	Divorced MaritalStatus = "Divorced"
	Widowed  MaritalStatus = "Widowed"
)

type MembershipStatus string

const (
	MembershipVisitor  MembershipStatus = "Visitor"
	MembershipNew      MembershipStatus = "New Member"
	MembershipActive   MembershipStatus = "Active"
	MembershipInactive MembershipStatus = "Inactive"
)

const requiredFieldReason = "required"

type EmergencyContact struct {
	Name         string
	Relationship string
	PhoneNumber  string
}

// Member is a congregation record. It is separate from User, which only
// exists for people who sign in.
type Member struct {
	ID                  string
	FullName            string
	Gender              Gender
	DateOfBirth         time.Time
	PhoneNumber         string
	Email               string // lowercased, unique
	HomeAddress         string
	City                string
	Region              string
	Occupation          string
	Employer            string
	EducationLevel      string
	MaritalStatus       MaritalStatus
	SpouseName          string
	ChildrenNames       []string
	BaptismDate         *time.Time
	SpiritualGifts      []string
	DepartmentsInvolved []string
	MembershipStatus    MembershipStatus
	EmergencyContact    EmergencyContact
	MedicalNotes        string
	ProfilePictureURL   string
	IsArchived          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate returns field-level problems keyed by JSON field name, or nil.
func (m Member) Validate() map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		"fullName":    m.FullName,
		"phoneNumber": m.PhoneNumber,
		"email":       m.Email,
		"homeAddress": m.HomeAddress,
		"city":        m.City,
		"region":      m.Region,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			errs[field] = requiredFieldReason
		}
	}

	if _, ok := errs["email"]; !ok {
		if _, err := mail.ParseAddress(m.Email); err != nil {
			errs["email"] = "must be a valid email address"
		}
	}

	switch m.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		errs["gender"] = "must be Male, Female or Other"
	}

	if m.DateOfBirth.IsZero() {
		errs["dateOfBirth"] = requiredFieldReason
	}

	switch m.MaritalStatus {
	case Single, Married, Divorced, Widowed:
	default:
		errs["maritalStatus"] = "must be Single, Married, Divorced or Widowed"
	}

	switch m.MembershipStatus {
	case MembershipVisitor, MembershipNew, MembershipActive, MembershipInactive:
	default:
		errs["membershipStatus"] = "must be Visitor, New Member, Active or Inactive"
	}

	ec := m.EmergencyContact
	if strings.TrimSpace(ec.Name) == "" ||
		strings.TrimSpace(ec.Relationship) == "" ||
		strings.TrimSpace(ec.PhoneNumber) == "" {
		errs["emergencyContact"] = "name, relationship and phoneNumber are required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Page is a one-based page request.
type Page struct {
	Number int
	Limit  int
}

// Normalize applies the defaults page 1 and limit 10.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

func (p Page) Offset() int { return (p.Number - 1) * p.Limit }
