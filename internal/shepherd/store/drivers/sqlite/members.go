package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

const memberColumns = `id, full_name, gender, date_of_birth, phone_number, email, home_address,
	city, region, occupation, employer, education_level, marital_status, spouse_name,
	children_names, baptism_date, spiritual_gifts, departments_involved, membership_status,
	emergency_name, emergency_relation, emergency_phone, medical_notes, profile_picture_url,
	is_archived, created_at, updated_at`

type membersRepo struct {
	q querier
}

type memberLists struct {
	children, gifts, departments string
}

func encodeMemberLists(m domain.Member) (memberLists, error) {
	var (
		out memberLists
		err error
	)
	if out.children, err = encodeJSON(m.ChildrenNames); err != nil {
		return out, err
	}
	if out.gifts, err = encodeJSON(m.SpiritualGifts); err != nil {
		return out, err
	}
	if out.departments, err = encodeJSON(m.DepartmentsInvolved); err != nil {
		return out, err
	}
	return out, nil
}

func scanMember(sc scanner) (domain.Member, error) {
	var (
		m                         domain.Member
		gender, marital, status   string
		dob, createdAt, updatedAt int64
		baptism                   sql.NullInt64
		lists                     memberLists
	)
	err := sc.Scan(
		&m.ID, &m.FullName, &gender, &dob, &m.PhoneNumber, &m.Email, &m.HomeAddress,
		&m.City, &m.Region, &m.Occupation, &m.Employer, &m.EducationLevel, &marital, &m.SpouseName,
		&lists.children, &baptism, &lists.gifts, &lists.departments, &status,
		&m.EmergencyContact.Name, &m.EmergencyContact.Relationship, &m.EmergencyContact.PhoneNumber,
		&m.MedicalNotes, &m.ProfilePictureURL,
		&m.IsArchived, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Member{}, err
	}

	m.Gender = domain.Gender(gender)
	m.MaritalStatus = domain.MaritalStatus(marital)
	m.MembershipStatus = domain.MembershipStatus(status)
	m.DateOfBirth = fromMillis(dob)
	m.BaptismDate = mapNullTimePtr(baptism)
	if m.ChildrenNames, err = decodeJSON[string](lists.children); err != nil {
		return domain.Member{}, fmt.Errorf("member %s children: %w", m.ID, err)
	}
	if m.SpiritualGifts, err = decodeJSON[string](lists.gifts); err != nil {
		return domain.Member{}, fmt.Errorf("member %s gifts: %w", m.ID, err)
	}
	if m.DepartmentsInvolved, err = decodeJSON[string](lists.departments); err != nil {
		return domain.Member{}, fmt.Errorf("member %s departments: %w", m.ID, err)
	}
	m.CreatedAt = fromMillis(createdAt)
	m.UpdatedAt = fromMillis(updatedAt)
	return m, nil
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	lists, err := encodeMemberLists(m)
	if err != nil {
		return err
	}

	now := toMillis(time.Now())
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO members (`+memberColumns+`) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.FullName, string(m.Gender), toMillis(m.DateOfBirth), m.PhoneNumber,
		strings.ToLower(m.Email), m.HomeAddress,
		m.City, m.Region, m.Occupation, m.Employer, m.EducationLevel, string(m.MaritalStatus), m.SpouseName,
		lists.children, mapOptionalTime(m.BaptismDate), lists.gifts, lists.departments, string(m.MembershipStatus),
		m.EmergencyContact.Name, m.EmergencyContact.Relationship, m.EmergencyContact.PhoneNumber,
		m.MedicalNotes, m.ProfilePictureURL,
		m.IsArchived, now, now,
	)
	return mapConflict(err)
}

func (r *membersRepo) UpdateMember(ctx context.Context, m domain.Member) error {
	lists, err := encodeMemberLists(m)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE members SET
			full_name = ?, gender = ?, date_of_birth = ?, phone_number = ?, email = ?, home_address = ?,
			city = ?, region = ?, occupation = ?, employer = ?, education_level = ?, marital_status = ?,
			spouse_name = ?, children_names = ?, baptism_date = ?, spiritual_gifts = ?,
			departments_involved = ?, membership_status = ?, emergency_name = ?, emergency_relation = ?,
			emergency_phone = ?, medical_notes = ?, profile_picture_url = ?, updated_at = ?
		WHERE id = ? AND is_archived = 0`,
		m.FullName, string(m.Gender), toMillis(m.DateOfBirth), m.PhoneNumber, strings.ToLower(m.Email), m.HomeAddress,
		m.City, m.Region, m.Occupation, m.Employer, m.EducationLevel, string(m.MaritalStatus),
		m.SpouseName, lists.children, mapOptionalTime(m.BaptismDate), lists.gifts,
		lists.departments, string(m.MembershipStatus), m.EmergencyContact.Name, m.EmergencyContact.Relationship,
		m.EmergencyContact.PhoneNumber, m.MedicalNotes, m.ProfilePictureURL, toMillis(time.Now()),
		m.ID,
	)
	return requireAffected(res, mapConflict(err))
}

func (r *membersRepo) ListMembers(ctx context.Context, page domain.Page) ([]domain.Member, int, error) {
	page = page.Normalize()

	var total int
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE is_archived = 0`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE is_archived = 0
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		page.Limit, page.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, rows.Err()
}

func (r *membersRepo) ArchiveMember(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE members SET is_archived = 1, updated_at = ? WHERE id = ? AND is_archived = 0`,
		toMillis(time.Now()), id,
	)
	return requireAffected(res, err)
}
