package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

const roleColumns = `id, name, description, level, department_scope, allowed_departments,
	permissions, is_active, is_system, created_at, updated_at`

type rolesRepo struct {
	q querier
}

type permissionRow struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
}

func encodePermissions(perms []domain.Permission) (string, error) {
	rows := make([]permissionRow, len(perms))
	for i, p := range perms {
		rows[i] = permissionRow{
			Name:        p.Name,
			Description: p.Description,
			Resource:    p.Resource,
			Action:      string(p.Action),
		}
	}
	return encodeJSON(rows)
}

func decodePermissions(s string) ([]domain.Permission, error) {
	rows, err := decodeJSON[permissionRow](s)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	perms := make([]domain.Permission, len(rows))
	for i, r := range rows {
		perms[i] = domain.Permission{
			Name:        r.Name,
			Description: r.Description,
			Resource:    r.Resource,
			Action:      domain.Action(r.Action),
		}
	}
	return perms, nil
}

func scanRole(sc scanner) (domain.Role, error) {
	var (
		r                  domain.Role
		scope              string
		allowed, perms     string
		createdAt, updated int64
	)
	err := sc.Scan(
		&r.ID, &r.Name, &r.Description, &r.Level, &scope, &allowed,
		&perms, &r.IsActive, &r.IsSystem, &createdAt, &updated,
	)
	if err != nil {
		return domain.Role{}, err
	}

	r.DepartmentScope = domain.DepartmentScope(scope)
	if r.AllowedDepartments, err = decodeJSON[string](allowed); err != nil {
		return domain.Role{}, fmt.Errorf("role %s allowed departments: %w", r.ID, err)
	}
	if r.Permissions, err = decodePermissions(perms); err != nil {
		return domain.Role{}, fmt.Errorf("role %s permissions: %w", r.ID, err)
	}
	r.CreatedAt = fromMillis(createdAt)
	r.UpdatedAt = fromMillis(updated)
	return r, nil
}

func (r *rolesRepo) list(ctx context.Context, query string, args ...any) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) FindByNames(ctx context.Context, names []string) ([]domain.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	return r.list(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE name IN (`+inClause(len(names))+`) ORDER BY level, name`,
		stringArgs(names)...,
	)
}

func (r *rolesRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id IN (`+inClause(len(ids))+`) ORDER BY level, name`,
		stringArgs(ids)...,
	)
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)
	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE name = ?`, name)
	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListActive(ctx context.Context) ([]domain.Role, error) {
	return r.list(ctx, `SELECT `+roleColumns+` FROM roles WHERE is_active = 1 ORDER BY level, name`)
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	allowed, err := encodeJSON(role.AllowedDepartments)
	if err != nil {
		return err
	}
	perms, err := encodePermissions(role.Permissions)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO roles (`+roleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		role.ID, role.Name, role.Description, role.Level, string(role.DepartmentScope), allowed,
		perms, role.IsActive, role.IsSystem, toMillis(now), toMillis(now),
	)
	return mapConflict(err)
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	allowed, err := encodeJSON(role.AllowedDepartments)
	if err != nil {
		return err
	}
	perms, err := encodePermissions(role.Permissions)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE roles SET name = ?, description = ?, level = ?, department_scope = ?,
			allowed_departments = ?, permissions = ?, is_active = ?, is_system = ?, updated_at = ?
		WHERE id = ?`,
		role.Name, role.Description, role.Level, string(role.DepartmentScope),
		allowed, perms, role.IsActive, role.IsSystem, toMillis(time.Now()),
		role.ID,
	)
	return requireAffected(res, mapConflict(err))
}

func (r *rolesRepo) SetRoleActive(ctx context.Context, roleID string, active bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE roles SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, toMillis(time.Now()), roleID,
	)
	return requireAffected(res, err)
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
