package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
)

const userColumns = `id, email, full_name, password_hash, primary_role_id, departments,
	is_active, last_login, password_changed_at, created_at, updated_at`

type usersRepo struct {
	q querier
}

func scanUser(sc scanner) (domain.User, error) {
	var (
		u                  domain.User
		primary            sql.NullString
		departments        string
		lastLogin, changed sql.NullInt64
		createdAt, updated int64
	)
	err := sc.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &primary, &departments,
		&u.IsActive, &lastLogin, &changed, &createdAt, &updated,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.PrimaryRoleID = mapNullString(primary)
	if u.Departments, err = decodeJSON[string](departments); err != nil {
		return domain.User{}, fmt.Errorf("user %s departments: %w", u.ID, err)
	}
	u.LastLogin = mapNullTimePtr(lastLogin)
	u.PasswordChangedAt = mapNullTimePtr(changed)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updated)
	return u, nil
}

func (r *usersRepo) roleIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT role_id FROM user_roles WHERE user_id = ? ORDER BY position`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *usersRepo) get(ctx context.Context, where string, arg any) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if u.RoleIDs, err = r.roleIDs(ctx, u.ID); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.get(ctx, `id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.get(ctx, `email = ?`, strings.ToLower(email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	departments, err := encodeJSON(u.Departments)
	if err != nil {
		return err
	}

	now := toMillis(time.Now())
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, strings.ToLower(u.Email), u.FullName, u.PasswordHash, mapStringNull(u.PrimaryRoleID), departments,
		u.IsActive, mapOptionalTime(u.LastLogin), mapOptionalTime(u.PasswordChangedAt), now, now,
	)
	if err != nil {
		return mapConflict(err)
	}
	return r.insertRoles(ctx, u.ID, u.RoleIDs)
}

func (r *usersRepo) insertRoles(ctx context.Context, userID string, roleIDs []string) error {
	for i, roleID := range roleIDs {
		_, err := r.q.ExecContext(ctx,
			`INSERT INTO user_roles (user_id, role_id, position) VALUES (?, ?, ?)
			ON CONFLICT (user_id, role_id) DO NOTHING`,
			userID, roleID, i,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *usersRepo) SetUserRoles(ctx context.Context, userID string, roleIDs []string, primaryRoleID string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET primary_role_id = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(primaryRoleID), toMillis(time.Now()), userID,
	)
	if err := requireAffected(res, err); err != nil {
		return err
	}

	if _, err := r.q.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = ?`, userID); err != nil {
		return err
	}
	return r.insertRoles(ctx, userID, roleIDs)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string, changedAt time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, password_changed_at = ?, updated_at = ? WHERE id = ?`,
		hash, toMillis(changedAt), toMillis(time.Now()), userID,
	)
	return requireAffected(res, err)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`, toMillis(at), userID)
	return requireAffected(res, err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
