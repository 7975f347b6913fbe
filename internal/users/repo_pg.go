package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo is the postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

const userColumns = `id, username, email, password_hash, uuid, role, is_locked, created_on, last_login_on`

func (r *PGRepo) Create(ctx context.Context, user User) (User, error) {
	const query = `
INSERT INTO users (username, email, password_hash, uuid, role, is_locked, created_on)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	err := r.DB.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.UUID,
		user.Role,
		user.IsLocked,
		user.CreatedOn,
	).Scan(&user.ID)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, ErrDuplicateEmail
		}
		return User{}, err
	}
	return user, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) ListAll(ctx context.Context) ([]User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.queryMany(ctx, query)
}

func (r *PGRepo) ListByRole(ctx context.Context, role string) ([]User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id`
	return r.queryMany(ctx, query, role)
}

func (r *PGRepo) Update(ctx context.Context, user User) error {
	const query = `
UPDATE users
SET username = $2, email = $3, password_hash = $4, role = $5, is_locked = $6, last_login_on = $7
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsLocked,
		user.LastLoginOn,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (User, error) {
	var user User
	var lastLogin sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.UUID,
		&user.Role,
		&user.IsLocked,
		&user.CreatedOn,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLoginOn = &t
	}
	return user, nil
}

func (r *PGRepo) queryMany(ctx context.Context, query string, args ...any) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		user, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, rows.Err()
}
