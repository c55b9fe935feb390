package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nbarth/gatehouse/core"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation; the users table carries a unique index on email.
const uniqueViolation = "23505"

func (a *Adapter) CreateUser(ctx context.Context, user *core.User) error {
	query := `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`

	var id string
	var createdAt, updatedAt time.Time

	err := a.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return core.ErrUserExists
		}
		return err
	}

	user.ID = id
	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	q := `SELECT id, username, email, password_hash, image, created_at, updated_at FROM users WHERE id = $1`

	user := &core.User{}
	var image *string
	err := a.pool.QueryRow(ctx, q, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &image, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	user.Image = image
	return user, nil
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	q := `SELECT id, username, email, password_hash, image, created_at, updated_at FROM users WHERE email = $1`

	user := &core.User{}
	var image *string
	err := a.pool.QueryRow(ctx, q, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &image, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	user.Image = image
	return user, nil
}

func (a *Adapter) UpdateUserImage(ctx context.Context, id, locator string) error {
	q := `UPDATE users SET image = $1, updated_at = now() WHERE id = $2 RETURNING updated_at`

	var updatedAt time.Time
	err := a.pool.QueryRow(ctx, q, locator, id).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrUserNotFound
		}
		return err
	}
	return nil
}
