package postgres

import (
	"context"
	"errors"

	cerrors "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

const uniqueViolation = "23505"

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByEmail looks a user up by email, ignoring case.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE lower(email) = lower($1)`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, cerrors.Wrap(err, "select user")
	}
	return &u, nil
}

// Create inserts a user. A duplicate email is reported as a conflict so a
// registration race surfaces the same way as the pre-insert check.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `INSERT INTO users (id, email, password_hash, created_at, updated_at)
VALUES ($1,$2,$3,now(),now()) RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash).Scan(&u.CreatedAt, &u.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.NewConflictError("Email already registered")
	}
	return cerrors.Wrap(err, "insert user")
}
