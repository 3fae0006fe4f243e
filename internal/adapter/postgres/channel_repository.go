package postgres

import (
	"context"
	"errors"

	cerrors "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dashboard/internal/core/domain"
)

// ChannelRepository implements port.ChannelRepository using pgxpool.
type ChannelRepository struct {
	pool *pgxpool.Pool
}

// NewChannelRepository returns a new repository instance.
func NewChannelRepository(pool *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{pool: pool}
}

// List returns every channel ordered by creation time.
func (r *ChannelRepository) List(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, status, created_at, updated_at FROM channels ORDER BY created_at, id`)
	if err != nil {
		return nil, cerrors.Wrap(err, "select channels")
	}
	channels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Channel, error) {
		return scanChannel(row)
	})
	if err != nil {
		return nil, cerrors.Wrap(err, "scan channels")
	}
	return channels, nil
}

// Get returns a channel by id.
func (r *ChannelRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	ch, err := scanChannel(r.pool.QueryRow(ctx, `SELECT id, name, status, created_at, updated_at FROM channels WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, cerrors.Wrap(err, "select channel")
	}
	return &ch, nil
}

// Create inserts a channel and fills in its id and timestamps.
func (r *ChannelRepository) Create(ctx context.Context, ch *domain.Channel) error {
	ch.ID = uuid.New()
	if ch.Status == "" {
		ch.Status = domain.ChannelActive
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO channels (id, name, status, created_at, updated_at)
VALUES ($1,$2,$3,now(),now()) RETURNING created_at, updated_at`,
		ch.ID, ch.Name, string(ch.Status)).Scan(&ch.CreatedAt, &ch.UpdatedAt)
	return cerrors.Wrap(err, "insert channel")
}

// Update applies the non-nil fields of patch.
func (r *ChannelRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ChannelPatch) (*domain.Channel, error) {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	ch, err := scanChannel(r.pool.QueryRow(ctx, `UPDATE channels SET
    name = COALESCE($2::text, name),
    status = COALESCE($3::text, status),
    updated_at = now()
WHERE id = $1
RETURNING id, name, status, created_at, updated_at`, id, patch.Name, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, cerrors.Wrap(err, "update channel")
	}
	return &ch, nil
}

// Delete removes a channel. Campaigns referencing it are left untouched.
func (r *ChannelRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	if err != nil {
		return false, cerrors.Wrap(err, "delete channel")
	}
	return tag.RowsAffected() > 0, nil
}

func scanChannel(row rowScanner) (domain.Channel, error) {
	var (
		ch     domain.Channel
		status string
	)
	err := row.Scan(&ch.ID, &ch.Name, &status, &ch.CreatedAt, &ch.UpdatedAt)
	ch.Status = domain.ChannelStatus(status)
	return ch, err
}
