package postgres

import (
	"context"
	"errors"
	"time"

	cerrors "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. The channel reference is not a foreign key, so a campaign can
// outlive its channel; such campaigns are returned with a nil Channel.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// List runs the page query and the count query concurrently.
func (r *CampaignRepository) List(ctx context.Context, q port.CampaignQuery) ([]domain.Campaign, int64, error) {
	listQuery, listArgs, err := buildCampaignListQuery(q)
	if err != nil {
		return nil, 0, err
	}
	countQuery, countArgs := buildCampaignCountQuery(q.Filter)

	var (
		campaigns []domain.Campaign
		total     int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, listQuery, listArgs...)
		if err != nil {
			return cerrors.Wrap(err, "select campaigns")
		}
		campaigns, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
			return scanCampaign(row)
		})
		return cerrors.Wrap(err, "scan campaigns")
	})
	g.Go(func() error {
		err := r.pool.QueryRow(gctx, countQuery, countArgs...).Scan(&total)
		return cerrors.Wrap(err, "count campaigns")
	})
	if err = g.Wait(); err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT` + campaignColumns + `
        FROM campaigns c
        ` + campaignJoin + `
        WHERE c.id = $1`
	c, err := scanCampaign(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, cerrors.Wrap(err, "select campaign")
	}
	return &c, nil
}

// Create inserts a campaign and fills in its id and timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	c.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (id, name, channel_id, start_date, end_date, budget, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) RETURNING created_at, updated_at`,
		c.ID, c.Name, c.ChannelID, c.StartDate, c.EndDate, c.Budget).Scan(&c.CreatedAt, &c.UpdatedAt)
	return cerrors.Wrap(err, "insert campaign")
}

// Update applies the non-nil fields of patch and returns the stored result.
func (r *CampaignRepository) Update(ctx context.Context, id uuid.UUID, patch domain.CampaignPatch) (*domain.Campaign, error) {
	query := `
        WITH c AS (
            UPDATE campaigns SET
                name = COALESCE($2::text, name),
                channel_id = COALESCE($3::uuid, channel_id),
                start_date = COALESCE($4::timestamptz, start_date),
                end_date = COALESCE($5::timestamptz, end_date),
                budget = COALESCE($6::numeric, budget),
                updated_at = now()
            WHERE id = $1
            RETURNING *
        )
        SELECT` + campaignColumns + `
        FROM c
        ` + campaignJoin
	c, err := scanCampaign(r.pool.QueryRow(ctx, query,
		id, patch.Name, patch.ChannelID, patch.StartDate, patch.EndDate, patch.Budget))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, cerrors.Wrap(err, "update campaign")
	}
	return &c, nil
}

// Delete removes a campaign by id.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, cerrors.Wrap(err, "delete campaign")
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCampaign scans campaignColumns. The channel half of the row is NULL
// when the referenced channel is gone.
func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		chID      uuid.NullUUID
		chName    *string
		chStatus  *string
		chCreated *time.Time
		chUpdated *time.Time
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.ChannelID,
		&c.StartDate,
		&c.EndDate,
		&c.Budget,
		&c.CreatedAt,
		&c.UpdatedAt,
		&chID,
		&chName,
		&chStatus,
		&chCreated,
		&chUpdated,
	)
	if err != nil {
		return c, err
	}
	if chID.Valid {
		c.Channel = &domain.Channel{
			ID:        chID.UUID,
			Name:      *chName,
			Status:    domain.ChannelStatus(*chStatus),
			CreatedAt: *chCreated,
			UpdatedAt: *chUpdated,
		}
	}
	return c, nil
}
