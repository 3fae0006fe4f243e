package db

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dashboard/internal/core/domain"
)

type seedCampaign struct {
	name     string
	channel  string
	startOff int // days relative to today
	days     int
	budget   float64
}

var seedChannels = []struct {
	name   string
	status domain.ChannelStatus
}{
	{"TV", domain.ChannelActive},
	{"Radio", domain.ChannelActive},
	{"Social Media", domain.ChannelActive},
	{"Search Engine", domain.ChannelPassive},
}

var seedCampaigns = []seedCampaign{
	{"Summer Sale", "TV", -20, 60, 12000},
	{"Back to School", "Social Media", -5, 30, 4500},
	{"Winter Push", "Radio", 30, 45, 3000},
	{"Brand Awareness", "Search Engine", -90, 60, 8000},
	{"Holiday Special", "TV", 10, 20, 15000},
	{"Spring Launch", "Social Media", -1, 14, 2500.50},
}

// Seed inserts demo channels and campaigns. It does nothing when any
// channel already exists, so it is safe to run on every start.
func Seed(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var seeded bool
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM channels)`).Scan(&exists); err != nil {
			return errors.Wrap(err, "check channels")
		}
		if exists {
			return nil
		}

		ids := make(map[string]uuid.UUID, len(seedChannels))
		for _, ch := range seedChannels {
			id := uuid.New()
			if _, err := tx.Exec(ctx, `INSERT INTO channels (id, name, status, created_at, updated_at)
VALUES ($1,$2,$3,now(),now())`, id, ch.name, string(ch.status)); err != nil {
				return errors.Wrapf(err, "insert channel %q", ch.name)
			}
			ids[ch.name] = id
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		batch := &pgx.Batch{}
		for _, c := range seedCampaigns {
			start := today.AddDate(0, 0, c.startOff)
			batch.Queue(`INSERT INTO campaigns
    (id, name, channel_id, start_date, end_date, budget, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now())`,
				uuid.New(), c.name, ids[c.channel], start, start.AddDate(0, 0, c.days), c.budget)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return errors.Wrap(err, "insert campaigns")
		}
		seeded = true
		return nil
	})
	return seeded, err
}
