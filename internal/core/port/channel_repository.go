package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-dashboard/internal/core/domain"
)

// ChannelRepository is the outbound port for channel persistence. A missing
// channel is reported with a nil result (or false) and a nil error.
type ChannelRepository interface {
	List(ctx context.Context) ([]domain.Channel, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	Create(ctx context.Context, ch *domain.Channel) error
	Update(ctx context.Context, id uuid.UUID, patch domain.ChannelPatch) (*domain.Channel, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ChannelLookup serves the full channel list from memory. Invalidate must be
// called after every successful channel mutation.
type ChannelLookup interface {
	// Channels returns every channel as of the last fetch, fetching from
	// storage when nothing is cached. Callers must not modify the slice.
	Channels(ctx context.Context) ([]domain.Channel, error)
	// Invalidate drops the cached list.
	Invalidate()
}
