package cache

import (
	"context"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

// ChannelCache implements port.ChannelLookup. It holds either nothing or
// the complete channel list as of the last fetch; there is no expiry, only
// explicit invalidation.
//
// Concurrent callers that find the cache empty share one in-flight fetch.
// Every Invalidate starts a new epoch: a fetch that began in an earlier
// epoch still answers its own callers but is not stored.
type ChannelCache struct {
	repo  port.ChannelRepository
	group singleflight.Group

	mu       sync.RWMutex
	channels []domain.Channel
	loaded   bool
	epoch    uint64
}

// NewChannelCache returns an empty cache backed by repo.
func NewChannelCache(repo port.ChannelRepository) *ChannelCache {
	return &ChannelCache{repo: repo}
}

// Channels returns the cached channel list, loading it from the repository
// when the cache is empty. A failed load leaves the cache empty.
func (c *ChannelCache) Channels(ctx context.Context) ([]domain.Channel, error) {
	c.mu.RLock()
	if c.loaded {
		channels := c.channels
		c.mu.RUnlock()
		return channels, nil
	}
	epoch := c.epoch
	c.mu.RUnlock()

	// The shared fetch must outlive the caller that happened to start it.
	fetchCtx := context.WithoutCancel(ctx)
	res := c.group.DoChan(strconv.FormatUint(epoch, 10), func() (interface{}, error) {
		// A fetch for this epoch may have finished and left the group
		// between the read above and this call.
		c.mu.RLock()
		if c.loaded {
			channels := c.channels
			c.mu.RUnlock()
			return channels, nil
		}
		c.mu.RUnlock()

		channels, err := c.repo.List(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.epoch == epoch {
			c.channels, c.loaded = channels, true
		}
		c.mu.Unlock()
		return channels, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-res:
		if r.Err != nil {
			return nil, errors.Wrap(r.Err, "load channels")
		}
		return r.Val.([]domain.Channel), nil
	}
}

// Invalidate drops the cached list. The next Channels call fetches again.
func (c *ChannelCache) Invalidate() {
	c.mu.Lock()
	c.channels, c.loaded = nil, false
	c.epoch++
	c.mu.Unlock()
}

// Warm loads the cache ahead of the first request.
func (c *ChannelCache) Warm(ctx context.Context) error {
	_, err := c.Channels(ctx)
	return err
}
