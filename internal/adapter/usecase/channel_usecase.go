package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

// ChannelUseCase manages channels and keeps the channel lookup cache in step
// with storage: every successful mutation invalidates it, reads never do.
type ChannelUseCase struct {
	repo   port.ChannelRepository
	lookup port.ChannelLookup
}

// NewChannelUseCase creates a new usecase.
func NewChannelUseCase(repo port.ChannelRepository, lookup port.ChannelLookup) *ChannelUseCase {
	return &ChannelUseCase{repo: repo, lookup: lookup}
}

// ListChannels reads every channel straight from storage.
func (u *ChannelUseCase) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	return u.repo.List(ctx)
}

// GetChannel returns a channel by id.
func (u *ChannelUseCase) GetChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	ch, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, port.NewNotFoundError("Channel not found")
	}
	return ch, nil
}

// CreateChannel stores a new channel.
func (u *ChannelUseCase) CreateChannel(ctx context.Context, name string, status domain.ChannelStatus) (*domain.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" || status == "" {
		return nil, port.NewValidationError("Name and status are required")
	}
	st, ok := domain.ParseChannelStatus(string(status))
	if !ok {
		return nil, port.NewValidationError("Invalid status value")
	}

	ch := &domain.Channel{Name: name, Status: st}
	if err := u.repo.Create(ctx, ch); err != nil {
		return nil, err
	}
	u.lookup.Invalidate()
	return ch, nil
}

// UpdateChannel applies a partial update.
func (u *ChannelUseCase) UpdateChannel(ctx context.Context, id uuid.UUID, patch domain.ChannelPatch) (*domain.Channel, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, port.NewValidationError("Channel name cannot be empty")
		}
		patch.Name = &name
	}
	if patch.Status != nil {
		st, ok := domain.ParseChannelStatus(string(*patch.Status))
		if !ok {
			return nil, port.NewValidationError("Invalid status value")
		}
		patch.Status = &st
	}

	ch, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, port.NewNotFoundError("Channel not found")
	}
	u.lookup.Invalidate()
	return ch, nil
}

// DeleteChannel removes a channel. Campaigns that reference it keep the
// dangling reference.
func (u *ChannelUseCase) DeleteChannel(ctx context.Context, id uuid.UUID) error {
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return port.NewNotFoundError("Channel not found")
	}
	u.lookup.Invalidate()
	return nil
}
