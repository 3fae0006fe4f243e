package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-dashboard/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign persistence. Reads
// resolve the referenced channel inline. Get, Update and Delete report a
// missing campaign with a nil result (or false) and a nil error.
type CampaignRepository interface {
	// List returns one page of campaigns matching q together with the
	// number of campaigns matching q.Filter regardless of pagination.
	List(ctx context.Context, q CampaignQuery) ([]domain.Campaign, int64, error)
	// Get returns a campaign by id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// Create stores c, assigning ID and timestamps.
	Create(ctx context.Context, c *domain.Campaign) error
	// Update applies patch and returns the updated campaign.
	Update(ctx context.Context, id uuid.UUID, patch domain.CampaignPatch) (*domain.Campaign, error)
	// Delete removes a campaign and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CampaignFilter restricts a listing to campaigns whose name matches
// NamePattern or whose channel is one of ChannelIDs. NamePattern is a
// case-insensitive regular expression with metacharacters already escaped.
type CampaignFilter struct {
	NamePattern string
	ChannelIDs  []uuid.UUID
}

// CampaignQuery is a fully validated listing request handed to storage.
// A nil Filter matches every campaign.
type CampaignQuery struct {
	Filter *CampaignFilter
	Offset int
	Limit  int
	Sort   domain.SortField
	Order  domain.SortOrder
}
