package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign-dashboard/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed to the HTTP
// adapter. Returned campaigns carry their spend as of the call.
type CampaignUseCase interface {
	// ListCampaigns returns a filtered, sorted page of campaigns. Sort and
	// Order must be valid; an invalid value is rejected with ErrValidation
	// and storage is not queried.
	ListCampaigns(ctx context.Context, p ListCampaignsParams) (*CampaignPage, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, patch domain.CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}

// Pagination defaults applied when the client leaves page or limit unset,
// and the largest page size served.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListCampaignsParams is the listing request as received from the caller.
type ListCampaignsParams struct {
	Page   int
	Limit  int
	Filter string
	Sort   domain.SortField
	Order  domain.SortOrder
}

// CampaignPage is one page of campaigns and the pagination metadata echoed
// back to the client.
type CampaignPage struct {
	Campaigns []domain.Campaign
	Page      int
	Limit     int
	Total     int64
}

// CreateCampaignInput carries the fields of a new campaign. Zero values are
// treated as missing.
type CreateCampaignInput struct {
	Name      string
	ChannelID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Budget    float64
}

// ChannelUseCase defines channel management. Mutations invalidate the
// channel lookup cache when they succeed.
type ChannelUseCase interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	CreateChannel(ctx context.Context, name string, status domain.ChannelStatus) (*domain.Channel, error)
	UpdateChannel(ctx context.Context, id uuid.UUID, patch domain.ChannelPatch) (*domain.Channel, error)
	DeleteChannel(ctx context.Context, id uuid.UUID) error
}

// AuthUseCase registers and authenticates users.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Authenticate verifies a bearer token.
	Authenticate(ctx context.Context, token string) (TokenClaims, error)
}

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	User  domain.User
	Token string
}
