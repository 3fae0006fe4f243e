package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

var budgetTooLarge = fmt.Sprintf("Budget must be less than %.0f.", domain.MaxBudget)

// CampaignUseCase provides campaign listing and management. It orchestrates
// the campaign repository, the channel repository (for reference checks) and
// the channel lookup cache (for channel-name filters).
type CampaignUseCase struct {
	repo     port.CampaignRepository
	channels port.ChannelRepository
	lookup   port.ChannelLookup

	// now is the reference time for spend calculation.
	now func() time.Time
}

// NewCampaignUseCase creates a new usecase with the provided dependencies.
func NewCampaignUseCase(repo port.CampaignRepository, channels port.ChannelRepository, lookup port.ChannelLookup) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, channels: channels, lookup: lookup, now: time.Now}
}

// ListCampaigns returns one page of campaigns. A non-blank filter matches
// campaigns whose own name contains it, or whose channel's name does,
// ignoring case. Each campaign carries its spend as of the call.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, p port.ListCampaignsParams) (*port.CampaignPage, error) {
	if p.Page < 1 || p.Limit < 1 {
		return nil, port.NewValidationError("Page and limit must be positive integers.")
	}
	if p.Limit > port.MaxLimit {
		return nil, port.NewValidationError(fmt.Sprintf("Limit must not exceed %d.", port.MaxLimit))
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return nil, port.NewValidationError("Page is out of range.")
	}
	if !utf8.ValidString(p.Filter) || strings.ContainsRune(p.Filter, 0) {
		return nil, port.NewValidationError("Filter must be valid text.")
	}
	if !p.Sort.Valid() {
		return nil, port.NewValidationError("Invalid sort field")
	}
	if !p.Order.Valid() {
		return nil, port.NewValidationError("Invalid sort order")
	}

	q := port.CampaignQuery{
		Offset: (p.Page - 1) * p.Limit,
		Limit:  p.Limit,
		Sort:   p.Sort,
		Order:  p.Order,
	}
	if text := strings.TrimSpace(p.Filter); text != "" {
		filter, err := u.campaignFilter(ctx, text)
		if err != nil {
			return nil, err
		}
		q.Filter = filter
	}

	campaigns, total, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	now := u.now()
	return &port.CampaignPage{
		Campaigns: lo.Map(campaigns, func(c domain.Campaign, _ int) domain.Campaign {
			return c.WithSpend(now)
		}),
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
	}, nil
}

// campaignFilter escapes text into a literal pattern and resolves the
// channels whose name matches it.
func (u *CampaignUseCase) campaignFilter(ctx context.Context, text string) (*port.CampaignFilter, error) {
	pattern := regexp.QuoteMeta(text)
	matcher := regexp.MustCompile("(?i)" + pattern)

	channels, err := u.lookup.Channels(ctx)
	if err != nil {
		return nil, err
	}
	ids := lo.FilterMap(channels, func(ch domain.Channel, _ int) (uuid.UUID, bool) {
		return ch.ID, matcher.MatchString(ch.Name)
	})
	return &port.CampaignFilter{NamePattern: pattern, ChannelIDs: ids}, nil
}

// GetCampaign returns a campaign by id with its channel and spend.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.NewNotFoundError("Campaign not found")
	}
	out := c.WithSpend(u.now())
	return &out, nil
}

// CreateCampaign validates in, checks that the channel exists and stores the
// campaign. Nothing is written when validation fails.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.ChannelID == uuid.Nil || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, port.NewValidationError("All fields are required.")
	}
	budget := domain.RoundBudget(in.Budget)
	if budget <= 0 {
		return nil, port.NewValidationError("Budget must be a positive number.")
	}
	if budget >= domain.MaxBudget {
		return nil, port.NewValidationError(budgetTooLarge)
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, port.NewValidationError("Start date must be before end date.")
	}

	ch, err := u.requireChannel(ctx, in.ChannelID)
	if err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		Name:      name,
		ChannelID: in.ChannelID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Budget:    budget,
	}
	if err = u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Channel = ch
	out := c.WithSpend(u.now())
	return &out, nil
}

// UpdateCampaign applies a partial update. The date order is only checked
// when both dates are part of the patch; changing one date alone is not
// compared against the stored other one.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id uuid.UUID, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, port.NewValidationError("Campaign name cannot be empty.")
		}
		patch.Name = &name
	}
	if patch.Budget != nil {
		budget := domain.RoundBudget(*patch.Budget)
		if budget < 0 {
			return nil, port.NewValidationError("Budget must not be negative.")
		}
		if budget >= domain.MaxBudget {
			return nil, port.NewValidationError(budgetTooLarge)
		}
		patch.Budget = &budget
	}
	if patch.StartDate != nil && patch.EndDate != nil && !patch.StartDate.Before(*patch.EndDate) {
		return nil, port.NewValidationError("Start date must be before end date.")
	}
	if patch.ChannelID != nil {
		if _, err := u.requireChannel(ctx, *patch.ChannelID); err != nil {
			return nil, err
		}
	}

	c, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.NewNotFoundError("Campaign not found")
	}
	out := c.WithSpend(u.now())
	return &out, nil
}

// DeleteCampaign removes a campaign.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return port.NewNotFoundError("Campaign not found")
	}
	return nil
}

func (u *CampaignUseCase) requireChannel(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	ch, err := u.channels.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, port.NewValidationError("The specified channel does not exist")
	}
	return ch, nil
}
