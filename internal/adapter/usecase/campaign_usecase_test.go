package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
	"campaign-dashboard/internal/core/port/mocks"
)

var fixedNow = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

func newCampaignUseCase(t *testing.T) (*CampaignUseCase, *mocks.MockCampaignRepository, *mocks.MockChannelRepository, *mocks.MockChannelLookup) {
	repo := mocks.NewMockCampaignRepository(t)
	channels := mocks.NewMockChannelRepository(t)
	lookup := mocks.NewMockChannelLookup(t)
	u := NewCampaignUseCase(repo, channels, lookup)
	u.now = func() time.Time { return fixedNow }
	return u, repo, channels, lookup
}

func listParams(filter string) port.ListCampaignsParams {
	return port.ListCampaignsParams{
		Page:   port.DefaultPage,
		Limit:  port.DefaultLimit,
		Filter: filter,
		Sort:   domain.DefaultSortField,
		Order:  domain.SortAsc,
	}
}

// memoryCampaigns is a port.CampaignRepository that evaluates CampaignQuery
// the way the SQL rendering does.
type memoryCampaigns struct {
	port.CampaignRepository
	campaigns []domain.Campaign
	queries   []port.CampaignQuery
}

func (m *memoryCampaigns) List(_ context.Context, q port.CampaignQuery) ([]domain.Campaign, int64, error) {
	m.queries = append(m.queries, q)

	var matched []domain.Campaign
	for _, c := range m.campaigns {
		if q.Filter != nil {
			re := regexp.MustCompile("(?i)" + q.Filter.NamePattern)
			if !re.MatchString(c.Name) && !slices.Contains(q.Filter.ChannelIDs, c.ChannelID) {
				continue
			}
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		less := matched[i].StartDate.Before(matched[j].StartDate)
		if q.Order == domain.SortDesc {
			return matched[j].StartDate.Before(matched[i].StartDate)
		}
		return less
	})

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[q.Offset:]
	if len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

func TestListCampaignsFilterByNameOrChannel(t *testing.T) {
	radio := domain.Channel{ID: uuid.New(), Name: "Radio", Status: domain.ChannelActive}
	tv := domain.Channel{ID: uuid.New(), Name: "TV", Status: domain.ChannelActive}
	store := &memoryCampaigns{campaigns: []domain.Campaign{
		{ID: uuid.New(), Name: "Summer Sale", ChannelID: radio.ID, Channel: &radio,
			StartDate: fixedNow.AddDate(0, 0, -5), EndDate: fixedNow.AddDate(0, 0, 5), Budget: 1000},
		{ID: uuid.New(), Name: "Winter Push", ChannelID: tv.ID, Channel: &tv,
			StartDate: fixedNow.AddDate(0, 0, -2), EndDate: fixedNow.AddDate(0, 1, 0), Budget: 500},
	}}

	lookup := mocks.NewMockChannelLookup(t)
	lookup.EXPECT().Channels(mock.Anything).Return([]domain.Channel{radio, tv}, nil)
	u := NewCampaignUseCase(store, mocks.NewMockChannelRepository(t), lookup)
	u.now = func() time.Time { return fixedNow }

	names := func(p *port.CampaignPage) []string {
		out := make([]string, 0, len(p.Campaigns))
		for _, c := range p.Campaigns {
			out = append(out, c.Name)
		}
		return out
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{filter: "radio", want: []string{"Summer Sale"}},
		{filter: "summer", want: []string{"Summer Sale"}},
		{filter: "  TV ", want: []string{"Winter Push"}},
		{filter: "", want: []string{"Summer Sale", "Winter Push"}},
		{filter: "   ", want: []string{"Summer Sale", "Winter Push"}},
		{filter: "podcast", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.filter), func(t *testing.T) {
			page, err := u.ListCampaigns(context.Background(), listParams(tt.filter))
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(page))
			assert.Equal(t, int64(len(tt.want)), page.Total)
		})
	}

	// Summer Sale: 10-day span, 5 started days at fixedNow.
	page, err := u.ListCampaigns(context.Background(), listParams("summer"))
	require.NoError(t, err)
	assert.Equal(t, 500.0, page.Campaigns[0].Spent)
}

func TestListCampaignsPagination(t *testing.T) {
	store := &memoryCampaigns{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 12; i++ {
		store.campaigns = append(store.campaigns, domain.Campaign{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Campaign %d", i),
			ChannelID: uuid.New(),
			StartDate: start.AddDate(0, 0, i),
			EndDate:   start.AddDate(0, 1, i),
			Budget:    100,
		})
	}
	u := NewCampaignUseCase(store, mocks.NewMockChannelRepository(t), mocks.NewMockChannelLookup(t))

	p := listParams("")
	p.Page, p.Limit = 2, 5
	page, err := u.ListCampaigns(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, int64(12), page.Total)
	require.Len(t, page.Campaigns, 5)
	for i, c := range page.Campaigns {
		assert.Equal(t, fmt.Sprintf("Campaign %d", i+6), c.Name)
	}
	assert.Equal(t, 5, store.queries[0].Offset)
	assert.Nil(t, store.queries[0].Filter)
}

func TestListCampaignsEscapesFilter(t *testing.T) {
	u, repo, _, lookup := newCampaignUseCase(t)
	literal := domain.Channel{ID: uuid.New(), Name: "A.B (test)"}
	other := domain.Channel{ID: uuid.New(), Name: "AxB test"}
	lookup.EXPECT().Channels(mock.Anything).Return([]domain.Channel{literal, other}, nil).Once()

	repo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(q port.CampaignQuery) bool {
			return q.Filter != nil &&
				q.Filter.NamePattern == `a\.b \(test\)` &&
				slices.Equal(q.Filter.ChannelIDs, []uuid.UUID{literal.ID})
		})).
		Return(nil, int64(0), nil).
		Once()

	page, err := u.ListCampaigns(context.Background(), listParams("a.b (test)"))
	require.NoError(t, err)
	assert.Empty(t, page.Campaigns)
}

func TestListCampaignsPassesSortToStorage(t *testing.T) {
	u, repo, _, _ := newCampaignUseCase(t)
	repo.EXPECT().
		List(mock.Anything, port.CampaignQuery{Offset: 20, Limit: 10, Sort: domain.SortByBudget, Order: domain.SortDesc}).
		Return(nil, int64(0), nil).
		Once()

	_, err := u.ListCampaigns(context.Background(), port.ListCampaignsParams{
		Page: 3, Limit: 10, Sort: domain.SortByBudget, Order: domain.SortDesc,
	})
	require.NoError(t, err)
}

func TestListCampaignsRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		edit func(*port.ListCampaignsParams)
	}{
		{name: "unset sort field", edit: func(p *port.ListCampaignsParams) { p.Sort = 0 }},
		{name: "unknown sort field", edit: func(p *port.ListCampaignsParams) { p.Sort = domain.SortField(77) }},
		{name: "unknown sort order", edit: func(p *port.ListCampaignsParams) { p.Order = "up" }},
		{name: "zero page", edit: func(p *port.ListCampaignsParams) { p.Page = 0 }},
		{name: "negative limit", edit: func(p *port.ListCampaignsParams) { p.Limit = -1 }},
		{name: "limit above maximum", edit: func(p *port.ListCampaignsParams) { p.Limit = port.MaxLimit + 1 }},
		{name: "offset overflows", edit: func(p *port.ListCampaignsParams) { p.Page, p.Limit = 1<<62+1, 4 }},
		{name: "largest page", edit: func(p *port.ListCampaignsParams) { p.Page = math.MaxInt }},
		{name: "invalid utf-8 filter", edit: func(p *port.ListCampaignsParams) { p.Filter = "\xff" }},
		{name: "nul in filter", edit: func(p *port.ListCampaignsParams) { p.Filter = "tv\x00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: storage and cache must not be touched.
			u, _, _, _ := newCampaignUseCase(t)
			p := listParams("radio")
			tt.edit(&p)

			_, err := u.ListCampaigns(context.Background(), p)
			require.Error(t, err)
			assert.True(t, port.IsValidation(err))
		})
	}
}

func TestListCampaignsPropagatesLookupError(t *testing.T) {
	u, _, _, lookup := newCampaignUseCase(t)
	lookup.EXPECT().Channels(mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := u.ListCampaigns(context.Background(), listParams("tv"))
	require.Error(t, err)
	assert.False(t, port.IsValidation(err))
}

func TestGetCampaign(t *testing.T) {
	u, repo, _, _ := newCampaignUseCase(t)
	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(&domain.Campaign{
		ID:        id,
		Name:      "Summer Sale",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		Budget:    1000,
	}, nil).Once()

	c, err := u.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 500.0, c.Spent)

	missing := uuid.New()
	repo.EXPECT().Get(mock.Anything, missing).Return(nil, nil).Once()
	_, err = u.GetCampaign(context.Background(), missing)
	assert.True(t, port.IsNotFound(err))
}

func validInput(channelID uuid.UUID) port.CreateCampaignInput {
	return port.CreateCampaignInput{
		Name:      "Test Campaign",
		ChannelID: channelID,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
		Budget:    1000,
	}
}

func TestCreateCampaign(t *testing.T) {
	u, repo, channels, _ := newCampaignUseCase(t)
	ch := &domain.Channel{ID: uuid.New(), Name: "Social Media", Status: domain.ChannelActive}
	channels.EXPECT().Get(mock.Anything, ch.ID).Return(ch, nil).Once()
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) { c.ID = uuid.New() }).
		Return(nil).
		Once()

	c, err := u.CreateCampaign(context.Background(), validInput(ch.ID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, ch, c.Channel)
	assert.Zero(t, c.Spent, "campaign has not started at fixedNow")
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name string
		edit func(*port.CreateCampaignInput)
		msg  string
	}{
		{name: "missing name", edit: func(in *port.CreateCampaignInput) { in.Name = "  " }, msg: "All fields are required."},
		{name: "missing channel", edit: func(in *port.CreateCampaignInput) { in.ChannelID = uuid.Nil }, msg: "All fields are required."},
		{name: "missing end date", edit: func(in *port.CreateCampaignInput) { in.EndDate = time.Time{} }, msg: "All fields are required."},
		{name: "zero budget", edit: func(in *port.CreateCampaignInput) { in.Budget = 0 }, msg: "Budget must be a positive number."},
		{name: "negative budget", edit: func(in *port.CreateCampaignInput) { in.Budget = -5 }, msg: "Budget must be a positive number."},
		{name: "budget rounds to zero", edit: func(in *port.CreateCampaignInput) { in.Budget = 0.004 }, msg: "Budget must be a positive number."},
		{name: "budget too large", edit: func(in *port.CreateCampaignInput) { in.Budget = 1e12 }, msg: "Budget must be less than 1000000000000."},
		{name: "equal dates", edit: func(in *port.CreateCampaignInput) { in.EndDate = in.StartDate }, msg: "Start date must be before end date."},
		{name: "reversed dates", edit: func(in *port.CreateCampaignInput) { in.StartDate, in.EndDate = in.EndDate, in.StartDate }, msg: "Start date must be before end date."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: nothing may be read or written.
			u, _, _, _ := newCampaignUseCase(t)
			in := validInput(uuid.New())
			tt.edit(&in)

			_, err := u.CreateCampaign(context.Background(), in)
			require.Error(t, err)
			assert.True(t, port.IsValidation(err))
			assert.Equal(t, tt.msg, port.UserMessage(err))
		})
	}
}

func TestCreateCampaignRoundsBudgetToCents(t *testing.T) {
	u, repo, channels, _ := newCampaignUseCase(t)
	ch := &domain.Channel{ID: uuid.New(), Name: "TV"}
	channels.EXPECT().Get(mock.Anything, ch.ID).Return(ch, nil).Once()
	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool { return c.Budget == 100.01 })).
		Return(nil).
		Once()

	in := validInput(ch.ID)
	in.Budget = 100.005
	c, err := u.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 100.01, c.Budget)
}

func TestUpdateCampaignRoundsBudgetToCents(t *testing.T) {
	u, repo, _, _ := newCampaignUseCase(t)
	id := uuid.New()
	repo.EXPECT().
		Update(mock.Anything, id, mock.MatchedBy(func(p domain.CampaignPatch) bool {
			return p.Budget != nil && *p.Budget == 19.99
		})).
		Return(&domain.Campaign{ID: id, StartDate: fixedNow, EndDate: fixedNow.AddDate(0, 0, 1), Budget: 19.99}, nil).
		Once()

	budget := 19.9899
	_, err := u.UpdateCampaign(context.Background(), id, domain.CampaignPatch{Budget: &budget})
	require.NoError(t, err)
}

func TestCreateCampaignUnknownChannel(t *testing.T) {
	u, _, channels, _ := newCampaignUseCase(t)
	in := validInput(uuid.New())
	channels.EXPECT().Get(mock.Anything, in.ChannelID).Return(nil, nil).Once()

	_, err := u.CreateCampaign(context.Background(), in)
	require.Error(t, err)
	assert.True(t, port.IsValidation(err))
	assert.Equal(t, "The specified channel does not exist", port.UserMessage(err))
}

func TestUpdateCampaign(t *testing.T) {
	u, repo, _, _ := newCampaignUseCase(t)
	id := uuid.New()
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	name := "  Renamed "
	repo.EXPECT().
		Update(mock.Anything, id, mock.MatchedBy(func(p domain.CampaignPatch) bool {
			return p.Name != nil && *p.Name == "Renamed" && p.EndDate != nil && p.StartDate == nil
		})).
		Return(&domain.Campaign{ID: id, Name: "Renamed", StartDate: fixedNow.AddDate(0, 0, -1), EndDate: end, Budget: 10}, nil).
		Once()

	// A single date is not compared against the stored one.
	c, err := u.UpdateCampaign(context.Background(), id, domain.CampaignPatch{Name: &name, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name)
}

func TestUpdateCampaignValidation(t *testing.T) {
	start := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	empty := ""
	negative := -1.0
	huge := 5e12

	for name, patch := range map[string]domain.CampaignPatch{
		"reversed dates":  {StartDate: &start, EndDate: &end},
		"equal dates":     {StartDate: &start, EndDate: &start},
		"empty name":      {Name: &empty},
		"negative budget": {Budget: &negative},
		"budget too large": {Budget: &huge},
	} {
		t.Run(name, func(t *testing.T) {
			u, _, _, _ := newCampaignUseCase(t)
			_, err := u.UpdateCampaign(context.Background(), uuid.New(), patch)
			assert.True(t, port.IsValidation(err))
		})
	}
}

func TestUpdateCampaignNotFound(t *testing.T) {
	u, repo, channels, _ := newCampaignUseCase(t)
	id := uuid.New()
	chID := uuid.New()
	channels.EXPECT().Get(mock.Anything, chID).Return(&domain.Channel{ID: chID}, nil).Once()
	repo.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, nil).Once()

	_, err := u.UpdateCampaign(context.Background(), id, domain.CampaignPatch{ChannelID: &chID})
	assert.True(t, port.IsNotFound(err))
}

func TestDeleteCampaign(t *testing.T) {
	u, repo, _, _ := newCampaignUseCase(t)
	id := uuid.New()
	repo.EXPECT().Delete(mock.Anything, id).Return(true, nil).Once()
	require.NoError(t, u.DeleteCampaign(context.Background(), id))

	repo.EXPECT().Delete(mock.Anything, mock.Anything).Return(false, nil).Once()
	assert.True(t, port.IsNotFound(u.DeleteCampaign(context.Background(), uuid.New())))

	repo.EXPECT().Delete(mock.Anything, mock.Anything).Return(false, errors.New("db down")).Once()
	err := u.DeleteCampaign(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, port.IsNotFound(err))
}
