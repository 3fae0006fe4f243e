package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-dashboard/internal/config/configs"
	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
	"campaign-dashboard/internal/core/port/mocks"
)

const testToken = "valid-token"

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type testServer struct {
	campaigns *mocks.MockCampaignUseCase
	channels  *mocks.MockChannelUseCase
	auth      *mocks.MockAuthUseCase
	handler   http.Handler
	pingErr   error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		campaigns: mocks.NewMockCampaignUseCase(t),
		channels:  mocks.NewMockChannelUseCase(t),
		auth:      mocks.NewMockAuthUseCase(t),
	}
	h := NewHandler(Deps{
		Campaigns: s.campaigns,
		Channels:  s.channels,
		Auth:      s.auth,
		Health:    pingFunc(func(context.Context) error { return s.pingErr }),
		CORS:      configs.CORS{Origins: []string{"http://localhost:3000"}, AllowCredentials: true},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.handler = h.Router()
	return s
}

// authorized lets testToken through the bearer middleware.
func (s *testServer) authorized() {
	s.auth.EXPECT().
		Authenticate(mock.Anything, testToken).
		Return(port.TokenClaims{UserID: "u1", Email: "a@b.c"}, nil)
}

func (s *testServer) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	return decodeBody[messageResponse](t, rec).Message
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	s.pingErr = errors.New("connection refused")
	rec = s.do(http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().
			Authenticate(mock.Anything, "").
			Return(port.TokenClaims{}, port.NewUnauthenticatedError("Please authenticate"))

		rec := s.do(http.MethodGet, "/api/campaigns", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Please authenticate", messageOf(t, rec))
	})

	t.Run("bad token", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().
			Authenticate(mock.Anything, "forged").
			Return(port.TokenClaims{}, port.NewUnauthenticatedError("Please authenticate"))

		req := httptest.NewRequest(http.MethodGet, "/api/channels", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListCampaigns(t *testing.T) {
	s := newTestServer(t)
	s.authorized()

	tv := domain.Channel{ID: uuid.New(), Name: "TV", Status: domain.ChannelActive}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	page := &port.CampaignPage{
		Campaigns: []domain.Campaign{
			{ID: uuid.New(), Name: "Summer Sale", ChannelID: tv.ID, Channel: &tv, StartDate: start, EndDate: start.AddDate(0, 1, 0), Budget: 1000, Spent: 250},
			{ID: uuid.New(), Name: "Orphan", ChannelID: uuid.New(), StartDate: start, EndDate: start.AddDate(0, 1, 0), Budget: 10},
		},
		Page:  2,
		Limit: 5,
		Total: 7,
	}
	s.campaigns.EXPECT().
		ListCampaigns(mock.Anything, port.ListCampaignsParams{
			Page:   2,
			Limit:  5,
			Filter: "tv",
			Sort:   domain.SortByBudget,
			Order:  domain.SortDesc,
		}).
		Return(page, nil)

	rec := s.do(http.MethodGet, "/api/campaigns?page=2&limit=5&filter=tv&sortField=budget&sortOrder=desc", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Campaigns []map[string]any `json:"campaigns"`
		Page      int              `json:"page"`
		Limit     int              `json:"limit"`
		Total     int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 5, body.Limit)
	assert.Equal(t, int64(7), body.Total)
	require.Len(t, body.Campaigns, 2)
	assert.Equal(t, "Summer Sale", body.Campaigns[0]["name"])
	assert.InDelta(t, 250.0, body.Campaigns[0]["spent"], 0.001)
	assert.Equal(t, "TV", body.Campaigns[0]["channel"].(map[string]any)["name"])
	assert.Nil(t, body.Campaigns[1]["channel"])
}

func TestListCampaignsDefaults(t *testing.T) {
	s := newTestServer(t)
	s.authorized()
	s.campaigns.EXPECT().
		ListCampaigns(mock.Anything, port.ListCampaignsParams{
			Page:  port.DefaultPage,
			Limit: port.DefaultLimit,
			Sort:  domain.DefaultSortField,
			Order: domain.SortAsc,
		}).
		Return(&port.CampaignPage{Page: 1, Limit: 10}, nil)

	rec := s.do(http.MethodGet, "/api/campaigns", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaigns":[],"page":1,"limit":10,"total":0}`, rec.Body.String())
}

func TestListCampaignsRejectsBadParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
		msg   string
	}{
		{"unknown sort field", "sortField=__proto__", "Invalid sort field"},
		{"sort field case", "sortField=Budget", "Invalid sort field"},
		{"unknown order", "sortOrder=sideways", "Invalid sort order"},
		{"zero page", "page=0", "Page and limit must be positive integers."},
		{"negative limit", "limit=-3", "Page and limit must be positive integers."},
		{"non numeric page", "page=two", "Page and limit must be positive integers."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			s.authorized()

			rec := s.do(http.MethodGet, "/api/campaigns?"+tc.query, "", true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.msg, messageOf(t, rec))
			s.campaigns.AssertNotCalled(t, "ListCampaigns", mock.Anything, mock.Anything)
		})
	}
}

func TestGetCampaign(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodGet, "/api/campaigns/not-a-uuid", "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid campaign ID format", messageOf(t, rec))
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()
		id := uuid.New()
		s.campaigns.EXPECT().
			GetCampaign(mock.Anything, id).
			Return(nil, port.NewNotFoundError("Campaign not found"))

		rec := s.do(http.MethodGet, "/api/campaigns/"+id.String(), "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Campaign not found", messageOf(t, rec))
	})

	t.Run("storage failure is not leaked", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()
		id := uuid.New()
		s.campaigns.EXPECT().
			GetCampaign(mock.Anything, id).
			Return(nil, errors.New("pq: relation campaigns does not exist"))

		rec := s.do(http.MethodGet, "/api/campaigns/"+id.String(), "", true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", messageOf(t, rec))
	})
}

func TestCreateCampaign(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodPost, "/api/campaigns", `{"name":"Promo","budget":100}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "All fields are required.", messageOf(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodPost, "/api/campaigns", `{"name":`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		chID := uuid.New()
		in := port.CreateCampaignInput{
			Name:      "Promo",
			ChannelID: chID,
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC),
			Budget:    500,
		}
		s.campaigns.EXPECT().
			CreateCampaign(mock.Anything, in).
			Return(&domain.Campaign{
				ID:        uuid.New(),
				Name:      in.Name,
				ChannelID: chID,
				Channel:   &domain.Channel{ID: chID, Name: "Radio", Status: domain.ChannelActive},
				StartDate: in.StartDate,
				EndDate:   in.EndDate,
				Budget:    in.Budget,
			}, nil)

		body := `{"name":"Promo","channel":"` + chID.String() + `","startDate":"2024-03-01","endDate":"2024-03-31T12:00:00Z","budget":500}`
		rec := s.do(http.MethodPost, "/api/campaigns", body, true)
		require.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeBody[campaignResponse](t, rec)
		assert.Equal(t, "Promo", resp.Name)
		require.NotNil(t, resp.Channel)
		assert.Equal(t, "Radio", resp.Channel.Name)
	})

	t.Run("channel is not an id", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		body := `{"name":"Promo","channel":"radio","startDate":"2024-03-01","endDate":"2024-03-31","budget":500}`
		rec := s.do(http.MethodPost, "/api/campaigns", body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The specified channel does not exist", messageOf(t, rec))
	})
}

func TestUpdateCampaign(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		id := uuid.New()
		s.campaigns.EXPECT().
			UpdateCampaign(mock.Anything, id, mock.MatchedBy(func(p domain.CampaignPatch) bool {
				return p.Name == nil && p.ChannelID == nil && p.StartDate == nil &&
					p.Budget != nil && *p.Budget == 750 &&
					p.EndDate != nil && p.EndDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
			})).
			Return(&domain.Campaign{ID: id, Name: "Promo", Budget: 750}, nil)

		rec := s.do(http.MethodPut, "/api/campaigns/"+id.String(), `{"budget":750,"endDate":"2024-06-01"}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 750.0, decodeBody[campaignResponse](t, rec).Budget, 0.001)
	})

	t.Run("negative budget", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodPut, "/api/campaigns/"+uuid.NewString(), `{"budget":-1}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Budget must not be negative.", messageOf(t, rec))
	})

	t.Run("bad date", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodPut, "/api/campaigns/"+uuid.NewString(), `{"startDate":"yesterday"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteCampaign(t *testing.T) {
	s := newTestServer(t)
	s.authorized()

	id := uuid.New()
	s.campaigns.EXPECT().DeleteCampaign(mock.Anything, id).Return(nil).Once()
	missing := uuid.New()
	s.campaigns.EXPECT().DeleteCampaign(mock.Anything, missing).Return(port.NewNotFoundError("Campaign not found")).Once()

	rec := s.do(http.MethodDelete, "/api/campaigns/"+id.String(), "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Campaign deleted successfully", messageOf(t, rec))

	rec = s.do(http.MethodDelete, "/api/campaigns/"+missing.String(), "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChannels(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()
		s.channels.EXPECT().ListChannels(mock.Anything).Return([]domain.Channel{
			{ID: uuid.New(), Name: "TV", Status: domain.ChannelActive},
			{ID: uuid.New(), Name: "Radio", Status: domain.ChannelPassive},
		}, nil)

		rec := s.do(http.MethodGet, "/api/channels", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[[]channelResponse](t, rec)
		require.Len(t, got, 2)
		assert.Equal(t, "passive", got[1].Status)
	})

	t.Run("create", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()
		s.channels.EXPECT().
			CreateChannel(mock.Anything, "Podcast", domain.ChannelStatus("active")).
			Return(&domain.Channel{ID: uuid.New(), Name: "Podcast", Status: domain.ChannelActive}, nil)

		rec := s.do(http.MethodPost, "/api/channels", `{"name":"Podcast","status":"active"}`, true)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create without status", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodPost, "/api/channels", `{"name":"Podcast"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Name and status are required", messageOf(t, rec))
	})

	t.Run("update", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()
		id := uuid.New()
		s.channels.EXPECT().
			UpdateChannel(mock.Anything, id, mock.MatchedBy(func(p domain.ChannelPatch) bool {
				return p.Name == nil && p.Status != nil && *p.Status == "passive"
			})).
			Return(&domain.Channel{ID: id, Name: "TV", Status: domain.ChannelPassive}, nil)

		rec := s.do(http.MethodPut, "/api/channels/"+id.String(), `{"status":"passive"}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete unknown", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()
		id := uuid.New()
		s.channels.EXPECT().DeleteChannel(mock.Anything, id).Return(port.NewNotFoundError("Channel not found"))

		rec := s.do(http.MethodDelete, "/api/channels/"+id.String(), "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Channel not found", messageOf(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		s := newTestServer(t)
		s.authorized()

		rec := s.do(http.MethodGet, "/api/channels/123", "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid channel ID format", messageOf(t, rec))
	})
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		s := newTestServer(t)
		uid := uuid.New()
		s.auth.EXPECT().
			Register(mock.Anything, "new@example.com", "secret").
			Return(&port.AuthResult{User: domain.User{ID: uid, Email: "new@example.com"}, Token: "tok"}, nil)

		rec := s.do(http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"secret"}`, false)
		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody[authResponse](t, rec)
		assert.Equal(t, uid, resp.User.ID)
		assert.Equal(t, "tok", resp.Token)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("register duplicate", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.EXPECT().
			Register(mock.Anything, "old@example.com", "secret").
			Return(nil, port.NewConflictError("Email already registered"))

		rec := s.do(http.MethodPost, "/api/auth/register", `{"email":"old@example.com","password":"secret"}`, false)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email already registered", messageOf(t, rec))
	})

	t.Run("login missing password", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.c"}`, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email and password are required", messageOf(t, rec))
	})

	t.Run("login bad credentials", func(t *testing.T) {
		s := newTestServer(t)
		msg := "Invalid credentials, please check your email or password"
		s.auth.EXPECT().
			Login(mock.Anything, "a@b.c", "wrong").
			Return(nil, port.NewUnauthenticatedError(msg))

		rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"wrong"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, msg, messageOf(t, rec))
	})
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestDateUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{`"2024-02-29"`, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{`"2024-02-29T10:30:00+02:00"`, time.Date(2024, 2, 29, 8, 30, 0, 0, time.UTC), true},
		{`"29/02/2024"`, time.Time{}, false},
		{`20240229`, time.Time{}, false},
	}
	for _, tc := range cases {
		var d Date
		err := json.Unmarshal([]byte(tc.in), &d)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(d.Time), tc.in)
	}
}
