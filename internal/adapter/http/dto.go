package httpadapter

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

const dateOnly = "2006-01-02"

// Date is a timestamp accepted either as RFC 3339 or as a bare calendar
// date. Bare dates are midnight UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, dateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return errors.Newf("invalid date %q", s)
}

func (d *Date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createCampaignRequest struct {
	Name      string   `json:"name" validate:"required"`
	Channel   string   `json:"channel" validate:"required"`
	StartDate *Date    `json:"startDate" validate:"required"`
	EndDate   *Date    `json:"endDate" validate:"required"`
	Budget    *float64 `json:"budget" validate:"required"`
}

type updateCampaignRequest struct {
	Name      *string  `json:"name"`
	Channel   *string  `json:"channel"`
	StartDate *Date    `json:"startDate"`
	EndDate   *Date    `json:"endDate"`
	Budget    *float64 `json:"budget" validate:"omitempty,gte=0"`
}

type createChannelRequest struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type updateChannelRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

func (r updateCampaignRequest) patch() (domain.CampaignPatch, error) {
	p := domain.CampaignPatch{
		Name:      r.Name,
		StartDate: r.StartDate.ptr(),
		EndDate:   r.EndDate.ptr(),
		Budget:    r.Budget,
	}
	if r.Channel != nil {
		id, err := parseChannelRef(*r.Channel)
		if err != nil {
			return domain.CampaignPatch{}, err
		}
		p.ChannelID = &id
	}
	return p, nil
}

func (r updateChannelRequest) patch() domain.ChannelPatch {
	p := domain.ChannelPatch{Name: r.Name}
	if r.Status != nil {
		st := domain.ChannelStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// parseChannelRef parses a channel id from a request body. An id that
// cannot name any channel is reported like an unknown one.
func parseChannelRef(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, port.NewValidationError("The specified channel does not exist")
	}
	return id, nil
}

type channelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newChannelResponse(c domain.Channel) channelResponse {
	return channelResponse{
		ID:        c.ID,
		Name:      c.Name,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type campaignResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	ChannelID uuid.UUID        `json:"channelId"`
	Channel   *channelResponse `json:"channel"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Budget    float64          `json:"budget"`
	Spent     float64          `json:"spent"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		ChannelID: c.ChannelID,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Budget:    c.Budget,
		Spent:     c.Spent,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Channel != nil {
		ch := newChannelResponse(*c.Channel)
		resp.Channel = &ch
	}
	return resp
}

type campaignListResponse struct {
	Campaigns []campaignResponse `json:"campaigns"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Total     int64              `json:"total"`
}

func newCampaignListResponse(p *port.CampaignPage) campaignListResponse {
	return campaignListResponse{
		Campaigns: lo.Map(p.Campaigns, func(c domain.Campaign, _ int) campaignResponse {
			return newCampaignResponse(c)
		}),
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
	}
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func newAuthResponse(r *port.AuthResult) authResponse {
	return authResponse{
		User:  userResponse{ID: r.User.ID, Email: r.User.Email},
		Token: r.Token,
	}
}
