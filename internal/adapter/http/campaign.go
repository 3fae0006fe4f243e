package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

const invalidCampaignID = "Invalid campaign ID format"

// handleListCampaigns serves GET /api/campaigns. Query parameters are page,
// limit, filter, sortField and sortOrder; absent ones take their defaults.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.campaigns.ListCampaigns(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignListResponse(page))
}

func parseListParams(r *http.Request) (port.ListCampaignsParams, error) {
	q := r.URL.Query()
	p := port.ListCampaignsParams{
		Page:   port.DefaultPage,
		Limit:  port.DefaultLimit,
		Filter: q.Get("filter"),
		Sort:   domain.DefaultSortField,
		Order:  domain.SortAsc,
	}

	var err error
	if p.Page, err = positiveInt(q.Get("page"), port.DefaultPage); err != nil {
		return p, err
	}
	if p.Limit, err = positiveInt(q.Get("limit"), port.DefaultLimit); err != nil {
		return p, err
	}
	if s := strings.TrimSpace(q.Get("sortField")); s != "" {
		f, ok := domain.ParseSortField(s)
		if !ok {
			return p, port.NewValidationError("Invalid sort field")
		}
		p.Sort = f
	}
	if s := strings.TrimSpace(q.Get("sortOrder")); s != "" {
		o, ok := domain.ParseSortOrder(s)
		if !ok {
			return p, port.NewValidationError("Invalid sort order")
		}
		p.Order = o
	}
	return p, nil
}

func positiveInt(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, port.NewValidationError("Page and limit must be positive integers.")
	}
	return n, nil
}

// handleGetCampaign serves GET /api/campaigns/{id}.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, invalidCampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleCreateCampaign serves POST /api/campaigns.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := h.bind(w, r, &req, "All fields are required."); err != nil {
		h.writeError(w, r, err)
		return
	}
	channelID, err := parseChannelRef(req.Channel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	c, err := h.campaigns.CreateCampaign(r.Context(), port.CreateCampaignInput{
		Name:      req.Name,
		ChannelID: channelID,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
		Budget:    *req.Budget,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(*c))
}

// handleUpdateCampaign serves PUT /api/campaigns/{id}. Fields missing from
// the body are left unchanged.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, invalidCampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateCampaignRequest
	if err := h.bind(w, r, &req, "Budget must not be negative."); err != nil {
		h.writeError(w, r, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	c, err := h.campaigns.UpdateCampaign(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleDeleteCampaign serves DELETE /api/campaigns/{id}.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, invalidCampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Campaign deleted successfully"})
}
