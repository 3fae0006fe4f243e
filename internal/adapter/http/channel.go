package httpadapter

import (
	"net/http"

	"github.com/samber/lo"

	"campaign-dashboard/internal/core/domain"
)

const invalidChannelID = "Invalid channel ID format"

// handleListChannels serves GET /api/channels.
func (h *Handler) handleListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channels.ListChannels(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, lo.Map(channels, func(c domain.Channel, _ int) channelResponse {
		return newChannelResponse(c)
	}))
}

func (h *Handler) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, invalidChannelID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ch, err := h.channels.GetChannel(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newChannelResponse(*ch))
}

func (h *Handler) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req createChannelRequest
	if err := h.bind(w, r, &req, "Name and status are required"); err != nil {
		h.writeError(w, r, err)
		return
	}
	ch, err := h.channels.CreateChannel(r.Context(), req.Name, domain.ChannelStatus(req.Status))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newChannelResponse(*ch))
}

func (h *Handler) handleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, invalidChannelID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateChannelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ch, err := h.channels.UpdateChannel(r.Context(), id, req.patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newChannelResponse(*ch))
}

func (h *Handler) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, invalidChannelID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.channels.DeleteChannel(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Channel deleted successfully"})
}
