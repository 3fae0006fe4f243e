package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"campaign-dashboard/internal/config/configs"
	"campaign-dashboard/internal/core/port"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps groups the use cases and collaborators the handler serves.
type Deps struct {
	Campaigns port.CampaignUseCase
	Channels  port.ChannelUseCase
	Auth      port.AuthUseCase
	Health    Pinger
	CORS      configs.CORS
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Routes are registered on a chi.Router; everything under /api except the
// auth endpoints requires a bearer token.
type Handler struct {
	campaigns port.CampaignUseCase
	channels  port.ChannelUseCase
	auth      port.AuthUseCase
	health    Pinger
	logger    *slog.Logger
	validate  *validator.Validate
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	h := &Handler{
		campaigns: deps.Campaigns,
		channels:  deps.Channels,
		auth:      deps.Auth,
		health:    deps.Health,
		logger:    logger,
		validate:  validator.New(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORS.Origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.handleListCampaigns)
				r.Post("/", h.handleCreateCampaign)
				r.Get("/{id}", h.handleGetCampaign)
				r.Put("/{id}", h.handleUpdateCampaign)
				r.Delete("/{id}", h.handleDeleteCampaign)
			})
			r.Route("/channels", func(r chi.Router) {
				r.Get("/", h.handleListChannels)
				r.Post("/", h.handleCreateChannel)
				r.Get("/{id}", h.handleGetChannel)
				r.Put("/{id}", h.handleUpdateChannel)
				r.Delete("/{id}", h.handleDeleteChannel)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth pings storage with a short timeout.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.health.Ping(ctx); err != nil {
		h.logger.Error("health check failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
