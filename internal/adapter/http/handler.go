package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fundscope/internal/core/port"
	"fundscope/internal/observability"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// over a port.CampaignUseCase. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.CampaignUseCase
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   func(context.Context) error
	router  chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetrics records request metrics and serves them on /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithReadiness makes /healthz report 503 while check fails.
func WithReadiness(check func(context.Context) error) Option {
	return func(h *Handler) { h.ready = check }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, h.observe)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Route("/campaigns/{address}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Get("/transactions", h.handleTransactions)
			r.Post("/fund", h.handleFund)
			r.Post("/withdraw", h.handleWithdraw)
			r.Post("/tiers", h.handleAddTier)
			r.Delete("/tiers/{index}", h.handleRemoveTier)
		})
		r.Get("/accounts/{address}/campaigns", h.handleUserCampaigns)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// observe records the count and latency of every request by route pattern.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveRequest(route, r.Method, status, time.Since(start))
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			h.logger.Warn("readiness check failed", slog.Any("error", err))
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
