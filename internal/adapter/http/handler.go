package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"leadlaunch/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a CampaignUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Authentication and
// quota enforcement happen upstream; the caller identity arrives as the
// X-API-Key-ID header and the gateway's rate-limit counters are echoed back
// on every response.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key-ID"},
		MaxAge:         300,
	}))
	r.Use(rateLimitEcho)

	r.Get("/healthz", handleHealth)
	r.Route("/campaigns/{id}", func(r chi.Router) {
		r.Post("/launch", h.handleLaunch)
		r.Post("/pause", h.handlePause)
		r.Get("/performance", h.handlePerformance)
		r.Post("/conversions", h.handleConversion)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// ownerKey extracts the caller identity injected by the upstream
// authenticator. Lookups scoped to an empty identity match nothing in the
// primary store, so an unauthenticated request cannot read another tenant's
// drafts.
func ownerKey(r *http.Request) string {
	return r.Header.Get("X-API-Key-ID")
}

// rateLimitEcho copies the gateway's quota counters onto the response.
func rateLimitEcho(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, name := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			if v := r.Header.Get(name); v != "" {
				w.Header().Set(name, v)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
