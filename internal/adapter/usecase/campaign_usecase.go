package usecase

import (
	"log/slog"
	"time"

	"leadlaunch/internal/config/configs"
	"leadlaunch/internal/core/port"
)

// CampaignUseCase implements the orchestration operations over the Graph API
// client and the persistence ports. It holds no per-request state; every
// invocation is independent and concurrency comes from the HTTP server
// running handlers in parallel.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	leads  port.LeadRepository
	graph  port.GraphClient
	meta   configs.Meta
	logger *slog.Logger

	// now is injectable for tests.
	now func() time.Time
}

// NewCampaignUseCase creates the usecase with the provided ports and Meta
// configuration.
func NewCampaignUseCase(repo port.CampaignRepository, leads port.LeadRepository, graph port.GraphClient, meta configs.Meta, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		repo:   repo,
		leads:  leads,
		graph:  graph,
		meta:   meta,
		logger: logger,
		now:    time.Now,
	}
}

// firstNonEmpty returns the first non-empty string, or "".
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
