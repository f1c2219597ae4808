package port

import (
	"context"

	"leadlaunch/internal/core/domain"
)

// LeadRepository is the outbound persistence port for leads.
type LeadRepository interface {
	// GetLead returns a lead by ID, or (nil, nil) when it does not exist.
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	// RecordQuality stores the agent-assigned quality signal on the lead.
	// The signal is recorded locally even when remote delivery is skipped.
	RecordQuality(ctx context.Context, id string, quality domain.LeadQuality) error
}
