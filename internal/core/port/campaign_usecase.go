package port

import (
	"context"
	"time"

	"leadlaunch/internal/core/domain"
)

// CampaignUseCase defines the orchestration operations exposed over HTTP.
// This is the primary port into the application domain. Every method returns
// a *domain.APIError (as error) on failure so the HTTP adapter can map the
// code to a status without string matching.
type CampaignUseCase interface {
	// Launch runs the full remote object-creation sequence for a campaign
	// and persists the resulting identifiers. On a step failure it
	// compensates by deleting the objects Meta will not cascade away and
	// reports which stage failed.
	Launch(ctx context.Context, req LaunchReq) (*LaunchResp, error)

	// SetStatus pauses or resumes a previously launched campaign by
	// flipping its remote status and reconciling the local record.
	SetStatus(ctx context.Context, req StatusReq) (*StatusResp, error)

	// Performance pulls lifetime insight metrics, derives the health
	// classification and persists the snapshot as a detached best-effort
	// write.
	Performance(ctx context.Context, req PerformanceReq) (*PerformanceResp, error)

	// Conversion reports a lead-quality signal back through the Conversions
	// API, degrading gracefully when no pixel or token is configured.
	Conversion(ctx context.Context, req ConversionReq) (*ConversionResp, error)
}

// LaunchReq carries the launch parameters. CampaignID is advisory: when it
// resolves to no draft the launch proceeds with system defaults, so the
// endpoint stays usable for ad-hoc launches.
type LaunchReq struct {
	CampaignID       string
	OwnerKeyID       string
	AccessToken      string
	AdAccountID      string
	PageID           string
	VariantIndex     *int
	DailyBudgetCents *int64
	RadiusKm         *float64
}

// LaunchResp is the successful launch output: the four remote identifiers,
// the resolved budget and the launch timestamp.
type LaunchResp struct {
	ID               string
	Status           domain.CampaignStatus
	MetaCampaignID   string
	MetaAdSetID      string
	MetaAdID         string
	MetaLeadFormID   string
	DailyBudgetCents int64
	LaunchedAt       time.Time
}

// StatusReq asks for a pause or resume. Action is "pause" or "resume".
type StatusReq struct {
	CampaignID  string
	OwnerKeyID  string
	Action      string
	AccessToken string // optional request-level override
}

// StatusResp reports the reconciled status after a pause/resume.
type StatusResp struct {
	CampaignID     string
	Status         domain.CampaignStatus
	MetaCampaignID string
}

// PerformanceReq asks for a metrics sync of one campaign.
type PerformanceReq struct {
	CampaignID  string
	OwnerKeyID  string
	AccessToken string // optional request-level override
}

// PerformanceResp is the synced snapshot plus its classification.
type PerformanceResp struct {
	CampaignID        string
	Status            domain.CampaignStatus
	PerformanceStatus domain.PerformanceStatus
	Metrics           domain.PerformanceSnapshot
	HoursSinceLaunch  float64
	LastSyncedAt      time.Time
}

// ConversionUserData carries caller-supplied matching fields that override
// what is stored on the lead.
type ConversionUserData struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// ConversionReq reports one lead's quality.
type ConversionReq struct {
	LeadID      string
	OwnerKeyID  string
	Quality     domain.LeadQuality
	AccessToken string // optional request-level override
	UserData    *ConversionUserData
}

// ConversionResp reports whether the signal reached the Conversions API.
// CAPISent is false when no pixel or token was available; the call still
// succeeds because the quality signal is recorded locally.
type ConversionResp struct {
	Success        bool
	CAPISent       bool
	EventsReceived int
	Quality        domain.LeadQuality
	LeadID         string
}
