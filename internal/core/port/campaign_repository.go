package port

import (
	"context"
	"time"

	"leadlaunch/internal/core/domain"
)

// CampaignSource identifies which backing table resolved a campaign. Writes
// after a resolution are conditional on the source: only the table that
// supplied the match is updated.
type CampaignSource string

const (
	SourceDraft  CampaignSource = "draft"
	SourceLegacy CampaignSource = "legacy"
)

// ResolvedCampaign is the result of the find-first lookup chain. Exactly one
// of Draft and Live is set, matching Source.
type ResolvedCampaign struct {
	Source CampaignSource
	Draft  *domain.CampaignDraft
	Live   *domain.LiveCampaign
}

// MetaCampaignID returns the remote campaign identifier, empty when the
// record was never launched.
func (c *ResolvedCampaign) MetaCampaignID() string {
	if c.Source == SourceDraft {
		return c.Draft.MetaCampaignID
	}
	return c.Live.MetaCampaignID
}

// StoredAccessToken returns the Meta token persisted on the record, if any.
func (c *ResolvedCampaign) StoredAccessToken() string {
	if c.Source == SourceDraft {
		return c.Draft.AccessToken
	}
	return c.Live.AccessToken
}

// Status returns the locally recorded campaign status.
func (c *ResolvedCampaign) Status() domain.CampaignStatus {
	if c.Source == SourceDraft {
		return c.Draft.Status
	}
	return c.Live.Status
}

// BusinessID returns the linked business record ID, if any.
func (c *ResolvedCampaign) BusinessID() *string {
	if c.Source == SourceDraft {
		return c.Draft.BusinessID
	}
	return c.Live.BusinessID
}

// ReferenceTime returns the launch time when known, otherwise the record's
// creation time. It anchors the learning-window classification.
func (c *ResolvedCampaign) ReferenceTime() time.Time {
	if c.Source == SourceDraft {
		if c.Draft.LaunchedAt != nil {
			return *c.Draft.LaunchedAt
		}
		return c.Draft.CreatedAt
	}
	if c.Live.LaunchedAt != nil {
		return *c.Live.LaunchedAt
	}
	return c.Live.CreatedAt
}

// InternalID returns the identifier callers address the campaign by: the
// draft ID for the primary store, the Meta campaign ID for the legacy store.
func (c *ResolvedCampaign) InternalID() string {
	if c.Source == SourceDraft {
		return c.Draft.ID
	}
	return c.Live.MetaCampaignID
}

// LaunchResult is the set of remote identifiers a successful launch persists
// into the owning draft, atomically from this subsystem's point of view.
type LaunchResult struct {
	MetaCampaignID   string
	MetaAdSetID      string
	MetaAdID         string
	MetaLeadFormID   string
	DailyBudgetCents int64
	LaunchedAt       time.Time
}

// CampaignRepository is the outbound persistence port for campaigns. Lookups
// are scoped to the caller's key identity; there are no cross-tenant reads.
// Implementations resolve through a find-first chain: the primary draft store
// by internal ID and owner, then the legacy live table by remote ID.
type CampaignRepository interface {
	// Resolve runs the lookup chain. It returns (nil, nil) when neither
	// table has a matching record.
	Resolve(ctx context.Context, id, ownerKeyID string) (*ResolvedCampaign, error)

	// AcquireLaunchLease attempts a compare-and-swap on the draft's
	// launching flag, granting an exclusive lease for the given duration.
	// It returns false when another launch currently holds the lease.
	AcquireLaunchLease(ctx context.Context, draftID string, expiry time.Duration) (bool, error)
	// ReleaseLaunchLease clears the launching flag. Safe to call on every
	// exit path, including after a failed acquire.
	ReleaseLaunchLease(ctx context.Context, draftID string) error

	// SaveLaunchResult writes the four remote identifiers, flips the draft
	// to active and stamps the launch time.
	SaveLaunchResult(ctx context.Context, draftID string, res LaunchResult) error
	// UpsertLiveCampaign inserts or refreshes the denormalised reporting row.
	UpsertLiveCampaign(ctx context.Context, lc *domain.LiveCampaign) error

	// UpdateStatus flips the local status on whichever table resolved the
	// record.
	UpdateStatus(ctx context.Context, c *ResolvedCampaign, status domain.CampaignStatus) error
	// SavePerformanceSnapshot overwrites the metric fields on whichever
	// table resolved the record.
	SavePerformanceSnapshot(ctx context.Context, c *ResolvedCampaign, snap domain.PerformanceSnapshot) error

	// GetBusiness returns the linked business record, or (nil, nil) when it
	// does not exist.
	GetBusiness(ctx context.Context, id string) (*domain.Business, error)
}
