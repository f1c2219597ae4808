package domain

import "time"

// LiveCampaign is the durable reporting record of a launched campaign. It
// shadows a CampaignDraft after launch and is also the legacy lookup path for
// campaigns that predate the drafting feature, keyed directly by the Meta
// campaign ID. All four Meta identifiers are written together on a fully
// successful launch; a failed launch persists none of them.
type LiveCampaign struct {
	MetaCampaignID    string
	MetaAdSetID       string
	MetaAdID          string
	MetaLeadFormID    string
	BusinessID        *string
	Status            CampaignStatus
	DailyBudgetCents  int64
	RadiusKm          float64
	AdHeadline        string
	AdCopy            string
	AdImageURL        string
	AccessToken       string // stored Meta token, may be empty
	LeadsCount        int64
	SpendCents        int64
	Impressions       int64
	Clicks            int64
	CPLCents          *int64
	PerformanceStatus PerformanceStatus
	LaunchedAt        *time.Time
	LastSyncedAt      *time.Time
	CreatedAt         time.Time
}
