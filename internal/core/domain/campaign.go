package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. The progression is
// monotonic forward: draft -> active <-> paused -> ended. A campaign never
// returns to draft once launched.
type CampaignStatus string

const (
	StatusDraft  CampaignStatus = "draft"
	StatusActive CampaignStatus = "active"
	StatusPaused CampaignStatus = "paused"
	StatusEnded  CampaignStatus = "ended"
)

// Strategy is the AI-generated plan attached to a draft. It is stored as an
// opaque document; the orchestrator only reads the objective when present.
type Strategy struct {
	Objective            string `json:"objective,omitempty"`
	BudgetRecommendation int64  `json:"budget_recommendation_cents,omitempty"`
	Projections          string `json:"projections,omitempty"`
}

// AdVariant is one authored ad alternative on a draft. The launch request
// picks a variant by index; index 0 is the default.
type AdVariant struct {
	Headline    string `json:"headline"`
	Copy        string `json:"copy"`
	CTA         string `json:"cta"`
	Angle       string `json:"angle,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
	ImageURL    string `json:"image_url,omitempty"` // set once an image is generated for the prompt
}

// CampaignDraft represents a not-yet-launched strategy authored through the
// campaign-creation flow. Budgets are stored in integer minor units (cents).
type CampaignDraft struct {
	ID               string
	OwnerKeyID       string
	Status           CampaignStatus
	URL              string
	BusinessName     string
	BusinessType     string
	BusinessID       *string
	Strategy         Strategy
	Targeting        Targeting
	Variants         []AdVariant
	DailyBudgetCents int64
	Objective        string
	AccessToken      string // stored Meta token, may be empty
	MetaCampaignID   string
	MetaAdSetID      string
	MetaAdID         string
	MetaLeadFormID   string
	LaunchedAt       *time.Time
	CreatedAt        time.Time
}

// Variant returns the ad variant at idx, falling back to the first variant
// and finally to a generic default when the draft carries none.
func (d *CampaignDraft) Variant(idx int) AdVariant {
	if idx >= 0 && idx < len(d.Variants) {
		return d.Variants[idx]
	}
	if len(d.Variants) > 0 {
		return d.Variants[0]
	}
	return AdVariant{
		Headline: d.BusinessName,
		Copy:     "Get in touch with " + d.BusinessName + " today.",
		CTA:      "Learn More",
	}
}
