package domain

import "time"

// LeadStatus tracks a lead through the sales pipeline.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadWon       LeadStatus = "won"
	LeadLost      LeadStatus = "lost"
)

// LeadQuality is the binary quality signal an agent assigns to a lead. It is
// reported back to the ads platform through the Conversions API.
type LeadQuality string

const (
	QualityGood LeadQuality = "good"
	QualityBad  LeadQuality = "bad"
)

// Lead is a contact captured from a lead form submission.
type Lead struct {
	ID         string
	CampaignID string // internal campaign/draft ID
	BusinessID *string
	Name       string
	Phone      string
	Email      string
	MetaLeadID string // Meta's own lead ID, used for event deduplication
	Status     LeadStatus
	Quality    *LeadQuality
	CreatedAt  time.Time
}
