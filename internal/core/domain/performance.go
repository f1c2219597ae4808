package domain

import (
	"math"
	"time"
)

// PerformanceStatus is the coarse health classification derived from a
// campaign's lifetime insight metrics.
type PerformanceStatus string

const (
	PerfLearning        PerformanceStatus = "learning"
	PerfHealthy         PerformanceStatus = "healthy"
	PerfUnderperforming PerformanceStatus = "underperforming"
	PerfPaused          PerformanceStatus = "paused"
)

// Classification thresholds, in minor currency units and hours.
const (
	learningWindowHours   = 48
	learningImpressionMin = 500
	cplUnderperformCents  = 3000
	spendNoLeadCents      = 5000
)

// PerformanceSnapshot is one synced set of lifetime metrics for a campaign.
type PerformanceSnapshot struct {
	Impressions int64
	Clicks      int64
	SpendCents  int64
	LeadsCount  int64
	CPLCents    *int64
	CTRPct      float64
	Status      PerformanceStatus
	SyncedAt    time.Time
}

// ComputeCPLCents returns the rounded cost per lead, or nil when there are no
// leads to divide by.
func ComputeCPLCents(spendCents, leadsCount int64) *int64 {
	if leadsCount <= 0 {
		return nil
	}
	cpl := int64(math.Round(float64(spendCents) / float64(leadsCount)))
	return &cpl
}

// ComputeCTRPct returns the click-through rate as a percentage rounded to two
// decimal places, or 0 when there are no impressions.
func ComputeCTRPct(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(impressions)*10000) / 100
}

// ClassifyPerformance derives the health classification for a campaign. The
// rules are evaluated in order and the first match wins:
//
//  1. a locally paused campaign is "paused"
//  2. younger than 48 hours or under 500 impressions is "learning"
//  3. CPL at or above $30 is "underperforming"
//  4. over $50 spent with zero leads is "underperforming"
//  5. CPL under $30 with at least one lead is "healthy"
//  6. anything else stays "learning"
//
// since is the elapsed time from launch (or creation, for never-launched
// legacy records) to the evaluation instant.
func ClassifyPerformance(status CampaignStatus, since time.Duration, impressions, spendCents, leadsCount int64, cplCents *int64) PerformanceStatus {
	if status == StatusPaused {
		return PerfPaused
	}
	if since.Hours() < learningWindowHours || impressions < learningImpressionMin {
		return PerfLearning
	}
	if cplCents != nil && *cplCents >= cplUnderperformCents {
		return PerfUnderperforming
	}
	if spendCents > spendNoLeadCents && leadsCount == 0 {
		return PerfUnderperforming
	}
	if cplCents != nil && *cplCents < cplUnderperformCents && leadsCount >= 1 {
		return PerfHealthy
	}
	return PerfLearning
}
