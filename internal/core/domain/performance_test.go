package domain

import (
	"testing"
	"time"
)

func int64Ptr(v int64) *int64 { return &v }

// TestClassifyPerformance checks the precedence order of the health rules.
func TestClassifyPerformance(t *testing.T) {
	tests := []struct {
		name        string
		status      CampaignStatus
		since       time.Duration
		impressions int64
		spendCents  int64
		leadsCount  int64
		cplCents    *int64
		want        PerformanceStatus
	}{
		{
			name:   "paused wins over everything",
			status: StatusPaused, since: 240 * time.Hour,
			impressions: 10000, spendCents: 9000, leadsCount: 0,
			want: PerfPaused,
		},
		{
			name:   "fresh launch is learning",
			status: StatusActive, since: time.Hour,
			impressions: 10, spendCents: 0, leadsCount: 0,
			want: PerfLearning,
		},
		{
			name:   "low impressions stay learning even when old",
			status: StatusActive, since: 100 * time.Hour,
			impressions: 100, spendCents: 0, leadsCount: 0,
			want: PerfLearning,
		},
		{
			name:   "high cpl underperforms",
			status: StatusActive, since: 100 * time.Hour,
			impressions: 1000, spendCents: 9000, leadsCount: 3, cplCents: int64Ptr(3000),
			want: PerfUnderperforming,
		},
		{
			name:   "spend with zero leads underperforms",
			status: StatusActive, since: 240 * time.Hour,
			impressions: 1000, spendCents: 6000, leadsCount: 0,
			want: PerfUnderperforming,
		},
		{
			name:   "cheap leads are healthy",
			status: StatusActive, since: 100 * time.Hour,
			impressions: 1000, spendCents: 2000, leadsCount: 2, cplCents: int64Ptr(1000),
			want: PerfHealthy,
		},
		{
			name:   "no signal defaults to learning",
			status: StatusActive, since: 100 * time.Hour,
			impressions: 1000, spendCents: 4000, leadsCount: 0,
			want: PerfLearning,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPerformance(tt.status, tt.since, tt.impressions, tt.spendCents, tt.leadsCount, tt.cplCents)
			if got != tt.want {
				t.Fatalf("ClassifyPerformance = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeCPLCents(t *testing.T) {
	if got := ComputeCPLCents(4500, 0); got != nil {
		t.Fatalf("expected nil CPL with zero leads, got %d", *got)
	}
	got := ComputeCPLCents(4500, 3)
	if got == nil || *got != 1500 {
		t.Fatalf("expected 1500, got %v", got)
	}
	// rounds to nearest cent
	got = ComputeCPLCents(100, 3)
	if got == nil || *got != 33 {
		t.Fatalf("expected 33, got %v", got)
	}
}

func TestComputeCTRPct(t *testing.T) {
	if got := ComputeCTRPct(10, 0); got != 0 {
		t.Fatalf("expected 0 with no impressions, got %v", got)
	}
	if got := ComputeCTRPct(37, 1000); got != 3.7 {
		t.Fatalf("expected 3.7, got %v", got)
	}
	if got := ComputeCTRPct(1, 3); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
}
