package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
	"leadlaunch/internal/core/port/mocks"
)

func insightsResp(rows ...map[string]any) *port.GraphResponse {
	data := make([]any, len(rows))
	for i, r := range rows {
		data[i] = r
	}
	return &port.GraphResponse{StatusCode: 200, Data: map[string]any{"data": data}}
}

// TestPerformanceClassifies runs the full path: insights parsing, CPL and CTR
// derivation, classification, and the detached snapshot write.
func TestPerformanceClassifies(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	launchedAt := now.Add(-240 * time.Hour)
	resolved := &port.ResolvedCampaign{
		Source: port.SourceLegacy,
		Live: &domain.LiveCampaign{
			MetaCampaignID: "mc1",
			AccessToken:    "stored-tok",
			Status:         domain.StatusActive,
			LaunchedAt:     &launchedAt,
		},
	}
	repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()
	graph.EXPECT().
		Get(mock.Anything, "mc1/insights", mock.Anything, "stored-tok").
		Return(insightsResp(map[string]any{
			"impressions": "1000",
			"clicks":      "50",
			"spend":       "60.00",
			"actions": []any{
				map[string]any{"action_type": "link_click", "value": "40"},
				map[string]any{"action_type": "lead", "value": "2"},
			},
		}), nil).Once()

	saved := make(chan domain.PerformanceSnapshot, 1)
	repo.EXPECT().
		SavePerformanceSnapshot(mock.Anything, resolved, mock.Anything).
		Run(func(_ context.Context, _ *port.ResolvedCampaign, snap domain.PerformanceSnapshot) {
			saved <- snap
		}).
		Return(nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	svc.now = func() time.Time { return now }

	resp, err := svc.Performance(context.Background(), port.PerformanceReq{
		CampaignID: "mc1", OwnerKeyID: "key1",
	})
	if err != nil {
		t.Fatalf("Performance error: %v", err)
	}
	if resp.Metrics.Impressions != 1000 || resp.Metrics.Clicks != 50 {
		t.Fatalf("unexpected metrics: %+v", resp.Metrics)
	}
	if resp.Metrics.SpendCents != 6000 {
		t.Fatalf("expected spend 6000 cents, got %d", resp.Metrics.SpendCents)
	}
	if resp.Metrics.LeadsCount != 2 {
		t.Fatalf("expected 2 leads, got %d", resp.Metrics.LeadsCount)
	}
	if resp.Metrics.CPLCents == nil || *resp.Metrics.CPLCents != 3000 {
		t.Fatalf("expected CPL 3000, got %v", resp.Metrics.CPLCents)
	}
	if resp.Metrics.CTRPct != 5.0 {
		t.Fatalf("expected CTR 5.0, got %v", resp.Metrics.CTRPct)
	}
	if resp.PerformanceStatus != domain.PerfUnderperforming {
		t.Fatalf("expected underperforming, got %s", resp.PerformanceStatus)
	}
	if resp.HoursSinceLaunch != 240 {
		t.Fatalf("expected 240 hours since launch, got %v", resp.HoursSinceLaunch)
	}

	select {
	case snap := <-saved:
		if snap.Status != domain.PerfUnderperforming {
			t.Fatalf("snapshot status %s", snap.Status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot write never happened")
	}
}

// TestPerformanceNoDelivery covers the empty insights data array Meta returns
// for a campaign with no delivery yet.
func TestPerformanceNoDelivery(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	createdAt := time.Now().Add(-time.Hour)
	resolved := &port.ResolvedCampaign{
		Source: port.SourceLegacy,
		Live: &domain.LiveCampaign{
			MetaCampaignID: "mc1",
			AccessToken:    "stored-tok",
			Status:         domain.StatusActive,
			CreatedAt:      createdAt,
		},
	}
	repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()
	graph.EXPECT().
		Get(mock.Anything, "mc1/insights", mock.Anything, "stored-tok").
		Return(insightsResp(), nil).Once()

	saved := make(chan struct{})
	repo.EXPECT().
		SavePerformanceSnapshot(mock.Anything, resolved, mock.Anything).
		Run(func(_ context.Context, _ *port.ResolvedCampaign, _ domain.PerformanceSnapshot) {
			close(saved)
		}).
		Return(nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	resp, err := svc.Performance(context.Background(), port.PerformanceReq{
		CampaignID: "mc1", OwnerKeyID: "key1",
	})
	if err != nil {
		t.Fatalf("Performance error: %v", err)
	}
	if resp.Metrics.Impressions != 0 || resp.Metrics.SpendCents != 0 || resp.Metrics.CPLCents != nil {
		t.Fatalf("expected zeroed metrics, got %+v", resp.Metrics)
	}
	if resp.PerformanceStatus != domain.PerfLearning {
		t.Fatalf("expected learning, got %s", resp.PerformanceStatus)
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot write never happened")
	}
}

// TestPerformanceExpiredToken maps both the 401 status and the code-190 Graph
// error to token_expired.
func TestPerformanceExpiredToken(t *testing.T) {
	tests := []struct {
		name string
		resp *port.GraphResponse
	}{
		{"http 401", &port.GraphResponse{StatusCode: 401, Err: &port.GraphError{Message: "no", Code: 2500}}},
		{"code 190", &port.GraphResponse{StatusCode: 400, Err: &port.GraphError{Message: "Error validating access token", Code: 190}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			leads := mocks.NewMockLeadRepository(t)
			graph := mocks.NewMockGraphClient(t)

			resolved := &port.ResolvedCampaign{
				Source: port.SourceLegacy,
				Live:   &domain.LiveCampaign{MetaCampaignID: "mc1", AccessToken: "stale-tok"},
			}
			repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()
			graph.EXPECT().
				Get(mock.Anything, "mc1/insights", mock.Anything, "stale-tok").
				Return(tt.resp, nil).Once()

			svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
			_, err := svc.Performance(context.Background(), port.PerformanceReq{
				CampaignID: "mc1", OwnerKeyID: "key1",
			})
			if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeTokenExpired {
				t.Fatalf("expected token_expired, got %s", apiErr.Code)
			}
		})
	}
}

// TestPerformanceBusinessTokenHop falls back to the linked business token
// when neither the request nor the record carries one.
func TestPerformanceBusinessTokenHop(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	bizID := "b1"
	resolved := &port.ResolvedCampaign{
		Source: port.SourceLegacy,
		Live: &domain.LiveCampaign{
			MetaCampaignID: "mc1",
			BusinessID:     &bizID,
			Status:         domain.StatusActive,
			CreatedAt:      time.Now().Add(-time.Hour),
		},
	}
	repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()
	repo.EXPECT().GetBusiness(mock.Anything, "b1").
		Return(&domain.Business{ID: "b1", AccessToken: "biz-tok"}, nil).Once()
	graph.EXPECT().
		Get(mock.Anything, "mc1/insights", mock.Anything, "biz-tok").
		Return(insightsResp(), nil).Once()

	saved := make(chan struct{})
	repo.EXPECT().
		SavePerformanceSnapshot(mock.Anything, resolved, mock.Anything).
		Run(func(_ context.Context, _ *port.ResolvedCampaign, _ domain.PerformanceSnapshot) {
			close(saved)
		}).
		Return(nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	if _, err := svc.Performance(context.Background(), port.PerformanceReq{
		CampaignID: "mc1", OwnerKeyID: "key1",
	}); err != nil {
		t.Fatalf("Performance error: %v", err)
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot write never happened")
	}
}
