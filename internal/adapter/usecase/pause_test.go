package usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"

	"leadlaunch/internal/config/configs"
	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
	"leadlaunch/internal/core/port/mocks"
)

func TestSetStatusInvalidAction(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	_, err := svc.SetStatus(context.Background(), port.StatusReq{CampaignID: "c1", Action: "stop"})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeValidation {
		t.Fatalf("expected validation_error, got %s", apiErr.Code)
	}
}

func TestSetStatusNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	repo.EXPECT().Resolve(mock.Anything, "missing", "key1").Return(nil, nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	_, err := svc.SetStatus(context.Background(), port.StatusReq{
		CampaignID: "missing", OwnerKeyID: "key1", Action: "pause",
	})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeNotFound {
		t.Fatalf("expected not_found, got %s", apiErr.Code)
	}
}

// TestSetStatusPause checks the remote status POST and the local reconcile.
// The stored token serves because the request carries none.
func TestSetStatusPause(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	resolved := &port.ResolvedCampaign{
		Source: port.SourceLegacy,
		Live: &domain.LiveCampaign{
			MetaCampaignID: "mc1",
			AccessToken:    "stored-tok",
			Status:         domain.StatusActive,
		},
	}
	repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()
	graph.EXPECT().
		PostForm(mock.Anything, "mc1", url.Values{"status": {"PAUSED"}}, "stored-tok").
		Return(successResp(), nil).Once()
	repo.EXPECT().UpdateStatus(mock.Anything, resolved, domain.StatusPaused).Return(nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	resp, err := svc.SetStatus(context.Background(), port.StatusReq{
		CampaignID: "mc1", OwnerKeyID: "key1", Action: "pause",
	})
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if resp.Status != domain.StatusPaused || resp.MetaCampaignID != "mc1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSetStatusResumeRemoteFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	resolved := &port.ResolvedCampaign{
		Source: port.SourceLegacy,
		Live:   &domain.LiveCampaign{MetaCampaignID: "mc1", AccessToken: "stored-tok"},
	}
	repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()
	graph.EXPECT().
		PostForm(mock.Anything, "mc1", url.Values{"status": {"ACTIVE"}}, "stored-tok").
		Return(errResp("Unsupported post request", 100), nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	_, err := svc.SetStatus(context.Background(), port.StatusReq{
		CampaignID: "mc1", OwnerKeyID: "key1", Action: "resume",
	})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeMetaAPI {
		t.Fatalf("expected meta_api_error, got %s", apiErr.Code)
	}
}

// TestSetStatusMissingToken covers a legacy record with no stored token and
// no configured fallback.
func TestSetStatusMissingToken(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	resolved := &port.ResolvedCampaign{
		Source: port.SourceLegacy,
		Live:   &domain.LiveCampaign{MetaCampaignID: "mc1"},
	}
	repo.EXPECT().Resolve(mock.Anything, "mc1", "key1").Return(resolved, nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, configs.Meta{GraphVersion: "v21.0"}, testLogger())
	_, err := svc.SetStatus(context.Background(), port.StatusReq{
		CampaignID: "mc1", OwnerKeyID: "key1", Action: "pause",
	})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeMissingToken {
		t.Fatalf("expected missing_token, got %s", apiErr.Code)
	}
}
