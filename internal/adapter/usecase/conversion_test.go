package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"

	"leadlaunch/internal/config/configs"
	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
	"leadlaunch/internal/core/port/mocks"
)

func TestConversionValidation(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())

	_, err := svc.Conversion(context.Background(), port.ConversionReq{Quality: domain.QualityGood})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeValidation {
		t.Fatalf("expected validation_error for missing lead_id, got %s", apiErr.Code)
	}

	_, err = svc.Conversion(context.Background(), port.ConversionReq{LeadID: "l1", Quality: "excellent"})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeValidation {
		t.Fatalf("expected validation_error for bad quality, got %s", apiErr.Code)
	}
}

func TestConversionUnknownLead(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	leads.EXPECT().GetLead(mock.Anything, "ghost").Return(nil, nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	_, err := svc.Conversion(context.Background(), port.ConversionReq{LeadID: "ghost", Quality: domain.QualityGood})
	if apiErr := apiErrFrom(t, err); apiErr.Code != domain.CodeValidation {
		t.Fatalf("expected validation_error, got %s", apiErr.Code)
	}
}

// TestConversionNoPixel degrades to capi_sent:false when no pixel or token can
// be resolved. The quality is still recorded locally.
func TestConversionNoPixel(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	lead := &domain.Lead{ID: "l1", Name: "Jane Doe"}
	leads.EXPECT().GetLead(mock.Anything, "l1").Return(lead, nil).Once()
	leads.EXPECT().RecordQuality(mock.Anything, "l1", domain.QualityBad).Return(nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, configs.Meta{GraphVersion: "v21.0"}, testLogger())
	resp, err := svc.Conversion(context.Background(), port.ConversionReq{LeadID: "l1", Quality: domain.QualityBad})
	if err != nil {
		t.Fatalf("Conversion error: %v", err)
	}
	if !resp.Success || resp.CAPISent {
		t.Fatalf("expected local-only success, got %+v", resp)
	}
}

// TestConversionGoodLead asserts the wire event: a good lead goes out as a
// "Lead" event worth $100 with hashed match fields and the Meta lead ID as
// the deduplication key.
func TestConversionGoodLead(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	bizID := "b1"
	lead := &domain.Lead{
		ID:         "l1",
		CampaignID: "draft-1",
		BusinessID: &bizID,
		Name:       "Jane Doe",
		Phone:      "0412 345 678",
		Email:      "Jane.Doe@Example.com",
		MetaLeadID: "fb-lead-9",
	}
	leads.EXPECT().GetLead(mock.Anything, "l1").Return(lead, nil).Once()
	leads.EXPECT().RecordQuality(mock.Anything, "l1", domain.QualityGood).Return(nil).Once()
	repo.EXPECT().Resolve(mock.Anything, "draft-1", "key1").
		Return(&port.ResolvedCampaign{
			Source: port.SourceDraft,
			Draft:  &domain.CampaignDraft{ID: "draft-1", AccessToken: "stored-tok"},
		}, nil).Once()
	repo.EXPECT().GetBusiness(mock.Anything, "b1").
		Return(&domain.Business{ID: "b1", PixelID: "px1"}, nil).Once()

	var sent url.Values
	graph.EXPECT().
		PostForm(mock.Anything, "px1/events", mock.Anything, "stored-tok").
		Run(func(_ context.Context, _ string, params url.Values, _ string) {
			sent = params
		}).
		Return(&port.GraphResponse{StatusCode: 200, Data: map[string]any{"events_received": float64(1)}}, nil).Once()

	svc := NewCampaignUseCase(repo, leads, graph, testMetaConfig(), testLogger())
	resp, err := svc.Conversion(context.Background(), port.ConversionReq{
		LeadID: "l1", OwnerKeyID: "key1", Quality: domain.QualityGood,
	})
	if err != nil {
		t.Fatalf("Conversion error: %v", err)
	}
	if !resp.CAPISent || resp.EventsReceived != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	var events []map[string]any
	if err := json.Unmarshal([]byte(sent.Get("data")), &events); err != nil {
		t.Fatalf("data param is not JSON: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	event := events[0]
	if event["event_name"] != "Lead" {
		t.Fatalf("expected Lead event, got %v", event["event_name"])
	}
	if event["event_id"] != "fb-lead-9" {
		t.Fatalf("expected Meta lead ID as event_id, got %v", event["event_id"])
	}
	custom := event["custom_data"].(map[string]any)
	if custom["value"] != float64(100) || custom["currency"] != "USD" {
		t.Fatalf("unexpected custom_data: %v", custom)
	}
	userData := event["user_data"].(map[string]any)
	wantPhone := domain.HashMatchValue(domain.NormalizePhone("0412 345 678"))
	if got := userData["ph"].([]any)[0]; got != wantPhone {
		t.Fatalf("phone hash mismatch: %v != %s", got, wantPhone)
	}
	wantEmail := domain.HashMatchValue(domain.NormalizeEmail("Jane.Doe@Example.com"))
	if got := userData["em"].([]any)[0]; got != wantEmail {
		t.Fatalf("email hash mismatch: %v != %s", got, wantEmail)
	}
	if userData["lead_id"] != "fb-lead-9" {
		t.Fatalf("expected lead_id in user_data, got %v", userData["lead_id"])
	}
}

// TestConversionBadLead reports the inverse event so the platform learns
// which form fills were junk.
func TestConversionBadLead(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	leads := mocks.NewMockLeadRepository(t)
	graph := mocks.NewMockGraphClient(t)

	lead := &domain.Lead{ID: "l1", Email: "jane@example.com"}
	leads.EXPECT().GetLead(mock.Anything, "l1").Return(lead, nil).Once()
	leads.EXPECT().RecordQuality(mock.Anything, "l1", domain.QualityBad).Return(nil).Once()

	var sent url.Values
	graph.EXPECT().
		PostForm(mock.Anything, "px-fallback/events", mock.Anything, "tok-fallback").
		Run(func(_ context.Context, _ string, params url.Values, _ string) {
			sent = params
		}).
		Return(&port.GraphResponse{StatusCode: 200, Data: map[string]any{"events_received": float64(1)}}, nil).Once()

	cfg := testMetaConfig()
	cfg.FallbackAccessToken = "tok-fallback"
	cfg.FallbackPixelID = "px-fallback"
	svc := NewCampaignUseCase(repo, leads, graph, cfg, testLogger())

	if _, err := svc.Conversion(context.Background(), port.ConversionReq{LeadID: "l1", Quality: domain.QualityBad}); err != nil {
		t.Fatalf("Conversion error: %v", err)
	}

	var events []map[string]any
	if err := json.Unmarshal([]byte(sent.Get("data")), &events); err != nil {
		t.Fatalf("data param is not JSON: %v", err)
	}
	event := events[0]
	if event["event_name"] != "Other" {
		t.Fatalf("expected Other event, got %v", event["event_name"])
	}
	custom := event["custom_data"].(map[string]any)
	if custom["value"] != float64(0) {
		t.Fatalf("expected zero value, got %v", custom["value"])
	}
	if event["event_id"] == "" {
		t.Fatal("expected generated event_id")
	}
}
