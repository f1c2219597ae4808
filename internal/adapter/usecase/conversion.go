package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

// Conversion posts a lead-quality signal to the Conversions API to close the
// optimization loop. The pixel and token are resolved request-supplied ->
// campaign-stored -> business-stored -> system fallback. With no usable
// pixel or token the call degrades gracefully to capi_sent:false, because
// the quality signal is still worth recording locally.
func (u *CampaignUseCase) Conversion(ctx context.Context, req port.ConversionReq) (*port.ConversionResp, error) {
	if req.LeadID == "" {
		return nil, domain.NewValidationError("lead_id is required")
	}
	if req.Quality != domain.QualityGood && req.Quality != domain.QualityBad {
		return nil, domain.NewValidationError(`quality must be "good" or "bad"`)
	}

	lead, err := u.leads.GetLead(ctx, req.LeadID)
	if err != nil {
		return nil, &domain.APIError{Code: domain.CodeInternal, Message: "lead lookup failed: " + err.Error()}
	}
	if lead == nil {
		return nil, domain.NewValidationError("unknown lead_id")
	}

	if err = u.leads.RecordQuality(ctx, lead.ID, req.Quality); err != nil {
		u.logger.Error("lead quality write failed", slog.String("lead_id", lead.ID), slog.Any("error", err))
	}

	token := req.AccessToken
	pixel := ""
	if lead.CampaignID != "" {
		resolved, err := u.repo.Resolve(ctx, lead.CampaignID, req.OwnerKeyID)
		if err != nil {
			return nil, &domain.APIError{Code: domain.CodeInternal, Message: "campaign lookup failed: " + err.Error()}
		}
		if resolved != nil && token == "" {
			token = resolved.StoredAccessToken()
		}
	}
	if lead.BusinessID != nil {
		biz, err := u.repo.GetBusiness(ctx, *lead.BusinessID)
		if err != nil {
			return nil, &domain.APIError{Code: domain.CodeInternal, Message: "business lookup failed: " + err.Error()}
		}
		if biz != nil {
			token = firstNonEmpty(token, biz.AccessToken)
			pixel = biz.PixelID
		}
	}
	token = firstNonEmpty(token, u.meta.FallbackAccessToken)
	pixel = firstNonEmpty(pixel, u.meta.FallbackPixelID)

	if token == "" || pixel == "" {
		u.logger.Info("conversion recorded locally only, no pixel or token configured",
			slog.String("lead_id", lead.ID), slog.String("quality", string(req.Quality)))
		return &port.ConversionResp{Success: true, CAPISent: false, Quality: req.Quality, LeadID: lead.ID}, nil
	}

	event := buildConversionEvent(lead, req, u.now().Unix())
	resp, err := u.graph.PostForm(ctx, pixel+"/events", url.Values{
		"data": {jsonString([]any{event})},
	}, token)
	if err != nil {
		return nil, &domain.APIError{Code: domain.CodeMetaAPI, Message: "conversions api request failed: " + err.Error()}
	}
	if !resp.OK() {
		return nil, stepError("", resp)
	}

	received := 0
	if n, ok := resp.Data["events_received"].(float64); ok {
		received = int(n)
	}
	return &port.ConversionResp{
		Success:        true,
		CAPISent:       true,
		EventsReceived: received,
		Quality:        req.Quality,
		LeadID:         lead.ID,
	}, nil
}

// buildConversionEvent assembles one Conversions API event. A good lead is
// reported as a "Lead" event worth $100; a bad one as "Other" worth $0, so
// the platform learns which form fills were real. The event is deduplicated
// against Meta's own lead ID when known.
func buildConversionEvent(lead *domain.Lead, req port.ConversionReq, eventTime int64) map[string]any {
	fields := domain.MatchFields{
		Email: lead.Email,
		Phone: lead.Phone,
	}
	fields.FirstName, fields.LastName = domain.SplitName(lead.Name)
	if ud := req.UserData; ud != nil {
		if ud.Email != "" {
			fields.Email = ud.Email
		}
		if ud.Phone != "" {
			fields.Phone = ud.Phone
		}
		if ud.FirstName != "" {
			fields.FirstName = ud.FirstName
			fields.LastName = ud.LastName
		}
	}

	userData := map[string]any{}
	if fields.Email != "" {
		userData["em"] = []string{domain.HashMatchValue(domain.NormalizeEmail(fields.Email))}
	}
	if fields.Phone != "" {
		userData["ph"] = []string{domain.HashMatchValue(domain.NormalizePhone(fields.Phone))}
	}
	if fields.FirstName != "" {
		userData["fn"] = []string{domain.HashMatchValue(fields.FirstName)}
	}
	if fields.LastName != "" {
		userData["ln"] = []string{domain.HashMatchValue(fields.LastName)}
	}
	if lead.MetaLeadID != "" {
		userData["lead_id"] = lead.MetaLeadID
	}

	eventName, value := "Lead", 100
	if req.Quality == domain.QualityBad {
		eventName, value = "Other", 0
	}
	eventID := lead.MetaLeadID
	if eventID == "" {
		eventID = uuid.NewString()
	}
	return map[string]any{
		"event_name":    eventName,
		"event_time":    strconv.FormatInt(eventTime, 10),
		"event_id":      eventID,
		"action_source": "system_generated",
		"user_data":     userData,
		"custom_data": map[string]any{
			"value":    value,
			"currency": "USD",
		},
	}
}
