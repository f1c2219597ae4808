package usecase

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"time"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

// Performance pulls lifetime insight metrics for a launched campaign, derives
// the coarse health classification and persists the snapshot. The snapshot
// write is a detached best-effort side-channel update: its failure is logged
// and never affects the HTTP result. An expired token (HTTP 401 or Graph
// error code 190) is reported as token_expired rather than a generic Meta
// error, because it calls for a different caller action.
func (u *CampaignUseCase) Performance(ctx context.Context, req port.PerformanceReq) (*port.PerformanceResp, error) {
	resolved, err := u.repo.Resolve(ctx, req.CampaignID, req.OwnerKeyID)
	if err != nil {
		return nil, &domain.APIError{Code: domain.CodeInternal, Message: "campaign lookup failed: " + err.Error()}
	}
	if resolved == nil || resolved.MetaCampaignID() == "" {
		return nil, domain.NewNotFoundError("campaign has no launched Meta campaign")
	}

	token := firstNonEmpty(req.AccessToken, resolved.StoredAccessToken())
	if token == "" {
		// hop through the linked business record before the system fallback
		if bizID := resolved.BusinessID(); bizID != nil {
			biz, err := u.repo.GetBusiness(ctx, *bizID)
			if err != nil {
				return nil, &domain.APIError{Code: domain.CodeInternal, Message: "business lookup failed: " + err.Error()}
			}
			if biz != nil {
				token = biz.AccessToken
			}
		}
	}
	token = firstNonEmpty(token, u.meta.FallbackAccessToken)
	if token == "" {
		return nil, &domain.APIError{Code: domain.CodeMissingToken, Message: "no Meta access token available for this campaign"}
	}

	resp, err := u.graph.Get(ctx, resolved.MetaCampaignID()+"/insights", url.Values{
		"fields":      {"impressions,clicks,spend,actions"},
		"date_preset": {"maximum"},
	}, token)
	if err != nil {
		return nil, &domain.APIError{Code: domain.CodeMetaAPI, Message: "meta api request failed: " + err.Error()}
	}
	if resp.ExpiredToken() {
		return nil, &domain.APIError{Code: domain.CodeTokenExpired, Message: "Meta access token is expired or invalid", MetaError: resp.Err}
	}
	if !resp.OK() {
		return nil, stepError("", resp)
	}

	impressions, clicks, spendCents, leadsCount := parseInsights(resp.Data)
	cpl := domain.ComputeCPLCents(spendCents, leadsCount)
	now := u.now().UTC()
	since := now.Sub(resolved.ReferenceTime())

	snap := domain.PerformanceSnapshot{
		Impressions: impressions,
		Clicks:      clicks,
		SpendCents:  spendCents,
		LeadsCount:  leadsCount,
		CPLCents:    cpl,
		CTRPct:      domain.ComputeCTRPct(clicks, impressions),
		Status:      domain.ClassifyPerformance(resolved.Status(), since, impressions, spendCents, leadsCount, cpl),
		SyncedAt:    now,
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := u.repo.SavePerformanceSnapshot(writeCtx, resolved, snap); err != nil {
			u.logger.Error("performance snapshot write failed",
				slog.String("meta_campaign_id", resolved.MetaCampaignID()),
				slog.Any("error", err))
		}
	}()

	return &port.PerformanceResp{
		CampaignID:        resolved.InternalID(),
		Status:            resolved.Status(),
		PerformanceStatus: snap.Status,
		Metrics:           snap,
		HoursSinceLaunch:  math.Round(since.Hours()*10) / 10,
		LastSyncedAt:      now,
	}, nil
}

// parseInsights extracts the lifetime metrics from an insights payload. Meta
// returns numbers as strings and spend as a decimal dollar amount; the lead
// count is the "lead"-typed entry of the actions array. An empty data array
// (a campaign with no delivery yet) yields all zeroes.
func parseInsights(data map[string]any) (impressions, clicks, spendCents, leadsCount int64) {
	rows, _ := data["data"].([]any)
	if len(rows) == 0 {
		return 0, 0, 0, 0
	}
	row, _ := rows[0].(map[string]any)
	if row == nil {
		return 0, 0, 0, 0
	}
	impressions = insightInt(row["impressions"])
	clicks = insightInt(row["clicks"])
	spendCents = int64(math.Round(insightFloat(row["spend"]) * 100))
	if actions, ok := row["actions"].([]any); ok {
		for _, a := range actions {
			action, _ := a.(map[string]any)
			if action == nil {
				continue
			}
			if t, _ := action["action_type"].(string); t == "lead" {
				leadsCount = insightInt(action["value"])
				break
			}
		}
	}
	return impressions, clicks, spendCents, leadsCount
}

func insightInt(v any) int64 {
	switch n := v.(type) {
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func insightFloat(v any) float64 {
	switch n := v.(type) {
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	case float64:
		return n
	default:
		return 0
	}
}
