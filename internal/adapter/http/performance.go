package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"leadlaunch/internal/core/port"
)

type performanceMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	SpendCents  int64   `json:"spend_cents"`
	LeadsCount  int64   `json:"leads_count"`
	CPLCents    *int64  `json:"cpl_cents"`
	CTRPct      float64 `json:"ctr_pct"`
}

type performanceResponse struct {
	CampaignID        string             `json:"campaign_id"`
	Status            string             `json:"status"`
	PerformanceStatus string             `json:"performance_status"`
	Metrics           performanceMetrics `json:"metrics"`
	HoursSinceLaunch  float64            `json:"hours_since_launch"`
	LastSyncedAt      time.Time          `json:"last_synced_at"`
}

// handlePerformance syncs lifetime insight metrics for the campaign in the
// path. The optional meta_access_token query parameter overrides the stored
// token chain. An expired token maps to 401 token_expired.
func (h *Handler) handlePerformance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Performance(r.Context(), port.PerformanceReq{
		CampaignID:  chi.URLParam(r, "id"),
		OwnerKeyID:  ownerKey(r),
		AccessToken: r.URL.Query().Get("meta_access_token"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, performanceResponse{
		CampaignID:        resp.CampaignID,
		Status:            string(resp.Status),
		PerformanceStatus: string(resp.PerformanceStatus),
		Metrics: performanceMetrics{
			Impressions: resp.Metrics.Impressions,
			Clicks:      resp.Metrics.Clicks,
			SpendCents:  resp.Metrics.SpendCents,
			LeadsCount:  resp.Metrics.LeadsCount,
			CPLCents:    resp.Metrics.CPLCents,
			CTRPct:      resp.Metrics.CTRPct,
		},
		HoursSinceLaunch: resp.HoursSinceLaunch,
		LastSyncedAt:     resp.LastSyncedAt,
	})
}
