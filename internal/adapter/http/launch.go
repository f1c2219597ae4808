package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

type launchRequest struct {
	MetaAccessToken  string   `json:"meta_access_token"`
	MetaAdAccountID  string   `json:"meta_ad_account_id"`
	MetaPageID       string   `json:"meta_page_id"`
	VariantIndex     *int     `json:"variant_index,omitempty"`
	DailyBudgetCents *int64   `json:"daily_budget_cents,omitempty"`
	RadiusKm         *float64 `json:"radius_km,omitempty"`
}

type launchResponse struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	MetaCampaignID   string    `json:"meta_campaign_id"`
	MetaAdSetID      string    `json:"meta_adset_id"`
	MetaAdID         string    `json:"meta_ad_id"`
	MetaLeadFormID   string    `json:"meta_leadform_id"`
	DailyBudgetCents int64     `json:"daily_budget_cents"`
	LaunchedAt       time.Time `json:"launched_at"`
}

// handleLaunch runs the full launch sequence for the campaign in the path.
// Validation failures are reported before any remote call is made; remote
// step failures come back as 502 with the failing step attached.
func (h *Handler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	var body launchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	resp, err := h.svc.Launch(r.Context(), port.LaunchReq{
		CampaignID:       chi.URLParam(r, "id"),
		OwnerKeyID:       ownerKey(r),
		AccessToken:      body.MetaAccessToken,
		AdAccountID:      body.MetaAdAccountID,
		PageID:           body.MetaPageID,
		VariantIndex:     body.VariantIndex,
		DailyBudgetCents: body.DailyBudgetCents,
		RadiusKm:         body.RadiusKm,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, launchResponse{
		ID:               resp.ID,
		Status:           string(resp.Status),
		MetaCampaignID:   resp.MetaCampaignID,
		MetaAdSetID:      resp.MetaAdSetID,
		MetaAdID:         resp.MetaAdID,
		MetaLeadFormID:   resp.MetaLeadFormID,
		DailyBudgetCents: resp.DailyBudgetCents,
		LaunchedAt:       resp.LaunchedAt,
	})
}
