package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

type pauseRequest struct {
	Action          string `json:"action"`
	MetaAccessToken string `json:"meta_access_token,omitempty"`
}

type pauseResponse struct {
	CampaignID     string `json:"campaign_id"`
	Status         string `json:"status"`
	MetaCampaignID string `json:"meta_campaign_id"`
}

// handlePause flips a launched campaign's remote status and reconciles the
// local record. An unresolvable campaign is 404, distinguished from a
// malformed request.
func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	var body pauseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	resp, err := h.svc.SetStatus(r.Context(), port.StatusReq{
		CampaignID:  chi.URLParam(r, "id"),
		OwnerKeyID:  ownerKey(r),
		Action:      body.Action,
		AccessToken: body.MetaAccessToken,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pauseResponse{
		CampaignID:     resp.CampaignID,
		Status:         string(resp.Status),
		MetaCampaignID: resp.MetaCampaignID,
	})
}
