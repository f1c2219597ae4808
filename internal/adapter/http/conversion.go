package httpadapter

import (
	"encoding/json"
	"net/http"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

type conversionUserData struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type conversionRequest struct {
	LeadID          string              `json:"lead_id"`
	Quality         string              `json:"quality"`
	MetaAccessToken string              `json:"meta_access_token,omitempty"`
	UserData        *conversionUserData `json:"user_data,omitempty"`
}

type conversionResponse struct {
	Success        bool   `json:"success"`
	CAPISent       bool   `json:"capi_sent"`
	EventsReceived *int   `json:"events_received,omitempty"`
	Quality        string `json:"quality"`
	LeadID         string `json:"lead_id"`
}

// handleConversion reports a lead-quality signal through the Conversions
// API. With no configured pixel or token the call still succeeds with
// capi_sent:false.
func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	var body conversionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, domain.NewValidationError("invalid JSON body"))
		return
	}

	req := port.ConversionReq{
		LeadID:      body.LeadID,
		OwnerKeyID:  ownerKey(r),
		Quality:     domain.LeadQuality(body.Quality),
		AccessToken: body.MetaAccessToken,
	}
	if body.UserData != nil {
		req.UserData = &port.ConversionUserData{
			Email:     body.UserData.Email,
			Phone:     body.UserData.Phone,
			FirstName: body.UserData.FirstName,
			LastName:  body.UserData.LastName,
		}
	}

	resp, err := h.svc.Conversion(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := conversionResponse{
		Success:  resp.Success,
		CAPISent: resp.CAPISent,
		Quality:  string(resp.Quality),
		LeadID:   resp.LeadID,
	}
	if resp.CAPISent {
		out.EventsReceived = &resp.EventsReceived
	}
	h.writeJSON(w, http.StatusOK, out)
}
