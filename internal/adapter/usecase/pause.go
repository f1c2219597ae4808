package usecase

import (
	"context"
	"log/slog"
	"net/url"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

// SetStatus pauses or resumes a launched campaign. The remote campaign ID is
// resolved through the same two-table chain as every other operation; the
// access token comes from the request override, then the stored token, then
// the system-wide fallback. A single remote status POST is issued, and on
// success the local status is reconciled on whichever table resolved the
// record.
func (u *CampaignUseCase) SetStatus(ctx context.Context, req port.StatusReq) (*port.StatusResp, error) {
	var (
		remoteStatus string
		localStatus  domain.CampaignStatus
	)
	switch req.Action {
	case "pause":
		remoteStatus, localStatus = "PAUSED", domain.StatusPaused
	case "resume":
		remoteStatus, localStatus = "ACTIVE", domain.StatusActive
	default:
		return nil, domain.NewValidationError(`action must be "pause" or "resume"`)
	}

	resolved, err := u.repo.Resolve(ctx, req.CampaignID, req.OwnerKeyID)
	if err != nil {
		return nil, &domain.APIError{Code: domain.CodeInternal, Message: "campaign lookup failed: " + err.Error()}
	}
	if resolved == nil || resolved.MetaCampaignID() == "" {
		return nil, domain.NewNotFoundError("campaign has no launched Meta campaign")
	}

	token := firstNonEmpty(req.AccessToken, resolved.StoredAccessToken(), u.meta.FallbackAccessToken)
	if token == "" {
		return nil, &domain.APIError{Code: domain.CodeMissingToken, Message: "no Meta access token available for this campaign"}
	}

	resp, err := u.graph.PostForm(ctx, resolved.MetaCampaignID(), url.Values{"status": {remoteStatus}}, token)
	if err != nil {
		return nil, &domain.APIError{Code: domain.CodeMetaAPI, Message: "meta api request failed: " + err.Error()}
	}
	if !resp.OK() {
		return nil, stepError("", resp)
	}

	// remote state changed; a failed local write is logged, not surfaced
	if err = u.repo.UpdateStatus(ctx, resolved, localStatus); err != nil {
		u.logger.Error("status reconcile failed",
			slog.String("campaign_id", resolved.InternalID()),
			slog.String("status", string(localStatus)),
			slog.Any("error", err))
	}

	return &port.StatusResp{
		CampaignID:     resolved.InternalID(),
		Status:         localStatus,
		MetaCampaignID: resolved.MetaCampaignID(),
	}, nil
}
