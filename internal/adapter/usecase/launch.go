package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

const (
	defaultDailyBudgetCents int64   = 2000
	defaultRadiusKm         float64 = 10

	// launchLeaseExpiry caps how long a crashed launch can hold a draft's
	// exclusive lease before another attempt may take it over.
	launchLeaseExpiry = 2 * time.Minute

	defaultPrivacyURL = "https://example.com/privacy"
	defaultLinkURL    = "https://fb.me/"
)

// ctaTypes maps the authored call-to-action vocabulary onto Meta's enum.
// Unknown values fall back to LEARN_MORE.
var ctaTypes = map[string]string{
	"Get Quote":  "GET_QUOTE",
	"Call Now":   "CALL_NOW",
	"Learn More": "LEARN_MORE",
	"Sign Up":    "SIGN_UP",
	"Book Now":   "BOOK_NOW",
	"Contact Us": "CONTACT_US",
}

func ctaType(cta string) string {
	if t, ok := ctaTypes[cta]; ok {
		return t
	}
	return "LEARN_MORE"
}

// Launch performs the ordered remote creation sequence:
//
//	campaign -> ad set -> lead form -> creative -> ad -> activate -> persist
//
// Each step's payload depends on an identifier produced by the previous step,
// so the sequence is strictly sequential. Any failure from step two onward
// compensates by deleting the created objects Meta will not cascade away
// (the lead form, then the root campaign); compensation errors are logged and
// never mask the original failure. Persistence failures after activation do
// not fail the call: the remote platform is the source of truth once the ad
// is live, and reporting an error here would invite a duplicate launch.
func (u *CampaignUseCase) Launch(ctx context.Context, req port.LaunchReq) (*port.LaunchResp, error) {
	if req.AccessToken == "" {
		return nil, domain.NewValidationError("meta_access_token is required")
	}
	if req.AdAccountID == "" {
		return nil, domain.NewValidationError("meta_ad_account_id is required")
	}
	if req.PageID == "" {
		return nil, domain.NewValidationError("meta_page_id is required")
	}
	actPath := "act_" + strings.TrimPrefix(req.AdAccountID, "act_")

	// The draft is advisory: an unresolvable campaign ID falls back to
	// system defaults so the endpoint stays usable for ad-hoc launches.
	var draft *domain.CampaignDraft
	if req.CampaignID != "" {
		resolved, err := u.repo.Resolve(ctx, req.CampaignID, req.OwnerKeyID)
		if err != nil {
			return nil, &domain.APIError{Code: domain.CodeInternal, Message: "campaign lookup failed: " + err.Error()}
		}
		if resolved != nil && resolved.Source == port.SourceDraft {
			draft = resolved.Draft
		}
	}

	if draft != nil {
		ok, err := u.repo.AcquireLaunchLease(ctx, draft.ID, launchLeaseExpiry)
		if err != nil {
			return nil, &domain.APIError{Code: domain.CodeInternal, Message: "launch lease acquire failed: " + err.Error()}
		}
		if !ok {
			return nil, &domain.APIError{Code: domain.CodeLaunchInProgress, Message: "a launch for this campaign is already in progress"}
		}
		defer func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()
			if err := u.repo.ReleaseLaunchLease(releaseCtx, draft.ID); err != nil {
				u.logger.Error("launch lease release failed", slog.String("draft_id", draft.ID), slog.Any("error", err))
			}
		}()
	}

	in := resolveLaunchInputs(req, draft)
	run := &launchRun{u: u, token: req.AccessToken}

	// 1. campaign
	campaignID, err := run.create(ctx, "campaign", actPath+"/campaigns", url.Values{
		"name":                  {fmt.Sprintf("%s - API - %s", in.businessName, u.now().Format("2006-01-02"))},
		"objective":             {in.objective},
		"status":                {"PAUSED"},
		"special_ad_categories": {"[]"},
	})
	if err != nil {
		return nil, err
	}
	run.track("campaign", campaignID)

	// 2. ad set
	adSetID, err := run.create(ctx, "adset", actPath+"/adsets", url.Values{
		"name":              {in.businessName + " - Leads"},
		"campaign_id":       {campaignID},
		"daily_budget":      {strconv.FormatInt(in.dailyBudgetCents, 10)},
		"billing_event":     {"IMPRESSIONS"},
		"optimization_goal": {"LEAD_GENERATION"},
		"bid_strategy":      {"LOWEST_COST_WITHOUT_CAP"},
		"targeting":         {buildTargeting(in.targeting, in.radiusKm, u.meta.DefaultCountry)},
		"promoted_object":   {jsonString(map[string]any{"page_id": req.PageID})},
		"destination_type":  {"ON_AD"},
		"status":            {"PAUSED"},
		"start_time":        {u.now().UTC().Format(time.RFC3339)},
	})
	if err != nil {
		return nil, err
	}

	// 3. lead form, created on the page. Not covered by the campaign's
	// cascade delete, so it is tracked for individual compensation.
	leadFormID, err := run.create(ctx, "leadform", req.PageID+"/leadgen_forms", url.Values{
		"name": {fmt.Sprintf("%s Leads %s", in.businessName, u.now().Format("2006-01-02"))},
		"questions": {jsonString([]map[string]any{
			{"type": "FULL_NAME"},
			{"type": "PHONE"},
			{"type": "EMAIL"},
			{"type": "CUSTOM", "key": "area", "label": "What area are you in?"},
		})},
		"privacy_policy": {jsonString(map[string]any{"url": in.privacyURL})},
		"thank_you_page": {jsonString(map[string]any{
			"title": "Thank you",
			"body":  fmt.Sprintf("Thanks! %s will be in touch shortly.", in.businessName),
		})},
	})
	if err != nil {
		return nil, err
	}
	run.track("leadform", leadFormID)

	// 4. creative
	linkData := map[string]any{
		"message": in.variant.Copy,
		"name":    in.variant.Headline,
		"link":    in.linkURL,
		"call_to_action": map[string]any{
			"type":  ctaType(in.variant.CTA),
			"value": map[string]any{"lead_gen_form_id": leadFormID},
		},
	}
	if in.variant.ImageURL != "" {
		linkData["picture"] = in.variant.ImageURL
	}
	creativeID, err := run.create(ctx, "creative", actPath+"/adcreatives", url.Values{
		"name": {in.businessName + " - Creative"},
		"object_story_spec": {jsonString(map[string]any{
			"page_id":   req.PageID,
			"link_data": linkData,
		})},
	})
	if err != nil {
		return nil, err
	}

	// 5. ad
	adID, err := run.create(ctx, "ad", actPath+"/ads", url.Values{
		"name":     {in.businessName + " - Ad"},
		"adset_id": {adSetID},
		"creative": {jsonString(map[string]any{"creative_id": creativeID})},
		"status":   {"PAUSED"},
	})
	if err != nil {
		return nil, err
	}

	// 6. activate. The ad's activation is the one that must succeed for
	// spend to begin; ad set and campaign activation are best-effort.
	if err = run.activate(ctx, adID); err != nil {
		return nil, err
	}
	u.activateBestEffort(ctx, adSetID, req.AccessToken)
	u.activateBestEffort(ctx, campaignID, req.AccessToken)

	// 7. persist. The campaign is live; local mirror writes are best-effort.
	launchedAt := u.now().UTC()
	result := port.LaunchResult{
		MetaCampaignID:   campaignID,
		MetaAdSetID:      adSetID,
		MetaAdID:         adID,
		MetaLeadFormID:   leadFormID,
		DailyBudgetCents: in.dailyBudgetCents,
		LaunchedAt:       launchedAt,
	}
	if draft != nil {
		if err := u.repo.SaveLaunchResult(ctx, draft.ID, result); err != nil {
			u.logger.Error("persisting launch result failed",
				slog.String("draft_id", draft.ID),
				slog.String("meta_campaign_id", campaignID),
				slog.Any("error", err))
		}
	}
	lc := &domain.LiveCampaign{
		MetaCampaignID:    campaignID,
		MetaAdSetID:       adSetID,
		MetaAdID:          adID,
		MetaLeadFormID:    leadFormID,
		Status:            domain.StatusActive,
		DailyBudgetCents:  in.dailyBudgetCents,
		RadiusKm:          in.radiusKm,
		AdHeadline:        in.variant.Headline,
		AdCopy:            in.variant.Copy,
		AdImageURL:        in.variant.ImageURL,
		AccessToken:       req.AccessToken,
		PerformanceStatus: domain.PerfLearning,
		LaunchedAt:        &launchedAt,
	}
	if draft != nil {
		lc.BusinessID = draft.BusinessID
	}
	if err := u.repo.UpsertLiveCampaign(ctx, lc); err != nil {
		u.logger.Error("persisting reporting row failed",
			slog.String("meta_campaign_id", campaignID),
			slog.Any("error", err))
	}

	id := req.CampaignID
	if draft != nil {
		id = draft.ID
	}
	return &port.LaunchResp{
		ID:               id,
		Status:           domain.StatusActive,
		MetaCampaignID:   campaignID,
		MetaAdSetID:      adSetID,
		MetaAdID:         adID,
		MetaLeadFormID:   leadFormID,
		DailyBudgetCents: in.dailyBudgetCents,
		LaunchedAt:       launchedAt,
	}, nil
}

// launchInputs are the effective parameters after merging the request body
// over the draft over the system defaults.
type launchInputs struct {
	businessName     string
	objective        string
	dailyBudgetCents int64
	radiusKm         float64
	targeting        domain.Targeting
	variant          domain.AdVariant
	privacyURL       string
	linkURL          string
}

func resolveLaunchInputs(req port.LaunchReq, draft *domain.CampaignDraft) launchInputs {
	in := launchInputs{
		businessName:     "Campaign",
		objective:        "OUTCOME_LEADS",
		dailyBudgetCents: defaultDailyBudgetCents,
		radiusKm:         defaultRadiusKm,
		privacyURL:       defaultPrivacyURL,
		linkURL:          defaultLinkURL,
	}
	if draft != nil {
		if draft.BusinessName != "" {
			in.businessName = draft.BusinessName
		}
		if obj := firstNonEmpty(draft.Objective, draft.Strategy.Objective); obj != "" {
			in.objective = obj
		}
		if draft.DailyBudgetCents > 0 {
			in.dailyBudgetCents = draft.DailyBudgetCents
		}
		if draft.Targeting.RadiusKm > 0 {
			in.radiusKm = draft.Targeting.RadiusKm
		}
		in.targeting = draft.Targeting
		if draft.URL != "" {
			in.privacyURL = draft.URL
			in.linkURL = draft.URL
		}
	}
	if req.DailyBudgetCents != nil && *req.DailyBudgetCents > 0 {
		in.dailyBudgetCents = *req.DailyBudgetCents
	}
	if req.RadiusKm != nil && *req.RadiusKm > 0 {
		in.radiusKm = *req.RadiusKm
	}
	idx := 0
	if req.VariantIndex != nil {
		idx = *req.VariantIndex
	}
	if draft != nil {
		in.variant = draft.Variant(idx)
	} else {
		in.variant = domain.AdVariant{
			Headline: in.businessName,
			Copy:     "Get in touch with " + in.businessName + " today.",
			CTA:      "Learn More",
		}
	}
	return in
}

// buildTargeting assembles the ad set targeting JSON. Geo points become
// radius-bounded custom locations; with none supplied the ad set targets the
// default country. Authored interest keywords are not forwarded: Meta
// targeting requires numeric interest IDs this system does not resolve.
func buildTargeting(t domain.Targeting, radiusKm float64, defaultCountry string) string {
	geo := map[string]any{}
	if len(t.GeoPoints) > 0 {
		locs := make([]map[string]any, 0, len(t.GeoPoints))
		for _, p := range t.GeoPoints {
			locs = append(locs, map[string]any{
				"latitude":      p.Latitude,
				"longitude":     p.Longitude,
				"radius":        radiusKm,
				"distance_unit": "kilometer",
			})
		}
		geo["custom_locations"] = locs
	} else {
		geo["countries"] = []string{defaultCountry}
	}
	tgt := map[string]any{"geo_locations": geo}
	if t.AgeMin > 0 {
		tgt["age_min"] = t.AgeMin
	}
	if t.AgeMax > 0 {
		tgt["age_max"] = t.AgeMax
	}
	return jsonString(tgt)
}

func jsonString(v any) string {
	buf, _ := json.Marshal(v)
	return string(buf)
}

// remoteObject is one created Graph object tracked for compensation. Only
// objects outside the campaign's cascade delete need individual cleanup.
type remoteObject struct {
	kind string
	id   string
}

// launchRun carries the per-launch compensation state.
type launchRun struct {
	u       *CampaignUseCase
	token   string
	created []remoteObject
}

func (lr *launchRun) track(kind, id string) {
	lr.created = append(lr.created, remoteObject{kind: kind, id: id})
}

// create posts an object-creation call and returns the new object's ID. On
// any failure it compensates for everything created so far and returns an
// APIError naming the failed step.
func (lr *launchRun) create(ctx context.Context, step, path string, params url.Values) (string, error) {
	resp, err := lr.u.graph.PostForm(ctx, path, params, lr.token)
	if err != nil {
		lr.compensate(ctx)
		return "", &domain.APIError{Code: domain.CodeMetaAPI, Step: step, Message: "meta api request failed: " + err.Error()}
	}
	if !resp.OK() {
		lr.compensate(ctx)
		return "", stepError(step, resp)
	}
	id := resp.ID()
	if id == "" {
		lr.compensate(ctx)
		return "", &domain.APIError{Code: domain.CodeParse, Step: step, Message: "creation response carried no object id", MetaError: resp.RawBody}
	}
	return id, nil
}

// activate flips the ad to ACTIVE. This is the gating activation: its failure
// compensates the whole launch.
func (lr *launchRun) activate(ctx context.Context, adID string) error {
	resp, err := lr.u.graph.PostForm(ctx, adID, url.Values{"status": {"ACTIVE"}}, lr.token)
	if err != nil {
		lr.compensate(ctx)
		return &domain.APIError{Code: domain.CodeMetaAPI, Step: "activate", Message: "meta api request failed: " + err.Error()}
	}
	if !resp.OK() {
		lr.compensate(ctx)
		return stepError("activate", resp)
	}
	return nil
}

// compensate deletes the tracked objects in reverse creation order. Deleting
// the root campaign cascades to its ad sets, ads and creatives; the lead form
// is deleted individually because Meta does not cascade to it. Every cleanup
// error is swallowed so the original step failure always wins.
func (lr *launchRun) compensate(ctx context.Context) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	for i := len(lr.created) - 1; i >= 0; i-- {
		obj := lr.created[i]
		resp, err := lr.u.graph.Delete(cleanupCtx, obj.id, lr.token)
		if err != nil {
			lr.u.logger.Warn("launch cleanup delete failed",
				slog.String("kind", obj.kind), slog.String("id", obj.id), slog.Any("error", err))
			continue
		}
		if !resp.OK() {
			lr.u.logger.Warn("launch cleanup delete rejected",
				slog.String("kind", obj.kind), slog.String("id", obj.id), slog.String("body", resp.RawBody))
		}
	}
}

// activateBestEffort flips an object's status to ACTIVE without gating the
// launch on the result.
func (u *CampaignUseCase) activateBestEffort(ctx context.Context, objectID, token string) {
	resp, err := u.graph.PostForm(ctx, objectID, url.Values{"status": {"ACTIVE"}}, token)
	if err != nil {
		u.logger.Warn("best-effort activation failed", slog.String("id", objectID), slog.Any("error", err))
		return
	}
	if !resp.OK() {
		u.logger.Warn("best-effort activation rejected", slog.String("id", objectID), slog.String("body", resp.RawBody))
	}
}

// stepError converts a failed GraphResponse into the launch error envelope.
func stepError(step string, resp *port.GraphResponse) *domain.APIError {
	code := domain.CodeMetaAPI
	msg := "meta api rejected the request"
	if resp.Err != nil {
		if resp.Err.Type == port.ParseErrorType {
			code = domain.CodeParse
		}
		if resp.Err.Message != "" {
			msg = resp.Err.Message
		}
	}
	return &domain.APIError{Code: code, Step: step, Message: msg, MetaError: resp.Err}
}
