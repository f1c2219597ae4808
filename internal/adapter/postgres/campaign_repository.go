package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadlaunch/internal/core/domain"
	"leadlaunch/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool. The
// primary store is campaign_drafts; live_campaigns is the legacy/reporting
// table keyed by the Meta campaign ID itself, kept for campaigns that predate
// the drafting feature.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Resolve runs the find-first chain: campaign_drafts by internal ID scoped to
// the owner key, then live_campaigns by remote campaign ID. Returns (nil,
// nil) when neither table matches.
func (r *CampaignRepository) Resolve(ctx context.Context, id, ownerKeyID string) (*port.ResolvedCampaign, error) {
	draft, err := r.getDraft(ctx, id, ownerKeyID)
	if err != nil {
		return nil, err
	}
	if draft != nil {
		return &port.ResolvedCampaign{Source: port.SourceDraft, Draft: draft}, nil
	}
	live, err := r.getLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if live != nil {
		return &port.ResolvedCampaign{Source: port.SourceLegacy, Live: live}, nil
	}
	return nil, nil
}

func (r *CampaignRepository) getDraft(ctx context.Context, id, ownerKeyID string) (*domain.CampaignDraft, error) {
	var (
		d                                  domain.CampaignDraft
		strategyRaw, targetingRaw, varsRaw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, owner_key_id, status, url, business_name, business_type, business_id,
        strategy, targeting, variants, daily_budget_cents, objective, meta_access_token,
        meta_campaign_id, meta_adset_id, meta_ad_id, meta_leadform_id, launched_at, created_at
    FROM campaign_drafts WHERE id = $1 AND owner_key_id = $2`, id, ownerKeyID).
		Scan(&d.ID, &d.OwnerKeyID, &d.Status, &d.URL, &d.BusinessName, &d.BusinessType, &d.BusinessID,
			&strategyRaw, &targetingRaw, &varsRaw, &d.DailyBudgetCents, &d.Objective, &d.AccessToken,
			&d.MetaCampaignID, &d.MetaAdSetID, &d.MetaAdID, &d.MetaLeadFormID, &d.LaunchedAt, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// malformed JSON documents degrade to zero values rather than failing
	// the lookup; the launch path substitutes defaults for missing parts
	_ = json.Unmarshal(strategyRaw, &d.Strategy)
	_ = json.Unmarshal(targetingRaw, &d.Targeting)
	_ = json.Unmarshal(varsRaw, &d.Variants)
	return &d, nil
}

func (r *CampaignRepository) getLive(ctx context.Context, metaCampaignID string) (*domain.LiveCampaign, error) {
	var lc domain.LiveCampaign
	err := r.pool.QueryRow(ctx, `SELECT meta_campaign_id, meta_adset_id, meta_ad_id, meta_leadform_id, business_id,
        status, daily_budget_cents, radius_km, ad_headline, ad_copy, ad_image_url, meta_access_token,
        leads_count, spend_cents, impressions, clicks, cpl_cents, performance_status,
        launched_at, last_synced_at, created_at
    FROM live_campaigns WHERE meta_campaign_id = $1`, metaCampaignID).
		Scan(&lc.MetaCampaignID, &lc.MetaAdSetID, &lc.MetaAdID, &lc.MetaLeadFormID, &lc.BusinessID,
			&lc.Status, &lc.DailyBudgetCents, &lc.RadiusKm, &lc.AdHeadline, &lc.AdCopy, &lc.AdImageURL, &lc.AccessToken,
			&lc.LeadsCount, &lc.SpendCents, &lc.Impressions, &lc.Clicks, &lc.CPLCents, &lc.PerformanceStatus,
			&lc.LaunchedAt, &lc.LastSyncedAt, &lc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lc, nil
}

// AcquireLaunchLease does a compare-and-swap on the draft's launching flag.
// A stale lease past its expiry can be taken over, so a crashed launch cannot
// wedge the draft permanently.
func (r *CampaignRepository) AcquireLaunchLease(ctx context.Context, draftID string, expiry time.Duration) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_drafts
        SET launching = TRUE, launch_lease_expires_at = $2
        WHERE id = $1 AND (launching = FALSE OR launch_lease_expires_at < now())`,
		draftID, time.Now().UTC().Add(expiry))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseLaunchLease clears the launching flag unconditionally.
func (r *CampaignRepository) ReleaseLaunchLease(ctx context.Context, draftID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaign_drafts
        SET launching = FALSE, launch_lease_expires_at = NULL WHERE id = $1`, draftID)
	return err
}

// SaveLaunchResult writes all four remote identifiers together, flips the
// draft to active and stamps the launch time.
func (r *CampaignRepository) SaveLaunchResult(ctx context.Context, draftID string, res port.LaunchResult) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaign_drafts
        SET meta_campaign_id = $2, meta_adset_id = $3, meta_ad_id = $4, meta_leadform_id = $5,
            daily_budget_cents = $6, status = 'active', launched_at = $7
        WHERE id = $1`,
		draftID, res.MetaCampaignID, res.MetaAdSetID, res.MetaAdID, res.MetaLeadFormID,
		res.DailyBudgetCents, res.LaunchedAt)
	return err
}

// UpsertLiveCampaign inserts or refreshes the denormalised reporting row.
func (r *CampaignRepository) UpsertLiveCampaign(ctx context.Context, lc *domain.LiveCampaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO live_campaigns
        (meta_campaign_id, meta_adset_id, meta_ad_id, meta_leadform_id, business_id, status,
         daily_budget_cents, radius_km, ad_headline, ad_copy, ad_image_url, meta_access_token,
         leads_count, spend_cents, impressions, clicks, cpl_cents, performance_status,
         launched_at, last_synced_at, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,now())
        ON CONFLICT (meta_campaign_id) DO UPDATE SET
            meta_adset_id = EXCLUDED.meta_adset_id,
            meta_ad_id = EXCLUDED.meta_ad_id,
            meta_leadform_id = EXCLUDED.meta_leadform_id,
            status = EXCLUDED.status,
            daily_budget_cents = EXCLUDED.daily_budget_cents,
            radius_km = EXCLUDED.radius_km,
            ad_headline = EXCLUDED.ad_headline,
            ad_copy = EXCLUDED.ad_copy,
            ad_image_url = EXCLUDED.ad_image_url,
            launched_at = EXCLUDED.launched_at`,
		lc.MetaCampaignID, lc.MetaAdSetID, lc.MetaAdID, lc.MetaLeadFormID, lc.BusinessID, lc.Status,
		lc.DailyBudgetCents, lc.RadiusKm, lc.AdHeadline, lc.AdCopy, lc.AdImageURL, lc.AccessToken,
		lc.LeadsCount, lc.SpendCents, lc.Impressions, lc.Clicks, lc.CPLCents, lc.PerformanceStatus,
		lc.LaunchedAt, lc.LastSyncedAt)
	return err
}

// UpdateStatus flips the status on whichever table resolved the record, not
// both.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, c *port.ResolvedCampaign, status domain.CampaignStatus) error {
	if c.Source == port.SourceDraft {
		_, err := r.pool.Exec(ctx, `UPDATE campaign_drafts SET status = $2 WHERE id = $1`,
			c.Draft.ID, status)
		return err
	}
	_, err := r.pool.Exec(ctx, `UPDATE live_campaigns SET status = $2 WHERE meta_campaign_id = $1`,
		c.Live.MetaCampaignID, status)
	return err
}

// SavePerformanceSnapshot overwrites the metric fields on the reporting row.
// Metrics live on live_campaigns for both resolution paths; a draft-resolved
// campaign is addressed through its remote campaign ID.
func (r *CampaignRepository) SavePerformanceSnapshot(ctx context.Context, c *port.ResolvedCampaign, snap domain.PerformanceSnapshot) error {
	_, err := r.pool.Exec(ctx, `UPDATE live_campaigns
        SET impressions = $2, clicks = $3, spend_cents = $4, leads_count = $5,
            cpl_cents = $6, performance_status = $7, last_synced_at = $8
        WHERE meta_campaign_id = $1`,
		c.MetaCampaignID(), snap.Impressions, snap.Clicks, snap.SpendCents, snap.LeadsCount,
		snap.CPLCents, snap.Status, snap.SyncedAt)
	return err
}

// GetBusiness returns a business record by id.
func (r *CampaignRepository) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	var b domain.Business
	err := r.pool.QueryRow(ctx, `SELECT id, name, meta_access_token, meta_pixel_id, created_at
    FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.AccessToken, &b.PixelID, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
