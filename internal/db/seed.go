package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: one business with stored credentials, a ready
// draft, a legacy live campaign that predates the drafting feature and a
// handful of leads against each. Intended for development only.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	bizID := "biz-demo-1"
	_, err := db.Exec(ctx, `INSERT INTO businesses (id, name, meta_access_token, meta_pixel_id, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
		bizID, "Demo Plumbing Co", "demo-business-token", "demo-pixel-1")
	if err != nil {
		return err
	}

	draftID := "draft-demo-1"
	targeting := map[string]any{
		"age_min":   25,
		"age_max":   64,
		"radius_km": 15,
		"interests": []string{"home improvement", "renovation"},
		"geo_points": []map[string]float64{
			{"latitude": -33.8688, "longitude": 151.2093},
		},
	}
	tgtJSON, _ := json.Marshal(targeting)
	variants := []map[string]string{
		{
			"headline": "Blocked Drain? Fixed Today",
			"copy":     "Local licensed plumbers, on site within the hour. Upfront pricing, no call-out fee.",
			"cta":      "Get Quote",
			"angle":    "urgency",
		},
		{
			"headline": "Sydney's Highest Rated Plumbers",
			"copy":     "Over 500 five-star reviews. Book online in 30 seconds.",
			"cta":      "Book Now",
			"angle":    "social proof",
		},
	}
	varJSON, _ := json.Marshal(variants)
	strategy := map[string]any{
		"objective":                   "OUTCOME_LEADS",
		"budget_recommendation_cents": 2500,
		"projections":                 "12-18 leads/week at target CPL",
	}
	stratJSON, _ := json.Marshal(strategy)
	_, err = db.Exec(ctx, `INSERT INTO campaign_drafts
    (id, owner_key_id, status, url, business_name, business_type, business_id,
     strategy, targeting, variants, daily_budget_cents, objective, created_at)
VALUES ($1,$2,'draft',$3,$4,$5,$6,$7,$8,$9,$10,'OUTCOME_LEADS',now()) ON CONFLICT DO NOTHING`,
		draftID, "key-demo-1", "https://demoplumbing.example.com",
		"Demo Plumbing Co", "plumber", bizID, stratJSON, tgtJSON, varJSON, int64(2500))
	if err != nil {
		return err
	}

	// legacy campaign keyed directly by its Meta campaign ID
	legacyID := "120210000000000001"
	launched := time.Now().AddDate(0, 0, -14)
	_, err = db.Exec(ctx, `INSERT INTO live_campaigns
    (meta_campaign_id, meta_adset_id, meta_ad_id, meta_leadform_id, business_id,
     status, daily_budget_cents, radius_km, ad_headline, ad_copy,
     leads_count, spend_cents, impressions, clicks, performance_status, launched_at, created_at)
VALUES ($1,$2,$3,$4,$5,'active',$6,$7,$8,$9,$10,$11,$12,$13,'healthy',$14,now()) ON CONFLICT DO NOTHING`,
		legacyID, "120210000000000002", "120210000000000003", "120210000000000004", bizID,
		int64(2000), 10.0, "Hot Water Gone? Same-Day Fix",
		"Emergency hot water repairs across the city.", int64(9), int64(8100), int64(4200), int64(130), launched)
	if err != nil {
		return err
	}

	names := []string{"Alex Nguyen", "Sam Taylor", "Jordan Lee"}
	for i, name := range names {
		_, err = db.Exec(ctx, `INSERT INTO leads
    (id, campaign_id, business_id, name, phone, email, meta_lead_id, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,'new',now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(), legacyID, bizID, name,
			fmt.Sprintf("04%08d", 12340000+i),
			fmt.Sprintf("lead%d@example.com", i+1),
			fmt.Sprintf("9990000000%d", i+1))
		if err != nil {
			return err
		}
	}
	return nil
}
