package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadlaunch/internal/core/domain"
)

// LeadRepository implements port.LeadRepository using pgxpool.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// GetLead returns a lead by id.
func (r *LeadRepository) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	var (
		l       domain.Lead
		quality *string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, business_id, name, phone, email,
        meta_lead_id, status, quality, created_at
    FROM leads WHERE id = $1`, id).
		Scan(&l.ID, &l.CampaignID, &l.BusinessID, &l.Name, &l.Phone, &l.Email,
			&l.MetaLeadID, &l.Status, &quality, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if quality != nil {
		q := domain.LeadQuality(*quality)
		l.Quality = &q
	}
	return &l, nil
}

// RecordQuality stores the quality signal on the lead.
func (r *LeadRepository) RecordQuality(ctx context.Context, id string, quality domain.LeadQuality) error {
	_, err := r.pool.Exec(ctx, `UPDATE leads SET quality = $2 WHERE id = $1`, id, quality)
	return err
}
