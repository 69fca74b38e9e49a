package repository

import (
	"context"

	"partner-program/internal/domain"
	"partner-program/pkg/id"
)

// CreateReferral appends an attribution event. Referrals are never updated
// or deleted; there is no ordering requirement between inserts.
func (r *ReferralRepo) CreateReferral(ctx context.Context, ref *domain.Referral) error {
	if ref.ID == "" {
		ref.ID = id.GenerateULID("REF")
	}

	query := `
		INSERT INTO referrals (id, partner_id, referral_type, referred_email, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query,
		ref.ID,
		ref.PartnerID,
		ref.ReferralType,
		ref.ReferredEmail,
	).Scan(&ref.CreatedAt)
}

// StatsForPartner aggregates click and signup counts for one partner.
func (r *ReferralRepo) StatsForPartner(ctx context.Context, partnerID string) (*domain.ReferralStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE referral_type = 'click'),
			COUNT(*) FILTER (WHERE referral_type = 'signup'),
			COUNT(*)
		FROM referrals
		WHERE partner_id = $1
	`

	var stats domain.ReferralStats
	err := r.db.QueryRow(ctx, query, partnerID).Scan(&stats.Clicks, &stats.Signups, &stats.Total)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
