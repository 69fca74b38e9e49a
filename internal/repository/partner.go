package repository

import (
	"context"
	"errors"
	"fmt"

	"partner-program/internal/domain"
	"partner-program/pkg/id"
	"partner-program/pkg/xerrors"

	"github.com/jackc/pgx/v5"
)

const partnerColumns = `
	id, name, email, partner_code, tier, status,
	audience_size, industry, partner_type, image_url, user_id,
	created_at, updated_at`

// CreatePartner inserts a new partner application. The caller provides a
// generated partner_code; on a unique-constraint collision the error wraps
// xerrors.ErrConflict so the usecase can regenerate the code and retry.
func (r *PartnerRepo) CreatePartner(ctx context.Context, p *domain.Partner) error {
	if p.ID == "" {
		p.ID = id.GenerateULID("PTN")
	}
	if p.Status == "" {
		p.Status = domain.PartnerStatusPending
	}
	if p.Tier == "" {
		p.Tier = domain.PartnerTierBronze
	}

	query := `
		INSERT INTO partners (
			id, name, email, partner_code, tier, status,
			audience_size, industry, partner_type, image_url, user_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.PartnerCode,
		p.Tier,
		p.Status,
		p.AudienceSize,
		p.Industry,
		p.Type,
		p.ImageURL,
		p.UserID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if xerrors.IsUniqueViolation(err) {
			return fmt.Errorf("partner_code %q taken: %w", p.PartnerCode, xerrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetPartnerByID fetches a partner by id.
func (r *PartnerRepo) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	return r.getPartner(ctx, `SELECT`+partnerColumns+` FROM partners WHERE id = $1`, partnerID)
}

// GetPartnerByCode fetches a partner by referral code.
func (r *PartnerRepo) GetPartnerByCode(ctx context.Context, code string) (*domain.Partner, error) {
	return r.getPartner(ctx, `SELECT`+partnerColumns+` FROM partners WHERE partner_code = $1`, code)
}

// GetPartnerByUserID fetches the partner linked to an auth-subsystem account.
func (r *PartnerRepo) GetPartnerByUserID(ctx context.Context, userID string) (*domain.Partner, error) {
	return r.getPartner(ctx, `SELECT`+partnerColumns+` FROM partners WHERE user_id = $1`, userID)
}

func (r *PartnerRepo) getPartner(ctx context.Context, query string, arg string) (*domain.Partner, error) {
	var p domain.Partner
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PartnerCode,
		&p.Tier,
		&p.Status,
		&p.AudienceSize,
		&p.Industry,
		&p.Type,
		&p.ImageURL,
		&p.UserID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ApprovePartner flips a partner to active. The status guard and the write
// are a single conditional UPDATE, so two concurrent approvals of the same
// partner produce exactly one success; the loser sees ErrConflict.
func (r *PartnerRepo) ApprovePartner(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := `
		UPDATE partners
		SET status = 'active', updated_at = NOW()
		WHERE id = $1 AND status <> 'active'
		RETURNING` + partnerColumns

	var p domain.Partner
	err := r.db.QueryRow(ctx, query, partnerID).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PartnerCode,
		&p.Tier,
		&p.Status,
		&p.AudienceSize,
		&p.Industry,
		&p.Type,
		&p.ImageURL,
		&p.UserID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Zero rows: either the partner does not exist or it is already active.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM partners WHERE id = $1)`, partnerID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, xerrors.ErrNotFound
	}
	return nil, fmt.Errorf("partner %s already active: %w", partnerID, xerrors.ErrConflict)
}

// LinkUser records the auth account provisioned for a partner.
func (r *PartnerRepo) LinkUser(ctx context.Context, partnerID, userID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE partners SET user_id = $2, updated_at = NOW() WHERE id = $1`,
		partnerID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
