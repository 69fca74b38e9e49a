package usecase

import (
	"context"

	"partner-program/internal/domain"
	"partner-program/pkg/xerrors"
)

// Track records an attribution event against an active partner's code.
// Unknown codes and codes belonging to non-active partners both come back
// as ErrNotFound so external callers cannot probe partner status.
func (uc *PartnerUsecase) Track(ctx context.Context, code, refType, referredEmail string) (*domain.Referral, error) {
	ve := &xerrors.ValidationError{}
	if code == "" {
		ve.Add("partner_code", "is required")
	}
	if !domain.ValidReferralType(refType) {
		ve.Add("type", "must be click or signup")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	p, err := uc.partners.GetPartnerByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PartnerStatusActive {
		return nil, xerrors.ErrNotFound
	}

	ref := &domain.Referral{
		PartnerID:    p.ID,
		ReferralType: domain.ReferralType(refType),
	}
	// referred_email only carries meaning for signups.
	if ref.ReferralType == domain.ReferralTypeSignup && referredEmail != "" {
		ref.ReferredEmail = &referredEmail
	}

	if err := uc.referrals.CreateReferral(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// PartnerForUser resolves the caller's own partner record for the
// self-service endpoint.
func (uc *PartnerUsecase) PartnerForUser(ctx context.Context, userID string) (*domain.Partner, error) {
	return uc.partners.GetPartnerByUserID(ctx, userID)
}

// StatsForUser aggregates the caller's attributed events.
func (uc *PartnerUsecase) StatsForUser(ctx context.Context, userID string) (*domain.ReferralStats, error) {
	p, err := uc.partners.GetPartnerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.referrals.StatsForPartner(ctx, p.ID)
}
