package usecase

import (
	"context"

	"partner-program/internal/domain"

	"go.uber.org/zap"
)

// PartnerStore persists partner records and enforces the partner_code
// uniqueness and status-transition invariants.
type PartnerStore interface {
	CreatePartner(ctx context.Context, p *domain.Partner) error
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)
	GetPartnerByCode(ctx context.Context, code string) (*domain.Partner, error)
	GetPartnerByUserID(ctx context.Context, userID string) (*domain.Partner, error)
	ApprovePartner(ctx context.Context, partnerID string) (*domain.Partner, error)
	LinkUser(ctx context.Context, partnerID, userID string) error
}

// ReferralStore persists append-only attribution events.
type ReferralStore interface {
	CreateReferral(ctx context.Context, ref *domain.Referral) error
	StatsForPartner(ctx context.Context, partnerID string) (*domain.ReferralStats, error)
}

// CredentialStore is the boundary to the auth subsystem's credential records.
type CredentialStore interface {
	SetPasswordHash(ctx context.Context, userID, passwordHash string) error
	CreateUserWithCredential(ctx context.Context, email, passwordHash string) (string, error)
}

// Notifier sends transactional email. Apply's confirmation is fire-and-forget;
// the approval email carrying the temporary credential is blocking.
type Notifier interface {
	SendApplicationReceived(ctx context.Context, p *domain.Partner) error
	SendApprovalCredentials(ctx context.Context, p *domain.Partner, tempPassword string) error
}

type PartnerUsecase struct {
	partners    PartnerStore
	referrals   ReferralStore
	credentials CredentialStore
	notifier    Notifier
	logger      *zap.Logger
}

func NewPartnerUsecase(
	partners PartnerStore,
	referrals ReferralStore,
	credentials CredentialStore,
	notifier Notifier,
	logger *zap.Logger,
) *PartnerUsecase {
	return &PartnerUsecase{
		partners:    partners,
		referrals:   referrals,
		credentials: credentials,
		notifier:    notifier,
		logger:      logger,
	}
}
