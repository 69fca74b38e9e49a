package usecase

import (
	"context"
	"errors"
	"fmt"

	"partner-program/internal/domain"
	"partner-program/pkg/id"
	"partner-program/pkg/xerrors"

	"go.uber.org/zap"
)

// codeRetries bounds regeneration attempts when a freshly generated
// partner_code collides with an existing one.
const codeRetries = 5

// Apply validates an application and inserts a pending partner. The insert
// is the sole unit of work; the confirmation email is sent on a detached
// goroutine and its failure is logged, never surfaced.
func (uc *PartnerUsecase) Apply(ctx context.Context, in *domain.PartnerIntake) (*domain.Partner, error) {
	if ve := ValidateIntake(in); ve != nil {
		return nil, ve
	}

	p := &domain.Partner{
		Name:         in.FullName,
		Email:        in.Email,
		Industry:     in.Industry,
		Type:         domain.PartnerType(in.PartnerType),
		AudienceSize: in.AudienceSize,
		Status:       domain.PartnerStatusPending,
		Tier:         domain.PartnerTierBronze,
	}
	if in.ImageURL != "" {
		p.ImageURL = &in.ImageURL
	}

	// The code's randomness lives in a 4-character suffix, so the store's
	// unique index is the real guarantee: regenerate and retry on collision.
	var err error
	for attempt := 0; attempt < codeRetries; attempt++ {
		p.PartnerCode = id.GeneratePartnerCode(in.Company)
		err = uc.partners.CreatePartner(ctx, p)
		if err == nil {
			break
		}
		if !errors.Is(err, xerrors.ErrConflict) {
			return nil, err
		}
	}
	if err != nil {
		// Only a collision survives the loop. That many straight collisions
		// is a generation problem, not a caller conflict.
		return nil, fmt.Errorf("exhausted %d partner code attempts: %w", codeRetries, xerrors.ErrInternalServer)
	}

	go func(p domain.Partner) {
		if err := uc.notifier.SendApplicationReceived(context.Background(), &p); err != nil {
			uc.logger.Warn("application-received email failed",
				zap.String("partner_id", p.ID),
				zap.String("email", p.Email),
				zap.Error(err))
		}
	}(*p)

	return p, nil
}
