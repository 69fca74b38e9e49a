package usecase

import (
	"context"
	"fmt"

	"partner-program/internal/domain"
	"partner-program/pkg/id"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost for provisioned temporary secrets.
const bcryptCost = 12

// Approve activates a pending partner, provisions a temporary login
// credential, and emails it to the partner. The store's conditional update
// is the concurrency boundary: of two racing approvals only one succeeds,
// the other gets ErrConflict. The approval email is blocking: if the
// partner never receives the credential they cannot log in, so a send
// failure is surfaced to the administrator.
func (uc *PartnerUsecase) Approve(ctx context.Context, partnerID string) (*domain.Partner, error) {
	p, err := uc.partners.ApprovePartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	tempPassword, err := uc.provisionCredential(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := uc.notifier.SendApprovalCredentials(ctx, p, tempPassword); err != nil {
		return nil, fmt.Errorf("send approval email: %w", err)
	}

	uc.logger.Info("partner approved",
		zap.String("partner_id", p.ID),
		zap.String("partner_code", p.PartnerCode))

	return p, nil
}

// provisionCredential issues a one-time secret for the partner's auth
// account, creating the account first when none is linked yet. The
// plaintext exists only long enough to be emailed; storage only ever sees
// the bcrypt hash.
func (uc *PartnerUsecase) provisionCredential(ctx context.Context, p *domain.Partner) (string, error) {
	tempPassword, err := id.GenerateTempPassword(id.TempPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash temporary secret: %w", err)
	}

	if p.UserID != nil {
		if err := uc.credentials.SetPasswordHash(ctx, *p.UserID, string(hash)); err != nil {
			return "", err
		}
		return tempPassword, nil
	}

	userID, err := uc.credentials.CreateUserWithCredential(ctx, p.Email, string(hash))
	if err != nil {
		return "", err
	}
	if err := uc.partners.LinkUser(ctx, p.ID, userID); err != nil {
		return "", fmt.Errorf("link auth account %s: %w", userID, err)
	}
	p.UserID = &userID

	return tempPassword, nil
}
