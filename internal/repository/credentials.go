package repository

import (
	"context"
	"fmt"

	"partner-program/pkg/id"
	"partner-program/pkg/xerrors"
)

// credentialTypePassword scopes writes to the password-login credential;
// other credential types (OAuth, API keys) belong to the auth subsystem.
const credentialTypePassword = "password"

// SetPasswordHash writes a new password hash for an existing auth account.
// Only the hash crosses this boundary; the plaintext never reaches storage.
// Returns ErrProvisioning when no password credential exists for userID.
func (r *CredentialRepo) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	query := `
		UPDATE user_credentials
		SET secret_hash = $2, must_change = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND credential_type = $3
	`

	tag, err := r.db.Exec(ctx, query, userID, passwordHash, credentialTypePassword)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no password credential for user %s: %w", userID, xerrors.ErrProvisioning)
	}
	return nil
}

// CreateUserWithCredential creates an auth account plus its password
// credential in one transaction and returns the new user id. Used when an
// approved partner has no linked account yet.
func (r *CredentialRepo) CreateUserWithCredential(ctx context.Context, email, passwordHash string) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	userID := id.GenerateULID("USR")

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, created_at, updated_at) VALUES ($1, $2, NOW(), NOW())`,
		userID, email)
	if err != nil {
		if xerrors.IsUniqueViolation(err) {
			return "", fmt.Errorf("auth account for %s already exists: %w", email, xerrors.ErrProvisioning)
		}
		return "", err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO user_credentials (user_id, credential_type, secret_hash, must_change, created_at, updated_at)
		 VALUES ($1, $2, $3, TRUE, NOW(), NOW())`,
		userID, credentialTypePassword, passwordHash)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return userID, nil
}
