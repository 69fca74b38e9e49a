package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"partner-program/internal/domain"
	"partner-program/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func applyPartner(t *testing.T, env *testEnv) *domain.Partner {
	t.Helper()
	p, err := env.uc.Apply(context.Background(), validIntake())
	require.NoError(t, err)
	return p
}

func TestApprove_ActivatesAndProvisions(t *testing.T) {
	env := newTestEnv()
	p := applyPartner(t, env)

	approved, err := env.uc.Approve(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.PartnerStatusActive, approved.Status)
	require.NotNil(t, approved.UserID)

	// The stored credential is a bcrypt hash of the emailed plaintext.
	plaintext := env.notifier.lastPlaintext
	require.GreaterOrEqual(t, len(plaintext), 12)

	hash, ok := env.credentials.PasswordHash(*approved.UserID)
	require.True(t, ok)
	assert.NotEqual(t, plaintext, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)

	// The partner record now carries the auth link.
	stored, err := env.partners.GetPartnerByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, *approved.UserID, *stored.UserID)
}

func TestApprove_UnknownPartner(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Approve(context.Background(), "PTN_nope")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestApprove_AlreadyActiveIsConflict(t *testing.T) {
	env := newTestEnv()
	p := applyPartner(t, env)

	_, err := env.uc.Approve(context.Background(), p.ID)
	require.NoError(t, err)

	// Re-approving is rejected, not a no-op.
	_, err = env.uc.Approve(context.Background(), p.ID)
	assert.ErrorIs(t, err, xerrors.ErrConflict)
}

func TestApprove_ConcurrentDoubleApprove(t *testing.T) {
	// Two racing approvals must produce exactly one success and one
	// conflict; the status check and write are a single atomic operation.
	for i := 0; i < 20; i++ {
		env := newTestEnv()
		p := applyPartner(t, env)

		errs := make([]error, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		for j := 0; j < 2; j++ {
			go func(j int) {
				defer wg.Done()
				_, errs[j] = env.uc.Approve(context.Background(), p.ID)
			}(j)
		}
		wg.Wait()

		var successes, conflicts int
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, xerrors.ErrConflict):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, successes, "exactly one approval must win")
		require.Equal(t, 1, conflicts, "the loser must see a conflict")
	}
}

func TestApprove_ApprovalEmailFailureSurfaced(t *testing.T) {
	env := newTestEnv()
	env.notifier.failApproval = errors.New("smtp down")
	p := applyPartner(t, env)

	// Unlike the apply confirmation, losing this email means the partner has
	// no credential, so the failure must reach the administrator.
	_, err := env.uc.Approve(context.Background(), p.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, xerrors.ErrNotFound)
	assert.NotErrorIs(t, err, xerrors.ErrConflict)
}

func TestApprove_ProvisioningFailureWhenLinkedUserMissing(t *testing.T) {
	env := newTestEnv()
	p := applyPartner(t, env)

	// Simulate a partner already linked to an auth account that has no
	// password credential.
	ghost := "USR_ghost"
	require.NoError(t, env.partners.LinkUser(context.Background(), p.ID, ghost))

	_, err := env.uc.Approve(context.Background(), p.ID)
	assert.ErrorIs(t, err, xerrors.ErrProvisioning)
}
