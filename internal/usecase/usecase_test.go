package usecase

import (
	"context"
	"sync"

	"partner-program/internal/domain"
	"partner-program/internal/repository"

	"go.uber.org/zap"
)

// fakeNotifier records sends and can be told to fail either email.
type fakeNotifier struct {
	mu sync.Mutex

	receivedCalls  []string // partner IDs, application-received sends
	approvalCalls  []string // partner IDs, approval-credential sends
	lastPlaintext  string
	failReceived   error
	failApproval   error
	receivedSignal chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{receivedSignal: make(chan struct{}, 8)}
}

func (f *fakeNotifier) SendApplicationReceived(_ context.Context, p *domain.Partner) error {
	f.mu.Lock()
	f.receivedCalls = append(f.receivedCalls, p.ID)
	err := f.failReceived
	f.mu.Unlock()
	f.receivedSignal <- struct{}{}
	return err
}

func (f *fakeNotifier) SendApprovalCredentials(_ context.Context, p *domain.Partner, tempPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approvalCalls = append(f.approvalCalls, p.ID)
	f.lastPlaintext = tempPassword
	return f.failApproval
}

type testEnv struct {
	uc          *PartnerUsecase
	partners    *repository.MemoryPartnerStore
	referrals   *repository.MemoryReferralStore
	credentials *repository.MemoryCredentialStore
	notifier    *fakeNotifier
}

func newTestEnv() *testEnv {
	partners := repository.NewMemoryPartnerStore()
	referrals := repository.NewMemoryReferralStore()
	credentials := repository.NewMemoryCredentialStore()
	notifier := newFakeNotifier()

	return &testEnv{
		uc:          NewPartnerUsecase(partners, referrals, credentials, notifier, zap.NewNop()),
		partners:    partners,
		referrals:   referrals,
		credentials: credentials,
		notifier:    notifier,
	}
}

func validIntake() *domain.PartnerIntake {
	return &domain.PartnerIntake{
		FullName:    "Jane Doe",
		Email:       "jane@x.com",
		Company:     "Acme Corp!!",
		Industry:    "SaaS",
		PartnerType: "Organization",
		ImageURL:    "https://x.com/a.png",
	}
}
