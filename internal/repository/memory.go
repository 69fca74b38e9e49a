package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"partner-program/internal/domain"
	"partner-program/pkg/id"
	"partner-program/pkg/xerrors"
)

// In-memory store implementations backing usecase and handler tests. They
// enforce the same invariants as the Postgres stores: partner_code
// uniqueness on insert and compare-and-set semantics on approval.

type MemoryPartnerStore struct {
	mu       sync.Mutex
	partners map[string]*domain.Partner
}

func NewMemoryPartnerStore() *MemoryPartnerStore {
	return &MemoryPartnerStore{partners: make(map[string]*domain.Partner)}
}

func (s *MemoryPartnerStore) CreatePartner(_ context.Context, p *domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.partners {
		if existing.PartnerCode == p.PartnerCode {
			return fmt.Errorf("partner_code %q taken: %w", p.PartnerCode, xerrors.ErrConflict)
		}
	}

	if p.ID == "" {
		p.ID = id.GenerateULID("PTN")
	}
	if p.Status == "" {
		p.Status = domain.PartnerStatusPending
	}
	if p.Tier == "" {
		p.Tier = domain.PartnerTierBronze
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := *p
	s.partners[p.ID] = &cp
	return nil
}

func (s *MemoryPartnerStore) GetPartnerByID(_ context.Context, partnerID string) (*domain.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.partners[partnerID]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryPartnerStore) GetPartnerByCode(_ context.Context, code string) (*domain.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.partners {
		if p.PartnerCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (s *MemoryPartnerStore) GetPartnerByUserID(_ context.Context, userID string) (*domain.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.partners {
		if p.UserID != nil && *p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

// ApprovePartner mirrors the SQL conditional update: the status check and
// the write happen under one lock, so concurrent approvals have exactly one
// winner.
func (s *MemoryPartnerStore) ApprovePartner(_ context.Context, partnerID string) (*domain.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.partners[partnerID]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	if p.Status == domain.PartnerStatusActive {
		return nil, fmt.Errorf("partner %s already active: %w", partnerID, xerrors.ErrConflict)
	}

	p.Status = domain.PartnerStatusActive
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

// All returns a snapshot of every stored partner, for assertions in tests.
func (s *MemoryPartnerStore) All() []*domain.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Partner, 0, len(s.partners))
	for _, p := range s.partners {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *MemoryPartnerStore) LinkUser(_ context.Context, partnerID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.partners[partnerID]
	if !ok {
		return xerrors.ErrNotFound
	}
	p.UserID = &userID
	p.UpdatedAt = time.Now()
	return nil
}

type MemoryReferralStore struct {
	mu        sync.Mutex
	referrals []*domain.Referral
}

func NewMemoryReferralStore() *MemoryReferralStore {
	return &MemoryReferralStore{}
}

func (s *MemoryReferralStore) CreateReferral(_ context.Context, ref *domain.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ref.ID == "" {
		ref.ID = id.GenerateULID("REF")
	}
	ref.CreatedAt = time.Now()
	cp := *ref
	s.referrals = append(s.referrals, &cp)
	return nil
}

func (s *MemoryReferralStore) StatsForPartner(_ context.Context, partnerID string) (*domain.ReferralStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stats domain.ReferralStats
	for _, ref := range s.referrals {
		if ref.PartnerID != partnerID {
			continue
		}
		stats.Total++
		switch ref.ReferralType {
		case domain.ReferralTypeClick:
			stats.Clicks++
		case domain.ReferralTypeSignup:
			stats.Signups++
		}
	}
	return &stats, nil
}

// All returns a snapshot of every stored referral, for assertions in tests.
func (s *MemoryReferralStore) All() []*domain.Referral {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Referral, 0, len(s.referrals))
	for _, ref := range s.referrals {
		cp := *ref
		out = append(out, &cp)
	}
	return out
}

type memoryCredential struct {
	email      string
	secretHash string
}

type MemoryCredentialStore struct {
	mu    sync.Mutex
	users map[string]*memoryCredential
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{users: make(map[string]*memoryCredential)}
}

func (s *MemoryCredentialStore) SetPasswordHash(_ context.Context, userID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("no password credential for user %s: %w", userID, xerrors.ErrProvisioning)
	}
	cred.secretHash = passwordHash
	return nil
}

func (s *MemoryCredentialStore) CreateUserWithCredential(_ context.Context, email, passwordHash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cred := range s.users {
		if cred.email == email {
			return "", fmt.Errorf("auth account for %s already exists: %w", email, xerrors.ErrProvisioning)
		}
	}
	userID := id.GenerateULID("USR")
	s.users[userID] = &memoryCredential{email: email, secretHash: passwordHash}
	return userID, nil
}

// PasswordHash returns the stored hash for assertions in tests.
func (s *MemoryCredentialStore) PasswordHash(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.users[userID]
	if !ok {
		return "", false
	}
	return cred.secretHash, true
}
