package domain

import "time"

type ReferralType string

const (
	ReferralTypeClick  ReferralType = "click"
	ReferralTypeSignup ReferralType = "signup"
)

// ValidReferralType reports whether t is one of the accepted event types.
func ValidReferralType(t string) bool {
	return ReferralType(t) == ReferralTypeClick || ReferralType(t) == ReferralTypeSignup
}

// Referral is an append-only attribution event. Rows are never updated or
// deleted within this service.
type Referral struct {
	ID            string       `json:"id"`
	PartnerID     string       `json:"partner_id"`
	ReferralType  ReferralType `json:"referral_type"`
	ReferredEmail *string      `json:"referred_email,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ReferralStats summarizes a partner's attributed events.
type ReferralStats struct {
	Clicks  int64 `json:"clicks"`
	Signups int64 `json:"signups"`
	Total   int64 `json:"total"`
}
