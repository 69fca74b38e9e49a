package domain

import "time"

type PartnerStatus string

const (
	PartnerStatusPending   PartnerStatus = "pending"
	PartnerStatusActive    PartnerStatus = "active"
	PartnerStatusInactive  PartnerStatus = "inactive"
	PartnerStatusSuspended PartnerStatus = "suspended"
)

type PartnerTier string

const (
	PartnerTierBronze   PartnerTier = "bronze"
	PartnerTierSilver   PartnerTier = "silver"
	PartnerTierGold     PartnerTier = "gold"
	PartnerTierPlatinum PartnerTier = "platinum"
)

// PartnerType classifies the applying entity at intake.
type PartnerType string

const (
	PartnerTypeIndividual   PartnerType = "Individual"
	PartnerTypeOrganization PartnerType = "Organization"
	PartnerTypeGovernment   PartnerType = "Government Agency"
)

// ValidPartnerTypes is the closed set accepted at intake.
var ValidPartnerTypes = []PartnerType{
	PartnerTypeIndividual,
	PartnerTypeOrganization,
	PartnerTypeGovernment,
}

type Partner struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	PartnerCode string        `json:"partner_code"`
	Tier        PartnerTier   `json:"tier"`
	Status      PartnerStatus `json:"status"`

	AudienceSize *int        `json:"audience_size,omitempty"`
	Industry     string      `json:"industry"`
	Type         PartnerType `json:"type"`
	ImageURL     *string     `json:"image_url,omitempty"`

	// UserID links the partner to the auth subsystem's account once a login
	// credential has been provisioned.
	UserID *string `json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartnerIntake is the validated application payload.
type PartnerIntake struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Industry     string `json:"industry"`
	PartnerType  string `json:"partnerType"`
	AudienceSize *int   `json:"audienceSize,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Message      string `json:"message,omitempty"`
}
