package usecase

import (
	"net/mail"
	"net/url"
	"unicode/utf8"

	"partner-program/internal/domain"
	"partner-program/pkg/xerrors"
)

// ValidateIntake checks a partner application and collects every field
// failure, so the marketing site can show all of them at once. Returns nil
// when the intake is acceptable.
func ValidateIntake(in *domain.PartnerIntake) *xerrors.ValidationError {
	ve := &xerrors.ValidationError{}

	// Length bounds count runes, not bytes, so multibyte names get the
	// full advertised range.
	if l := utf8.RuneCountInString(in.FullName); l < 1 || l > 200 {
		ve.Add("fullName", "must be 1-200 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		ve.Add("email", "must be a valid email address")
	}
	if l := utf8.RuneCountInString(in.Company); l < 1 || l > 200 {
		ve.Add("company", "must be 1-200 characters")
	}
	if l := utf8.RuneCountInString(in.Industry); l < 1 || l > 100 {
		ve.Add("industry", "must be 1-100 characters")
	}
	if !validPartnerType(in.PartnerType) {
		ve.Add("partnerType", "must be one of Individual, Organization, Government Agency")
	}
	if in.AudienceSize != nil && *in.AudienceSize <= 0 {
		ve.Add("audienceSize", "must be a positive integer")
	}
	if in.ImageURL != "" && !validURL(in.ImageURL) {
		ve.Add("imageUrl", "must be a valid http(s) URL")
	}
	if utf8.RuneCountInString(in.Message) > 1000 {
		ve.Add("message", "must be at most 1000 characters")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validPartnerType(t string) bool {
	for _, valid := range domain.ValidPartnerTypes {
		if domain.PartnerType(t) == valid {
			return true
		}
	}
	return false
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
