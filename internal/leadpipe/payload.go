package leadpipe

import (
	"encoding/json"
	"strings"
)

// Lead is the normalized form of an inbound lead event.
type Lead struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Page    string `json:"page"`
}

// placeholder fills fields the sender omitted.
const placeholder = "unknown"

// ParseLead maps a loosely-typed lead payload onto Lead. Leadpipe tenants
// configure their own form field names, so each field is resolved with a
// fixed precedence order:
//
//	name:    name > full_name > first_name (+ " " + last_name)
//	email:   email > email_address > contact_email
//	company: company > company_name > organization
//	page:    page > page_url > source
//
// Missing or blank fields default to "unknown". Only a malformed JSON body
// returns an error.
func ParseLead(rawBody []byte) (Lead, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rawBody, &raw); err != nil {
		return Lead{}, err
	}

	name := firstString(raw, "name", "full_name")
	if name == "" {
		first := firstString(raw, "first_name")
		last := firstString(raw, "last_name")
		name = strings.TrimSpace(first + " " + last)
	}

	return Lead{
		Name:    orPlaceholder(name),
		Email:   orPlaceholder(firstString(raw, "email", "email_address", "contact_email")),
		Company: orPlaceholder(firstString(raw, "company", "company_name", "organization")),
		Page:    orPlaceholder(firstString(raw, "page", "page_url", "source")),
	}, nil
}

// firstString returns the first key present in raw that decodes to a
// non-blank string. Non-string values are skipped.
func firstString(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
