package handler

import (
	"net/http"

	"partner-program/internal/domain"
	"partner-program/pkg/middleware"
	"partner-program/pkg/response"

	"go.uber.org/zap"
)

// Apply receives a partner application from the marketing site.
func (h *PartnerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var in domain.PartnerIntake
	if err := decodeJSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.uc.Apply(r.Context(), &in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info("partner application received",
		zap.String("partner_id", p.ID),
		zap.String("partner_code", p.PartnerCode))

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"redirect": h.redirectURL,
	})
}

// Approve activates a partner and provisions their login credential.
// Admin-only; the RequireAdmin middleware guards the route.
func (h *PartnerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PartnerID string `json:"partner_id"`
	}
	if err := decodeJSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.PartnerID == "" {
		response.Error(w, http.StatusBadRequest, "partner_id is required")
		return
	}

	if _, err := h.uc.Approve(r.Context(), in.PartnerID); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me returns the caller's own partner record.
func (h *PartnerHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "missing or invalid user ID")
		return
	}

	p, err := h.uc.PartnerForUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"partner": p})
}

// MeReferrals returns the caller's attribution counts.
func (h *PartnerHandler) MeReferrals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "missing or invalid user ID")
		return
	}

	stats, err := h.uc.StatsForUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

// Track records a click or signup attributed to a partner code.
func (h *PartnerHandler) Track(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PartnerCode   string `json:"partner_code"`
		Type          string `json:"type"`
		ReferredEmail string `json:"referred_email,omitempty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.uc.Track(r.Context(), in.PartnerCode, in.Type, in.ReferredEmail); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
