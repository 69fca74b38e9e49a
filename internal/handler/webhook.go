package handler

import (
	"context"
	"io"
	"net/http"

	"partner-program/internal/leadpipe"
	"partner-program/internal/notifier"
	"partner-program/pkg/response"

	"go.uber.org/zap"
)

// maxWebhookBody bounds inbound lead payloads.
const maxWebhookBody = 1 << 20

// WebhookHandler receives lead events from Leadpipe.
type WebhookHandler struct {
	secret string
	chat   *notifier.ChatNotifier
	logger *zap.Logger
}

func NewWebhookHandler(secret string, chat *notifier.ChatNotifier, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret: secret,
		chat:   chat,
		logger: logger,
	}
}

// Leadpipe verifies the HMAC signature over the raw body before any parsing
// or side effect. The chat forward runs detached: Leadpipe must not retry
// deliveries because our chat channel is down.
func (h *WebhookHandler) Leadpipe(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.logger.Error("failed to read webhook body", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !leadpipe.VerifySignature(rawBody, r.Header.Get(leadpipe.SignatureHeader), h.secret) {
		h.logger.Warn("rejected webhook with bad signature",
			zap.Int("body_bytes", len(rawBody)))
		response.Error(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	lead, err := leadpipe.ParseLead(rawBody)
	if err != nil {
		h.logger.Error("malformed lead payload", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	go func(lead leadpipe.Lead) {
		if err := h.chat.PostLead(context.Background(), lead); err != nil {
			h.logger.Warn("lead chat forward failed",
				zap.String("lead_email", lead.Email),
				zap.Error(err))
		}
	}(lead)

	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
