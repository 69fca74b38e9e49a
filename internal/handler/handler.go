package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"partner-program/internal/usecase"
	"partner-program/pkg/response"
	"partner-program/pkg/xerrors"

	"go.uber.org/zap"
)

type PartnerHandler struct {
	uc          *usecase.PartnerUsecase
	redirectURL string
	logger      *zap.Logger
}

func NewPartnerHandler(uc *usecase.PartnerUsecase, redirectURL string, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		uc:          uc,
		redirectURL: redirectURL,
		logger:      logger,
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(v)
}

// writeError translates usecase errors into the HTTP contract. Anything
// outside the known taxonomy is logged with full context and reported as a
// generic 500; internals never leak to the caller.
func (h *PartnerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := xerrors.AsValidation(err); ok {
		response.ValidationFailed(w, ve)
		return
	}

	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		response.Error(w, http.StatusNotFound, "partner not found")
	case errors.Is(err, xerrors.ErrConflict):
		response.Error(w, http.StatusBadRequest, "partner already active")
	case errors.Is(err, xerrors.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
