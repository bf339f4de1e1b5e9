package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertChecker interface {
	ProcessLocation(ctx context.Context, req domain.AlertCheckRequest) (domain.AlertResult, error)
}

type Handler struct {
	logger       *slog.Logger
	AlertChecker AlertChecker
}

func NewHandler(logger *slog.Logger, alertChecker AlertChecker) *Handler {
	return &Handler{
		logger:       logger,
		AlertChecker: alertChecker,
	}
}

func (h *Handler) AlertCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.AlertCheckRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// trailing garbage after the first JSON object is rejected too
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.log(r).Warn("alert check validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	result, err := h.AlertChecker.ProcessLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
