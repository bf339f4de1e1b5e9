package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminHazards interface {
	Create(ctx context.Context, req domain.CreateHazardRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AlertStats, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminHazards
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, admin AdminHazards, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminHazardCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHazardCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateHazardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
		return
	}

	l.Info("creating hazard",
		slog.String("type", string(req.Type)),
		slog.Int("severity", req.Severity),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	id, err := h.Admin.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminHazardList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHazardList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	hazards, total, err := h.Admin.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazards listed", slog.Int("count", len(hazards)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"hazards": hazards,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *Handler) AdminHazardGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHazardGet", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	hazard, err := h.Admin.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) AdminHazardUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHazardUpdate", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateHazardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
		return
	}

	if err := h.Admin.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminHazardDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHazardDelete", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Admin.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		l.Error("Stats.GetStats failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}
