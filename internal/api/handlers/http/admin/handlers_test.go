package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/DevFrancisLab/saferoute/internal/api/handlers/http/admin"
	mock_admin "github.com/DevFrancisLab/saferoute/internal/api/handlers/http/admin/mocks"
	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(t *testing.T) (*admin.Handler, *mock_admin.MockAdminHazards, *mock_admin.MockStatsGetter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	hazards := mock_admin.NewMockAdminHazards(ctrl)
	stats := mock_admin.NewMockStatsGetter(ctrl)
	return admin.NewHandler(newTestLogger(), hazards, stats), hazards, stats
}

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminHazardCreate_OK(t *testing.T) {
	t.Parallel()

	h, hazards, _ := newHandler(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	reqBody := `{"type":"ACCIDENT","severity":4,"lat":-1.2921,"lng":36.8219}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hazards", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	hazards.EXPECT().
		Create(gomock.Any(), domain.CreateHazardRequest{
			Type:     domain.HazardAccident,
			Severity: 4,
			Lat:      -1.2921,
			Lng:      36.8219,
		}).
		Return(id, nil).
		Times(1)

	h.AdminHazardCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != id.String() {
		t.Fatalf("unexpected id: %q", resp["id"])
	}
}

func TestAdminHazardCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hazards", bytes.NewBufferString("{nope"))
	rr := httptest.NewRecorder()

	h.AdminHazardCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAdminHazardCreate_ValidationFailure_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown type", body: `{"type":"FLOOD","severity":3,"lat":-1.29,"lng":36.82}`},
		{name: "severity out of range", body: `{"type":"ACCIDENT","severity":7,"lat":-1.29,"lng":36.82}`},
		{name: "lat out of range", body: `{"type":"ACCIDENT","severity":3,"lat":123.0,"lng":36.82}`},
		{name: "lng out of range", body: `{"type":"ACCIDENT","severity":3,"lat":-1.29,"lng":-190.0}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hazards", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			h.AdminHazardCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAdminHazardList_CapsLimit(t *testing.T) {
	t.Parallel()

	h, hazards, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/hazards?page=2&limit=500", nil)
	rr := httptest.NewRecorder()

	hazards.EXPECT().
		List(gomock.Any(), 2, 100).
		Return([]*domain.Hazard{}, int64(0), nil).
		Times(1)

	h.AdminHazardList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminHazardGet_OK(t *testing.T) {
	t.Parallel()

	h, hazards, _ := newHandler(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	want := &domain.Hazard{ID: id, Type: domain.HazardBlackspot, Severity: 4, Lat: -1.29, Lng: 36.82}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/hazards/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()

	hazards.EXPECT().Get(gomock.Any(), id).Return(want, nil).Times(1)

	h.AdminHazardGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.Hazard
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != id || got.Type != domain.HazardBlackspot {
		t.Fatalf("unexpected hazard: %+v", got)
	}
}

func TestAdminHazardGet_BadID_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/hazards/nope", nil), "id", "nope")
	rr := httptest.NewRecorder()

	h.AdminHazardGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAdminHazardGet_NotFound_404(t *testing.T) {
	t.Parallel()

	h, hazards, _ := newHandler(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/hazards/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()

	hazards.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	h.AdminHazardGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminHazardUpdate_OK_204(t *testing.T) {
	t.Parallel()

	h, hazards, _ := newHandler(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	reqBody := `{"severity":5}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/admin/hazards/"+id.String(), bytes.NewBufferString(reqBody)), "id", id.String())
	rr := httptest.NewRecorder()

	hazards.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req domain.UpdateHazardRequest) error {
			if req.Severity == nil || *req.Severity != 5 {
				t.Fatalf("severity not decoded: %+v", req)
			}
			if req.Type != nil || req.Lat != nil {
				t.Fatalf("absent fields should stay nil: %+v", req)
			}
			return nil
		}).
		Times(1)

	h.AdminHazardUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminHazardDelete_OK_204(t *testing.T) {
	t.Parallel()

	h, hazards, _ := newHandler(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/hazards/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()

	hazards.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	h.AdminHazardDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	h, _, stats := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=120", nil)
	rr := httptest.NewRecorder()

	stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 120}).
		Return(&domain.AlertStats{DriverCount: 3, AlertCount: 9, Minutes: 120}, nil).
		Times(1)

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.AlertStats
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.DriverCount != 3 || got.AlertCount != 9 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestAdminStats_InvalidMinutes_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	for _, q := range []string{"minutes=0", "minutes=1441", "minutes=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?"+q, nil)
		rr := httptest.NewRecorder()

		h.AdminStats(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d got %d", q, http.StatusBadRequest, rr.Code)
		}
	}
}
