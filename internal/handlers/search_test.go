package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/mock/gomock"

	"drawer-cabinet/internal/api"
	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/service"
	"drawer-cabinet/internal/service/mocks"
)

func TestSearchHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drawers := []cabinet.Drawer{
		mustDrawer(t, "A", 1, cabinet.Small).WithName("Resistors"),
		mustDrawer(t, "A", 2, cabinet.Small).WithKeywords([]string{"caps"}),
	}

	layout := mocks.NewMockLayoutService(ctrl)
	layout.EXPECT().
		Search(gomock.Any(), "resist").
		Return(cabinet.Highlight(drawers, "resist"))

	w := httptest.NewRecorder()
	NewSearchHandler(layout).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=resist", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp api.SearchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if resp.Query != "resist" || resp.Matches != 1 || len(resp.Drawers) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	if !resp.Drawers[0].Visible || resp.Drawers[1].Visible {
		t.Errorf("visibility = %v %v, want true false", resp.Drawers[0].Visible, resp.Drawers[1].Visible)
	}
	if resp.Drawers[0].ID != "A1" {
		t.Errorf("first drawer = %s, want A1", resp.Drawers[0].ID)
	}
}

func TestSearchHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	NewSearchHandler(mocks.NewMockLayoutService(ctrl)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/search", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestStatsHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	savedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		save      service.SaveStatus
		wantSaved bool
		wantError bool
	}{
		{"never saved", service.SaveStatus{}, false, false},
		{"saved", service.SaveStatus{LastSavedAt: savedAt}, true, false},
		{"save failed", service.SaveStatus{LastSavedAt: savedAt, LastError: errors.New("locked"), Pending: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := mocks.NewMockLayoutService(ctrl)
			layout.EXPECT().Stats(gomock.Any()).Return(service.LayoutStats{
				Summary: cabinet.Summarize(cabinet.DefaultGrid().Flatten()),
				Save:    tt.save,
			})

			w := httptest.NewRecorder()
			NewStatsHandler(layout).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var resp api.StatsResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if resp.Drawers != cabinet.RowCount*cabinet.ColumnCount {
				t.Errorf("drawers = %d", resp.Drawers)
			}
			if (resp.LastSavedAt != nil) != tt.wantSaved {
				t.Errorf("last_saved_at = %v, want set=%v", resp.LastSavedAt, tt.wantSaved)
			}
			if (resp.LastError != nil) != tt.wantError {
				t.Errorf("last_error = %v, want set=%v", resp.LastError, tt.wantError)
			}
			if resp.SavePending != tt.save.Pending {
				t.Errorf("save_pending = %v, want %v", resp.SavePending, tt.save.Pending)
			}
		})
	}
}
