package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/service"
	"drawer-cabinet/internal/service/mocks"
	"drawer-cabinet/internal/storage"
	storemocks "drawer-cabinet/internal/storage/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockLayoutService, *mocks.MockPrintService, *storemocks.MockDrawerStore) {
	t.Helper()
	ctrl := gomock.NewController(t)

	layout := mocks.NewMockLayoutService(ctrl)
	printing := mocks.NewMockPrintService(ctrl)
	store := storemocks.NewMockDrawerStore(ctrl)

	router := NewRouter(&Deps{
		Layout:   layout,
		Printing: printing,
		Store:    store,
	})
	return router, layout, printing, store
}

func TestNewRouter(t *testing.T) {
	router, _, _, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(*mocks.MockLayoutService, *mocks.MockPrintService, *storemocks.MockDrawerStore)
		wantStatus int
	}{
		{
			name:   "GET root serves the cabinet page",
			method: http.MethodGet,
			path:   "/",
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				l.EXPECT().Search(gomock.Any(), "").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/drawers",
			method: http.MethodGet,
			path:   "/api/drawers",
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				l.EXPECT().List(gomock.Any()).Return(cabinet.DefaultGrid().Flatten())
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "PUT /api/drawers exists",
			method:     http.MethodPut,
			path:       "/api/drawers",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "DELETE /api/drawers method not allowed",
			method:     http.MethodDelete,
			path:       "/api/drawers",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "GET /api/drawers/{id} passes the id",
			method: http.MethodGet,
			path:   "/api/drawers/B7",
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				d, _ := cabinet.NewDrawer("B", 7, cabinet.Small)
				l.EXPECT().Get(gomock.Any(), "B7").Return(d, nil)
				l.EXPECT().AllowedSizes(gomock.Any(), "B7").Return([]cabinet.Size{cabinet.Small, cabinet.Medium}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /api/drawers/{id}/resize",
			method: http.MethodPost,
			path:   "/api/drawers/A9/resize",
			body:   `{"size":"MEDIUM"}`,
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				l.EXPECT().Resize(gomock.Any(), "A9", cabinet.Medium).
					Return(cabinet.ResizeResult{Outcome: cabinet.Rejected}, service.ErrRejected)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "GET /api/search",
			method: http.MethodGet,
			path:   "/api/search?q=m3",
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				l.EXPECT().Search(gomock.Any(), "m3").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/stats",
			method: http.MethodGet,
			path:   "/api/stats",
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				l.EXPECT().Stats(gomock.Any()).Return(service.LayoutStats{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/printer",
			method: http.MethodGet,
			path:   "/api/printer",
			setup: func(_ *mocks.MockLayoutService, p *mocks.MockPrintService, _ *storemocks.MockDrawerStore) {
				p.EXPECT().GetConfig(gomock.Any()).Return(storageDefaults(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/print method not allowed",
			method:     http.MethodGet,
			path:       "/api/print",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "GET /api/health",
			method: http.MethodGet,
			path:   "/api/health",
			setup: func(l *mocks.MockLayoutService, _ *mocks.MockPrintService, s *storemocks.MockDrawerStore) {
				s.EXPECT().Ping(gomock.Any()).Return(nil)
				l.EXPECT().SaveStatus().Return(service.SaveStatus{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, layout, printing, store := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(layout, printing, store)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/drawers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Check CORS headers are present
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
}

func storageDefaults() storage.PrinterConfig {
	return storage.PrinterConfig{VirtualPrinting: true}
}
