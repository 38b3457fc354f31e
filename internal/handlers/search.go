package handlers

import (
	"net/http"
	"time"

	"drawer-cabinet/internal/api"
	"drawer-cabinet/internal/service"
)

// SearchHandler filters drawers by name, title and keywords.
type SearchHandler struct {
	layout service.LayoutService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(layout service.LayoutService) *SearchHandler {
	return &SearchHandler{layout: layout}
}

// ServeHTTP evaluates the q query parameter against every drawer.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		methodNotAllowed(ctx, w, r)
		return
	}

	query := r.URL.Query().Get("q")
	matches := h.layout.Search(ctx, query)

	resp := api.SearchResponse{
		Query:   query,
		Drawers: make([]api.SearchResult, len(matches)),
	}
	for i, m := range matches {
		resp.Drawers[i] = api.SearchResult{DrawerJSON: api.FromDrawer(m.Drawer), Visible: m.Visible}
		if m.Visible {
			resp.Matches++
		}
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// StatsHandler reports drawer counts.
type StatsHandler struct {
	layout service.LayoutService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(layout service.LayoutService) *StatsHandler {
	return &StatsHandler{layout: layout}
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		methodNotAllowed(ctx, w, r)
		return
	}

	stats := h.layout.Stats(ctx)
	resp := api.StatsResponse{
		Summary:     stats.Summary,
		SavePending: stats.Save.Pending,
	}
	if !stats.Save.LastSavedAt.IsZero() {
		ts := stats.Save.LastSavedAt.UTC().Format(time.RFC3339)
		resp.LastSavedAt = &ts
	}
	if stats.Save.LastError != nil {
		msg := stats.Save.LastError.Error()
		resp.LastError = &msg
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}
