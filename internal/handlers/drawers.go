package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"drawer-cabinet/internal/api"
	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/contextutil"
	"drawer-cabinet/internal/service"
)

// DrawersHandler serves the full drawer collection.
type DrawersHandler struct {
	layout service.LayoutService
}

// NewDrawersHandler creates a new DrawersHandler.
func NewDrawersHandler(layout service.LayoutService) *DrawersHandler {
	return &DrawersHandler{layout: layout}
}

// ServeHTTP lists drawers on GET and replaces the whole layout on PUT.
func (h *DrawersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		writeJSON(ctx, w, http.StatusOK, api.FromDrawers(h.layout.List(ctx)))
	case http.MethodPut:
		var body []api.DrawerJSON
		if err := decodeJSON(r, &body); err != nil {
			getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		records := make([]cabinet.Record, 0, len(body))
		for _, d := range body {
			rec, err := d.Record()
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			records = append(records, rec)
		}

		count, err := h.layout.ReplaceAll(ctx, records)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to save drawers")
			return
		}
		writeJSON(ctx, w, http.StatusOK, api.ReplaceResponse{Success: true, Count: count})
	default:
		methodNotAllowed(ctx, w, r)
	}
}

// DrawerHandler serves a single drawer addressed by the {id} URL parameter.
type DrawerHandler struct {
	layout service.LayoutService
}

// NewDrawerHandler creates a new DrawerHandler.
func NewDrawerHandler(layout service.LayoutService) *DrawerHandler {
	return &DrawerHandler{layout: layout}
}

// ServeHTTP returns the drawer and the sizes it accepts on GET and updates
// its label on PUT.
func (h *DrawerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(chi.URLParam(r, "id"))
	ctx := contextutil.WithAttrs(r.Context(), "drawer_id", id)

	switch r.Method {
	case http.MethodGet:
		d, err := h.layout.Get(ctx, id)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to load drawer")
			return
		}
		sizes, err := h.layout.AllowedSizes(ctx, id)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to load drawer")
			return
		}
		writeJSON(ctx, w, http.StatusOK, api.DrawerDetail{
			DrawerJSON:   api.FromDrawer(d),
			AllowedSizes: api.SizeNames(sizes),
		})
	case http.MethodPut:
		var req api.LabelRequest
		if err := decodeJSON(r, &req); err != nil {
			getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		current, err := h.layout.Get(ctx, id)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to load drawer")
			return
		}
		name := current.Name()
		if req.Name != nil {
			name = *req.Name
		}
		keywords := current.Keywords()
		if req.Keywords != nil {
			keywords = req.Keywords
		}

		d, err := h.layout.UpdateLabel(ctx, id, name, keywords)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to update drawer")
			return
		}
		writeJSON(ctx, w, http.StatusOK, api.FromDrawer(d))
	default:
		methodNotAllowed(ctx, w, r)
	}
}

// ResizeHandler resizes the drawer addressed by the {id} URL parameter.
type ResizeHandler struct {
	layout service.LayoutService
}

// NewResizeHandler creates a new ResizeHandler.
func NewResizeHandler(layout service.LayoutService) *ResizeHandler {
	return &ResizeHandler{layout: layout}
}

// ServeHTTP applies a resize. Refused resizes answer 409 and leave the
// layout untouched.
func (h *ResizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodPost {
		methodNotAllowed(ctx, w, r)
		return
	}

	var req api.ResizeRequest
	if err := decodeJSON(r, &req); err != nil {
		getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	size, err := cabinet.ParseSize(req.Size)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := strings.ToUpper(chi.URLParam(r, "id"))
	ctx = contextutil.WithAttrs(ctx, "drawer_id", id)
	result, err := h.layout.Resize(ctx, id, size)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to resize drawer")
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.ResizeResponse{
		Outcome: result.Outcome.String(),
		Drawer:  api.FromDrawer(result.Resized),
		Removed: nonNil(result.Removed),
		Created: nonNil(result.Created),
		Row:     api.FromDrawers(result.Row),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
