package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/cabinet.html"))

type cellView struct {
	ID       string
	Text     string
	Title    string
	Size     string
	Keywords []string
	Width    int
	Gap      int
	Dimmed   bool
}

type rowView struct {
	Label string
	Left  []cellView
	Right []cellView
}

type pageView struct {
	Query   string
	Matches int
	Total   int
	Rows    []rowView
}

// PageHandler renders the cabinet as an HTML page. The q query parameter
// dims drawers that do not match.
type PageHandler struct {
	layout service.LayoutService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(layout service.LayoutService) *PageHandler {
	return &PageHandler{layout: layout}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		methodNotAllowed(ctx, w, r)
		return
	}

	query := r.URL.Query().Get("q")
	view := buildPageView(query, h.layout.Search(ctx, query))

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		getLogger(ctx).ErrorContext(ctx, "failed to render page", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func buildPageView(query string, matches []cabinet.Match) pageView {
	view := pageView{Query: query, Total: len(matches)}
	byRow := make(map[string]*rowView)
	for _, label := range cabinet.Rows() {
		view.Rows = append(view.Rows, rowView{Label: label})
	}
	for i := range view.Rows {
		byRow[view.Rows[i].Label] = &view.Rows[i]
	}

	for _, m := range matches {
		d := m.Drawer
		row, ok := byRow[d.Row()]
		if !ok {
			continue
		}
		if m.Visible {
			view.Matches++
		}
		// A drawer's trailing spacing is carved out of its span so sections
		// stay aligned.
		width := cabinet.LeftCellWidth
		if d.IsRightSection() {
			width = cabinet.RightCellWidth
		}
		cell := cellView{
			ID:       d.ID(),
			Text:     d.DisplayText(),
			Title:    d.Title(),
			Size:     string(d.Size()),
			Keywords: d.Keywords(),
			Width:    width*len(d.Positions()) - d.Spacing(),
			Gap:      d.Spacing(),
			Dimmed:   !m.Visible,
		}
		if d.IsRightSection() {
			row.Right = append(row.Right, cell)
		} else {
			row.Left = append(row.Left, cell)
		}
	}
	return view
}
