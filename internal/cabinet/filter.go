package cabinet

import "strings"

// Matches reports whether d should be shown for a search query. An empty
// query matches every drawer; otherwise the trimmed query is matched
// case-insensitively as a substring of the name, the title or any keyword.
func Matches(d Drawer, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.name), q) || strings.Contains(strings.ToLower(d.title), q) {
		return true
	}
	for _, k := range d.keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

// Match pairs a drawer with its visibility for a query.
type Match struct {
	Drawer  Drawer
	Visible bool
}

// Highlight evaluates query against every drawer. The drawers are returned in
// the same order; non-matching ones are flagged, not removed.
func Highlight(drawers []Drawer, query string) []Match {
	out := make([]Match, len(drawers))
	for i, d := range drawers {
		out[i] = Match{Drawer: d, Visible: Matches(d, query)}
	}
	return out
}
