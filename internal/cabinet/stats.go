package cabinet

// Summary counts drawers in a layout.
type Summary struct {
	// Drawers is the total number of drawer records.
	Drawers int `json:"drawers"`
	// Named is the number of drawers with a user-set name.
	Named int `json:"named"`
	// WithKeywords is the number of drawers carrying at least one keyword.
	WithKeywords int `json:"with_keywords"`
	// Left and Right count drawers per size in each section.
	Left  map[Size]int `json:"left"`
	Right map[Size]int `json:"right"`
}

// Summarize computes a Summary over drawers.
func Summarize(drawers []Drawer) Summary {
	s := Summary{
		Left:  map[Size]int{Small: 0, Medium: 0, Large: 0},
		Right: map[Size]int{Small: 0, Medium: 0, Large: 0},
	}
	for _, d := range drawers {
		s.Drawers++
		if d.name != "" {
			s.Named++
		}
		if len(d.keywords) > 0 {
			s.WithKeywords++
		}
		if d.IsRightSection() {
			s.Right[d.size]++
		} else {
			s.Left[d.size]++
		}
	}
	return s
}
