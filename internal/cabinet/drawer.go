package cabinet

import (
	"fmt"
	"slices"
	"strings"
)

// Pixel widths of a single cell in each section. Drawers narrower than their
// slot get a trailing spacer so the grid columns stay aligned.
const (
	LeftCellWidth  = 60
	RightCellWidth = 90

	LeftMediumSpacing = LeftCellWidth / 2
	RightSmallSpacing = RightCellWidth / 4
)

// Drawer is one labelled region of a cabinet row. The derived fields (id,
// positions, title, section and spacing) are computed by NewDrawer and cannot
// be set independently; only the name and keywords are editable.
type Drawer struct {
	id        string
	row       string
	size      Size
	title     string
	positions []int
	section   Section
	spacing   int

	name     string
	keywords []string
}

// NewDrawer creates a drawer in row starting at column start with the given size.
// It fails if the drawer would extend past its section.
func NewDrawer(row string, start int, size Size) (Drawer, error) {
	if !ValidRow(row) {
		return Drawer{}, fmt.Errorf("%w: %q", ErrInvalidRow, row)
	}
	section, err := SectionOf(start)
	if err != nil {
		return Drawer{}, err
	}
	span, err := SpanFor(section, size)
	if err != nil {
		return Drawer{}, err
	}
	end := start + span - 1
	if end > MaxColumn(section) {
		return Drawer{}, fmt.Errorf("%w: %s %s at column %d ends at %d, past column %d",
			ErrInvalidColumn, section, size, start, end, MaxColumn(section))
	}

	positions := make([]int, span)
	labels := make([]string, span)
	for i := range positions {
		positions[i] = start + i
		labels[i] = columnLabel(row, start+i)
	}

	return Drawer{
		id:        FormatID(row, start),
		row:       row,
		size:      size,
		title:     strings.Join(labels, ","),
		positions: positions,
		section:   section,
		spacing:   spacingFor(section, size),
	}, nil
}

func spacingFor(s Section, size Size) int {
	switch {
	case s == LeftSection && size == Medium:
		return LeftMediumSpacing
	case s == RightSection && size == Small:
		return RightSmallSpacing
	default:
		return 0
	}
}

// ID returns the canonical id, {row}{first column}.
func (d Drawer) ID() string { return d.id }

// Row returns the row label.
func (d Drawer) Row() string { return d.row }

// Size returns the drawer size.
func (d Drawer) Size() Size { return d.size }

// Title returns the derived fallback label, e.g. "A01,A02".
func (d Drawer) Title() string { return d.title }

// Name returns the user-set label, possibly empty.
func (d Drawer) Name() string { return d.name }

// Section returns the section the drawer lives in.
func (d Drawer) Section() Section { return d.section }

// IsRightSection reports whether the drawer is in the right section.
func (d Drawer) IsRightSection() bool { return d.section == RightSection }

// Spacing returns the trailing pixel gap rendered after the drawer.
func (d Drawer) Spacing() int { return d.spacing }

// Start returns the first covered column.
func (d Drawer) Start() int {
	if len(d.positions) == 0 {
		return 0
	}
	return d.positions[0]
}

// End returns the last covered column.
func (d Drawer) End() int {
	if len(d.positions) == 0 {
		return 0
	}
	return d.positions[len(d.positions)-1]
}

// Positions returns a copy of the covered columns in ascending order.
func (d Drawer) Positions() []int { return slices.Clone(d.positions) }

// Keywords returns a copy of the search keywords.
func (d Drawer) Keywords() []string { return slices.Clone(d.keywords) }

// Covers reports whether column is one of the drawer's positions.
func (d Drawer) Covers(column int) bool {
	return column >= d.Start() && column <= d.End()
}

// IsZero reports whether d was not built by NewDrawer.
func (d Drawer) IsZero() bool { return d.id == "" }

// DisplayText is the text printed on the drawer's label.
func (d Drawer) DisplayText() string {
	if name := strings.TrimSpace(d.name); name != "" {
		return name
	}
	return d.title
}

// WithName returns a copy of d with the given name.
func (d Drawer) WithName(name string) Drawer {
	d.name = name
	d.keywords = slices.Clone(d.keywords)
	return d
}

// WithKeywords returns a copy of d with the given keywords. Keywords are
// trimmed, blanks dropped and duplicates removed.
func (d Drawer) WithKeywords(keywords []string) Drawer {
	d.keywords = normalizeKeywords(keywords)
	return d
}

// WithLabel copies name and keywords from other onto d.
func (d Drawer) WithLabel(other Drawer) Drawer {
	return d.WithName(other.name).WithKeywords(other.keywords)
}

// SameDrawer reports whether a and b have the same id.
func SameDrawer(a, b Drawer) bool { return a.id == b.id }

// Equal reports whether a and b are identical, keywords compared as a set.
func Equal(a, b Drawer) bool {
	if a.id != b.id || a.size != b.size || a.name != b.name {
		return false
	}
	ka, kb := slices.Clone(a.keywords), slices.Clone(b.keywords)
	slices.Sort(ka)
	slices.Sort(kb)
	return slices.Equal(ka, kb) && slices.Equal(a.positions, b.positions)
}

func (d Drawer) String() string {
	return fmt.Sprintf("%s(%s %v)", d.id, d.size, d.positions)
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || slices.Contains(out, k) {
			continue
		}
		out = append(out, k)
	}
	return out
}
