package cabinet

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCoverage is returned when a row is not covered exactly once column by column.
var ErrCoverage = errors.New("coverage invariant violated")

// CoverageError describes the first column of a row that is not covered exactly once.
type CoverageError struct {
	Row    string
	Column int
	Count  int
}

func (e *CoverageError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("row %s column %d is not covered", e.Row, e.Column)
	}
	return fmt.Sprintf("row %s column %d is covered %d times", e.Row, e.Column, e.Count)
}

func (e *CoverageError) Unwrap() error { return ErrCoverage }

// Grid maps a row label to that row's drawers, ordered by first column.
type Grid map[string][]Drawer

// DefaultRow returns the factory layout of a row: nine SMALL drawers on the
// left and six MEDIUM drawers on the right.
func DefaultRow(row string) []Drawer {
	drawers := make([]Drawer, 0, ColumnCount)
	for column := 1; column <= ColumnCount; column++ {
		d, err := NewDrawer(row, column, DefaultSize(sectionOf(column)))
		if err != nil {
			panic(fmt.Sprintf("cabinet: default drawer %s: %v", FormatID(row, column), err))
		}
		drawers = append(drawers, d)
	}
	return drawers
}

// DefaultGrid returns the factory layout for every row.
func DefaultGrid() Grid {
	g := make(Grid, RowCount)
	for _, row := range Rows() {
		g[row] = DefaultRow(row)
	}
	return g
}

// GroupByRow builds a grid from a flat list of drawers.
func GroupByRow(drawers []Drawer) Grid {
	g := make(Grid)
	for _, d := range drawers {
		g[d.Row()] = append(g[d.Row()], d)
	}
	for row := range g {
		sortRow(g[row])
	}
	return g
}

// Flatten returns every drawer ordered by row, then by first column.
func (g Grid) Flatten() []Drawer {
	var out []Drawer
	for _, row := range Rows() {
		out = append(out, g[row]...)
	}
	return out
}

// Find returns the drawer with the given id.
func (g Grid) Find(id string) (Drawer, bool) {
	row, err := RowOf(id)
	if err != nil {
		return Drawer{}, false
	}
	i := slices.IndexFunc(g[row], func(d Drawer) bool { return d.ID() == id })
	if i < 0 {
		return Drawer{}, false
	}
	return g[row][i], true
}

// Replace swaps in d for the drawer with the same id. It reports whether a
// drawer was replaced.
func (g Grid) Replace(d Drawer) bool {
	drawers := g[d.Row()]
	i := slices.IndexFunc(drawers, func(x Drawer) bool { return SameDrawer(x, d) })
	if i < 0 || !slices.Equal(drawers[i].positions, d.positions) {
		return false
	}
	drawers[i] = d
	return true
}

// Clone returns a copy of g that shares no row slices with it.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for row, drawers := range g {
		out[row] = slices.Clone(drawers)
	}
	return out
}

// Len returns the number of drawers in g.
func (g Grid) Len() int {
	n := 0
	for _, drawers := range g {
		n += len(drawers)
	}
	return n
}

// Check verifies the coverage invariant for every row of the cabinet.
func (g Grid) Check() error {
	for row := range g {
		if !ValidRow(row) {
			return fmt.Errorf("%w: %q", ErrInvalidRow, row)
		}
	}
	for _, row := range Rows() {
		if err := CheckRow(row, g[row]); err != nil {
			return err
		}
	}
	return nil
}

// CheckRow verifies that every column of row is covered by exactly one of drawers.
func CheckRow(row string, drawers []Drawer) error {
	var counts [ColumnCount + 1]int
	for _, d := range drawers {
		if d.Row() != row {
			return fmt.Errorf("%w: drawer %s is not in row %s", ErrCoverage, d.ID(), row)
		}
		for _, c := range d.positions {
			counts[c]++
		}
	}
	for column := 1; column <= ColumnCount; column++ {
		if counts[column] != 1 {
			return &CoverageError{Row: row, Column: column, Count: counts[column]}
		}
	}
	return nil
}

// Repair builds a valid grid from a possibly inconsistent set of drawers.
// Drawers are accepted in column order; a drawer overlapping columns already
// claimed in its row is dropped, and columns left uncovered are filled with
// default drawers. It returns the repaired grid and the ids of dropped drawers.
func Repair(drawers []Drawer) (Grid, []string) {
	grouped := GroupByRow(drawers)
	out := make(Grid, RowCount)
	var dropped []string

	for _, row := range Rows() {
		var claimed [ColumnCount + 1]bool
		var kept []Drawer
		seen := make(map[string]bool)
		for _, d := range grouped[row] {
			if seen[d.ID()] || slices.ContainsFunc(d.positions, func(c int) bool { return claimed[c] }) {
				dropped = append(dropped, d.ID())
				continue
			}
			seen[d.ID()] = true
			for _, c := range d.positions {
				claimed[c] = true
			}
			kept = append(kept, d)
		}
		for column := 1; column <= ColumnCount; column++ {
			if claimed[column] {
				continue
			}
			d, err := NewDrawer(row, column, DefaultSize(sectionOf(column)))
			if err != nil {
				panic(fmt.Sprintf("cabinet: filler drawer %s: %v", FormatID(row, column), err))
			}
			kept = append(kept, d)
		}
		sortRow(kept)
		out[row] = kept
	}
	return out, dropped
}

func sortRow(drawers []Drawer) {
	slices.SortFunc(drawers, func(a, b Drawer) int { return a.Start() - b.Start() })
}

// sectionOf is SectionOf for columns already known to be valid.
func sectionOf(column int) Section {
	if IsRightSection(column) {
		return RightSection
	}
	return LeftSection
}
