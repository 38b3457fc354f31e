package cabinet

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrRejectedResize is returned when a resize would break the layout
	// invariants. The layout is left unchanged.
	ErrRejectedResize = errors.New("resize rejected")
	// ErrUnknownDrawer is returned when the drawer to resize is not in the row.
	ErrUnknownDrawer = errors.New("unknown drawer")
)

// Outcome describes what a resize request did.
type Outcome int

const (
	// Applied means the row was changed.
	Applied Outcome = iota
	// Unchanged means the drawer already had the requested size.
	Unchanged
	// Rejected means the request was refused and the row returned as given.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	default:
		return "rejected"
	}
}

// ResizeResult is the row produced by a resize request.
type ResizeResult struct {
	// Row holds every drawer of the row after the request, ordered by column.
	Row     []Drawer
	Outcome Outcome
	// Resized is the drawer that was asked to change size, after the change.
	Resized Drawer
	// Removed lists ids of drawers absorbed by a growing drawer.
	Removed []string
	// Created lists ids of drawers materialised from freed columns.
	Created []string
}

// Resize changes the size of drawer id within row. A growing drawer absorbs
// the drawers to its right; a shrinking drawer keeps its first columns and
// frees the rest as default-sized single-column drawers. The drawer keeps its
// id and starting column and never leaves its section.
//
// Requests that cannot be honoured (unknown drawer, size not valid for the
// section, a span past the section's last column, or an inconsistent row)
// return the input row with outcome Rejected and an error wrapping
// ErrRejectedResize.
func Resize(row []Drawer, id string, newSize Size) (ResizeResult, error) {
	reject := func(err error) (ResizeResult, error) {
		return ResizeResult{Row: slices.Clone(row), Outcome: Rejected}, fmt.Errorf("%w: %s: %w", ErrRejectedResize, id, err)
	}

	rowLabel, _, err := ParseID(id)
	if err != nil {
		return reject(err)
	}
	if err := CheckRow(rowLabel, row); err != nil {
		return reject(err)
	}
	i := slices.IndexFunc(row, func(d Drawer) bool { return d.ID() == id })
	if i < 0 {
		return reject(ErrUnknownDrawer)
	}
	current := row[i]

	if newSize == current.Size() {
		return ResizeResult{Row: slices.Clone(row), Outcome: Unchanged, Resized: current}, nil
	}

	resized, err := NewDrawer(rowLabel, current.Start(), newSize)
	if err != nil {
		return reject(err)
	}
	resized = resized.WithLabel(current)

	oldEnd, newEnd := current.End(), resized.End()
	result := ResizeResult{Outcome: Applied, Resized: resized}
	next := make([]Drawer, 0, len(row)+2)

	for _, d := range row {
		switch {
		case SameDrawer(d, current):
			next = append(next, resized)
		case d.Start() > oldEnd && d.Start() <= newEnd:
			// Absorbed. Columns of a wide neighbour past the new end are
			// handed back as default drawers.
			result.Removed = append(result.Removed, d.ID())
			for c := newEnd + 1; c <= d.End(); c++ {
				filler, err := NewDrawer(rowLabel, c, DefaultSize(d.Section()))
				if err != nil {
					return reject(err)
				}
				next = append(next, filler)
				result.Created = append(result.Created, filler.ID())
			}
		default:
			next = append(next, d)
		}
	}

	// Shrinking frees the tail of the old span.
	for c := newEnd + 1; c <= oldEnd; c++ {
		freed, err := NewDrawer(rowLabel, c, DefaultSize(current.Section()))
		if err != nil {
			return reject(err)
		}
		next = append(next, freed)
		result.Created = append(result.Created, freed.ID())
	}

	sortRow(next)
	if err := CheckRow(rowLabel, next); err != nil {
		return reject(err)
	}
	result.Row = next
	return result, nil
}

// Resize applies a resize to the row containing id and, when the request is
// applied, stores the new row in g.
func (g Grid) Resize(id string, newSize Size) (ResizeResult, error) {
	row, err := RowOf(id)
	if err != nil {
		return ResizeResult{Outcome: Rejected}, fmt.Errorf("%w: %w", ErrRejectedResize, err)
	}
	result, err := Resize(g[row], id, newSize)
	if err != nil {
		return result, err
	}
	if result.Outcome == Applied {
		g[row] = result.Row
	}
	return result, nil
}

// AllowedSizes returns the sizes drawer d could be resized to in row without
// being rejected. The current size is always included.
func AllowedSizes(row []Drawer, d Drawer) []Size {
	var out []Size
	for _, size := range Sizes {
		if _, err := Resize(row, d.ID(), size); err == nil {
			out = append(out, size)
		}
	}
	return out
}
