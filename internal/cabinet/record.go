package cabinet

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformedRecord is returned when a record cannot be turned back into a
// valid drawer.
var ErrMalformedRecord = errors.New("malformed drawer record")

// Record is the flat form of a drawer used by stores and the API.
type Record struct {
	ID             string
	Size           string
	Title          string
	Name           string // Empty when the drawer has no user label
	Positions      []int
	IsRightSection bool
	Keywords       []string
	Spacing        int
}

// RecordOf flattens d.
func RecordOf(d Drawer) Record {
	return Record{
		ID:             d.ID(),
		Size:           string(d.Size()),
		Title:          d.Title(),
		Name:           d.Name(),
		Positions:      d.Positions(),
		IsRightSection: d.IsRightSection(),
		Keywords:       d.Keywords(),
		Spacing:        d.Spacing(),
	}
}

// Drawer rebuilds the drawer described by r. The id, size and positions must
// agree with each other, and the derived fields must match what NewDrawer
// would produce.
func (r Record) Drawer() (Drawer, error) {
	row, start, err := ParseID(r.ID)
	if err != nil {
		return Drawer{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	size, err := ParseSize(r.Size)
	if err != nil {
		return Drawer{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	d, err := NewDrawer(row, start, size)
	if err != nil {
		return Drawer{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	switch {
	case !slices.Equal(d.Positions(), r.Positions):
		return Drawer{}, fmt.Errorf("%w: %s positions %v, want %v", ErrMalformedRecord, r.ID, r.Positions, d.Positions())
	case d.Title() != r.Title:
		return Drawer{}, fmt.Errorf("%w: %s title %q, want %q", ErrMalformedRecord, r.ID, r.Title, d.Title())
	case d.IsRightSection() != r.IsRightSection:
		return Drawer{}, fmt.Errorf("%w: %s section flag does not match column %d", ErrMalformedRecord, r.ID, start)
	}
	// Spacing is presentation only; a stale value is recomputed rather than rejected.

	return d.WithName(strings.TrimSpace(r.Name)).WithKeywords(r.Keywords), nil
}
