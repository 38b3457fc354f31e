// Package cabinet models the physical drawer cabinet: its fixed coordinate
// space, the drawer records covering it, and the resize engine that keeps every
// grid column covered by exactly one drawer.
package cabinet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// RowCount is the number of drawer rows (A..L).
	RowCount = 12
	// ColumnCount is the number of columns per row.
	ColumnCount = 15
	// LeftMaxColumn is the last column of the left section.
	LeftMaxColumn = 9
	// RightMinColumn is the first column of the right section.
	RightMinColumn = 10
)

var (
	// ErrInvalidID is returned when a drawer id is not of the form {row}{column}.
	ErrInvalidID = errors.New("invalid drawer id")
	// ErrInvalidRow is returned for rows outside A..L.
	ErrInvalidRow = errors.New("invalid row")
	// ErrInvalidColumn is returned for columns outside 1..15.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrInvalidSize is returned for sizes not in a section's vocabulary.
	ErrInvalidSize = errors.New("invalid drawer size")
)

// Section is one of the two independent halves of the cabinet.
type Section int

const (
	// LeftSection covers columns 1-9.
	LeftSection Section = iota
	// RightSection covers columns 10-15.
	RightSection
)

func (s Section) String() string {
	if s == RightSection {
		return "right"
	}
	return "left"
}

// Size is a drawer size. The number of columns it spans depends on the section.
type Size string

const (
	Small  Size = "SMALL"
	Medium Size = "MEDIUM"
	Large  Size = "LARGE"
)

// Sizes lists the vocabulary shared by both sections, smallest first.
var Sizes = []Size{Small, Medium, Large}

// spans maps section and size to the number of columns covered.
var spans = map[Section]map[Size]int{
	LeftSection:  {Small: 1, Medium: 2, Large: 3},
	RightSection: {Small: 1, Medium: 1, Large: 2},
}

// ParseSize parses a size name case-insensitively.
func ParseSize(s string) (Size, error) {
	size := Size(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := spans[LeftSection][size]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return size, nil
}

// Rows returns the row labels in order.
func Rows() []string {
	rows := make([]string, RowCount)
	for i := range rows {
		rows[i] = string(rune('A' + i))
	}
	return rows
}

// ValidRow reports whether row is one of A..L.
func ValidRow(row string) bool {
	return len(row) == 1 && row[0] >= 'A' && row[0] < 'A'+RowCount
}

// ValidColumn reports whether column is within 1..15.
func ValidColumn(column int) bool {
	return column >= 1 && column <= ColumnCount
}

// IsRightSection reports whether column belongs to the right section.
func IsRightSection(column int) bool {
	return column >= RightMinColumn
}

// SectionOf returns the section that owns column.
func SectionOf(column int) (Section, error) {
	if !ValidColumn(column) {
		return LeftSection, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}
	if IsRightSection(column) {
		return RightSection, nil
	}
	return LeftSection, nil
}

// MinColumn returns the first column of a section.
func MinColumn(s Section) int {
	if s == RightSection {
		return RightMinColumn
	}
	return 1
}

// MaxColumn returns the last column of a section.
func MaxColumn(s Section) int {
	if s == RightSection {
		return ColumnCount
	}
	return LeftMaxColumn
}

// SpanFor returns the number of columns a drawer of the given size occupies in section s.
func SpanFor(s Section, size Size) (int, error) {
	span, ok := spans[s][size]
	if !ok {
		return 0, fmt.Errorf("%w: %q in %s section", ErrInvalidSize, size, s)
	}
	return span, nil
}

// DefaultSize is the size given to freshly created single-column drawers.
func DefaultSize(s Section) Size {
	if s == RightSection {
		return Medium
	}
	return Small
}

// FormatID builds the canonical drawer id, e.g. "A1" or "B12".
func FormatID(row string, column int) string {
	return row + strconv.Itoa(column)
}

// ParseID splits a canonical drawer id into its row and starting column.
func ParseID(id string) (string, int, error) {
	if len(id) < 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	row := id[:1]
	if !ValidRow(row) {
		return "", 0, fmt.Errorf("%w: %q: %w", ErrInvalidID, id, ErrInvalidRow)
	}
	column, err := strconv.Atoi(id[1:])
	if err != nil || FormatID(row, column) != id {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if !ValidColumn(column) {
		return "", 0, fmt.Errorf("%w: %q: %w", ErrInvalidID, id, ErrInvalidColumn)
	}
	return row, column, nil
}

// RowOf returns the row label of a drawer id.
func RowOf(id string) (string, error) {
	row, _, err := ParseID(id)
	return row, err
}

// StartColumnOf returns the first column covered by the drawer with the given id.
func StartColumnOf(id string) (int, error) {
	_, column, err := ParseID(id)
	return column, err
}

// columnLabel is the zero-padded form used in titles, e.g. "A01".
func columnLabel(row string, column int) string {
	return fmt.Sprintf("%s%02d", row, column)
}
