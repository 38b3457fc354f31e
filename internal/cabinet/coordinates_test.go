package cabinet

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantRow    string
		wantColumn int
		wantErr    error
	}{
		{name: "left section", id: "A1", wantRow: "A", wantColumn: 1},
		{name: "right section", id: "B12", wantRow: "B", wantColumn: 12},
		{name: "last drawer", id: "L15", wantRow: "L", wantColumn: 15},
		{name: "empty", id: "", wantErr: ErrInvalidID},
		{name: "row only", id: "A", wantErr: ErrInvalidID},
		{name: "unknown row", id: "M1", wantErr: ErrInvalidRow},
		{name: "lowercase row", id: "a1", wantErr: ErrInvalidRow},
		{name: "zero padded", id: "A01", wantErr: ErrInvalidID},
		{name: "column zero", id: "A0", wantErr: ErrInvalidColumn},
		{name: "column past end", id: "A16", wantErr: ErrInvalidColumn},
		{name: "not a number", id: "Ax", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, column, err := ParseID(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseID(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.id, err)
			}
			if row != tt.wantRow || column != tt.wantColumn {
				t.Errorf("ParseID(%q) = %s, %d, want %s, %d", tt.id, row, column, tt.wantRow, tt.wantColumn)
			}
		})
	}
}

func TestSpanFor(t *testing.T) {
	tests := []struct {
		section Section
		size    Size
		want    int
	}{
		{LeftSection, Small, 1},
		{LeftSection, Medium, 2},
		{LeftSection, Large, 3},
		{RightSection, Small, 1},
		{RightSection, Medium, 1},
		{RightSection, Large, 2},
	}

	for _, tt := range tests {
		got, err := SpanFor(tt.section, tt.size)
		if err != nil {
			t.Fatalf("SpanFor(%s, %s) unexpected error: %v", tt.section, tt.size, err)
		}
		if got != tt.want {
			t.Errorf("SpanFor(%s, %s) = %d, want %d", tt.section, tt.size, got, tt.want)
		}
	}

	if _, err := SpanFor(LeftSection, Size("HUGE")); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SpanFor(HUGE) error = %v, want ErrInvalidSize", err)
	}
}

func TestSectionBounds(t *testing.T) {
	if MaxColumn(LeftSection) != 9 || MaxColumn(RightSection) != 15 {
		t.Errorf("MaxColumn = %d/%d, want 9/15", MaxColumn(LeftSection), MaxColumn(RightSection))
	}
	if MinColumn(LeftSection) != 1 || MinColumn(RightSection) != 10 {
		t.Errorf("MinColumn = %d/%d, want 1/10", MinColumn(LeftSection), MinColumn(RightSection))
	}
	if IsRightSection(9) || !IsRightSection(10) {
		t.Error("IsRightSection boundary should be between columns 9 and 10")
	}
	if _, err := SectionOf(16); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("SectionOf(16) error = %v, want ErrInvalidColumn", err)
	}
}

func TestParseSize(t *testing.T) {
	for _, in := range []string{"small", " Medium ", "LARGE"} {
		if _, err := ParseSize(in); err != nil {
			t.Errorf("ParseSize(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := ParseSize("tiny"); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ParseSize(tiny) error = %v, want ErrInvalidSize", err)
	}
}

func TestRows(t *testing.T) {
	rows := Rows()
	if len(rows) != RowCount {
		t.Fatalf("Rows() returned %d rows, want %d", len(rows), RowCount)
	}
	if rows[0] != "A" || rows[RowCount-1] != "L" {
		t.Errorf("Rows() = %v, want A..L", rows)
	}
}
