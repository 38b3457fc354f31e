package cabinet

import (
	"errors"
	"slices"
	"testing"
)

func mustDrawer(t testing.TB, row string, start int, size Size) Drawer {
	t.Helper()
	d, err := NewDrawer(row, start, size)
	if err != nil {
		t.Fatalf("NewDrawer(%s, %d, %s) error = %v", row, start, size, err)
	}
	return d
}

func TestNewDrawer_DerivesFields(t *testing.T) {
	tests := []struct {
		name          string
		row           string
		start         int
		size          Size
		wantID        string
		wantTitle     string
		wantPositions []int
		wantRight     bool
		wantSpacing   int
	}{
		{"left small", "A", 1, Small, "A1", "A01", []int{1}, false, 0},
		{"left medium", "A", 1, Medium, "A1", "A01,A02", []int{1, 2}, false, LeftMediumSpacing},
		{"left large", "C", 7, Large, "C7", "C07,C08,C09", []int{7, 8, 9}, false, 0},
		{"right small", "B", 12, Small, "B12", "B12", []int{12}, true, RightSmallSpacing},
		{"right medium", "B", 12, Medium, "B12", "B12", []int{12}, true, 0},
		{"right large", "L", 14, Large, "L14", "L14,L15", []int{14, 15}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDrawer(t, tt.row, tt.start, tt.size)
			if d.ID() != tt.wantID {
				t.Errorf("ID() = %q, want %q", d.ID(), tt.wantID)
			}
			if d.Title() != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", d.Title(), tt.wantTitle)
			}
			if !slices.Equal(d.Positions(), tt.wantPositions) {
				t.Errorf("Positions() = %v, want %v", d.Positions(), tt.wantPositions)
			}
			if d.IsRightSection() != tt.wantRight {
				t.Errorf("IsRightSection() = %v, want %v", d.IsRightSection(), tt.wantRight)
			}
			if d.Spacing() != tt.wantSpacing {
				t.Errorf("Spacing() = %d, want %d", d.Spacing(), tt.wantSpacing)
			}
		})
	}
}

func TestNewDrawer_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		start   int
		size    Size
		wantErr error
	}{
		{"crosses into right section", "A", 8, Large, ErrInvalidColumn},
		{"medium at column 9", "A", 9, Medium, ErrInvalidColumn},
		{"past column 15", "A", 15, Large, ErrInvalidColumn},
		{"unknown row", "Z", 1, Small, ErrInvalidRow},
		{"column zero", "A", 0, Small, ErrInvalidColumn},
		{"unknown size", "A", 1, Size("HUGE"), ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDrawer(tt.row, tt.start, tt.size); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewDrawer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDrawer_DisplayText(t *testing.T) {
	d := mustDrawer(t, "A", 1, Medium)
	if got := d.DisplayText(); got != "A01,A02" {
		t.Errorf("DisplayText() without name = %q, want title", got)
	}
	if got := d.WithName("   ").DisplayText(); got != "A01,A02" {
		t.Errorf("DisplayText() with blank name = %q, want title", got)
	}
	if got := d.WithName("Resistors").DisplayText(); got != "Resistors" {
		t.Errorf("DisplayText() = %q, want Resistors", got)
	}
}

func TestDrawer_WithKeywordsNormalizes(t *testing.T) {
	d := mustDrawer(t, "A", 1, Small).WithKeywords([]string{" m3 ", "", "screws", "m3"})
	want := []string{"m3", "screws"}
	if !slices.Equal(d.Keywords(), want) {
		t.Errorf("Keywords() = %v, want %v", d.Keywords(), want)
	}
}

func TestDrawer_CopiesAreIndependent(t *testing.T) {
	d := mustDrawer(t, "A", 1, Large).WithKeywords([]string{"a"})
	p := d.Positions()
	p[0] = 99
	k := d.Keywords()
	k[0] = "changed"
	if d.Start() != 1 || d.Keywords()[0] != "a" {
		t.Error("mutating returned slices should not affect the drawer")
	}
}

func TestEqual_KeywordsAsSet(t *testing.T) {
	a := mustDrawer(t, "A", 1, Small).WithKeywords([]string{"x", "y"})
	b := mustDrawer(t, "A", 1, Small).WithKeywords([]string{"y", "x"})
	if !Equal(a, b) {
		t.Error("Equal() should ignore keyword order")
	}
	if Equal(a, b.WithName("other")) {
		t.Error("Equal() should compare names")
	}
	if !SameDrawer(a, b.WithName("other")) {
		t.Error("SameDrawer() should compare by id only")
	}
}
