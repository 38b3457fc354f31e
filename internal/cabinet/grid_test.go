package cabinet

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	if g.Len() != RowCount*ColumnCount {
		t.Errorf("Len() = %d, want %d", g.Len(), RowCount*ColumnCount)
	}
	if err := g.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
	flat := g.Flatten()
	if flat[0].ID() != "A1" || flat[len(flat)-1].ID() != "L15" {
		t.Errorf("Flatten() order = %s..%s, want A1..L15", flat[0].ID(), flat[len(flat)-1].ID())
	}
	a10, _ := g.Find("A10")
	if a10.Size() != Medium {
		t.Errorf("right section default size = %s, want MEDIUM", a10.Size())
	}
}

func TestCheckRow(t *testing.T) {
	row := DefaultRow("C")

	var covErr *CoverageError
	gap := slices.Delete(slices.Clone(row), 4, 5)
	if err := CheckRow("C", gap); !errors.As(err, &covErr) || covErr.Column != 5 || covErr.Count != 0 {
		t.Errorf("CheckRow() with a gap = %v, want column 5 uncovered", err)
	}

	overlap := append(slices.Clone(row), mustDrawer(t, "C", 4, Medium))
	if err := CheckRow("C", overlap); !errors.As(err, &covErr) || covErr.Column != 4 || covErr.Count != 2 {
		t.Errorf("CheckRow() with overlap = %v, want column 4 covered twice", err)
	}

	if err := CheckRow("D", row); !errors.Is(err, ErrCoverage) {
		t.Errorf("CheckRow() with foreign drawers = %v, want ErrCoverage", err)
	}
}

func TestRepair(t *testing.T) {
	wide := mustDrawer(t, "A", 1, Large).WithName("Kept")
	overlapping := mustDrawer(t, "A", 2, Small)
	right := mustDrawer(t, "B", 14, Large)

	g, dropped := Repair([]Drawer{overlapping, right, wide})

	if err := g.Check(); err != nil {
		t.Fatalf("repaired grid is invalid: %v", err)
	}
	if !slices.Equal(dropped, []string{"A2"}) {
		t.Errorf("dropped = %v, want [A2]", dropped)
	}
	a1, _ := g.Find("A1")
	if a1.Name() != "Kept" || a1.Size() != Large {
		t.Errorf("A1 = %v %q, want kept LARGE", a1, a1.Name())
	}
	b13, ok := g.Find("B13")
	if !ok || b13.Size() != Medium {
		t.Errorf("B13 filler = %v, want MEDIUM", b13)
	}
	if _, ok := g.Find("B15"); ok {
		t.Error("B15 is covered by B14 and should not be filled")
	}
	if len(g["L"]) != ColumnCount {
		t.Errorf("empty row L has %d drawers, want %d", len(g["L"]), ColumnCount)
	}
}

func TestRepair_DuplicateIDs(t *testing.T) {
	first := mustDrawer(t, "F", 3, Small).WithName("first")
	second := mustDrawer(t, "F", 3, Small).WithName("second")
	g, dropped := Repair([]Drawer{first, second})
	f3, _ := g.Find("F3")
	if f3.Name() != "first" || !slices.Equal(dropped, []string{"F3"}) {
		t.Errorf("F3 = %q dropped = %v, want first kept", f3.Name(), dropped)
	}
}

func TestGrid_ReplaceRequiresSamePositions(t *testing.T) {
	g := DefaultGrid()
	if g.Replace(mustDrawer(t, "A", 1, Medium)) {
		t.Error("Replace() should refuse a drawer with different positions")
	}
	if !g.Replace(mustDrawer(t, "A", 1, Small).WithName("x")) {
		t.Error("Replace() should accept a relabelled drawer")
	}
	clone := g.Clone()
	clone.Replace(mustDrawer(t, "A", 1, Small).WithName("y"))
	if d, _ := g.Find("A1"); d.Name() != "x" {
		t.Errorf("Clone() shares storage with the original: %q", d.Name())
	}
}

func TestSummarize(t *testing.T) {
	g := DefaultGrid()
	g.Resize("A1", Large)
	a1, _ := g.Find("A1")
	g.Replace(a1.WithName("Fuses").WithKeywords([]string{"5A"}))

	s := Summarize(g.Flatten())
	if s.Drawers != RowCount*ColumnCount-2 {
		t.Errorf("Drawers = %d, want %d", s.Drawers, RowCount*ColumnCount-2)
	}
	if s.Named != 1 || s.WithKeywords != 1 {
		t.Errorf("Named = %d WithKeywords = %d, want 1 and 1", s.Named, s.WithKeywords)
	}
	if s.Left[Large] != 1 || s.Right[Medium] != RowCount*6 {
		t.Errorf("Left = %v Right = %v", s.Left, s.Right)
	}
}
