package xwfill

import (
	"slices"
	"testing"
)

// mustCrossword builds a Crossword from rows of '_' (fillable) and '#'
// (blocked) characters.
func mustCrossword(t testing.TB, rows ...string) *Crossword {
	t.Helper()

	mask := make([][]bool, len(rows))
	for i, row := range rows {
		mask[i] = make([]bool, len(row))
		for j, c := range row {
			mask[i][j] = c == '_'
		}
	}

	c, err := NewCrossword(mask)
	if err != nil {
		t.Fatalf("NewCrossword: %v", err)
	}
	return c
}

func TestNewCrossword_Variables(t *testing.T) {
	c := mustCrossword(t,
		"__#",
		"__#",
		"###",
	)

	want := []Variable{
		{Row: 0, Col: 0, Direction: DirectionAcross, Length: 2},
		{Row: 0, Col: 0, Direction: DirectionDown, Length: 2},
		{Row: 0, Col: 1, Direction: DirectionDown, Length: 2},
		{Row: 1, Col: 0, Direction: DirectionAcross, Length: 2},
	}
	if got := c.Variables(); !slices.Equal(got, want) {
		t.Errorf("Variables() = %v, want %v", got, want)
	}
}

func TestNewCrossword_SingleCellIsNotASlot(t *testing.T) {
	c := mustCrossword(t,
		"#_#",
		"###",
	)

	if got := c.Variables(); len(got) != 0 {
		t.Errorf("Variables() = %v, want none", got)
	}
}

func TestNewCrossword_Overlaps(t *testing.T) {
	c := mustCrossword(t,
		"___",
		"_##",
		"_##",
	)

	across := Variable{Row: 0, Col: 0, Direction: DirectionAcross, Length: 3}
	down := Variable{Row: 0, Col: 0, Direction: DirectionDown, Length: 3}

	overlap, ok := c.Overlap(across, down)
	if !ok {
		t.Fatalf("Overlap(%v, %v) not found", across, down)
	}
	if overlap != (Overlap{X: 0, Y: 0}) {
		t.Errorf("Overlap(%v, %v) = %v, want {0 0}", across, down, overlap)
	}

	// The reverse arc carries the offsets swapped.
	reverse, ok := c.Overlap(down, across)
	if !ok {
		t.Fatalf("Overlap(%v, %v) not found", down, across)
	}
	if reverse != (Overlap{X: overlap.Y, Y: overlap.X}) {
		t.Errorf("Overlap(%v, %v) = %v, want offsets of the forward arc swapped", down, across, reverse)
	}

	if got := c.Neighbors(across); !slices.Equal(got, []Variable{down}) {
		t.Errorf("Neighbors(%v) = %v, want [%v]", across, got, down)
	}
	if got := c.Degree(down); got != 1 {
		t.Errorf("Degree(%v) = %d, want 1", down, got)
	}
}

func TestNewCrossword_NoOverlapForParallelSlots(t *testing.T) {
	c := mustCrossword(t,
		"___",
		"###",
		"___",
	)

	vars := c.Variables()
	if len(vars) != 2 {
		t.Fatalf("Variables() = %v, want 2 slots", vars)
	}
	if _, ok := c.Overlap(vars[0], vars[1]); ok {
		t.Errorf("Overlap(%v, %v) exists, want none", vars[0], vars[1])
	}
	if got := c.Degree(vars[0]); got != 0 {
		t.Errorf("Degree(%v) = %d, want 0", vars[0], got)
	}
}

func TestNewCrossword_Errors(t *testing.T) {
	if _, err := NewCrossword(nil); err == nil {
		t.Error("NewCrossword(nil) succeeded, want error")
	}
	if _, err := NewCrossword([][]bool{{true, true}, {true}}); err == nil {
		t.Error("NewCrossword with ragged mask succeeded, want error")
	}
}

func TestCrossword_Fillable(t *testing.T) {
	c := mustCrossword(t,
		"__#",
		"__#",
	)

	if !c.Fillable(0, 0) {
		t.Error("Fillable(0, 0) = false, want true")
	}
	if c.Fillable(1, 2) {
		t.Error("Fillable(1, 2) = true, want false")
	}
	if c.Height() != 2 || c.Width() != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", c.Height(), c.Width())
	}
}
