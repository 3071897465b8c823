package xwfill

import (
	"fmt"
	"slices"

	utilslices "github.com/spjmurray/go-util/pkg/slices"
)

// varPair keys the overlap map by an ordered pair of variables.
type varPair struct {
	a, b Variable
}

// Crossword is an immutable description of a puzzle structure: the fillable
// cell mask, the slot variables derived from it, and the overlap map between
// every pair of crossing slots.
type Crossword struct {
	height int
	width  int
	mask   [][]bool

	variables []Variable
	overlaps  map[varPair]Overlap
	neighbors map[Variable][]Variable
}

// NewCrossword derives slot variables and overlaps from a rectangular
// fillable-cell mask. Slots are maximal horizontal or vertical runs of at
// least two fillable cells.
func NewCrossword(mask [][]bool) (*Crossword, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, fmt.Errorf("crossword mask must have at least one row and one column")
	}
	width := len(mask[0])
	for i, row := range mask {
		if len(row) != width {
			return nil, fmt.Errorf("crossword mask is ragged: row %d has %d cells, want %d", i, len(row), width)
		}
	}

	c := &Crossword{
		height: len(mask),
		width:  width,
		mask:   make([][]bool, len(mask)),
	}
	for i, row := range mask {
		c.mask[i] = slices.Clone(row)
	}

	c.findVariables()
	c.findOverlaps()
	return c, nil
}

func (c *Crossword) findVariables() {
	for i := range c.height {
		for j := range c.width {
			if !c.mask[i][j] {
				continue
			}

			// A down slot starts here if the cell above is missing or blocked.
			if i == 0 || !c.mask[i-1][j] {
				length := 0
				for k := i; k < c.height && c.mask[k][j]; k++ {
					length++
				}
				if length > 1 {
					c.variables = append(c.variables, Variable{Row: i, Col: j, Direction: DirectionDown, Length: length})
				}
			}

			// Likewise for an across slot and the cell to the left.
			if j == 0 || !c.mask[i][j-1] {
				length := 0
				for k := j; k < c.width && c.mask[i][k]; k++ {
					length++
				}
				if length > 1 {
					c.variables = append(c.variables, Variable{Row: i, Col: j, Direction: DirectionAcross, Length: length})
				}
			}
		}
	}

	slices.SortFunc(c.variables, compareVariables)
}

func (c *Crossword) findOverlaps() {
	c.overlaps = make(map[varPair]Overlap)
	c.neighbors = make(map[Variable][]Variable)

	for a, b := range utilslices.Permute(c.variables) {
		overlap, ok := crossing(a, b)
		if !ok {
			continue
		}

		c.overlaps[varPair{a, b}] = overlap
		c.overlaps[varPair{b, a}] = Overlap{X: overlap.Y, Y: overlap.X}
		c.neighbors[a] = append(c.neighbors[a], b)
		c.neighbors[b] = append(c.neighbors[b], a)
	}

	for _, neighbors := range c.neighbors {
		slices.SortFunc(neighbors, compareVariables)
	}
}

// crossing locates the shared cell of two slots, if any. Two distinct slots
// share at most one cell.
func crossing(a, b Variable) (Overlap, bool) {
	for i := range a.Length {
		ar, ac := a.cell(i)
		for j := range b.Length {
			br, bc := b.cell(j)
			if ar == br && ac == bc {
				return Overlap{X: i, Y: j}, true
			}
		}
	}
	return Overlap{}, false
}

func (c *Crossword) Height() int {
	return c.height
}

func (c *Crossword) Width() int {
	return c.width
}

// Fillable reports whether the cell at (row, col) can hold a letter.
func (c *Crossword) Fillable(row, col int) bool {
	return c.mask[row][col]
}

// Variables returns the slots of the puzzle in their fixed total order.
func (c *Crossword) Variables() []Variable {
	return slices.Clone(c.variables)
}

// Overlap returns the shared-cell offsets of x and y, and whether the two
// slots cross at all.
func (c *Crossword) Overlap(x, y Variable) (Overlap, bool) {
	overlap, ok := c.overlaps[varPair{x, y}]
	return overlap, ok
}

// Neighbors returns every slot crossing v, in the fixed total order.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return slices.Clone(c.neighbors[v])
}

// Degree returns the number of slots crossing v.
func (c *Crossword) Degree(v Variable) int {
	return len(c.neighbors[v])
}
