package xwfill

import (
	"fmt"
	"strings"
)

const (
	// BlockedCell is the sentinel for grid positions that never hold a letter.
	BlockedCell = '█'
	// BlankCell marks fillable positions with no assigned letter yet.
	BlankCell = ' '
)

// Grid is a 2D grid of runes, one per cell of the puzzle: an assigned
// letter, BlankCell, or BlockedCell.
type Grid struct {
	grid [][]rune
}

// LetterGrid lays the assignment's words onto the structure. The assignment
// may be partial; cells no bound word reaches stay blank.
func (c *Crossword) LetterGrid(a Assignment) Grid {
	grid := make([][]rune, c.height)
	for i := range grid {
		grid[i] = make([]rune, c.width)
		for j := range grid[i] {
			if c.mask[i][j] {
				grid[i][j] = BlankCell
			} else {
				grid[i][j] = BlockedCell
			}
		}
	}

	for v, word := range a {
		for k := range len(word) {
			row, col := v.cell(k)
			grid[row][col] = rune(word[k])
		}
	}

	return Grid{grid: grid}
}

func (g Grid) Width() int {
	return len(g.grid[0])
}

func (g Grid) Height() int {
	return len(g.grid)
}

func (g Grid) Get(x, y int) rune {
	return g.grid[y][x]
}

func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := range g.Height() {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.grid)
}
