// Package structfile parses crossword structure definitions: one line of
// text per grid row, with '_' marking a fillable cell and any other
// character marking a blocked one. Short rows are padded with blocked cells.
package structfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"crosswarped.com/xwfill"
)

// FillableCell is the structure-file marker for a cell that takes a letter.
const FillableCell = '_'

// Parse reads a structure definition into a Crossword.
func Parse(r io.Reader) (*xwfill.Crossword, error) {
	var rows [][]bool
	width := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		cells := make([]bool, 0, len(line))
		for _, c := range line {
			cells = append(cells, c == FillableCell)
		}
		if len(cells) > width {
			width = len(cells)
		}
		rows = append(rows, cells)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	if len(rows) == 0 || width == 0 {
		return nil, fmt.Errorf("structure is empty")
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, false)
		}
		rows[i] = row
	}

	return xwfill.NewCrossword(rows)
}

// ParseFile reads a structure definition from a file on disk.
func ParseFile(path string) (*xwfill.Crossword, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
