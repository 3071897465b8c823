package xwfill

import (
	"cmp"
	"fmt"
)

// Direction is an enum representing the orientation of a slot in the grid, either 'Across' or 'Down'.
type Direction int

const (
	DirectionAcross Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionAcross {
		return "across"
	}
	return "down"
}

// Variable identifies one word-sized run of fillable cells: the position of
// its first cell, its orientation, and its length. Two variables are equal
// iff all four fields are equal, which makes Variable usable as a map key.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// cell returns the grid position of the k-th letter of the variable's word.
func (v Variable) cell(k int) (row, col int) {
	if v.Direction == DirectionDown {
		return v.Row + k, v.Col
	}
	return v.Row, v.Col + k
}

// compareVariables is the fixed total order used for every tie-break in the
// solver, so that repeated solves of the same inputs walk the search tree in
// the same order.
func compareVariables(a, b Variable) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Col, b.Col); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Direction, b.Direction); c != 0 {
		return c
	}
	return cmp.Compare(a.Length, b.Length)
}

// Overlap is the pair of character offsets at which two crossing slots share
// a grid cell: X indexes into the first slot's word, Y into the second's.
type Overlap struct {
	X int
	Y int
}
