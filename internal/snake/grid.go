// Package snake implements the snake simulation: movement and growth, the
// food spawn policy, collision detection and the fixed-tick Session state
// machine. It has no terminal, clock or storage dependencies; the platform
// layer feeds it one optional Command per tick and draws the Snapshot it
// returns.
package snake

import "fmt"

// Cell is one discrete grid position.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// String formats the cell as (x,y).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the W x H play area. Valid cells satisfy 0 <= x < W and 0 <= y < H.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// CellSet is a set of occupied cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}
