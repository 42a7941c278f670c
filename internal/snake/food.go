package snake

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned by Respawn when every grid cell is excluded.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Food is the single consumable on the board.
type Food struct {
	grid        Grid
	rng         *rand.Rand
	maxAttempts int
	position    Cell
}

// NewFood creates food for grid. It has no position until Respawn succeeds.
func NewFood(grid Grid, rng *rand.Rand, maxAttempts int) *Food {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Food{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
		position:    Cell{X: -1, Y: -1},
	}
}

// Position returns the food cell.
func (f *Food) Position() Cell {
	return f.position
}

// Respawn moves the food to a uniformly random cell outside excluded.
// Random draws are capped at maxAttempts; after that a free cell is picked
// from an explicit scan so a crowded board still terminates. If no free cell
// exists the position is left unchanged and ErrNoFreeCell is returned.
func (f *Food) Respawn(excluded CellSet) error {
	if len(excluded) >= f.grid.Area() && f.allExcluded(excluded) {
		return ErrNoFreeCell
	}

	for range f.maxAttempts {
		c := Cell{X: f.rng.Intn(f.grid.Width), Y: f.rng.Intn(f.grid.Height)}
		if !excluded.Has(c) {
			f.position = c
			return nil
		}
	}

	free := f.freeCells(excluded)
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	f.position = free[f.rng.Intn(len(free))]
	return nil
}

// freeCells lists grid cells not in excluded, row by row.
func (f *Food) freeCells(excluded CellSet) []Cell {
	var free []Cell
	for y := range f.grid.Height {
		for x := range f.grid.Width {
			c := Cell{X: x, Y: y}
			if !excluded.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// allExcluded reports whether excluded covers the whole grid. The set may
// hold cells outside the grid, so its size alone is not enough.
func (f *Food) allExcluded(excluded CellSet) bool {
	for y := range f.grid.Height {
		for x := range f.grid.Width {
			if !excluded.Has(Cell{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}
