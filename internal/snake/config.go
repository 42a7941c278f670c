package snake

import (
	"errors"
	"fmt"
)

// Minimum values accepted by Config.Validate.
const (
	MinInitialLength = 3
	MinGridSide      = 4
)

// Validation errors, wrapped with detail by Config.Validate.
var (
	ErrInvalidGrid          = errors.New("snake: invalid grid")
	ErrInvalidLength        = errors.New("snake: invalid initial length")
	ErrInvalidHeading       = errors.New("snake: invalid initial heading")
	ErrInvalidSpawnAttempts = errors.New("snake: invalid max spawn attempts")
)

// Config fixes the parameters of one session. It cannot change mid-session.
type Config struct {
	Grid             Grid
	InitialLength    int
	InitialHeading   Direction
	Seed             int64 // RNG seed for food placement
	MaxSpawnAttempts int   // Random draws before Respawn scans for a free cell
}

// DefaultConfig returns the classic 30x20 board with a three-cell snake
// heading right.
func DefaultConfig() Config {
	return Config{
		Grid:             Grid{Width: 30, Height: 20},
		InitialLength:    3,
		InitialHeading:   Right,
		Seed:             1,
		MaxSpawnAttempts: 1024,
	}
}

// Validate checks that the initial snake fits on the grid with at least one
// free cell left for food.
func (c Config) Validate() error {
	if c.Grid.Width < MinGridSide || c.Grid.Height < MinGridSide {
		return fmt.Errorf("%w: %dx%d, each side must be at least %d",
			ErrInvalidGrid, c.Grid.Width, c.Grid.Height, MinGridSide)
	}
	if !c.InitialHeading.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidHeading, c.InitialHeading)
	}
	if c.InitialLength < MinInitialLength {
		return fmt.Errorf("%w: %d, must be at least %d", ErrInvalidLength, c.InitialLength, MinInitialLength)
	}

	// The body trails from the centre towards the edge behind the heading.
	center := c.Grid.Center()
	tail := center
	back := c.InitialHeading.Opposite().Delta()
	for range c.InitialLength - 1 {
		tail = tail.Add(back)
	}
	if !c.Grid.Contains(tail) {
		return fmt.Errorf("%w: %d cells heading %s do not fit on a %dx%d grid",
			ErrInvalidLength, c.InitialLength, c.InitialHeading, c.Grid.Width, c.Grid.Height)
	}

	if c.MaxSpawnAttempts < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSpawnAttempts, c.MaxSpawnAttempts)
	}
	return nil
}
