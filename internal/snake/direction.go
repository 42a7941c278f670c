package snake

import (
	"fmt"
	"strings"
)

// Direction is the snake's heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a heading name as written in config files.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// Command is the optional turn request delivered with one tick.
// The zero value carries no request.
type Command struct {
	Direction Direction
	Present   bool
}

// NoCommand returns a command that leaves the heading alone.
func NoCommand() Command {
	return Command{}
}

// Steer returns a command requesting a turn to d.
func Steer(d Direction) Command {
	return Command{Direction: d, Present: true}
}
