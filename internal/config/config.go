// Package config provides YAML-based configuration loading for the snake
// game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config is the full game configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Snake SnakeConfig `yaml:"snake"`
	Food  FoodConfig  `yaml:"food"`
	Loop  LoopConfig  `yaml:"loop"`
}

// BoardConfig sizes the play area. The grid has Width/CellSize columns and
// Height/CellSize rows.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeConfig defines the snake at session start.
type SnakeConfig struct {
	InitialLength  int    `yaml:"initial_length"`
	InitialHeading string `yaml:"initial_heading"` // up, down, left or right
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	MaxSpawnAttempts int `yaml:"max_spawn_attempts"`
}

// LoopConfig is owned by the platform loop, not the simulation.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Grid returns the cell grid derived from the play area.
func (c Config) Grid() snake.Grid {
	if c.Board.CellSize <= 0 {
		return snake.Grid{}
	}
	return snake.Grid{
		Width:  c.Board.Width / c.Board.CellSize,
		Height: c.Board.Height / c.Board.CellSize,
	}
}

// TickInterval returns the time between two ticks.
func (c Config) TickInterval() time.Duration {
	if c.Loop.TickRate <= 0 {
		return time.Second / time.Duration(Default().Loop.TickRate)
	}
	return time.Second / time.Duration(c.Loop.TickRate)
}

// SessionConfig converts the file configuration into session parameters.
func (c Config) SessionConfig(seed int64) (snake.Config, error) {
	heading, err := snake.ParseDirection(c.Snake.InitialHeading)
	if err != nil {
		return snake.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	cfg := snake.Config{
		Grid:             c.Grid(),
		InitialLength:    c.Snake.InitialLength,
		InitialHeading:   heading,
		Seed:             seed,
		MaxSpawnAttempts: c.Food.MaxSpawnAttempts,
	}
	if err := cfg.Validate(); err != nil {
		return snake.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalid, c.Board.CellSize)
	}
	if c.Board.Width < c.Board.CellSize || c.Board.Height < c.Board.CellSize {
		return fmt.Errorf("%w: board %dx%d is smaller than one %d cell",
			ErrInvalid, c.Board.Width, c.Board.Height, c.Board.CellSize)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: loop.tick_rate must be positive, got %d", ErrInvalid, c.Loop.TickRate)
	}
	_, err := c.SessionConfig(0)
	return err
}
