package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 600x400 play area of 20
// pixel cells, a three-cell snake heading right and ten ticks per second.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    600,
			Height:   400,
			CellSize: 20,
		},
		Snake: SnakeConfig{
			InitialLength:  3,
			InitialHeading: "right",
		},
		Food: FoodConfig{
			MaxSpawnAttempts: 1024,
		},
		Loop: LoopConfig{
			TickRate: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
