package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestGridFromPlayArea(t *testing.T) {
	cfg := Default()
	require.Equal(t, snake.Grid{Width: 30, Height: 20}, cfg.Grid())

	cfg.Board.CellSize = 0
	require.Equal(t, snake.Grid{}, cfg.Grid())
}

func TestTickInterval(t *testing.T) {
	cfg := Default()
	require.Equal(t, 100*time.Millisecond, cfg.TickInterval())

	cfg.Loop.TickRate = 0
	require.Equal(t, 100*time.Millisecond, cfg.TickInterval())
}

func TestSessionConfig(t *testing.T) {
	cfg := Default()
	cfg.Snake.InitialHeading = "Up"

	sc, err := cfg.SessionConfig(42)
	require.NoError(t, err)
	require.Equal(t, snake.Up, sc.InitialHeading)
	require.Equal(t, int64(42), sc.Seed)
	require.Equal(t, 3, sc.InitialLength)
	require.Equal(t, 1024, sc.MaxSpawnAttempts)
}

func TestParsePartialDocument(t *testing.T) {
	cfg, err := Parse([]byte("loop:\n  tick_rate: 15\n"))
	require.NoError(t, err)
	require.Equal(t, 15, cfg.Loop.TickRate)
	require.Equal(t, Default().Board, cfg.Board)

	cfg, err = Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "board:\n  widht: 600\n"},
		{"zero cell size", "board:\n  cell_size: 0\n"},
		{"tiny board", "board:\n  width: 40\n  height: 40\n"},
		{"bad heading", "snake:\n  initial_heading: sideways\n"},
		{"short snake", "snake:\n  initial_length: 2\n"},
		{"zero tick rate", "loop:\n  tick_rate: 0\n"},
		{"not yaml", "board: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	cfg := Default()
	cfg.Snake.InitialLength = 100

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorIs(t, err, snake.ErrInvalidLength)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snake:\n  initial_length: 5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Snake.InitialLength)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("food:\n  max_spawn_attempts: 0\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	// Local configs directory.
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "snake.yaml"),
		[]byte("loop:\n  tick_rate: 12\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Loop.TickRate)

	// User config wins over the local one.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".snake"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".snake", "config.yaml"),
		[]byte("loop:\n  tick_rate: 20\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Loop.TickRate)
}
