package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The board must fit next to the help line.
	boardW, boardH := tui.BoardSize(cfg.Grid())
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < boardW || h < boardH+1 {
			return fmt.Errorf("terminal is %dx%d, the board needs %dx%d", w, h, boardW, boardH+1)
		}
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, flagSeed, store, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
