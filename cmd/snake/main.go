// snake is a terminal snake game with a stored, replayable run journal.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake runs               - Browse recent runs
//	snake replay <run-id>    - Re-simulate a stored run and print its final board
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search ~/.snake, ./configs, embedded)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a grid-based snake game for the terminal.

Every finished game is stored together with its seed and moves, so it can
be replayed exactly.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  runs     - Browse recent runs
  replay   - Re-simulate a stored run

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake runs
  snake replay 3f2a9c1e`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
