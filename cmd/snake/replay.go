package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// errReplayDiverged means the re-simulated run does not end where the stored one did.
var errReplayDiverged = errors.New("replay diverged from stored run")

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a stored run",
	Long: `Rebuild a stored run from its seed and moves, print the final board
and check it against the stored score and tick count.

Any unique prefix of a run ID is accepted.

Examples:
  snake replay 3f2a9c1e
  snake replay 3f2a9c1e-8b7d-4c55-9e0f-1a2b3c4d5e6f`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening run database: %w", err)
		}
		defer store.Close()

		return printReplay(store, args[0])
	},
}

// runConfig rebuilds the session parameters a run was played with.
func runConfig(run *storage.Run) (snake.Config, error) {
	heading, err := snake.ParseDirection(run.InitialHeading)
	if err != nil {
		return snake.Config{}, err
	}
	cfg := snake.Config{
		Grid:             snake.Grid{Width: run.GridW, Height: run.GridH},
		InitialLength:    run.InitialLength,
		InitialHeading:   heading,
		Seed:             run.Seed,
		MaxSpawnAttempts: run.SpawnAttempts,
	}
	return cfg, cfg.Validate()
}

func printReplay(store *storage.Store, id string) error {
	run, err := store.Run(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", id)
	}

	cfg, err := runConfig(run)
	if err != nil {
		return fmt.Errorf("run %s has invalid parameters: %w", run.ID, err)
	}

	snap, err := replay.RunEncoded(cfg, run.Moves)
	if err != nil {
		return err
	}

	screen := tui.NewBoardScreen(snap.Grid())
	tui.DrawBoard(screen, snap)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}

	fmt.Println()
	fmt.Printf("Run:    %s\n", run.ID)
	fmt.Printf("Seed:   %d\n", run.Seed)
	fmt.Printf("Played: %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Score:  %d (stored %d)\n", snap.Score(), run.Score)
	fmt.Printf("Ticks:  %d (stored %d)\n", snap.Tick(), run.Ticks)
	fmt.Printf("End:    %s (stored %s)\n", snap.Reason(), run.EndReason)

	if snap.Score() != run.Score || int(snap.Tick()) != run.Ticks || snap.Reason().String() != run.EndReason {
		return fmt.Errorf("run %s: %w", run.ID, errReplayDiverged)
	}
	return nil
}
