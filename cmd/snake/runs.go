package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsPlain  bool
	flagRunsDelete string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recent runs",
	Long: `List the most recent finished runs, newest first.

In a terminal this opens an interactive table; press Enter on a row to
replay that run. With --plain, or when output is not a terminal, the list
is printed as text.

Any unique prefix of a run ID is accepted by --delete.

Examples:
  snake runs
  snake runs --limit 50
  snake runs --plain
  snake runs --delete 3f2a9c1e`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain text list")
	runsCmd.Flags().StringVar(&flagRunsDelete, "delete", "", "Delete the run with this ID")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run database: %w", err)
	}
	defer store.Close()

	if flagRunsDelete != "" {
		deleted, err := deleteRun(store, flagRunsDelete)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", deleted)
		return nil
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fd := int(os.Stdout.Fd())
	if flagRunsPlain || !term.IsTerminal(fd) {
		printRuns(runs)
		return nil
	}

	height := 24
	if _, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		height = h
	}

	id, err := tui.BrowseRuns(runs, height)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	return printReplay(store, id)
}

func printRuns(runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first one!")
		return
	}

	fmt.Printf("  %-36s  %-5s  %-6s  %-5s  %-14s  %s\n", "ID", "Score", "Ticks", "Grid", "End", "Date")
	fmt.Printf("  %-36s  %-5s  %-6s  %-5s  %-14s  %s\n", "--", "-----", "-----", "----", "---", "----")

	for _, r := range runs {
		fmt.Printf("  %-36s  %-5d  %-6d  %-5s  %-14s  %s\n",
			r.ID,
			r.Score,
			r.Ticks,
			fmt.Sprintf("%dx%d", r.GridW, r.GridH),
			r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

// deleteRun resolves id (or a unique prefix) and removes that run.
// It returns the full ID of the deleted run.
func deleteRun(store *storage.Store, id string) (string, error) {
	run, err := store.Run(id)
	if err != nil {
		return "", err
	}
	if run == nil {
		return "", fmt.Errorf("no run with ID %q", id)
	}
	if err := store.DeleteRun(run.ID); err != nil {
		return "", err
	}
	return run.ID, nil
}
