package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const testSeed = 42

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(config.Default(), testSeed, store, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runIntoWall ticks until the snake, heading right from the centre, leaves the grid.
func runIntoWall(t *testing.T, m Model) Model {
	t.Helper()
	for range 40 {
		m = tick(t, m)
		if m.Snapshot().GameOver() {
			return m
		}
	}
	t.Fatal("snake never hit the wall")
	return m
}

func TestModelInitialState(t *testing.T) {
	m := newTestModel(t, nil)

	snap := m.Snapshot()
	if snap.State() != snake.Running {
		t.Errorf("State = %v, expected running", snap.State())
	}
	if snap.Tick() != 0 {
		t.Errorf("Tick = %d, expected 0", snap.Tick())
	}
	if m.Seed() != testSeed {
		t.Errorf("Seed = %d, expected %d", m.Seed(), testSeed)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelZeroSeedIsReplaced(t *testing.T) {
	m, err := NewModel(config.Default(), 0, nil, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	if m.Seed() == 0 {
		t.Error("zero seed should be replaced by a time-based seed")
	}
}

func TestModelInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Snake.InitialHeading = "sideways"

	if _, err := NewModel(cfg, testSeed, nil, nil); err == nil {
		t.Error("expected error for invalid heading")
	}
}

func TestModelKeysDoNotStep(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, keyRune('a'))

	if m.Snapshot().Tick() != 0 {
		t.Errorf("key presses advanced the session to tick %d", m.Snapshot().Tick())
	}
	if m.Snapshot().Heading() != snake.Right {
		t.Errorf("heading changed before a tick: %v", m.Snapshot().Heading())
	}
}

func TestModelLastKeyWins(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.Snapshot().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, keyRune('s'))
	m = tick(t, m)

	snap := m.Snapshot()
	if snap.Heading() != snake.Down {
		t.Errorf("Heading = %v, expected down", snap.Heading())
	}
	if want := (snake.Cell{X: start.X, Y: start.Y + 1}); snap.Head() != want {
		t.Errorf("Head = %v, expected %v", snap.Head(), want)
	}

	cmds := m.journal.Commands()
	if len(cmds) != 1 || cmds[0] != snake.Steer(snake.Down) {
		t.Errorf("journal = %v, expected one down command", cmds)
	}
}

func TestModelPendingClearedAfterTick(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)
	m = tick(t, m)

	cmds := m.journal.Commands()
	if len(cmds) != 2 {
		t.Fatalf("journal length = %d, expected 2", len(cmds))
	}
	if cmds[1] != snake.NoCommand() {
		t.Errorf("second tick recorded %v, expected no command", cmds[1])
	}
	if m.Snapshot().Tick() != 2 {
		t.Errorf("Tick = %d, expected 2", m.Snapshot().Tick())
	}
}

func TestModelTickReschedules(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelGameOverSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = runIntoWall(t, m)

	snap := m.Snapshot()
	if snap.Reason() != snake.ReasonWallCollision {
		t.Errorf("Reason = %v, expected wall collision", snap.Reason())
	}
	if m.RunID() == "" {
		t.Fatal("run was not saved")
	}

	// Ticks after game over neither step nor save again
	for range 5 {
		m = tick(t, m)
	}
	if m.Snapshot().Tick() != snap.Tick() {
		t.Errorf("Tick moved after game over: %d -> %d", snap.Tick(), m.Snapshot().Tick())
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, expected 1", len(runs))
	}

	run := runs[0]
	if run.ID != m.RunID() {
		t.Errorf("stored ID = %q, expected %q", run.ID, m.RunID())
	}
	if run.Seed != testSeed || run.Score != snap.Score() || run.Ticks != int(snap.Tick()) {
		t.Errorf("stored run = %+v, snapshot score %d tick %d", run, snap.Score(), snap.Tick())
	}
	if run.EndReason != "wall_collision" {
		t.Errorf("EndReason = %q, expected wall_collision", run.EndReason)
	}

	replayed, err := replay.RunEncoded(m.session.Config(), run.Moves)
	if err != nil {
		t.Fatalf("RunEncoded failed: %v", err)
	}
	if !replayed.Equal(snap) {
		t.Error("replaying the stored moves did not reproduce the final snapshot")
	}
}

func TestModelRestartOnlyWhenGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(t, m)

	m, _ = update(t, m, keyRune('r'))
	if m.Snapshot().Tick() != 1 || m.Seed() != testSeed {
		t.Fatal("restart should be ignored while running")
	}

	m = runIntoWall(t, m)
	m, _ = update(t, m, keyRune('r'))

	snap := m.Snapshot()
	if snap.State() != snake.Running {
		t.Errorf("State after restart = %v, expected running", snap.State())
	}
	if snap.Tick() != 0 || snap.Score() != 0 || snap.Len() != 3 {
		t.Errorf("restart did not start a fresh session: tick %d score %d len %d",
			snap.Tick(), snap.Score(), snap.Len())
	}
	if m.Seed() == testSeed {
		t.Error("restart should use a fresh seed")
	}
	if m.journal.Len() != 0 {
		t.Errorf("journal length = %d after restart, expected 0", m.journal.Len())
	}
}

func TestModelSteeringIgnoredAfterGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	m = runIntoWall(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.pending.Present {
		t.Error("steering should be ignored once the game is over")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, keyRune('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View should contain the score HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View should contain the help line")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("View should warn when the terminal is too small")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("80x24 should fit the default board")
	}
}
