package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model driving one snake session at a time.
type Model struct {
	cfg     config.Config
	seed    int64
	session *snake.Session
	snap    snake.Snapshot
	journal *replay.Journal
	pending snake.Command // Last steering key since the previous tick
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	screen  *core.Screen

	width, height int // Terminal size, zero until the first resize
	saved         bool
	runID         string
	quitting      bool
}

// NewModel creates a model and starts its first session.
// A zero seed is replaced by a time-based one. store and logger may be nil.
func NewModel(cfg config.Config, seed int64, store *storage.Store, logger *log.Logger) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionCfg, err := cfg.SessionConfig(seed)
	if err != nil {
		return Model{}, err
	}
	session, err := snake.NewSession(sessionCfg)
	if err != nil {
		return Model{}, fmt.Errorf("tui: starting session: %w", err)
	}

	logger.Info("session started", "seed", seed, "grid", fmt.Sprintf("%dx%d", sessionCfg.Grid.Width, sessionCfg.Grid.Height))

	return Model{
		cfg:     cfg,
		seed:    seed,
		session: session,
		snap:    session.Snapshot(),
		journal: replay.NewJournal(),
		pending: snake.NoCommand(),
		store:   store,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  NewBoardScreen(sessionCfg.Grid),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Steering keys only update the pending
// command; the session moves on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.snap.GameOver() {
			m.restart()
		}
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok && !m.snap.GameOver() {
		m.pending = snake.Steer(d)
	}
	return m, nil
}

// handleTick advances the session by exactly one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.cfg.TickInterval())
	if m.snap.GameOver() {
		return m, next
	}

	cmd := m.pending
	m.pending = snake.NoCommand()
	m.journal.Record(cmd)
	m.snap = m.session.Step(cmd)

	if m.snap.GameOver() {
		m.finish()
	}
	return m, next
}

// finish logs the outcome and stores the run once per session.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true

	m.logger.Info("game over",
		"score", m.snap.Score(),
		"length", m.snap.Len(),
		"ticks", m.snap.Tick(),
		"reason", m.snap.Reason(),
	)

	if m.store == nil {
		return
	}

	sc := m.session.Config()
	id, err := m.store.SaveRun(storage.Run{
		Seed:           sc.Seed,
		GridW:          sc.Grid.Width,
		GridH:          sc.Grid.Height,
		InitialLength:  sc.InitialLength,
		InitialHeading: sc.InitialHeading.String(),
		SpawnAttempts:  sc.MaxSpawnAttempts,
		TickRate:       m.cfg.Loop.TickRate,
		Ticks:          int(m.snap.Tick()),
		Score:          m.snap.Score(),
		EndReason:      m.snap.Reason().String(),
		Moves:          m.journal.Encode(),
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.runID = id
	m.logger.Debug("run saved", "id", id)
}

// restart discards the finished session and starts a new one with a fresh seed.
func (m *Model) restart() {
	seed := time.Now().UnixNano()
	if seed == m.seed {
		seed++
	}

	sessionCfg, err := m.cfg.SessionConfig(seed)
	if err != nil {
		m.logger.Error("could not restart", "error", err)
		return
	}
	session, err := snake.NewSession(sessionCfg)
	if err != nil {
		m.logger.Error("could not restart", "error", err)
		return
	}

	m.session = session
	m.seed = seed
	m.snap = m.session.Snapshot()
	m.journal = replay.NewJournal()
	m.pending = snake.NoCommand()
	m.saved = false
	m.runID = ""
	m.logger.Info("session restarted", "seed", seed)
}

// Snapshot returns the state shown by the last tick.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// Seed returns the seed of the current session.
func (m Model) Seed() int64 {
	return m.seed
}

// RunID returns the stored run ID once the current session has been saved.
func (m Model) RunID() string {
	return m.runID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.screen.Width(), m.screen.Height()
	if m.width > 0 && (m.width < w || m.height < h+1) {
		return fmt.Sprintf("Window too small: need %dx%d, have %dx%d", w, h+1, m.width, m.height)
	}

	DrawBoard(m.screen, m.snap)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.Config, seed int64, store *storage.Store, logger *log.Logger) error {
	model, err := NewModel(cfg, seed, store, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
