package snake

// State is the session's lifecycle flag.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// EndReason says why a session reached GameOver.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonWallCollision
	ReasonSelfCollision
	ReasonBoardFull // No free cell left for food
)

func (r EndReason) String() string {
	switch r {
	case ReasonWallCollision:
		return "wall_collision"
	case ReasonSelfCollision:
		return "self_collision"
	case ReasonBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Snapshot is a read-only view of a session after a tick, handed to the
// renderer. Accessors return copies so callers cannot reach session state.
type Snapshot struct {
	grid    Grid
	body    []Cell
	heading Direction
	food    Cell
	score   int
	tick    uint64
	state   State
	reason  EndReason
}

// Grid returns the board dimensions.
func (s Snapshot) Grid() Grid { return s.grid }

// Body returns the occupied cells, head first.
func (s Snapshot) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head cell.
func (s Snapshot) Head() Cell {
	if len(s.body) == 0 {
		return Cell{}
	}
	return s.body[0]
}

// Len returns the body length.
func (s Snapshot) Len() int { return len(s.body) }

// Heading returns the heading at the end of the tick.
func (s Snapshot) Heading() Direction { return s.heading }

// Food returns the food cell.
func (s Snapshot) Food() Cell { return s.food }

// Score returns the number of food items eaten.
func (s Snapshot) Score() int { return s.score }

// Tick returns how many ticks the session has simulated.
func (s Snapshot) Tick() uint64 { return s.tick }

// State returns Running or GameOver.
func (s Snapshot) State() State { return s.state }

// Reason returns why the session ended, or ReasonNone while running.
func (s Snapshot) Reason() EndReason { return s.reason }

// GameOver reports whether the session has ended.
func (s Snapshot) GameOver() bool { return s.state == GameOver }

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.grid != o.grid || s.heading != o.heading || s.food != o.food ||
		s.score != o.score || s.tick != o.tick || s.state != o.state || s.reason != o.reason {
		return false
	}
	if len(s.body) != len(o.body) {
		return false
	}
	for i := range s.body {
		if s.body[i] != o.body[i] {
			return false
		}
	}
	return true
}
