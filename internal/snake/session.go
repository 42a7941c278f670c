package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// Session is one game from start to GameOver. It exclusively owns its Snake
// and Food. Restarting means discarding the Session and creating a new one;
// there is no in-place reset.
type Session struct {
	cfg    Config
	snake  *Snake
	food   *Food
	score  int
	tick   uint64
	state  State
	reason EndReason
	frozen Snapshot // Captured on the transition to GameOver
}

// NewSession validates cfg and starts a Running session with the snake
// centred on the grid and food placed off its body.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		snake: NewSnake(cfg.Grid, cfg.Grid.Center(), cfg.InitialHeading, cfg.InitialLength),
		food:  NewFood(cfg.Grid, rand.New(rand.NewSource(cfg.Seed)), cfg.MaxSpawnAttempts),
		state: Running,
	}
	if err := s.food.Respawn(s.snake.cells()); err != nil {
		return nil, fmt.Errorf("snake: placing initial food: %w", err)
	}
	return s, nil
}

// Step advances the session by one tick and returns the resulting snapshot.
// Once the session is over it returns the same frozen snapshot regardless of
// cmd.
func (s *Session) Step(cmd Command) Snapshot {
	if s.state == GameOver {
		return s.frozen
	}

	if cmd.Present {
		s.snake.Turn(cmd.Direction)
	}

	// Arm growth before moving so the tick that reaches the food keeps its
	// tail. Food never sits on the body or outside the grid, so this move
	// cannot also be a collision.
	if s.snake.NextHead() == s.food.Position() {
		s.snake.Grow()
	}

	s.snake.Advance()
	s.tick++

	switch {
	case s.snake.IsWallCollision():
		return s.end(ReasonWallCollision)
	case s.snake.IsSelfCollision():
		return s.end(ReasonSelfCollision)
	}

	if s.snake.Head() == s.food.Position() {
		s.score++
		if err := s.food.Respawn(s.snake.cells()); errors.Is(err, ErrNoFreeCell) {
			return s.end(ReasonBoardFull)
		}
	}

	return s.capture()
}

// end moves the session to GameOver and freezes its snapshot.
func (s *Session) end(reason EndReason) Snapshot {
	s.state = GameOver
	s.reason = reason
	s.frozen = s.capture()
	return s.frozen
}

// Snapshot returns the current state without advancing.
func (s *Session) Snapshot() Snapshot {
	if s.state == GameOver {
		return s.frozen
	}
	return s.capture()
}

func (s *Session) capture() Snapshot {
	return Snapshot{
		grid:    s.cfg.Grid,
		body:    s.snake.Body(),
		heading: s.snake.Heading(),
		food:    s.food.Position(),
		score:   s.score,
		tick:    s.tick,
		state:   s.state,
		reason:  s.reason,
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// State returns Running or GameOver.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of food items eaten.
func (s *Session) Score() int {
	return s.score
}
