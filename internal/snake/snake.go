package snake

// Snake is the ordered body, head first, plus its heading and growth state.
// Only Advance changes the body.
type Snake struct {
	grid          Grid
	body          []Cell // Head at index 0
	heading       Direction
	pendingGrowth bool
}

// NewSnake builds a snake of the given length with its head at head and the
// rest of the body trailing behind it, opposite to heading.
func NewSnake(grid Grid, head Cell, heading Direction, length int) *Snake {
	back := heading.Opposite().Delta()
	body := make([]Cell, 0, length)
	cell := head
	for range length {
		body = append(body, cell)
		cell = cell.Add(back)
	}
	return &Snake{
		grid:    grid,
		body:    body,
		heading: heading,
	}
}

// Turn changes the heading unless the request reverses it.
func (s *Snake) Turn(requested Direction) {
	if !requested.Valid() || requested == s.heading.Opposite() {
		return
	}
	s.heading = requested
}

// NextHead returns the cell the head will occupy after the next Advance.
func (s *Snake) NextHead() Cell {
	return s.Head().Add(s.heading.Delta())
}

// Advance moves the snake one cell along its heading. The new head may lie
// outside the grid; bounds are checked by IsWallCollision. The tail is
// dropped unless growth is pending, in which case the flag is cleared and the
// body keeps its tail.
func (s *Snake) Advance() {
	newHead := s.NextHead()

	keep := len(s.body)
	if !s.pendingGrowth {
		keep--
	}
	body := make([]Cell, 0, keep+1)
	body = append(body, newHead)
	body = append(body, s.body[:keep]...)

	s.body = body
	s.pendingGrowth = false
}

// Grow makes the next Advance keep the tail.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// IsWallCollision reports whether the head has left the grid.
func (s *Snake) IsWallCollision() bool {
	return !s.grid.Contains(s.Head())
}

// IsSelfCollision reports whether the head overlaps the rest of the body.
// It must run after Advance so the cell vacated by the tail this tick does
// not count.
func (s *Snake) IsSelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// PendingGrowth reports whether the next Advance will keep the tail.
func (s *Snake) PendingGrowth() bool {
	return s.pendingGrowth
}

// cells returns the body as a set for food placement.
func (s *Snake) cells() CellSet {
	return NewCellSet(s.body...)
}
