package snake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testGrid = Grid{Width: 30, Height: 20}

func TestNewSnakeTrailsBehindHead(t *testing.T) {
	s := NewSnake(testGrid, Cell{X: 15, Y: 10}, Right, 3)
	require.Equal(t, []Cell{{15, 10}, {14, 10}, {13, 10}}, s.Body())

	s = NewSnake(testGrid, Cell{X: 15, Y: 10}, Up, 3)
	require.Equal(t, []Cell{{15, 10}, {15, 11}, {15, 12}}, s.Body())
}

func TestAdvanceMovesOneCell(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			head := Cell{X: 15, Y: 10}
			s := NewSnake(testGrid, head, d, 3)

			s.Advance()

			require.Equal(t, head.Add(d.Delta()), s.Head())
			require.Equal(t, head, s.Body()[1])
			require.Equal(t, 3, s.Len())
		})
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSnake(testGrid, testGrid.Center(), d, 3)
			s.Turn(d.Opposite())
			require.Equal(t, d, s.Heading())

			// Repeating the request changes nothing either.
			s.Turn(d.Opposite())
			require.Equal(t, d, s.Heading())
		})
	}
}

func TestTurnAcceptsPerpendicular(t *testing.T) {
	s := NewSnake(testGrid, testGrid.Center(), Right, 3)
	s.Turn(Up)
	require.Equal(t, Up, s.Heading())

	// Body is untouched until the next advance.
	require.Equal(t, []Cell{{15, 10}, {14, 10}, {13, 10}}, s.Body())

	s.Advance()
	require.Equal(t, Cell{X: 15, Y: 9}, s.Head())
}

func TestTurnIgnoresUnknownDirection(t *testing.T) {
	s := NewSnake(testGrid, testGrid.Center(), Right, 3)
	s.Turn(Direction(42))
	require.Equal(t, Right, s.Heading())
}

func TestGrowKeepsTailOnce(t *testing.T) {
	s := NewSnake(testGrid, testGrid.Center(), Right, 3)
	s.Grow()
	require.True(t, s.PendingGrowth())

	s.Advance()
	require.Equal(t, []Cell{{16, 10}, {15, 10}, {14, 10}, {13, 10}}, s.Body())
	require.False(t, s.PendingGrowth())

	s.Advance()
	require.Equal(t, 4, s.Len())
	require.Equal(t, Cell{X: 14, Y: 10}, s.Body()[3])
}

func TestWallCollision(t *testing.T) {
	s := NewSnake(testGrid, Cell{X: 0, Y: 10}, Left, 3)
	require.False(t, s.IsWallCollision())

	s.Advance()

	require.Equal(t, Cell{X: -1, Y: 10}, s.Head())
	require.True(t, s.IsWallCollision())
}

func TestWallCollisionAllEdges(t *testing.T) {
	tests := []struct {
		name    string
		head    Cell
		heading Direction
	}{
		{"top", Cell{X: 5, Y: 0}, Up},
		{"bottom", Cell{X: 5, Y: 19}, Down},
		{"left", Cell{X: 0, Y: 5}, Left},
		{"right", Cell{X: 29, Y: 5}, Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(testGrid, tc.head, tc.heading, 3)
			s.Advance()
			require.True(t, s.IsWallCollision())
		})
	}
}

func TestSelfCollisionTightLoop(t *testing.T) {
	s := &Snake{
		grid:    testGrid,
		body:    []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}},
		heading: Left,
	}

	s.Turn(Down)
	s.Advance()

	require.Equal(t, Cell{X: 5, Y: 6}, s.Head())
	require.True(t, s.IsSelfCollision())
	require.False(t, s.IsWallCollision())
}

func TestChasingTailIsNotCollision(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail leaves this tick.
	s := &Snake{
		grid:    testGrid,
		body:    []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}},
		heading: Left,
	}

	s.Turn(Down)
	s.Advance()

	require.Equal(t, Cell{X: 5, Y: 6}, s.Head())
	require.False(t, s.IsSelfCollision())
}

func TestBodyReturnsCopy(t *testing.T) {
	s := NewSnake(testGrid, testGrid.Center(), Right, 3)
	body := s.Body()
	body[0] = Cell{X: -5, Y: -5}

	require.Equal(t, Cell{X: 15, Y: 10}, s.Head())
	require.Equal(t, []Cell{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}, s.Body())
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(" " + d.String() + " ")
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	_, err := ParseDirection("north")
	require.Error(t, err)
}
