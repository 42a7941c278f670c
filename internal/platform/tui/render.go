package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board layout: one HUD row above a bordered play area.
const (
	hudRows   = 1
	borderPad = 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// BoardSize returns the screen size needed to draw grid g.
func BoardSize(g snake.Grid) (w, h int) {
	return g.Width + borderPad, g.Height + borderPad + hudRows
}

// NewBoardScreen allocates a screen sized for grid g.
func NewBoardScreen(g snake.Grid) *core.Screen {
	w, h := BoardSize(g)
	return core.NewScreen(w, h)
}

// DrawBoard renders a snapshot into dst. Grid cell (x, y) lands at
// screen (x+1, y+2): column 0 and row 1 hold the border.
func DrawBoard(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()

	g := snap.Grid()
	w, h := BoardSize(g)

	dst.DrawText(0, 0, fmt.Sprintf("Score: %d  Length: %d", snap.Score(), snap.Len()), core.ColorWhite)

	board := core.NewRect(0, hudRows, w, h-hudRows)
	dst.DrawBox(board, core.ColorGray)

	if food := snap.Food(); g.Contains(food) {
		dst.SetColored(food.X+1, food.Y+hudRows+1, '*', core.ColorBrightRed)
	}

	// Body first so the head wins if a collision put it on a segment.
	body := snap.Body()
	for i := len(body) - 1; i >= 0; i-- {
		seg := body[i]
		if !g.Contains(seg) {
			continue
		}
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetColored(seg.X+1, seg.Y+hudRows+1, r, c)
	}

	if snap.GameOver() {
		drawOverlay(dst, board, "Game Over", endReasonText(snap.Reason()), fmt.Sprintf("Score: %d", snap.Score()))
	}
}

// drawOverlay draws a boxed message centred on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	box := area.Centered(width+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, l, core.ColorYellow)
	}
}

func endReasonText(r snake.EndReason) string {
	switch r {
	case snake.ReasonWallCollision:
		return "Hit the wall"
	case snake.ReasonSelfCollision:
		return "Bit your own tail"
	case snake.ReasonBoardFull:
		return "Board is full"
	}
	return ""
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
