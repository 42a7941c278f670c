// Package replay records the per-tick commands of a session and rebuilds the
// session from them. Sessions are deterministic for a given seed, so the
// command log is enough to reproduce any game.
package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Journal is the ordered list of commands fed to a session, one per tick.
type Journal struct {
	cmds []snake.Command
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends the command used for one tick.
func (j *Journal) Record(cmd snake.Command) {
	j.cmds = append(j.cmds, cmd)
}

// Len returns the number of recorded ticks.
func (j *Journal) Len() int {
	return len(j.cmds)
}

// Commands returns a copy of the recorded commands.
func (j *Journal) Commands() []snake.Command {
	out := make([]snake.Command, len(j.cmds))
	copy(out, j.cmds)
	return out
}

// Encode returns the compact text form of the journal: one symbol per tick
// ('.' for no turn, U/D/L/R otherwise) with runs written as count+symbol,
// e.g. "12.R3.U".
func (j *Journal) Encode() string {
	var b strings.Builder
	for i := 0; i < len(j.cmds); {
		sym := symbol(j.cmds[i])
		run := 1
		for i+run < len(j.cmds) && symbol(j.cmds[i+run]) == sym {
			run++
		}
		if run > 1 {
			b.WriteString(strconv.Itoa(run))
		}
		b.WriteByte(sym)
		i += run
	}
	return b.String()
}

// MaxCommands bounds the length of a decoded journal. At the default tick
// rate it is well over a day of play.
const MaxCommands = 1 << 24

// Decode parses the output of Encode. Journals longer than MaxCommands are
// rejected.
func Decode(s string) ([]snake.Command, error) {
	var cmds []snake.Command
	count := 0
	digits := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			digits = true
			if count > MaxCommands-len(cmds) {
				return nil, fmt.Errorf("replay: offset %d: run length too large", i)
			}
			continue
		}

		cmd, err := parseSymbol(ch)
		if err != nil {
			return nil, fmt.Errorf("replay: offset %d: %w", i, err)
		}
		run := 1
		if digits {
			if count == 0 {
				return nil, fmt.Errorf("replay: offset %d: zero run length", i)
			}
			run = count
		}
		if run > MaxCommands-len(cmds) {
			return nil, fmt.Errorf("replay: offset %d: journal too long", i)
		}
		for range run {
			cmds = append(cmds, cmd)
		}
		count, digits = 0, false
	}

	if digits {
		return nil, fmt.Errorf("replay: dangling run length at end of %q", s)
	}
	return cmds, nil
}

func symbol(cmd snake.Command) byte {
	if !cmd.Present {
		return '.'
	}
	switch cmd.Direction {
	case snake.Up:
		return 'U'
	case snake.Down:
		return 'D'
	case snake.Left:
		return 'L'
	case snake.Right:
		return 'R'
	}
	return '.'
}

func parseSymbol(ch byte) (snake.Command, error) {
	switch ch {
	case '.':
		return snake.NoCommand(), nil
	case 'U':
		return snake.Steer(snake.Up), nil
	case 'D':
		return snake.Steer(snake.Down), nil
	case 'L':
		return snake.Steer(snake.Left), nil
	case 'R':
		return snake.Steer(snake.Right), nil
	}
	return snake.Command{}, fmt.Errorf("unknown symbol %q", ch)
}
