package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Run builds a fresh session from cfg and steps it once per command,
// returning the final snapshot. Commands past GameOver leave the frozen
// snapshot unchanged.
func Run(cfg snake.Config, cmds []snake.Command) (snake.Snapshot, error) {
	session, err := snake.NewSession(cfg)
	if err != nil {
		return snake.Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	snap := session.Snapshot()
	for _, cmd := range cmds {
		snap = session.Step(cmd)
	}
	return snap, nil
}

// RunEncoded decodes moves and replays them.
func RunEncoded(cfg snake.Config, moves string) (snake.Snapshot, error) {
	cmds, err := Decode(moves)
	if err != nil {
		return snake.Snapshot{}, err
	}
	return Run(cfg, cmds)
}
