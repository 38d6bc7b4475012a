package agent

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"gamesmith/game"
)

// actionParser is implemented by game states whose actions can be read from
// text, enabling interactive play.
type actionParser interface {
	ParseAction(input string) (game.Action, error)
}

type humanAgent struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewHumanAgent returns an agent that prompts for actions on out and reads
// them from in. The game state must support parsing actions from text.
func NewHumanAgent(name string, in io.Reader, out io.Writer) Agent {
	return &humanAgent{
		name: name,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

func (a *humanAgent) Name() string {
	return a.name
}

func (a *humanAgent) FindAction(state game.State, budget time.Duration) (game.Action, error) {
	parser, ok := state.(actionParser)
	if !ok {
		return nil, fmt.Errorf("game state %T does not support text input", state)
	}

	fmt.Fprintf(a.out, "%v\n", state)
	for {
		fmt.Fprintf(a.out, "%s to move: ", state.Player())
		line, err := a.in.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("failed to read action: %w", err)
		}

		action, err := parser.ParseAction(line)
		if err != nil {
			fmt.Fprintf(a.out, "invalid action: %v\n", err)
			continue
		}
		if !legal(state, action) {
			fmt.Fprintf(a.out, "illegal action: %v\n", action)
			continue
		}
		return action, nil
	}
}

func legal(state game.State, action game.Action) bool {
	for _, candidate := range state.LegalActions() {
		if candidate == action {
			return true
		}
	}
	return false
}

func (a *humanAgent) Observe(action game.Action) {}

func (a *humanAgent) Reset() {}
