package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"gamesmith/game"
)

type randomAgent struct {
	name string
	rng  *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among legal
// actions, ignoring the time budget.
func NewRandomAgent(name string, seed uint64) Agent {
	return &randomAgent{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) Name() string {
	return a.name
}

func (a *randomAgent) FindAction(state game.State, budget time.Duration) (game.Action, error) {
	return game.RandomAction(state, a.rng), nil
}

func (a *randomAgent) Observe(action game.Action) {}

func (a *randomAgent) Reset() {}
