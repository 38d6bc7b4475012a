package agent

import (
	"time"

	"gamesmith/game"
	"gamesmith/searcher"
)

type mctsAgent struct {
	name string
	mcts *searcher.MCTS
}

// NewMCTSAgent returns an agent that plans with Monte Carlo Tree Search,
// reusing its tree across moves of one game.
func NewMCTSAgent(name string, options ...searcher.Option) Agent {
	return &mctsAgent{
		name: name,
		mcts: searcher.NewMCTS(options...),
	}
}

func (a *mctsAgent) Name() string {
	return a.name
}

func (a *mctsAgent) FindAction(state game.State, budget time.Duration) (game.Action, error) {
	return a.mcts.Search(state, budget)
}

func (a *mctsAgent) Observe(action game.Action) {
	a.mcts.Advance(action)
}

func (a *mctsAgent) Reset() {
	a.mcts.Reset()
}

func (a *mctsAgent) Metrics() searcher.SearchMetrics {
	return a.mcts.Metrics()
}
