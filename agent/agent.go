// Package agent provides the players the engine drives through a game:
// an MCTS planner, a uniform-random baseline and an interactive human.
package agent

import (
	"time"

	"gamesmith/game"
	"gamesmith/searcher"
)

// Agent is one player in a match.
type Agent interface {
	// Name identifies the agent in logs and records.
	Name() string
	// FindAction picks the agent's next action within the time budget.
	// The state is a snapshot the agent may not mutate.
	FindAction(state game.State, budget time.Duration) (game.Action, error)
	// Observe notifies the agent of an action actually taken in the game,
	// by any player, so it can advance its internal bookkeeping.
	Observe(action game.Action)
	// Reset prepares the agent for a fresh game.
	Reset()
}

// MetricsReporter is implemented by agents that collect per-move search
// diagnostics.
type MetricsReporter interface {
	Metrics() searcher.SearchMetrics
}
