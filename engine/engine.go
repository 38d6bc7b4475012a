// Package engine drives agents through turn-based games: one agent per
// player, one action per turn, a wall-clock budget per decision.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gamesmith/agent"
	"gamesmith/display"
	"gamesmith/game"
	"gamesmith/searcher"
)

// DefaultMaxMoves caps runaway games that never reach a terminal state.
const DefaultMaxMoves = 500

// MoveRecord ties one move of one game to the search diagnostics that
// produced it.
type MoveRecord struct {
	Step   int
	Player string
	Agent  string
	searcher.SearchMetrics
}

type Option func(e *Engine)

// WithDisplay attaches a renderer for game progress.
func WithDisplay(d display.Display) Option {
	return func(e *Engine) {
		if d != nil {
			e.display = d
		}
	}
}

// WithMaxMoves overrides the runaway-game cap.
func WithMaxMoves(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// Engine plays games between a fixed set of agents, one per player
// identifier.
type Engine struct {
	agents   map[string]agent.Agent
	budget   time.Duration
	display  display.Display
	maxMoves int
}

func New(agents map[string]agent.Agent, budget time.Duration, options ...Option) *Engine {
	if len(agents) < 2 {
		panic("need at least two players")
	}
	e := &Engine{
		agents:   agents,
		budget:   budget,
		display:  display.NoDisplay{},
		maxMoves: DefaultMaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one game from the given state to completion and returns the
// winner ("" for a draw) plus per-move records for agents that report
// search diagnostics. The caller's state is not mutated.
func (e *Engine) Run(state game.State) (string, []MoveRecord, error) {
	for _, a := range e.agents {
		a.Reset()
	}

	working := state.Copy()
	e.display.Start(working)

	var records []MoveRecord
	step := 0
	for !working.Terminal() && step < e.maxMoves {
		player := working.Player()
		current, ok := e.agents[player]
		if !ok {
			return "", records, fmt.Errorf("no agent for player %s", player)
		}

		action, err := current.FindAction(working.Copy(), e.budget)
		if err != nil {
			return "", records, fmt.Errorf("agent %s failed to find an action: %w", current.Name(), err)
		}

		working.Apply(action)
		step++
		for _, a := range e.agents {
			a.Observe(action)
		}
		e.display.Update(working, player, action)

		record := MoveRecord{
			Step:   step,
			Player: player,
			Agent:  current.Name(),
		}
		event := log.Debug().Str("player", player).Stringer("action", action)
		if reporter, ok := current.(agent.MetricsReporter); ok {
			record.SearchMetrics = reporter.Metrics()
			event = event.
				Int64("playouts", record.Playouts).
				Int("depth", record.TreeDepth).
				Bool("tree_reused", record.TreeReused)
		}
		records = append(records, record)
		event.Msg("move")
	}

	winner := working.Winner()
	e.display.Finish(working, winner)
	return winner, records, nil
}

// MatchResult aggregates a series of games between the same agents.
type MatchResult struct {
	Games int
	Wins  map[string]int // by player identifier
	Draws int
	Moves []MoveRecord
}

// RunMatch plays numGames games, each from a fresh state produced by
// newState.
func (e *Engine) RunMatch(newState func() game.State, numGames int) (MatchResult, error) {
	result := MatchResult{Wins: make(map[string]int)}
	for i := 0; i < numGames; i++ {
		log.Info().Int("game", i+1).Int("of", numGames).Msg("starting game")
		winner, records, err := e.Run(newState())
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		result.Games++
		result.Moves = append(result.Moves, records...)
		if winner == "" {
			result.Draws++
			log.Info().Int("game", i+1).Msg("draw")
		} else {
			result.Wins[winner]++
			log.Info().Int("game", i+1).Str("winner", winner).Msg("game over")
		}
	}
	return result, nil
}
