package game

import (
	"golang.org/x/exp/rand"
)

// Action is one move a player can take. Implementations must be comparable
// values (they are used as map keys by the search tree) and should be cheap
// to copy.
type Action interface {
	String() string
}

// State is the mutable snapshot of a turn-based, perfect-information game.
// Apply mutates the state in place; callers that need to keep the original
// must Copy first.
type State interface {
	// Player returns the identifier of the player to move.
	Player() string
	// LegalActions returns the actions available to the current player,
	// in a deterministic order. Empty when the state is terminal.
	LegalActions() []Action
	// Apply plays the given legal action and advances the mover.
	Apply(Action)
	// Terminal reports whether the game is over.
	Terminal() bool
	// Winner returns the winning player's identifier once terminal, or ""
	// for a draw or an ongoing game.
	Winner() string
	// Copy returns an independent deep copy sharing no references.
	Copy() State
}

// RandomAction draws one legal action uniformly at random.
// Panics when the state is terminal.
func RandomAction(state State, rng *rand.Rand) Action {
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions in terminal state")
	}
	return actions[rng.Intn(len(actions))]
}
