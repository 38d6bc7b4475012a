// Package display renders game progress for a human watching a match. The
// search core never touches rendering.
package display

import (
	"gamesmith/game"
)

// Display receives game progress events.
type Display interface {
	// Start is called once per game with the initial state.
	Start(state game.State)
	// Update is called after each action applies.
	Update(state game.State, player string, action game.Action)
	// Finish is called with the terminal state; winner is "" for a draw.
	Finish(state game.State, winner string)
}

// NoDisplay discards all events.
type NoDisplay struct{}

func (NoDisplay) Start(state game.State)                                {}
func (NoDisplay) Update(state game.State, player string, a game.Action) {}
func (NoDisplay) Finish(state game.State, winner string)                {}
