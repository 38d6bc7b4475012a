// Package games registers the concrete games the engine can play.
package games

import (
	"fmt"

	"gamesmith/game"
	"gamesmith/games/havannah"
	"gamesmith/games/nested"
	"gamesmith/games/ttt"
)

// Factory produces fresh initial states for one game type.
type Factory struct {
	Name    string
	Players []string
	New     func() game.State
}

// Lookup returns the factory for a game by name.
func Lookup(name string) (Factory, error) {
	switch name {
	case "ttt":
		return Factory{
			Name:    name,
			Players: []string{"X", "O"},
			New:     func() game.State { return ttt.NewState() },
		}, nil
	case "nested":
		return Factory{
			Name:    name,
			Players: []string{"X", "O"},
			New:     func() game.State { return nested.NewState() },
		}, nil
	case "havannah":
		return Factory{
			Name:    name,
			Players: []string{"Blue", "Red"},
			New:     func() game.State { return havannah.NewState() },
		}, nil
	default:
		return Factory{}, fmt.Errorf("unknown game %q", name)
	}
}
