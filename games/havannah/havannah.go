// Package havannah implements the game of Havannah for two players, Blue
// and Red, on a hexagonal board of cube-coordinate hexes. A player wins by
// connecting two corners (a bridge), three board edges (a fork), or by
// closing a loop around one or more hexes (a ring).
package havannah

import (
	"fmt"
	"strings"

	"gamesmith/game"
)

const (
	// DefaultBoardSize is the tournament side length.
	DefaultBoardSize = 10
	// BeginnerBoardSize is the smaller side length suggested for new players.
	BeginnerBoardSize = 8
)

// Action places one stone for one player.
type Action struct {
	Coord Coord
	Color Color
}

func (a Action) String() string {
	return fmt.Sprintf("%s;%s", a.Coord, a.Color)
}

// State is one Havannah position.
type State struct {
	board Board
	mover Color
}

// NewState returns an empty tournament-size board with Blue to move.
func NewState() *State {
	return NewSizedState(DefaultBoardSize)
}

// NewSizedState returns an empty board of the given side length with Blue
// to move.
func NewSizedState(size int) *State {
	return &State{board: NewBoard(size), mover: Blue}
}

func (s *State) Player() string {
	return s.mover.String()
}

func (s *State) LegalActions() []game.Action {
	if s.Terminal() {
		return nil
	}
	actions := make([]game.Action, 0, s.board.blanks)
	for _, c := range s.board.coords {
		if s.board.Cell(c) == Blank {
			actions = append(actions, Action{Coord: c, Color: s.mover})
		}
	}
	return actions
}

func (s *State) Apply(action game.Action) {
	a := action.(Action)
	if a.Color != s.mover {
		panic(fmt.Sprintf("action color %s does not match mover %s", a.Color, s.mover))
	}
	s.board.Place(a.Coord, a.Color)
	s.mover = s.mover.Opponent()
}

func (s *State) Terminal() bool {
	return s.board.Winner() != Blank || s.board.Full()
}

func (s *State) Winner() string {
	if w := s.board.Winner(); w != Blank {
		return w.String()
	}
	return ""
}

func (s *State) Copy() game.State {
	return &State{board: s.board.clone(), mover: s.mover}
}

// ParseAction parses "x,y,z" cube coordinates into a placement for the
// current mover.
func (s *State) ParseAction(input string) (game.Action, error) {
	var x, y, z int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d,%d,%d", &x, &y, &z); err != nil {
		return nil, fmt.Errorf("expected x,y,z: %w", err)
	}
	c := Coord{x, y, z}
	if !s.board.inBounds(c) {
		return nil, fmt.Errorf("coordinate %s is off the board", c)
	}
	return Action{Coord: c, Color: s.mover}, nil
}

func (s *State) String() string {
	return s.board.String()
}
