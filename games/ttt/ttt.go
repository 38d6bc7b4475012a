// Package ttt implements classic tic-tac-toe for two players, X and O.
package ttt

import (
	"fmt"
	"strings"

	"gamesmith/game"
)

// Action marks one cell for one player.
type Action struct {
	Row, Col int
	Mark     Mark
}

func (a Action) String() string {
	return fmt.Sprintf("%d,%d;%s", a.Row, a.Col, a.Mark)
}

// State is one classic tic-tac-toe position.
type State struct {
	board Board
	mover Mark
}

// NewState returns the empty board with X to move.
func NewState() *State {
	return &State{mover: X}
}

func (s *State) Player() string {
	return s.mover.String()
}

func (s *State) LegalActions() []game.Action {
	if s.Terminal() {
		return nil
	}
	actions := make([]game.Action, 0, BoardSize*BoardSize)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if s.board.Cell(r, c) == Empty {
				actions = append(actions, Action{Row: r, Col: c, Mark: s.mover})
			}
		}
	}
	return actions
}

func (s *State) Apply(action game.Action) {
	a := action.(Action)
	if a.Mark != s.mover {
		panic(fmt.Sprintf("action mark %s does not match mover %s", a.Mark, s.mover))
	}
	s.board.Place(a.Row, a.Col, a.Mark)
	s.mover = s.mover.Opponent()
}

func (s *State) Terminal() bool {
	return s.board.Winner() != Empty || s.board.Full()
}

func (s *State) Winner() string {
	if w := s.board.Winner(); w != Empty {
		return w.String()
	}
	return ""
}

func (s *State) Copy() game.State {
	copied := *s // all value types
	return &copied
}

// ParseAction parses "row,col" into a placement for the current mover.
func (s *State) ParseAction(input string) (game.Action, error) {
	var row, col int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d,%d", &row, &col); err != nil {
		return nil, fmt.Errorf("expected row,col: %w", err)
	}
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil, fmt.Errorf("position %d,%d out of range", row, col)
	}
	return Action{Row: row, Col: col, Mark: s.mover}, nil
}

func (s *State) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if r > 0 {
			sb.WriteString("\n---------\n")
		}
		cells := make([]string, BoardSize)
		for c := 0; c < BoardSize; c++ {
			cells[c] = s.board.Cell(r, c).String()
		}
		sb.WriteString(strings.Join(cells, " | "))
	}
	return sb.String()
}
