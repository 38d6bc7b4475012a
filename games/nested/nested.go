// Package nested implements nested tic-tac-toe: each cell of the outer
// board is an inner tic-tac-toe board, and winning an inner board plays its
// cell on the outer board. Winning the game requires three inner boards in
// a row.
package nested

import (
	"fmt"
	"strings"

	"gamesmith/game"
	"gamesmith/games/ttt"
)

// Action places a mark on one cell of one inner board.
type Action struct {
	OuterRow, OuterCol int
	InnerRow, InnerCol int
	Mark               ttt.Mark
}

func (a Action) String() string {
	return fmt.Sprintf("%d,%d;%d,%d;%s", a.OuterRow, a.OuterCol, a.InnerRow, a.InnerCol, a.Mark)
}

// State is one nested tic-tac-toe position.
type State struct {
	outer ttt.Board
	inner [ttt.BoardSize][ttt.BoardSize]ttt.Board
	mover ttt.Mark
}

// NewState returns the fully empty position with X to move.
func NewState() *State {
	return &State{mover: ttt.X}
}

func (s *State) Player() string {
	return s.mover.String()
}

// LegalActions enumerates, in row-major order, every empty cell of every
// inner board that has not been won. A drawn inner board contributes
// nothing: its outer cell stays empty for the rest of the game.
func (s *State) LegalActions() []game.Action {
	if s.outer.Winner() != ttt.Empty {
		return nil
	}
	var actions []game.Action
	for or := 0; or < ttt.BoardSize; or++ {
		for oc := 0; oc < ttt.BoardSize; oc++ {
			board := &s.inner[or][oc]
			if board.Winner() != ttt.Empty {
				continue
			}
			for ir := 0; ir < ttt.BoardSize; ir++ {
				for ic := 0; ic < ttt.BoardSize; ic++ {
					if board.Cell(ir, ic) == ttt.Empty {
						actions = append(actions, Action{
							OuterRow: or, OuterCol: oc,
							InnerRow: ir, InnerCol: ic,
							Mark: s.mover,
						})
					}
				}
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
	if won := s.inner[a.OuterRow][a.OuterCol].Place(a.InnerRow, a.InnerCol, a.Mark); won {
		s.outer.Place(a.OuterRow, a.OuterCol, a.Mark)
	}
	s.mover = s.mover.Opponent()
}

func (s *State) Terminal() bool {
	return s.outer.Winner() != ttt.Empty || len(s.LegalActions()) == 0
}

func (s *State) Winner() string {
	if w := s.outer.Winner(); w != ttt.Empty {
		return w.String()
	}
	return ""
}

func (s *State) Copy() game.State {
	copied := *s // boards hold only value types
	return &copied
}

// ParseAction parses "row,col;row,col" (outer board position, then inner
// cell) into a placement for the current mover.
func (s *State) ParseAction(input string) (game.Action, error) {
	var or, oc, ir, ic int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d,%d;%d,%d", &or, &oc, &ir, &ic); err != nil {
		return nil, fmt.Errorf("expected row,col;row,col: %w", err)
	}
	for _, v := range []int{or, oc, ir, ic} {
		if v < 0 || v >= ttt.BoardSize {
			return nil, fmt.Errorf("position %s out of range", strings.TrimSpace(input))
		}
	}
	return Action{OuterRow: or, OuterCol: oc, InnerRow: ir, InnerCol: ic, Mark: s.mover}, nil
}

func (s *State) String() string {
	var sb strings.Builder
	for or := 0; or < ttt.BoardSize; or++ {
		if or > 0 {
			sb.WriteString(strings.Repeat("-", 29) + "\n")
		}
		for ir := 0; ir < ttt.BoardSize; ir++ {
			rows := make([]string, ttt.BoardSize)
			for oc := 0; oc < ttt.BoardSize; oc++ {
				cells := make([]string, ttt.BoardSize)
				for ic := 0; ic < ttt.BoardSize; ic++ {
					cells[ic] = s.inner[or][oc].Cell(ir, ic).String()
				}
				rows[oc] = strings.Join(cells, " ")
			}
			sb.WriteString(strings.Join(rows, "  |  ") + "\n")
		}
	}
	return sb.String()
}
