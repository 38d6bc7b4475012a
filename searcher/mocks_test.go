package searcher

import (
	"fmt"

	"gamesmith/game"
)

type mockAction struct {
	id int
}

func (a mockAction) String() string {
	return fmt.Sprintf("a%d", a.id)
}

// scriptedState is a game whose whole decision tree is spelled out up
// front. Positions are named; terminal positions have no edges. The script
// itself is shared and immutable, so Copy is a value copy.
type scriptedState struct {
	script map[string]scriptedPosition
	pos    string
}

type scriptedPosition struct {
	player string
	edges  []scriptedEdge
	winner string // meaningful only for terminal positions
}

type scriptedEdge struct {
	action mockAction
	to     string
}

func newScriptedState(script map[string]scriptedPosition, start string) *scriptedState {
	return &scriptedState{script: script, pos: start}
}

func (s *scriptedState) at() scriptedPosition {
	position, ok := s.script[s.pos]
	if !ok {
		panic(fmt.Sprintf("no scripted position %q", s.pos))
	}
	return position
}

func (s *scriptedState) Player() string {
	return s.at().player
}

func (s *scriptedState) LegalActions() []game.Action {
	edges := s.at().edges
	actions := make([]game.Action, 0, len(edges))
	for _, edge := range edges {
		actions = append(actions, edge.action)
	}
	return actions
}

func (s *scriptedState) Apply(action game.Action) {
	for _, edge := range s.at().edges {
		if edge.action == action {
			s.pos = edge.to
			return
		}
	}
	panic(fmt.Sprintf("illegal action %v at position %q", action, s.pos))
}

func (s *scriptedState) Terminal() bool {
	return len(s.at().edges) == 0
}

func (s *scriptedState) Winner() string {
	return s.at().winner
}

func (s *scriptedState) Copy() game.State {
	copied := *s
	return &copied
}

// countNodes returns the size of the subtree rooted at n.
func countNodes(n *Node) int {
	count := 1
	for _, child := range n.children {
		count += countNodes(child)
	}
	return count
}
