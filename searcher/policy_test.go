package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

// twoActionState returns a non-terminal position with actions a0 and a1.
func twoActionState() *scriptedState {
	return newScriptedState(map[string]scriptedPosition{
		"root": {player: "player1", edges: []scriptedEdge{
			{action: mockAction{id: 0}, to: "t0"},
			{action: mockAction{id: 1}, to: "t1"},
		}},
		"t0": {winner: "player1"},
		"t1": {winner: "player2"},
	}, "root")
}

func TestUCTScore(t *testing.T) {
	t.Run("computes exploitation plus exploration", func(t *testing.T) {
		numerator := CSquared * math.Log(100)

		got := uctScore(5, 10, numerator)

		expected := 5.0/10 + math.Sqrt(numerator/10)
		require.InDelta(t, expected, got, 1e-9,
			"Should compute w/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("zero-trial child scores infinite", func(t *testing.T) {
		require.True(t, math.IsInf(uctScore(0, 0, 1.0), 1),
			"Unvisited children should be prioritized over any value comparison")
	})

	t.Run("more wins never decrease the score", func(t *testing.T) {
		numerator := CSquared * math.Log(50)

		require.GreaterOrEqual(t, uctScore(6, 10, numerator), uctScore(5, 10, numerator))
	})

	t.Run("more trials decrease the exploration term", func(t *testing.T) {
		numerator := CSquared * math.Log(50)

		explore := func(trials int) float64 {
			return uctScore(0, trials, numerator)
		}
		require.Greater(t, explore(5), explore(10))
	})
}

func TestUCT(t *testing.T) {
	t.Run("picks the child with the highest score", func(t *testing.T) {
		node := newNode(nil, "")
		node.addChild(mockAction{id: 0}, &Node{wins: 1, trials: 10})
		node.addChild(mockAction{id: 1}, &Node{wins: 9, trials: 10})
		node.trials = 20

		got := UCT(CSquared)(node, twoActionState())

		require.Equal(t, mockAction{id: 1}, got,
			"Higher value estimate should win with equal exploration terms")
	})

	t.Run("prefers an unvisited child over any visited one", func(t *testing.T) {
		node := newNode(nil, "")
		node.addChild(mockAction{id: 0}, &Node{wins: 10, trials: 10})
		node.addChild(mockAction{id: 1}, &Node{})
		node.trials = 10

		got := UCT(CSquared)(node, twoActionState())

		require.Equal(t, mockAction{id: 1}, got)
	})

	t.Run("breaks ties by legal action enumeration order", func(t *testing.T) {
		node := newNode(nil, "")
		node.addChild(mockAction{id: 0}, &Node{wins: 2, trials: 5})
		node.addChild(mockAction{id: 1}, &Node{wins: 2, trials: 5})
		node.trials = 10

		for i := 0; i < 10; i++ {
			require.Equal(t, mockAction{id: 0}, UCT(CSquared)(node, twoActionState()),
				"Equal scores should always resolve to the first enumerated action")
		}
	})

	t.Run("guards the logarithm when the parent has no trials", func(t *testing.T) {
		node := newNode(nil, "")
		node.addChild(mockAction{id: 0}, &Node{wins: 1, trials: 1})
		node.addChild(mockAction{id: 1}, &Node{wins: 1, trials: 1})

		require.NotPanics(t, func() {
			UCT(CSquared)(node, twoActionState())
		}, "ln(0) must be special-cased by flooring trials at 1")
	})

	t.Run("panics on a legal action without a child", func(t *testing.T) {
		node := newNode(nil, "")
		node.addChild(mockAction{id: 0}, &Node{trials: 1})
		node.trials = 1

		require.Panics(t, func() {
			UCT(CSquared)(node, twoActionState())
		}, "Selection only invokes the tree policy on fully expanded nodes")
	})
}

func TestUniformRollout(t *testing.T) {
	t.Run("returns a legal action", func(t *testing.T) {
		rollout := UniformRollout(rand.New(rand.NewSource(1)))
		state := twoActionState()

		for i := 0; i < 20; i++ {
			action := rollout(state)
			require.Contains(t, state.LegalActions(), action)
		}
	})

	t.Run("covers the whole legal set over many draws", func(t *testing.T) {
		rollout := UniformRollout(rand.New(rand.NewSource(42)))
		state := twoActionState()

		seen := map[int]bool{}
		for i := 0; i < 100; i++ {
			seen[rollout(state).(mockAction).id] = true
		}
		require.Len(t, seen, 2, "Both actions should be drawn eventually")
	})
}
