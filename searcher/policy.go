package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gamesmith/game"
)

// Hyperparameters for MCTS

// CSquared is the squared exploration constant, c = sqrt(2).
const CSquared = 2.0

// TreePolicy picks, among a fully expanded node's children, the action to
// descend by during selection. Every legal action of the state must already
// have a child.
type TreePolicy func(node *Node, state game.State) game.Action

// RolloutPolicy picks the next action to play during simulation.
type RolloutPolicy func(state game.State) game.Action

// UCT returns the default tree policy: argmax over the legal actions of
// wins/trials + sqrt(cSquared*ln(N)/trials), with ties broken by the legal
// action enumeration order.
func UCT(cSquared float64) TreePolicy {
	return func(node *Node, state game.State) game.Action {
		actions := state.LegalActions()
		if len(actions) == 0 {
			panic("tree policy called on terminal state")
		}

		// First playout through a re-rooted or freshly built node may see
		// zero trials; floor the logarithm argument at 1.
		visits := node.trials
		if visits < 1 {
			visits = 1
		}
		numerator := cSquared * math.Log(float64(visits))

		best := actions[0]
		maxScore := math.Inf(-1)
		for _, action := range actions {
			child, ok := node.Child(action)
			if !ok {
				panic(fmt.Sprintf("no child for legal action %v", action))
			}
			score := uctScore(child.wins, child.trials, numerator)
			if score > maxScore {
				maxScore = score
				best = action
			}
		}
		return best
	}
}

// uctScore computes wins/trials plus the exploration term. A zero-trial
// child scores +Inf so it is visited before any value comparison.
func uctScore(wins, trials int, numerator float64) float64 {
	if trials == 0 {
		return math.Inf(1)
	}
	n := float64(trials)
	return float64(wins)/n + math.Sqrt(numerator/n)
}

// UniformRollout returns the default simulation policy: a light playout
// drawing uniformly among legal actions with no domain knowledge.
func UniformRollout(rng *rand.Rand) RolloutPolicy {
	return func(state game.State) game.Action {
		return game.RandomAction(state, rng)
	}
}
