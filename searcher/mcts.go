package searcher

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"gamesmith/game"
)

// ErrNoActions is returned by Search when the root position is terminal, so
// no playout could create a child to choose from.
var ErrNoActions = errors.New("no legal actions at root")

type Option func(m *MCTS)

// MCTS runs Monte Carlo Tree Search over an abstract game state. The tree
// persists across Search calls for the duration of one match; Advance
// re-roots it after each real move. One search runs to completion before the
// next begins, so no locking is needed.
type MCTS struct {
	root    *Node
	policy  TreePolicy
	rollout RolloutPolicy
	rng     *rand.Rand
	metrics MetricsCollector
	reused  bool // whether the current root survived from a previous search
}

// WithTreePolicy replaces the default UCT selection policy.
func WithTreePolicy(policy TreePolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.policy = policy
		}
	}
}

// WithRolloutPolicy replaces the default uniform-random simulation policy.
func WithRolloutPolicy(policy RolloutPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

// WithSeed fixes the random source used for expansion and the default
// rollout policy, making searches reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables per-search diagnostics collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		root:    newNode(nil, ""),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.policy == nil {
		m.policy = UCT(CSquared)
	}
	if m.rollout == nil {
		m.rollout = UniformRollout(m.rng)
	}
	return m
}

// Search runs playouts until the wall-clock budget elapses, then returns the
// root child action with the most trials. The caller's state is copied once
// and never mutated.
//
// Elapsed time is checked only between whole playouts: at least one playout
// always runs, even for a non-positive budget, and a long final playout may
// overshoot the budget.
func (m *MCTS) Search(state game.State, budget time.Duration) (game.Action, error) {
	m.metrics.Start()
	if m.reused {
		m.metrics.ReusedTree()
	}
	start := time.Now()
	for {
		m.playout(state)
		m.metrics.AddPlayout()
		if time.Since(start) >= budget {
			break
		}
	}
	m.metrics.SetTreeDepth(m.root.Depth())

	if !m.root.HasChildren() {
		return nil, ErrNoActions
	}
	return m.root.MaxTrialsAction(), nil
}

// Advance re-roots the tree after an action was actually taken in the live
// game. The matching child's subtree survives with its statistics; the rest
// of the tree becomes unreachable. When the action was never expanded
// (commonly an opponent move the tree did not explore) the whole tree is
// discarded and search starts over from an empty root.
func (m *MCTS) Advance(action game.Action) {
	child, ok := m.root.Child(action)
	if !ok {
		m.root = newNode(nil, "")
		m.reused = false
		return
	}
	child.parent = nil
	m.root = child
	m.reused = true
}

// Reset discards the whole tree, e.g. between games of a match.
func (m *MCTS) Reset() {
	m.root = newNode(nil, "")
	m.reused = false
}

// Root exposes the current root node for diagnostics and tests.
func (m *MCTS) Root() *Node {
	return m.root
}

// Metrics returns the diagnostics of the last completed Search.
func (m *MCTS) Metrics() SearchMetrics {
	return m.metrics.Complete()
}

// playout is one pass of selection, expansion, simulation and
// backpropagation. It works on a throwaway copy of the caller's state; the
// tree nodes are the only thing that survives.
func (m *MCTS) playout(state game.State) {
	working := state.Copy()
	frontier := m.selectNode(working)
	node := m.expand(frontier, working)
	winner := m.simulate(working)
	node.backup(winner)
}

// selectNode descends from the root, applying tree-policy actions to the
// working state, until it reaches a node with an untried action or an
// in-tree terminal position.
func (m *MCTS) selectNode(working game.State) *Node {
	node := m.root
	for {
		actions := working.LegalActions()
		if len(actions) > len(node.children) {
			return node // at least one untried action
		}
		if !node.HasChildren() {
			return node // terminal position inside the tree
		}

		action := m.policy(node, working)
		child, ok := node.Child(action)
		if !ok {
			panic("tree policy picked an unexpanded action")
		}
		node = child
		working.Apply(action)
	}
}

// expand attaches one new child for a uniformly chosen untried action and
// applies it to the working state. At a true terminal it returns the
// frontier unchanged and simulation observes the terminal immediately.
func (m *MCTS) expand(frontier *Node, working game.State) *Node {
	untried := untriedActions(frontier, working.LegalActions())
	if len(untried) == 0 {
		return frontier
	}

	action := untried[m.rng.Intn(len(untried))]
	child := newNode(frontier, working.Player())
	frontier.addChild(action, child)
	working.Apply(action)
	m.metrics.AddExpansion()
	return child
}

func untriedActions(node *Node, actions []game.Action) []game.Action {
	untried := make([]game.Action, 0, len(actions)-len(node.children))
	for _, action := range actions {
		if _, ok := node.Child(action); !ok {
			untried = append(untried, action)
		}
	}
	return untried
}

// simulate plays the working state to its conclusion with the rollout
// policy and returns the winner's identifier, "" for a draw.
func (m *MCTS) simulate(working game.State) string {
	for !working.Terminal() {
		working.Apply(m.rollout(working))
	}
	return working.Winner()
}
