package searcher

import (
	"fmt"

	"gamesmith/game"
)

// Node is one position in the search tree. It records how many completed
// playouts passed through it (trials) and how many of those ended in a win
// for the player whose move produced it (wins).
//
// The parent pointer is a non-owning back-reference used only by
// backpropagation; children are exclusively owned by their parent.
type Node struct {
	parent   *Node
	children map[game.Action]*Node
	order    []game.Action // actions in insertion order, for deterministic enumeration
	actor    string        // player whose move produced this node, "" for the root
	wins     int
	trials   int
}

func newNode(parent *Node, actor string) *Node {
	return &Node{
		parent:   parent,
		children: make(map[game.Action]*Node),
		actor:    actor,
	}
}

// Child returns the child reached by the given action, if one exists.
func (n *Node) Child(action game.Action) (*Node, bool) {
	child, ok := n.children[action]
	return child, ok
}

// addChild attaches a new child under the given action. Callers only add
// actions not already present; a duplicate key is a contract violation.
func (n *Node) addChild(action game.Action, child *Node) {
	if _, ok := n.children[action]; ok {
		panic(fmt.Sprintf("child already exists for action %v", action))
	}
	n.children[action] = child
	n.order = append(n.order, action)
}

// HasChildren reports whether any action has been expanded at this node.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Actor returns the identifier of the player whose move produced this node,
// or "" for the root.
func (n *Node) Actor() string {
	return n.actor
}

// Wins returns the number of playouts through this node won by its actor.
func (n *Node) Wins() int {
	return n.wins
}

// Trials returns the number of playouts that passed through this node.
func (n *Node) Trials() int {
	return n.trials
}

// ValueEstimate returns wins/trials. A node with zero trials has no defined
// estimate; calling this on one is a contract violation.
func (n *Node) ValueEstimate() float64 {
	if n.trials == 0 {
		panic("value estimate of node with 0 trials")
	}
	return float64(n.wins) / float64(n.trials)
}

// MaxTrialsAction returns the action whose child has the largest trial
// count. Ties go to the first-inserted action, so the result is
// deterministic for a given insertion history. Panics when the node has no
// children.
func (n *Node) MaxTrialsAction() game.Action {
	if len(n.order) == 0 {
		panic("node has no children")
	}

	best := n.order[0]
	maxTrials := n.children[best].trials
	for _, action := range n.order[1:] {
		if t := n.children[action].trials; t > maxTrials {
			maxTrials = t
			best = action
		}
	}
	return best
}

// Depth returns 0 for a leaf, otherwise 1 plus the maximum child depth.
// Diagnostic only; never used for search control.
func (n *Node) Depth() int {
	depth := 0
	for _, child := range n.children {
		if d := child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// backup propagates one simulation outcome from this node up to the root
// inclusive. Every node on the path gains a trial; nodes whose actor matches
// the winner also gain a win. The root's actor is "" and never matches.
func (n *Node) backup(winner string) {
	for node := n; node != nil; node = node.parent {
		node.trials++
		if node.actor != "" && node.actor == winner {
			node.wins++
		}
	}
}
