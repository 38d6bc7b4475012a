package havannah

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// play applies placements in order, alternating movers starting from the
// state's current one.
func play(t *testing.T, s *State, coords ...Coord) {
	t.Helper()
	for _, c := range coords {
		s.Apply(Action{Coord: c, Color: s.mover})
	}
}

func TestNewState(t *testing.T) {
	t.Run("tournament board", func(t *testing.T) {
		s := NewState()

		require.Equal(t, "Blue", s.Player(), "Blue moves first")
		require.False(t, s.Terminal())
		require.Empty(t, s.Winner())
		require.Len(t, s.LegalActions(), 271, "A size-10 hexagon has 271 hexes")
	})

	t.Run("small board", func(t *testing.T) {
		s := NewSizedState(3)

		require.Len(t, s.LegalActions(), 19, "A size-3 hexagon has 19 hexes")
	})

	t.Run("rejects a degenerate size", func(t *testing.T) {
		require.Panics(t, func() { NewSizedState(1) })
	})
}

func TestBoardGeometry(t *testing.T) {
	b := NewBoard(3)

	t.Run("corners", func(t *testing.T) {
		require.True(t, b.isCorner(Coord{2, -2, 0}))
		require.True(t, b.isCorner(Coord{0, 2, -2}))
		require.False(t, b.isCorner(Coord{2, -1, -1}), "Edge hexes are not corners")
		require.False(t, b.isCorner(Coord{0, 0, 0}))
	})

	t.Run("edges", func(t *testing.T) {
		require.Zero(t, b.edgeBit(Coord{0, 0, 0}), "Interior hexes are on no edge")
		require.Zero(t, b.edgeBit(Coord{2, -2, 0}), "Corner hexes count towards no edge")

		xEdge := b.edgeBit(Coord{2, -1, -1})
		negXEdge := b.edgeBit(Coord{-2, 1, 1})
		negZEdge := b.edgeBit(Coord{1, 1, -2})
		require.NotZero(t, xEdge)
		require.NotEqual(t, xEdge, negXEdge, "Opposite edges are distinct")
		require.NotEqual(t, xEdge, negZEdge, "Edges on different axes are distinct")
	})

	t.Run("neighbors stay on the board", func(t *testing.T) {
		require.Len(t, b.neighbors(Coord{0, 0, 0}), 6)
		require.Len(t, b.neighbors(Coord{2, -2, 0}), 3, "Corner hexes have three neighbors")
	})
}

func TestApply(t *testing.T) {
	t.Run("alternates movers", func(t *testing.T) {
		s := NewSizedState(3)

		s.Apply(Action{Coord: Coord{0, 0, 0}, Color: Blue})

		require.Equal(t, "Red", s.Player())
		require.Len(t, s.LegalActions(), 18)
	})

	t.Run("legal actions carry the current mover's color", func(t *testing.T) {
		s := NewSizedState(3)
		s.Apply(Action{Coord: Coord{0, 0, 0}, Color: Blue})

		for _, action := range s.LegalActions() {
			require.Equal(t, Red, action.(Action).Color)
		}
	})

	t.Run("rejects a color out of turn", func(t *testing.T) {
		s := NewSizedState(3)

		require.Panics(t, func() {
			s.Apply(Action{Coord: Coord{0, 0, 0}, Color: Red})
		})
	})

	t.Run("rejects an occupied hex", func(t *testing.T) {
		s := NewSizedState(3)
		play(t, s, Coord{0, 0, 0})

		require.Panics(t, func() {
			s.Apply(Action{Coord: Coord{0, 0, 0}, Color: Red})
		})
	})
}

func TestWinDetection(t *testing.T) {
	t.Run("bridge connects two corners", func(t *testing.T) {
		s := NewSizedState(3)
		// Blue: two corners and the edge hex between them. Red: interior.
		play(t, s,
			Coord{2, -2, 0}, Coord{0, 0, 0},
			Coord{2, 0, -2}, Coord{-1, 0, 1},
			Coord{2, -1, -1})

		require.True(t, s.Terminal())
		require.Equal(t, "Blue", s.Winner())
		require.Empty(t, s.LegalActions(), "A terminal state has no legal actions")
	})

	t.Run("fork connects three edges", func(t *testing.T) {
		s := NewSizedState(3)
		// Blue: a Y through the center reaching the y, -y and x edges.
		play(t, s,
			Coord{0, 0, 0}, Coord{-1, -1, 2},
			Coord{0, 1, -1}, Coord{-1, 0, 1},
			Coord{-1, 2, -1}, Coord{-1, 1, 0},
			Coord{0, -1, 1}, Coord{-2, 1, 1},
			Coord{1, -2, 1}, Coord{1, -1, 0},
			Coord{1, 0, -1}, Coord{1, 1, -2})

		require.False(t, s.Terminal(), "Two edges are not yet a fork")

		play(t, s, Coord{2, -1, -1})

		require.True(t, s.Terminal())
		require.Equal(t, "Blue", s.Winner())
	})

	t.Run("corners count towards no fork", func(t *testing.T) {
		b := NewBoard(3)
		b.Place(Coord{2, -2, 0}, Blue)
		won := b.Place(Coord{2, -1, -1}, Blue)

		require.False(t, won, "A corner plus one edge is neither bridge nor fork")
	})

	t.Run("ring encircles a hex", func(t *testing.T) {
		s := NewSizedState(3)
		// Blue: the six neighbors of the center. Red: scattered on the rim.
		play(t, s,
			Coord{-1, 1, 0}, Coord{2, -1, -1},
			Coord{1, -1, 0}, Coord{-2, 1, 1},
			Coord{-1, 0, 1}, Coord{1, 1, -2},
			Coord{1, 0, -1}, Coord{-1, -1, 2},
			Coord{0, -1, 1}, Coord{2, -2, 0})

		require.False(t, s.Terminal(), "The loop is still open")

		play(t, s, Coord{0, 1, -1})

		require.True(t, s.Terminal())
		require.Equal(t, "Blue", s.Winner(), "The center hex is walled off")
	})

	t.Run("open chain is no ring", func(t *testing.T) {
		b := NewBoard(3)
		// The last stone touches both others without closing a loop.
		b.Place(Coord{-1, 1, 0}, Blue)
		b.Place(Coord{-1, 0, 1}, Blue)
		won := b.Place(Coord{0, 0, 0}, Blue)

		require.False(t, won)
		require.Equal(t, Blank, b.Winner())
	})
}

func TestGroupsMerge(t *testing.T) {
	b := NewBoard(3)
	// Two separate Blue chains, then the stone that joins them.
	b.Place(Coord{2, -2, 0}, Blue)
	b.Place(Coord{2, 0, -2}, Blue)

	require.NotEqual(t, b.find(Coord{2, -2, 0}), b.find(Coord{2, 0, -2}))

	b.Place(Coord{2, -1, -1}, Blue)

	root := b.find(Coord{2, -1, -1})
	require.Equal(t, root, b.find(Coord{2, -2, 0}))
	require.Equal(t, root, b.find(Coord{2, 0, -2}))
	require.Equal(t, 3, b.group[root])
	require.Equal(t, 2, b.corners[root])
}

func TestCopy(t *testing.T) {
	s := NewSizedState(3)
	s.Apply(Action{Coord: Coord{0, 0, 0}, Color: Blue})

	copied := s.Copy().(*State)
	copied.Apply(Action{Coord: Coord{1, -1, 0}, Color: Red})

	require.Equal(t, Blank, s.board.Cell(Coord{1, -1, 0}), "Mutating the copy must not touch the original")
	require.Equal(t, "Red", s.Player())
	require.Equal(t, "Blue", copied.Player())
}

func TestParseAction(t *testing.T) {
	t.Run("parses cube coordinates for the current mover", func(t *testing.T) {
		s := NewSizedState(3)

		action, err := s.ParseAction("1,-1,0\n")

		require.NoError(t, err)
		require.Equal(t, Action{Coord: Coord{1, -1, 0}, Color: Blue}, action)
	})

	t.Run("rejects junk", func(t *testing.T) {
		s := NewSizedState(3)

		_, err := s.ParseAction("nope")

		require.Error(t, err)
	})

	t.Run("rejects off-board coordinates", func(t *testing.T) {
		s := NewSizedState(3)

		_, err := s.ParseAction("3,-3,0")

		require.Error(t, err)

		_, err = s.ParseAction("1,1,1")

		require.Error(t, err, "Components must sum to zero")
	})
}
