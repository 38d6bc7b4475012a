package havannah

import (
	"fmt"
	"maps"
	"math/bits"
	"strings"
)

// Color is one player's stone color on the board.
type Color byte

const (
	Blank Color = iota
	Blue
	Red
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return " "
	}
}

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	if c == Blue {
		return Red
	}
	return Blue
}

func (c Color) char() byte {
	switch c {
	case Blue:
		return 'b'
	case Red:
		return 'r'
	default:
		return '.'
	}
}

// Coord is a cubic hex coordinate. Valid board coordinates satisfy
// X+Y+Z == 0 with every component strictly inside the board radius.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

func (c Coord) add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

func (c Coord) max() int {
	return max(c.X, c.Y, c.Z)
}

func (c Coord) min() int {
	return min(c.X, c.Y, c.Z)
}

// directions are the six unit moves between adjacent hexes.
var directions = [6]Coord{
	{-1, 1, 0}, {1, -1, 0}, {-1, 0, 1}, {1, 0, -1}, {0, 1, -1}, {0, -1, 1},
}

// Board is a hexagonal Havannah board that tracks its own winner. Stones of
// one color are grouped with a union-find forest whose roots carry the
// group's progress towards the bridge and fork win conditions.
type Board struct {
	size   int
	coords []Coord // every valid coordinate, fixed order; shared across copies
	cells  map[Coord]Color
	blanks int

	parent  map[Coord]Coord
	group   map[Coord]int   // root -> stones in the group
	corners map[Coord]int   // root -> corner cells the group occupies
	edges   map[Coord]uint8 // root -> bitmask of board edges the group touches

	winner Color
}

// NewBoard returns an empty board with the given side length.
func NewBoard(size int) Board {
	if size < 2 {
		panic(fmt.Sprintf("board size %d is too small", size))
	}
	coords := make([]Coord, 0, 3*size*size-3*size+1)
	cells := make(map[Coord]Color, cap(coords))
	for x := -size + 1; x < size; x++ {
		for y := -size + 1; y < size; y++ {
			c := Coord{x, y, -x - y}
			if c.Z <= -size || c.Z >= size {
				continue
			}
			coords = append(coords, c)
			cells[c] = Blank
		}
	}
	return Board{
		size:    size,
		coords:  coords,
		cells:   cells,
		blanks:  len(coords),
		parent:  make(map[Coord]Coord),
		group:   make(map[Coord]int),
		corners: make(map[Coord]int),
		edges:   make(map[Coord]uint8),
	}
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// Cell returns the color at the given coordinate.
func (b *Board) Cell(c Coord) Color {
	return b.cells[c]
}

// Winner returns the color that won the board, or Blank while it is open.
func (b *Board) Winner() Color {
	return b.winner
}

// Full reports whether every hex is colored.
func (b *Board) Full() bool {
	return b.blanks == 0
}

func (b *Board) inBounds(c Coord) bool {
	return c.X+c.Y+c.Z == 0 && c.max() < b.size && c.min() > -b.size
}

// isCorner reports whether the coordinate is one of the board's six corner
// hexes, whose components are always a permutation of {size-1, -size+1, 0}.
func (b *Board) isCorner(c Coord) bool {
	return c.max() == b.size-1 && -c.min() == b.size-1
}

// edgeBit returns a single-bit mask identifying the board edge the
// coordinate lies on, or zero for interior and corner hexes. Edge hexes have
// exactly one component of magnitude size-1; its axis and sign pick the bit.
func (b *Board) edgeBit(c Coord) uint8 {
	onMax := c.max() == b.size-1
	onMin := -c.min() == b.size-1
	if onMax == onMin {
		return 0
	}
	axis, value := 0, c.X
	if abs(c.Y) > abs(value) {
		axis, value = 1, c.Y
	}
	if abs(c.Z) > abs(value) {
		axis, value = 2, c.Z
	}
	bit := uint(2 * axis)
	if value < 0 {
		bit++
	}
	return 1 << bit
}

func (b *Board) onBorder(c Coord) bool {
	return c.max() == b.size-1 || -c.min() == b.size-1
}

// neighbors returns the adjacent coordinates that lie on the board.
func (b *Board) neighbors(c Coord) []Coord {
	adjacent := make([]Coord, 0, len(directions))
	for _, d := range directions {
		n := c.add(d)
		if b.inBounds(n) {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}

// Place colors the given blank hex and reports whether the move won the
// board by completing a bridge, fork or ring. Placing on an occupied hex,
// off the board or on a won board is a contract violation.
func (b *Board) Place(c Coord, color Color) bool {
	if b.winner != Blank {
		panic("placing on a won board")
	}
	if !b.inBounds(c) {
		panic(fmt.Sprintf("coordinate %s is off the board", c))
	}
	if b.cells[c] != Blank {
		panic("placing on an occupied hex")
	}

	b.cells[c] = color
	b.blanks--
	b.parent[c] = c
	b.group[c] = 1
	if b.isCorner(c) {
		b.corners[c] = 1
	}
	if bit := b.edgeBit(c); bit != 0 {
		b.edges[c] = bit
	}

	joined := 0
	for _, n := range b.neighbors(c) {
		if b.cells[n] == color {
			joined++
			b.union(c, n)
		}
	}

	root := b.find(c)
	bridge := b.corners[root] >= 2
	fork := bits.OnesCount8(b.edges[root]) >= 3
	// A ring must loop through the new stone, which then has at least two
	// same-colored neighbors.
	if bridge || fork || (joined >= 2 && b.encircles(color)) {
		b.winner = color
		return true
	}
	return false
}

// find returns the root of the coordinate's group, compressing the path.
func (b *Board) find(c Coord) Coord {
	root := c
	for b.parent[root] != root {
		root = b.parent[root]
	}
	for c != root {
		next := b.parent[c]
		b.parent[c] = root
		c = next
	}
	return root
}

// union merges two groups, folding the smaller one's win progress into the
// surviving root.
func (b *Board) union(a, c Coord) {
	ra, rc := b.find(a), b.find(c)
	if ra == rc {
		return
	}
	if b.group[ra] < b.group[rc] {
		ra, rc = rc, ra
	}
	b.parent[rc] = ra
	b.group[ra] += b.group[rc]
	b.corners[ra] += b.corners[rc]
	b.edges[ra] |= b.edges[rc]
	delete(b.group, rc)
	delete(b.corners, rc)
	delete(b.edges, rc)
}

// encircles reports whether some region of hexes not colored color is walled
// off from the board's border, which means color has closed a ring around
// empty or enemy hexes.
func (b *Board) encircles(color Color) bool {
	reached := make(map[Coord]bool)
	fringe := make([]Coord, 0, len(b.coords))
	outside := 0
	for _, c := range b.coords {
		if b.cells[c] == color {
			continue
		}
		outside++
		if b.onBorder(c) {
			reached[c] = true
			fringe = append(fringe, c)
		}
	}
	for len(fringe) > 0 {
		c := fringe[len(fringe)-1]
		fringe = fringe[:len(fringe)-1]
		for _, n := range b.neighbors(c) {
			if b.cells[n] != color && !reached[n] {
				reached[n] = true
				fringe = append(fringe, n)
			}
		}
	}
	return len(reached) < outside
}

// clone returns a deep copy sharing only the immutable coordinate list.
func (b *Board) clone() Board {
	copied := *b
	copied.cells = maps.Clone(b.cells)
	copied.parent = maps.Clone(b.parent)
	copied.group = maps.Clone(b.group)
	copied.corners = maps.Clone(b.corners)
	copied.edges = maps.Clone(b.edges)
	return copied
}

func (b *Board) String() string {
	var sb strings.Builder
	for z := -b.size + 1; z < b.size; z++ {
		if z > -b.size+1 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat(" ", abs(z)))
		lo := max(-b.size+1, -b.size+1-z)
		hi := min(b.size-1, b.size-1-z)
		for x := lo; x <= hi; x++ {
			if x > lo {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.cells[Coord{x, -x - z, z}].char())
		}
	}
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
