package ttt

import (
	"sync"
)

// BoardSize is the side length of a tic-tac-toe board.
const BoardSize = 3

// Mark is one player's symbol on a board.
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string {
	if m == Empty {
		return " "
	}
	return string(byte(m))
}

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == X {
		return O
	}
	return X
}

var (
	winningOnce  sync.Once
	winningMasks []uint16
)

// winningPositions returns the shared lookup table of won board
// configurations, one bitmask per line, built once on first use and
// immutable afterwards.
func winningPositions() []uint16 {
	winningOnce.Do(func() {
		cell := func(r, c int) uint16 {
			return 1 << uint(r*BoardSize+c)
		}
		for i := 0; i < BoardSize; i++ {
			var row, col uint16
			for j := 0; j < BoardSize; j++ {
				row |= cell(i, j)
				col |= cell(j, i)
			}
			winningMasks = append(winningMasks, row, col)
		}
		var diag, anti uint16
		for i := 0; i < BoardSize; i++ {
			diag |= cell(i, i)
			anti |= cell(i, BoardSize-1-i)
		}
		winningMasks = append(winningMasks, diag, anti)
	})
	return winningMasks
}

// Board is a single tic-tac-toe grid that tracks its own winner. It holds
// only value types, so plain assignment is a deep copy.
type Board struct {
	cells  [BoardSize][BoardSize]Mark
	winner Mark
	filled int
}

// Cell returns the mark at the given position.
func (b *Board) Cell(row, col int) Mark {
	return b.cells[row][col]
}

// Winner returns the mark that won the board, or Empty while it is open.
func (b *Board) Winner() Mark {
	return b.winner
}

// Full reports whether every cell is marked.
func (b *Board) Full() bool {
	return b.filled == BoardSize*BoardSize
}

// Place marks the given empty cell and reports whether the move won the
// board. Placing on an occupied cell or a won board is a contract violation.
func (b *Board) Place(row, col int, mark Mark) bool {
	if b.winner != Empty {
		panic("placing on a won board")
	}
	if b.cells[row][col] != Empty {
		panic("placing on an occupied cell")
	}

	b.cells[row][col] = mark
	b.filled++
	if b.won(mark) {
		b.winner = mark
		return true
	}
	return false
}

func (b *Board) won(mark Mark) bool {
	var occupied uint16
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.cells[r][c] == mark {
				occupied |= 1 << uint(r*BoardSize+c)
			}
		}
	}
	for _, line := range winningPositions() {
		if occupied&line == line {
			return true
		}
	}
	return false
}
