package ordering

import "github.com/corvidchess/corvid/internal/board"

// CounterTable remembers, for each (piece, destination-square) pair that
// could have just moved, which reply move most recently caused a beta
// cutoff against it.
type CounterTable struct {
	table [numPieces * numSquares]board.Move
}

// NewCounterTable returns a counter table with every entry set to NoMove.
func NewCounterTable() *CounterTable {
	return &CounterTable{}
}

// Update records that m answered the move of piece p arriving on to.
func (c *CounterTable) Update(p board.Piece, to board.Square, m board.Move) {
	c.table[historyIdx(p, to)] = m
}

// Counter returns the recorded reply to (p, to), or NoMove if none.
func (c *CounterTable) Counter(p board.Piece, to board.Square) board.Move {
	return c.table[historyIdx(p, to)]
}
