// Package ordering implements the move-ordering heuristics the alpha-beta
// search consults at every node: a history table, a counter-move table, a
// killer-move table, and a late-move-reduction lookup.
package ordering

import "github.com/corvidchess/corvid/internal/board"

const numPieces = 12
const numSquares = 64

// HistoryTable scores quiet moves by how often they have caused a beta
// cutoff in the past, indexed by the moving piece and its destination
// square.
type HistoryTable struct {
	table [numPieces * numSquares]uint32
}

// NewHistoryTable returns an empty history table.
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

func historyIdx(p board.Piece, to board.Square) int {
	return int(p)*numSquares + int(to)
}

// Prioritize bumps the score for (p, to) by depth squared, called when the
// move causes a beta cutoff.
func (h *HistoryTable) Prioritize(p board.Piece, to board.Square, depth int) {
	h.table[historyIdx(p, to)] += uint32(depth * depth)
}

// Priority returns the current history score for (p, to).
func (h *HistoryTable) Priority(p board.Piece, to board.Square) uint32 {
	return h.table[historyIdx(p, to)]
}

// Clear zeroes every entry.
func (h *HistoryTable) Clear() {
	for i := range h.table {
		h.table[i] = 0
	}
}

// Decay halves every entry, reducing the weight of older searches without
// discarding them outright. Called once at the start of each new search.
func (h *HistoryTable) Decay() {
	for i := range h.table {
		h.table[i] /= 2
	}
}
