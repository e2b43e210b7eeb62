// Package searchdata holds the per-search mutable state the iterative
// deepening driver and alpha-beta core thread through a search: the
// principal-variation triangle, node counters, and the aspiration window.
package searchdata

import "github.com/corvidchess/corvid/internal/board"

// PVTable is a triangular array of moves: the principal variation of length
// d is stored contiguously, and on improving a score at depth d the child's
// PV (length d-1) is copied in after the new move. The table grows lazily as
// deeper PV lengths are requested, so a search that never reaches depth 20
// never allocates space for it.
type PVTable struct {
	table    []board.Move
	indices  []int
	maxDepth int
}

// NewPVTable returns an empty PV table.
func NewPVTable() *PVTable {
	return &PVTable{}
}

// MaxDepth returns the deepest PV length reserved so far; querying PV or
// PVMoveList at a depth beyond this panics.
func (t *PVTable) MaxDepth() int {
	return t.maxDepth
}

// PV returns the stored principal variation of the given length.
func (t *PVTable) PV(depth int) []board.Move {
	begin := t.index(depth)
	return t.table[begin : begin+depth]
}

// PVMoveList returns the PV of the given length as a move slice, truncated
// at the first NoMove sentinel (a shorter PV than requested was stored).
func (t *PVTable) PVMoveList(depth int) []board.Move {
	pv := t.PV(depth)
	for i, m := range pv {
		if m == board.NoMove {
			return pv[:i]
		}
	}
	return pv
}

// UpdateMoveAndCopy records m as the best move at this depth and appends the
// child's (depth-1)-length PV after it, since m's subtree already computed
// the continuation. Called when a move raises alpha.
func (t *PVTable) UpdateMoveAndCopy(depth int, m board.Move) {
	t.reserve(depth)
	begin := t.index(depth)
	end := begin + depth
	t.table[begin] = m
	for i := begin + 1; i < end; i++ {
		t.table[i] = t.table[i-depth]
	}
}

// UpdateMoveAndTruncate records m as the best move at this depth and erases
// anything previously stored after it, since no exact continuation is known
// (a fail-high does not have the child's true PV).
func (t *PVTable) UpdateMoveAndTruncate(depth int, m board.Move) {
	t.reserve(depth)
	begin := t.index(depth)
	t.table[begin] = m
	if depth > 1 {
		t.table[begin+1] = board.NoMove
	}
}

func (t *PVTable) index(depth int) int {
	return t.indices[depth-1]
}

// reserve grows the triangle to accommodate depth, adding one new
// depth-sized block per level so intermediate depths (e.g. jumping straight
// to depth 3 on an empty table) are always reserved along the way.
func (t *PVTable) reserve(depth int) {
	for d := t.maxDepth + 1; d <= depth; d++ {
		t.indices = append(t.indices, len(t.table))
		t.maxDepth = d
		for i := 0; i < d; i++ {
			t.table = append(t.table, board.NoMove)
		}
	}
}
