package ordering

import "math"

const (
	lmrLenDepth     = 64
	lmrLenMoveCount = 64
)

// LMRTable is a precomputed late-move-reduction lookup: how many plies to
// shave off the remaining depth for the move_count'th move searched at a
// given remaining depth, using the standard log-depth * log-move-count
// formula.
type LMRTable struct {
	table [lmrLenDepth][lmrLenMoveCount]uint8
}

// NewLMRTable builds a table using base + log2(depth)*log2(moveCount)/divisor,
// with base and divisor expressed in hundredths (centi-units) to keep the
// constructor's tuning knobs as plain integers.
func NewLMRTable(centiBase, centiDivisor int) *LMRTable {
	t := &LMRTable{}
	base := float64(centiBase) / 100.0
	divisor := float64(centiDivisor) / 100.0
	for depth := 1; depth < lmrLenDepth; depth++ {
		logDepth := math.Log2(float64(depth))
		for moveCount := 1; moveCount < lmrLenMoveCount; moveCount++ {
			logMoveCount := math.Log2(float64(moveCount))
			reduction := base + logDepth*logMoveCount/divisor
			t.table[depth][moveCount] = uint8(reduction)
		}
	}
	return t
}

// LateMoveDepthReduction returns the reduction for the given remaining depth
// and 1-based move count, clamping both to the table's bounds.
func (t *LMRTable) LateMoveDepthReduction(depth, moveCount int) int {
	if depth >= lmrLenDepth {
		depth = lmrLenDepth - 1
	}
	if moveCount >= lmrLenMoveCount {
		moveCount = lmrLenMoveCount - 1
	}
	return int(t.table[depth][moveCount])
}
