package searchdata

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/stretchr/testify/require"
)

func TestPVTableUpdateAndCopy(t *testing.T) {
	pv := NewPVTable()

	e2e4 := board.NewMove(board.E2, board.E4)
	e7e5 := board.NewMove(board.E7, board.E5)
	g1f3 := board.NewMove(board.G1, board.F3)

	pv.UpdateMoveAndCopy(1, e7e5)
	require.Equal(t, []board.Move{e7e5}, pv.PV(1))

	pv.UpdateMoveAndCopy(2, g1f3)
	require.Equal(t, []board.Move{g1f3, e7e5}, pv.PV(2))

	pv.UpdateMoveAndCopy(3, e2e4)
	require.Equal(t, []board.Move{e2e4, g1f3, e7e5}, pv.PV(3))
}

func TestPVTableUpdateAndTruncate(t *testing.T) {
	pv := NewPVTable()
	e2e4 := board.NewMove(board.E2, board.E4)
	g1f3 := board.NewMove(board.G1, board.F3)

	pv.UpdateMoveAndCopy(2, g1f3)
	pv.UpdateMoveAndTruncate(2, e2e4)

	got := pv.PVMoveList(2)
	require.Equal(t, []board.Move{e2e4}, got)
}

func TestNodeCounterSum(t *testing.T) {
	nc := NewNodeCounter()
	nc.IncrementNodes(1, 0)
	nc.IncrementNodes(1, 1)
	nc.IncrementNodes(2, 0)
	nc.IncrementCacheHits(2, 0)
	nc.IncrementEvalCalls(2)

	require.Equal(t, uint64(3), nc.SumNodes())
}
