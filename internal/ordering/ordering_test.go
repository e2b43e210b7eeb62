package ordering

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/stretchr/testify/require"
)

func TestHistoryPrioritizeAndDecay(t *testing.T) {
	h := NewHistoryTable()
	require.Equal(t, uint32(0), h.Priority(board.WhiteKnight, board.F3))

	h.Prioritize(board.WhiteKnight, board.F3, 4)
	require.Equal(t, uint32(16), h.Priority(board.WhiteKnight, board.F3))

	h.Prioritize(board.WhiteKnight, board.F3, 3)
	require.Equal(t, uint32(25), h.Priority(board.WhiteKnight, board.F3))

	h.Decay()
	require.Equal(t, uint32(12), h.Priority(board.WhiteKnight, board.F3))

	h.Clear()
	require.Equal(t, uint32(0), h.Priority(board.WhiteKnight, board.F3))
}

func TestCounterTable(t *testing.T) {
	c := NewCounterTable()
	require.Equal(t, board.NoMove, c.Counter(board.BlackPawn, board.E5))

	reply := board.NewMove(board.G1, board.F3)
	c.Update(board.BlackPawn, board.E5, reply)
	require.Equal(t, reply, c.Counter(board.BlackPawn, board.E5))
}

func TestKillerTableRotation(t *testing.T) {
	k := NewKillerTable()
	m1 := board.NewMove(board.E2, board.E4)
	m2 := board.NewMove(board.D2, board.D4)
	m3 := board.NewMove(board.G1, board.F3)

	k.Add(3, m1)
	first, second := k.Killers(3)
	require.Equal(t, m1, first)
	require.Equal(t, board.NoMove, second)

	k.Add(3, m2)
	first, second = k.Killers(3)
	require.Equal(t, m2, first)
	require.Equal(t, m1, second)

	require.True(t, k.IsKiller(3, m1))
	require.True(t, k.IsKiller(3, m2))
	require.False(t, k.IsKiller(3, m3))

	k.Clear()
	first, second = k.Killers(3)
	require.Equal(t, board.NoMove, first)
	require.Equal(t, board.NoMove, second)
}

func TestKillerTableIgnoresRepeatedMove(t *testing.T) {
	k := NewKillerTable()
	m1 := board.NewMove(board.E2, board.E4)
	k.Add(1, m1)
	k.Add(1, m1)
	first, second := k.Killers(1)
	require.Equal(t, m1, first)
	require.Equal(t, board.NoMove, second)
}

func TestLMRTableMonotonicInMoveCount(t *testing.T) {
	lmr := NewLMRTable(75, 230)
	// Reduction should never decrease as move count grows at a fixed depth.
	prev := 0
	for mc := 1; mc < 40; mc++ {
		r := lmr.LateMoveDepthReduction(10, mc)
		require.GreaterOrEqual(t, r, prev)
		prev = r
	}
}

func TestLMRTableClampsOutOfRangeIndices(t *testing.T) {
	lmr := NewLMRTable(75, 230)
	require.Equal(t, lmr.LateMoveDepthReduction(63, 63), lmr.LateMoveDepthReduction(1000, 1000))
}

func TestLMRTableZeroAtDepthOrMoveCountOne(t *testing.T) {
	lmr := NewLMRTable(75, 230)
	require.Equal(t, 0, lmr.LateMoveDepthReduction(1, 5))
	require.Equal(t, 0, lmr.LateMoveDepthReduction(5, 1))
}
