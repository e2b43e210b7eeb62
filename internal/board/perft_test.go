package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perft counts the leaf nodes reachable by playing out depth plies of legal
// moves from pos: the standard move-generator correctness sanity check
// (SPEC_FULL.md §8 test 8), since a single missing or illegal move anywhere
// in the tree throws every count at every depth below it off.
func perft(pos *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		// counts[d] is perft(d); index 0 is the trivial depth-0 count (1).
		counts []int64
	}{
		{
			name:   "starting position",
			fen:    StartFEN,
			counts: []int64{1, 20, 400, 8902, 197281},
		},
		{
			// The exact FEN/count fixture SPEC_FULL.md's §8 test 8 names: a
			// Kiwipete-style position exercising castling rights already
			// partially lost, a pinned knight, a pending promotion, and a
			// king not on its home square, all at once.
			name:   "kiwipete-style",
			fen:    "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			counts: []int64{1, 44, 1486, 62379},
		},
		{
			name:   "en passant edge cases",
			fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
			counts: []int64{1, 14, 191, 2812, 43238},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			require.NoError(t, err)

			for depth, want := range tc.counts {
				got := perft(pos, depth)
				require.Equalf(t, want, got, "perft(%d) on %q", depth, tc.fen)
			}
		})
	}
}

// TestPerftEnPassantPin exercises a horizontal-pin edge case a plain square-
// attacked check misses: the black pawn on e4 could capture en passant onto
// d3, but doing so removes both the e4 and d4 pawns from the fourth rank in
// one move, exposing the black king on a4 to the white rook on h4 along a
// rank that was blocked before the capture.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		require.Falsef(t, moves.Get(i).IsEnPassant(), "en passant should be illegal under horizontal pin")
	}

	require.EqualValues(t, 6, perft(pos, 1))
	require.EqualValues(t, 94, perft(pos, 2))
}
