package see

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/stretchr/testify/require"
)

// TestCaptureClassification is spec testable property 10: two exact
// FEN/move/expected-classification oracles.
func TestCaptureClassification(t *testing.T) {
	cases := []struct {
		fen      string
		from, to board.Square
		expected CaptureType
	}{
		{
			fen:      "1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1",
			from:     board.E1,
			to:       board.E5,
			expected: Winning,
		},
		{
			fen:      "1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1",
			from:     board.D3,
			to:       board.E5,
			expected: Losing,
		},
	}
	for _, c := range cases {
		pos, err := board.ParseFEN(c.fen)
		require.NoError(t, err)
		m := board.NewMove(c.from, c.to)
		require.Equal(t, c.expected, Capture(pos, m))
	}
}

func TestCaptureWinningWhenVictimOutvaluesAttacker(t *testing.T) {
	// Pawn takes undefended queen: trivially winning without needing a
	// recapture sequence.
	pos, err := board.ParseFEN("4k3/8/8/8/3q4/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := board.NewMove(board.E3, board.D4)
	require.Equal(t, Winning, Capture(pos, m))
}

func TestCaptureEqualTrade(t *testing.T) {
	// Rook takes rook, recaptured by a second rook of equal value: a
	// dead-even trade.
	pos, err := board.ParseFEN("3rk3/8/8/3r4/3R4/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	m := board.NewMove(board.D4, board.D5)
	require.Equal(t, Equal, Capture(pos, m))
}

// TestGainQuietMove exercises Gain on non-capturing moves: the search's
// quiet-move SEE pruning (§4.3) needs a numeric value for a move that
// captures nothing, by asking what the opponent can immediately win back
// on the destination square.
func TestGainQuietMove(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/4p3/8/8/4N3/4K3 w - - 0 1")
	require.NoError(t, err)

	// d4 is guarded by the e5 pawn and nothing defends the knight there:
	// the knight is lost next move for nothing in return.
	require.Equal(t, -300, Gain(pos, board.NewMove(board.E2, board.D4)))

	// c3 isn't attacked by anything: a free, safe quiet move.
	require.Equal(t, 0, Gain(pos, board.NewMove(board.E2, board.C3)))
}
