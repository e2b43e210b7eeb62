package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalDetection(t *testing.T) {
	cases := []struct {
		name      string
		fen       string
		checkmate bool
		stalemate bool
	}{
		{
			name:      "back-rank mate",
			fen:       "R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
			checkmate: true,
		},
		{
			name: "king can capture the checking rook",
			fen:  "6Rk/8/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:      "KP vs K stalemate",
			fen:       "7k/5K2/6P1/8/8/8/8/8 b - - 0 1",
			stalemate: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			require.NoError(t, err)
			pos.UpdateCheckers()

			require.Equal(t, tc.checkmate, pos.IsCheckmate())
			require.Equal(t, tc.stalemate, pos.IsStalemate())
			if tc.checkmate || tc.stalemate {
				require.False(t, pos.HasLegalMoves())
			} else {
				require.True(t, pos.HasLegalMoves())
			}
		})
	}
}
