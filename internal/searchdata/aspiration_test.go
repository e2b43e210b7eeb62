package searchdata

import (
	"testing"

	"github.com/corvidchess/corvid/internal/score"
	"github.com/stretchr/testify/require"
)

func TestAspirationWindowInfinite(t *testing.T) {
	aw := Infinite()
	require.Equal(t, score.NegInf, aw.Alpha())
	require.Equal(t, score.PosInf, aw.Beta())
}

func TestAspirationWindowWiden(t *testing.T) {
	s := score.Score(200)
	aw := New(s)
	require.Equal(t, s-score.Score(steps[0]), aw.Alpha())
	require.Equal(t, s+score.Score(steps[0]), aw.Beta())

	aw.WidenDown()
	require.Equal(t, s-score.Score(steps[1]), aw.Alpha())
	require.Equal(t, s+score.Score(steps[0]), aw.Beta())

	aw.WidenUp()
	require.Equal(t, s-score.Score(steps[1]), aw.Alpha())
	require.Equal(t, s+score.Score(steps[1]), aw.Beta())

	for i := 0; i < len(steps); i++ {
		aw.WidenDown()
		aw.WidenUp()
	}
	require.Equal(t, score.NegInf, aw.Alpha())
	require.Equal(t, score.PosInf, aw.Beta())

	negAW := New(-1000)
	for i := 0; i < len(steps); i++ {
		negAW.WidenDown()
		negAW.WidenUp()
	}
	require.Equal(t, score.NegInf, negAW.Alpha())
	require.Equal(t, score.PosInf, negAW.Beta())
}
