package tt

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/stretchr/testify/require"
)

func TestDepthAgeScoreType(t *testing.T) {
	cases := []struct {
		depth int
		age   uint8
		st    ScoreType
	}{
		{0, 0, Exact},
		{0, 0, LowerBound},
		{0, 0, UpperBound},
		{0, 127, Exact},
		{0, 127, LowerBound},
		{0, 127, UpperBound},
		{127, 0, Exact},
		{127, 0, LowerBound},
		{127, 0, UpperBound},
		{127, 127, Exact},
		{127, 127, LowerBound},
		{127, 127, UpperBound},
	}
	for _, c := range cases {
		e := NewEntry(c.depth, c.age, c.st, board.Move(0), 0, 0)
		require.Equal(t, c.depth, e.Depth())
		require.Equal(t, c.age, e.Age())
		require.Equal(t, c.st, e.ScoreType())
	}
}

// TestPrioAgeDominates is spec testable property 11: an entry from an older
// search age never outranks a same-age entry, regardless of depth or bound
// type.
func TestPrioAgeDominates(t *testing.T) {
	oldEntry := NewEntry(8, 4, Exact, board.Move(0), 0, 0)
	newEntry := NewEntry(2, 5, UpperBound, board.Move(0), 0, 0)

	// Candidate is the freshly computed newEntry; table currently holds oldEntry.
	require.Less(t, newEntry.Prio(oldEntry, 5), 0, "newer entry must outrank an older one regardless of depth/type")
	require.Greater(t, oldEntry.Prio(newEntry, 5), 0, "older entry must not outrank a newer one")
}

func TestPrioExactBeatsBoundAtSameAge(t *testing.T) {
	exact := NewEntry(3, 5, Exact, board.Move(0), 0, 0)
	lower := NewEntry(3, 5, LowerBound, board.Move(0), 0, 0)
	require.Less(t, exact.Prio(lower, 5), 0)
	require.Greater(t, lower.Prio(exact, 5), 0)
}

func TestPrioHigherDepthWinsAtSameAgeAndType(t *testing.T) {
	deep := NewEntry(10, 5, LowerBound, board.Move(0), 0, 0)
	shallow := NewEntry(2, 5, LowerBound, board.Move(0), 0, 0)
	require.Less(t, deep.Prio(shallow, 5), 0)
	require.Greater(t, shallow.Prio(deep, 5), 0)
}

func TestPrioTiebreakOrdersExactLowerUpper(t *testing.T) {
	exact := NewEntry(4, 5, Exact, board.Move(0), 0, 0)
	lower := NewEntry(4, 5, LowerBound, board.Move(0), 0, 0)
	upper := NewEntry(4, 5, UpperBound, board.Move(0), 0, 0)
	require.Less(t, exact.Prio(lower, 5), 0)
	require.Less(t, lower.Prio(upper, 5), 0)
	require.Less(t, exact.Prio(upper, 5), 0)
	require.Equal(t, 0, exact.Prio(exact, 5))
}

func TestBoundSoft(t *testing.T) {
	exact := NewEntry(4, 0, Exact, board.Move(0), 100, 0)

	e, ok := exact.BoundSoft(-1000, 1000)
	require.True(t, ok)
	require.Equal(t, Exact, e.ScoreType())

	e, ok = exact.BoundSoft(-1000, 50)
	require.True(t, ok)
	require.Equal(t, LowerBound, e.ScoreType())

	e, ok = exact.BoundSoft(200, 1000)
	require.True(t, ok)
	require.Equal(t, UpperBound, e.ScoreType())

	lower := NewEntry(4, 0, LowerBound, board.Move(0), 100, 0)
	_, ok = lower.BoundSoft(-1000, 200)
	require.False(t, ok, "a lower bound below beta cannot be used as any bound")

	upper := NewEntry(4, 0, UpperBound, board.Move(0), 100, 0)
	_, ok = upper.BoundSoft(50, 1000)
	require.False(t, ok, "an upper bound above alpha cannot be used as any bound")
}
