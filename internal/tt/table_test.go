package tt

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/corvidchess/corvid/internal/board"
	"github.com/stretchr/testify/require"
)

func hashOf(s string) uint64 {
	return xxhash.Sum64String(s)
}

func TestNewRoundsDownToPowerOfTwo(t *testing.T) {
	// 16 bytes/slot: 10 slots worth of bytes rounds down to 8.
	table := New(10 * entrySizeBytes)
	require.Equal(t, 8, table.Size())
}

func TestNewNeverEmpty(t *testing.T) {
	table := New(0)
	require.Equal(t, 1, table.Size())
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(64 * entrySizeBytes)
	_, ok := table.Probe(hashOf("start"))
	require.False(t, ok)
}

func TestStoreThenProbeRoundTrips(t *testing.T) {
	table := New(64 * entrySizeBytes)
	h := hashOf("position-a")
	entry := NewEntry(6, 0, Exact, board.NewMove(board.E2, board.E4), 35, 35)

	table.Store(h, entry)
	got, ok := table.Probe(h)
	require.True(t, ok)
	require.Equal(t, entry, got)
}

func TestProbeDetectsKeyCollision(t *testing.T) {
	table := New(1 * entrySizeBytes) // single slot: every hash collides
	hashA := hashOf("seed-a")
	hashB := hashOf("seed-b")
	require.NotEqual(t, hashA, hashB)

	table.Store(hashA, NewEntry(4, 0, Exact, board.Move(0), 10, 10))
	_, ok := table.Probe(hashB)
	require.False(t, ok, "a slot occupied by a different key must not be returned as a hit")
}

func TestStoreReplacesOnHigherPriority(t *testing.T) {
	table := New(1 * entrySizeBytes) // single slot: every hash collides
	hShallow := hashOf("position-b")
	hDeep := hashOf("position-c")

	shallow := NewEntry(2, 0, LowerBound, board.Move(0), 10, 10)
	deep := NewEntry(8, 0, LowerBound, board.Move(0), 20, 20)

	table.Store(hShallow, shallow)
	table.Store(hDeep, deep)

	got, ok := table.Probe(hDeep)
	require.True(t, ok)
	require.Equal(t, deep, got, "higher-depth same-age entry must replace a shallower one")
}

func TestStoreKeepsHigherPriorityWhenChallengedBySameSlot(t *testing.T) {
	table := New(1 * entrySizeBytes) // single slot: every hash collides
	hA := hashOf("keep-a")
	hB := hashOf("keep-b")

	deep := NewEntry(8, 0, Exact, board.Move(0), 20, 20)
	table.Store(hA, deep)

	shallow := NewEntry(2, 0, UpperBound, board.Move(0), 5, 5)
	table.Store(hB, shallow)

	// hB replaced hA's slot only if shallow outranks deep, which it must not.
	_, ok := table.Probe(hA)
	require.True(t, ok, "a lower-priority challenger from a different key must not evict a higher-priority entry")
}

func TestClearEmptiesAllSlots(t *testing.T) {
	table := New(8 * entrySizeBytes)
	table.Store(hashOf("x"), NewEntry(1, 0, Exact, board.Move(0), 1, 1))
	table.Clear()
	_, ok := table.Probe(hashOf("x"))
	require.False(t, ok)
	require.Equal(t, 0, table.LoadFactorPermille())
}

func TestLoadFactorPermille(t *testing.T) {
	table := New(4 * entrySizeBytes)
	require.Equal(t, 4, table.Size())
	table.Store(hashOf("one"), NewEntry(1, 0, Exact, board.Move(0), 1, 1))
	require.Greater(t, table.LoadFactorPermille(), 0)
}

func TestNewSearchWrapsAge(t *testing.T) {
	table := New(4 * entrySizeBytes)
	for i := 0; i <= MaxSearchDepth; i++ {
		table.NewSearch()
	}
	require.Equal(t, uint8(0), table.Age())
}
