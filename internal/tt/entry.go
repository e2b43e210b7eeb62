// Package tt implements the search engine's transposition table: a
// fixed-capacity, hash-indexed cache of previously computed node results
// with an age-aware, priority-based replacement policy.
package tt

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
)

// MaxSearchDepth bounds the depth and age fields packed into an Entry: both
// are stored in 7 bits, so age wraps modulo MaxSearchDepth+1.
const MaxSearchDepth = 127

// ScoreType classifies the kind of bound a stored score represents.
type ScoreType uint8

const (
	// None marks an empty slot.
	None ScoreType = iota
	// Exact means the stored score is the node's true minimax value (a PV node).
	Exact
	// LowerBound means the true value is at least the stored score (a cut node).
	LowerBound
	// UpperBound means the true value is at most the stored score (an all node).
	UpperBound
)

// Entry is a single transposition table slot: 8 bytes, packed the way the
// search's own in-memory representation is packed so that a (key, Entry)
// pair fits in 16 bytes.
type Entry struct {
	depthAgeType uint16 // bits 0-6: depth, 7-13: age, 14-15: score type
	bestMove     board.Move
	score        score.Score
	staticEval   score.Score
}

// NewEntry builds an Entry. depth and age must each fit in 7 bits.
func NewEntry(depth int, age uint8, st ScoreType, bestMove board.Move, sc, staticEval score.Score) Entry {
	return Entry{
		depthAgeType: uint16(depth)&0x7f | uint16(age)&0x7f<<7 | uint16(st)&0x3<<14,
		bestMove:     bestMove,
		score:        sc,
		staticEval:   staticEval,
	}
}

// IsValid reports whether the entry holds real data (a non-empty slot).
func (e Entry) IsValid() bool {
	return e.ScoreType() != None
}

// Depth returns the remaining search depth the entry was stored at.
func (e Entry) Depth() int {
	return int(e.depthAgeType & 0x7f)
}

// Age returns the search generation the entry was written in.
func (e Entry) Age() uint8 {
	return uint8(e.depthAgeType>>7) & 0x7f
}

// ScoreType returns the entry's bound kind.
func (e Entry) ScoreType() ScoreType {
	return ScoreType(e.depthAgeType>>14) & 0x3
}

// WithScoreType returns a copy of e with its bound kind replaced.
func (e Entry) WithScoreType(st ScoreType) Entry {
	e.depthAgeType = e.depthAgeType&0x3fff | uint16(st)&0x3<<14
	return e
}

// BestMove returns the entry's stored best move.
func (e Entry) BestMove() board.Move {
	return e.bestMove
}

// Score returns the entry's stored score. Mating scores are stored relative
// to the node that wrote them (see WithDecreasedMateDistance/WithIncreasedMateDistance).
func (e Entry) Score() score.Score {
	return e.score
}

// StaticEval returns the entry's cached static evaluation.
func (e Entry) StaticEval() score.Score {
	return e.staticEval
}

// WithIncreasedMateDistance lengthens a mating score's distance by plies.
// Call this when reading an entry out of the table at plies from the root:
// it converts the stored node-relative distance into a distance from the
// root.
func (e Entry) WithIncreasedMateDistance(plies int) Entry {
	e.score = score.IncMateDistBy(e.score, plies)
	return e
}

// WithDecreasedMateDistance shortens a mating score's distance by plies.
// Call this before storing an entry written at plies from the root: it
// converts the search's root-relative distance into a distance from that
// node.
func (e Entry) WithDecreasedMateDistance(plies int) Entry {
	e.score = score.DecMateDistBy(e.score, plies)
	return e
}

// BoundSoft re-classifies e's bound type against a narrower (alpha, beta)
// window without discarding the score, for use when an entry computed under
// one window is reused at another. Returns false if the entry cannot be used
// as any kind of bound at the new window (an UpperBound that isn't below
// alpha, or a LowerBound that isn't at least beta).
func (e Entry) BoundSoft(alpha, beta score.Score) (Entry, bool) {
	switch e.ScoreType() {
	case Exact:
		switch {
		case e.Score() >= beta:
			return e.WithScoreType(LowerBound), true
		case e.Score() < alpha:
			return e.WithScoreType(UpperBound), true
		default:
			return e, true
		}
	case LowerBound:
		if e.Score() >= beta {
			return e.WithScoreType(LowerBound), true
		}
	case UpperBound:
		if e.Score() < alpha {
			return e.WithScoreType(UpperBound), true
		}
	}
	return Entry{}, false
}

// Prio compares e (a candidate new entry) against other (the entry currently
// occupying the slot) for replacement purposes. A negative result means e
// should replace other; zero or positive means other should be kept.
//
// Priority order: entries closer to the current search age always win;
// among entries both written at the current age, Exact (PV) nodes beat any
// bound type; otherwise
// higher search depth wins; the final tiebreak is Exact < LowerBound <
// UpperBound.
func (e Entry) Prio(other Entry, age uint8) int {
	const divisor = uint16(MaxSearchDepth + 1)
	halfmovesSelf := uint8((uint16(age) + divisor - uint16(e.Age())) % divisor)
	halfmovesOther := uint8((uint16(age) + divisor - uint16(other.Age())) % divisor)

	if halfmovesSelf < halfmovesOther {
		return -1
	}
	if halfmovesSelf > halfmovesOther {
		return 1
	}

	if halfmovesSelf == 0 {
		if e.ScoreType() == Exact && other.ScoreType() != Exact {
			return -1
		}
		if other.ScoreType() == Exact && e.ScoreType() != Exact {
			return 1
		}
	}

	if e.Depth() != other.Depth() {
		if e.Depth() > other.Depth() {
			return -1
		}
		return 1
	}

	switch {
	case e.ScoreType() < other.ScoreType():
		return -1
	case e.ScoreType() > other.ScoreType():
		return 1
	default:
		return 0
	}
}
