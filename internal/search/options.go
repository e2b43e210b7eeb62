// Package search implements the iterative-deepening alpha-beta searcher:
// the recursive negamax-PVS core with its transposition, ordering and
// pruning heuristics, plus the driver loop that walks it across depths.
package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
)

// MaxPly bounds every per-ply stack the search allocates. No legal line of
// play reaches it; it exists purely so those stacks can be fixed-size
// arrays instead of slices.
const MaxPly = 128

// MaxDepth is the largest iterative-deepening depth the driver will ever
// request, matching the transposition table's 7-bit depth field.
const MaxDepth = 100

// Evaluator is the search's external static-evaluation collaborator.
type Evaluator interface {
	// Eval returns the evaluation from White's perspective.
	Eval(pos *board.Position) score.Score
	// EvalRelative returns the evaluation from the side-to-move's
	// perspective (negated for black).
	EvalRelative(pos *board.Position) score.Score
}

// Options carries the parameters a protocol front-end (or an embedding
// caller) supplies for one search.
type Options struct {
	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MovesToGo            int // 0 means "unspecified", defaults to 40
	Depth                int // 0 means "unspecified", defaults to MaxDepth
	Nodes                uint64
	MateIn               int // search for mate in <= N moves; 0 means unset
	MoveTime             time.Duration
	Infinite             bool
	MoveOverhead         time.Duration
	SearchMoves          []board.Move // restrict root moves; nil means all
	Ponder               bool
}

// Result is a snapshot of the search's progress at the end of one
// iterative-deepening iteration (or at the moment it was stopped).
type Result struct {
	Depth              int
	Score              score.Score
	Nodes              uint64
	NPS                uint64
	TimeMs             uint64
	HashfullPermille   int
	BestMove           board.Move
	PrincipalVariation []board.Move
}

// Params collects the tunable knobs the alpha-beta core and iterative
// deepening driver use for pruning and reduction decisions. DefaultParams
// returns reasonable values; an embedding caller may replace them wholesale
// between searches via the coordinator's SetSearchParams command.
type Params struct {
	// NullMoveMinDepth is the shallowest remaining depth at which null-move
	// pruning is attempted.
	NullMoveMinDepth int
	// NullMoveBaseReduction and NullMoveDepthDivisor compute R in
	// depth-1-R: R = NullMoveBaseReduction + depthRemaining/NullMoveDepthDivisor.
	NullMoveBaseReduction int
	NullMoveDepthDivisor  int

	// ReverseFutilityMaxDepth caps how deep reverse futility pruning fires.
	ReverseFutilityMaxDepth int
	// ReverseFutilityMargin is the per-ply margin subtracted from static
	// eval before comparing to beta.
	ReverseFutilityMargin int

	// FutilityMaxDepth caps how deep (plain) futility pruning fires.
	FutilityMaxDepth int
	// FutilityBase and FutilityMargin compute the margin added to static
	// eval: FutilityBase + FutilityMargin*depthRemaining.
	FutilityBase   int
	FutilityMargin int

	// LateMovePruningBase and LateMovePruningFactor compute the quiet-move
	// quota: LateMovePruningBase + LateMovePruningFactor*depthRemaining.
	LateMovePruningBase   int
	LateMovePruningFactor int

	// SEEPruningMaxDepth is the deepest remaining depth at which SEE
	// pruning (below) is attempted in the main search loop (quiescence
	// always prunes losing captures regardless of depth).
	SEEPruningMaxDepth int
	// SEEPruningMarginQuiet and SEEPruningMarginTactical are the per-ply
	// margins a move's see.Gain must clear to survive SEE pruning: a
	// move is skipped once depthRemaining*margin exceeds its gain.
	// Tactical (capture/promotion) moves get a looser margin than quiet
	// ones since a losing capture still carries more positional
	// information than a losing quiet move.
	SEEPruningMarginQuiet    int
	SEEPruningMarginTactical int

	// LMRCentiBase/LMRCentiDivisor seed the late-move-reduction table (see
	// ordering.NewLMRTable).
	LMRCentiBase    int
	LMRCentiDivisor int

	// QuiescenceMaxPly bounds quiescence recursion depth from the root of
	// the quiescence call (not from the game root).
	QuiescenceMaxPly int
}

// DefaultParams returns the engine's built-in tuning, grounded on widely
// used values for each heuristic (Stockfish-family reverse futility/LMR
// shapes, CPW-style late-move pruning quotas).
func DefaultParams() Params {
	return Params{
		NullMoveMinDepth:         3,
		NullMoveBaseReduction:    3,
		NullMoveDepthDivisor:     4,
		ReverseFutilityMaxDepth:  8,
		ReverseFutilityMargin:    80,
		FutilityMaxDepth:         6,
		FutilityBase:             100,
		FutilityMargin:           80,
		LateMovePruningBase:      4,
		LateMovePruningFactor:    3,
		SEEPruningMaxDepth:       5,
		SEEPruningMarginQuiet:    -60,
		SEEPruningMarginTactical: -90,
		LMRCentiBase:             75,
		LMRCentiDivisor:          230,
		QuiescenceMaxPly:         32,
	}
}
