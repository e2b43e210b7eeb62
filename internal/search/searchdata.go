package search

import (
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/ordering"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/searchdata"
	"github.com/corvidchess/corvid/internal/tt"
)

// plyState is the per-ply scratch the alpha-beta core threads through
// recursive calls: the move made to reach this ply (and the piece that
// made it, for counter-move lookups) and the node's static evaluation (for
// the "improving" heuristic).
type plyState struct {
	move       board.Move
	piece      board.Piece
	staticEval score.Score
}

// Data is the mutable state owned by one search invocation: the position
// under search, the shared transposition table, move-ordering tables,
// PV/node-count bookkeeping, and the stop/time/node limits the iterative
// deepening driver and alpha-beta core both consult.
//
// A Data is used by exactly one goroutine for exactly one Search command;
// the coordinator never shares it across concurrent searches.
type Data struct {
	History *board.PositionHistory
	TT      *tt.Table
	Eval    Evaluator
	Params  Params

	HistoryTable *ordering.HistoryTable
	CounterTable *ordering.CounterTable
	KillerTable  *ordering.KillerTable
	LMR          *ordering.LMRTable

	PV    *searchdata.PVTable
	Nodes *searchdata.NodeCounter

	// Stop is polled at every node boundary; setting it aborts the search
	// cooperatively. Owned by the coordinator, shared by pointer.
	Stop *atomic.Bool

	StartTime time.Time
	TimeMgr   *TimeManager
	NodeLimit uint64

	// MateIn restricts the iterative-deepening loop to stop as soon as a
	// forced mate within this many moves for the side to move is proven;
	// 0 means unset (search to the normal depth/time limit instead).
	MateIn int

	// SearchDepth is the iterative-deepening depth currently being
	// searched, used to bucket NodeCounter entries.
	SearchDepth int

	// RootMoves restricts the root move loop when non-empty (SearchMoves
	// option); empty means "search everything legal".
	RootMoves []board.Move

	nodeCount uint64
	stack     [MaxPly + 1]plyState
}

// NewData builds search state for one invocation. tbl, histTbl, counterTbl,
// killerTbl and lmr are long-lived, owned by the coordinator across
// searches (history decays and killers clear between searches rather than
// being reallocated); pv and nodes are fresh per search.
func NewData(history *board.PositionHistory, tbl *tt.Table, ev Evaluator, params Params,
	histTbl *ordering.HistoryTable, counterTbl *ordering.CounterTable, killerTbl *ordering.KillerTable, lmr *ordering.LMRTable,
	stop *atomic.Bool, tm *TimeManager, nodeLimit uint64, rootMoves []board.Move, mateIn int) *Data {
	return &Data{
		History:      history,
		TT:           tbl,
		Eval:         ev,
		Params:       params,
		HistoryTable: histTbl,
		CounterTable: counterTbl,
		KillerTable:  killerTbl,
		LMR:          lmr,
		PV:           searchdata.NewPVTable(),
		Nodes:        searchdata.NewNodeCounter(),
		Stop:         stop,
		StartTime:    time.Now(),
		TimeMgr:      tm,
		NodeLimit:    nodeLimit,
		RootMoves:    rootMoves,
		MateIn:       mateIn,
	}
}

// NodeCount returns the total number of nodes visited so far in this
// search (across all iterative-deepening iterations run on this Data).
func (d *Data) NodeCount() uint64 {
	return d.nodeCount
}

// aborted reports whether the search should unwind immediately: either the
// coordinator raised the stop flag, or a node/time limit was crossed. It is
// checked cheaply (every node) so the test is kept to a handful of
// comparisons, with the more expensive time.Now() call only reached every
// 2048 nodes, mirroring how engines throttle clock reads in the hot path.
func (d *Data) aborted() bool {
	if d.Stop.Load() {
		return true
	}
	if d.NodeLimit != 0 && d.nodeCount >= d.NodeLimit {
		return true
	}
	if d.nodeCount&2047 == 0 && d.TimeMgr != nil && d.TimeMgr.HardExpired() {
		return true
	}
	return false
}
