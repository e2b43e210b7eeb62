// Package coordinator wires the alpha-beta search core into the
// three-goroutine engine an embedding caller drives: a search worker that
// owns the transposition table and runs iterative deepening, a timer that
// turns a movetime budget into a Stop, and a best-move reporter that
// serialises the two progress callbacks. All coordination is by channel;
// the only shared mutable state is the reporter's mutex-guarded latest
// result.
package coordinator

import (
	"errors"
	"log"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/dustin/go-humanize"
)

// defaultHashBytes is the transposition table size a freshly constructed
// Engine starts with, before any SetHashSize call.
const defaultHashBytes = 64 << 20

// ErrSearchWithoutPosition is returned by Search when no position has been
// set via SetPosition.
var ErrSearchWithoutPosition = errors.New("coordinator: cannot search without a position")

// Engine is an embeddable search engine: construct with NewEngine, call
// SetPosition then Search to drive one iterative-deepening search, and
// Terminate to shut it down. Safe for use from one goroutine at a time;
// the callbacks passed to NewEngine are invoked from the reporter's own
// goroutine, never the caller's.
type Engine struct {
	searchCh chan searchCommand
	timerCh  chan timerCommand
	reportCh chan reporterCommand

	timerDone  chan struct{}
	searchDone chan struct{}
	reportDone chan struct{}

	reporter *reporterWorker
	logger   *log.Logger

	history *board.PositionHistory
}

// NewEngine starts the three workers and returns a ready-to-use Engine.
// onDepthFinished is called once per completed iterative-deepening
// iteration; onBestMove is called once a search concludes (either it ran
// to completion/time/node limit, or Stop was called). Both may be nil.
// logger defaults to log.Default() when nil.
func NewEngine(onDepthFinished, onBestMove func(search.Result), logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}

	e := &Engine{
		searchCh:   make(chan searchCommand, 64),
		timerCh:    make(chan timerCommand, 8),
		reportCh:   make(chan reporterCommand, 64),
		timerDone:  make(chan struct{}),
		searchDone: make(chan struct{}),
		reportDone: make(chan struct{}),
		logger:     logger,
	}

	sw := newSearchWorker(e.searchCh, e.reportCh, logger)
	e.reporter = newReporterWorker(e.reportCh, onDepthFinished, onBestMove)
	tw := newTimerWorker(e.timerCh, e.searchCh)

	go func() { defer close(e.reportDone); e.reporter.run() }()
	go func() { defer close(e.searchDone); sw.run() }()
	go func() { defer close(e.timerDone); tw.run() }()

	logger.Printf("[coordinator] engine started, hash table %s", humanize.IBytes(defaultHashBytes))
	return e
}

// SetPosition records the position (and move history, for repetition
// detection) the next Search call searches from.
func (e *Engine) SetPosition(history *board.PositionHistory) {
	e.history = history
}

// SetHashSize resizes the transposition table. Only safe when no search is
// in flight; Stop first if one might be running.
func (e *Engine) SetHashSize(bytes int) {
	ack := make(chan struct{})
	e.searchCh <- cmdSetHashSize{bytes: bytes, ack: ack}
	<-ack
}

// ClearHashTable zeroes the transposition table. Only safe when no search
// is in flight.
func (e *Engine) ClearHashTable() {
	ack := make(chan struct{})
	e.searchCh <- cmdClearHashTable{ack: ack}
	<-ack
}

// SetSearchParams replaces the pruning/reduction tuning knobs wholesale.
// Only safe when no search is in flight.
func (e *Engine) SetSearchParams(p search.Params) {
	ack := make(chan struct{})
	e.searchCh <- cmdSetSearchParams{params: p, ack: ack}
	<-ack
}

// Search starts one iterative-deepening search over the position last set
// via SetPosition. It returns immediately; progress and the final result
// arrive through the callbacks given to NewEngine. Any search already in
// flight is stopped first.
func (e *Engine) Search(opts search.Options) error {
	if e.history == nil {
		return ErrSearchWithoutPosition
	}

	e.reportCh <- cmdReporterClear{}
	e.reportCh <- cmdReporterSetOptions{infinite: opts.Infinite}
	e.reportCh <- cmdReporterSetSideToMove{side: e.history.SideToMove()}

	e.timerCh <- cmdTimerStop{}
	e.searchCh <- cmdSearchStop{}
	e.searchCh <- cmdSearch{history: e.history, opts: opts}

	if opts.MoveTime > 0 {
		e.timerCh <- cmdTimerStart{dur: opts.MoveTime}
	}
	return nil
}

// Stop aborts a search in flight, if any, and reports the best move found
// so far through the onBestMove callback. A no-op if nothing is searching.
func (e *Engine) Stop() {
	e.timerCh <- cmdTimerStop{}
	e.searchCh <- cmdSearchStop{}
	e.reportCh <- cmdReporterStop{reason: reporterStopCommand}
}

// Latest returns a snapshot of the most recently completed iteration's
// result, or nil if none has arrived since the last Search's Clear.
func (e *Engine) Latest() *search.Result {
	return e.reporter.Latest()
}

// Terminate shuts the engine down: timer, then search, then reporter, each
// joined before the next is signalled, so no worker ever sends into a
// channel whose only reader has already exited.
func (e *Engine) Terminate() {
	e.timerCh <- cmdTimerTerminate{}
	<-e.timerDone

	e.searchCh <- cmdSearchTerminate{}
	<-e.searchDone

	e.reportCh <- cmdReporterTerminate{}
	<-e.reportDone
}
