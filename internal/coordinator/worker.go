package coordinator

import (
	"log"
	"sync/atomic"

	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/ordering"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/tt"
	"github.com/dustin/go-humanize"
)

// searchWorker owns the transposition table and the long-lived ordering
// tables, serving one searchCommand at a time from cmds. It is the only
// goroutine that ever touches tbl/histTbl/counterTbl/killerTbl.
type searchWorker struct {
	cmds     chan searchCommand
	reportCh chan<- reporterCommand
	logger   *log.Logger

	tbl        *tt.Table
	histTbl    *ordering.HistoryTable
	counterTbl *ordering.CounterTable
	killerTbl  *ordering.KillerTable
	lmr        *ordering.LMRTable
	params     search.Params

	// pending holds commands drained from cmds while a search was in
	// flight, to be processed (in order) before resuming the normal
	// blocking receive. Only runSearch populates it: Stop sets the abort
	// flag and is not queued, Terminate sets the abort flag and is queued
	// as well, and every other command is queued as is.
	pending []searchCommand
}

func newSearchWorker(cmds chan searchCommand, reportCh chan<- reporterCommand, logger *log.Logger) *searchWorker {
	params := search.DefaultParams()
	return &searchWorker{
		cmds:       cmds,
		reportCh:   reportCh,
		logger:     logger,
		tbl:        tt.New(defaultHashBytes),
		histTbl:    ordering.NewHistoryTable(),
		counterTbl: ordering.NewCounterTable(),
		killerTbl:  ordering.NewKillerTable(),
		lmr:        ordering.NewLMRTable(params.LMRCentiBase, params.LMRCentiDivisor),
		params:     params,
	}
}

func (w *searchWorker) run() {
	for {
		cmd, ok := w.next()
		if !ok {
			return
		}
		switch c := cmd.(type) {
		case cmdSetHashSize:
			w.tbl.Resize(c.bytes)
			w.logger.Printf("[coordinator] hash table resized to %s", humanize.IBytes(uint64(c.bytes)))
			close(c.ack)
		case cmdClearHashTable:
			w.tbl.Clear()
			close(c.ack)
		case cmdSetSearchParams:
			w.params = c.params
			w.lmr = ordering.NewLMRTable(w.params.LMRCentiBase, w.params.LMRCentiDivisor)
			close(c.ack)
		case cmdSearch:
			w.runSearch(c)
		case cmdSearchStop:
			// Nothing in flight; a Stop with no prior Search is a no-op.
		case cmdSearchTerminate:
			return
		}
	}
}

// next returns the next command to process, preferring anything stashed in
// pending (received out of turn while a search was running) over a fresh
// receive, so FIFO order is preserved even though runSearch peeks ahead on
// the channel while the search goroutine is active.
func (w *searchWorker) next() (searchCommand, bool) {
	if len(w.pending) > 0 {
		cmd := w.pending[0]
		w.pending = w.pending[1:]
		return cmd, true
	}
	cmd, ok := <-w.cmds
	return cmd, ok
}

// runSearch drives one iterative-deepening search to completion. The search
// itself runs on a short-lived child goroutine so this worker can keep
// polling cmds for a Stop/Terminate without blocking on the (possibly long)
// synchronous call; the worker never touches tbl/the ordering tables while
// the child is active, so there is still only ever one goroutine reading or
// writing them at a time.
func (w *searchWorker) runSearch(c cmdSearch) {
	var stop atomic.Bool
	us := c.history.SideToMove()
	tm := search.NewTimeManager(c.opts, us)
	w.tbl.NewSearch()
	w.histTbl.Decay()
	w.killerTbl.Clear()

	d := search.NewData(c.history, w.tbl, eval.Evaluator{}, w.params,
		w.histTbl, w.counterTbl, w.killerTbl, w.lmr,
		&stop, tm, c.opts.Nodes, c.opts.SearchMoves, c.opts.MateIn)

	depth := c.opts.Depth
	if depth <= 0 {
		depth = search.MaxDepth
	}

	done := make(chan struct{})
	go func() {
		search.Run(d, depth, func(r search.Result) {
			w.reportCh <- cmdReporterDepthFinished{result: r}
		})
		close(done)
	}()

loop:
	for {
		select {
		case <-done:
			break loop
		case cmd, ok := <-w.cmds:
			if !ok {
				stop.Store(true)
				<-done
				break loop
			}
			switch cmd.(type) {
			case cmdSearchStop:
				stop.Store(true)
			case cmdSearchTerminate:
				stop.Store(true)
				w.pending = append(w.pending, cmd)
			default:
				w.pending = append(w.pending, cmd)
			}
		}
	}

	w.reportCh <- cmdReporterStop{reason: reporterStopFinished}
}
