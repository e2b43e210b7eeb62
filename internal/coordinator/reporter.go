package coordinator

import (
	"sync"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/search"
)

// reporterWorker serialises the two user-facing callbacks through a single
// goroutine, so a caller embedding the engine never needs its own locking
// around them. latest is guarded by a mutex because it is written from
// this goroutine's DepthFinished handling and may be inspected externally
// via Latest.
type reporterWorker struct {
	cmds chan reporterCommand

	onDepthFinished func(search.Result)
	onBestMove      func(search.Result)

	mu     sync.Mutex
	latest *search.Result

	infinite bool
	side     board.Color
	haveSide bool
}

func newReporterWorker(cmds chan reporterCommand, onDepthFinished, onBestMove func(search.Result)) *reporterWorker {
	return &reporterWorker{cmds: cmds, onDepthFinished: onDepthFinished, onBestMove: onBestMove}
}

func (w *reporterWorker) run() {
	for cmd := range w.cmds {
		switch c := cmd.(type) {
		case cmdReporterClear:
			w.mu.Lock()
			w.latest = nil
			w.mu.Unlock()
			w.haveSide = false

		case cmdReporterSetOptions:
			w.infinite = c.infinite

		case cmdReporterSetSideToMove:
			w.side = c.side
			w.haveSide = true

		case cmdReporterDepthFinished:
			res := c.result
			w.mu.Lock()
			w.latest = &res
			w.mu.Unlock()
			if w.onDepthFinished != nil {
				w.onDepthFinished(w.relative(res))
			}

		case cmdReporterStop:
			if c.reason == reporterStopFinished && w.infinite {
				continue
			}
			w.mu.Lock()
			latest := w.latest
			w.latest = nil
			w.mu.Unlock()
			if latest != nil && w.onBestMove != nil {
				w.onBestMove(w.relative(*latest))
			}

		case cmdReporterTerminate:
			return
		}
	}
}

// relative re-signs a side-to-move-relative score to White's perspective,
// keeping it for White and negating it for Black.
func (w *reporterWorker) relative(res search.Result) search.Result {
	if w.haveSide && w.side == board.Black {
		res.Score = -res.Score
	}
	return res
}

// Latest returns a snapshot of the most recently reported result, or nil
// if none has arrived since the last Clear.
func (w *reporterWorker) Latest() *search.Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.latest == nil {
		return nil
	}
	r := *w.latest
	return &r
}
