package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/board"
)

// TimeManager turns Options' clock fields into a hard/soft time budget for
// one search, following the formulas the protocol layer's time control is
// specified against: hard ~= clock/sqrt(movesToGo) + inc, capped by
// clock-moveOverhead; soft ~= clock/movesToGo + inc/2.
type TimeManager struct {
	soft, hard time.Duration
	start      time.Time
	unbounded  bool
}

const defaultMovesToGo = 40

// NewTimeManager derives a budget for us (the side to move) from opts. A
// zero clock with no MoveTime set (depth/node-limited or infinite search)
// yields an unbounded manager that never trips on elapsed time.
func NewTimeManager(opts Options, us board.Color) *TimeManager {
	tm := &TimeManager{start: time.Now()}

	// Pondering searches speculatively during the opponent's clock; the
	// real time budget only starts once a ponderhit arrives from the
	// protocol layer (out of scope here, per §1), so the closest faithful
	// behavior without that handshake is to rely solely on an explicit
	// Stop, same as an infinite search.
	if opts.Ponder {
		tm.unbounded = true
		return tm
	}

	if opts.MoveTime > 0 {
		tm.soft = opts.MoveTime
		tm.hard = opts.MoveTime
		return tm
	}

	clock := opts.WhiteTime
	inc := opts.WhiteInc
	if us == board.Black {
		clock = opts.BlackTime
		inc = opts.BlackInc
	}

	if clock <= 0 {
		tm.unbounded = true
		return tm
	}

	mtg := opts.MovesToGo
	if mtg <= 0 {
		mtg = defaultMovesToGo
	}

	hard := clock/time.Duration(isqrt(mtg)) + inc
	if cap := clock - opts.MoveOverhead; hard > cap {
		hard = cap
	}
	if hard < 0 {
		hard = 0
	}

	soft := clock/time.Duration(mtg) + inc/2
	if soft > hard {
		soft = hard
	}

	tm.hard = hard
	tm.soft = soft
	return tm
}

// isqrt returns floor(sqrt(n)) for n >= 1, used for the hard-limit formula.
func isqrt(n int) int {
	if n < 1 {
		return 1
	}
	r := 1
	for r*r <= n {
		r++
	}
	return r - 1
}

// Elapsed returns the time since the manager was created.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

// HardExpired reports whether the hard time limit has passed. An unbounded
// manager (no clock supplied) never expires.
func (tm *TimeManager) HardExpired() bool {
	if tm.unbounded {
		return false
	}
	return tm.Elapsed() >= tm.hard
}

// SoftExpired reports whether the soft time budget has passed, used by the
// iterative deepening driver to decide whether starting another depth is
// worthwhile.
func (tm *TimeManager) SoftExpired() bool {
	if tm.unbounded {
		return false
	}
	return tm.Elapsed() >= tm.soft
}

// Hard returns the hard time budget.
func (tm *TimeManager) Hard() time.Duration { return tm.hard }

// Soft returns the soft time budget.
func (tm *TimeManager) Soft() time.Duration { return tm.soft }
