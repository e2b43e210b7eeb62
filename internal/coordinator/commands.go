package coordinator

import (
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/search"
)

// searchCommand is a message sent to the search worker. Each concrete type
// below is one variant; a type switch in the worker loop dispatches on it.
type searchCommand interface {
	isSearchCommand()
}

type cmdSetHashSize struct {
	bytes int
	ack   chan struct{}
}

type cmdClearHashTable struct {
	ack chan struct{}
}

type cmdSetSearchParams struct {
	params search.Params
	ack    chan struct{}
}

type cmdSearch struct {
	history *board.PositionHistory
	opts    search.Options
}

type cmdSearchStop struct{}

type cmdSearchTerminate struct{}

func (cmdSetHashSize) isSearchCommand()     {}
func (cmdClearHashTable) isSearchCommand()  {}
func (cmdSetSearchParams) isSearchCommand() {}
func (cmdSearch) isSearchCommand()          {}
func (cmdSearchStop) isSearchCommand()      {}
func (cmdSearchTerminate) isSearchCommand() {}

// timerCommand is a message sent to the timer worker.
type timerCommand interface {
	isTimerCommand()
}

type cmdTimerStart struct {
	dur time.Duration
}

type cmdTimerStop struct{}

type cmdTimerTerminate struct{}

func (cmdTimerStart) isTimerCommand()     {}
func (cmdTimerStop) isTimerCommand()      {}
func (cmdTimerTerminate) isTimerCommand() {}

// reporterStopReason distinguishes an explicit Stop command from a search
// finishing on its own, since an Infinite search only reports a best move
// on the former.
type reporterStopReason int

const (
	reporterStopCommand reporterStopReason = iota
	reporterStopFinished
)

// reporterCommand is a message sent to the best-move reporter worker.
type reporterCommand interface {
	isReporterCommand()
}

type cmdReporterClear struct{}

type cmdReporterSetOptions struct {
	infinite bool
}

type cmdReporterSetSideToMove struct {
	side board.Color
}

type cmdReporterDepthFinished struct {
	result search.Result
}

type cmdReporterStop struct {
	reason reporterStopReason
}

type cmdReporterTerminate struct{}

func (cmdReporterClear) isReporterCommand()         {}
func (cmdReporterSetOptions) isReporterCommand()    {}
func (cmdReporterSetSideToMove) isReporterCommand() {}
func (cmdReporterDepthFinished) isReporterCommand() {}
func (cmdReporterStop) isReporterCommand()          {}
func (cmdReporterTerminate) isReporterCommand()     {}
