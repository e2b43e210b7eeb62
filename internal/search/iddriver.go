package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/searchdata"
)

// Run drives searchRec across increasing depths, 1..targetDepth, using an
// aspiration window centered on the previous iteration's score (the first
// iteration searches the full range, since there is no prior score to
// center on) and widening on either side whenever a search fails low or
// high at the current window. report, if non-nil, is called with the
// result of every completed iteration; the final return value is the
// result of the last iteration that completed before the search was
// stopped (by the node/time limits in d, or an externally raised Stop). If
// the search is stopped during the first iteration, that partial
// iteration's result is reported and returned instead.
func Run(d *Data, targetDepth int, report func(Result)) Result {
	if targetDepth <= 0 {
		targetDepth = MaxDepth
	}
	if targetDepth > MaxDepth {
		targetDepth = MaxDepth
	}

	var best Result
	var lastScore score.Score

	for depth := 1; depth <= targetDepth; depth++ {
		d.SearchDepth = depth

		var window *searchdata.AspirationWindow
		if depth == 1 {
			window = searchdata.Infinite()
		} else {
			window = searchdata.New(lastScore)
		}

		var s score.Score
		for {
			alpha, beta := window.Alpha(), window.Beta()
			s = d.searchRec(depth, 0, alpha, beta, true, true)
			if d.aborted() {
				break
			}
			if s <= alpha && alpha > score.NegInf {
				window.WidenDown()
				continue
			}
			if s >= beta && beta < score.PosInf {
				window.WidenUp()
				continue
			}
			break
		}

		if d.aborted() {
			if depth == 1 {
				best = resultFromDepth(d, depth, s)
				if report != nil {
					report(best)
				}
			}
			break
		}

		lastScore = s
		best = resultFromDepth(d, depth, s)
		if report != nil {
			report(best)
		}

		if score.IsMating(s) && depth > 1 {
			break
		}
		if d.MateIn > 0 && score.IsMating(s) {
			if dist := score.MateDist(s); dist != score.NegInf && absInt(int(dist)) <= 2*d.MateIn-1 {
				break
			}
		}
		if d.TimeMgr != nil && d.TimeMgr.SoftExpired() {
			break
		}
	}

	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func resultFromDepth(d *Data, depth int, s score.Score) Result {
	var pv []board.Move
	if depth <= d.PV.MaxDepth() {
		pv = d.PV.PVMoveList(depth)
	}
	bestMove := board.NoMove
	if len(pv) > 0 {
		bestMove = pv[0]
	}

	var elapsed time.Duration
	if d.TimeMgr != nil {
		elapsed = d.TimeMgr.Elapsed()
	} else {
		elapsed = time.Since(d.StartTime)
	}
	nodes := d.NodeCount()
	var nps uint64
	if secs := elapsed.Seconds(); secs > 0 {
		nps = uint64(float64(nodes) / secs)
	}

	return Result{
		Depth:              depth,
		Score:              s,
		Nodes:              nodes,
		NPS:                nps,
		TimeMs:             uint64(elapsed.Milliseconds()),
		HashfullPermille:   d.TT.LoadFactorPermille(),
		BestMove:           bestMove,
		PrincipalVariation: pv,
	}
}
