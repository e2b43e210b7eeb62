package searchdata

import "github.com/corvidchess/corvid/internal/score"

// steps is the expanding window schedule applied independently on the alpha
// and beta sides: 40, 160, 640 centipawns, then effectively infinite.
var steps = [4]int32{40, 160, 640, int32(^uint16(0))}

// AspirationWindow is a narrow alpha/beta window around an expected score,
// widened independently on each side whenever the search fails low or high.
type AspirationWindow struct {
	center   int32
	idxAlpha int
	idxBeta  int
}

// Infinite returns a window spanning the entire score range, used for the
// first iterative-deepening iteration where there is no prior score to
// center on.
func Infinite() *AspirationWindow {
	return &AspirationWindow{idxAlpha: len(steps) - 1, idxBeta: len(steps) - 1}
}

// New returns a window centered on s using the narrowest step.
func New(s score.Score) *AspirationWindow {
	return &AspirationWindow{center: int32(s)}
}

func clampToScore(v int32) score.Score {
	if v < int32(score.NegInf) {
		return score.NegInf
	}
	if v > int32(score.PosInf) {
		return score.PosInf
	}
	return score.Score(v)
}

// Alpha returns the window's lower bound.
func (w *AspirationWindow) Alpha() score.Score {
	return clampToScore(w.center - steps[w.idxAlpha])
}

// Beta returns the window's upper bound.
func (w *AspirationWindow) Beta() score.Score {
	return clampToScore(w.center + steps[w.idxBeta])
}

// WidenDown expands the window on the alpha side, for a fail-low re-search.
func (w *AspirationWindow) WidenDown() {
	if w.idxAlpha < len(steps)-1 {
		w.idxAlpha++
	}
}

// WidenUp expands the window on the beta side, for a fail-high re-search.
func (w *AspirationWindow) WidenUp() {
	if w.idxBeta < len(steps)-1 {
		w.idxBeta++
	}
}
