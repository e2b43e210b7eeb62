// Package eval implements a small material-plus-piece-square static
// evaluator. The search engine treats the evaluator as an external
// collaborator (see the core search design); this package exists only so
// the rest of the repository has a concrete one to call.
package eval

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
)

// tempoBonus is a small bonus for the side to move, reflecting the practical
// value of having the next move.
const tempoBonus = 10

// Piece-square tables, white's perspective; mirrored via Square.Mirror for
// black. A standard middlegame/endgame PST set with no passed-pawn,
// mobility, king-safety or threat terms: this package is a plain,
// inexpensive collaborator for the search core, not a tuned evaluator.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var psts = [...][64]int{pawnPST, knightPST, bishopPST, rookPST, queenPST}

// phaseWeight gives each piece type's contribution to the tapered-eval game
// phase counter (pawns and kings contribute nothing).
var phaseWeight = [7]int{0, 1, 1, 2, 4, 0, 0}

const maxPhase = 24

// clampCP keeps the raw evaluation inside the centipawn band the score
// package reserves for positional evaluations, in case of an extreme
// material imbalance (e.g. many promoted queens).
func clampCP(v int) score.Score {
	const lo, hi = -31000, 31000
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return score.Score(v)
}

// Eval returns the static evaluation of pos from White's perspective: a
// positive score favors white regardless of the side to move.
func Eval(pos *board.Position) score.Score {
	var mg, eg, phase int

	for c := board.White; c <= board.Black; c++ {
		sign := 1
		if c == board.Black {
			sign = -1
		}
		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := pos.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				mg += sign * board.PieceValue[pt]
				eg += sign * board.PieceValue[pt]

				pstSq := sq
				if c == board.Black {
					pstSq = sq.Mirror()
				}
				if pt == board.King {
					mg += sign * kingMidgamePST[pstSq]
					eg += sign * kingEndgamePST[pstSq]
				} else {
					v := psts[pt][pstSq]
					mg += sign * v
					eg += sign * v
				}

				phase += phaseWeight[pt]
			}
		}
	}

	if phase > maxPhase {
		phase = maxPhase
	}
	total := (mg*phase + eg*(maxPhase-phase)) / maxPhase
	return clampCP(total)
}

// EvalRelative returns Eval from the side-to-move's perspective (negated
// for black), with the tempo bonus applied, matching how the alpha-beta
// core wants its static evaluation: positive always means "good for the
// side about to move".
func EvalRelative(pos *board.Position) score.Score {
	s := Eval(pos)
	if pos.SideToMove == board.Black {
		s = -s
	}
	return clampCP(int(s) + tempoBonus)
}

// Evaluator adapts the package-level Eval/EvalRelative functions to the
// search package's Evaluator interface.
type Evaluator struct{}

// Eval implements search.Evaluator.
func (Evaluator) Eval(pos *board.Position) score.Score { return Eval(pos) }

// EvalRelative implements search.Evaluator.
func (Evaluator) EvalRelative(pos *board.Position) score.Score { return EvalRelative(pos) }
