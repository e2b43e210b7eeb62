package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
)

// negamaxRec is a plain negamax search with no transposition table, no move
// ordering beyond MVV/LVA-via-scoreMoves, no pruning and no reductions. It
// exists purely as an oracle to differentially test searchRec's pruning and
// PVS machinery against: on terminal and shallow (depth <= 3) positions the
// two must agree, since nothing searchRec prunes at those depths should
// change the game-theoretic value.
func (d *Data) negamaxRec(depthRemaining, ply int, alpha, beta score.Score) score.Score {
	d.nodeCount++
	if d.aborted() {
		return 0
	}

	if ply > 0 {
		if d.History.RepetitionCount() >= 3 {
			return score.EqPosition
		}
		if d.History.CurrentPos().HalfMoveClock >= 100 {
			return score.EqPosition
		}
	}

	if depthRemaining <= 0 {
		return d.quiescence(ply, 0, alpha, beta)
	}

	pos := d.History.CurrentPos()
	inCheck := pos.InCheck()

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return score.EqPosition
	}

	scores := scoreMoves(d, pos, moves, board.NoMove, ply)

	bestScore := score.NegInf
	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		m := moves.Get(i)

		movingPiece := pos.PieceAt(m.From())
		d.stack[ply] = plyState{move: m, piece: movingPiece}
		d.History.DoMove(m)
		childScore := -d.negamaxRec(depthRemaining-1, ply+1, -beta, -alpha)
		d.History.UndoLastMove()

		if d.aborted() {
			return 0
		}

		if childScore > bestScore {
			bestScore = childScore
		}
		if childScore > alpha {
			alpha = childScore
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore
}

// NegamaxRoot runs negamaxRec from the current position to depth, returning
// its value. Used by tests as an oracle, not by the production search path.
func (d *Data) NegamaxRoot(depth int) score.Score {
	d.SearchDepth = depth
	return d.negamaxRec(depth, 0, score.NegInf, score.PosInf)
}

// SearchRootPVS runs searchRec from the current position at depth within
// the given [alpha, beta) aspiration window, returning its value. Exported
// for tests that want the production search path without the iterative
// deepening driver's bookkeeping.
func (d *Data) SearchRootPVS(depth int, alpha, beta score.Score) score.Score {
	d.SearchDepth = depth
	return d.searchRec(depth, 0, alpha, beta, true, true)
}
