package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/see"
	"github.com/corvidchess/corvid/internal/tt"
)

// mateScore returns the score for "no legal moves, in check" at the given
// ply: the worst possible result for the side to move, closer to the
// centipawn band the deeper the mate lies (a mate found many plies down the
// tree is worth less than one delivered immediately).
func mateScore(ply int) score.Score {
	return score.BlackWin + score.Score(ply)
}

// searchRec is the negamax-PVS core: alpha and beta are always expressed
// relative to the side to move at this node, so every recursive call
// negates both the window and the returned score. depthRemaining is the
// number of plies left before the horizon; ply is the absolute distance
// from the search root, used for mate-distance bookkeeping and the PV/killer
// tables' per-ply slots.
func (d *Data) searchRec(depthRemaining, ply int, alpha, beta score.Score, isPV, allowNull bool) score.Score {
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

	pos := d.History.CurrentPos()
	hash := d.History.CurrentPosHash()

	ttMove := board.NoMove
	var ttStaticEval score.Score
	haveTTStatic := false
	if entry, hit := d.TT.Probe(hash); hit {
		adj := entry.WithIncreasedMateDistance(ply)
		ttMove = adj.BestMove()
		ttStaticEval = adj.StaticEval()
		haveTTStatic = true
		if ply > 0 && adj.Depth() >= depthRemaining {
			if bound, ok := adj.BoundSoft(alpha, beta); ok {
				d.Nodes.IncrementCacheHits(d.SearchDepth, clampPliesFromEnd(depthRemaining, d.SearchDepth))
				return bound.Score()
			}
		}
	}

	if depthRemaining <= 0 {
		return d.quiescence(ply, 0, alpha, beta)
	}

	d.Nodes.IncrementNodes(d.SearchDepth, clampPliesFromEnd(depthRemaining, d.SearchDepth))

	inCheck := pos.InCheck()

	var staticEval score.Score
	if haveTTStatic {
		staticEval = ttStaticEval
	} else {
		staticEval = d.Eval.EvalRelative(pos)
		d.Nodes.IncrementEvalCalls(d.SearchDepth)
	}
	d.stack[ply].staticEval = staticEval

	improving := true
	if ply >= 2 {
		improving = staticEval > d.stack[ply-2].staticEval
	}

	canPrune := ply > 0 && !isPV && !inCheck && !score.IsMating(staticEval) && !score.IsMating(alpha) && !score.IsMating(beta)

	if canPrune {
		if depthRemaining <= d.Params.ReverseFutilityMaxDepth {
			margin := score.Score(d.Params.ReverseFutilityMargin * depthRemaining)
			if staticEval-margin >= beta {
				return beta
			}
		}

		if allowNull && depthRemaining >= d.Params.NullMoveMinDepth && pos.HasNonPawnMaterial() {
			r := d.Params.NullMoveBaseReduction + depthRemaining/d.Params.NullMoveDepthDivisor
			reducedDepth := depthRemaining - 1 - r
			savedMove, savedPiece := d.stack[ply].move, d.stack[ply].piece
			d.stack[ply] = plyState{move: board.NoMove, piece: board.NoPiece, staticEval: staticEval}
			undo := pos.MakeNullMove()
			nullScore := -d.searchRec(reducedDepth, ply+1, -beta, -beta+1, false, false)
			pos.UnmakeNullMove(undo)
			d.stack[ply].move, d.stack[ply].piece = savedMove, savedPiece
			if d.aborted() {
				return 0
			}
			if nullScore >= beta {
				return beta
			}
		}
	}

	futilityPrune := canPrune && depthRemaining <= d.Params.FutilityMaxDepth &&
		staticEval+score.Score(d.Params.FutilityBase+d.Params.FutilityMargin*depthRemaining) <= alpha

	lmpQuota := d.Params.LateMovePruningBase + d.Params.LateMovePruningFactor*depthRemaining

	moves := pos.GenerateLegalMoves()
	if ply == 0 && len(d.RootMoves) > 0 {
		moves = filterRootMoves(moves, d.RootMoves)
	}

	if moves.Len() == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return score.EqPosition
	}

	scores := scoreMoves(d, pos, moves, ttMove, ply)

	origAlpha := alpha
	bestScore := score.NegInf
	bestMove := board.NoMove
	moveCount := 0
	quietCount := 0

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		m := moves.Get(i)
		quiet := m.IsQuiet(pos)

		if canPrune && moveCount > 0 {
			if quiet {
				if depthRemaining <= 8 && !improving && quietCount >= lmpQuota {
					continue
				}
				if depthRemaining <= d.Params.SEEPruningMaxDepth &&
					see.Gain(pos, m) < d.Params.SEEPruningMarginQuiet*depthRemaining {
					continue
				}
			} else if depthRemaining <= d.Params.SEEPruningMaxDepth &&
				see.Gain(pos, m) < d.Params.SEEPruningMarginTactical*depthRemaining {
				continue
			}
		}

		movingPiece := pos.PieceAt(m.From())
		d.stack[ply] = plyState{move: m, piece: movingPiece, staticEval: staticEval}
		d.History.DoMove(m)
		if futilityPrune && quiet && moveCount > 0 && !d.History.CurrentPos().InCheck() {
			d.History.UndoLastMove()
			continue
		}
		moveCount++
		if quiet {
			quietCount++
		}

		var childScore score.Score
		newDepth := depthRemaining - 1

		if moveCount == 1 {
			childScore = -d.searchRec(newDepth, ply+1, -beta, -alpha, isPV, true)
		} else {
			reduction := 0
			if depthRemaining >= 3 && quiet && moveCount >= 4 && !inCheck {
				reduction = d.LMR.LateMoveDepthReduction(depthRemaining, moveCount)
				if isPV && reduction > 0 {
					reduction--
				}
				if reduction > newDepth-1 {
					reduction = newDepth - 1
				}
				if reduction < 0 {
					reduction = 0
				}
			}

			childScore = -d.searchRec(newDepth-reduction, ply+1, -alpha-1, -alpha, false, true)
			if childScore > alpha && reduction > 0 {
				childScore = -d.searchRec(newDepth, ply+1, -alpha-1, -alpha, false, true)
			}
			if childScore > alpha && childScore < beta {
				childScore = -d.searchRec(newDepth, ply+1, -beta, -alpha, true, true)
			}
		}

		d.History.UndoLastMove()

		if d.aborted() {
			return 0
		}

		if childScore > bestScore {
			bestScore = childScore
			bestMove = m
			if childScore > alpha {
				alpha = childScore
				d.PV.UpdateMoveAndCopy(depthRemaining, m)
			}
		}

		if bestScore >= beta {
			if quiet {
				d.KillerTable.Add(ply, m)
				d.HistoryTable.Prioritize(movingPiece, m.To(), depthRemaining)
				if ply > 0 && d.stack[ply-1].piece != board.NoPiece {
					d.CounterTable.Update(d.stack[ply-1].piece, d.stack[ply-1].move.To(), m)
				}
			}
			d.PV.UpdateMoveAndTruncate(depthRemaining, m)
			entry := tt.NewEntry(depthRemaining, d.TT.Age(), tt.LowerBound, bestMove, bestScore, staticEval).
				WithDecreasedMateDistance(ply)
			d.TT.Store(hash, entry)
			return bestScore
		}
	}

	scoreType := tt.UpperBound
	if bestScore > origAlpha {
		scoreType = tt.Exact
	}
	entry := tt.NewEntry(depthRemaining, d.TT.Age(), scoreType, bestMove, bestScore, staticEval).
		WithDecreasedMateDistance(ply)
	d.TT.Store(hash, entry)
	return bestScore
}

// quiescence extends the search along capture sequences (and, when in
// check, full evasions) past the horizon, to avoid misjudging a position in
// the middle of a tactical exchange. qDepth counts plies from the horizon,
// independent of ply, and is what QuiescenceMaxPly bounds.
func (d *Data) quiescence(ply, qDepth int, alpha, beta score.Score) score.Score {
	d.nodeCount++
	if d.aborted() {
		return 0
	}
	d.Nodes.IncrementNodes(d.SearchDepth, 0)

	pos := d.History.CurrentPos()
	inCheck := pos.InCheck()

	var staticEval score.Score
	if !inCheck {
		hash := d.History.CurrentPosHash()
		if entry, hit := d.TT.Probe(hash); hit {
			staticEval = entry.StaticEval()
		} else {
			staticEval = d.Eval.EvalRelative(pos)
			d.Nodes.IncrementEvalCalls(d.SearchDepth)
		}
		if staticEval >= beta {
			return staticEval
		}
		if staticEval > alpha {
			alpha = staticEval
		}
	}

	if ply >= MaxPly-1 || qDepth >= d.Params.QuiescenceMaxPly {
		if inCheck {
			return mateScore(ply)
		}
		return alpha
	}

	var moves *board.MoveList
	if inCheck {
		moves = pos.GenerateLegalMoves()
	} else {
		moves = pos.GenerateCaptures()
	}

	if moves.Len() == 0 {
		if inCheck {
			return mateScore(ply)
		}
		return alpha
	}

	scores := scoreMoves(d, pos, moves, board.NoMove, ply)

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		m := moves.Get(i)

		if !inCheck {
			if see.Capture(pos, m) == see.Losing {
				continue
			}
		}

		movingPiece := pos.PieceAt(m.From())
		d.stack[ply] = plyState{move: m, piece: movingPiece}
		d.History.DoMove(m)
		childScore := -d.quiescence(ply+1, qDepth+1, -beta, -alpha)
		d.History.UndoLastMove()

		if d.aborted() {
			return 0
		}

		if childScore >= beta {
			return childScore
		}
		if childScore > alpha {
			alpha = childScore
		}
	}

	return alpha
}

func clampPliesFromEnd(depthRemaining, searchDepth int) int {
	if depthRemaining < 0 {
		return 0
	}
	if depthRemaining > searchDepth {
		return searchDepth
	}
	return depthRemaining
}

func filterRootMoves(moves *board.MoveList, allow []board.Move) *board.MoveList {
	filtered := board.NewMoveList()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		for _, a := range allow {
			if a == m {
				filtered.Add(m)
				break
			}
		}
	}
	return filtered
}
