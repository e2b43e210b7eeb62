// Package see implements static exchange evaluation: a non-searching
// minimax of a single capture sequence on one square, used both to order
// captures and to prune clearly-losing ones before they reach the search.
package see

import "github.com/corvidchess/corvid/internal/board"

// CaptureType classifies the outcome of a capture sequence.
type CaptureType uint8

const (
	Winning CaptureType = iota
	Equal
	Losing
)

// pieceTypeValue gives each piece type's exchange value. These intentionally
// use the simple 100/300/300/500/900 scale rather than board.PieceValue's
// slightly different bishop/knight split (320/330): the exchange evaluator
// only needs to compare relative material within one capture sequence, and
// a symmetric knight/bishop value keeps SEE's Winning/Equal/Losing
// classification from flipping on bishop-for-knight trades, which the
// finer-grained positional evaluator's split would otherwise do.
var pieceTypeValue = [7]int{100, 300, 300, 500, 900, 20000, 0}

// Capture classifies capture move m played from pos's current position.
func Capture(pos *board.Position, m board.Move) CaptureType {
	return classify(Gain(pos, m))
}

// Gain returns the net material value of playing m and then replaying the
// full capture/recapture sequence on its destination square with both
// sides always recapturing with their least valuable attacker: positive
// means the side to move comes out ahead, negative means behind. Unlike
// Capture, m need not be a capture itself: a quiet move is scored by the
// value of whatever the opponent can immediately win back on the
// destination square, which is what the search's quiet-move SEE pruning
// (depth-scaled margin, §4.3) needs that a 3-way CaptureType cannot
// express.
func Gain(pos *board.Position, m board.Move) int {
	var victimValue int
	switch {
	case m.IsEnPassant():
		victimValue = pieceTypeValue[board.Pawn]
	case pos.PieceAt(m.To()) != board.NoPiece:
		victimValue = pieceTypeValue[pos.PieceAt(m.To()).Type()]
	}
	attackerValue := pieceTypeValue[pos.PieceAt(m.From()).Type()]

	if victimValue > attackerValue {
		return victimValue - attackerValue
	}

	v := board.NewSeeBoard(pos)
	mover := pos.SideToMove
	v.ApplyMove(m, mover)
	return victimValue - exchange(&v, m.To(), mover.Other(), victimValue)
}

// exchange replays the capture sequence on target starting with side to
// move, using v as disposable scratch state: since v is a throwaway copy
// (unlike the make/unmake used elsewhere), the forward pass never needs an
// undo — each captured value is recorded before the board is mutated, and
// the backward minimax pass only needs those recorded values, not the board
// itself.
func exchange(v *board.SeeBoard, target board.Square, side board.Color, valueAlreadyExchanged int) int {
	var targetValues []int
	valueFromStart := valueAlreadyExchanged
	valueToEnd := 0
	cur := side

	for {
		attackers := v.AttackersByColor(target, cur)
		fromSq, pt, ok := board.LeastValuableAttacker(attackers, &v.Pieces[cur])
		if !ok {
			break
		}
		victimType, _ := v.PieceTypeAt(target)
		victimValue := pieceTypeValue[victimType]
		attackerValue := pieceTypeValue[pt]

		valueFromStart = victimValue - valueFromStart
		if valueFromStart > attackerValue {
			valueToEnd = victimValue
			break
		}

		targetValues = append(targetValues, victimValue)
		v.ApplyMove(board.NewMove(fromSq, target), cur)
		cur = cur.Other()
	}

	for i := len(targetValues) - 1; i >= 0; i-- {
		diff := targetValues[i] - valueToEnd
		if diff < 0 {
			diff = 0
		}
		valueToEnd = diff
	}
	return valueToEnd
}

func classify(v int) CaptureType {
	switch {
	case v > 0:
		return Winning
	case v == 0:
		return Equal
	default:
		return Losing
	}
}
