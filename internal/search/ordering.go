package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/see"
)

// Move-ordering score buckets. Higher sorts earlier. Buckets are spaced far
// enough apart that a move can never cross into a neighboring bucket: the
// transposition move always outranks every capture, every capture
// (including a losing one) outranks killers/counters/quiets, and quiets are
// ranked purely by history score within their own bucket.
const (
	bucketTT      = int64(1) << 40
	bucketWinning = int64(1) << 36
	bucketEqual   = int64(1) << 35
	bucketLosing  = int64(1) << 34
	bucketKiller1 = int64(1) << 33
	bucketKiller2 = int64(1) << 32
	bucketCounter = int64(1) << 31
	bucketQuiet   = int64(0)
)

// mvvLva scores a capture by victim value (major factor) minus attacker
// value (minor factor), so higher-value victims taken by lower-value
// attackers sort first within their SEE class.
func mvvLva(pos *board.Position, m board.Move) int64 {
	var victim board.PieceType
	if m.IsEnPassant() {
		victim = board.Pawn
	} else {
		victim = pos.PieceAt(m.To()).Type()
	}
	attacker := pos.PieceAt(m.From()).Type()
	return int64(board.PieceValue[victim])*16 - int64(board.PieceValue[attacker])
}

// scoreMoves assigns each move in ml an ordering score per the search's
// priority list: TT move, then captures by SEE class (MVV/LVA within
// class), then killers, then the counter move, then quiets by history.
func scoreMoves(d *Data, pos *board.Position, ml *board.MoveList, ttMove board.Move, ply int) []int64 {
	scores := make([]int64, ml.Len())
	k1, k2 := d.KillerTable.Killers(ply)

	var prevPiece board.Piece = board.NoPiece
	var prevTo board.Square = board.NoSquare
	if ply > 0 {
		prevPiece = d.stack[ply-1].piece
		prevTo = d.stack[ply-1].move.To()
	}
	counter := board.NoMove
	if prevPiece != board.NoPiece {
		counter = d.CounterTable.Counter(prevPiece, prevTo)
	}

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		switch {
		case m == ttMove:
			scores[i] = bucketTT
		case m.IsCapture(pos) || m.IsPromotion():
			base := bucketEqual
			switch see.Capture(pos, m) {
			case see.Winning:
				base = bucketWinning
			case see.Losing:
				base = bucketLosing
			}
			scores[i] = base + mvvLva(pos, m)
		case m == k1:
			scores[i] = bucketKiller1
		case m == k2:
			scores[i] = bucketKiller2
		case m == counter:
			scores[i] = bucketCounter
		default:
			p := pos.PieceAt(m.From())
			scores[i] = bucketQuiet + int64(d.HistoryTable.Priority(p, m.To()))
		}
	}
	return scores
}

// pickMove selection-sorts the move at position idx forward: it finds the
// highest-scoring move among ml[idx:] and swaps it into idx, so the caller
// can iterate ml in descending score order without sorting the whole list
// up front (useful since a beta cutoff often ends the loop early).
func pickMove(ml *board.MoveList, scores []int64, idx int) {
	best := idx
	for i := idx + 1; i < ml.Len(); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if best != idx {
		ml.Swap(idx, best)
		scores[idx], scores[best] = scores[best], scores[idx]
	}
}
