package board

// RepetitionTracker tracks position hashes along a line of play so repetition
// draws can be detected without rescanning the whole game. Only positions
// reachable since the last irreversible move (capture, pawn move, castle)
// count toward a repetition, since the side to move is only guaranteed to
// match every second entry.
type RepetitionTracker struct {
	history                []uint64
	pliesSinceIrreversible []int
}

// NewRepetitionTracker returns an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{}
}

// Push records a new position hash. isReversible should be false whenever the
// move that produced this position was a capture, a pawn move, a castle, or
// otherwise cannot be repeated (resets the repetition window).
func (rt *RepetitionTracker) Push(hash uint64, isReversible bool) {
	rt.history = append(rt.history, hash)
	if isReversible && len(rt.pliesSinceIrreversible) > 0 {
		last := rt.pliesSinceIrreversible[len(rt.pliesSinceIrreversible)-1]
		rt.pliesSinceIrreversible = append(rt.pliesSinceIrreversible, last+1)
	} else if isReversible {
		rt.pliesSinceIrreversible = append(rt.pliesSinceIrreversible, 1)
	} else {
		rt.pliesSinceIrreversible = append(rt.pliesSinceIrreversible, 0)
	}
}

// Pop removes the most recently pushed position.
func (rt *RepetitionTracker) Pop() {
	n := len(rt.history)
	if n == 0 {
		return
	}
	rt.history = rt.history[:n-1]
	rt.pliesSinceIrreversible = rt.pliesSinceIrreversible[:n-1]
}

// CurrentPosRepetitions returns how many times the current position (the most
// recently pushed hash) has occurred within the reversible window, counting
// itself. A result of 1 means no repetition; 3 means a threefold repetition.
func (rt *RepetitionTracker) CurrentPosRepetitions() int {
	n := len(rt.history)
	if n == 0 {
		return 0
	}
	hash := rt.history[n-1]

	window := rt.pliesSinceIrreversible[n-1] + 1
	if window > n {
		window = n
	}

	count := 1
	for i := n - 3; i >= n-window; i -= 2 {
		if rt.history[i] == hash {
			count++
		}
	}
	return count
}

// PositionHistory wraps a Position with a do/undo move stack and repetition
// tracking, serving as the search layer's view of "the game so far".
type PositionHistory struct {
	pos   *Position
	undo  []UndoInfo
	moves []Move
	rep   *RepetitionTracker
}

// NewPositionHistory starts a history rooted at pos. The supplied position is
// taken by reference; callers should not mutate it externally afterward.
func NewPositionHistory(pos *Position) *PositionHistory {
	h := &PositionHistory{
		pos: pos,
		rep: NewRepetitionTracker(),
	}
	h.rep.Push(pos.Hash, true)
	return h
}

// CurrentPos returns the position at the head of the history.
func (h *PositionHistory) CurrentPos() *Position {
	return h.pos
}

// CurrentPosHash returns the Zobrist hash of the position at the head of the
// history.
func (h *PositionHistory) CurrentPosHash() uint64 {
	return h.pos.Hash
}

// SideToMove returns the color to move in the current position.
func (h *PositionHistory) SideToMove() Color {
	return h.pos.SideToMove
}

// isIrreversible reports whether m cannot be repeated: captures, pawn moves,
// castling, and en passant all reset the repetition window, matching the
// standard 50-move-rule reset conditions.
func isIrreversible(pos *Position, m Move) bool {
	if m.IsCapture(pos) || m.IsCastling() || m.IsEnPassant() {
		return true
	}
	return pos.PieceAt(m.From()).Type() == Pawn
}

// DoMove applies m to the current position, pushing it onto the undo stack
// and the repetition tracker.
func (h *PositionHistory) DoMove(m Move) {
	irreversible := isIrreversible(h.pos, m)
	undo := h.pos.MakeMove(m)
	h.undo = append(h.undo, undo)
	h.moves = append(h.moves, m)
	h.rep.Push(h.pos.Hash, !irreversible)
}

// UndoLastMove reverts the most recently applied move.
func (h *PositionHistory) UndoLastMove() {
	n := len(h.moves)
	if n == 0 {
		return
	}
	m := h.moves[n-1]
	undo := h.undo[n-1]
	h.moves = h.moves[:n-1]
	h.undo = h.undo[:n-1]
	h.rep.Pop()
	h.pos.UnmakeMove(m, undo)
}

// RepetitionCount returns how many times the current position has occurred
// within the reversible window, counting itself (1 = no repetition).
func (h *PositionHistory) RepetitionCount() int {
	return h.rep.CurrentPosRepetitions()
}

// Ply returns the number of moves made since the history's root position.
func (h *PositionHistory) Ply() int {
	return len(h.moves)
}
