package board

// NullMoveUndo is the (small) state MakeNullMove saves for UnmakeNullMove to
// restore — far less than UndoInfo needs for a real move, since passing the
// turn touches only en passant and the hash.
type NullMoveUndo struct {
	EnPassant Square
	Hash      uint64
}

// MakeNullMove passes the turn without moving a piece — the null-move
// pruning heuristic's "what if I got a free tempo" probe.
func (p *Position) MakeNullMove() NullMoveUndo {
	undo := NullMoveUndo{
		EnPassant: p.EnPassant,
		Hash:      p.Hash,
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	p.EnPassant = NoSquare
	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= zobristSideToMove

	p.UpdateCheckers()

	return undo
}

// UnmakeNullMove reverses MakeNullMove.
func (p *Position) UnmakeNullMove(undo NullMoveUndo) {
	p.EnPassant = undo.EnPassant
	p.Hash = undo.Hash
	p.SideToMove = p.SideToMove.Other()

	p.UpdateCheckers()
}

// HasNonPawnMaterial reports whether the side to move has any piece other
// than pawns and king — null-move pruning is disabled without this, since
// king-and-pawn endgames are exactly where zugzwang (every move makes your
// position worse) defeats the "a free tempo can't hurt" assumption.
func (p *Position) HasNonPawnMaterial() bool {
	us := p.SideToMove
	return p.Pieces[us][Knight]|p.Pieces[us][Bishop]|p.Pieces[us][Rook]|p.Pieces[us][Queen] != 0
}
