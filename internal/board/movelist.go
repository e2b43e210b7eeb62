package board

// MoveList is a fixed-capacity move buffer: move generation happens on the
// hot path of every search node, so it avoids the slice-growth allocations
// a plain []Move would incur.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList returns an empty list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends m. Callers are trusted not to exceed the 256-move capacity;
// no legal chess position comes close.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

func (ml *MoveList) Len() int {
	return ml.count
}

func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap exchanges two slots, used by the search's in-place selection sort
// over move-ordering scores.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear resets the list to empty without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice exposes the populated prefix of the backing array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// UndoInfo is everything MakeMove captures that UnmakeMove needs to restore
// the position exactly, since the incremental bitboard/hash updates a move
// applies aren't all individually invertible without this snapshot.
type UndoInfo struct {
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
	PawnKey        uint64
	Checkers       Bitboard
	KingSquare     [2]Square
	Pieces         [2][6]Bitboard
	Occupied       [2]Bitboard
	AllOccupied    Bitboard
	Valid          bool
}
