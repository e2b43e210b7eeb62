package ordering

import "github.com/corvidchess/corvid/internal/board"

const maxPly = 128

// KillerTable holds, for each search ply, the two most recent quiet moves
// that caused a beta cutoff there. Killers are ply-local rather than
// position-local: they exploit the fact that sibling nodes at the same ply
// often share good refutations.
type KillerTable struct {
	killers [maxPly][2]board.Move
}

// NewKillerTable returns an empty killer table.
func NewKillerTable() *KillerTable {
	return &KillerTable{}
}

// Add records m as a new killer at ply, rotating out the older of the two
// stored killers. A move already stored at this ply is not re-added.
func (k *KillerTable) Add(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if k.killers[ply][0] == m {
		return
	}
	k.killers[ply][1] = k.killers[ply][0]
	k.killers[ply][0] = m
}

// Killers returns the two killer moves stored at ply (either may be NoMove).
func (k *KillerTable) Killers(ply int) (board.Move, board.Move) {
	if ply < 0 || ply >= maxPly {
		return board.NoMove, board.NoMove
	}
	return k.killers[ply][0], k.killers[ply][1]
}

// IsKiller reports whether m is one of the two killers stored at ply.
func (k *KillerTable) IsKiller(ply int, m board.Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	return k.killers[ply][0] == m || k.killers[ply][1] == m
}

// Clear erases every stored killer. Called once at the start of each new
// search, since killers from a previous search are no longer relevant.
func (k *KillerTable) Clear() {
	for i := range k.killers {
		k.killers[i][0] = board.NoMove
		k.killers[i][1] = board.NoMove
	}
}
