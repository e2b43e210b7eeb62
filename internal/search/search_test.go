package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/ordering"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/tt"
)

func newTestData(t *testing.T, fen string) (*Data, *board.PositionHistory) {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	pos.UpdateCheckers()
	history := board.NewPositionHistory(pos)
	var stop atomic.Bool
	d := NewData(history, tt.New(1<<20), eval.Evaluator{}, DefaultParams(),
		ordering.NewHistoryTable(), ordering.NewCounterTable(), ordering.NewKillerTable(),
		ordering.NewLMRTable(DefaultParams().LMRCentiBase, DefaultParams().LMRCentiDivisor),
		&stop, nil, 0, nil, 0)
	return d, history
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, back-rank mate already set up: Re8 mates.
	d, _ := newTestData(t, "6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	result := Run(d, 3, nil)
	if !score.IsWhiteMating(result.Score) {
		t.Fatalf("expected a forced mate score, got %v", result.Score)
	}
	if result.BestMove == board.NoMove {
		t.Fatal("expected a best move")
	}
}

func TestSearchDetectsStalemate(t *testing.T) {
	// Black to move, no legal moves, not in check: stalemate.
	d, _ := newTestData(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	result := Run(d, 2, nil)
	if result.Score != score.EqPosition {
		t.Fatalf("expected EqPosition for stalemate, got %v", result.Score)
	}
}

func TestSearchDetectsCheckmate(t *testing.T) {
	// Black to move, already checkmated.
	d, history := newTestData(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	d.SearchDepth = 2 // as Run and SearchRootPVS set it before calling searchRec
	s := d.searchRec(2, 0, score.NegInf, score.PosInf, true, true)
	if !score.IsBlackMating(s) {
		t.Fatalf("expected a score favoring the mating side (black to move is mated), got %v", s)
	}
	_ = history
}

func TestSearchRootAndNegamaxAgreeShallow(t *testing.T) {
	positions := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/4K3/8/4R3 w - - 0 1",
	}
	for _, fen := range positions {
		d, _ := newTestData(t, fen)
		pvsScore := d.SearchRootPVS(3, score.NegInf, score.PosInf)

		d2, _ := newTestData(t, fen)
		negaScore := d2.NegamaxRoot(3)

		if pvsScore != negaScore {
			t.Errorf("%s: searchRec=%v negamaxRec=%v, want agreement at depth<=3", fen, pvsScore, negaScore)
		}
	}
}

func TestQuiescenceStandPat(t *testing.T) {
	// A quiet position with no captures available: quiescence should return
	// exactly the static evaluation, since there is nothing to search.
	d, _ := newTestData(t, board.StartFEN)
	d.SearchDepth = 1 // quiescence buckets node counts by the iteration depth
	s := d.quiescence(0, 0, score.NegInf, score.PosInf)
	staticEval := d.Eval.EvalRelative(d.History.CurrentPos())
	if s != staticEval {
		t.Fatalf("expected stand-pat value %v in a quiet position, got %v", staticEval, s)
	}
}

func TestSEEPruningAvoidsLosingQueenCapture(t *testing.T) {
	// White queen on d2 can capture the pawn on d5, but it is defended by
	// the pawn on c6: Qxd5 loses the queen for a pawn, a see.Losing
	// capture. The search should never choose it.
	d, _ := newTestData(t, "4k3/8/2p5/3p4/8/8/3Q4/4K3 w - - 0 1")
	result := Run(d, 3, nil)
	losingCapture := board.NewMove(board.D2, board.D5)
	if result.BestMove == losingCapture {
		t.Fatal("search chose a queen-for-pawn losing capture")
	}
}

func TestSearchDetectsThreefoldRepetitionDraw(t *testing.T) {
	// White is up a whole rook but shuffles it (and the black king) back
	// and forth; by the third occurrence of the starting arrangement the
	// line is drawn by repetition regardless of the material edge (§8
	// test 9).
	d, history := newTestData(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	shuffle := []board.Move{
		board.NewMove(board.A1, board.A2),
		board.NewMove(board.E8, board.D8),
		board.NewMove(board.A2, board.A1),
		board.NewMove(board.D8, board.E8), // 2nd occurrence of the start
		board.NewMove(board.A1, board.A2),
		board.NewMove(board.E8, board.D8),
		board.NewMove(board.A2, board.A1),
		board.NewMove(board.D8, board.E8), // 3rd occurrence of the start
	}
	for _, m := range shuffle {
		history.DoMove(m)
	}

	if got := history.RepetitionCount(); got < 3 {
		t.Fatalf("expected the shuffled position to have recurred 3 times, got %d", got)
	}

	s := d.searchRec(1, 1, score.NegInf, score.PosInf, true, true)
	if s != score.EqPosition {
		t.Fatalf("expected EqPosition for a threefold-repeated position, got %v", s)
	}
}

func TestTimeManagerUnboundedNeverExpires(t *testing.T) {
	tm := NewTimeManager(Options{}, board.White)
	if tm.HardExpired() || tm.SoftExpired() {
		t.Fatal("an unbounded time manager should never expire")
	}
}

func TestTimeManagerBudgetRespectsMoveOverhead(t *testing.T) {
	opts := Options{
		WhiteTime:    10 * time.Second,
		MovesToGo:    40,
		MoveOverhead: 50 * time.Millisecond,
	}
	tm := NewTimeManager(opts, board.White)
	if tm.Hard() > opts.WhiteTime-opts.MoveOverhead {
		t.Fatalf("hard budget %v exceeds clock minus overhead", tm.Hard())
	}
	if tm.Soft() > tm.Hard() {
		t.Fatalf("soft budget %v exceeds hard budget %v", tm.Soft(), tm.Hard())
	}
}

func TestRunRespectsNodeLimit(t *testing.T) {
	d, _ := newTestData(t, board.StartFEN)
	d.NodeLimit = 50
	Run(d, MaxDepth, nil)
	if d.NodeCount() < d.NodeLimit {
		t.Fatalf("expected at least %d nodes before stopping, got %d", d.NodeLimit, d.NodeCount())
	}
}

func TestIterativeDeepeningReportsIncreasingDepth(t *testing.T) {
	d, _ := newTestData(t, board.StartFEN)
	var depths []int
	Run(d, 3, func(r Result) {
		depths = append(depths, r.Depth)
	})
	for i, want := range []int{1, 2, 3} {
		if i >= len(depths) || depths[i] != want {
			t.Fatalf("expected depth %d reported at index %d, got %v", want, i, depths)
		}
	}
}
