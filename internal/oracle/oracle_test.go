package oracle

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/notation"
	"github.com/lgbarn/gym-chess-go/internal/testutil"
)

// Positions without an en passant square, where the two generators must
// agree move for move.
var agreementFENs = []struct {
	name string
	fen  string
}{
	{"initial", notation.InitialFEN},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"kiwipete black", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1"},
	{"promotion", "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"},
	{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1"},
	{"check evasion", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1"},
	{"castling through check", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
}

func TestLegalMoves_Initial(t *testing.T) {
	moves, err := LegalMoves(notation.InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, moves[0], "a2a3")
}

func TestLegalMoves_CollapsesPromotions(t *testing.T) {
	moves, err := LegalMoves("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	n := 0
	for _, m := range moves {
		if m == "b7b8" {
			n++
		}
	}
	testutil.AssertEqual(t, n, 1)
}

func TestEngineMoves_CastlesAsKingMoves(t *testing.T) {
	st, err := notation.StateFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	moves, err := EngineMoves(st)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, containsString(moves, "e1g1"))
	testutil.AssertTrue(t, containsString(moves, "e1c1"))
}

func TestCompare(t *testing.T) {
	for _, tt := range agreementFENs {
		t.Run(tt.name, func(t *testing.T) {
			st, err := notation.StateFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			d, err := Compare(st)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, d.Empty(), d.String())
		})
	}
}

// TestCompare_Walk plays the first legal action repeatedly and compares
// every position along the way.
func TestCompare_Walk(t *testing.T) {
	st := engine.InitialState()
	for ply := 0; ply < 40; ply++ {
		d, err := Compare(st)
		testutil.AssertNoError(t, err)
		if !d.Empty() {
			t.Fatalf("ply %d: %s", ply, d)
		}

		actions, err := engine.LegalActions(st, st.Current)
		testutil.AssertNoError(t, err)
		if len(actions) == 0 {
			return
		}
		a := actions[len(actions)/2]
		st, _, err = engine.NextState(st, a, st.Current)
		testutil.AssertNoError(t, err)
		if !st.Board.Contains(chess.W(chess.King)) || !st.Board.Contains(chess.B(chess.King)) {
			return
		}
	}
}

func TestDiff_String(t *testing.T) {
	testutil.AssertEqual(t, Diff{}.String(), "generators agree")

	d := Diff{FEN: "x", OnlyEngine: []string{"a1a2"}, OnlyOracle: []string{"b1b2", "c1c2"}}
	testutil.AssertFalse(t, d.Empty())
	testutil.AssertEqual(t, d.String(), "x: engine only [a1a2], oracle only [b1b2 c1c2]")
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
