package engine

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/gym-chess-go/internal/errors"
	"github.com/lgbarn/gym-chess-go/internal/testutil"
)

func TestPseudoMoves_Order(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color chess.Color
		want  []string
	}{
		{
			name:  "rook directions",
			fen:   "7k/8/8/8/3R4/8/8/K7",
			color: chess.White,
			want: []string{
				"d4d5", "d4d6", "d4d7", "d4d8",
				"d4d3", "d4d2", "d4d1",
				"d4c4", "d4b4", "d4a4",
				"d4e4", "d4f4", "d4g4", "d4h4",
				"a1a2", "a1b1", "a1b2",
			},
		},
		{
			name:  "knight offsets",
			fen:   "7k/8/8/8/3N4/8/8/K7",
			color: chess.White,
			want: []string{
				"d4c6", "d4e6", "d4c2", "d4e2", "d4b5", "d4f5", "d4b3", "d4f3",
				"a1a2", "a1b1", "a1b2",
			},
		},
		{
			name:  "pawn push then captures",
			fen:   "7k/8/8/8/8/2r1n3/3P4/K7",
			color: chess.White,
			want:  []string{"d2d3", "d2d4", "d2e3", "d2c3", "a1a2", "a1b1", "a1b2"},
		},
		{
			name:  "double push blocked on the far square",
			fen:   "7k/8/8/8/3p4/8/3P4/K7",
			color: chess.White,
			want:  []string{"d2d3", "a1a2", "a1b1", "a1b2"},
		},
		{
			name:  "single push blocked",
			fen:   "7k/8/8/8/8/3p4/3P4/K7",
			color: chess.White,
			want:  []string{"a1a2", "a1b1", "a1b2"},
		},
		{
			name:  "black pawn moves down the board",
			fen:   "7k/3p4/8/8/8/8/8/K7",
			color: chess.Black,
			want:  []string{"h8h7", "h8g8", "h8g7", "d7d6", "d7d5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFromFEN(t, tt.fen, tt.color, false, false, false, false)
			attacked, err := SquaresAttackedBy(s, tt.color.Opposite())
			testutil.AssertNoError(t, err)
			moves, err := PseudoMoves(s, tt.color, Playable, attacked)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, moveStrings(moves), tt.want)
		})
	}
}

func TestPseudoMoves_AttackModeIncludesOwnPieces(t *testing.T) {
	s := stateFromFEN(t, "7k/8/8/8/8/8/8/RN2K3", chess.White, false, false, false, false)

	moves, err := PseudoMoves(s, chess.White, Attack, 0)
	testutil.AssertNoError(t, err)
	if !containsMove(moves, "a1b1") {
		t.Errorf("attack mode missing defended square b1: %v", moveStrings(moves))
	}
	if containsMove(moves, "a1c1") {
		t.Errorf("attack mode ray passed through b1: %v", moveStrings(moves))
	}

	playable, err := PseudoMoves(s, chess.White, Playable, 0)
	testutil.AssertNoError(t, err)
	if containsMove(playable, "a1b1") {
		t.Errorf("playable mode captures own knight: %v", moveStrings(playable))
	}
}

func TestPseudoMoves_AdjacentKings(t *testing.T) {
	s := stateFromFEN(t, "8/8/8/8/4k3/4K3/8/8", chess.White, false, false, false, false)

	for _, mode := range []Mode{Playable, Attack} {
		_, err := PseudoMoves(s, chess.White, mode, 0)
		testutil.AssertErrorIs(t, err, chesserrors.ErrInternalInvariant)
	}
}

func TestAttackMap(t *testing.T) {
	var a AttackMap
	a = a.Add(chess.Sq(0, 0)).Add(chess.Sq(7, 7)).Add(chess.Sq(0, 0))

	testutil.AssertEqual(t, a.Len(), 2)
	testutil.AssertTrue(t, a.Has(chess.Sq(7, 7)))
	testutil.AssertFalse(t, a.Has(chess.Sq(3, 3)))
	testutil.AssertFalse(t, a.Has(chess.Sq(-1, 0)), "off-board square")
	testutil.AssertEqual(t, a.Squares(), []chess.Square{chess.Sq(0, 0), chess.Sq(7, 7)})
}
