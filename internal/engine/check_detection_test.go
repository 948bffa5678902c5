package engine

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/gym-chess-go/internal/errors"
	"github.com/lgbarn/gym-chess-go/internal/testutil"
)

func TestUpdateCheckStatus(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantWhite  bool
		wantBlack  bool
		impossible bool
	}{
		{"initial position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", false, false, false},
		{"rook checks white king", "k3r3/8/8/8/8/8/8/4K3", true, false, false},
		{"rook removed", "k7/8/8/8/8/8/8/4K3", false, false, false},
		{"knight checks black king", "4k3/8/3N4/8/8/8/8/4K3", false, true, false},
		{"pawn checks black king", "4k3/3P4/8/8/8/8/8/4K3", false, true, false},
		{"blocked rook", "k3r3/8/8/4n3/8/8/8/4K3", false, false, false},
		{"both kings checked", "R6k/8/8/8/8/8/8/r6K", true, true, true},
		{"no kings", "8/8/8/3r4/8/8/8/8", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFromFEN(t, tt.fen, chess.White, false, false, false, false)
			got, err := UpdateCheckStatus(s)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.WhiteKingChecked, tt.wantWhite, "white flag")
			testutil.AssertEqual(t, got.BlackKingChecked, tt.wantBlack, "black flag")

			err = ValidateCheckStatus(got)
			if tt.impossible {
				testutil.AssertErrorIs(t, err, chesserrors.ErrImpossiblePosition)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestIsInCheck_AdjacentKings(t *testing.T) {
	s := stateFromFEN(t, "8/8/8/8/8/8/8/3kK3", chess.White, false, false, false, false)
	_, err := IsInCheck(s, chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInternalInvariant)
}

func TestCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		current   chess.Color
		checkmate bool
		stalemate bool
	}{
		{"initial position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chess.White, false, false},
		{"back rank mate", "6k1/8/8/8/8/8/5PPP/r5K1", chess.White, true, false},
		{"check with escape", "k3r3/8/8/8/8/8/8/4K3", chess.White, false, false},
		{"queen stalemate", "k7/8/1Q6/8/8/8/8/2K5", chess.Black, false, true},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR", chess.White, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFromFEN(t, tt.fen, tt.current, false, false, false, false)

			mate, err := IsCheckmate(s)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mate, tt.checkmate, "checkmate")

			stale, err := IsStalemate(s)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, stale, tt.stalemate, "stalemate")
		})
	}
}
