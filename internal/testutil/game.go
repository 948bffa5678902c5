package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
)

// MustBoard builds a board from eight diagram rows, Black's back rank first.
// Each row holds eight FEN letters with '.' for an empty square. Spaces are
// ignored so rows can be laid out for readability.
// It calls t.Fatal on malformed input.
func MustBoard(t testing.TB, rows ...string) chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("MustBoard: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	var b chess.Board
	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			t.Fatalf("MustBoard: row %d %q has %d squares", r, row, len(row))
		}
		for f := 0; f < chess.BoardSize; f++ {
			p, err := chess.PieceFromLetter(row[f])
			if err != nil {
				t.Fatalf("MustBoard: row %d: %v", r, err)
			}
			b[r][f] = p
		}
	}
	return b
}

// MustPlacement builds a board from the piece-placement field of a FEN
// string. Anything after the first space is ignored.
// It calls t.Fatal on malformed input.
func MustPlacement(t testing.TB, fen string) chess.Board {
	t.Helper()
	placement, _, _ := strings.Cut(fen, " ")
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		t.Fatalf("MustPlacement(%q): got %d ranks", fen, len(ranks))
	}
	rows := make([]string, 0, chess.BoardSize)
	for _, rank := range ranks {
		var sb strings.Builder
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				sb.WriteString(strings.Repeat(".", int(c-'0')))
				continue
			}
			sb.WriteByte(c)
		}
		rows = append(rows, sb.String())
	}
	return MustBoard(t, rows...)
}
