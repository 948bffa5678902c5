package engine

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/testutil"
)

func TestPerft_InitialPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tt := range tests {
		if testing.Short() && tt.depth > 2 {
			continue
		}
		got, err := Perft(InitialState(), tt.depth)
		testutil.AssertNoError(t, err)
		if got != tt.want {
			t.Errorf("Perft(initial, %d) = %d; want %d", tt.depth, got, tt.want)
		}
	}
}

func TestPerft_CastlingCounted(t *testing.T) {
	s := stateFromFEN(t, "4k3/8/8/8/8/8/8/R3K2R", chess.White, true, true, false, false)

	actions, err := LegalActions(s, chess.White)
	testutil.AssertNoError(t, err)
	got, err := Perft(s, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(len(actions)))
}

func TestPerftDivide(t *testing.T) {
	div, err := PerftDivide(InitialState(), 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(div), 20)

	var total uint64
	for a, n := range div {
		if n != 20 {
			t.Errorf("PerftDivide(initial, 2)[%s] = %d; want 20", a, n)
		}
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))
}
