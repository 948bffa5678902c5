package engine

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/testutil"
)

// stateFromFEN builds a state from a FEN placement with explicit rights.
func stateFromFEN(t testing.TB, fen string, current chess.Color, wk, wq, bk, bq bool) State {
	t.Helper()
	return NewState(testutil.MustPlacement(t, fen), current, wk, wq, bk, bq)
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func actionStrings(actions []chess.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}

func containsMove(moves []chess.Move, s string) bool {
	for _, m := range moves {
		if m.String() == s {
			return true
		}
	}
	return false
}
