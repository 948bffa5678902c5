package gym

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/notation"
)

func mustState(t testing.TB, fen string) engine.State {
	t.Helper()
	st, err := notation.StateFromFEN(fen)
	if err != nil {
		t.Fatalf("StateFromFEN(%q): %v", fen, err)
	}
	return st
}

func mustSnapshot(t testing.TB, fen string) Snapshot {
	t.Helper()
	return SnapshotFromState(mustState(t, fen))
}
