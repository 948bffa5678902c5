// Package gym exposes the rules engine and search to a host driving
// reinforcement-learning episodes. States cross the boundary as Snapshots,
// a JSON-friendly record of signed piece identifiers and flags.
package gym

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/notation"
)

// Snapshot is the host representation of a game state.
type Snapshot struct {
	Board         [chess.BoardSize][chess.BoardSize]int `json:"board"`
	CurrentPlayer string                                `json:"current_player"`

	WhiteKingCastle  bool `json:"white_king_castle_is_possible"`
	WhiteQueenCastle bool `json:"white_queen_castle_is_possible"`
	BlackKingCastle  bool `json:"black_king_castle_is_possible"`
	BlackQueenCastle bool `json:"black_queen_castle_is_possible"`

	WhiteKingChecked bool `json:"white_king_is_checked"`
	BlackKingChecked bool `json:"black_king_is_checked"`
}

// InitialSnapshot returns the starting position with WHITE to move.
func InitialSnapshot() Snapshot {
	return SnapshotFromState(engine.InitialState())
}

// State converts the snapshot into an engine state. The incoming check
// flags are not trusted; run engine.UpdateCheckStatus to derive them.
func (s Snapshot) State() (engine.State, error) {
	board, err := chess.BoardFromIDs(s.Board)
	if err != nil {
		return engine.State{}, fmt.Errorf("board: %w", err)
	}
	current, err := notation.ParseColor(s.CurrentPlayer)
	if err != nil {
		return engine.State{}, fmt.Errorf("current_player: %w", err)
	}
	return engine.NewState(board, current,
		s.WhiteKingCastle, s.WhiteQueenCastle,
		s.BlackKingCastle, s.BlackQueenCastle), nil
}

// SnapshotFromState converts an engine state into its host representation.
func SnapshotFromState(st engine.State) Snapshot {
	return Snapshot{
		Board:            st.Board.IDs(),
		CurrentPlayer:    notation.FormatColor(st.Current),
		WhiteKingCastle:  st.WhiteKingCastle,
		WhiteQueenCastle: st.WhiteQueenCastle,
		BlackKingCastle:  st.BlackKingCastle,
		BlackQueenCastle: st.BlackQueenCastle,
		WhiteKingChecked: st.WhiteKingChecked,
		BlackKingChecked: st.BlackKingChecked,
	}
}
