package engine

import (
	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// IsInCheck returns true if the given colour's king stands on a square the
// opponent attacks. A colour without a king is never in check.
func IsInCheck(s State, color chess.Color) (bool, error) {
	kingSq, ok := s.Board.Find(chess.NewPiece(color, chess.King))
	if !ok {
		return false, nil
	}
	attacked, err := SquaresAttackedBy(s, color.Opposite())
	if err != nil {
		return false, err
	}
	return attacked.Has(kingSq), nil
}

// UpdateCheckStatus returns the state with both check flags recomputed from
// fresh attack maps. Callers run it after every transition before trusting
// the flags.
func UpdateCheckStatus(s State) (State, error) {
	for _, color := range []chess.Color{chess.White, chess.Black} {
		checked, err := IsInCheck(s, color)
		if err != nil {
			return s, err
		}
		s.setChecked(color, checked)
	}
	return s, nil
}

// ValidateCheckStatus reports ErrImpossiblePosition when both kings are
// flagged as in check.
func ValidateCheckStatus(s State) error {
	if s.WhiteKingChecked && s.BlackKingChecked {
		return &errors.PositionError{
			Err:    errors.ErrImpossiblePosition,
			Detail: "both kings are in check",
		}
	}
	return nil
}
