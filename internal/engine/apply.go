// Package engine provides chess rule enforcement: move generation, attack
// maps, legality filtering, castling and state transitions.
package engine

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// NextState applies an action for the mover and returns the new state and
// the reward earned: the capture value of any piece taken plus the
// promotion bonus. The input state is not modified and check flags are
// carried over unchanged.
func NextState(s State, action chess.Action, mover chess.Color) (State, int, error) {
	next := s
	reward := 0

	if castle, ok := action.Castle(); ok {
		if err := applyCastle(&next, castle); err != nil {
			return s, 0, err
		}
	} else {
		m, _ := action.Move()
		r, err := applyMove(&next, m, mover)
		if err != nil {
			return s, 0, err
		}
		reward = r
	}

	next.Current = mover.Opposite()
	return next, reward, nil
}

// ApplyMove is NextState for a normal move.
func ApplyMove(s State, m chess.Move, mover chess.Color) (State, int, error) {
	return NextState(s, chess.MoveAction(m), mover)
}

// applyMove relocates a piece in place and returns the reward.
func applyMove(s *State, m chess.Move, mover chess.Color) (int, error) {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return 0, &errors.MoveError{
			Err:    fmt.Errorf("square off the board: %w", errors.ErrIllegalMove),
			Move:   m.String(),
			Player: mover.String(),
		}
	}
	piece := s.Board.At(m.From)
	if piece.IsEmpty() {
		return 0, &errors.MoveError{
			Err:    fmt.Errorf("no piece on %s: %w", m.From, errors.ErrIllegalMove),
			Move:   m.String(),
			Player: mover.String(),
		}
	}

	captured := s.Board.At(m.To)
	reward := captured.Reward()

	s.Board.Set(m.From, chess.NoPiece)
	s.Board.Set(m.To, piece)

	// Pawns reaching the far rank always become queens.
	if piece.Type == chess.Pawn && m.To.Rank == piece.Color.PromotionRank() {
		s.Board.Set(m.To, chess.NewPiece(piece.Color, chess.Queen))
		reward += chess.PromotionReward
	}

	updateCastlingRightsForMove(s, mover, piece, m.From)
	return reward, nil
}
