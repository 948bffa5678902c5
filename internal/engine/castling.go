package engine

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// castleLayout fixes the squares involved in one castle variant.
type castleLayout struct {
	rank     int
	kingFrom int
	kingTo   int
	rookFrom int
	rookTo   int
	between  []int // files that must be empty
	safe     []int // files the king stands on, crosses or lands on
}

var castleLayouts = [4]castleLayout{
	chess.KingSideWhite:  {rank: 7, kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}, safe: []int{4, 5, 6}},
	chess.QueenSideWhite: {rank: 7, kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}, safe: []int{4, 3, 2}},
	chess.KingSideBlack:  {rank: 0, kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}, safe: []int{4, 5, 6}},
	chess.QueenSideBlack: {rank: 0, kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}, safe: []int{4, 3, 2}},
}

// canCastle checks one castle variant against the board, the right flag and
// the opponent's attack map.
func canCastle(s *State, castle chess.Castle, attacked AttackMap) bool {
	color := castle.Color()
	if !s.CastleRight(color, castle.KingSide()) {
		return false
	}
	l := castleLayouts[castle]
	if !s.Board.At(chess.Sq(l.rank, l.kingFrom)).Is(color, chess.King) ||
		!s.Board.At(chess.Sq(l.rank, l.rookFrom)).Is(color, chess.Rook) {
		return false
	}
	for _, f := range l.between {
		if !s.Board.At(chess.Sq(l.rank, f)).IsEmpty() {
			return false
		}
	}
	for _, f := range l.safe {
		if attacked.Has(chess.Sq(l.rank, f)) {
			return false
		}
	}
	return true
}

// castleMoves returns the castles available to the colour, queen-side first.
func castleMoves(s *State, color chess.Color, attacked AttackMap) []chess.Castle {
	if !s.KingOnBoard(color) || !s.HasCastleRights(color) {
		return nil
	}
	var castles []chess.Castle
	for _, kingSide := range []bool{false, true} {
		c := chess.CastleFor(color, kingSide)
		if canCastle(s, c, attacked) {
			castles = append(castles, c)
		}
	}
	return castles
}

// applyCastle relocates king and rook and clears both rights of the side.
func applyCastle(s *State, castle chess.Castle) error {
	color := castle.Color()
	l := castleLayouts[castle]
	kingFrom := chess.Sq(l.rank, l.kingFrom)
	rookFrom := chess.Sq(l.rank, l.rookFrom)

	if !s.Board.At(kingFrom).Is(color, chess.King) || !s.Board.At(rookFrom).Is(color, chess.Rook) {
		return &errors.MoveError{
			Err:    fmt.Errorf("king or rook not on its starting square: %w", errors.ErrIllegalMove),
			Move:   castle.String(),
			Player: color.String(),
		}
	}

	s.Board.Set(kingFrom, chess.NoPiece)
	s.Board.Set(rookFrom, chess.NoPiece)
	s.Board.Set(chess.Sq(l.rank, l.kingTo), chess.NewPiece(color, chess.King))
	s.Board.Set(chess.Sq(l.rank, l.rookTo), chess.NewPiece(color, chess.Rook))
	s.clearCastleRights(color)
	return nil
}

// updateCastlingRightsForMove removes rights when a king or a corner-file rook moves.
func updateCastlingRightsForMove(s *State, mover chess.Color, piece chess.Piece, from chess.Square) {
	switch piece.Type {
	case chess.King:
		s.clearCastleRights(mover)
	case chess.Rook:
		if from.File == 0 {
			s.clearCastleRight(mover, false)
		} else if from.File == 7 {
			s.clearCastleRight(mover, true)
		}
	}
}
