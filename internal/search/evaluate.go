// Package search picks moves with fixed-depth alpha-beta minimax over the
// engine's legal actions.
package search

import (
	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
)

// Heuristic piece weights. These are unrelated to the capture rewards in
// the chess catalog.
var weights = [chess.NumPieceTypes]int{
	chess.Empty:  0,
	chess.King:   20000,
	chess.Queen:  900,
	chess.Rook:   500,
	chess.Bishop: 325,
	chess.Knight: 300,
	chess.Pawn:   100,
}

// CenterBonus is earned by any piece standing on d4, e4, d5 or e5.
const CenterBonus = 10

// Weight returns the heuristic weight of a piece type.
func Weight(t chess.PieceType) int {
	return weights[t]
}

// Evaluate scores the position from the player's point of view: material,
// pawn advancement and centre occupation count for the player's pieces and
// against the opponent's; mobility counts only the player's pieces.
func Evaluate(s engine.State, player chess.Color) int {
	score := 0
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			p := s.Board[r][f]
			if p.IsEmpty() {
				continue
			}
			sign := 1
			if p.Color != player {
				sign = -1
			}

			score += sign * weights[p.Type]
			if p.Type == chess.Pawn && r >= 2 && r <= 5 {
				score += sign * pawnAdvance(p.Color, r)
			}
			if isCenter(r, f) {
				score += sign * CenterBonus
			}
			if p.Color == player {
				score += mobility(&s.Board, p.Color, r, f)
			}
		}
	}
	return score
}

// pawnAdvance is the number of rows a pawn has moved from its start row.
func pawnAdvance(c chess.Color, row int) int {
	if c == chess.White {
		return c.PawnRank() - row
	}
	return row - c.PawnRank()
}

func isCenter(r, f int) bool {
	return (r == 3 || r == 4) && (f == 3 || f == 4)
}

// mobility counts the neighbouring squares that are empty or hold an
// opposing piece.
func mobility(b *chess.Board, c chess.Color, r, f int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			sq := chess.Sq(r+dr, f+df)
			if !sq.OnBoard() {
				continue
			}
			if !b.At(sq).BelongsTo(c) {
				n++
			}
		}
	}
	return n
}
