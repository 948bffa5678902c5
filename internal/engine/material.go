package engine

import "github.com/lgbarn/gym-chess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(board chess.Board) bool {
	var minors [2][]chess.PieceType
	var bishopOnLight [2]bool

	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			p := board[r][f]
			switch p.Type {
			case chess.Empty, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			minors[p.Color] = append(minors[p.Color], p.Type)
			if p.Type == chess.Bishop {
				bishopOnLight[p.Color] = isLightSquare(chess.Sq(r, f))
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// a8 (rank 0, file 0) is a light square.
func isLightSquare(s chess.Square) bool {
	return (s.Rank+s.File)%2 == 0
}
