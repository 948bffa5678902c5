package notation

import (
	"fmt"
	"strings"

	cchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StateToFEN converts a state to a FEN string. En passant is never
// tracked, and the clocks are always "0 1".
func StateToFEN(s engine.State) string {
	var sb strings.Builder

	writePiecePositions(&sb, &s.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s.Current)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &s)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for r := 0; r < chess.BoardSize; r++ {
		emptyCount := 0
		for f := 0; f < chess.BoardSize; f++ {
			piece := board[r][f]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if r < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, c chess.Color) {
	if c == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, s *engine.State) {
	start := sb.Len()
	if s.WhiteKingCastle {
		sb.WriteByte('K')
	}
	if s.WhiteQueenCastle {
		sb.WriteByte('Q')
	}
	if s.BlackKingCastle {
		sb.WriteByte('k')
	}
	if s.BlackQueenCastle {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

var pieceTypes = map[cchess.PieceType]chess.PieceType{
	cchess.King:   chess.King,
	cchess.Queen:  chess.Queen,
	cchess.Rook:   chess.Rook,
	cchess.Bishop: chess.Bishop,
	cchess.Knight: chess.Knight,
	cchess.Pawn:   chess.Pawn,
}

// StateFromFEN decodes a FEN string into a state with fresh check flags.
// The en passant square and the clocks are validated but discarded. A side
// may have no king, as in NewState, but not more than one.
func StateFromFEN(fen string) (engine.State, error) {
	placement, _, _ := strings.Cut(strings.TrimSpace(fen), " ")
	if strings.Count(placement, "K") > 1 || strings.Count(placement, "k") > 1 {
		return engine.State{}, fmt.Errorf("fen %q: more than one king per side: %w", fen, errors.ErrInvalidFEN)
	}

	opt, err := cchess.FEN(fen)
	if err != nil {
		return engine.State{}, fmt.Errorf("fen %q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	pos := cchess.NewGame(opt).Position()

	var board chess.Board
	for sq, p := range pos.Board().SquareMap() {
		pieceType, ok := pieceTypes[p.Type()]
		if !ok {
			return engine.State{}, fmt.Errorf("fen %q: square %s: %w", fen, sq, errors.ErrInvalidPiece)
		}
		color := chess.White
		if p.Color() == cchess.Black {
			color = chess.Black
		}
		// corentings counts ranks from White's side.
		board[chess.BoardSize-1-int(sq.Rank())][int(sq.File())] = chess.NewPiece(color, pieceType)
	}

	current := chess.White
	if pos.Turn() == cchess.Black {
		current = chess.Black
	}
	rights := string(pos.CastleRights())
	s := engine.NewState(board, current,
		strings.Contains(rights, "K"),
		strings.Contains(rights, "Q"),
		strings.Contains(rights, "k"),
		strings.Contains(rights, "q"),
	)
	return engine.UpdateCheckStatus(s)
}
