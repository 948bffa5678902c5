// Package oracle cross-checks the rules engine against dragontoothmg, an
// independent bitboard move generator. Positions are exchanged as FEN, so
// en passant never appears on either side.
package oracle

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/errors"
	"github.com/lgbarn/gym-chess-go/internal/notation"
)

// Castles expressed as the king's move.
var castleKingMoves = map[chess.Castle]string{
	chess.KingSideWhite:  "e1g1",
	chess.QueenSideWhite: "e1c1",
	chess.KingSideBlack:  "e8g8",
	chess.QueenSideBlack: "e8c8",
}

// Diff lists the moves found by only one of the two generators.
type Diff struct {
	FEN        string
	OnlyEngine []string
	OnlyOracle []string
}

// Empty reports whether both generators agree.
func (d Diff) Empty() bool {
	return len(d.OnlyEngine) == 0 && len(d.OnlyOracle) == 0
}

// String summarises the disagreement.
func (d Diff) String() string {
	if d.Empty() {
		return "generators agree"
	}
	return fmt.Sprintf("%s: engine only [%s], oracle only [%s]",
		d.FEN, strings.Join(d.OnlyEngine, " "), strings.Join(d.OnlyOracle, " "))
}

// LegalMoves returns dragontoothmg's legal moves for the FEN as sorted
// coordinate tokens. Under-promotions collapse onto the plain move.
func LegalMoves(fen string) (moves []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%q: %v: %w", fen, r, errors.ErrInvalidFEN)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	generated := board.GenerateLegalMoves()
	moves = make([]string, 0, len(generated))
	for i := range generated {
		tok := generated[i].String()
		if len(tok) > 4 {
			tok = tok[:4]
		}
		moves = append(moves, tok)
	}
	slices.Sort(moves)
	return slices.Compact(moves), nil
}

// EngineMoves returns the engine's legal actions for the side to move as
// sorted coordinate tokens, castles written as king moves.
func EngineMoves(st engine.State) ([]string, error) {
	actions, err := engine.LegalActions(st, st.Current)
	if err != nil {
		return nil, err
	}
	moves := make([]string, len(actions))
	for i, a := range actions {
		if c, ok := a.Castle(); ok {
			moves[i] = castleKingMoves[c]
			continue
		}
		moves[i] = a.String()
	}
	slices.Sort(moves)
	return moves, nil
}

// Compare generates the legal moves of st with both generators.
func Compare(st engine.State) (Diff, error) {
	fen := notation.StateToFEN(withPlayableRights(st))
	theirs, err := LegalMoves(fen)
	if err != nil {
		return Diff{}, err
	}
	ours, err := EngineMoves(st)
	if err != nil {
		return Diff{}, err
	}

	d := Diff{FEN: fen}
	for _, m := range ours {
		if !slices.Contains(theirs, m) {
			d.OnlyEngine = append(d.OnlyEngine, m)
		}
	}
	for _, m := range theirs {
		if !slices.Contains(ours, m) {
			d.OnlyOracle = append(d.OnlyOracle, m)
		}
	}
	return d, nil
}

// withPlayableRights drops castle rights whose king or rook has left its
// starting square. The engine keeps such rights when a rook is captured in
// its corner, while FEN readers take a right as proof the rook is there.
func withPlayableRights(st engine.State) engine.State {
	home := func(rank, file int, p chess.Piece) bool {
		return st.Board.At(chess.Sq(rank, file)) == p
	}
	wk := home(7, 4, chess.W(chess.King))
	bk := home(0, 4, chess.B(chess.King))
	st.WhiteKingCastle = st.WhiteKingCastle && wk && home(7, 7, chess.W(chess.Rook))
	st.WhiteQueenCastle = st.WhiteQueenCastle && wk && home(7, 0, chess.W(chess.Rook))
	st.BlackKingCastle = st.BlackKingCastle && bk && home(0, 7, chess.B(chess.Rook))
	st.BlackQueenCastle = st.BlackQueenCastle && bk && home(0, 0, chess.B(chess.Rook))
	return st
}
