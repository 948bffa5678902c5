// Package notation converts between engine values and the text forms the
// host uses: player and move tokens, FEN and board diagrams.
package notation

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// Player tokens.
const (
	WhiteToken = "WHITE"
	BlackToken = "BLACK"
)

// ParseColor converts a player token into a colour. Only the exact
// upper-case tokens are accepted.
func ParseColor(token string) (chess.Color, error) {
	switch token {
	case WhiteToken:
		return chess.White, nil
	case BlackToken:
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("player %q: %w", token, errors.ErrInvalidColor)
	}
}

// FormatColor returns the player token of a colour.
func FormatColor(c chess.Color) string {
	if c == chess.Black {
		return BlackToken
	}
	return WhiteToken
}

var castleTokens = map[string]chess.Castle{
	chess.CastleKingSideWhiteToken:  chess.KingSideWhite,
	chess.CastleQueenSideWhiteToken: chess.QueenSideWhite,
	chess.CastleKingSideBlackToken:  chess.KingSideBlack,
	chess.CastleQueenSideBlackToken: chess.QueenSideBlack,
}

// ParseAction converts a move token: either "<file><rank><file><rank>" in
// coordinate notation or one of the four castle tokens.
func ParseAction(token string) (chess.Action, error) {
	if c, ok := castleTokens[token]; ok {
		return chess.CastleAction(c), nil
	}
	m, err := ParseMove(token)
	if err != nil {
		return chess.Action{}, err
	}
	return chess.MoveAction(m), nil
}

// ParseMove converts a coordinate token such as "e2e4".
func ParseMove(token string) (chess.Move, error) {
	if len(token) != 4 {
		return chess.Move{}, fmt.Errorf("move %q: want 4 characters: %w", token, errors.ErrInvalidMoveFormat)
	}
	from, err := parseSquare(token[0:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q: %w", token, err)
	}
	to, err := parseSquare(token[2:4])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q: %w", token, err)
	}
	return chess.Move{From: from, To: to}, nil
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (chess.Square, error) {
	if len(name) != 2 {
		return chess.Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidMoveFormat)
	}
	return parseSquare(name)
}

func parseSquare(name string) (chess.Square, error) {
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' {
		return chess.Square{}, fmt.Errorf("unknown file %q: %w", file, errors.ErrInvalidMoveFormat)
	}
	if rank < '1' || rank > '8' {
		return chess.Square{}, fmt.Errorf("unknown rank %q: %w", rank, errors.ErrInvalidMoveFormat)
	}
	return chess.Sq(chess.BoardSize-int(rank-'0'), int(file-'a')), nil
}

// FormatMove returns the coordinate token of a move.
func FormatMove(m chess.Move) string {
	return m.String()
}

// FormatAction returns the host token of an action.
func FormatAction(a chess.Action) string {
	return a.String()
}

// FormatMoves converts moves to tokens, preserving order.
func FormatMoves(moves []chess.Move) []string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = FormatMove(m)
	}
	return tokens
}

// FormatCastles converts castles to tokens, preserving order.
func FormatCastles(castles []chess.Castle) []string {
	tokens := make([]string, len(castles))
	for i, c := range castles {
		tokens[i] = c.String()
	}
	return tokens
}
