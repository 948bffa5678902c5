package engine

import "github.com/lgbarn/gym-chess-go/internal/chess"

// State is an immutable-per-turn snapshot of a game: the board, the side to
// move, castling rights and check flags. Transitions return a new State.
//
// The king-on-board flags are derived once by NewState. The check flags are
// only refreshed by UpdateCheckStatus; NextState copies them unchanged.
type State struct {
	Board   chess.Board
	Current chess.Color

	WhiteKingOnBoard bool
	BlackKingOnBoard bool

	WhiteKingCastle  bool
	WhiteQueenCastle bool
	BlackKingCastle  bool
	BlackQueenCastle bool

	WhiteKingChecked bool
	BlackKingChecked bool
}

// NewState builds a state from a raw board and rights flags. Rights of a side
// whose king is absent are forced to false.
func NewState(board chess.Board, current chess.Color, whiteKingCastle, whiteQueenCastle, blackKingCastle, blackQueenCastle bool) State {
	s := State{
		Board:            board,
		Current:          current,
		WhiteKingOnBoard: board.Contains(chess.W(chess.King)),
		BlackKingOnBoard: board.Contains(chess.B(chess.King)),
		WhiteKingCastle:  whiteKingCastle,
		WhiteQueenCastle: whiteQueenCastle,
		BlackKingCastle:  blackKingCastle,
		BlackQueenCastle: blackQueenCastle,
	}
	if !s.WhiteKingOnBoard {
		s.WhiteKingCastle = false
		s.WhiteQueenCastle = false
	}
	if !s.BlackKingOnBoard {
		s.BlackKingCastle = false
		s.BlackQueenCastle = false
	}
	return s
}

// InitialState returns the standard starting position with White to move.
func InitialState() State {
	return NewState(chess.InitialBoard(), chess.White, true, true, true, true)
}

// KingOnBoard reports the construction-time king presence flag for a colour.
func (s *State) KingOnBoard(color chess.Color) bool {
	if color == chess.White {
		return s.WhiteKingOnBoard
	}
	return s.BlackKingOnBoard
}

// Checked reports the (possibly stale) check flag for a colour.
func (s *State) Checked(color chess.Color) bool {
	if color == chess.White {
		return s.WhiteKingChecked
	}
	return s.BlackKingChecked
}

// CastleRight reports whether the colour still holds the right to castle on
// the given wing.
func (s *State) CastleRight(color chess.Color, kingSide bool) bool {
	switch {
	case color == chess.White && kingSide:
		return s.WhiteKingCastle
	case color == chess.White:
		return s.WhiteQueenCastle
	case kingSide:
		return s.BlackKingCastle
	default:
		return s.BlackQueenCastle
	}
}

// HasCastleRights reports whether the colour holds either castle right.
func (s *State) HasCastleRights(color chess.Color) bool {
	return s.CastleRight(color, true) || s.CastleRight(color, false)
}

func (s *State) clearCastleRight(color chess.Color, kingSide bool) {
	switch {
	case color == chess.White && kingSide:
		s.WhiteKingCastle = false
	case color == chess.White:
		s.WhiteQueenCastle = false
	case kingSide:
		s.BlackKingCastle = false
	default:
		s.BlackQueenCastle = false
	}
}

func (s *State) clearCastleRights(color chess.Color) {
	s.clearCastleRight(color, true)
	s.clearCastleRight(color, false)
}

func (s *State) setChecked(color chess.Color, checked bool) {
	if color == chess.White {
		s.WhiteKingChecked = checked
	} else {
		s.BlackKingChecked = checked
	}
}

// IsCheckmate returns true if the side to move is in check and has no legal action.
func IsCheckmate(s State) (bool, error) {
	inCheck, err := IsInCheck(s, s.Current)
	if err != nil || !inCheck {
		return false, err
	}
	has, err := HasLegalActions(s, s.Current)
	return !has, err
}

// IsStalemate returns true if the side to move is not in check and has no legal action.
func IsStalemate(s State) (bool, error) {
	inCheck, err := IsInCheck(s, s.Current)
	if err != nil || inCheck {
		return false, err
	}
	has, err := HasLegalActions(s, s.Current)
	return !has, err
}
