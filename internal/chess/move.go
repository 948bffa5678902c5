package chess

// Move is a relocation of whatever stands on From to To.
type Move struct {
	From Square
	To   Square
}

// String returns the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Castle names one of the four castling variants.
type Castle int

const (
	KingSideWhite Castle = iota
	QueenSideWhite
	KingSideBlack
	QueenSideBlack
)

// Host tokens for castle moves.
const (
	CastleKingSideWhiteToken  = "CASTLE_KING_SIDE_WHITE"
	CastleQueenSideWhiteToken = "CASTLE_QUEEN_SIDE_WHITE"
	CastleKingSideBlackToken  = "CASTLE_KING_SIDE_BLACK"
	CastleQueenSideBlackToken = "CASTLE_QUEEN_SIDE_BLACK"
)

// String returns the host token of the castle.
func (c Castle) String() string {
	switch c {
	case KingSideWhite:
		return CastleKingSideWhiteToken
	case QueenSideWhite:
		return CastleQueenSideWhiteToken
	case KingSideBlack:
		return CastleKingSideBlackToken
	case QueenSideBlack:
		return CastleQueenSideBlackToken
	default:
		return "CASTLE_UNKNOWN"
	}
}

// Color returns the side that performs the castle.
func (c Castle) Color() Color {
	if c == KingSideWhite || c == QueenSideWhite {
		return White
	}
	return Black
}

// KingSide reports whether the castle is on the king's wing.
func (c Castle) KingSide() bool {
	return c == KingSideWhite || c == KingSideBlack
}

// CastleFor returns the castle variant for a colour and wing.
func CastleFor(color Color, kingSide bool) Castle {
	switch {
	case color == White && kingSide:
		return KingSideWhite
	case color == White:
		return QueenSideWhite
	case kingSide:
		return KingSideBlack
	default:
		return QueenSideBlack
	}
}

// Action is either a normal Move or a Castle. Exactly one is active.
type Action struct {
	castle   bool
	move     Move
	castling Castle
}

// MoveAction wraps a normal move.
func MoveAction(m Move) Action {
	return Action{move: m}
}

// CastleAction wraps a castle.
func CastleAction(c Castle) Action {
	return Action{castle: true, castling: c}
}

// IsCastle reports whether the castle variant is active.
func (a Action) IsCastle() bool {
	return a.castle
}

// Move returns the normal move and true when that variant is active.
func (a Action) Move() (Move, bool) {
	return a.move, !a.castle
}

// Castle returns the castle and true when that variant is active.
func (a Action) Castle() (Castle, bool) {
	return a.castling, a.castle
}

// String returns the host token of the action.
func (a Action) String() string {
	if a.castle {
		return a.castling.String()
	}
	return a.move.String()
}
