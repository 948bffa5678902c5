// Package chess provides core chess types and the static piece catalog.
package chess

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White and -1 for Black.
func (c Color) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnDirection returns the rank delta of a pawn step for the colour.
// White pawns move toward rank index 0.
func (c Color) PawnDirection() int {
	return -c.Sign()
}

// HomeRank returns the back rank index of the colour.
func (c Color) HomeRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRank returns the rank index pawns of the colour start on.
func (c Color) PawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRank returns the rank index on which pawns of the colour promote.
func (c Color) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// ID returns the magnitude of the host identifier for the type (King=1 ... Pawn=6).
func (p PieceType) ID() int {
	return int(p)
}

// Piece is a coloured piece. The zero value with Type Empty is an empty square.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece is the empty square.
var NoPiece = Piece{Type: Empty}

// NewPiece creates a coloured piece.
func NewPiece(color Color, pieceType PieceType) Piece {
	if pieceType == Empty {
		return NoPiece
	}
	return Piece{Color: color, Type: pieceType}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether the piece is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(color Color, pieceType PieceType) bool {
	return p.Type == pieceType && p.Color == color && pieceType != Empty
}

// BelongsTo reports whether p is a non-empty piece of the given colour.
func (p Piece) BelongsTo(color Color) bool {
	return p.Type != Empty && p.Color == color
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Color.String() + " " + p.Type.String()
}
