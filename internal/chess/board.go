package chess

import "fmt"

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Square is a board coordinate. Rank 0 is the Black back rank (rank 8 in
// algebraic terms) and file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq creates a square from array coordinates.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square displaced by the given rank and file deltas.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// Index returns the flat index rank*8+file.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareFromIndex is the inverse of Square.Index.
func SquareFromIndex(i int) Square {
	return Square{Rank: i / BoardSize, File: i % BoardSize}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, BoardSize-s.Rank)
}

// Board is the 8x8 grid, indexed [rank][file]. It is a value type; assigning
// a Board copies it.
type Board [BoardSize][BoardSize]Piece

// At returns the piece on the square. The square must be on the board.
func (b *Board) At(s Square) Piece {
	return b[s.Rank][s.File]
}

// Set places a piece on the square.
func (b *Board) Set(s Square, p Piece) {
	b[s.Rank][s.File] = p
}

// Find returns the first square holding the piece in rank-major order.
func (b *Board) Find(p Piece) (Square, bool) {
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if b[r][f] == p {
				return Sq(r, f), true
			}
		}
	}
	return Square{}, false
}

// Contains reports whether the piece appears anywhere on the board.
func (b *Board) Contains(p Piece) bool {
	_, ok := b.Find(p)
	return ok
}

// IDs returns the board as signed host identifiers.
func (b *Board) IDs() [BoardSize][BoardSize]int {
	var ids [BoardSize][BoardSize]int
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			ids[r][f] = b[r][f].ID()
		}
	}
	return ids
}

// BoardFromIDs builds a board from signed host identifiers.
func BoardFromIDs(ids [BoardSize][BoardSize]int) (Board, error) {
	var b Board
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			p, err := PieceFromID(ids[r][f])
			if err != nil {
				return Board{}, fmt.Errorf("square %s: %w", Sq(r, f), err)
			}
			b[r][f] = p
		}
	}
	return b, nil
}

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	var b Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < BoardSize; f++ {
		b[Black.HomeRank()][f] = B(backRank[f])
		b[Black.PawnRank()][f] = B(Pawn)
		b[White.PawnRank()][f] = W(Pawn)
		b[White.HomeRank()][f] = W(backRank[f])
	}
	return b
}
