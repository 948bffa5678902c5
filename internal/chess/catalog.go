package chess

import (
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// PromotionReward is the reward bonus for promoting a pawn to a queen.
const PromotionReward = 10

// CatalogEntry holds the static attributes of one piece identifier.
type CatalogEntry struct {
	ID     int
	Piece  Piece
	Glyph  rune
	Letter byte
	Reward int
}

// catalog is indexed by identifier+6 so that -6..6 maps onto 0..12.
var catalog [13]CatalogEntry

// typeRewards are capture rewards, distinct from search evaluation weights.
var typeRewards = [NumPieceTypes]int{
	Empty:  0,
	King:   0,
	Queen:  10,
	Rook:   5,
	Bishop: 3,
	Knight: 3,
	Pawn:   1,
}

func init() {
	whiteGlyphs := [NumPieceTypes]rune{'.', '♚', '♛', '♜', '♝', '♞', '♟'}
	blackGlyphs := [NumPieceTypes]rune{'.', '♔', '♕', '♖', '♗', '♘', '♙'}
	letters := [NumPieceTypes]byte{'.', 'K', 'Q', 'R', 'B', 'N', 'P'}

	catalog[6] = CatalogEntry{ID: 0, Piece: NoPiece, Glyph: '.', Letter: '.'}
	for t := King; t < NumPieceTypes; t++ {
		catalog[6+t.ID()] = CatalogEntry{
			ID:     t.ID(),
			Piece:  W(t),
			Glyph:  whiteGlyphs[t],
			Letter: letters[t],
			Reward: typeRewards[t],
		}
		catalog[6-t.ID()] = CatalogEntry{
			ID:     -t.ID(),
			Piece:  B(t),
			Glyph:  blackGlyphs[t],
			Letter: letters[t] + ('a' - 'A'),
			Reward: typeRewards[t],
		}
	}
}

// Lookup returns the catalog entry for a signed host identifier.
func Lookup(id int) (CatalogEntry, error) {
	if id < -6 || id > 6 {
		return CatalogEntry{}, fmt.Errorf("identifier %d: %w", id, errors.ErrInvalidPiece)
	}
	return catalog[id+6], nil
}

// PieceFromID converts a signed host identifier into a Piece.
func PieceFromID(id int) (Piece, error) {
	entry, err := Lookup(id)
	if err != nil {
		return NoPiece, err
	}
	return entry.Piece, nil
}

// ID returns the signed host identifier of the piece (positive for White).
func (p Piece) ID() int {
	if p.IsEmpty() {
		return 0
	}
	return p.Color.Sign() * p.Type.ID()
}

// Entry returns the catalog entry of the piece.
func (p Piece) Entry() CatalogEntry {
	return catalog[p.ID()+6]
}

// Reward returns the capture reward value of the piece.
func (p Piece) Reward() int {
	return typeRewards[p.Type]
}

// Glyph returns the display glyph of the piece.
func (p Piece) Glyph() rune {
	return p.Entry().Glyph
}

// Letter returns the FEN letter of the piece (upper case for White).
func (p Piece) Letter() byte {
	return p.Entry().Letter
}

// PieceFromLetter returns the piece for a FEN letter. '.' is the empty square.
func PieceFromLetter(letter byte) (Piece, error) {
	for _, e := range catalog {
		if e.Letter == letter {
			return e.Piece, nil
		}
	}
	return NoPiece, fmt.Errorf("letter %q: %w", letter, errors.ErrInvalidPiece)
}
