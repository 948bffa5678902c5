package engine

import (
	"math/bits"

	"github.com/lgbarn/gym-chess-go/internal/chess"
)

// AttackMap is the set of squares a side threatens, one bit per square index.
type AttackMap uint64

// Has reports whether the square is in the set.
func (a AttackMap) Has(s chess.Square) bool {
	return s.OnBoard() && a&(1<<uint(s.Index())) != 0
}

// Add returns the set with the square included.
func (a AttackMap) Add(s chess.Square) AttackMap {
	return a | 1<<uint(s.Index())
}

// Len returns the number of squares in the set.
func (a AttackMap) Len() int {
	return bits.OnesCount64(uint64(a))
}

// Squares returns the members in index order.
func (a AttackMap) Squares() []chess.Square {
	squares := make([]chess.Square, 0, a.Len())
	for rest := uint64(a); rest != 0; rest &= rest - 1 {
		squares = append(squares, chess.SquareFromIndex(bits.TrailingZeros64(rest)))
	}
	return squares
}

// SquaresAttackedBy returns every square the colour attacks or defends,
// built from scratch by running the generator in attack mode.
func SquaresAttackedBy(s State, color chess.Color) (AttackMap, error) {
	moves, err := PseudoMoves(s, color, Attack, 0)
	if err != nil {
		return 0, err
	}
	var attacked AttackMap
	for _, m := range moves {
		attacked = attacked.Add(m.To)
	}
	return attacked, nil
}
