// Package hashing provides Zobrist position keys and a set of seen positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
)

const (
	pieceKinds  = 2 * (int(chess.NumPieceTypes) - 1)
	squares     = chess.BoardSize * chess.BoardSize
	zobristSeed = 0x5eed
)

var (
	pieceKeys   [pieceKinds][squares]uint64
	castleKeys  [4]uint64
	blackToMove uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = r.Uint64()
		}
	}
	for i := range castleKeys {
		castleKeys[i] = r.Uint64()
	}
	blackToMove = r.Uint64()
}

func pieceIndex(p chess.Piece) int {
	return int(p.Color)*(int(chess.NumPieceTypes)-1) + int(p.Type) - 1
}

// Zobrist returns the position key of a state: piece placement, side to
// move and the four castle rights. Check flags do not contribute.
func Zobrist(s engine.State) uint64 {
	var h uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(rank, file)
			p := s.Board.At(sq)
			if p.IsEmpty() {
				continue
			}
			h ^= pieceKeys[pieceIndex(p)][sq.Index()]
		}
	}
	if s.Current == chess.Black {
		h ^= blackToMove
	}
	rights := []bool{s.WhiteKingCastle, s.WhiteQueenCastle, s.BlackKingCastle, s.BlackQueenCastle}
	for i, ok := range rights {
		if ok {
			h ^= castleKeys[i]
		}
	}
	return h
}

// PositionSet records the distinct positions reached.
type PositionSet struct {
	seen map[uint64]struct{}
}

// NewPositionSet creates an empty set.
func NewPositionSet() *PositionSet {
	return &PositionSet{seen: make(map[uint64]struct{})}
}

// Add records the state's position. It returns true if the position was
// already in the set.
func (p *PositionSet) Add(s engine.State) bool {
	key := Zobrist(s)
	if _, ok := p.seen[key]; ok {
		return true
	}
	p.seen[key] = struct{}{}
	return false
}

// UniqueCount returns the number of distinct positions seen.
func (p *PositionSet) UniqueCount() int {
	return len(p.seen)
}

// Reset forgets every position.
func (p *PositionSet) Reset() {
	p.seen = make(map[uint64]struct{})
}
