package engine

import (
	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/errors"
)

// Mode selects how the generator treats occupied squares.
type Mode int

const (
	// Playable generates moves a piece could actually make.
	Playable Mode = iota
	// Attack generates every square a piece attacks or defends.
	Attack
)

// Direction tables. Their order fixes the order moves are generated in.
var (
	kingSteps   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightSteps = [][2]int{{-2, -1}, {-2, 1}, {2, -1}, {2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}}
)

// generator accumulates pseudo-legal moves for one side.
type generator struct {
	board    *chess.Board
	color    chess.Color
	mode     Mode
	attacked AttackMap
	moves    []chess.Move
}

// PseudoMoves returns the pseudo-legal moves of every piece of the colour,
// scanning ranks then files. In Playable mode king destinations found in
// attacked are skipped; attacked is ignored in Attack mode.
func PseudoMoves(s State, color chess.Color, mode Mode, attacked AttackMap) ([]chess.Move, error) {
	g := &generator{
		board:    &s.Board,
		color:    color,
		mode:     mode,
		attacked: attacked,
		moves:    make([]chess.Move, 0, 48),
	}
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			from := chess.Sq(r, f)
			piece := g.board.At(from)
			if !piece.BelongsTo(color) {
				continue
			}
			if err := g.piece(from, piece.Type); err != nil {
				return nil, err
			}
		}
	}
	return g.moves, nil
}

func (g *generator) piece(from chess.Square, pieceType chess.PieceType) error {
	switch pieceType {
	case chess.King:
		return g.king(from)
	case chess.Queen:
		g.slide(from, rookDirs)
		g.slide(from, bishopDirs)
	case chess.Rook:
		g.slide(from, rookDirs)
	case chess.Bishop:
		g.slide(from, bishopDirs)
	case chess.Knight:
		g.knight(from)
	case chess.Pawn:
		g.pawn(from)
	}
	return nil
}

func (g *generator) add(from, to chess.Square) {
	g.moves = append(g.moves, chess.Move{From: from, To: to})
}

// step classifies a destination for sliding and knight moves.
// It reports whether the square is added and whether a ray stops there.
func (g *generator) step(to chess.Square) (add, stop bool) {
	if !to.OnBoard() {
		return false, true
	}
	target := g.board.At(to)
	if target.IsEmpty() {
		return true, false
	}
	if g.mode == Attack {
		// Own and opposing pieces, including the opposing king, end the ray
		// and count as attacked or defended.
		return true, true
	}
	if target.BelongsTo(g.color) {
		return false, true
	}
	return true, true
}

func (g *generator) slide(from chess.Square, dirs [][2]int) {
	for _, dir := range dirs {
		for k := 1; ; k++ {
			to := from.Offset(k*dir[0], k*dir[1])
			add, stop := g.step(to)
			if add {
				g.add(from, to)
			}
			if stop {
				break
			}
		}
	}
}

func (g *generator) knight(from chess.Square) {
	for _, off := range knightSteps {
		to := from.Offset(off[0], off[1])
		if add, _ := g.step(to); add {
			g.add(from, to)
		}
	}
}

func (g *generator) king(from chess.Square) error {
	for _, off := range kingSteps {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		target := g.board.At(to)
		if target.Is(g.color.Opposite(), chess.King) {
			return &errors.PositionError{
				Err:    errors.ErrInternalInvariant,
				Square: to.String(),
				Detail: "kings on adjacent squares",
			}
		}
		if g.mode == Attack {
			g.add(from, to)
			continue
		}
		if g.attacked.Has(to) || target.BelongsTo(g.color) {
			continue
		}
		g.add(from, to)
	}
	return nil
}

func (g *generator) pawn(from chess.Square) {
	dir := g.color.PawnDirection()
	captures := [2]chess.Square{from.Offset(dir, 1), from.Offset(dir, -1)}

	if g.mode == Attack {
		for _, to := range captures {
			if to.OnBoard() && !g.board.At(to).Is(g.color, chess.King) {
				g.add(from, to)
			}
		}
		return
	}

	one := from.Offset(dir, 0)
	if one.OnBoard() && g.board.At(one).IsEmpty() {
		g.add(from, one)
		two := from.Offset(2*dir, 0)
		if from.Rank == g.color.PawnRank() && two.OnBoard() && g.board.At(two).IsEmpty() {
			g.add(from, two)
		}
	}
	for _, to := range captures {
		if to.OnBoard() && g.board.At(to).BelongsTo(g.color.Opposite()) {
			g.add(from, to)
		}
	}
}
