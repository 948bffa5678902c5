package engine

import "github.com/lgbarn/gym-chess-go/internal/chess"

// LegalMoves returns the colour's normal moves that do not leave its own
// king attacked, in generator order.
func LegalMoves(s State, color chess.Color) ([]chess.Move, error) {
	attacked, err := SquaresAttackedBy(s, color.Opposite())
	if err != nil {
		return nil, err
	}
	return legalMoves(s, color, attacked)
}

func legalMoves(s State, color chess.Color, attacked AttackMap) ([]chess.Move, error) {
	candidates, err := PseudoMoves(s, color, Playable, attacked)
	if err != nil {
		return nil, err
	}
	return keepSafe(s, color, candidates)
}

// keepSafe filters candidates in place down to the moves that leave the
// colour's king unattacked.
func keepSafe(s State, color chess.Color, candidates []chess.Move) ([]chess.Move, error) {
	moves := candidates[:0]
	for _, m := range candidates {
		safe, err := tryMove(s, m, color)
		if err != nil {
			return nil, err
		}
		if safe {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// tryMove applies the move to a copy of the state and reports whether the
// mover's king, if it has one, is left off the opponent's attack map.
// King moves are checked too: a king stepping back along a checking ray is
// not caught by the attack map built before it moved.
func tryMove(s State, m chess.Move, color chess.Color) (bool, error) {
	next, _, err := ApplyMove(s, m, color)
	if err != nil {
		return false, err
	}
	return kingSafe(next, color)
}

// kingSafe reports whether the colour's king is absent or unattacked.
func kingSafe(s State, color chess.Color) (bool, error) {
	kingSq, ok := s.Board.Find(chess.NewPiece(color, chess.King))
	if !ok {
		return true, nil
	}
	attacked, err := SquaresAttackedBy(s, color.Opposite())
	if err != nil {
		return false, err
	}
	return !attacked.Has(kingSq), nil
}

// LegalCastles returns the castles available to the colour, queen-side first.
func LegalCastles(s State, color chess.Color) ([]chess.Castle, error) {
	attacked, err := SquaresAttackedBy(s, color.Opposite())
	if err != nil {
		return nil, err
	}
	return castleMoves(&s, color, attacked), nil
}

// LegalActions returns all legal normal moves followed by all legal castles.
func LegalActions(s State, color chess.Color) ([]chess.Action, error) {
	attacked, err := SquaresAttackedBy(s, color.Opposite())
	if err != nil {
		return nil, err
	}
	moves, err := legalMoves(s, color, attacked)
	if err != nil {
		return nil, err
	}
	castles := castleMoves(&s, color, attacked)

	actions := make([]chess.Action, 0, len(moves)+len(castles))
	for _, m := range moves {
		actions = append(actions, chess.MoveAction(m))
	}
	for _, c := range castles {
		actions = append(actions, chess.CastleAction(c))
	}
	return actions, nil
}

// AttackMoves returns the colour's attack-mode moves: every square each
// piece attacks or defends. No legality filtering is applied.
func AttackMoves(s State, color chess.Color) ([]chess.Move, error) {
	return PseudoMoves(s, color, Attack, 0)
}

// LegalAttackMoves returns the attack-mode moves that do not leave the
// colour's king attacked. Castles are never attack moves.
func LegalAttackMoves(s State, color chess.Color) ([]chess.Move, error) {
	attacked, err := SquaresAttackedBy(s, color.Opposite())
	if err != nil {
		return nil, err
	}
	candidates, err := AttackMoves(s, color)
	if err != nil {
		return nil, err
	}

	// King steps onto attacked squares go first: trying one next to the
	// enemy king would trip the adjacent-kings invariant.
	unattacked := candidates[:0]
	for _, m := range candidates {
		if s.Board.At(m.From).Type == chess.King && attacked.Has(m.To) {
			continue
		}
		unattacked = append(unattacked, m)
	}
	return keepSafe(s, color, unattacked)
}

// HasLegalActions returns true if the colour has at least one legal action.
func HasLegalActions(s State, color chess.Color) (bool, error) {
	actions, err := LegalActions(s, color)
	if err != nil {
		return false, err
	}
	return len(actions) > 0, nil
}
