package engine

import "github.com/lgbarn/gym-chess-go/internal/chess"

// Perft counts the leaf nodes of the legal action tree to the given depth.
func Perft(s State, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	actions, err := LegalActions(s, s.Current)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(actions)), nil
	}

	var nodes uint64
	for _, a := range actions {
		next, _, err := NextState(s, a, s.Current)
		if err != nil {
			return 0, err
		}
		n, err := Perft(next, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// PerftDivide returns the perft count below each root action.
func PerftDivide(s State, depth int) (map[chess.Action]uint64, error) {
	actions, err := LegalActions(s, s.Current)
	if err != nil {
		return nil, err
	}
	div := make(map[chess.Action]uint64, len(actions))
	for _, a := range actions {
		next, _, err := NextState(s, a, s.Current)
		if err != nil {
			return nil, err
		}
		n, err := Perft(next, depth-1)
		if err != nil {
			return nil, err
		}
		div[a] = n
	}
	return div, nil
}
