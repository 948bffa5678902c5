package gym

import (
	"context"
	"math/rand"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/search"
)

// Opponent picks the reply to an agent move. ok is false when the colour
// has no legal action.
type Opponent interface {
	Reply(ctx context.Context, st engine.State, color chess.Color) (action chess.Action, ok bool, err error)
}

// MinimaxOpponent replies with the best action of a fixed-depth search.
type MinimaxOpponent struct {
	Searcher *search.Searcher
}

// Reply implements Opponent.
func (o *MinimaxOpponent) Reply(ctx context.Context, st engine.State, color chess.Color) (chess.Action, bool, error) {
	if o.Searcher.Depth() == 0 {
		// A depth-zero search never names a move; fall back to the first legal one.
		actions, err := engine.LegalActions(st, color)
		if err != nil || len(actions) == 0 {
			return chess.Action{}, false, err
		}
		return actions[0], true, nil
	}
	res, err := o.Searcher.Search(ctx, st, color)
	if err != nil {
		return chess.Action{}, false, err
	}
	return res.Best, res.Found, nil
}

// RandomOpponent replies with a uniformly chosen legal action.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent creates a random opponent with a fixed seed.
func NewRandomOpponent(seed int64) *RandomOpponent {
	return &RandomOpponent{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // G404: not security sensitive
}

// Reply implements Opponent.
func (o *RandomOpponent) Reply(ctx context.Context, st engine.State, color chess.Color) (chess.Action, bool, error) {
	if err := ctx.Err(); err != nil {
		return chess.Action{}, false, err
	}
	actions, err := engine.LegalActions(st, color)
	if err != nil || len(actions) == 0 {
		return chess.Action{}, false, err
	}
	return actions[o.rng.Intn(len(actions))], true, nil
}
