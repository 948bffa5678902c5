package gym

import (
	"context"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/config"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/errors"
	"github.com/lgbarn/gym-chess-go/internal/notation"
	"github.com/lgbarn/gym-chess-go/internal/search"
)

// Engine is the host-facing facade over the rules and the search. Every
// method takes player and move tokens as strings and reports malformed
// tokens with ErrInvalidColor or ErrInvalidMoveFormat.
type Engine struct {
	cfg *config.Config
}

// NewEngine creates an engine. A nil config uses the defaults.
func NewEngine(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// NextState applies move for player, refreshes the check flags and returns
// the new snapshot with the reward earned. A position with both kings in
// check is rejected with ErrImpossiblePosition.
func (e *Engine) NextState(snap Snapshot, player, move string) (Snapshot, int, error) {
	st, color, err := decode(snap, player)
	if err != nil {
		return snap, 0, err
	}
	action, err := notation.ParseAction(move)
	if err != nil {
		return snap, 0, err
	}

	next, reward, err := engine.NextState(st, action, color)
	if err != nil {
		return snap, 0, err
	}
	next, err = settle(next)
	if err != nil {
		return snap, 0, err
	}
	return SnapshotFromState(next), reward, nil
}

// PossibleMoves lists the player's legal moves followed by its castles.
// With attack set it lists attack-mode moves instead: every square each
// piece attacks or defends, less those that expose the player's king. No
// castles are listed in attack mode.
func (e *Engine) PossibleMoves(snap Snapshot, player string, attack bool) ([]string, error) {
	st, color, err := decode(snap, player)
	if err != nil {
		return nil, err
	}
	if attack {
		moves, err := engine.LegalAttackMoves(st, color)
		if err != nil {
			return nil, err
		}
		return notation.FormatMoves(moves), nil
	}

	actions, err := engine.LegalActions(st, color)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(actions))
	for i, a := range actions {
		tokens[i] = notation.FormatAction(a)
	}
	return tokens, nil
}

// CastleMoves lists the player's legal castles, queen-side first.
func (e *Engine) CastleMoves(snap Snapshot, player string) ([]string, error) {
	st, color, err := decode(snap, player)
	if err != nil {
		return nil, err
	}
	castles, err := engine.LegalCastles(st, color)
	if err != nil {
		return nil, err
	}
	return notation.FormatCastles(castles), nil
}

// UpdateState recomputes both check flags.
func (e *Engine) UpdateState(snap Snapshot) (Snapshot, error) {
	st, err := snap.State()
	if err != nil {
		return snap, err
	}
	st, err = engine.UpdateCheckStatus(st)
	if err != nil {
		return snap, err
	}
	return SnapshotFromState(st), nil
}

// Minimax searches depth plies for player and returns the score with the
// best move token. The token is empty when the player has no legal action
// or depth is zero.
func (e *Engine) Minimax(ctx context.Context, snap Snapshot, depth int, player string) (int, string, error) {
	st, color, err := decode(snap, player)
	if err != nil {
		return 0, "", err
	}
	res, err := e.searcher(depth).Search(ctx, st, color)
	if err != nil {
		return 0, "", err
	}
	if !res.Found {
		return res.Score, "", nil
	}
	return res.Score, notation.FormatAction(res.Best), nil
}

func (e *Engine) searcher(depth int) *search.Searcher {
	return search.NewSearcher(search.Options{
		Depth:     depth,
		Workers:   e.cfg.Search.Workers,
		Logger:    e.cfg.LogFile,
		Verbosity: e.cfg.Verbosity,
	})
}

func decode(snap Snapshot, player string) (engine.State, chess.Color, error) {
	color, err := notation.ParseColor(player)
	if err != nil {
		return engine.State{}, color, err
	}
	st, err := snap.State()
	if err != nil {
		return engine.State{}, color, err
	}
	return st, color, nil
}

// settle refreshes the check flags after a transition and rejects
// positions where both kings are attacked.
func settle(st engine.State) (engine.State, error) {
	st, err := engine.UpdateCheckStatus(st)
	if err != nil {
		return st, err
	}
	if err := engine.ValidateCheckStatus(st); err != nil {
		return st, errors.Wrap(err, "after transition")
	}
	return st, nil
}
