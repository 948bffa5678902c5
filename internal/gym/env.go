package gym

import (
	"context"
	"fmt"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/config"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/errors"
	"github.com/lgbarn/gym-chess-go/internal/hashing"
	"github.com/lgbarn/gym-chess-go/internal/notation"
	"github.com/lgbarn/gym-chess-go/internal/search"
	"golang.org/x/exp/slices"
)

// Episode outcomes reported by Env.Outcome.
const (
	OutcomeNone                 = ""
	OutcomeCheckmate            = "checkmate"
	OutcomeStalemate            = "stalemate"
	OutcomeKingCaptured         = "king captured"
	OutcomeInsufficientMaterial = "insufficient material"
	OutcomePlyLimit             = "ply limit"
)

// Env runs an episode between an agent and an opponent policy. Each Step
// plays one agent move and the opponent's reply.
type Env struct {
	cfg      *config.Config
	agent    chess.Color
	opponent Opponent

	state   engine.State
	plies   int
	outcome string
	seen    *hashing.PositionSet
}

// NewEnv creates an environment from the configuration. The opponent is
// chosen by cfg.Env.Opponent.
func NewEnv(cfg *config.Config) (*Env, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agent, err := notation.ParseColor(cfg.Env.AgentColor)
	if err != nil {
		return nil, err
	}

	var opp Opponent
	switch cfg.Env.Opponent {
	case config.OpponentRandom:
		opp = NewRandomOpponent(cfg.Env.Seed)
	default:
		opp = &MinimaxOpponent{Searcher: search.NewSearcher(search.Options{
			Depth:     cfg.Search.Depth,
			Workers:   cfg.Search.Workers,
			Logger:    cfg.LogFile,
			Verbosity: cfg.Verbosity,
		})}
	}

	e := &Env{
		cfg:      cfg,
		agent:    agent,
		opponent: opp,
		state:    engine.InitialState(),
		seen:     hashing.NewPositionSet(),
	}
	e.seen.Add(e.state)
	return e, nil
}

// SetOpponent replaces the opponent policy.
func (e *Env) SetOpponent(o Opponent) {
	e.opponent = o
}

// Agent returns the agent's colour.
func (e *Env) Agent() chess.Color {
	return e.agent
}

// State returns the current engine state.
func (e *Env) State() engine.State {
	return e.state
}

// Snapshot returns the current state in host form.
func (e *Env) Snapshot() Snapshot {
	return SnapshotFromState(e.state)
}

// Plies returns the number of plies played this episode.
func (e *Env) Plies() int {
	return e.plies
}

// Positions returns the number of distinct positions reached this episode,
// the starting position included. Revisiting a position never ends an
// episode.
func (e *Env) Positions() int {
	return e.seen.UniqueCount()
}

// Done reports whether the episode has finished.
func (e *Env) Done() bool {
	return e.outcome != OutcomeNone
}

// Outcome returns why the episode ended, or OutcomeNone.
func (e *Env) Outcome() string {
	return e.outcome
}

// LegalActions returns the agent's legal actions in the current state.
func (e *Env) LegalActions() ([]chess.Action, error) {
	return engine.LegalActions(e.state, e.agent)
}

// Reset starts a new episode from the initial position. When the agent
// plays Black the opponent's first move is made before returning.
func (e *Env) Reset(ctx context.Context) (Snapshot, error) {
	return e.ResetFrom(ctx, engine.InitialState())
}

// ResetFrom starts a new episode from st. When the opponent is to move it
// replies before returning.
func (e *Env) ResetFrom(ctx context.Context, st engine.State) (Snapshot, error) {
	st, err := settle(st)
	if err != nil {
		return SnapshotFromState(st), err
	}
	e.state = st
	e.plies = 0
	e.seen.Reset()
	e.seen.Add(st)
	e.outcome, err = e.terminal()
	if err != nil || e.Done() {
		return e.Snapshot(), err
	}

	if st.Current != e.agent {
		if _, err := e.reply(ctx); err != nil {
			return e.Snapshot(), err
		}
	}
	return e.Snapshot(), nil
}

// Step plays the agent's move token and the opponent's reply. The reward
// is the agent's capture and promotion reward less the opponent's.
func (e *Env) Step(ctx context.Context, move string) (Snapshot, int, bool, error) {
	if e.Done() {
		return e.Snapshot(), 0, true, fmt.Errorf("episode finished by %s: %w", e.outcome, errors.ErrIllegalMove)
	}
	action, err := notation.ParseAction(move)
	if err != nil {
		return e.Snapshot(), 0, false, err
	}
	actions, err := e.LegalActions()
	if err != nil {
		return e.Snapshot(), 0, false, err
	}
	if !slices.Contains(actions, action) {
		return e.Snapshot(), 0, false, &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Move:   move,
			Player: notation.FormatColor(e.agent),
			Ply:    e.plies + 1,
		}
	}

	reward, err := e.play(action, e.agent)
	if err != nil {
		return e.Snapshot(), 0, false, err
	}
	if e.Done() {
		return e.Snapshot(), reward, true, nil
	}

	lost, err := e.reply(ctx)
	if err != nil {
		return e.Snapshot(), 0, false, err
	}
	return e.Snapshot(), reward - lost, e.Done(), nil
}

// reply plays the opponent's move and returns its reward.
func (e *Env) reply(ctx context.Context) (int, error) {
	color := e.agent.Opposite()
	action, ok, err := e.opponent.Reply(ctx, e.state, color)
	if err != nil {
		return 0, err
	}
	if !ok {
		e.outcome, err = e.terminal()
		return 0, err
	}
	return e.play(action, color)
}

// play applies an action, refreshes the check flags and records whether
// the episode has ended.
func (e *Env) play(action chess.Action, mover chess.Color) (int, error) {
	next, reward, err := engine.NextState(e.state, action, mover)
	if err != nil {
		return 0, err
	}
	next, err = settle(next)
	if err != nil {
		return 0, err
	}
	e.state = next
	e.plies++
	e.seen.Add(next)

	e.outcome, err = e.terminal()
	if err != nil {
		return 0, err
	}
	if e.outcome == OutcomeNone && e.cfg.Env.MaxPlies > 0 && e.plies >= e.cfg.Env.MaxPlies {
		e.outcome = OutcomePlyLimit
	}
	return reward, nil
}

// terminal classifies the current state.
func (e *Env) terminal() (string, error) {
	st := e.state
	if !st.Board.Contains(chess.W(chess.King)) || !st.Board.Contains(chess.B(chess.King)) {
		return OutcomeKingCaptured, nil
	}
	if engine.HasInsufficientMaterial(st.Board) {
		return OutcomeInsufficientMaterial, nil
	}
	has, err := engine.HasLegalActions(st, st.Current)
	if err != nil || has {
		return OutcomeNone, err
	}
	inCheck, err := engine.IsInCheck(st, st.Current)
	if err != nil {
		return OutcomeNone, err
	}
	if inCheck {
		return OutcomeCheckmate, nil
	}
	return OutcomeStalemate, nil
}
