package search

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/worker"
)

// Options configures a Searcher.
type Options struct {
	Depth     int
	Workers   int       // >1 searches root actions in parallel
	Logger    io.Writer // nil disables logging
	Verbosity int       // 0=nothing, 1=result per search, 2=score per root action
}

// Result is the outcome of a search.
type Result struct {
	Score int
	Best  chess.Action
	Found bool // false when the root has no legal action
	Nodes uint64
}

// Searcher runs fixed-depth alpha-beta searches.
type Searcher struct {
	opts Options
}

// NewSearcher creates a searcher. Depth below zero is treated as zero.
func NewSearcher(opts Options) *Searcher {
	if opts.Depth < 0 {
		opts.Depth = 0
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Searcher{opts: opts}
}

// Depth returns the configured search depth.
func (s *Searcher) Depth() int {
	return s.opts.Depth
}

// Search returns the best action for player, who is both the side to move
// at the root and the maximizing player. Ties keep the first action in
// generation order.
func (s *Searcher) Search(ctx context.Context, st engine.State, player chess.Color) (Result, error) {
	var (
		res Result
		err error
	)
	if s.opts.Workers > 1 && s.opts.Depth > 0 {
		res, err = s.searchParallel(ctx, st, player)
	} else {
		res, err = s.searchSequential(ctx, st, player)
	}
	if err != nil {
		return Result{}, err
	}
	s.logf(1, "search depth %d for %s: score %d best %s nodes %d\n",
		s.opts.Depth, player, res.Score, bestString(res), res.Nodes)
	return res, nil
}

func (s *Searcher) searchSequential(ctx context.Context, st engine.State, player chess.Color) (Result, error) {
	var nodes uint64
	actions, err := engine.LegalActions(st, player)
	if err != nil {
		return Result{}, err
	}
	nodes++
	if len(actions) == 0 || s.opts.Depth == 0 {
		return Result{Score: Evaluate(st, player), Nodes: nodes}, nil
	}

	res := Result{Score: math.MinInt}
	alpha, beta := math.MinInt, math.MaxInt
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		next, _, err := engine.NextState(st, a, player)
		if err != nil {
			return Result{}, err
		}
		score, err := alphaBeta(next, player.Opposite(), s.opts.Depth-1, alpha, beta, player, &nodes)
		if err != nil {
			return Result{}, err
		}
		s.logf(2, "  %s: %d\n", a, score)
		if score > res.Score {
			res.Score, res.Best, res.Found = score, a, true
		}
		if res.Score > alpha {
			alpha = res.Score
		}
	}
	res.Nodes = nodes
	return res, nil
}

// searchParallel gives every root action its own full-window search on the
// worker pool and merges the results in generation order, so the outcome
// matches the sequential search.
func (s *Searcher) searchParallel(ctx context.Context, st engine.State, player chess.Color) (Result, error) {
	actions, err := engine.LegalActions(st, player)
	if err != nil {
		return Result{}, err
	}
	if len(actions) == 0 {
		return Result{Score: Evaluate(st, player), Nodes: 1}, nil
	}

	items := make([]worker.WorkItem, len(actions))
	for i, a := range actions {
		next, _, err := engine.NextState(st, a, player)
		if err != nil {
			return Result{}, err
		}
		items[i] = worker.WorkItem{Index: i, Action: a, State: next}
	}

	depth := s.opts.Depth - 1
	process := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		var nodes uint64
		score, err := alphaBeta(item.State, player.Opposite(), depth, math.MinInt, math.MaxInt, player, &nodes)
		return worker.ProcessResult{Index: item.Index, Action: item.Action, Score: score, Nodes: nodes, Err: err}
	}
	results, err := worker.Run(ctx, process, items,
		worker.WithWorkers(s.opts.Workers), worker.WithBufferSize(len(items)))
	if err != nil {
		return Result{}, err
	}

	res := Result{Score: math.MinInt, Nodes: 1}
	for _, r := range results {
		s.logf(2, "  %s: %d\n", r.Action, r.Score)
		res.Nodes += r.Nodes
		if r.Score > res.Score {
			res.Score, res.Best, res.Found = r.Score, r.Action, true
		}
	}
	return res, nil
}

// alphaBeta returns the minimax value of the node for the maximizer. Leaves
// are scored from the side to move and negated when that side is not the
// maximizer.
func alphaBeta(st engine.State, toMove chess.Color, depth, alpha, beta int, maximizer chess.Color, nodes *uint64) (int, error) {
	*nodes++
	actions, err := engine.LegalActions(st, toMove)
	if err != nil {
		return 0, err
	}
	if len(actions) == 0 || depth == 0 {
		score := Evaluate(st, toMove)
		if toMove != maximizer {
			score = -score
		}
		return score, nil
	}

	if toMove == maximizer {
		best := math.MinInt
		for _, a := range actions {
			next, _, err := engine.NextState(st, a, toMove)
			if err != nil {
				return 0, err
			}
			score, err := alphaBeta(next, toMove.Opposite(), depth-1, alpha, beta, maximizer, nodes)
			if err != nil {
				return 0, err
			}
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best, nil
	}

	best := math.MaxInt
	for _, a := range actions {
		next, _, err := engine.NextState(st, a, toMove)
		if err != nil {
			return 0, err
		}
		score, err := alphaBeta(next, toMove.Opposite(), depth-1, alpha, beta, maximizer, nodes)
		if err != nil {
			return 0, err
		}
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, nil
}

func (s *Searcher) logf(level int, format string, args ...interface{}) {
	if s.opts.Logger != nil && s.opts.Verbosity >= level {
		fmt.Fprintf(s.opts.Logger, format, args...)
	}
}

func bestString(r Result) string {
	if !r.Found {
		return "(none)"
	}
	return r.Best.String()
}
