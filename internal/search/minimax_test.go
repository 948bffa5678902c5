package search

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/testutil"
)

var searchFENs = []struct {
	name   string
	fen    string
	player chess.Color
}{
	{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chess.White},
	{"hanging queen", "4k3/8/8/q7/8/8/8/R3K3", chess.White},
	{"open centre", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R", chess.Black},
	{"rook endgame", "8/5k2/8/8/8/8/5K2/4R3", chess.Black},
}

func stateFor(t testing.TB, fen string, player chess.Color) engine.State {
	t.Helper()
	return engine.NewState(testutil.MustPlacement(t, fen), player, false, false, false, false)
}

// minimax is a plain search without pruning.
func minimax(t *testing.T, s engine.State, toMove chess.Color, depth int, maximizer chess.Color) (int, chess.Action, bool) {
	t.Helper()
	actions, err := engine.LegalActions(s, toMove)
	testutil.AssertNoError(t, err)
	if len(actions) == 0 || depth == 0 {
		score := Evaluate(s, toMove)
		if toMove != maximizer {
			score = -score
		}
		return score, chess.Action{}, false
	}

	best := math.MinInt
	if toMove != maximizer {
		best = math.MaxInt
	}
	var bestAction chess.Action
	for _, a := range actions {
		next, _, err := engine.NextState(s, a, toMove)
		testutil.AssertNoError(t, err)
		score, _, _ := minimax(t, next, toMove.Opposite(), depth-1, maximizer)
		if toMove == maximizer && score > best {
			best, bestAction = score, a
		}
		if toMove != maximizer && score < best {
			best = score
		}
	}
	return best, bestAction, true
}

func TestSearch_DepthOneIsArgmax(t *testing.T) {
	for _, tt := range searchFENs {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFor(t, tt.fen, tt.player)

			actions, err := engine.LegalActions(s, tt.player)
			testutil.AssertNoError(t, err)
			wantScore := math.MinInt
			var want chess.Action
			for _, a := range actions {
				next, _, err := engine.NextState(s, a, tt.player)
				testutil.AssertNoError(t, err)
				if score := -Evaluate(next, tt.player.Opposite()); score > wantScore {
					wantScore, want = score, a
				}
			}

			res, err := NewSearcher(Options{Depth: 1}).Search(context.Background(), s, tt.player)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, res.Found)
			testutil.AssertEqual(t, res.Score, wantScore)
			testutil.AssertEqual(t, res.Best.String(), want.String())
		})
	}
}

func TestSearch_MatchesPlainMinimax(t *testing.T) {
	depths := []int{2, 3}
	if testing.Short() {
		depths = depths[:1]
	}
	for _, tt := range searchFENs {
		for _, depth := range depths {
			t.Run(fmt.Sprintf("%s/depth%d", tt.name, depth), func(t *testing.T) {
				s := stateFor(t, tt.fen, tt.player)
				wantScore, want, _ := minimax(t, s, tt.player, depth, tt.player)

				res, err := NewSearcher(Options{Depth: depth}).Search(context.Background(), s, tt.player)
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, res.Score, wantScore, "depth %d score", depth)
				testutil.AssertEqual(t, res.Best.String(), want.String(), "depth %d move", depth)
			})
		}
	}
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	for _, tt := range searchFENs {
		t.Run(tt.name, func(t *testing.T) {
			s := stateFor(t, tt.fen, tt.player)

			seq, err := NewSearcher(Options{Depth: 2}).Search(context.Background(), s, tt.player)
			testutil.AssertNoError(t, err)
			par, err := NewSearcher(Options{Depth: 2, Workers: 4}).Search(context.Background(), s, tt.player)
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, par.Score, seq.Score)
			testutil.AssertEqual(t, par.Best.String(), seq.Best.String())
			testutil.AssertEqual(t, par.Found, seq.Found)
		})
	}
}

func TestSearch_TakesHangingQueen(t *testing.T) {
	s := stateFor(t, "4k3/8/8/q7/8/8/8/R3K3", chess.White)

	for _, depth := range []int{1, 2} {
		res, err := NewSearcher(Options{Depth: depth}).Search(context.Background(), s, chess.White)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, res.Best.String(), "a1a5", "depth %d", depth)
	}
}

func TestSearch_NoLegalActions(t *testing.T) {
	s := stateFor(t, "k7/8/1Q6/8/8/8/8/2K5", chess.Black)

	res, err := NewSearcher(Options{Depth: 3}).Search(context.Background(), s, chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, res.Found)
	testutil.AssertEqual(t, res.Score, Evaluate(s, chess.Black))
}

func TestSearch_DepthZero(t *testing.T) {
	s := engine.InitialState()

	res, err := NewSearcher(Options{Depth: 0}).Search(context.Background(), s, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, res.Found)
	testutil.AssertEqual(t, res.Score, Evaluate(s, chess.White))
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := NewSearcher(Options{Depth: 2, Workers: workers}).Search(ctx, engine.InitialState(), chess.White)
		testutil.AssertErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestSearch_Logging(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewSearcher(Options{Depth: 1, Logger: &buf, Verbosity: 2}).Search(context.Background(), engine.InitialState(), chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, buf.String(), "search depth 1 for White")
	testutil.AssertContains(t, buf.String(), "  e2e4: ")

	buf.Reset()
	_, err = NewSearcher(Options{Depth: 1, Logger: &buf, Verbosity: 0}).Search(context.Background(), engine.InitialState(), chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, buf.String(), "")
}

func BenchmarkSearch(b *testing.B) {
	cases := []struct {
		name    string
		workers int
	}{
		{"Sequential", 1},
		{"Parallel", 4},
	}
	s := engine.InitialState()
	for _, tc := range cases {
		searcher := NewSearcher(Options{Depth: 3, Workers: tc.workers})
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				searcher.Search(context.Background(), s, chess.White)
			}
		})
	}
}
