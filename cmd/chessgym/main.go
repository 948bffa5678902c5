// chessgym queries the rules engine and search from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/config"
	"github.com/lgbarn/gym-chess-go/internal/engine"
	"github.com/lgbarn/gym-chess-go/internal/gym"
	"github.com/lgbarn/gym-chess-go/internal/notation"
	"github.com/lgbarn/gym-chess-go/internal/oracle"
	"github.com/lgbarn/gym-chess-go/internal/output"
	"github.com/lgbarn/gym-chess-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessgym version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := execute(context.Background(), commandFromFlags(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// execute runs the requested queries in order: move, moves, search,
// perft, verify, play. With no query it prints the position.
func execute(ctx context.Context, cmd command, cfg *config.Config) error {
	st, err := startState(cmd.fen)
	if err != nil {
		return err
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := runQueries(ctx, cmd, cfg, st, w); err != nil {
		w.Close() //nolint:errcheck,gosec // G104: reporting the query error instead
		return err
	}
	return w.Close()
}

func runQueries(ctx context.Context, cmd command, cfg *config.Config, st engine.State, w output.ResultWriter) error {
	queried := false

	if cmd.move != "" {
		next, reward, err := applyMove(st, cmd.player, cmd.move)
		if err != nil {
			return err
		}
		st = next
		if err := w.WriteResult(stateResult(st, reward, cmd.render)); err != nil {
			return err
		}
		queried = true
	}

	color, err := playerColor(st, cmd.player, cmd.move != "")
	if err != nil {
		return err
	}

	if cmd.moves {
		if err := writeMoves(w, st, color, cmd.attack); err != nil {
			return err
		}
		queried = true
	}

	if cmd.search {
		if err := writeSearch(ctx, w, cfg, st, color); err != nil {
			return err
		}
		queried = true
	}

	if cmd.perft > 0 {
		if err := writePerft(w, st, cmd.perft, cmd.divide); err != nil {
			return err
		}
		queried = true
	}

	if cmd.verify {
		if err := writeVerify(w, st); err != nil {
			return err
		}
		queried = true
	}

	if cmd.play > 0 {
		if err := playEpisodes(ctx, w, cfg, cmd.play); err != nil {
			return err
		}
		queried = true
	}

	if !queried {
		return w.WriteResult(stateResult(st, 0, cmd.render))
	}
	return nil
}

// startState parses the FEN, or returns the initial position.
func startState(fen string) (engine.State, error) {
	if fen == "" {
		return engine.InitialState(), nil
	}
	return notation.StateFromFEN(fen)
}

// playerColor resolves the -player token. Without one the side to move
// plays; after -move that is the side that replies.
func playerColor(st engine.State, token string, moved bool) (chess.Color, error) {
	if token == "" || moved {
		return st.Current, nil
	}
	return notation.ParseColor(token)
}

// applyMove plays the token for the player (or the side to move) and
// refreshes the check flags.
func applyMove(st engine.State, token, move string) (engine.State, int, error) {
	mover := st.Current
	if token != "" {
		c, err := notation.ParseColor(token)
		if err != nil {
			return st, 0, err
		}
		mover = c
	}

	eng := gym.NewEngine(nil)
	next, reward, err := eng.NextState(gym.SnapshotFromState(st), notation.FormatColor(mover), move)
	if err != nil {
		return st, 0, err
	}
	nst, err := next.State()
	if err != nil {
		return st, 0, err
	}
	nst, err = engine.UpdateCheckStatus(nst)
	return nst, reward, err
}

func stateResult(st engine.State, reward int, withDiagram bool) *output.StateResult {
	r := &output.StateResult{
		FEN:    notation.StateToFEN(st),
		State:  gym.SnapshotFromState(st),
		Reward: reward,
	}
	if withDiagram {
		r.Diagram = notation.Render(st.Board)
	}
	return r
}

func writeMoves(w output.ResultWriter, st engine.State, color chess.Color, attack bool) error {
	var tokens []string
	if attack {
		moves, err := engine.LegalAttackMoves(st, color)
		if err != nil {
			return err
		}
		tokens = notation.FormatMoves(moves)
	} else {
		actions, err := engine.LegalActions(st, color)
		if err != nil {
			return err
		}
		tokens = make([]string, len(actions))
		for i, a := range actions {
			tokens[i] = notation.FormatAction(a)
		}
	}
	if tokens == nil {
		tokens = []string{}
	}
	return w.WriteResult(&output.MovesResult{
		Player: notation.FormatColor(color),
		Attack: attack,
		Moves:  tokens,
	})
}

func writeSearch(ctx context.Context, w output.ResultWriter, cfg *config.Config, st engine.State, color chess.Color) error {
	s := search.NewSearcher(search.Options{
		Depth:     cfg.Search.Depth,
		Workers:   cfg.Search.Workers,
		Logger:    cfg.LogFile,
		Verbosity: cfg.Verbosity,
	})
	res, err := s.Search(ctx, st, color)
	if err != nil {
		return err
	}
	r := &output.SearchResult{
		Player: notation.FormatColor(color),
		Depth:  s.Depth(),
		Score:  res.Score,
		Nodes:  res.Nodes,
	}
	if res.Found {
		r.Move = notation.FormatAction(res.Best)
	}
	return w.WriteResult(r)
}

func writePerft(w output.ResultWriter, st engine.State, depth int, split bool) error {
	if !split {
		nodes, err := engine.Perft(st, depth)
		if err != nil {
			return err
		}
		return w.WriteResult(&output.PerftResult{Depth: depth, Nodes: nodes})
	}

	div, err := engine.PerftDivide(st, depth)
	if err != nil {
		return err
	}
	r := &output.PerftResult{Depth: depth}
	for a, n := range div {
		r.Divide = append(r.Divide, output.DivideEntry{Move: notation.FormatAction(a), Nodes: n})
		r.Nodes += n
	}
	slices.SortFunc(r.Divide, func(a, b output.DivideEntry) int {
		return strings.Compare(a.Move, b.Move)
	})
	return w.WriteResult(r)
}

func writeVerify(w output.ResultWriter, st engine.State) error {
	d, err := oracle.Compare(st)
	if err != nil {
		return err
	}
	return w.WriteResult(&output.VerifyResult{
		FEN:        d.FEN,
		Agree:      d.Empty(),
		OnlyEngine: d.OnlyEngine,
		OnlyOracle: d.OnlyOracle,
	})
}

// playEpisodes plays n episodes of a uniformly random agent against the
// configured opponent and reports each one.
func playEpisodes(ctx context.Context, w output.ResultWriter, cfg *config.Config, n int) error {
	env, err := gym.NewEnv(cfg)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Env.Seed)) //nolint:gosec // G404: not security sensitive

	for i := 1; i <= n; i++ {
		if _, err := env.Reset(ctx); err != nil {
			return err
		}
		total := 0
		var moves []string
		for !env.Done() {
			actions, err := env.LegalActions()
			if err != nil {
				return err
			}
			if len(actions) == 0 {
				break
			}
			tok := notation.FormatAction(actions[rng.Intn(len(actions))])
			_, reward, _, err := env.Step(ctx, tok)
			if err != nil {
				return err
			}
			total += reward
			moves = append(moves, tok)
		}

		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "episode %d: %s after %d plies\n", i, env.Outcome(), env.Plies())
		}
		if err := w.WriteResult(&output.EpisodeResult{
			Episode:   i,
			Plies:     env.Plies(),
			Positions: env.Positions(),
			Outcome:   env.Outcome(),
			Reward:    total,
			Moves:     moves,
		}); err != nil {
			return err
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgym [options]\n\n")
	fmt.Fprintf(os.Stderr, "Query the chess gym rules engine and minimax search.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove tokens:\n")
	fmt.Fprintf(os.Stderr, "  e2e4                     normal move (promotion to queen is automatic)\n")
	fmt.Fprintf(os.Stderr, "  CASTLE_KING_SIDE_WHITE   castles; also CASTLE_QUEEN_SIDE_WHITE,\n")
	fmt.Fprintf(os.Stderr, "                           CASTLE_KING_SIDE_BLACK, CASTLE_QUEEN_SIDE_BLACK\n")
}
