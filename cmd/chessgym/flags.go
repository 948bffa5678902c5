// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/gym-chess-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	player    = flag.String("player", "", "Player token WHITE or BLACK (default: side to move)")
	moveToken = flag.String("move", "", "Apply this move or castle token before any query")

	// Queries
	listMoves  = flag.Bool("moves", false, "List legal moves followed by castles")
	attackMode = flag.Bool("attack", false, "With -moves, list attack-mode moves instead")
	runSearch  = flag.Bool("search", false, "Run a minimax search for the player")
	depth      = flag.Int("depth", 3, "Search depth in plies")
	workers    = flag.Int("workers", 1, "Number of goroutines sharing the root moves")
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to this depth")
	divide     = flag.Bool("divide", false, "With -perft, split the count by root move")
	verify     = flag.Bool("verify", false, "Cross-check legal moves against dragontoothmg")
	render     = flag.Bool("render", false, "Print a board diagram with each position")

	// Self-play
	playCount  = flag.Int("play", 0, "Play N episodes of a random agent against the opponent")
	agentColor = flag.String("agent", "WHITE", "Agent side for -play: WHITE or BLACK")
	opponent   = flag.String("opponent", config.OpponentMinimax, "Opponent policy for -play: minimax or random")
	seed       = flag.Int64("seed", 1, "Random seed for -play")
	maxPlies   = flag.Int("maxplies", 200, "End an episode after N plies (0 = no limit)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("json", false, "Output in JSON format")
	lineLength   = flag.Int("w", 80, "Maximum line length of move lists")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=search summary, 2=per-move scores")
	logFile   = flag.String("log", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// command holds the queries requested on the command line.
type command struct {
	fen    string
	player string
	move   string

	moves  bool
	attack bool
	search bool
	perft  int
	divide bool
	verify bool
	render bool
	play   int
}

// commandFromFlags collects the query flags.
func commandFromFlags() command {
	return command{
		fen:    *fenString,
		player: *player,
		move:   *moveToken,
		moves:  *listMoves,
		attack: *attackMode,
		search: *runSearch,
		perft:  *perftDepth,
		divide: *divide,
		verify: *verify,
		render: *render,
		play:   *playCount,
	}
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyEnvFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
}

// applyEnvFlags configures self-play episodes.
func applyEnvFlags(cfg *config.Config) {
	cfg.Env.AgentColor = *agentColor
	cfg.Env.Opponent = *opponent
	cfg.Env.Seed = *seed
	cfg.Env.MaxPlies = *maxPlies
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSONFormat = *jsonOutput
	cfg.LineLength = *lineLength
}
