// Package output writes command results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gym-chess-go/internal/gym"
)

// Result is one reportable outcome of a command.
type Result interface {
	// Kind names the result in JSON output.
	Kind() string

	// WriteText writes the human-readable form.
	WriteText(w io.Writer, lineLength int) error
}

// StateResult reports a position, optionally after a transition.
type StateResult struct {
	FEN     string       `json:"fen"`
	State   gym.Snapshot `json:"state"`
	Reward  int          `json:"reward"`
	Diagram string       `json:"-"`
}

// Kind implements Result.
func (r *StateResult) Kind() string { return "state" }

// WriteText implements Result.
func (r *StateResult) WriteText(w io.Writer, _ int) error {
	var sb strings.Builder
	if r.Diagram != "" {
		sb.WriteString(r.Diagram)
	}
	fmt.Fprintf(&sb, "FEN %s\n", r.FEN)
	fmt.Fprintf(&sb, "To move %s, reward %d\n", r.State.CurrentPlayer, r.Reward)
	if r.State.WhiteKingChecked {
		sb.WriteString("White king is in check\n")
	}
	if r.State.BlackKingChecked {
		sb.WriteString("Black king is in check\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// MovesResult reports a move list.
type MovesResult struct {
	Player string   `json:"player"`
	Attack bool     `json:"attack,omitempty"`
	Moves  []string `json:"moves"`
}

// Kind implements Result.
func (r *MovesResult) Kind() string { return "moves" }

// WriteText implements Result.
func (r *MovesResult) WriteText(w io.Writer, lineLength int) error {
	label := "moves"
	if r.Attack {
		label = "attacks"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%d):\n", r.Player, label, len(r.Moves))
	ow := NewOutputWriter(&sb, lineLength)
	for _, m := range r.Moves {
		ow.Write(m)
	}
	if len(r.Moves) > 0 {
		ow.NewLine()
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// SearchResult reports a minimax search.
type SearchResult struct {
	Player string `json:"player"`
	Depth  int    `json:"depth"`
	Score  int    `json:"score"`
	Move   string `json:"move"`
	Nodes  uint64 `json:"nodes"`
}

// Kind implements Result.
func (r *SearchResult) Kind() string { return "search" }

// WriteText implements Result.
func (r *SearchResult) WriteText(w io.Writer, _ int) error {
	move := r.Move
	if move == "" {
		move = "(none)"
	}
	_, err := fmt.Fprintf(w, "%s depth %d: best %s score %d nodes %d\n",
		r.Player, r.Depth, move, r.Score, r.Nodes)
	return err
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// PerftResult reports a perft count, with the per-move split when divided.
type PerftResult struct {
	Depth  int           `json:"depth"`
	Nodes  uint64        `json:"nodes"`
	Divide []DivideEntry `json:"divide,omitempty"`
}

// Kind implements Result.
func (r *PerftResult) Kind() string { return "perft" }

// WriteText implements Result.
func (r *PerftResult) WriteText(w io.Writer, _ int) error {
	var sb strings.Builder
	for _, e := range r.Divide {
		fmt.Fprintf(&sb, "%s: %d\n", e.Move, e.Nodes)
	}
	if len(r.Divide) > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Nodes searched at depth %d: %d\n", r.Depth, r.Nodes)
	_, err := io.WriteString(w, sb.String())
	return err
}

// VerifyResult reports a cross-check against the reference generator.
type VerifyResult struct {
	FEN        string   `json:"fen"`
	Agree      bool     `json:"agree"`
	OnlyEngine []string `json:"only_engine,omitempty"`
	OnlyOracle []string `json:"only_oracle,omitempty"`
}

// Kind implements Result.
func (r *VerifyResult) Kind() string { return "verify" }

// WriteText implements Result.
func (r *VerifyResult) WriteText(w io.Writer, _ int) error {
	if r.Agree {
		_, err := fmt.Fprintf(w, "verified %s\n", r.FEN)
		return err
	}
	_, err := fmt.Fprintf(w, "MISMATCH %s\n  engine only: %s\n  oracle only: %s\n",
		r.FEN, strings.Join(r.OnlyEngine, " "), strings.Join(r.OnlyOracle, " "))
	return err
}

// EpisodeResult reports one self-play episode.
type EpisodeResult struct {
	Episode   int      `json:"episode"`
	Plies     int      `json:"plies"`
	Positions int      `json:"positions"` // distinct positions reached
	Outcome   string   `json:"outcome"`
	Reward    int      `json:"reward"`
	Moves     []string `json:"moves,omitempty"`
}

// Kind implements Result.
func (r *EpisodeResult) Kind() string { return "episode" }

// WriteText implements Result.
func (r *EpisodeResult) WriteText(w io.Writer, lineLength int) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Episode %d: %s after %d plies (%d positions), reward %d\n",
		r.Episode, r.Outcome, r.Plies, r.Positions, r.Reward)
	if len(r.Moves) > 0 {
		ow := NewOutputWriter(&sb, lineLength)
		for _, m := range r.Moves {
			ow.Write(m)
		}
		ow.NewLine()
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
