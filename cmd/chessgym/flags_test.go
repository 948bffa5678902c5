package main

import (
	"testing"

	"github.com/lgbarn/gym-chess-go/internal/config"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applySearchFlags
// ---------------------------------------------------------------------------

func TestApplySearchFlags(t *testing.T) {
	defer saveRestoreInt(depth, 5)()
	defer saveRestoreInt(workers, 4)()

	cfg := config.NewConfig()
	applySearchFlags(cfg)
	if cfg.Search.Depth != 5 {
		t.Errorf("Search.Depth = %d; want 5", cfg.Search.Depth)
	}
	if cfg.Search.Workers != 4 {
		t.Errorf("Search.Workers = %d; want 4", cfg.Search.Workers)
	}
}

// ---------------------------------------------------------------------------
// applyEnvFlags
// ---------------------------------------------------------------------------

func TestApplyEnvFlags(t *testing.T) {
	defer saveRestoreString(agentColor, "BLACK")()
	defer saveRestoreString(opponent, config.OpponentRandom)()
	defer saveRestoreInt(maxPlies, 12)()
	oldSeed := *seed
	*seed = 99
	defer func() { *seed = oldSeed }()

	cfg := config.NewConfig()
	applyEnvFlags(cfg)
	if cfg.Env.AgentColor != "BLACK" {
		t.Errorf("Env.AgentColor = %q; want BLACK", cfg.Env.AgentColor)
	}
	if cfg.Env.Opponent != config.OpponentRandom {
		t.Errorf("Env.Opponent = %q; want random", cfg.Env.Opponent)
	}
	if cfg.Env.Seed != 99 {
		t.Errorf("Env.Seed = %d; want 99", cfg.Env.Seed)
	}
	if cfg.Env.MaxPlies != 12 {
		t.Errorf("Env.MaxPlies = %d; want 12", cfg.Env.MaxPlies)
	}
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name     string
		json     bool
		width    int
		wantJSON bool
	}{
		{"defaults", false, 80, false},
		{"json", true, 80, true},
		{"narrow", false, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(jsonOutput, tt.json)()
			defer saveRestoreInt(lineLength, tt.width)()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)
			if cfg.JSONFormat != tt.wantJSON {
				t.Errorf("JSONFormat = %v; want %v", cfg.JSONFormat, tt.wantJSON)
			}
			if cfg.LineLength != tt.width {
				t.Errorf("LineLength = %d; want %d", cfg.LineLength, tt.width)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	t.Run("verbosity flag", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, false)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})

	t.Run("quiet overrides verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})
}

func TestApplyFlags_DefaultsValidate(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		t.Errorf("default flags should validate: %v", err)
	}
}

func TestCommandFromFlags(t *testing.T) {
	defer saveRestoreString(fenString, "8/8/8/8/8/8/8/8 w - - 0 1")()
	defer saveRestoreString(moveToken, "e2e4")()
	defer saveRestoreBool(listMoves, true)()
	defer saveRestoreInt(perftDepth, 2)()
	defer saveRestoreBool(divide, true)()

	cmd := commandFromFlags()
	if cmd.fen != "8/8/8/8/8/8/8/8 w - - 0 1" || cmd.move != "e2e4" {
		t.Errorf("position flags not copied: %+v", cmd)
	}
	if !cmd.moves || cmd.perft != 2 || !cmd.divide {
		t.Errorf("query flags not copied: %+v", cmd)
	}
	if cmd.search || cmd.verify || cmd.play != 0 {
		t.Errorf("unset flags should stay off: %+v", cmd)
	}
}

func TestCommandFromFlags_Play(t *testing.T) {
	defer saveRestoreInt(playCount, 3)()
	defer saveRestoreBool(runSearch, true)()

	cmd := commandFromFlags()
	if cmd.play != 3 {
		t.Errorf("play = %d; want 3", cmd.play)
	}
	if !cmd.search {
		t.Errorf("search flag not copied: %+v", cmd)
	}
}
