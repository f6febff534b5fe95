package main

import (
	"errors"
	"testing"

	"github.com/couchbaselabs/logg"

	"github.com/lgbarn/checkers-go/internal/config"
	cerrors "github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/eval"
)

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
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := applySearchFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Search.Depth != 6 || cfg.Search.Dynamic {
			t.Errorf("Search = %+v; want fixed depth 6", cfg.Search)
		}
		if cfg.Search.Evaluator != eval.PositionalEval {
			t.Errorf("Evaluator = %v; want positional", cfg.Search.Evaluator)
		}
	})

	t.Run("material by id", func(t *testing.T) {
		defer saveRestoreString(evaluator, "1")()
		defer saveRestoreInt(depth, 3)()
		defer saveRestoreBool(depthCache, true)()
		cfg := config.NewConfig()
		if err := applySearchFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Search.Evaluator != eval.MaterialEval {
			t.Errorf("Evaluator = %v; want material", cfg.Search.Evaluator)
		}
		if cfg.Search.Depth != 3 {
			t.Errorf("Depth = %d; want 3", cfg.Search.Depth)
		}
		if !cfg.Search.DepthAwareCache {
			t.Error("DepthAwareCache should be set")
		}
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		defer saveRestoreString(evaluator, "neural")()
		err := applySearchFlags(config.NewConfig())
		if !errors.Is(err, cerrors.ErrInvalidEvaluator) {
			t.Errorf("error = %v; want ErrInvalidEvaluator", err)
		}
	})
}

// ---------------------------------------------------------------------------
// applyGameFlags
// ---------------------------------------------------------------------------

func TestApplyGameFlags(t *testing.T) {
	t.Run("players", func(t *testing.T) {
		defer saveRestoreString(whitePlayer, "human")()
		defer saveRestoreString(blackPlayer, "random")()
		defer saveRestoreInt(numGames, 3)()
		cfg := config.NewConfig()
		if err := applyGameFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Game.White != config.HumanPlayer || cfg.Game.Black != config.RandomPlayer {
			t.Errorf("players = %v/%v; want human/random", cfg.Game.White, cfg.Game.Black)
		}
		if cfg.Game.Games != 3 {
			t.Errorf("Games = %d; want 3", cfg.Game.Games)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		defer saveRestoreString(blackPlayer, "wizard")()
		err := applyGameFlags(config.NewConfig())
		if !errors.Is(err, cerrors.ErrInvalidPlayer) {
			t.Errorf("error = %v; want ErrInvalidPlayer", err)
		}
	})
}

// ---------------------------------------------------------------------------
// applyOutputFlags / applyFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(noFinal, true)()
	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat should be set")
	}
	if cfg.Output.ShowNotation {
		t.Error("ShowNotation should be cleared by -nofinal")
	}
}

func TestApplyFlags_Quiet(t *testing.T) {
	defer saveRestoreBool(quiet, true)()
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
	}
}

func TestEnableLogKeys(t *testing.T) {
	got := enableLogKeys(" game, search,,")
	if len(got) != 2 || got[0] != "GAME" || got[1] != "SEARCH" {
		t.Errorf("enableLogKeys() = %v; want [GAME SEARCH]", got)
	}
	if !logg.LogKeys["GAME"] || !logg.LogKeys["SEARCH"] {
		t.Error("log keys not enabled")
	}
	delete(logg.LogKeys, "GAME")
	delete(logg.LogKeys, "SEARCH")

	if got := enableLogKeys(""); len(got) != 0 {
		t.Errorf("enableLogKeys(\"\") = %v; want none", got)
	}
}
