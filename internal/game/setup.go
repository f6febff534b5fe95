package game

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/player"
)

// StartPosition returns the configured starting position, or the standard
// opening with white to move if none is set.
func StartPosition(gc *config.GameConfig) (checkers.Position, checkers.Colour, error) {
	if gc.StartPosition == "" {
		return checkers.NewInitialPosition(), checkers.White, nil
	}
	return engine.ParsePosition(gc.StartPosition)
}

// NewFromConfig creates game number n (1-based) with players built from cfg.
// Random players get seeds derived from cfg.Game.Seed and n, so a batch is
// reproducible. opts supplies input and reporting hooks; its Search and
// Seed fields are overwritten.
func NewFromConfig(n int, cfg *config.Config, opts player.Options) (*Game, error) {
	pos, toMove, err := StartPosition(cfg.Game)
	if err != nil {
		return nil, err
	}

	opts.Search = cfg.Search
	opts.Seed = cfg.Game.Seed + 2*int64(n)
	white, err := player.New(cfg.Game.White, opts)
	if err != nil {
		return nil, err
	}
	opts.Seed++
	black, err := player.New(cfg.Game.Black, opts)
	if err != nil {
		return nil, err
	}

	return New(n, pos, toMove, white, black, cfg.Game.MaxPlies), nil
}
