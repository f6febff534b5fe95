package config

import (
	"io"

	"github.com/lgbarn/checkers-go/internal/eval"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets a fixed search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	b.cfg.Search.Dynamic = false
	return b
}

// WithDynamicDepth derives the search depth from the pieces left.
func (b *ConfigBuilder) WithDynamicDepth(enabled bool) *ConfigBuilder {
	b.cfg.Search.Dynamic = enabled
	return b
}

// WithEvaluator sets the horizon evaluator.
func (b *ConfigBuilder) WithEvaluator(sel eval.Selector) *ConfigBuilder {
	b.cfg.Search.Evaluator = sel
	return b
}

// WithDepthAwareCache keys the transposition table by depth.
func (b *ConfigBuilder) WithDepthAwareCache(enabled bool) *ConfigBuilder {
	b.cfg.Search.DepthAwareCache = enabled
	return b
}

// WithPlayers sets the player kind for each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Game.White = white
	b.cfg.Game.Black = black
	return b
}

// WithStartPosition sets the starting position notation.
func (b *ConfigBuilder) WithStartPosition(notation string) *ConfigBuilder {
	b.cfg.Game.StartPosition = notation
	return b
}

// WithMaxPlies caps the length of each game.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = plies
	return b
}

// WithGames sets how many games to play and how many run at once.
func (b *ConfigBuilder) WithGames(games, workers int) *ConfigBuilder {
	b.cfg.Game.Games = games
	b.cfg.Game.Workers = workers
	return b
}

// WithSeed seeds random players.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard prints the board after every ply.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithAnalysis prints scored root moves for engine decisions.
func (b *ConfigBuilder) WithAnalysis(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowAnalysis = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the writer for progress reports.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
