// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/couchbaselabs/logg"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/eval"
)

var (
	// Search options
	depth      = flag.Int("depth", 6, "Search depth in plies")
	dynamic    = flag.Bool("dynamic", false, "Search deeper as pieces come off the board (overrides -depth)")
	evaluator  = flag.String("eval", "positional", "Evaluator: material (1) or positional (2)")
	depthCache = flag.Bool("depthcache", false, "Key the transposition table by remaining depth")

	// Position
	startFEN = flag.String("fen", "", "Starting position in board notation (default: standard opening)")
	analyse  = flag.Bool("analyse", false, "Score every legal move in the starting position and exit")

	// Games
	whitePlayer = flag.String("white", "engine", "White player: engine, human, random")
	blackPlayer = flag.String("black", "engine", "Black player: engine, human, random")
	numGames    = flag.Int("games", 1, "Number of games to play")
	numWorkers  = flag.Int("workers", 0, "Games played in parallel (0 = one per CPU)")
	maxPlies    = flag.Int("maxplies", 500, "Stop a game after N plies (0 = no limit)")
	seed        = flag.Int64("seed", 1, "Seed for random players")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput   = flag.Bool("J", false, "Output game records in JSON format")
	showBoard    = flag.Bool("board", false, "Print the board after every ply")
	showAnalysis = flag.Bool("scores", false, "Print the score of every move the engine considers")
	noFinal      = flag.Bool("nofinal", false, "Don't add the final position to text records")

	// Logging
	logFile = flag.String("l", "", "Write progress reports to this file (default: stderr)")
	logKeys = flag.String("log", "", "Comma-separated trace channels to enable: MAIN, GAME, SEARCH, WORKER")
	quiet   = flag.Bool("s", false, "Silent mode: no progress reports")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applySearchFlags configures the engine players.
func applySearchFlags(cfg *config.Config) error {
	sel, err := eval.ParseSelector(*evaluator)
	if err != nil {
		return err
	}
	cfg.Search.Depth = *depth
	cfg.Search.Dynamic = *dynamic
	cfg.Search.Evaluator = sel
	cfg.Search.DepthAwareCache = *depthCache
	return nil
}

// applyGameFlags configures players and game limits.
func applyGameFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Game.White = white
	cfg.Game.Black = black
	cfg.Game.StartPosition = *startFEN
	cfg.Game.Games = *numGames
	cfg.Game.Workers = *numWorkers
	cfg.Game.MaxPlies = *maxPlies
	cfg.Game.Seed = *seed
	return nil
}

// applyOutputFlags configures record formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowAnalysis = *showAnalysis
	cfg.Output.ShowNotation = !*noFinal
}

// enableLogKeys turns on the named logg channels.
func enableLogKeys(keys string) []string {
	var enabled []string
	for _, key := range strings.Split(keys, ",") {
		key = strings.ToUpper(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		logg.LogKeys[key] = true
		enabled = append(enabled, key)
	}
	return enabled
}
