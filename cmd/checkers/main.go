// checkers plays and analyses games of checkers against an alpha-beta
// search engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/couchbaselabs/logg"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/player"
	"github.com/lgbarn/checkers-go/internal/search"
	"github.com/lgbarn/checkers-go/internal/worker"
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
		fmt.Printf("checkers-go version %s\n", programVersion)
		os.Exit(0)
	}

	enableLogKeys(*logKeys)

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	var err error
	if *analyse {
		err = runAnalysis(cfg)
	} else {
		err = runGames(cfg, os.Stdin)
	}
	if err != nil {
		logg.LogError(err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// runAnalysis scores every legal move in the starting position.
func runAnalysis(cfg *config.Config) error {
	pos, toMove, err := game.StartPosition(cfg.Game)
	if err != nil {
		return err
	}
	w := cfg.OutputFile

	output.RenderBoard(w, pos)
	fmt.Fprintf(w, "%s\n", engine.FormatPosition(pos, toMove))

	moves := engine.LegalMoves(pos, toMove)
	if moves.Len() == 0 {
		fmt.Fprintf(w, "%v has no legal moves: %v\n", toMove, engine.WinFor(toMove.Opposite()))
		return nil
	}

	opts, err := player.SearchOptions(cfg.Search)
	if err != nil {
		return err
	}
	e, err := search.New(append(opts, search.WithColour(toMove))...)
	if err != nil {
		return err
	}
	scored, err := e.Analyse(pos, moves)
	if err != nil {
		return err
	}
	output.RenderAnalysis(w, toMove, scored)

	if cfg.Verbosity > 0 {
		stats := e.Stats()
		fmt.Fprintf(cfg.LogFile, "depth %d, %d nodes, %d cache hits\n", stats.Depth, stats.Nodes, stats.CacheHits)
	}
	return nil
}

// interactive reports whether games must run one at a time on the terminal.
func interactive(cfg *config.Config) bool {
	return cfg.Game.White == config.HumanPlayer ||
		cfg.Game.Black == config.HumanPlayer ||
		cfg.Output.ShowBoard ||
		cfg.Output.ShowAnalysis
}

// runGames plays the configured games and writes their records.
func runGames(cfg *config.Config, in io.Reader) error {
	opts := player.Options{Input: in, Prompt: cfg.OutputFile}
	if cfg.Output.ShowAnalysis {
		opts.Report = func(colour checkers.Colour, scored []search.ScoredMove) {
			output.RenderAnalysis(cfg.OutputFile, colour, scored)
		}
	}

	games := make([]*game.Game, cfg.Game.Games)
	for i := range games {
		g, err := game.NewFromConfig(i+1, cfg, opts)
		if err != nil {
			return err
		}
		if cfg.Output.ShowBoard {
			g.OnTurn = func(turn game.Turn, pos checkers.Position) {
				fmt.Fprintf(cfg.OutputFile, "%d. %v %v\n", turn.Ply, turn.Colour, turn)
				output.RenderBoard(cfg.OutputFile, pos)
			}
		}
		games[i] = g
	}

	workers := cfg.Game.Workers
	if interactive(cfg) {
		workers = 1
	}
	poolOpts := []worker.PoolOption{}
	if workers > 0 {
		poolOpts = append(poolOpts, worker.WithWorkers(workers))
	}
	logg.LogTo("MAIN", "playing %d games on %d workers", len(games), workers)
	results := worker.PlayAll(games, true, poolOpts...)

	gw := output.NewGameWriter(cfg.OutputFile, cfg.Output)
	var firstErr error
	var tally [3]int
	for _, r := range results {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			continue
		}
		if err := gw.WriteGame(r.Record); err != nil {
			return err
		}
		tally[r.Record.Outcome]++
	}
	if err := gw.Close(); err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d games: white %d, black %d, unfinished %d\n",
			len(results), tally[engine.WhiteWins], tally[engine.BlackWins], tally[engine.InProgress])
	}
	return firstErr
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: checkers [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play or analyse checkers games against an alpha-beta search engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard notation (-fen):\n")
	fmt.Fprintf(os.Stderr, "  Rows from 7 down to 0 separated by '/'. M/K white man/king,\n")
	fmt.Fprintf(os.Stderr, "  m/k black man/king, digits for empty squares, then w or b.\n")
	fmt.Fprintf(os.Stderr, "  Start: %s\n", engine.InitialNotation)
}
