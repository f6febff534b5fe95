// Package player provides the strategies that choose moves in a game: the
// search engine, a human at a terminal, and a seeded random mover.
package player

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/eval"
	"github.com/lgbarn/checkers-go/internal/search"
)

// Player chooses moves for one side of a game.
type Player interface {
	// Init is called once before the game with the colour to play.
	Init(colour checkers.Colour)
	// ChooseMove returns one of moves. moves is never empty.
	ChooseMove(pos checkers.Position, moves checkers.LegalMoveSet) (checkers.Move, error)
	// Name describes the player in game records.
	Name() string
}

// Options carries what the player constructors need beyond the kind.
type Options struct {
	Search *config.SearchConfig
	Seed   int64
	Input  io.Reader
	Prompt io.Writer
	// Report receives scored root moves from engine players when set
	Report func(colour checkers.Colour, scored []search.ScoredMove)
}

// New creates a player of the given kind.
func New(kind config.PlayerKind, opts Options) (Player, error) {
	switch kind {
	case config.EnginePlayer:
		sc := opts.Search
		if sc == nil {
			sc = config.NewSearchConfig()
		}
		p, err := NewEngine(sc)
		if err != nil {
			return nil, err
		}
		p.Report = opts.Report
		return p, nil
	case config.HumanPlayer:
		if opts.Input == nil {
			return nil, fmt.Errorf("human player needs an input: %w", errors.ErrInvalidPlayer)
		}
		return NewHuman(opts.Input, opts.Prompt), nil
	case config.RandomPlayer:
		return NewRandom(opts.Seed), nil
	}
	return nil, fmt.Errorf("player %v: %w", kind, errors.ErrInvalidPlayer)
}

// SearchOptions converts a SearchConfig into engine options.
func SearchOptions(sc *config.SearchConfig) ([]search.Option, error) {
	ev, err := eval.New(sc.Evaluator)
	if err != nil {
		return nil, err
	}
	opts := []search.Option{
		search.WithEvaluator(ev),
		search.WithDepthAwareCache(sc.DepthAwareCache),
	}
	if sc.Dynamic {
		opts = append(opts, search.WithDynamicDepth())
	} else {
		opts = append(opts, search.WithDepth(sc.Depth))
	}
	return opts, nil
}

// Engine plays the moves chosen by an alpha-beta search.
type Engine struct {
	engine *search.Engine
	Report func(colour checkers.Colour, scored []search.ScoredMove)
}

// NewEngine creates a search-backed player.
func NewEngine(sc *config.SearchConfig) (*Engine, error) {
	opts, err := SearchOptions(sc)
	if err != nil {
		return nil, err
	}
	e, err := search.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{engine: e}, nil
}

// Init sets the colour the search plays for.
func (p *Engine) Init(colour checkers.Colour) {
	p.engine.SetColour(colour)
}

// ChooseMove returns the best move found by the search.
func (p *Engine) ChooseMove(pos checkers.Position, moves checkers.LegalMoveSet) (checkers.Move, error) {
	if p.Report == nil {
		return p.engine.GetMove(pos, moves)
	}
	scored, err := p.engine.Analyse(pos, moves)
	if err != nil {
		return checkers.Move{}, err
	}
	p.Report(p.engine.Colour(), scored)
	return search.Best(scored).Move, nil
}

// Name returns e.g. "engine(depth 6, positional)".
func (p *Engine) Name() string {
	return fmt.Sprintf("engine(depth %v, %s)", p.engine.Policy(), p.engine.Evaluator().Name())
}

// Stats returns the search counters for the last move.
func (p *Engine) Stats() search.Stats {
	return p.engine.Stats()
}

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player. The same seed replays the same moves.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Init does nothing; a random player ignores its colour.
func (p *Random) Init(checkers.Colour) {}

// ChooseMove picks one of moves.
func (p *Random) ChooseMove(_ checkers.Position, moves checkers.LegalMoveSet) (checkers.Move, error) {
	all := moves.Moves()
	if len(all) == 0 {
		return checkers.Move{}, errors.ErrNoLegalMoves
	}
	return all[p.rng.Intn(len(all))], nil
}

// Name returns "random".
func (p *Random) Name() string {
	return "random"
}
