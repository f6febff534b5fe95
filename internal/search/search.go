// Package search implements the alpha-beta minimax engine that picks moves
// for the computer player.
package search

import (
	"math"

	"github.com/couchbaselabs/logg"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/eval"
	"github.com/lgbarn/checkers-go/internal/hashing"
)

// LogKey is the logg channel for search tracing.
const LogKey = "SEARCH"

// WinBase is the value of a won position per remaining ply. It is larger
// than any evaluator can return, so a forced win always outranks a
// heuristic score. Multiplying by the remaining depth prefers faster wins
// and slower losses.
const WinBase = 200.0

// ScoredMove is a root move with its search value.
type ScoredMove struct {
	Move  checkers.Move
	Score float64
}

// Stats describes the work done by the last root decision.
type Stats struct {
	Depth     int
	Nodes     int
	CacheHits int
}

// Engine searches for the best move for one colour. An Engine makes one
// decision at a time and must not be shared between goroutines.
type Engine struct {
	colour    checkers.Colour
	policy    DepthPolicy
	evaluator eval.Evaluator
	table     *hashing.TranspositionTable
	stats     Stats
}

// Option configures an Engine.
type Option func(*Engine) error

// WithDepth sets a fixed search depth. n must be positive.
func WithDepth(n int) Option {
	return func(e *Engine) error {
		if n <= 0 {
			return errors.Wrapf(errors.ErrInvalidDepth, "depth %d", n)
		}
		e.policy = Fixed(n)
		return nil
	}
}

// WithDynamicDepth derives the depth from the number of pieces left.
func WithDynamicDepth() Option {
	return func(e *Engine) error {
		e.policy = Dynamic()
		return nil
	}
}

// WithEvaluator sets the scoring function used at the search horizon.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) error {
		if ev == nil {
			return errors.Wrap(errors.ErrInvalidEvaluator, "nil evaluator")
		}
		e.evaluator = ev
		return nil
	}
}

// WithColour sets the colour the engine plays for.
func WithColour(c checkers.Colour) Option {
	return func(e *Engine) error {
		e.colour = c
		return nil
	}
}

// WithDepthAwareCache makes the transposition table key on the remaining
// depth as well as the position. By default a cached score is reused at any
// depth, which is faster but can return a shallower result than asked for.
func WithDepthAwareCache(on bool) Option {
	return func(e *Engine) error {
		e.table = hashing.NewTranspositionTable(on)
		return nil
	}
}

// New creates an Engine. Without options it plays white at a fixed depth of
// 6 with the default evaluator.
func New(opts ...Option) (*Engine, error) {
	ev, err := eval.New(eval.Default)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		colour:    checkers.White,
		policy:    Fixed(6),
		evaluator: ev,
		table:     hashing.NewTranspositionTable(false),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Colour returns the colour the engine plays for.
func (e *Engine) Colour() checkers.Colour {
	return e.colour
}

// SetColour changes the colour the engine plays for.
func (e *Engine) SetColour(c checkers.Colour) {
	e.colour = c
}

// Policy returns the depth policy.
func (e *Engine) Policy() DepthPolicy {
	return e.policy
}

// Evaluator returns the horizon evaluator.
func (e *Engine) Evaluator() eval.Evaluator {
	return e.evaluator
}

// Stats returns counters for the last GetMove or Analyse call.
func (e *Engine) Stats() Stats {
	return e.stats
}

// GetMove returns the best move in moves for the engine's colour. Ties go
// to the first move in scan order. pos is not modified.
func (e *Engine) GetMove(pos checkers.Position, moves checkers.LegalMoveSet) (checkers.Move, error) {
	scored, err := e.Analyse(pos, moves)
	if err != nil {
		return checkers.Move{}, err
	}

	best := Best(scored)
	logg.LogTo(LogKey, "best move %v | %v (depth %d, %d nodes, %d cache hits)",
		best.Move, best.Score, e.stats.Depth, e.stats.Nodes, e.stats.CacheHits)
	return best.Move, nil
}

// Best returns the highest scoring move, keeping the earliest on ties.
// scored must not be empty.
func Best(scored []ScoredMove) ScoredMove {
	best := scored[0]
	for _, sm := range scored[1:] {
		if sm.Score > best.Score {
			best = sm
		}
	}
	return best
}

// Analyse scores every move in moves, in scan order. The transposition
// table is cleared first, so results never leak between decisions.
func (e *Engine) Analyse(pos checkers.Position, moves checkers.LegalMoveSet) ([]ScoredMove, error) {
	if moves.Len() == 0 {
		return nil, errors.ErrNoLegalMoves
	}

	depth := e.policy.Depth(pos)
	e.table.Reset()
	e.stats = Stats{Depth: depth}

	bound := WinBase * float64(depth)
	scored := make([]ScoredMove, 0, moves.Len())
	for _, m := range moves.Moves() {
		rec := engine.ApplyMove(&pos, m)
		score := e.minimax(&pos, depth-1, false, -bound, bound)
		engine.Undo(&pos, rec)

		logg.LogTo(LogKey, "(%v) | %v", m, score)
		scored = append(scored, ScoredMove{Move: m, Score: score})
	}
	e.stats.CacheHits = e.table.Hits()
	return scored, nil
}

// minimax returns the value of pos for the engine's colour. maximizing is
// true when the engine's colour is to move. A capture keeps the same side to
// move, so the flag only flips after a plain step.
func (e *Engine) minimax(pos *checkers.Position, depth int, maximizing bool, alpha, beta float64) float64 {
	e.stats.Nodes++

	if v, ok := e.table.Lookup(*pos, depth); ok {
		return v
	}
	if depth <= 0 {
		return e.evaluator.Evaluate(*pos, e.colour)
	}

	toMove := e.colour
	if !maximizing {
		toMove = e.colour.Opposite()
	}
	moves := engine.LegalMoves(*pos, toMove)

	bound := WinBase * float64(depth)
	if moves.Len() == 0 {
		if maximizing {
			return -bound
		}
		return bound
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

scan:
	for _, om := range moves {
		for _, to := range om.To {
			rec := engine.Apply(pos, om.From, to)
			next := !maximizing
			if rec.Captured() {
				next = maximizing
			}
			v := e.minimax(pos, depth-1, next, alpha, beta)
			engine.Undo(pos, rec)

			if maximizing {
				best = math.Max(best, v)
				alpha = math.Max(alpha, v)
			} else {
				best = math.Min(best, v)
				beta = math.Min(beta, v)
			}
			if beta <= alpha {
				break scan
			}
		}
	}

	e.table.Store(*pos, depth, best)
	return best
}
