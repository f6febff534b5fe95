// Package eval provides position scoring strategies for the search.
package eval

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Evaluator scores a position. Higher values favour perspective.
// Implementations must be pure and return a finite value for any position,
// including one with no pieces.
type Evaluator interface {
	Evaluate(pos checkers.Position, perspective checkers.Colour) float64
	Name() string
}

// Func adapts a plain function to the Evaluator interface.
type Func func(pos checkers.Position, perspective checkers.Colour) float64

// Evaluate calls f.
func (f Func) Evaluate(pos checkers.Position, perspective checkers.Colour) float64 {
	return f(pos, perspective)
}

// Name returns a fixed name for ad hoc evaluators.
func (f Func) Name() string {
	return "func"
}

// Selector identifies a built-in evaluator.
type Selector int

const (
	MaterialEval   Selector = 1
	PositionalEval Selector = 2
)

// Default is the evaluator used when none is configured.
const Default = PositionalEval

// String returns the selector name.
func (s Selector) String() string {
	switch s {
	case MaterialEval:
		return "material"
	case PositionalEval:
		return "positional"
	}
	return fmt.Sprintf("Selector(%d)", int(s))
}

// ParseSelector accepts a selector by name ("material", "positional") or by
// numeric id ("1", "2").
func ParseSelector(s string) (Selector, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "material", "v1":
		return MaterialEval, nil
	case "positional", "v2":
		return PositionalEval, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		sel := Selector(n)
		if sel.valid() {
			return sel, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidEvaluator, "%q", s)
}

func (s Selector) valid() bool {
	return s == MaterialEval || s == PositionalEval
}

// New returns the evaluator for sel. Unknown selectors fail with
// ErrInvalidEvaluator.
func New(sel Selector) (Evaluator, error) {
	switch sel {
	case MaterialEval:
		return Material{}, nil
	case PositionalEval:
		return Positional{}, nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidEvaluator, "selector %d", int(sel))
}

// MaxMagnitude is an upper bound on the absolute score sel can return for
// any position with at most 12 pieces per side.
func MaxMagnitude(sel Selector) float64 {
	switch sel {
	case MaterialEval:
		return 12 * kingValue
	case PositionalEval:
		return 12 * kingCentreBonus
	}
	return 0
}

const (
	manValue  = 1.0
	kingValue = 2.0

	kingCentreBonus = 3.0
)

// Material counts one point per man and two per king, positive for
// perspective and negative for the opponent.
type Material struct{}

// Name returns "material".
func (Material) Name() string { return MaterialEval.String() }

// Evaluate returns the material balance from perspective's side.
func (Material) Evaluate(pos checkers.Position, perspective checkers.Colour) float64 {
	return materialOf(pos, perspective) - materialOf(pos, perspective.Opposite())
}

func materialOf(pos checkers.Position, colour checkers.Colour) float64 {
	kings := pos.CountKings(colour)
	men := pos.CountPieces(colour) - kings
	return float64(men)*manValue + float64(kings)*kingValue
}

// Positional weights every piece by where it stands: kings score more near
// the centre, men score more the closer they are to being crowned.
type Positional struct{}

// Name returns "positional".
func (Positional) Name() string { return PositionalEval.String() }

// Evaluate returns the positional balance from perspective's side.
func (Positional) Evaluate(pos checkers.Position, perspective checkers.Colour) float64 {
	var value float64
	for all := pos.Occupancy(); all != 0; all &= all - 1 {
		sq := checkers.Square(bits.TrailingZeros64(all))
		piece, _ := pos.PieceAt(sq)
		w := pieceWeight(sq, piece)
		if piece.Colour != perspective {
			w = -w
		}
		value += w
	}
	return value
}

// pieceWeight is the unsigned positional weight of piece on sq.
func pieceWeight(sq checkers.Square, piece checkers.Piece) float64 {
	row, col := float64(sq.Row()), float64(sq.Col())
	if piece.Rank == checkers.King {
		return kingCentreBonus - (abs(row-3.5)+abs(col-3.5))/8
	}
	if piece.Colour == checkers.White {
		return (1 + row) / 8
	}
	return (8 - row) / 8
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
