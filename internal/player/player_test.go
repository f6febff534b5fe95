package player

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/couchbaselabs/go.assert"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/eval"
	"github.com/lgbarn/checkers-go/internal/search"
)

func initialMoves() (checkers.Position, checkers.LegalMoveSet) {
	pos := checkers.NewInitialPosition()
	return pos, engine.LegalMoves(pos, checkers.White)
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind config.PlayerKind
		opts Options
		name string
	}{
		{config.EnginePlayer, Options{}, "engine(depth 6, positional)"},
		{config.RandomPlayer, Options{Seed: 3}, "random"},
		{config.HumanPlayer, Options{Input: strings.NewReader("")}, "human"},
	}

	for _, tt := range tests {
		p, err := New(tt.kind, tt.opts)
		assert.True(t, err == nil)
		assert.Equals(t, p.Name(), tt.name)
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(config.HumanPlayer, Options{})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidPlayer))

	_, err = New(config.PlayerKind(5), Options{})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidPlayer))

	_, err = New(config.EnginePlayer, Options{Search: &config.SearchConfig{Depth: 0, Evaluator: eval.MaterialEval}})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidDepth))
}

func TestEngine_MatchesSearch(t *testing.T) {
	sc := &config.SearchConfig{Depth: 1, Evaluator: eval.MaterialEval}
	p, err := NewEngine(sc)
	assert.True(t, err == nil)
	p.Init(checkers.White)

	pos, moves := initialMoves()
	m, err := p.ChooseMove(pos, moves)
	assert.True(t, err == nil)
	assert.Equals(t, m, checkers.Move{From: 16, To: 25})
	assert.Equals(t, p.Stats().Depth, 1)
}

func TestEngine_Report(t *testing.T) {
	sc := &config.SearchConfig{Depth: 1, Evaluator: eval.MaterialEval}
	p, err := NewEngine(sc)
	assert.True(t, err == nil)
	p.Init(checkers.White)

	var reported []search.ScoredMove
	var reportedColour checkers.Colour
	p.Report = func(c checkers.Colour, scored []search.ScoredMove) {
		reportedColour = c
		reported = scored
	}

	pos, moves := initialMoves()
	m, err := p.ChooseMove(pos, moves)
	assert.True(t, err == nil)
	assert.Equals(t, m, checkers.Move{From: 16, To: 25})
	assert.Equals(t, len(reported), moves.Len())
	assert.Equals(t, reportedColour, checkers.White)
}

func TestEngine_Dynamic(t *testing.T) {
	p, err := NewEngine(&config.SearchConfig{Dynamic: true, Evaluator: eval.PositionalEval})
	assert.True(t, err == nil)
	assert.Equals(t, p.Name(), "engine(depth dynamic, positional)")
}

func TestRandom_Deterministic(t *testing.T) {
	pos, moves := initialMoves()
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 20; i++ {
		ma, err := a.ChooseMove(pos, moves)
		assert.True(t, err == nil)
		mb, _ := b.ChooseMove(pos, moves)
		assert.Equals(t, ma, mb)
		assert.True(t, moves.Contains(ma))
	}
}

func TestRandom_EmptySet(t *testing.T) {
	_, err := NewRandom(1).ChooseMove(checkers.Position{}, nil)
	assert.True(t, stderrors.Is(err, errors.ErrNoLegalMoves))
}

func TestHuman_ChooseMove(t *testing.T) {
	pos, moves := initialMoves()
	// moves: [0] 16->[25] [1] 18->[25 27] [2] 20->[27 29] [3] 22->[29 31]
	tests := []struct {
		name  string
		input string
		want  checkers.Move
	}{
		{"single destination skips second prompt", "0\n", checkers.Move{From: 16, To: 25}},
		{"origin and destination", "1\n1\n", checkers.Move{From: 18, To: 27}},
		{"invalid input retried", "x\n9\n3\n-1\n0\n", checkers.Move{From: 22, To: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewHuman(strings.NewReader(tt.input), &out)
			p.Init(checkers.White)
			m, err := p.ChooseMove(pos, moves)
			assert.True(t, err == nil)
			assert.Equals(t, m, tt.want)
			assert.True(t, strings.Contains(out.String(), "White to move"))
		})
	}
}

func TestHuman_InvalidInputReported(t *testing.T) {
	pos, moves := initialMoves()
	var out strings.Builder
	p := NewHuman(strings.NewReader("7\n0\n"), &out)
	_, err := p.ChooseMove(pos, moves)
	assert.True(t, err == nil)
	assert.True(t, strings.Contains(out.String(), "Invalid input!"))
}

func TestHuman_EOF(t *testing.T) {
	pos, moves := initialMoves()
	p := NewHuman(strings.NewReader("1\n"), nil)
	_, err := p.ChooseMove(pos, moves)
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))
}
