package game

import (
	"errors"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	cerrors "github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/player"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

var sq = testutil.Squares

// firstMover always plays the first legal move.
type firstMover struct {
	colour checkers.Colour
	calls  int
}

func (p *firstMover) Init(c checkers.Colour) { p.colour = c }
func (p *firstMover) Name() string { return "first" }
func (p *firstMover) ChooseMove(_ checkers.Position, moves checkers.LegalMoveSet) (checkers.Move, error) {
	p.calls++
	return moves.Moves()[0], nil
}

// fixedMover always plays the same move, legal or not.
type fixedMover struct {
	move checkers.Move
	err  error
}

func (p *fixedMover) Init(checkers.Colour) {}
func (p *fixedMover) Name() string { return "fixed" }
func (p *fixedMover) ChooseMove(checkers.Position, checkers.LegalMoveSet) (checkers.Move, error) {
	return p.move, p.err
}

// replay applies every move of rec to its start position.
func replay(rec *Record) checkers.Position {
	pos := rec.Start
	for _, turn := range rec.Turns {
		for _, m := range turn.Moves {
			engine.ApplyMove(&pos, m)
		}
	}
	return pos
}

func TestPlay_RandomGames(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := New(1, checkers.NewInitialPosition(), checkers.White,
			player.NewRandom(seed), player.NewRandom(seed+100), 300)

		rec, err := g.Play()
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, rec.Plies() <= 300, "seed %d: %d plies", seed, rec.Plies())
		testutil.AssertEqual(t, replay(rec), rec.Final, "seed %d replay", seed)
		testutil.AssertValidPosition(t, rec.Final)

		if rec.Truncated {
			testutil.AssertEqual(t, rec.Outcome, engine.InProgress)
			testutil.AssertEqual(t, rec.Result(), "*")
			continue
		}
		testutil.AssertFalse(t, engine.HasLegalMoves(rec.Final, rec.FinalToMove),
			"seed %d: loser still has moves", seed)
		winner, ok := rec.Outcome.Winner()
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, winner, rec.FinalToMove.Opposite())
	}
}

func TestPlay_Deterministic(t *testing.T) {
	play := func() *Record {
		g := New(1, checkers.NewInitialPosition(), checkers.White,
			player.NewRandom(9), player.NewRandom(10), 100)
		rec, err := g.Play()
		testutil.AssertNoError(t, err)
		return rec
	}
	a, b := play(), play()
	testutil.AssertEqual(t, a.Turns, b.Turns)
	testutil.AssertEqual(t, a.Final, b.Final)
	testutil.AssertTrue(t, a.ID != b.ID, "game ids should be unique")
}

func TestPlay_ForcedContinuation(t *testing.T) {
	start := checkers.NewPosition(sq(18), sq(27, 45, 63), nil)
	white := &firstMover{}
	g := New(1, start, checkers.White, white, &firstMover{}, 1)

	rec, err := g.Play()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rec.Truncated)
	testutil.AssertEqual(t, rec.Plies(), 1)
	testutil.AssertEqual(t, white.calls, 2, "first move and one continuation")

	turn := rec.Turns[0]
	testutil.AssertEqual(t, turn.Colour, checkers.White)
	testutil.AssertEqual(t, turn.Moves, []checkers.Move{{From: 18, To: 36}, {From: 36, To: 54}})
	testutil.AssertEqual(t, turn.Captured, sq(27, 45))
	testutil.AssertEqual(t, turn.String(), "18x36x54")
	testutil.AssertFalse(t, turn.Promoted)
	testutil.AssertEqual(t, rec.Final, checkers.NewPosition(sq(54), sq(63), nil))
	testutil.AssertEqual(t, rec.FinalToMove, checkers.Black)
}

func TestPlay_Promotion(t *testing.T) {
	start := checkers.NewPosition(sq(54), sq(9), nil)
	g := New(1, start, checkers.White, &firstMover{}, &firstMover{}, 1)

	rec, err := g.Play()
	testutil.AssertNoError(t, err)
	turn := rec.Turns[0]
	testutil.AssertEqual(t, turn.String(), "54-61")
	testutil.AssertTrue(t, turn.Promoted)
}

func TestPlay_NoMovesLoses(t *testing.T) {
	tests := []struct {
		name   string
		pos    checkers.Position
		toMove checkers.Colour
		want   engine.Outcome
		result string
	}{
		{"white has no pieces", checkers.NewPosition(nil, sq(45), nil), checkers.White, engine.BlackWins, "0-1"},
		{"black has no pieces", checkers.NewPosition(sq(18), nil, nil), checkers.Black, engine.WhiteWins, "1-0"},
		{"black man blocked", checkers.NewPosition(sq(0, 2, 18), sq(9), nil), checkers.Black, engine.WhiteWins, "1-0"},
		{"white man blocked", checkers.NewPosition(sq(0), sq(9, 18), nil), checkers.White, engine.BlackWins, "0-1"},
		{"black king cornered", checkers.NewPosition(sq(54, 45), sq(63), sq(63)), checkers.Black, engine.WhiteWins, "1-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(3, tt.pos, tt.toMove, &firstMover{}, &firstMover{}, 0)
			rec, err := g.Play()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rec.Outcome, tt.want)
			testutil.AssertEqual(t, rec.Result(), tt.result)
			testutil.AssertEqual(t, rec.Plies(), 0)
			testutil.AssertEqual(t, rec.Number, 3)
		})
	}
}

func TestPlay_IllegalMove(t *testing.T) {
	g := New(2, checkers.NewInitialPosition(), checkers.White,
		&fixedMover{move: checkers.Move{From: 0, To: 9}}, &firstMover{}, 0)

	rec, err := g.Play()
	testutil.AssertError(t, err, "playing 0-9 from the start")
	testutil.AssertErrorIs(t, err, cerrors.ErrIllegalMove)
	testutil.AssertNotNil(t, rec, "a failed game still returns its record")

	var gameErr *cerrors.GameError
	if !errors.As(err, &gameErr) {
		t.Fatalf("error %T is not a *GameError", err)
	}
	testutil.AssertEqual(t, gameErr.GameNum, 2)
	testutil.AssertEqual(t, gameErr.PlyNum, 1)
	testutil.AssertEqual(t, gameErr.Player, "White")
	testutil.AssertEqual(t, gameErr.MoveText, "0-9")
	testutil.AssertEqual(t, gameErr.GameID, rec.ID)
	testutil.AssertEqual(t, rec.Final, checkers.NewInitialPosition())
}

func TestPlay_IllegalContinuation(t *testing.T) {
	// White must continue 36x54 but the player repeats its first move.
	start := checkers.NewPosition(sq(18), sq(27, 45, 63), nil)
	g := New(1, start, checkers.White, &fixedMover{move: checkers.Move{From: 18, To: 36}}, &firstMover{}, 0)

	rec, err := g.Play()
	testutil.AssertErrorIs(t, err, cerrors.ErrIllegalMove)
	testutil.AssertEqual(t, rec.Plies(), 0)
	testutil.AssertEqual(t, rec.Final, start)
}

func TestPlay_PlayerError(t *testing.T) {
	boom := errors.New("boom")
	g := New(1, checkers.NewInitialPosition(), checkers.White, &firstMover{}, &fixedMover{err: boom}, 0)

	rec, err := g.Play()
	testutil.AssertErrorIs(t, err, boom)
	testutil.AssertEqual(t, rec.Plies(), 1)

	var gameErr *cerrors.GameError
	testutil.AssertTrue(t, errors.As(err, &gameErr))
	testutil.AssertEqual(t, gameErr.Player, "Black")
	testutil.AssertEqual(t, gameErr.PlyNum, 2)
}

func TestPlay_OnTurn(t *testing.T) {
	g := New(1, checkers.NewInitialPosition(), checkers.White, &firstMover{}, &firstMover{}, 6)
	var seen []int
	g.OnTurn = func(turn Turn, pos checkers.Position) {
		seen = append(seen, turn.Ply)
		testutil.AssertValidPosition(t, pos)
	}

	rec, err := g.Play()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, seen, []int{1, 2, 3, 4, 5, 6})
	testutil.AssertEqual(t, rec.White, "first")
}

func TestPlay_EngineAgainstRandom(t *testing.T) {
	eng, err := player.NewEngine(&config.SearchConfig{Depth: 2, Evaluator: 1})
	testutil.AssertNoError(t, err)
	g := New(1, checkers.NewInitialPosition(), checkers.White, eng, player.NewRandom(4), 40)

	rec, err := g.Play()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, replay(rec), rec.Final)
	testutil.AssertEqual(t, rec.White, "engine(depth 2, material)")
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithPlayers(config.RandomPlayer, config.RandomPlayer).
		WithMaxPlies(50).
		WithSeed(5).
		Build()

	g, err := NewFromConfig(1, cfg, player.Options{})
	testutil.AssertNoError(t, err)
	a, err := g.Play()
	testutil.AssertNoError(t, err)

	g, err = NewFromConfig(1, cfg, player.Options{})
	testutil.AssertNoError(t, err)
	b, err := g.Play()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, a.Turns, b.Turns)
}

func TestNewFromConfig_StartPosition(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithStartPosition("8/8/8/8/8/8/8/8 b").
		Build()

	g, err := NewFromConfig(1, cfg, player.Options{})
	testutil.AssertNoError(t, err)
	rec, err := g.Play()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Outcome, engine.WhiteWins)
	testutil.AssertEqual(t, rec.StartToMove, checkers.Black)

	cfg.Game.StartPosition = "bogus"
	_, err = NewFromConfig(1, cfg, player.Options{})
	testutil.AssertErrorIs(t, err, cerrors.ErrInvalidNotation)
}

func TestTurn_String(t *testing.T) {
	testutil.AssertEqual(t, Turn{}.String(), "")
	testutil.AssertEqual(t, Turn{Moves: []checkers.Move{{From: 18, To: 27}}}.String(), "18-27")
}
