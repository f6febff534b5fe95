// Package game runs checkers games between two players.
package game

import (
	"github.com/couchbaselabs/logg"
	uuid "github.com/nu7hatch/gouuid"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/player"
)

// LogKey is the logg channel for game progress.
const LogKey = "GAME"

// Game drives one game between two players. A Game is played once.
type Game struct {
	Number int

	pos      checkers.Position
	toMove   checkers.Colour
	white    player.Player
	black    player.Player
	maxPlies int

	// OnTurn, when set, is called after every turn with the new position.
	OnTurn func(t Turn, pos checkers.Position)
}

// New creates a game starting from pos with toMove to play. maxPlies caps
// the game length; 0 means no cap.
func New(number int, pos checkers.Position, toMove checkers.Colour, white, black player.Player, maxPlies int) *Game {
	return &Game{
		Number:   number,
		pos:      pos,
		toMove:   toMove,
		white:    white,
		black:    black,
		maxPlies: maxPlies,
	}
}

func (g *Game) player(c checkers.Colour) player.Player {
	if c == checkers.White {
		return g.white
	}
	return g.black
}

// Play runs the game to the end. A side with no legal moves on its turn
// loses. If a player fails or returns an illegal move the game stops and
// the partial record is returned with a *errors.GameError.
func (g *Game) Play() (*Record, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	g.white.Init(checkers.White)
	g.black.Init(checkers.Black)

	rec := &Record{
		ID:          id.String(),
		Number:      g.Number,
		White:       g.white.Name(),
		Black:       g.black.Name(),
		Start:       g.pos,
		StartToMove: g.toMove,
	}
	defer func() {
		rec.Final = g.pos
		rec.FinalToMove = g.toMove
	}()

	logg.LogTo(LogKey, "game %d (%s): %s vs %s", g.Number, rec.ID, rec.White, rec.Black)

	for {
		if outcome := engine.Evaluate(g.pos, g.toMove); outcome != engine.InProgress {
			rec.Outcome = outcome
			logg.LogTo(LogKey, "game %d: %v after %d plies", g.Number, rec.Outcome, rec.Plies())
			return rec, nil
		}
		if g.maxPlies > 0 && rec.Plies() >= g.maxPlies {
			rec.Truncated = true
			logg.LogTo(LogKey, "game %d: stopped at the %d ply cap", g.Number, g.maxPlies)
			return rec, nil
		}

		moves := engine.LegalMoves(g.pos, g.toMove)

		turn, err := g.playTurn(rec, moves)
		if err != nil {
			return rec, err
		}
		rec.Turns = append(rec.Turns, turn)
		logg.LogTo(LogKey, "game %d ply %d: %v %v", g.Number, turn.Ply, turn.Colour, turn)

		g.toMove = g.toMove.Opposite()
		if g.OnTurn != nil {
			g.OnTurn(turn, g.pos)
		}
	}
}

// playTurn asks the side to move for a move and then for every forced
// continuation jump.
func (g *Game) playTurn(rec *Record, moves checkers.LegalMoveSet) (Turn, error) {
	colour := g.toMove
	p := g.player(colour)
	turn := Turn{Ply: rec.Plies() + 1, Colour: colour}

	choose := func(set checkers.LegalMoveSet) (checkers.Move, error) {
		m, err := p.ChooseMove(g.pos, set)
		if err != nil {
			return m, g.gameError(rec, turn.Ply, colour, "", err)
		}
		if !set.Contains(m) {
			return m, g.gameError(rec, turn.Ply, colour, m.String(), errors.ErrIllegalMove)
		}
		return m, nil
	}

	first, err := choose(moves)
	if err != nil {
		return turn, err
	}
	records, err := engine.PlayTurn(&g.pos, first, choose)
	if err != nil {
		engine.UndoTurn(&g.pos, records)
		return turn, err
	}
	for _, r := range records {
		turn.Moves = append(turn.Moves, r.Move())
		if r.Captured() {
			turn.Captured = append(turn.Captured, r.CapturedSquare)
		}
		if r.WasPromotion {
			turn.Promoted = true
		}
	}
	return turn, nil
}

func (g *Game) gameError(rec *Record, ply int, colour checkers.Colour, move string, err error) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  g.Number,
		GameID:   rec.ID,
		PlyNum:   ply,
		MoveText: move,
		Player:   colour.String(),
	}
}
