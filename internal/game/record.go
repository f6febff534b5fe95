package game

import (
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// Turn is one side's turn: a step, or a jump followed by any continuation
// jumps.
type Turn struct {
	Ply      int // 1-based
	Colour   checkers.Colour
	Moves    []checkers.Move
	Captured []checkers.Square
	Promoted bool
}

// String formats the turn as "18-27" or "18x36x54".
func (t Turn) String() string {
	if len(t.Moves) == 0 {
		return ""
	}
	sep := "-"
	if len(t.Captured) > 0 {
		sep = "x"
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(t.Moves[0].From)))
	for _, m := range t.Moves {
		sb.WriteString(sep)
		sb.WriteString(strconv.Itoa(int(m.To)))
	}
	return sb.String()
}

// Record is the full history and result of a game.
type Record struct {
	ID     string
	Number int

	White string
	Black string

	Start       checkers.Position
	StartToMove checkers.Colour

	Turns []Turn

	Outcome engine.Outcome
	// Truncated is set when the game hit the ply cap before a winner
	Truncated bool

	Final       checkers.Position
	FinalToMove checkers.Colour
}

// Plies returns the number of turns played.
func (r *Record) Plies() int {
	return len(r.Turns)
}

// Result returns "1-0", "0-1", or "*" for a game without a winner.
func (r *Record) Result() string {
	switch r.Outcome {
	case engine.WhiteWins:
		return "1-0"
	case engine.BlackWins:
		return "0-1"
	}
	return "*"
}
