package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// Outcome describes the state of a game from the side-to-move's view.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	default:
		return "In progress"
	}
}

// Winner returns the winning colour. The second result is false while the
// game is in progress.
func (o Outcome) Winner() (checkers.Colour, bool) {
	switch o {
	case WhiteWins:
		return checkers.White, true
	case BlackWins:
		return checkers.Black, true
	}
	return checkers.White, false
}

// WinFor returns the outcome in which colour has won.
func WinFor(colour checkers.Colour) Outcome {
	if colour == checkers.White {
		return WhiteWins
	}
	return BlackWins
}

// Evaluate reports the outcome of pos with toMove to play. A side with no
// legal moves, including a side with no pieces, has lost.
func Evaluate(pos checkers.Position, toMove checkers.Colour) Outcome {
	if HasLegalMoves(pos, toMove) {
		return InProgress
	}
	return WinFor(toMove.Opposite())
}
