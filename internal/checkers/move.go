package checkers

import "fmt"

// Move is a single origin/destination step or jump.
type Move struct {
	From Square
	To   Square
}

// IsJump reports whether the move covers a doubled step distance.
func (m Move) IsJump() bool {
	d := int(m.To) - int(m.From)
	if d < 0 {
		d = -d
	}
	return d == LeftJumpDistance || d == RightJumpDistance
}

// Midpoint returns the square jumped over. Only meaningful if IsJump.
func (m Move) Midpoint() Square {
	return (m.From + m.To) / 2
}

// String returns the move as "from-to" (or "fromxto" for jumps).
func (m Move) String() string {
	sep := "-"
	if m.IsJump() {
		sep = "x"
	}
	return fmt.Sprintf("%d%s%d", m.From, sep, m.To)
}

// MoveRecord is the undo token produced by applying a move.
// It must be consumed exactly once by the matching undo.
type MoveRecord struct {
	From Square
	To   Square

	// HasCapture is set if a piece was removed; CapturedSquare and
	// CapturedPiece are only meaningful in that case.
	HasCapture     bool
	CapturedSquare Square
	CapturedPiece  Piece

	// WasPromotion is set only if this move turned a man into a king.
	WasPromotion bool
}

// Captured reports whether the move removed an opposing piece.
func (r MoveRecord) Captured() bool {
	return r.HasCapture
}

// Move returns the move the record was produced from.
func (r MoveRecord) Move() Move {
	return Move{From: r.From, To: r.To}
}

// OriginMoves lists the destinations reachable by the piece on From.
type OriginMoves struct {
	From Square
	To   []Square
}

// LegalMoveSet maps origin squares, in ascending order, to their ordered
// destinations. An empty set means the side to move has lost.
type LegalMoveSet []OriginMoves

// Len returns the total number of moves in the set.
func (s LegalMoveSet) Len() int {
	n := 0
	for _, o := range s {
		n += len(o.To)
	}
	return n
}

// Moves flattens the set in scan order: origin ascending, then destination
// index ascending.
func (s LegalMoveSet) Moves() []Move {
	out := make([]Move, 0, s.Len())
	for _, o := range s {
		for _, to := range o.To {
			out = append(out, Move{From: o.From, To: to})
		}
	}
	return out
}

// Contains reports whether m is in the set.
func (s LegalMoveSet) Contains(m Move) bool {
	for _, o := range s {
		if o.From != m.From {
			continue
		}
		for _, to := range o.To {
			if to == m.To {
				return true
			}
		}
	}
	return false
}

// Origin returns the destinations for from, or nil.
func (s LegalMoveSet) Origin(from Square) []Square {
	for _, o := range s {
		if o.From == from {
			return o.To
		}
	}
	return nil
}
