package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// Apply moves the piece on from to to, removing a jumped piece and crowning
// a man that reaches its promotion row. It returns the record needed to undo
// the move. The move is not validated: callers pass moves taken from
// LegalMoves or ContinuationJumps.
func Apply(pos *checkers.Position, from, to checkers.Square) checkers.MoveRecord {
	rec := checkers.MoveRecord{From: from, To: to}
	fromBit, toBit := from.Bit(), to.Bit()

	colour := checkers.White
	if pos.White&fromBit != 0 {
		pos.White = pos.White&^fromBit | toBit
	} else {
		colour = checkers.Black
		pos.Black = pos.Black&^fromBit | toBit
	}

	wasKing := pos.Kings&fromBit != 0
	if wasKing {
		pos.Kings = pos.Kings&^fromBit | toBit
	}

	if m := (checkers.Move{From: from, To: to}); m.IsJump() {
		mid := m.Midpoint()
		if captured, ok := pos.PieceAt(mid); ok {
			rec.HasCapture = true
			rec.CapturedSquare = mid
			rec.CapturedPiece = captured
			pos.Remove(mid)
		}
	}

	if !wasKing && to.Row() == checkers.PromotionRow(colour) {
		pos.Kings |= toBit
		rec.WasPromotion = true
	}

	return rec
}

// ApplyMove is Apply for a checkers.Move.
func ApplyMove(pos *checkers.Position, m checkers.Move) checkers.MoveRecord {
	return Apply(pos, m.From, m.To)
}

// Undo reverses a move made by Apply. A piece that was already a king before
// the move stays a king; only a promotion made by this move is reverted.
func Undo(pos *checkers.Position, rec checkers.MoveRecord) {
	fromBit, toBit := rec.From.Bit(), rec.To.Bit()

	if rec.WasPromotion {
		pos.Kings &^= toBit
	}

	if pos.White&toBit != 0 {
		pos.White = pos.White&^toBit | fromBit
	} else {
		pos.Black = pos.Black&^toBit | fromBit
	}

	if pos.Kings&toBit != 0 {
		pos.Kings = pos.Kings&^toBit | fromBit
	}

	if rec.HasCapture {
		pos.Place(rec.CapturedSquare, rec.CapturedPiece)
	}
}

// PlayTurn applies a full turn for the side to move: the first move followed
// by as many continuation jumps as are available. choose is called with the
// landing square's continuation jumps after every capture that can be
// continued. The records are returned in play order. If choose fails, the
// moves made so far stay applied and their records are returned with the
// error.
func PlayTurn(pos *checkers.Position, m checkers.Move, choose func(checkers.LegalMoveSet) (checkers.Move, error)) ([]checkers.MoveRecord, error) {
	rec := ApplyMove(pos, m)
	records := []checkers.MoveRecord{rec}
	for rec.Captured() {
		next := ContinuationMoves(*pos, rec.To)
		if len(next) == 0 {
			break
		}
		m, err := choose(next)
		if err != nil {
			return records, err
		}
		rec = ApplyMove(pos, m)
		records = append(records, rec)
	}
	return records, nil
}

// UndoTurn reverses records produced by PlayTurn.
func UndoTurn(pos *checkers.Position, records []checkers.MoveRecord) {
	for i := len(records) - 1; i >= 0; i-- {
		Undo(pos, records[i])
	}
}
