package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// direction is one diagonal step expressed as row and column deltas.
type direction struct {
	dRow, dCol int
}

// Diagonals in the order moves are generated for a white piece: the two
// forward steps (+7, +9) then the two backward steps (-9, -7). Black uses the
// same order with the row deltas mirrored.
var whiteDirections = [4]direction{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
var blackDirections = [4]direction{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}

// directionsFor returns the step directions available to a piece: two for a
// man, four for a king.
func directionsFor(piece checkers.Piece) []direction {
	dirs := whiteDirections[:]
	if piece.Colour == checkers.Black {
		dirs = blackDirections[:]
	}
	if piece.Rank == checkers.Man {
		return dirs[:2]
	}
	return dirs
}

// offset returns the square n steps from sq in direction d. The second result
// is false if that square lies off the board.
func offset(sq checkers.Square, d direction, n int) (checkers.Square, bool) {
	row := sq.Row() + n*d.dRow
	col := sq.Col() + n*d.dCol
	if row < 0 || row >= checkers.BoardSize || col < 0 || col >= checkers.BoardSize {
		return 0, false
	}
	return checkers.SquareAt(row, col), true
}

// jumpsFor returns the jump destinations of the piece on from.
func jumpsFor(pos checkers.Position, from checkers.Square, piece checkers.Piece) []checkers.Square {
	opponent := pos.Mask(piece.Colour.Opposite())
	var jumps []checkers.Square
	for _, d := range directionsFor(piece) {
		over, ok := offset(from, d, 1)
		if !ok || opponent&over.Bit() == 0 {
			continue
		}
		land, ok := offset(from, d, 2)
		if !ok || pos.Occupied(land) {
			continue
		}
		jumps = append(jumps, land)
	}
	return jumps
}

// stepsFor returns the non-capturing destinations of the piece on from.
func stepsFor(pos checkers.Position, from checkers.Square, piece checkers.Piece) []checkers.Square {
	var steps []checkers.Square
	for _, d := range directionsFor(piece) {
		to, ok := offset(from, d, 1)
		if ok && !pos.Occupied(to) {
			steps = append(steps, to)
		}
	}
	return steps
}

// LegalMoves returns the legal moves for colour. If any piece can jump, only
// jumping pieces and their jump destinations are returned; otherwise every
// piece with a step is listed. Origins are in ascending square order.
func LegalMoves(pos checkers.Position, colour checkers.Colour) checkers.LegalMoveSet {
	var jumps, steps checkers.LegalMoveSet
	for _, from := range checkers.Squares(pos.Mask(colour)) {
		piece, _ := pos.PieceAt(from)
		if to := jumpsFor(pos, from, piece); len(to) > 0 {
			jumps = append(jumps, checkers.OriginMoves{From: from, To: to})
			continue
		}
		if len(jumps) > 0 {
			continue // a jump is already forced; steps can't be played
		}
		if to := stepsFor(pos, from, piece); len(to) > 0 {
			steps = append(steps, checkers.OriginMoves{From: from, To: to})
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return steps
}

// ContinuationJumps returns the further jumps available to the piece that
// just landed on sq. Other pieces are not considered. An empty result ends
// the turn.
func ContinuationJumps(pos checkers.Position, sq checkers.Square) []checkers.Square {
	piece, ok := pos.PieceAt(sq)
	if !ok {
		return nil
	}
	return jumpsFor(pos, sq, piece)
}

// ContinuationMoves wraps ContinuationJumps as a single-origin move set.
func ContinuationMoves(pos checkers.Position, sq checkers.Square) checkers.LegalMoveSet {
	jumps := ContinuationJumps(pos, sq)
	if len(jumps) == 0 {
		return nil
	}
	return checkers.LegalMoveSet{{From: sq, To: jumps}}
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos checkers.Position, colour checkers.Colour) bool {
	for _, from := range checkers.Squares(pos.Mask(colour)) {
		piece, _ := pos.PieceAt(from)
		if len(jumpsFor(pos, from, piece)) > 0 || len(stepsFor(pos, from, piece)) > 0 {
			return true
		}
	}
	return false
}
