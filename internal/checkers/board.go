package checkers

import (
	"fmt"
	"math/bits"
)

// Default masks for the standard starting position: white men on rows 0-2,
// black men on rows 5-7, dark squares only.
const (
	InitialWhite uint64 = 0x0000_0000_0055_AA55
	InitialBlack uint64 = 0xAA55_AA00_0000_0000
)

// Position is the complete board state: one bit per square for each colour
// plus a mask of which occupied squares hold kings.
// Position is a small comparable value; copy it by assignment.
type Position struct {
	White uint64
	Black uint64

	// Kings is a subset of White|Black.
	Kings uint64
}

// NewInitialPosition returns the standard checkers starting position.
func NewInitialPosition() Position {
	return Position{
		White: InitialWhite,
		Black: InitialBlack,
	}
}

// NewPosition builds a position from explicit square lists. Squares listed
// in kings must also appear in white or black.
func NewPosition(white, black, kings []Square) Position {
	var p Position
	for _, sq := range white {
		p.White |= sq.Bit()
	}
	for _, sq := range black {
		p.Black |= sq.Bit()
	}
	for _, sq := range kings {
		p.Kings |= sq.Bit()
	}
	return p
}

// Occupancy returns the mask of all occupied squares.
func (p Position) Occupancy() uint64 {
	return p.White | p.Black
}

// Occupied reports whether any piece stands on sq.
func (p Position) Occupied(sq Square) bool {
	return p.Occupancy()&sq.Bit() != 0
}

// PieceAt returns the piece on sq. The second result is false if the square
// is empty.
func (p Position) PieceAt(sq Square) (Piece, bool) {
	bit := sq.Bit()
	rank := Man
	if p.Kings&bit != 0 {
		rank = King
	}
	switch {
	case p.White&bit != 0:
		return Piece{Colour: White, Rank: rank}, true
	case p.Black&bit != 0:
		return Piece{Colour: Black, Rank: rank}, true
	}
	return Piece{}, false
}

// Mask returns the occupancy mask of one colour.
func (p Position) Mask(colour Colour) uint64 {
	if colour == White {
		return p.White
	}
	return p.Black
}

// CountPieces returns the number of pieces, men and kings, of a colour.
func (p Position) CountPieces(colour Colour) int {
	return bits.OnesCount64(p.Mask(colour))
}

// CountKings returns the number of kings of a colour.
func (p Position) CountKings(colour Colour) int {
	return bits.OnesCount64(p.Mask(colour) & p.Kings)
}

// TotalPieces returns the number of pieces on the board.
func (p Position) TotalPieces() int {
	return bits.OnesCount64(p.Occupancy())
}

// Place puts a piece on sq, replacing whatever was there.
func (p *Position) Place(sq Square, piece Piece) {
	p.Remove(sq)
	bit := sq.Bit()
	if piece.Colour == White {
		p.White |= bit
	} else {
		p.Black |= bit
	}
	if piece.Rank == King {
		p.Kings |= bit
	}
}

// Remove clears sq in all three masks.
func (p *Position) Remove(sq Square) {
	mask := ^sq.Bit()
	p.White &= mask
	p.Black &= mask
	p.Kings &= mask
}

// Valid checks the mask invariants. Move generation never produces an
// invalid position; this exists for tests and for positions read from
// external notation.
func (p Position) Valid() error {
	if overlap := p.White & p.Black; overlap != 0 {
		return fmt.Errorf("white and black overlap on %#016x", overlap)
	}
	if stray := p.Kings &^ p.Occupancy(); stray != 0 {
		return fmt.Errorf("king bits on empty squares %#016x", stray)
	}
	return nil
}

// Squares returns the squares set in mask in ascending order.
func Squares(mask uint64) []Square {
	out := make([]Square, 0, bits.OnesCount64(mask))
	for mask != 0 {
		sq := Square(bits.TrailingZeros64(mask))
		out = append(out, sq)
		mask &= mask - 1
	}
	return out
}

// String renders the board from row 7 down to row 0, one rank per line,
// using the notation letters for pieces.
func (p Position) String() string {
	buf := make([]byte, 0, (BoardSize*2+2)*BoardSize)
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			buf = append(buf, '|')
			if piece, ok := p.PieceAt(SquareAt(row, col)); ok {
				buf = append(buf, piece.Letter())
			} else {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '|', '\n')
	}
	return string(buf)
}
