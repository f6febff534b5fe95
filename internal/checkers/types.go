// Package checkers provides core checkers types and operations.
package checkers

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Rank distinguishes an unpromoted man from a king.
type Rank int

const (
	Man Rank = iota
	King
)

// String returns the string representation of a rank.
func (r Rank) String() string {
	if r == King {
		return "King"
	}
	return "Man"
}

// Piece is a coloured man or king. It is derived from the position masks
// and never stored on its own.
type Piece struct {
	Colour Colour
	Rank   Rank
}

// Letter returns the notation letter for a piece: upper case for white,
// 'M' for men and 'K' for kings.
func (p Piece) Letter() byte {
	var c byte = 'm'
	if p.Rank == King {
		c = 'k'
	}
	if p.Colour == White {
		c -= 'a' - 'A'
	}
	return c
}

// Constants for board dimensions and diagonal step distances.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// LeftDistance and RightDistance are the square id deltas of a single
	// diagonal step towards higher rows.
	LeftDistance  = 7
	RightDistance = 9

	// A jump covers two steps along the same diagonal.
	LeftJumpDistance  = 2 * LeftDistance
	RightJumpDistance = 2 * RightDistance
)

// Square is a board square id in [0,64): row*8 + col.
// Only squares where row+col is even are playable.
type Square int

// SquareAt returns the square id for the given 0-indexed row and column.
func SquareAt(row, col int) Square {
	return Square(row*BoardSize + col)
}

// Row returns the 0-indexed row of the square.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the 0-indexed column of the square.
func (s Square) Col() int {
	return int(s) % BoardSize
}

// Playable reports whether s is on the board and on a dark square.
func (s Square) Playable() bool {
	return s >= 0 && s < NumSquares && (s.Row()+s.Col())%2 == 0
}

// Bit returns the single-bit mask for the square.
func (s Square) Bit() uint64 {
	return 1 << uint(s)
}

// PromotionRow returns the row on which a man of the given colour is crowned.
func PromotionRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// ForwardDirection returns +1 for White and -1 for Black.
func ForwardDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
