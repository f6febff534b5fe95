// Package engine provides checkers move generation, move application and
// position notation.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// InitialNotation is the notation for the standard starting position.
const InitialNotation = "1m1m1m1m/m1m1m1m1/1m1m1m1m/8/8/M1M1M1M1/1M1M1M1M/M1M1M1M1 w"

// pieceForLetter converts a notation letter to a piece.
func pieceForLetter(c byte) (checkers.Piece, bool) {
	switch c {
	case 'M':
		return checkers.Piece{Colour: checkers.White, Rank: checkers.Man}, true
	case 'K':
		return checkers.Piece{Colour: checkers.White, Rank: checkers.King}, true
	case 'm':
		return checkers.Piece{Colour: checkers.Black, Rank: checkers.Man}, true
	case 'k':
		return checkers.Piece{Colour: checkers.Black, Rank: checkers.King}, true
	}
	return checkers.Piece{}, false
}

// ParsePosition reads a position in board notation: rows from row 7 down to
// row 0 separated by '/', 'M'/'K' for white men and kings, 'm'/'k' for black,
// digits for runs of empty squares. An optional second field, "w" or "b",
// names the side to move; White is assumed if it is absent.
func ParsePosition(notation string) (checkers.Position, checkers.Colour, error) {
	var pos checkers.Position
	fields := strings.Fields(notation)
	if len(fields) == 0 {
		return pos, checkers.White, &errors.ParseError{Err: errors.ErrInvalidNotation, Got: "empty string"}
	}
	if len(fields) > 2 {
		return pos, checkers.White, &errors.ParseError{
			Err:    errors.ErrInvalidNotation,
			Column: fieldColumn(notation, fields, 2),
			Got:    fmt.Sprintf("extra field %q", fields[2]),
		}
	}

	if err := parsePlacement(&pos, fields[0]); err != nil {
		return checkers.Position{}, checkers.White, err
	}

	toMove := checkers.White
	if len(fields) == 2 {
		switch fields[1] {
		case "w", "W":
		case "b", "B":
			toMove = checkers.Black
		default:
			return checkers.Position{}, checkers.White, &errors.ParseError{
				Err:      errors.ErrInvalidNotation,
				Column:   fieldColumn(notation, fields, 1),
				Expected: "side to move 'w' or 'b'",
				Got:      fmt.Sprintf("%q", fields[1]),
			}
		}
	}
	return pos, toMove, nil
}

// fieldColumn returns the 1-based column at which fields[n] starts in s.
func fieldColumn(s string, fields []string, n int) int {
	off := 0
	for i := 0; i < n; i++ {
		off += strings.Index(s[off:], fields[i]) + len(fields[i])
	}
	return off + strings.Index(s[off:], fields[n]) + 1
}

// parsePlacement fills pos from the piece placement field.
func parsePlacement(pos *checkers.Position, placement string) error {
	row := checkers.BoardSize - 1
	col := 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		column := i + 1
		switch {
		case c == '/':
			if col != checkers.BoardSize {
				return &errors.ParseError{
					Err:      errors.ErrInvalidNotation,
					Column:   column,
					Expected: fmt.Sprintf("%d squares in row %d", checkers.BoardSize, row),
					Got:      fmt.Sprintf("%d", col),
				}
			}
			row--
			col = 0
			if row < 0 {
				return &errors.ParseError{Err: errors.ErrInvalidNotation, Column: column, Got: "too many rows"}
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > checkers.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidNotation, Column: column, Got: fmt.Sprintf("row %d overflows", row)}
			}
		default:
			piece, ok := pieceForLetter(c)
			if !ok {
				return &errors.ParseError{Err: errors.ErrInvalidNotation, Column: column, Got: fmt.Sprintf("%q", c)}
			}
			if col >= checkers.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidNotation, Column: column, Got: fmt.Sprintf("row %d overflows", row)}
			}
			sq := checkers.SquareAt(row, col)
			if !sq.Playable() {
				return &errors.ParseError{
					Err:    errors.ErrInvalidNotation,
					Column: column,
					Got:    fmt.Sprintf("piece on light square %d", sq),
				}
			}
			pos.Place(sq, piece)
			col++
		}
	}
	if row != 0 || col != checkers.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Column:   len(placement),
			Expected: fmt.Sprintf("%d complete rows", checkers.BoardSize),
		}
	}
	return nil
}

// FormatPosition writes pos and the side to move in board notation.
func FormatPosition(pos checkers.Position, toMove checkers.Colour) string {
	var sb strings.Builder
	for row := checkers.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < checkers.BoardSize; col++ {
			piece, ok := pos.PieceAt(checkers.SquareAt(row, col))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	if toMove == checkers.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
