package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/search"
)

// FormatBoard draws pos with row 7 at the top. Each cell shows the piece
// letter, '.' for an empty dark square, or ' ' for a light square. Row and
// column numbers are printed along the edges so squares can be read off as
// row*8+col.
func FormatBoard(pos checkers.Position) string {
	var sb strings.Builder
	for row := checkers.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < checkers.BoardSize; col++ {
			sq := checkers.SquareAt(row, col)
			switch piece, ok := pos.PieceAt(sq); {
			case ok:
				sb.WriteByte(piece.Letter())
			case sq.Playable():
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
			if col < checkers.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	return sb.String()
}

// RenderBoard writes FormatBoard(pos) to w.
func RenderBoard(w io.Writer, pos checkers.Position) {
	fmt.Fprint(w, FormatBoard(pos))
}

// RenderAnalysis writes one line per scored root move followed by the
// chosen move.
func RenderAnalysis(w io.Writer, colour checkers.Colour, scored []search.ScoredMove) {
	if len(scored) == 0 {
		return
	}
	for _, sm := range scored {
		fmt.Fprintf(w, "(%v) | %.3f\n", sm.Move, sm.Score)
	}
	best := search.Best(scored)
	fmt.Fprintf(w, "%v best move: (%v) | %.3f\n", colour, best.Move, best.Score)
}
