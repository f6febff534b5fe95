package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Human reads moves as indices into the legal move list: first the piece,
// then its destination. Invalid input is reported and asked for again.
type Human struct {
	in     *bufio.Scanner
	out    io.Writer
	colour checkers.Colour
}

// NewHuman creates a player reading from in. Prompts go to out, which may be
// nil.
func NewHuman(in io.Reader, out io.Writer) *Human {
	if out == nil {
		out = io.Discard
	}
	return &Human{in: bufio.NewScanner(in), out: out}
}

// Init records the colour for prompts.
func (p *Human) Init(colour checkers.Colour) {
	p.colour = colour
}

// ChooseMove prompts for a piece and a destination.
func (p *Human) ChooseMove(_ checkers.Position, moves checkers.LegalMoveSet) (checkers.Move, error) {
	if moves.Len() == 0 {
		return checkers.Move{}, errors.ErrNoLegalMoves
	}

	fmt.Fprintf(p.out, "%s to move:\n", p.colour)
	for i, om := range moves {
		fmt.Fprintf(p.out, "  [%d] %d -> %v\n", i, om.From, om.To)
	}

	from, err := p.readIndex("Select a piece to move [Index]: ", len(moves))
	if err != nil {
		return checkers.Move{}, err
	}
	origin := moves[from]
	if len(origin.To) == 1 {
		return checkers.Move{From: origin.From, To: origin.To[0]}, nil
	}
	to, err := p.readIndex("Select a destination [Index]: ", len(origin.To))
	if err != nil {
		return checkers.Move{}, err
	}
	return checkers.Move{From: origin.From, To: origin.To[to]}, nil
}

// readIndex prompts until a number in [0, n) is entered.
func (p *Human) readIndex(prompt string, n int) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		i, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || i < 0 || i >= n {
			fmt.Fprintln(p.out, "Invalid input!")
			continue
		}
		return i, nil
	}
}

// Name returns "human".
func (p *Human) Name() string {
	return "human"
}
