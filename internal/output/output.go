// Package output writes boards and game records as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
)

// maxLineLength is the width at which move text wraps.
const maxLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes rec as text: a tag block, the numbered turns, and the
// result.
func OutputGame(w io.Writer, rec *game.Record, cfg *config.OutputConfig) {
	outputTags(w, rec, cfg)
	fmt.Fprintln(w)
	outputTurns(w, rec)
	fmt.Fprintln(w)
}

// outputTags writes the record header.
func outputTags(w io.Writer, rec *game.Record, cfg *config.OutputConfig) {
	tag := func(name, value string) {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
	}
	tag("Game", fmt.Sprint(rec.Number))
	tag("ID", rec.ID)
	tag("White", rec.White)
	tag("Black", rec.Black)
	tag("Result", rec.Result())
	if rec.Start != checkers.NewInitialPosition() || rec.StartToMove != checkers.White {
		tag("Setup", engine.FormatPosition(rec.Start, rec.StartToMove))
	}
	tag("PlyCount", fmt.Sprint(rec.Plies()))
	if rec.Truncated {
		tag("Termination", "ply limit")
	}
	if cfg.ShowNotation {
		tag("Final", engine.FormatPosition(rec.Final, rec.FinalToMove))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputTurns writes the turns two to a move number, white first.
func outputTurns(w io.Writer, rec *game.Record) {
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := 1
	isWhite := rec.StartToMove == checkers.White
	for i, turn := range rec.Turns {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(turn.String())

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.Write(rec.Result())
	ow.NewLine()
}
