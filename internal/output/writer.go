package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/game"
)

// GameWriter is the interface for writing game records.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *game.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns a writer for the format selected in cfg.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes game records as tagged text.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game immediately.
func (tw *TextWriter) WriteGame(rec *game.Record) error {
	OutputGame(tw.w, rec, tw.cfg)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game records in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*game.Record
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*game.Record, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *game.Record) error {
	if jw.single {
		return OutputGameJSON(jw.w, rec)
	}
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	out := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}
	for _, rec := range jw.games {
		out.Games = append(out.Games, GameToJSON(rec))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
