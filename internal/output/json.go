package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	White     string     `json:"white"`
	Black     string     `json:"black"`
	Start     string     `json:"start"`
	Turns     []JSONTurn `json:"turns,omitempty"`
	Result    string     `json:"result"`
	Winner    string     `json:"winner,omitempty"`
	Truncated bool       `json:"truncated,omitempty"`
	PlyCount  int        `json:"plyCount"`
	Final     string     `json:"final"`
}

// JSONTurn represents one turn in JSON format.
type JSONTurn struct {
	Ply      int    `json:"ply"`
	Colour   string `json:"colour"`
	Text     string `json:"text"`
	Path     []int  `json:"path"`
	Captured []int  `json:"captured,omitempty"`
	Promoted bool   `json:"promoted,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to JSON form.
func GameToJSON(rec *game.Record) *JSONGame {
	jg := &JSONGame{
		ID:        rec.ID,
		Number:    rec.Number,
		White:     rec.White,
		Black:     rec.Black,
		Start:     engine.FormatPosition(rec.Start, rec.StartToMove),
		Result:    rec.Result(),
		Truncated: rec.Truncated,
		PlyCount:  rec.Plies(),
		Final:     engine.FormatPosition(rec.Final, rec.FinalToMove),
	}
	if winner, ok := rec.Outcome.Winner(); ok {
		jg.Winner = winner.String()
	}

	for _, turn := range rec.Turns {
		jt := JSONTurn{
			Ply:      turn.Ply,
			Colour:   turn.Colour.String(),
			Text:     turn.String(),
			Promoted: turn.Promoted,
		}
		if len(turn.Moves) > 0 {
			jt.Path = append(jt.Path, int(turn.Moves[0].From))
		}
		for _, m := range turn.Moves {
			jt.Path = append(jt.Path, int(m.To))
		}
		for _, sq := range turn.Captured {
			jt.Captured = append(jt.Captured, int(sq))
		}
		jg.Turns = append(jg.Turns, jt)
	}
	return jg
}

// OutputGameJSON writes a single game record as indented JSON.
func OutputGameJSON(w io.Writer, rec *game.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(rec))
}
