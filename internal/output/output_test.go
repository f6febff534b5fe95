package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/search"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

// testRecord returns a two-ply game from the opening that white won.
func testRecord() *game.Record {
	start := checkers.NewInitialPosition()
	final := start
	turns := []game.Turn{
		{Ply: 1, Colour: checkers.White, Moves: []checkers.Move{{From: 18, To: 27}}},
		{Ply: 2, Colour: checkers.Black, Moves: []checkers.Move{{From: 45, To: 36}}},
	}
	for _, turn := range turns {
		for _, m := range turn.Moves {
			engine.ApplyMove(&final, m)
		}
	}
	return &game.Record{
		ID:          "abc",
		Number:      1,
		White:       "engine(depth 6, positional)",
		Black:       "random",
		Start:       start,
		StartToMove: checkers.White,
		Turns:       turns,
		Outcome:     engine.WhiteWins,
		Final:       final,
		FinalToMove: checkers.White,
	}
}

func TestFormatBoard(t *testing.T) {
	lines := strings.Split(FormatBoard(checkers.NewInitialPosition()), "\n")

	testutil.AssertEqual(t, len(lines), 10) // 8 rows, column labels, trailing ""
	testutil.AssertEqual(t, lines[0], "7   m   m   m   m")
	testutil.AssertEqual(t, lines[4], "3   .   .   .   .")
	testutil.AssertEqual(t, lines[7], "0 M   M   M   M  ")
	testutil.AssertEqual(t, lines[8], "  0 1 2 3 4 5 6 7")
}

func TestFormatBoard_Kings(t *testing.T) {
	pos := checkers.NewPosition(testutil.Squares(0), testutil.Squares(63), testutil.Squares(0, 63))
	board := FormatBoard(pos)
	testutil.AssertContains(t, board, "7 ")
	testutil.AssertContains(t, board, " k\n")
	testutil.AssertContains(t, board, "0 K")
}

func TestRenderAnalysis(t *testing.T) {
	var buf bytes.Buffer
	RenderAnalysis(&buf, checkers.White, []search.ScoredMove{
		{Move: checkers.Move{From: 16, To: 25}, Score: 0.5},
		{Move: checkers.Move{From: 18, To: 27}, Score: 1.25},
	})
	out := buf.String()
	testutil.AssertContains(t, out, "(16-25) | 0.500\n")
	testutil.AssertContains(t, out, "White best move: (18-27) | 1.250")

	buf.Reset()
	RenderAnalysis(&buf, checkers.White, nil)
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestOutputGame(t *testing.T) {
	var buf bytes.Buffer
	OutputGame(&buf, testRecord(), config.NewOutputConfig())
	out := buf.String()

	testutil.AssertContains(t, out, "[Game \"1\"]\n")
	testutil.AssertContains(t, out, "[White \"engine(depth 6, positional)\"]\n")
	testutil.AssertContains(t, out, "[Result \"1-0\"]\n")
	testutil.AssertContains(t, out, "[PlyCount \"2\"]\n")
	testutil.AssertContains(t, out, "[Final \"")
	testutil.AssertContains(t, out, "\n1. 18-27 45-36 1-0\n")
	testutil.AssertNotContains(t, out, "[Setup")
	testutil.AssertNotContains(t, out, "[Termination")
}

func TestOutputGame_BlackStartsAndTruncated(t *testing.T) {
	rec := testRecord()
	rec.StartToMove = checkers.Black
	rec.Turns = rec.Turns[1:]
	rec.Outcome = engine.InProgress
	rec.Truncated = true

	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowNotation = false
	OutputGame(&buf, rec, cfg)
	out := buf.String()

	testutil.AssertContains(t, out, "[Setup \"")
	testutil.AssertContains(t, out, "[Termination \"ply limit\"]")
	testutil.AssertContains(t, out, "\n1... 45-36 *\n")
	testutil.AssertNotContains(t, out, "[Final")
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "18-27", "45-36", "2.", "27x45"} {
		ow.Write(s)
	}
	ow.NewLine()

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) > 10 {
			t.Errorf("line %q longer than 10", line)
		}
	}
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeTagValue(tt.in); got != tt.want {
			t.Errorf("escapeTagValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGameToJSON(t *testing.T) {
	rec := testRecord()
	rec.Turns = append(rec.Turns, game.Turn{
		Ply:      3,
		Colour:   checkers.White,
		Moves:    []checkers.Move{{From: 27, To: 45}, {From: 45, To: 63}},
		Captured: testutil.Squares(36, 54),
		Promoted: true,
	})

	jg := GameToJSON(rec)
	testutil.AssertEqual(t, jg.ID, "abc")
	testutil.AssertEqual(t, jg.Result, "1-0")
	testutil.AssertEqual(t, jg.Winner, "White")
	testutil.AssertEqual(t, jg.PlyCount, 3)
	testutil.AssertEqual(t, jg.Start, engine.InitialNotation)
	testutil.AssertEqual(t, len(jg.Turns), 3)

	last := jg.Turns[2]
	testutil.AssertEqual(t, last.Path, []int{27, 45, 63})
	testutil.AssertEqual(t, last.Captured, []int{36, 54})
	testutil.AssertEqual(t, last.Text, "27x45x63")
	testutil.AssertTrue(t, last.Promoted)
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(&buf)

	testutil.AssertNoError(t, jw.WriteGame(testRecord()))
	testutil.AssertNoError(t, jw.WriteGame(testRecord()))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer wrote before Close")
	testutil.AssertNoError(t, jw.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Games), 2)
	testutil.AssertEqual(t, out.Games[0].Turns[0].Text, "18-27")

	// A second Close has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, jw.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, jw.WriteGame(testRecord()))

	var fields map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &fields))
	for _, key := range []string{"id", "number", "white", "black", "start", "turns", "result", "plyCount", "final"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("JSON record missing %q", key)
		}
	}
	if _, ok := fields["truncated"]; ok {
		t.Error("truncated should be omitted when false")
	}
}

func TestNewGameWriter(t *testing.T) {
	cfg := config.NewOutputConfig()
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("default writer should be a TextWriter")
	}
	cfg.JSONFormat = true
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSON config should give a JSONWriter")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, config.NewOutputConfig())
	testutil.AssertNoError(t, tw.WriteGame(testRecord()))
	testutil.AssertNoError(t, tw.Flush())
	testutil.AssertNoError(t, tw.Close())
	testutil.AssertContains(t, buf.String(), "1. 18-27 45-36 1-0")
}
