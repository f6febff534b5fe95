// Package testutil provides shared test utilities for the checkers-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// Squares converts integer square ids to checkers.Square values.
func Squares(ids ...int) []checkers.Square {
	out := make([]checkers.Square, len(ids))
	for i, id := range ids {
		out[i] = checkers.Square(id)
	}
	return out
}

// MustParsePosition parses board notation and returns the position and side
// to move. It calls t.Fatal if the notation is invalid.
func MustParsePosition(t *testing.T, notation string) (checkers.Position, checkers.Colour) {
	t.Helper()
	pos, toMove, err := engine.ParsePosition(notation)
	if err != nil {
		t.Fatalf("failed to parse position %q: %v", notation, err)
	}
	return pos, toMove
}

// AssertValidPosition fails if pos breaks the mask invariants.
func AssertValidPosition(t *testing.T, pos checkers.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if err := pos.Valid(); err != nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: invalid position: %v\n%s", msg, err, pos)
		} else {
			t.Errorf("invalid position: %v\n%s", err, pos)
		}
	}
}

// AssertLegal fails if m is not in set.
func AssertLegal(t *testing.T, set checkers.LegalMoveSet, m checkers.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if !set.Contains(m) {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: move %v not in legal set %v", msg, m, set)
		} else {
			t.Errorf("move %v not in legal set %v", m, set)
		}
	}
}
