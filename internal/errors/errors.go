// Package errors provides sentinel errors and error types for the checkers engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed board notation string.
	ErrInvalidNotation = errors.New("invalid board notation")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMoves indicates a move was requested for a side that has
	// already lost. Inside the search this is a terminal state, not an error.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidEvaluator indicates an unknown evaluator selector.
	ErrInvalidEvaluator = errors.New("invalid evaluator")

	// ErrInvalidDepth indicates a search depth outside the accepted range.
	ErrInvalidDepth = errors.New("invalid search depth")

	// ErrInvalidPlayer indicates an unknown player kind.
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the batch
	GameID   string // Game record identifier (if known)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	Player   string // Colour of the player at fault (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	// Add game number and id
	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %d (%s)", e.GameNum, e.GameID))
	} else {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}

	// Add ply number if available
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	// Add player and move text if available
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	// Build the final message
	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for board notation and command-line value errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add location
	switch {
	case e.File != "":
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	case e.Column > 0:
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
