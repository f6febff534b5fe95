package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// PlayerKind selects how a side chooses its moves.
type PlayerKind int

const (
	EnginePlayer PlayerKind = iota // alpha-beta search
	HumanPlayer                    // move indices read from input
	RandomPlayer                   // uniformly random legal move
)

var playerKindNames = map[PlayerKind]string{
	EnginePlayer: "engine",
	HumanPlayer:  "human",
	RandomPlayer: "random",
}

// String returns the player kind name.
func (k PlayerKind) String() string {
	if name, ok := playerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PlayerKind(%d)", int(k))
}

// ParsePlayerKind converts a name such as "engine" into a PlayerKind.
func ParsePlayerKind(s string) (PlayerKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range playerKindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown player %q: %w", s, errors.ErrInvalidPlayer)
}

// GameConfig holds settings for playing games.
type GameConfig struct {
	// White and Black choose the player for each side
	White PlayerKind
	Black PlayerKind

	// StartPosition is the starting position in board notation. Empty means
	// the standard opening position with white to move.
	StartPosition string

	// MaxPlies stops a game after this many plies (0 = no limit). A game cut
	// short this way has no winner.
	MaxPlies int

	// Games is the number of games to play
	Games int

	// Workers is the number of games played in parallel (0 = one per CPU)
	Workers int

	// Seed seeds random players; game i uses Seed+i
	Seed int64
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		White:    EnginePlayer,
		Black:    EnginePlayer,
		MaxPlies: 500,
		Games:    1,
		Seed:     1,
	}
}

// Validate checks that the game configuration is usable.
func (g *GameConfig) Validate() error {
	for _, kind := range []PlayerKind{g.White, g.Black} {
		if _, ok := playerKindNames[kind]; !ok {
			return fmt.Errorf("player %v: %w", kind, errors.ErrInvalidPlayer)
		}
	}
	if g.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	if g.Games < 1 {
		return fmt.Errorf("games (%d) must be at least 1: %w", g.Games, errors.ErrInvalidConfig)
	}
	if g.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", g.Workers, errors.ErrInvalidConfig)
	}
	if g.StartPosition != "" {
		if _, _, err := engine.ParsePosition(g.StartPosition); err != nil {
			return err
		}
	}
	return nil
}
