package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/eval"
)

// SearchConfig holds settings for the computer player's search.
type SearchConfig struct {
	// Depth is the fixed search depth in plies. Ignored when Dynamic is set.
	Depth int

	// Dynamic derives the depth from the number of pieces on the board
	Dynamic bool

	// Evaluator selects the horizon evaluator
	Evaluator eval.Selector

	// DepthAwareCache keys the transposition table by remaining depth too
	DepthAwareCache bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     6,
		Evaluator: eval.Default,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if !s.Dynamic && s.Depth <= 0 {
		return fmt.Errorf("search depth %d must be positive: %w", s.Depth, errors.ErrInvalidDepth)
	}
	if _, err := eval.New(s.Evaluator); err != nil {
		return err
	}
	return nil
}
