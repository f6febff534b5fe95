package search

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// DepthPolicy decides how many plies to search from a position.
type DepthPolicy struct {
	fixed   int
	dynamic bool
}

// Fixed returns a policy that always searches n plies. A depth of zero or
// less evaluates the position after each root move without looking further.
func Fixed(n int) DepthPolicy {
	return DepthPolicy{fixed: n}
}

// Dynamic returns a policy that searches deeper as pieces come off the board.
func Dynamic() DepthPolicy {
	return DepthPolicy{dynamic: true}
}

// IsDynamic reports whether the depth depends on the position.
func (p DepthPolicy) IsDynamic() bool {
	return p.dynamic
}

// Depth returns the search depth for pos.
func (p DepthPolicy) Depth(pos checkers.Position) int {
	if !p.IsDynamic() {
		return p.fixed
	}
	return dynamicDepth(pos.TotalPieces())
}

// String describes the policy, e.g. "6" or "dynamic".
func (p DepthPolicy) String() string {
	if p.IsDynamic() {
		return "dynamic"
	}
	return fmt.Sprintf("%d", p.fixed)
}

// dynamicDepth maps the number of pieces left on the board to a depth.
// Fewer pieces means fewer moves per node, so the search can go deeper in
// about the same time.
func dynamicDepth(pieces int) int {
	switch {
	case pieces > 16:
		return 6
	case pieces > 10:
		return 8
	case pieces > 6:
		return 10
	default:
		return 12
	}
}
