// Package hashing provides position keys and the transposition table used
// by the search.
package hashing

import "github.com/lgbarn/checkers-go/internal/checkers"

// Entry is one cached search result.
type Entry struct {
	// Position is kept to tell apart positions whose keys collide.
	Position checkers.Position
	// Depth is the remaining depth the score was computed at. It is always
	// zero in a table that ignores depth.
	Depth int
	Score float64
}

// TranspositionTable caches search scores by position. It is not safe for
// concurrent use; each search engine owns one table.
type TranspositionTable struct {
	// entries stores results bucketed by Zobrist key
	entries map[Key][]Entry
	// depthAware makes the remaining depth part of the lookup key
	depthAware bool
	// probes and hits count lookups since the last Reset
	probes int
	hits   int
	size   int
}

// NewTranspositionTable creates an empty table. If depthAware is false a
// stored score is returned for its position at any remaining depth.
func NewTranspositionTable(depthAware bool) *TranspositionTable {
	return &TranspositionTable{
		entries:    make(map[Key][]Entry),
		depthAware: depthAware,
	}
}

// DepthAware reports whether the table keys entries by remaining depth.
func (t *TranspositionTable) DepthAware() bool {
	return t.depthAware
}

// Lookup returns the score stored for pos at depth.
func (t *TranspositionTable) Lookup(pos checkers.Position, depth int) (float64, bool) {
	t.probes++
	depth = t.depthKey(depth)
	for _, e := range t.entries[Hash(pos)] {
		if t.entriesMatch(e, pos, depth) {
			t.hits++
			return e.Score, true
		}
	}
	return 0, false
}

// Store records score for pos at depth, replacing any existing entry for the
// same key.
func (t *TranspositionTable) Store(pos checkers.Position, depth int, score float64) {
	depth = t.depthKey(depth)
	key := Hash(pos)
	bucket := t.entries[key]
	for i := range bucket {
		if t.entriesMatch(bucket[i], pos, depth) {
			bucket[i].Score = score
			return
		}
	}
	t.entries[key] = append(bucket, Entry{Position: pos, Depth: depth, Score: score})
	t.size++
}

// entriesMatch checks if a stored entry answers a lookup.
func (t *TranspositionTable) entriesMatch(e Entry, pos checkers.Position, depth int) bool {
	return e.Position == pos && e.Depth == depth
}

func (t *TranspositionTable) depthKey(depth int) int {
	if t.depthAware {
		return depth
	}
	return 0
}

// Len returns the number of stored entries.
func (t *TranspositionTable) Len() int {
	return t.size
}

// Probes returns the number of lookups since the last Reset.
func (t *TranspositionTable) Probes() int {
	return t.probes
}

// Hits returns the number of successful lookups since the last Reset.
func (t *TranspositionTable) Hits() int {
	return t.hits
}

// Reset clears all entries and counters.
func (t *TranspositionTable) Reset() {
	t.entries = make(map[Key][]Entry)
	t.probes = 0
	t.hits = 0
	t.size = 0
}
