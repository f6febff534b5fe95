package hashing

import (
	"math/bits"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Key is a Zobrist hash of a position.
type Key uint64

// pieceKinds indexes the random table: white man, white king, black man,
// black king.
const pieceKinds = 4

var zobristTable [pieceKinds][checkers.NumSquares]Key

func init() {
	// Fixed seed so keys are stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	for kind := 0; kind < pieceKinds; kind++ {
		for sq := 0; sq < checkers.NumSquares; sq++ {
			zobristTable[kind][sq] = Key(splitmix64(&state))
		}
	}
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Hash returns the Zobrist key of pos.
func Hash(pos checkers.Position) Key {
	var key Key
	key ^= hashMask(pos.White&^pos.Kings, 0)
	key ^= hashMask(pos.White&pos.Kings, 1)
	key ^= hashMask(pos.Black&^pos.Kings, 2)
	key ^= hashMask(pos.Black&pos.Kings, 3)
	return key
}

func hashMask(mask uint64, kind int) Key {
	var key Key
	for ; mask != 0; mask &= mask - 1 {
		key ^= zobristTable[kind][bits.TrailingZeros64(mask)]
	}
	return key
}
