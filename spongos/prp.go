// Package spongos implements the keyed duplex sponge over the ternary
// alphabet: absorb, encrypt/decrypt in place, squeeze and commit, on top
// of a pluggable fixed-width trit permutation.
package spongos

import "ternary-kem/trits"

// PRP is the capability set of a concrete sponge permutation: a fixed
// state width split into an outer rate and an inner capacity, plus the
// key width the construction supports.
type PRP interface {
	// Width is the state size in trits, Rate() + Capacity().
	Width() int
	// Rate is the outer part size in trits.
	Rate() int
	// Capacity is the inner part size in trits.
	Capacity() int
	// KeySize is the key width in trits.
	KeySize() int
	// Permute applies the permutation to the full state in place.
	// len(state) must equal Width().
	Permute(state trits.Trits)
}
