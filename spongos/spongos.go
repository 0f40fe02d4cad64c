package spongos

import (
	"fmt"

	"ternary-kem/trits"
)

// Parameters of the default permutation.
const (
	// Rate is the outer part width in trits.
	Rate = 486
	// Capacity is the inner part width in trits.
	Capacity = 243
	// KeySize is the session key width in trits.
	KeySize = 243
)

// Spongos is a duplex sponge instance: a permutation state plus a cursor
// over the outer (rate) part. The zero cursor sits at a block boundary;
// Commit restores that invariant after partial input.
//
// Trit addition mod 3 plays the role XOR plays in binary duplexes.
// An instance is exclusively owned for the duration of every call.
type Spongos struct {
	prp   PRP
	state trits.Trits
	pos   int
}

// New returns a fresh zero-state sponge over the default Curl-P-81
// permutation.
func New() *Spongos {
	return NewWith(NewCurlP81())
}

// NewWith returns a fresh zero-state sponge over the given permutation.
func NewWith(p PRP) *Spongos {
	return &Spongos{prp: p, state: trits.New(p.Width())}
}

// Clone returns an independent copy with identical state and cursor.
func (s *Spongos) Clone() *Spongos {
	return &Spongos{prp: s.prp, state: s.state.Clone(), pos: s.pos}
}

// outer is the unread remainder of the current rate block.
func (s *Spongos) outer() trits.Trits {
	return s.state[s.pos:s.prp.Rate()]
}

// update advances the cursor by n trits, permuting at the rate boundary.
func (s *Spongos) update(n int) {
	s.pos += n
	if s.pos == s.prp.Rate() {
		s.prp.Permute(s.state)
		s.pos = 0
	}
}

// chunk clips n to the current block remainder.
func (s *Spongos) chunk(n int) int {
	if r := s.prp.Rate() - s.pos; n > r {
		return r
	}
	return n
}

// Absorb adds x into the outer part, permuting at every filled block.
func (s *Spongos) Absorb(x trits.Trits) {
	for len(x) > 0 {
		n := s.chunk(len(x))
		o := s.outer()
		head := x.Advance(n)
		for i := 0; i < n; i++ {
			o[i] = add3(o[i], head[i])
		}
		s.update(n)
	}
}

// Encr encrypts x into y: every ciphertext trit is plaintext plus outer
// keystream, and the outer part is replaced by the ciphertext. x and y
// must have equal length and either alias exactly or not overlap at all.
func (s *Spongos) Encr(x, y trits.Trits) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("spongos: encr length mismatch %d != %d", len(x), len(y)))
	}
	for len(x) > 0 {
		n := s.chunk(len(x))
		o := s.outer()
		in := x.Advance(n)
		out := y.Advance(n)
		for i := 0; i < n; i++ {
			c := add3(in[i], o[i])
			o[i] = c
			out[i] = c
		}
		s.update(n)
	}
}

// Decr decrypts x into y, the exact inverse of Encr on the ciphertext
// stream. Same aliasing contract as Encr.
func (s *Spongos) Decr(x, y trits.Trits) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("spongos: decr length mismatch %d != %d", len(x), len(y)))
	}
	for len(x) > 0 {
		n := s.chunk(len(x))
		o := s.outer()
		in := x.Advance(n)
		out := y.Advance(n)
		for i := 0; i < n; i++ {
			c := in[i]
			out[i] = sub3(c, o[i])
			o[i] = c
		}
		s.update(n)
	}
}

// Squeeze fills y from the outer part, zeroing every trit it reads so the
// emitted stream cannot be recovered from the state.
func (s *Spongos) Squeeze(y trits.Trits) {
	for len(y) > 0 {
		n := s.chunk(len(y))
		o := s.outer()
		out := y.Advance(n)
		for i := 0; i < n; i++ {
			out[i] = o[i]
			o[i] = 0
		}
		s.update(n)
	}
}

// Commit forces a permutation boundary: a partial block is closed (its
// unfilled remainder absorbs zeros, which leaves it untouched) and the
// cursor returns to the block start.
func (s *Spongos) Commit() {
	if s.pos != 0 {
		s.prp.Permute(s.state)
		s.pos = 0
	}
}

func add3(a, b trits.Trit) trits.Trit {
	v := a + b
	if v > 1 {
		v -= 3
	} else if v < -1 {
		v += 3
	}
	return v
}

func sub3(a, b trits.Trit) trits.Trit {
	v := a - b
	if v > 1 {
		v -= 3
	} else if v < -1 {
		v += 3
	}
	return v
}
