// Package trits implements the balanced-ternary alphabet: single trits,
// trytes (3-trit groups) and owning/borrowed trit sequences with the
// cursor-style slice arithmetic the wire framing relies on.
//
// All size preconditions are programmer errors and panic; wire-level
// short reads are reported by package pb3 instead.
package trits

import (
	"fmt"
	"strings"
)

// Trit is a balanced ternary digit, value in {-1, 0, +1}.
type Trit = int8

// Trint3 is a tryte value, three trits in balanced base 3, in [-13, +13].
type Trint3 = int8

// Trits is a trit sequence. A sub-slice is a borrowed view over the same
// backing array; callers follow the usual Go slice aliasing discipline.
type Trits []Trit

// New allocates a zeroed trit sequence of length n.
func New(n int) Trits {
	return make(Trits, n)
}

// Take returns the first n trits.
func (t Trits) Take(n int) Trits {
	return t[:n]
}

// Drop returns the trits past the first n.
func (t Trits) Drop(n int) Trits {
	return t[n:]
}

// Advance returns the first n trits and shortens the receiver to the rest.
func (t *Trits) Advance(n int) Trits {
	head := (*t)[:n]
	*t = (*t)[n:]
	return head
}

// CopyTo copies the receiver into dst. Lengths must match.
func (t Trits) CopyTo(dst Trits) {
	if len(t) != len(dst) {
		panic(fmt.Sprintf("trits: copy length mismatch %d != %d", len(t), len(dst)))
	}
	copy(dst, t)
}

// Clone returns an owning copy.
func (t Trits) Clone() Trits {
	out := New(len(t))
	copy(out, t)
	return out
}

// Equal reports trit-wise equality. Not constant time.
func (t Trits) Equal(o Trits) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// Inc interprets the receiver as a little-endian balanced-ternary counter
// and adds one in place. It returns false exactly when every trit was +1,
// in which case the counter wrapped to all -1.
func (t Trits) Inc() bool {
	for i := range t {
		if t[i] == 1 {
			t[i] = -1
			continue
		}
		t[i]++
		return true
	}
	return false
}

// Put3 writes the tryte d into the first 3 trits of the receiver,
// little-endian, leaving the rest untouched.
func (t Trits) Put3(d Trint3) {
	if d < -13 || d > 13 {
		panic(fmt.Sprintf("trits: tryte value %d out of range", d))
	}
	v := int(d)
	for i := 0; i < 3; i++ {
		r := mods3(v)
		t[i] = Trit(r)
		v = (v - r) / 3
	}
}

// Get3 reads a tryte from the first 3 trits of the receiver.
func (t Trits) Get3() Trint3 {
	return Trint3(int(t[0]) + 3*int(t[1]) + 9*int(t[2]))
}

// String renders the sequence with '-', '0', '+' glyphs.
func (t Trits) String() string {
	var b strings.Builder
	b.Grow(len(t))
	for _, v := range t {
		switch v {
		case -1:
			b.WriteByte('-')
		case 0:
			b.WriteByte('0')
		default:
			b.WriteByte('+')
		}
	}
	return b.String()
}

// mods3 is the balanced residue of v mod 3, in {-1, 0, +1}.
func mods3(v int) int {
	r := v % 3
	if r > 1 {
		r -= 3
	} else if r < -1 {
		r += 3
	}
	return r
}
