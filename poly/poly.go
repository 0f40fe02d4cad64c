// Package poly implements arithmetic in the ring R = Z_q[x]/(x^N + 1) with
// N = 1024 and q = 12289, together with the balanced-ternary coefficient
// codec used on the wire.
//
// A Poly is either in coefficient form or in NTT form (coefficient-wise
// evaluations at the odd powers of the 2N-th root of unity). The form is
// tracked by convention; every operation documents the form it consumes
// and produces. Coefficients are stored as residues in [0, q); the
// balanced representative in [-(q-1)/2, (q-1)/2] is materialized only by
// the serialization and rounding routines.
package poly

import "ternary-kem/trits"

const (
	// N is the ring degree.
	N = 1024
	// Q is the coefficient modulus, q = 12*2^10 + 1.
	Q = 12289
	// TritsPerCoeff is the width of one serialized coefficient:
	// 3^9 = 19683 covers the balanced range [-6144, 6144].
	TritsPerCoeff = 9
	// TritSize is the serialized size of a full polynomial.
	TritSize = N * TritsPerCoeff
)

// Poly is a degree-<N polynomial over Z_q.
type Poly struct {
	c [N]int32
}

// SmallFromTrits builds a coefficient-form polynomial whose first len(t)
// coefficients are the ternary values of t; the rest are zero. len(t)
// must not exceed N.
func (p *Poly) SmallFromTrits(t trits.Trits) {
	if len(t) > N {
		panic("poly: small source longer than ring degree")
	}
	for i, v := range t {
		p.c[i] = residue(int32(v))
	}
	for i := len(t); i < N; i++ {
		p.c[i] = 0
	}
}

// SmallMul3 multiplies every coefficient by 3. Coefficient form.
func (p *Poly) SmallMul3() {
	for i := range p.c {
		p.c[i] = (3 * p.c[i]) % Q
	}
}

// Small3Add1 adds 1 to the constant coefficient. Coefficient form.
func (p *Poly) Small3Add1() {
	p.c[0] = (p.c[0] + 1) % Q
}

// AddSmall adds the ternary polynomial t coefficient-wise, treating trits
// past len(t) as zero. Coefficient form.
func (p *Poly) AddSmall(t trits.Trits) {
	if len(t) > N {
		panic("poly: small source longer than ring degree")
	}
	for i, v := range t {
		p.c[i] = residue(p.c[i] + int32(v))
	}
}

// SubSmall subtracts the ternary polynomial t coefficient-wise. Coefficient
// form.
func (p *Poly) SubSmall(t trits.Trits) {
	if len(t) > N {
		panic("poly: small source longer than ring degree")
	}
	for i, v := range t {
		p.c[i] = residue(p.c[i] - int32(v))
	}
}

// FromTrits parses len(t)/TritsPerCoeff coefficients from their 9-trit
// balanced encoding. It reports false if any decoded value falls outside
// the balanced range. len(t) must equal TritSize. Produces coefficient
// form.
func (p *Poly) FromTrits(t trits.Trits) bool {
	if len(t) != TritSize {
		panic("poly: bad serialized size")
	}
	for i := 0; i < N; i++ {
		v := int32(0)
		for k := TritsPerCoeff - 1; k >= 0; k-- {
			v = 3*v + int32(t[TritsPerCoeff*i+k])
		}
		if v > (Q-1)/2 || v < -(Q-1)/2 {
			return false
		}
		p.c[i] = residue(v)
	}
	return true
}

// ToTrits serializes the balanced representative of every coefficient into
// 9 little-endian trits. len(out) must equal TritSize. Coefficient form.
func (p *Poly) ToTrits(out trits.Trits) {
	if len(out) != TritSize {
		panic("poly: bad serialized size")
	}
	for i := 0; i < N; i++ {
		v := balanced(p.c[i])
		for k := 0; k < TritsPerCoeff; k++ {
			r := mods3(v)
			out[TritsPerCoeff*i+k] = trits.Trit(r)
			v = (v - r) / 3
		}
	}
}

// RoundToTrits rounds every coefficient to its nearest ternary residue
// (balanced mod 3 of the balanced representative) and writes one trit per
// coefficient. len(out) must equal N. Coefficient form.
func (p *Poly) RoundToTrits(out trits.Trits) {
	if len(out) != N {
		panic("poly: bad rounded size")
	}
	for i := 0; i < N; i++ {
		out[i] = trits.Trit(mods3(balanced(p.c[i])))
	}
}

// residue maps v into [0, Q). v must be in (-Q, 2Q).
func residue(v int32) int32 {
	if v < 0 {
		return v + Q
	}
	if v >= Q {
		return v - Q
	}
	return v
}

// balanced maps a residue in [0, Q) to its representative in
// [-(Q-1)/2, (Q-1)/2].
func balanced(v int32) int32 {
	if v > (Q-1)/2 {
		return v - Q
	}
	return v
}

// mods3 is the balanced residue of v mod 3.
func mods3(v int32) int32 {
	r := v % 3
	if r > 1 {
		r -= 3
	} else if r < -1 {
		r += 3
	}
	return r
}
