package poly

import (
	"errors"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// Lattigo bridge. The hand-rolled transform in ntt.go owns the wire semantics
// (balanced coefficients, 9-trit codec); lattigo serves as an independent
// reference for the ring product in differential tests and key checks.

// BuildRing returns the single-limb lattigo ring matching (N, Q).
func BuildRing() (*ring.Ring, error) {
	return ring.NewRing(N, []uint64{Q})
}

// ToRingPoly copies a coefficient-form polynomial into a lattigo poly.
func ToRingPoly(r *ring.Ring, p *Poly) *ring.Poly {
	out := r.NewPoly()
	for i := 0; i < N; i++ {
		out.Coeffs[0][i] = uint64(p.c[i])
	}
	return out
}

// FromRingPoly copies a lattigo poly back into coefficient form.
func FromRingPoly(r *ring.Ring, a *ring.Poly) *Poly {
	var out Poly
	for i := 0; i < N; i++ {
		out.c[i] = int32(a.Coeffs[0][i])
	}
	return &out
}

// ConvRef computes the negacyclic product of two coefficient-form
// polynomials through lattigo's NTT. Coefficient form in and out.
func ConvRef(a, b *Poly) (*Poly, error) {
	r, err := BuildRing()
	if err != nil {
		return nil, err
	}
	if r.Modulus[0] != Q {
		return nil, errors.New("poly: lattigo modulus mismatch")
	}
	pa := ToRingPoly(r, a)
	pb := ToRingPoly(r, b)
	r.MForm(pa, pa)
	r.MForm(pb, pb)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pb, res)
	r.InvNTT(res, res)
	r.InvMForm(res, res)
	return FromRingPoly(r, res), nil
}
