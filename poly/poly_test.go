package poly

import (
	"testing"

	"ternary-kem/trits"
)

func TestTritsRoundtrip(t *testing.T) {
	var p Poly
	s := uint32(3)
	for i := range p.c {
		s = s*1664525 + 1013904223
		p.c[i] = int32(s % Q)
	}
	buf := trits.New(TritSize)
	p.ToTrits(buf)
	var q Poly
	if !q.FromTrits(buf) {
		t.Fatal("FromTrits rejected own serialization")
	}
	if p != q {
		t.Fatal("trit serialization roundtrip mismatch")
	}
}

func TestFromTritsRejectsOutOfRange(t *testing.T) {
	buf := trits.New(TritSize)
	// 9 trits all +1 decode to (3^9-1)/2 = 9841 > (Q-1)/2
	for k := 0; k < TritsPerCoeff; k++ {
		buf[k] = 1
	}
	var p Poly
	if p.FromTrits(buf) {
		t.Fatal("coefficient 9841 must be rejected")
	}
}

func TestRoundToTrits(t *testing.T) {
	var p Poly
	p.c[0] = 5              // balanced 5, mods 3 = -1
	p.c[1] = Q - 5          // balanced -5, mods 3 = +1
	p.c[2] = 6              // balanced 6, mods 3 = 0
	p.c[3] = (Q - 1) / 2    // balanced 6144, mods 3 = 0 (6144 = 3*2048)
	p.c[4] = (Q-1)/2 + 1    // balanced -6144
	out := trits.New(N)
	p.RoundToTrits(out)
	want := []trits.Trit{-1, 1, 0, 0, 0}
	for i, w := range want {
		if out[i] != w {
			t.Fatalf("round coeff %d = %d, want %d", i, out[i], w)
		}
	}
}

func TestAddSubSmall(t *testing.T) {
	var p Poly
	src := pseudoTrits(N, 31)
	delta := pseudoTrits(N, 32)
	p.SmallFromTrits(src)
	q := p
	q.AddSmall(delta)
	q.SubSmall(delta)
	if p != q {
		t.Fatal("AddSmall/SubSmall do not cancel")
	}
}

func TestDecapAlgebra(t *testing.T) {
	// round(t * (1+3f)) over the ring recovers the additive ternary mask:
	// with y = r*h + m (m ternary) and h = 3g/(1+3f),
	// y*(1+3f) = 3rg + m + 3mf, which is m mod 3.
	ft := pseudoTrits(N, 41)
	gt := pseudoTrits(N, 42)
	rt := pseudoTrits(N, 43)
	mt := pseudoTrits(N, 44)

	var f, g Poly
	f.SmallFromTrits(ft)
	f.SmallMul3()
	f.Small3Add1()
	f.NTT()
	g.SmallFromTrits(gt)
	g.SmallMul3()
	g.NTT()
	if !f.HasInv() || !g.HasInv() {
		t.Skip("sample keys not invertible")
	}
	h := f
	h.Inv()
	h.Conv(&g)

	var y Poly
	y.SmallFromTrits(rt)
	y.NTT()
	y.Conv(&h)
	y.INTT()
	y.AddSmall(mt)

	r := y
	r.NTT()
	r.Conv(&f)
	r.INTT()
	got := trits.New(N)
	r.RoundToTrits(got)
	if !got.Equal(mt) {
		t.Fatal("lattice decode did not recover the ternary mask")
	}
}
