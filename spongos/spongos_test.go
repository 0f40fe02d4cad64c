package spongos

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"ternary-kem/trits"
)

func pattern(n int, phase int) trits.Trits {
	out := trits.New(n)
	for i := range out {
		out[i] = trits.Trit((i+phase)%3 - 1)
	}
	return out
}

func TestDeterminism(t *testing.T) {
	a, b := New(), New()
	x := pattern(700, 0)
	ya, yb := trits.New(100), trits.New(100)
	a.Absorb(x.Clone())
	b.Absorb(x.Clone())
	a.Commit()
	b.Commit()
	a.Squeeze(ya)
	b.Squeeze(yb)
	if !ya.Equal(yb) {
		t.Fatal("identical op sequences squeezed different streams")
	}
}

func TestEncrDecrInverse(t *testing.T) {
	for _, n := range []int{1, 3, 243, Rate, Rate + 1, 1200} {
		e, d := New(), New()
		key := pattern(KeySize, 1)
		e.Absorb(key.Clone())
		e.Commit()
		d.Absorb(key.Clone())
		d.Commit()

		pt := pattern(n, 2)
		ct := trits.New(n)
		e.Encr(pt.Clone(), ct)
		back := trits.New(n)
		d.Decr(ct.Clone(), back)
		if !back.Equal(pt) {
			t.Fatalf("n=%d: decrypt is not the inverse of encrypt", n)
		}
		// both sides end in the same state
		sa, sb := trits.New(81), trits.New(81)
		e.Commit()
		d.Commit()
		e.Squeeze(sa)
		d.Squeeze(sb)
		if !sa.Equal(sb) {
			t.Fatalf("n=%d: sponge states diverged after encr/decr", n)
		}
	}
}

func TestEncrInPlace(t *testing.T) {
	e, ref := New(), New()
	pt := pattern(500, 0)
	want := trits.New(500)
	ref.Encr(pt.Clone(), want)

	buf := pt.Clone()
	e.Encr(buf, buf)
	if !buf.Equal(want) {
		t.Fatal("exact-alias encrypt differs from two-buffer encrypt")
	}
}

func TestSplitAbsorbEqualsJoint(t *testing.T) {
	a, b := New(), New()
	x := pattern(400, 0)
	a.Absorb(x.Take(150).Clone())
	a.Absorb(x.Drop(150).Clone())
	b.Absorb(x.Clone())
	a.Commit()
	b.Commit()
	ya, yb := trits.New(81), trits.New(81)
	a.Squeeze(ya)
	b.Squeeze(yb)
	if !ya.Equal(yb) {
		t.Fatal("absorb(A);absorb(B) differs from absorb(A||B)")
	}
}

func TestCommitSeparates(t *testing.T) {
	a, b := New(), New()
	x := pattern(400, 0)
	a.Absorb(x.Take(150).Clone())
	a.Commit()
	a.Absorb(x.Drop(150).Clone())
	b.Absorb(x.Clone())
	a.Commit()
	b.Commit()
	ya, yb := trits.New(81), trits.New(81)
	a.Squeeze(ya)
	b.Squeeze(yb)
	if ya.Equal(yb) {
		t.Fatal("commit between absorbs must change the state")
	}
}

func TestSqueezeCloneConsistent(t *testing.T) {
	a := New()
	a.Absorb(pattern(100, 1))
	a.Commit()
	y1, y2 := trits.New(Rate), trits.New(Rate)
	a.Squeeze(y1.Take(243))
	b := a.Clone()
	a.Squeeze(y1.Drop(243))
	b.Squeeze(y2.Drop(243))
	if !y1.Drop(243).Equal(y2.Drop(243)) {
		t.Fatal("clone diverged")
	}
	zero := trits.New(243)
	if y1.Take(243).Equal(zero) {
		t.Fatal("squeezed stream is degenerate")
	}
}

func TestCloneIndependent(t *testing.T) {
	a := New()
	a.Absorb(pattern(10, 0))
	b := a.Clone()
	a.Absorb(pattern(10, 1))
	b.Absorb(pattern(10, 1))
	a.Commit()
	b.Commit()
	ya, yb := trits.New(30), trits.New(30)
	a.Squeeze(ya)
	b.Squeeze(yb)
	if !ya.Equal(yb) {
		t.Fatal("clone did not track the original")
	}
}

func TestEncrDecrProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)
	properties.Property("decr inverts encr", prop.ForAll(
		func(raw []int8) bool {
			pt := trits.New(len(raw))
			for i, v := range raw {
				pt[i] = trits.Trit(v)
			}
			e, d := New(), New()
			ct := trits.New(len(pt))
			e.Encr(pt.Clone(), ct)
			back := trits.New(len(pt))
			d.Decr(ct, back)
			return back.Equal(pt)
		},
		gen.SliceOf(gen.Int8Range(-1, 1)),
	))
	properties.TestingRun(t)
}
