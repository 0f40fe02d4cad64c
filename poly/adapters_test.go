package poly

import "testing"

func TestConvMatchesLattigo(t *testing.T) {
	var a, b Poly
	a.SmallFromTrits(pseudoTrits(N, 51))
	b.SmallFromTrits(pseudoTrits(N, 52))

	want, err := ConvRef(&a, &b)
	if err != nil {
		t.Fatalf("ConvRef: %v", err)
	}

	a.NTT()
	b.NTT()
	a.Conv(&b)
	a.INTT()
	if a != *want {
		t.Fatal("hand-rolled NTT product disagrees with lattigo")
	}
}
