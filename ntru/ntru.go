package ntru

import (
	"errors"
	"fmt"
	"os"

	"ternary-kem/poly"
	"ternary-kem/prng"
	"ternary-kem/spongos"
	"ternary-kem/trits"
)

const (
	// PKSize is the public key size in trits.
	PKSize = poly.TritSize
	// PkidSize is the public key id size in trits.
	PkidSize = 81
	// SKSize is the private key size in trits.
	SKSize = poly.N
	// KeySize is the session key size in trits.
	KeySize = spongos.KeySize
	// EKeySize is the capsule (encapsulated key) size in trits.
	EKeySize = poly.TritSize

	// genNonceSize is the width of the keygen retry counter.
	genNonceSize = 81
)

var (
	// ErrBadEncoding reports a trit string whose coefficients decode out
	// of range.
	ErrBadEncoding = errors.New("ntru: bad polynomial encoding")
	// ErrNotInvertible reports a parsed public polynomial with no inverse
	// in the NTT domain.
	ErrNotInvertible = errors.New("ntru: polynomial not invertible")
	// ErrDecapFailure is the uniform decapsulation failure: the capsule
	// did not parse, decode or authenticate.
	ErrDecapFailure = errors.New("ntru: decapsulation failure")
	// ErrGenExhausted reports keygen retry counter overflow; it should
	// not occur under a well seeded PRNG.
	ErrGenExhausted = errors.New("ntru: key generation exhausted")
)

// Pkid is a short public key handle, the first PkidSize trits of the
// public key. It is a lookup hint, not a commitment; callers handle
// collisions.
type Pkid = trits.Trits

// PrivateKey holds the secret trits sk and the precomputed polynomial
// f = NTT(1+3*sk) used during decapsulation. Immutable after Gen.
type PrivateKey struct {
	sk trits.Trits
	f  poly.Poly
}

// PublicKey holds the serialized public polynomial pk and its NTT form h.
// Equality (Equal) is defined on pk alone; no hash is defined. h is a
// precomputation.
// Immutable after construction.
type PublicKey struct {
	pk trits.Trits
	h  poly.Poly
}

// genStep checks the small polynomials f and g for suitability.
// On success f holds NTT(1+3f) and h holds NTT(3g/(1+3f)).
func genStep(f, g, h *poly.Poly) bool {
	// f := NTT(1+3f)
	f.SmallMul3()
	f.Small3Add1()
	f.NTT()

	// g := NTT(3g)
	g.SmallMul3()
	g.NTT()

	if !f.HasInv() || !g.HasInv() {
		return false
	}
	// h := NTT(3g/(1+3f))
	*h = *f
	h.Inv()
	h.Conv(g)
	return true
}

// genR derives candidate key material from (nonce, counter) until genStep
// accepts, then writes the secret trits into sk and the serialized public
// polynomial into pk.
func genR(p *prng.PRNG, nonce trits.Trits, f *poly.Poly, sk trits.Trits, h *poly.Poly, pk trits.Trits) error {
	if len(sk) != SKSize {
		panic(fmt.Sprintf("ntru: sk size %d, want %d", len(sk), SKSize))
	}
	if len(pk) != PKSize {
		panic(fmt.Sprintf("ntru: pk size %d, want %d", len(pk), PKSize))
	}

	i := trits.New(genNonceSize)
	r := trits.New(2 * SKSize)
	var g poly.Poly

	for attempt := 1; ; attempt++ {
		p.Gens([]trits.Trits{nonce, i}, r)
		f.SmallFromTrits(r.Take(SKSize))
		g.SmallFromTrits(r.Drop(SKSize))

		if genStep(f, &g, h) {
			dbg(os.Stderr, "[gen] accepted candidate on attempt %d\n", attempt)
			g = *h
			g.INTT()
			g.ToTrits(pk)
			r.Take(SKSize).CopyTo(sk)
			return nil
		}
		if !i.Inc() {
			return ErrGenExhausted
		}
	}
}

// Gen generates a keypair from prng and nonce. The private key carries
// the secret trits and NTT(1+3*sk); the public key carries the serialized
// polynomial and its NTT form.
func Gen(p *prng.PRNG, nonce trits.Trits) (*PrivateKey, *PublicKey, error) {
	sk := &PrivateKey{sk: trits.New(SKSize)}
	pk := &PublicKey{pk: trits.New(PKSize)}
	if err := genR(p, nonce, &sk.f, sk.sk, &pk.h, pk.pk); err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

// encrR encapsulates k under public polynomial h with randomness r,
// writing the capsule into y. r must alias the first SKSize trits of y:
// the serialized r*h overwrites it, and the encrypted key plus tag are
// written back over the same window before the final masking add.
func encrR(s *spongos.Spongos, h *poly.Poly, r, k, y trits.Trits) {
	var t poly.Poly

	// t(x) := r(x)*h(x)
	t.SmallFromTrits(r)
	t.NTT()
	t.Conv(h)
	t.INTT()

	// r := AE(r*h; k)
	t.ToTrits(y)
	s.Absorb(y)
	s.Commit()
	s.Encr(k, r.Take(KeySize))
	s.Squeeze(r.Drop(KeySize))

	// y := r*h + AE(r*h; k)
	t.AddSmall(r)
	t.ToTrits(y)
}

// EncrWith encapsulates the session key k under the public key using the
// supplied sponge instance, prng and nonce, and writes the capsule into
// y. len(k) must be KeySize and len(y) must be EKeySize; k must not
// overlap y.
func (pk *PublicKey) EncrWith(s *spongos.Spongos, p *prng.PRNG, nonce, k, y trits.Trits) {
	if len(k) != KeySize {
		panic(fmt.Sprintf("ntru: key size %d, want %d", len(k), KeySize))
	}
	if len(y) != EKeySize {
		panic(fmt.Sprintf("ntru: capsule size %d, want %d", len(y), EKeySize))
	}
	// Reuse the capsule prefix as randomness scratch.
	r := y.Take(SKSize)
	p.Gens([]trits.Trits{pk.pk, k, nonce}, r)
	encrR(s, &pk.h, r, k, y)
}

// Encr encapsulates with a fresh sponge instance.
func (pk *PublicKey) Encr(p *prng.PRNG, nonce, k, y trits.Trits) {
	pk.EncrWith(spongos.New(), p, nonce, k, y)
}

// decrR decapsulates the capsule y with the private polynomial
// f = NTT(1+3f), writing the session key into k.
func decrR(s *spongos.Spongos, f *poly.Poly, y, k trits.Trits) error {
	// t(x) := Y
	var t poly.Poly
	if !t.FromTrits(y) {
		return ErrDecapFailure
	}

	// r(x) := t(x)*(1+3f(x)) rounded mod 3
	r := t
	r.NTT()
	r.Conv(f)
	r.INTT()
	kt := trits.New(SKSize)
	r.RoundToTrits(kt)

	// t(x) := Y - r(x), the sender's masked r*h
	t.SubSmall(kt)
	rh := trits.New(EKeySize)
	t.ToTrits(rh)

	// K := AD(rh; kt)
	s.Absorb(rh)
	s.Commit()
	s.Decr(kt.Take(KeySize), k)
	m := trits.New(SKSize - KeySize)
	s.Squeeze(m)
	if !equalCT(m, kt.Drop(KeySize)) {
		return ErrDecapFailure
	}
	return nil
}

// DecrWith decapsulates the capsule y using the supplied sponge instance,
// writing the recovered session key into k. The error is uniform over
// parse, decode and tag failures. len(y) must be EKeySize and len(k)
// must be KeySize.
func (sk *PrivateKey) DecrWith(s *spongos.Spongos, y, k trits.Trits) error {
	if len(y) != EKeySize {
		panic(fmt.Sprintf("ntru: capsule size %d, want %d", len(y), EKeySize))
	}
	if len(k) != KeySize {
		panic(fmt.Sprintf("ntru: key size %d, want %d", len(k), KeySize))
	}
	return decrR(s, &sk.f, y, k)
}

// Decr decapsulates with a fresh sponge instance.
func (sk *PrivateKey) Decr(y, k trits.Trits) error {
	return sk.DecrWith(spongos.New(), y, k)
}

// Trits returns the secret trits. Callers own their handling and must
// not modify them.
func (sk *PrivateKey) Trits() trits.Trits {
	return sk.sk
}

// PrivateKeyFromTrits reconstructs a private key from its SKSize-trit
// secret, recomputing the decapsulation polynomial NTT(1+3*sk). The
// input is copied.
func PrivateKeyFromTrits(t trits.Trits) (*PrivateKey, error) {
	if len(t) != SKSize {
		return nil, ErrBadEncoding
	}
	sk := &PrivateKey{sk: t.Clone()}
	sk.f.SmallFromTrits(sk.sk)
	sk.f.SmallMul3()
	sk.f.Small3Add1()
	sk.f.NTT()
	return sk, nil
}

// pkFromTrits parses and validates a public polynomial: it must decode in
// range and be invertible in the NTT domain.
func pkFromTrits(pk trits.Trits) (*poly.Poly, error) {
	var h poly.Poly
	if !h.FromTrits(pk) {
		return nil, ErrBadEncoding
	}
	h.NTT()
	if !h.HasInv() {
		return nil, ErrNotInvertible
	}
	return &h, nil
}

// PublicKeyFromTrits reconstructs a public key from its PKSize-trit
// serialization, revalidating the polynomial. The input is copied.
func PublicKeyFromTrits(t trits.Trits) (*PublicKey, error) {
	if len(t) != PKSize {
		return nil, ErrBadEncoding
	}
	h, err := pkFromTrits(t)
	if err != nil {
		return nil, err
	}
	return &PublicKey{pk: t.Clone(), h: *h}, nil
}

// Trits returns the serialized public polynomial. Callers must not
// modify it.
func (pk *PublicKey) Trits() trits.Trits {
	return pk.pk
}

// Id returns the public key identifier, the first PkidSize trits.
func (pk *PublicKey) Id() Pkid {
	return pk.pk.Take(PkidSize)
}

// Equal reports public key equality, defined on the trit serialization.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	return pk.pk.Equal(o.pk)
}

// String renders the public key trits.
func (pk *PublicKey) String() string {
	return pk.pk.String()
}

// equalCT compares two equal-length trit strings without branching on
// the contents.
func equalCT(a, b trits.Trits) bool {
	if len(a) != len(b) {
		panic("ntru: constant-time compare length mismatch")
	}
	var d trits.Trit
	for i := range a {
		d |= a[i] ^ b[i]
	}
	return d == 0
}
