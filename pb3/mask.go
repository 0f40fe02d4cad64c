package pb3

import (
	"ternary-kem/spongos"
	"ternary-kem/trits"
)

// Mask is the `mask` command: values pass through the sponge's encrypt/
// decrypt streams on their way into and out of the buffer, so both sides
// hold identical sponge states after processing equivalent inputs.
type Mask struct {
	S *spongos.Spongos
}

var (
	_ Wrap   = (*Mask)(nil)
	_ Unwrap = (*Mask)(nil)
)

// Wrap3 encodes the tryte into the next 3 trits of b and encrypts them in
// place.
func (m *Mask) Wrap3(b *trits.Trits, d trits.Trint3) {
	b0 := b.Advance(3)
	b0.Put3(d)
	m.S.Encr(b0, b0)
}

// WrapN encrypts x into the next len(x) trits of b.
func (m *Mask) WrapN(b *trits.Trits, x trits.Trits) {
	m.S.Encr(x, b.Advance(len(x)))
}

// Unwrap3 decrypts the next 3 trits of b into a scratch buffer and
// decodes the tryte. Fails with ErrEof if fewer than 3 trits remain.
func (m *Mask) Unwrap3(b *trits.Trits) (trits.Trint3, error) {
	if err := guard(3 <= len(*b), ErrEof); err != nil {
		return 0, err
	}
	b0 := b.Advance(3)
	d := trits.New(3)
	m.S.Decr(b0, d)
	return d.Get3(), nil
}

// UnwrapN decrypts the next len(x) trits of b into x. Fails with ErrEof
// if b is shorter than x.
func (m *Mask) UnwrapN(b *trits.Trits, x trits.Trits) error {
	if err := guard(len(x) <= len(*b), ErrEof); err != nil {
		return err
	}
	m.S.Decr(b.Advance(len(x)), x)
	return nil
}
