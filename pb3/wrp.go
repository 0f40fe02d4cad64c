package pb3

import "ternary-kem/trits"

// Wrap writes values into an advancing trit buffer. Implementations may
// transform the written trits (masking) but must advance the buffer by
// the same amounts in the same order as their Unwrap dual.
type Wrap interface {
	// Wrap3 writes one tryte into the next 3 trits of b.
	Wrap3(b *trits.Trits, d trits.Trint3)
	// WrapN writes x into the next len(x) trits of b.
	WrapN(b *trits.Trits, x trits.Trits)
}

// Unwrap reads values back from an advancing trit buffer.
type Unwrap interface {
	// Unwrap3 reads one tryte from the next 3 trits of b.
	Unwrap3(b *trits.Trits) (trits.Trint3, error)
	// UnwrapN reads len(x) trits of b into x.
	UnwrapN(b *trits.Trits, x trits.Trits) error
}
