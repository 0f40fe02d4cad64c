// Package prng derives deterministic trit streams from a fixed-size key
// and an ordered list of nonces through a fresh sponge per call.
package prng

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"ternary-kem/spongos"
	"ternary-kem/trits"
)

// KeySize is the PRNG key width in trits.
const KeySize = 243

// PRNG holds the generation key. The sponge state is rebuilt from the key
// on every call, so Gens is a pure function of its arguments.
type PRNG struct {
	key trits.Trits
}

// New constructs a PRNG from a KeySize-trit key. The key is copied.
func New(key trits.Trits) *PRNG {
	if len(key) != KeySize {
		panic(fmt.Sprintf("prng: key size %d, want %d", len(key), KeySize))
	}
	return &PRNG{key: key.Clone()}
}

// Gens fills out deterministically from the key and the ordered nonces:
// a fresh sponge absorbs the key, then every nonce, with a commit after
// each absorbed item for domain separation, and squeezes len(out) trits.
func (p *PRNG) Gens(nonces []trits.Trits, out trits.Trits) {
	s := spongos.New()
	s.Absorb(p.key)
	s.Commit()
	for _, n := range nonces {
		s.Absorb(n)
		s.Commit()
	}
	s.Squeeze(out)
}

// KeyFromSeed expands arbitrary seed bytes into a KeySize-trit key with
// SHAKE-256. Output bytes are rejection sampled below 243 = 3^5 and each
// accepted byte decodes to 5 balanced trits.
func KeyFromSeed(seed []byte) trits.Trits {
	h := sha3.NewShake256()
	h.Write(seed)
	key := trits.New(KeySize)
	var b [1]byte
	for i := 0; i < KeySize; i += 5 {
		for {
			if _, err := h.Read(b[:]); err != nil {
				panic(fmt.Sprintf("prng: shake read: %v", err))
			}
			if b[0] < 243 {
				break
			}
		}
		v := int(b[0])
		for k := 0; k < 5 && i+k < KeySize; k++ {
			r := v % 3
			v /= 3
			key[i+k] = trits.Trit(r - 1)
		}
	}
	return key
}
