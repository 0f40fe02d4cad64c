package trits

import "fmt"

// Canonical byte packing: 5 trits per byte. Each group of 5 trits is read
// little-endian as a balanced value in [-121, +121] and biased by +121 so
// the byte lands in [0, 242]. A trailing partial group is zero padded.

// EncodedLen returns the byte length of the packing of n trits.
func EncodedLen(n int) int {
	return (n + 4) / 5
}

// Encode packs the sequence into bytes.
func Encode(t Trits) []byte {
	out := make([]byte, EncodedLen(len(t)))
	for i := range out {
		v := 0
		for k := 4; k >= 0; k-- {
			j := 5*i + k
			v *= 3
			if j < len(t) {
				v += int(t[j])
			}
		}
		out[i] = byte(v + 121)
	}
	return out
}

// Decode unpacks n trits from b. It fails if b has the wrong length, a
// byte is out of the [0, 242] range, or padding trits are nonzero.
func Decode(b []byte, n int) (Trits, error) {
	if len(b) != EncodedLen(n) {
		return nil, fmt.Errorf("trits: encoded length %d, want %d", len(b), EncodedLen(n))
	}
	out := New(n)
	for i, c := range b {
		if c > 242 {
			return nil, fmt.Errorf("trits: byte %d out of range", i)
		}
		v := int(c) - 121
		for k := 0; k < 5; k++ {
			r := mods3(v)
			v = (v - r) / 3
			j := 5*i + k
			if j < n {
				out[j] = Trit(r)
			} else if r != 0 {
				return nil, fmt.Errorf("trits: nonzero padding in final byte")
			}
		}
	}
	return out, nil
}
