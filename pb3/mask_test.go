package pb3

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ternary-kem/spongos"
	"ternary-kem/trits"
)

func TestMaskTryteRoundtrip(t *testing.T) {
	buf := trits.New(81)
	w := &Mask{S: spongos.New()}
	wb := buf
	for d := -13; d <= 13; d++ {
		w.Wrap3(&wb, trits.Trint3(d))
	}

	u := &Mask{S: spongos.New()}
	ub := buf
	for d := -13; d <= 13; d++ {
		got, err := u.Unwrap3(&ub)
		require.NoError(t, err)
		require.Equal(t, trits.Trint3(d), got)
	}
	require.Empty(t, ub)

	// both cursors saw the same stream: states agree
	sa, sb := trits.New(81), trits.New(81)
	w.S.Commit()
	u.S.Commit()
	w.S.Squeeze(sa)
	u.S.Squeeze(sb)
	require.True(t, sa.Equal(sb), "wrap and unwrap sponge states diverged")
}

func TestMaskNRoundtrip(t *testing.T) {
	src := trits.New(500)
	for i := range src {
		src[i] = trits.Trit(i%3 - 1)
	}
	buf := trits.New(500)
	keyed := func() *spongos.Spongos {
		s := spongos.New()
		k := trits.New(spongos.KeySize)
		for i := range k {
			k[i] = trits.Trit(i%3 - 1)
		}
		s.Absorb(k)
		s.Commit()
		return s
	}

	w := &Mask{S: keyed()}
	wb := buf
	w.WrapN(&wb, src.Take(123))
	w.WrapN(&wb, src.Drop(123))
	require.Empty(t, wb)
	require.False(t, buf.Equal(src), "masked buffer must not equal plaintext")

	u := &Mask{S: keyed()}
	ub := buf
	dst := trits.New(500)
	require.NoError(t, u.UnwrapN(&ub, dst.Take(123)))
	require.NoError(t, u.UnwrapN(&ub, dst.Drop(123)))
	require.True(t, dst.Equal(src))
}

func TestUnwrap3Eof(t *testing.T) {
	u := &Mask{S: spongos.New()}
	b := trits.New(2)
	_, err := u.Unwrap3(&b)
	require.ErrorIs(t, err, ErrEof)
	require.Len(t, b, 2, "failed unwrap must not advance the buffer")
}

func TestUnwrapNEof(t *testing.T) {
	u := &Mask{S: spongos.New()}
	b := trits.New(10)
	err := u.UnwrapN(&b, trits.New(11))
	require.ErrorIs(t, err, ErrEof)
	require.Len(t, b, 10)
}
