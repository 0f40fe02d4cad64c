package poly

// Number-theoretic transform over Z_q, negacyclic for x^N + 1.
//
// psi = 7 is a primitive 2N-th root of unity mod q (psi^N = -1); the
// forward transform scales coefficient i by psi^i and then applies the
// cyclic size-N transform at omega = psi^2. The inverse undoes both and
// multiplies by N^-1 = 12277.

const (
	psi    = 7
	psiInv = 8778 // psi^(q-2) mod q
	omega  = 49
	nInv   = 12277 // N^-1 mod q, 12*N = q-1 so N^-1 = -12
)

var (
	psiPow    [N]int32
	psiInvPow [N]int32
	bitRev    [N]int32
)

func init() {
	p, pi := int32(1), int32(1)
	for i := 0; i < N; i++ {
		psiPow[i] = p
		psiInvPow[i] = pi
		p = mulMod(p, psi)
		pi = mulMod(pi, psiInv)
	}
	logN := 0
	for 1<<logN < N {
		logN++
	}
	for i := 0; i < N; i++ {
		r := 0
		for b := 0; b < logN; b++ {
			r = r<<1 | i>>b&1
		}
		bitRev[i] = int32(r)
	}
}

// NTT transforms the polynomial in place from coefficient form to NTT form.
func (p *Poly) NTT() {
	for i := range p.c {
		p.c[i] = mulMod(p.c[i], psiPow[i])
	}
	nttCyclic(&p.c, omega)
}

// INTT transforms the polynomial in place from NTT form back to
// coefficient form. INTT(NTT(p)) == p.
func (p *Poly) INTT() {
	nttCyclic(&p.c, powMod(omega, Q-2))
	for i := range p.c {
		p.c[i] = mulMod(mulMod(p.c[i], nInv), psiInvPow[i])
	}
}

// Conv multiplies by o coefficient-wise. Both polynomials must be in NTT
// form; the product is in NTT form.
func (p *Poly) Conv(o *Poly) {
	for i := range p.c {
		p.c[i] = mulMod(p.c[i], o.c[i])
	}
}

// HasInv reports whether the polynomial is invertible, i.e. no evaluation
// is zero. NTT form.
func (p *Poly) HasInv() bool {
	for _, v := range p.c {
		if v == 0 {
			return false
		}
	}
	return true
}

// Inv replaces every evaluation with its modular inverse. NTT form;
// requires HasInv.
func (p *Poly) Inv() {
	for i := range p.c {
		p.c[i] = powMod(p.c[i], Q-2)
	}
}

// nttCyclic is the in-place iterative Cooley-Tukey transform of size N at
// the primitive N-th root of unity `root`, bit-reversal first.
func nttCyclic(a *[N]int32, root int32) {
	for i := 0; i < N; i++ {
		if j := bitRev[i]; int32(i) < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	for size := 2; size <= N; size <<= 1 {
		w := powMod(root, int32(N/size))
		half := size / 2
		for start := 0; start < N; start += size {
			wj := int32(1)
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := mulMod(wj, a[start+j+half])
				a[start+j] = addMod(u, v)
				a[start+j+half] = subMod(u, v)
				wj = mulMod(wj, w)
			}
		}
	}
}

func addMod(a, b int32) int32 {
	v := a + b
	if v >= Q {
		v -= Q
	}
	return v
}

func subMod(a, b int32) int32 {
	v := a - b
	if v < 0 {
		v += Q
	}
	return v
}

// mulMod multiplies residues in [0, Q); the product fits in int32.
func mulMod(a, b int32) int32 {
	return a * b % Q
}

func powMod(a int32, e int32) int32 {
	r := int32(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			r = mulMod(r, base)
		}
		base = mulMod(base, base)
		e >>= 1
	}
	return r
}
