package ntru

// Package ntru implements the ternary NTRU key encapsulation mechanism:
// key generation from small polynomials, encapsulation of a short session
// key into a polynomial-sized capsule, and decapsulation by lattice
// decoding plus sponge tag verification.
//
// The ring arithmetic lives in package poly, the authenticated masking in
// package spongos, and the deterministic randomness in package prng. A
// sponge instance may be supplied externally to bind an encapsulation
// into a larger framing context; the fresh-instance entry points cover
// the standalone case.
