// Package pb3 carries the masking command of the wire framing: dual
// wrap/unwrap cursors that move a trit buffer and a sponge in lockstep.
package pb3

import "errors"

// ErrEof reports an input buffer shorter than the requested read.
var ErrEof = errors.New("pb3: unexpected end of buffer")

// guard returns err unless cond holds.
func guard(cond bool, err error) error {
	if !cond {
		return err
	}
	return nil
}
