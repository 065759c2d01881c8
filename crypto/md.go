package crypto

import (
	"encoding/binary"
	"fmt"
)

// mdChunk is the block size shared by MD4 and SHA-1.
const mdChunk = 64

// mdDigest holds the buffering and length accounting of a Merkle–Damgård
// hash. The chaining value lives in the enclosing type, which passes its
// compression function to write and finish; the compression function is
// given a whole number of 64-byte blocks.
//
// Between calls the buffer always holds fewer than 64 bytes.
type mdDigest struct {
	x   [mdChunk]byte
	nx  int
	len uint64

	// done is set by finish. A finished digest rejects further input.
	done bool
}

func (d *mdDigest) reset(n uint64) {
	d.nx = 0
	d.len = n
	d.done = false
}

func (d *mdDigest) write(p []byte, block func(p []byte)) {
	if d.done {
		panic("crypto: write to finished hash")
	}
	d.len += uint64(len(p))
	d.absorb(p, block)
}

// absorb buffers p, compressing full blocks. It does not count p toward the
// message length.
func (d *mdDigest) absorb(p []byte, block func(p []byte)) {
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == mdChunk {
			block(d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= mdChunk {
		n := len(p) &^ (mdChunk - 1)
		block(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// finish appends padding for the buffered data and the total length, then
// compresses the final block or blocks.
func (d *mdDigest) finish(order binary.ByteOrder, block func(p []byte)) {
	if d.done {
		panic("crypto: hash finished twice")
	}
	var tmp [2 * mdChunk]byte
	pad := appendMDPadding(tmp[:0], d.nx, d.len, order)
	d.absorb(pad, block)
	if d.nx != 0 {
		panic(fmt.Sprintf("d.nx = %d after padding", d.nx))
	}
	d.done = true
}

// appendMDPadding appends a 0x80 byte, enough zeros to bring a buffer
// holding fill bytes to 56 bytes modulo 64, and the bit length of an n-byte
// message in the given byte order.
func appendMDPadding(dst []byte, fill int, n uint64, order binary.ByteOrder) []byte {
	zeros := (mdChunk + 55 - fill%mdChunk) % mdChunk
	dst = append(dst, 0x80)
	for i := 0; i < zeros; i++ {
		dst = append(dst, 0)
	}
	var l [8]byte
	order.PutUint64(l[:], n<<3)
	return append(dst, l[:]...)
}
