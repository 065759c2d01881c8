package crypto

import (
	"encoding/binary"
	"math/bits"
)

// sha1Rounds lists the boolean function and additive constant for each
// group of 20 steps.
var sha1Rounds = [4]struct {
	f func(b, c, d uint32) uint32
	k uint32
}{
	{func(b, c, d uint32) uint32 { return b&c | ^b&d }, 0x5A827999},
	{func(b, c, d uint32) uint32 { return b ^ c ^ d }, 0x6ED9EBA1},
	{func(b, c, d uint32) uint32 { return b&c | b&d | c&d }, 0x8F1BBCDC},
	{func(b, c, d uint32) uint32 { return b ^ c ^ d }, 0xCA62C1D6},
}

func (dg *SHA1) block(p []byte) {
	var w [80]uint32

	h0, h1, h2, h3, h4 := dg.h[0], dg.h[1], dg.h[2], dg.h[3], dg.h[4]
	for len(p) >= mdChunk {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[4*i:])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4
		for i := 0; i < 80; i++ {
			r := &sha1Rounds[i/20]
			t := bits.RotateLeft32(a, 5) + r.f(b, c, d) + e + r.k + w[i]
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[mdChunk:]
	}
	dg.h[0], dg.h[1], dg.h[2], dg.h[3], dg.h[4] = h0, h1, h2, h3, h4
}
