package crypto

import (
	"encoding/binary"
	"math/bits"
)

// md4Rounds describes the three 16-step rounds of the MD4 compression
// function. Step j of a round updates register (4-j%4)%4 of (a, b, c, d)
// using the next three registers in cyclic order, message word x[j] and
// rotation s[j%4].
var md4Rounds = [3]struct {
	f func(x, y, z uint32) uint32
	k uint32
	x [16]uint8
	s [4]int
}{
	{
		f: func(x, y, z uint32) uint32 { return x&y | ^x&z },
		k: 0,
		x: [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		s: [4]int{3, 7, 11, 19},
	},
	{
		f: func(x, y, z uint32) uint32 { return x&y | x&z | y&z },
		k: 0x5A827999,
		x: [16]uint8{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15},
		s: [4]int{3, 5, 9, 13},
	},
	{
		f: func(x, y, z uint32) uint32 { return x ^ y ^ z },
		k: 0x6ED9EBA1,
		x: [16]uint8{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15},
		s: [4]int{3, 9, 11, 15},
	},
}

func (dg *MD4) block(p []byte) {
	var x [16]uint32

	for len(p) >= mdChunk {
		for i := range x {
			x[i] = binary.LittleEndian.Uint32(p[4*i:])
		}

		r := dg.s
		for _, round := range &md4Rounds {
			for j, k := range round.x {
				t := (4 - j%4) % 4
				a := r[t] + round.f(r[(t+1)%4], r[(t+2)%4], r[(t+3)%4]) + x[k] + round.k
				r[t] = bits.RotateLeft32(a, round.s[j%4])
			}
		}

		for i := range dg.s {
			dg.s[i] += r[i]
		}

		p = p[mdChunk:]
	}
}
