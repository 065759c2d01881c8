package crypto

import "fmt"

// MT19937StateSize is the number of 32-bit words of MT19937 state.
const MT19937StateSize = n

const (
	w = 32
	n = 624
	m = 397
	r = 31
	a = 0x9908B0DF
	u = 11
	d = 0xFFFFFFFF
	s = 7
	b = 0x9D2C5680
	t = 15
	c = 0xEFC60000
	l = 18
	f = 1812433253

	lowerMask uint32 = (1 << r) - 1
	upperMask uint32 = ^lowerMask
)

// MT19937 is the 32-bit Mersenne Twister. Create one with NewMT19937 or
// MT19937FromState.
type MT19937 struct {
	mt [n]uint32

	// index is the next word of mt to temper. When it reaches n, the state is
	// twisted before the next output.
	index int
}

// NewMT19937 returns a generator seeded with seed.
func NewMT19937(seed uint32) *MT19937 {
	src := new(MT19937)
	src.Seed(seed)
	return src
}

// MT19937FromState returns a generator whose untempered state is state. The
// first output is produced after twisting state, exactly as for a generator
// that has just produced the n outputs that state was recovered from.
func MT19937FromState(state [n]uint32) *MT19937 {
	return &MT19937{mt: state, index: n}
}

// Seed resets src to the state derived from seed.
func (src *MT19937) Seed(seed uint32) {
	src.index = n
	src.mt[0] = seed
	for i := 1; i < n; i++ {
		src.mt[i] = f*(src.mt[i-1]^(src.mt[i-1]>>(w-2))) + uint32(i)
	}
}

// Uint32 returns the next output.
func (src *MT19937) Uint32() uint32 {
	if src.index >= n {
		src.twist()
	}
	y := Temper(src.mt[src.index])
	src.index++
	return y
}

func (src *MT19937) twist() {
	for i := 0; i < n; i++ {
		x := src.mt[i]&upperMask | src.mt[(i+1)%n]&lowerMask
		xA := x >> 1
		if x%2 != 0 {
			xA ^= a
		}
		src.mt[i] = src.mt[(i+m)%n] ^ xA
	}
	src.index = 0
}

// Temper applies the MT19937 output transform to a state word.
func Temper(y uint32) uint32 {
	y ^= (y >> u) & d
	y ^= (y << s) & b
	y ^= (y << t) & c
	y ^= y >> l
	return y
}

// MT19937Stream is a cipher.Stream whose keystream is the output of an
// MT19937 generator, each word taken most significant byte first.
type MT19937Stream struct {
	src MT19937

	// word holds the unused bytes of the current output in its high bits;
	// left is how many there are.
	word uint32
	left int
}

// NewMT19937Stream returns a keystream generator keyed by a 16-bit seed.
func NewMT19937Stream(seed uint16) *MT19937Stream {
	ms := new(MT19937Stream)
	ms.src.Seed(uint32(seed))
	return ms
}

func (ms *MT19937Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("len(dst) (%d) less than len(src) (%d)", len(dst), len(src)))
	}

	for i := range src {
		if ms.left == 0 {
			ms.word = ms.src.Uint32()
			ms.left = 4
		}
		dst[i] = src[i] ^ byte(ms.word>>24)
		ms.word <<= 8
		ms.left--
	}
}
