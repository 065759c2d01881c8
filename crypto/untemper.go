package crypto

// InvertRightShift returns x such that y == x ^ (x >> shift), for shift in
// [1, 31].
//
// The top shift bits of y equal those of x. Each lower bit i is
// y_i ^ x_(i+shift), and bit i+shift is already known when bits are
// recovered from the top down.
func InvertRightShift(y uint32, shift uint) uint32 {
	x := y & (^uint32(0) << (w - shift))
	for bit := uint32(1) << (w - 1 - shift); bit != 0; bit >>= 1 {
		x |= (y ^ x>>shift) & bit
	}
	return x
}

// InvertLeftShift returns x such that y == x ^ ((x << shift) & mask), for
// shift in [1, 31]. Bits are recovered from the bottom up.
func InvertLeftShift(y uint32, shift uint, mask uint32) uint32 {
	x := y & (1<<shift - 1)
	for bit := uint32(1) << shift; bit != 0; bit <<= 1 {
		x |= (y ^ (x<<shift)&mask) & bit
	}
	return x
}

// Untemper inverts Temper.
func Untemper(y uint32) uint32 {
	y = InvertRightShift(y, l)
	y = InvertLeftShift(y, t, c)
	y = InvertLeftShift(y, s, b)
	return InvertRightShift(y, u)
}

// CloneMT19937 returns a generator that continues the sequence whose
// previous n outputs were outputs, in order. outputs must start right after
// a twist, which is the case for the first n outputs of a seeded generator
// and every n outputs after that.
func CloneMT19937(outputs [n]uint32) *MT19937 {
	var state [n]uint32
	for i, y := range outputs {
		state[i] = Untemper(y)
	}
	return MT19937FromState(state)
}
