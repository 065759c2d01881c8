package crypto

import "fmt"

// XOR stores x^y in buf, growing it if needed, and returns it. buf may alias
// x or y.
func XOR(buf, x, y []byte) []byte {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	buf = grow(buf, len(x))
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf
}

func XORByte(buf, x []byte, y byte) []byte {
	buf = grow(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ y
	}
	return buf
}

// XORRepeat XORs x against y repeated to the length of x.
func XORRepeat(buf, x, y []byte) []byte {
	if len(y) == 0 {
		panic("empty key")
	}
	buf = grow(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ y[i%len(y)]
	}
	return buf
}

func grow(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
