package crypto

import "fmt"

// BlockSize is the block size of every mode in this package, in bytes.
const BlockSize = 16

// PadLength returns the length of an n-byte message after PKCS#7 padding to
// a multiple of blockSize. At least one byte of padding is always added.
func PadLength(n, blockSize int) int {
	return n + blockSize - n%blockSize
}

// Pad appends src to dst followed by PKCS#7 padding that brings the
// appended length to a multiple of blockSize, and returns the extended
// buffer. dst may share storage with src as long as dst starts at or before
// src.
func Pad(dst, src []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("block size %d out of range [1, 255]", blockSize))
	}
	p := blockSize - len(src)%blockSize
	dst = append(dst, src...)
	for i := 0; i < p; i++ {
		dst = append(dst, byte(p))
	}
	return dst
}

// PadBlock returns a new n-byte block holding src followed by n-len(src)
// copies of the byte n-len(src). It fails with ErrOversizedBlock if src is
// longer than n.
func PadBlock(src []byte, n int) ([]byte, error) {
	if len(src) > n {
		return nil, fmt.Errorf("padding %d bytes to %d: %w", len(src), n, ErrOversizedBlock)
	}
	if n > 255 {
		panic(fmt.Sprintf("block size %d out of range [1, 255]", n))
	}
	block := make([]byte, n)
	copy(block, src)
	for i := len(src); i < n; i++ {
		block[i] = byte(n - len(src))
	}
	return block, nil
}

// Unpad returns buf with its PKCS#7 padding removed. The final byte v must
// satisfy 1 <= v <= BlockSize and the last v bytes must all equal v;
// otherwise Unpad returns ErrInvalidPadding. The result aliases buf.
func Unpad(buf []byte) ([]byte, error) {
	n := len(buf)
	if n == 0 {
		return nil, ErrInvalidPadding
	}
	v := int(buf[n-1])
	if v == 0 || v > BlockSize || v > n {
		return nil, fmt.Errorf("%w: final byte %#02x", ErrInvalidPadding, v)
	}
	for _, b := range buf[n-v:] {
		if int(b) != v {
			return nil, fmt.Errorf("%w: expected %d bytes of %#02x", ErrInvalidPadding, v, v)
		}
	}
	return buf[:n-v], nil
}

// Strip is the lenient form of Unpad. It removes padding when buf ends in
// valid padding and returns buf unchanged otherwise.
func Strip(buf []byte) []byte {
	if pt, err := Unpad(buf); err == nil {
		return pt
	}
	return buf
}
