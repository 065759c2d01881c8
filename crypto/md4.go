package crypto

import (
	"encoding/binary"
	"hash"
)

// The size of an MD4 checksum in bytes.
const MD4Size = 16

// The blocksize of MD4 in bytes.
const MD4BlockSize = mdChunk

const (
	md4Init0 = 0x67452301
	md4Init1 = 0xEFCDAB89
	md4Init2 = 0x98BADCFE
	md4Init3 = 0x10325476
)

var _ hash.Hash = (*MD4)(nil)

// MD4 represents the partial evaluation of an MD4 checksum (RFC 1320). It
// has the same life cycle as SHA1, including the panic from Sum after
// Finish.
type MD4 struct {
	s  [4]uint32
	md mdDigest
}

// NewMD4 returns an MD4 in the standard initial state.
func NewMD4() *MD4 {
	d := new(MD4)
	d.Reset()
	return d
}

// NewMD4FromState returns an MD4 that continues from sum as its chaining
// value, as though n bytes had already been hashed.
func NewMD4FromState(sum [MD4Size]byte, n uint64) *MD4 {
	d := new(MD4)
	for i := range d.s {
		d.s[i] = binary.LittleEndian.Uint32(sum[4*i:])
	}
	d.md.reset(n)
	return d
}

func (d *MD4) Reset() {
	d.s[0] = md4Init0
	d.s[1] = md4Init1
	d.s[2] = md4Init2
	d.s[3] = md4Init3
	d.md.reset(0)
}

func (d *MD4) Size() int { return MD4Size }

func (d *MD4) BlockSize() int { return MD4BlockSize }

func (d *MD4) Update(p []byte) {
	d.md.write(p, d.block)
}

func (d *MD4) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

func (d *MD4) Finish() [MD4Size]byte {
	d.md.finish(binary.LittleEndian, d.block)

	var digest [MD4Size]byte
	for i, s := range d.s {
		binary.LittleEndian.PutUint32(digest[4*i:], s)
	}
	return digest
}

func (d *MD4) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.Finish()
	return append(in, sum[:]...)
}

func MD4Sum(data []byte) [MD4Size]byte {
	d := NewMD4()
	d.Update(data)
	return d.Finish()
}

// MD4Padding returns the bytes MD4 appends to an n-byte message before the
// final compression.
func MD4Padding(n uint64) []byte {
	return appendMDPadding(nil, int(n%mdChunk), n, binary.LittleEndian)
}
