package crypto

import (
	"encoding/binary"
	"hash"
)

// The size of a SHA-1 checksum in bytes.
const SHA1Size = 20

// The blocksize of SHA-1 in bytes.
const SHA1BlockSize = mdChunk

const (
	sha1Init0 = 0x67452301
	sha1Init1 = 0xEFCDAB89
	sha1Init2 = 0x98BADCFE
	sha1Init3 = 0x10325476
	sha1Init4 = 0xC3D2E1F0
)

var _ hash.Hash = (*SHA1)(nil)

// SHA1 represents the partial evaluation of a checksum.
//
// Update and Finish follow a one-shot life cycle: after Finish, the SHA1
// panics on further input until Reset. Sum does not finish the SHA1, so it
// can also be used as a hash.Hash, but Sum after Finish panics as well.
type SHA1 struct {
	h  [5]uint32
	md mdDigest
}

// NewSHA1 returns a SHA1 in the standard initial state.
func NewSHA1() *SHA1 {
	d := new(SHA1)
	d.Reset()
	return d
}

// NewSHA1FromState returns a SHA1 that continues from sum as its chaining
// value, as though n bytes had already been hashed. The buffer starts empty,
// so n should be the padded length of the message that produced sum.
//
// This lets a caller extend a message knowing only its digest and length.
func NewSHA1FromState(sum [SHA1Size]byte, n uint64) *SHA1 {
	d := new(SHA1)
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(sum[4*i:])
	}
	d.md.reset(n)
	return d
}

func (d *SHA1) Reset() {
	d.h[0] = sha1Init0
	d.h[1] = sha1Init1
	d.h[2] = sha1Init2
	d.h[3] = sha1Init3
	d.h[4] = sha1Init4
	d.md.reset(0)
}

func (d *SHA1) Size() int { return SHA1Size }

func (d *SHA1) BlockSize() int { return SHA1BlockSize }

// Update adds p to the running hash.
func (d *SHA1) Update(p []byte) {
	d.md.write(p, d.block)
}

func (d *SHA1) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Finish pads the message and returns its digest.
func (d *SHA1) Finish() [SHA1Size]byte {
	d.md.finish(binary.BigEndian, d.block)

	var digest [SHA1Size]byte
	for i, s := range d.h {
		binary.BigEndian.PutUint32(digest[4*i:], s)
	}
	return digest
}

func (d *SHA1) Sum(in []byte) []byte {
	// Make a copy of d so that caller can keep writing and summing.
	d0 := *d
	hash := d0.Finish()
	return append(in, hash[:]...)
}

// SHA1Sum returns the SHA-1 checksum of the data.
func SHA1Sum(data []byte) [SHA1Size]byte {
	var d SHA1
	d.Reset()
	d.Update(data)
	return d.Finish()
}

// SHA1Padding returns the bytes SHA-1 appends to an n-byte message before
// the final compression.
func SHA1Padding(n uint64) []byte {
	return appendMDPadding(nil, int(n%mdChunk), n, binary.BigEndian)
}
