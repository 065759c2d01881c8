package crypto

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

// NonceSize is the size of a CTR nonce in bytes.
const NonceSize = 8

// CTRStream is a cipher.Stream producing the CTR keystream
// E(nonce || counter) for counter = 0, 1, 2, .... The nonce and the counter
// each occupy 8 bytes of the input block and are both encoded
// little-endian.
type CTRStream struct {
	block cipher.Block

	nonce, counter uint64

	// in is scratch space for nonce || counter.
	in []byte

	// out is the keystream block for the current counter.
	out []byte

	// off is the number of bytes in out that have been consumed.
	off int
}

// NewCTR returns a CTRStream over block, which must have a 16-byte block
// size, starting at counter 0.
func NewCTR(block cipher.Block, nonce uint64) *CTRStream {
	bs := block.BlockSize()
	if bs != BlockSize {
		panic(fmt.Sprintf("block.BlockSize() is %d; must be %d", bs, BlockSize))
	}
	cs := &CTRStream{
		block: block,
		nonce: nonce,
		in:    make([]byte, bs),
		out:   make([]byte, bs),
	}
	cs.fill()
	return cs
}

func (cs *CTRStream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("len(dst) (%d) less than len(src) (%d)", len(dst), len(src)))
	}

	for len(src) > 0 {
		if cs.off == BlockSize {
			cs.counter++
			cs.off = 0
			cs.fill()
		}
		n := BlockSize - cs.off
		if len(src) < n {
			n = len(src)
		}
		XOR(dst[:n], src[:n], cs.out[cs.off:cs.off+n])
		dst = dst[n:]
		src = src[n:]
		cs.off += n
	}
}

// Seek skips offset bytes of keystream.
func (cs *CTRStream) Seek(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("cannot seek backward with offset %d", offset))
	}
	pos := cs.off + offset
	if pos <= BlockSize {
		cs.off = pos
		return
	}
	cs.counter += uint64(pos / BlockSize)
	cs.off = pos % BlockSize
	cs.fill()
}

func (cs *CTRStream) fill() {
	binary.LittleEndian.PutUint64(cs.in[:NonceSize], cs.nonce)
	binary.LittleEndian.PutUint64(cs.in[NonceSize:], cs.counter)
	cs.block.Encrypt(cs.out, cs.in)
}
