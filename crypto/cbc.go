package crypto

import (
	"crypto/cipher"
	"fmt"
)

type cbc struct {
	c cipher.Block

	// prev is the previous ciphertext block, or the IV before the first
	// block.
	prev []byte

	// tmp is scratch space for one block.
	tmp []byte
}

func newCBC(c cipher.Block, iv []byte) *cbc {
	bs := c.BlockSize()
	if len(iv) != bs {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), bs))
	}
	prev := make([]byte, bs)
	copy(prev, iv)
	return &cbc{c: c, prev: prev, tmp: make([]byte, bs)}
}

func (cr *cbc) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbc) check(dst, src []byte) {
	checkBlocks(cr.c.BlockSize(), dst, src)
}

type cbcEncrypter cbc

// NewCBCEncrypter returns a BlockMode that encrypts in CBC mode with c,
// chaining from iv. iv is copied.
func NewCBCEncrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	return (*cbcEncrypter)(newCBC(c, iv))
}

func (cr *cbcEncrypter) BlockSize() int { return (*cbc)(cr).BlockSize() }

func (cr *cbcEncrypter) CryptBlocks(dst, src []byte) {
	(*cbc)(cr).check(dst, src)
	bs := cr.c.BlockSize()
	for i := 0; i < len(src); i += bs {
		XOR(cr.tmp, src[i:i+bs], cr.prev)
		cr.c.Encrypt(dst[i:i+bs], cr.tmp)
		copy(cr.prev, dst[i:i+bs])
	}
}

type cbcDecrypter cbc

// NewCBCDecrypter returns a BlockMode that decrypts in CBC mode with c,
// chaining from iv. iv is copied.
func NewCBCDecrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	return (*cbcDecrypter)(newCBC(c, iv))
}

func (cr *cbcDecrypter) BlockSize() int { return (*cbc)(cr).BlockSize() }

func (cr *cbcDecrypter) CryptBlocks(dst, src []byte) {
	(*cbc)(cr).check(dst, src)
	bs := cr.c.BlockSize()
	for i := 0; i < len(src); i += bs {
		// src and dst may be the same buffer, so the ciphertext block is
		// decrypted into scratch space before dst is written.
		cr.c.Decrypt(cr.tmp, src[i:i+bs])
		XOR(cr.tmp, cr.tmp, cr.prev)
		copy(cr.prev, src[i:i+bs])
		copy(dst[i:i+bs], cr.tmp)
	}
}
