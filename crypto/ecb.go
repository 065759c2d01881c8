package crypto

import (
	"crypto/cipher"
	"fmt"
)

// checkBlocks panics unless src is a whole number of bs-byte blocks and dst
// can hold it.
func checkBlocks(bs int, dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	if len(src)%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}
}

type ecbEncrypter struct{ c cipher.Block }

// NewECBEncrypter returns a BlockMode that encrypts each block of its input
// independently with c.
func NewECBEncrypter(c cipher.Block) cipher.BlockMode {
	return ecbEncrypter{c}
}

func (e ecbEncrypter) BlockSize() int { return e.c.BlockSize() }

func (e ecbEncrypter) CryptBlocks(dst, src []byte) {
	bs := e.c.BlockSize()
	checkBlocks(bs, dst, src)
	for i := 0; i < len(src); i += bs {
		e.c.Encrypt(dst[i:i+bs], src[i:i+bs])
	}
}

type ecbDecrypter struct{ c cipher.Block }

// NewECBDecrypter returns a BlockMode that decrypts each block of its input
// independently with c.
func NewECBDecrypter(c cipher.Block) cipher.BlockMode {
	return ecbDecrypter{c}
}

func (e ecbDecrypter) BlockSize() int { return e.c.BlockSize() }

func (e ecbDecrypter) CryptBlocks(dst, src []byte) {
	bs := e.c.BlockSize()
	checkBlocks(bs, dst, src)
	for i := 0; i < len(src); i += bs {
		e.c.Decrypt(dst[i:i+bs], src[i:i+bs])
	}
}

// DetectECB reports whether ct contains two identical blocks of blockSize
// bytes. For any realistic plaintext that means ct was encrypted in ECB
// mode.
func DetectECB(ct []byte, blockSize int) (bool, error) {
	if blockSize <= 0 {
		panic(fmt.Sprintf("invalid block size %d", blockSize))
	}
	if len(ct)%blockSize != 0 {
		return false, fmt.Errorf("%w: len %d, block size %d", ErrMisalignedCiphertext, len(ct), blockSize)
	}
	seen := make(map[string]bool, len(ct)/blockSize)
	for i := 0; i < len(ct); i += blockSize {
		b := string(ct[i : i+blockSize])
		if seen[b] {
			return true, nil
		}
		seen[b] = true
	}
	return false, nil
}
