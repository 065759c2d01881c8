package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// KeySize is the AES-128 key size in bytes.
const KeySize = 16

func newCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}
	return aes.NewCipher(key)
}

func checkIV(iv []byte) error {
	if len(iv) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), BlockSize)
	}
	return nil
}

func checkAligned(ct []byte) error {
	if len(ct)%BlockSize != 0 {
		return fmt.Errorf("%w: len %d", ErrMisalignedCiphertext, len(ct))
	}
	return nil
}

// ECBEncrypt pads pt and encrypts it with AES-128 in ECB mode. The final
// block is always padded, so a block-aligned pt gains a full block of
// padding.
func ECBEncrypt(pt, key []byte) ([]byte, error) {
	c, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	buf := Pad(make([]byte, 0, PadLength(len(pt), BlockSize)), pt, BlockSize)
	NewECBEncrypter(c).CryptBlocks(buf, buf)
	return buf, nil
}

// ECBDecrypt decrypts ct with AES-128 in ECB mode and strips padding if
// present.
func ECBDecrypt(ct, key []byte) ([]byte, error) {
	c, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	if err := checkAligned(ct); err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	NewECBDecrypter(c).CryptBlocks(pt, ct)
	return Strip(pt), nil
}

// CBCEncrypt pads pt and encrypts it with AES-128 in CBC mode.
func CBCEncrypt(pt, key, iv []byte) ([]byte, error) {
	c, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	buf := Pad(make([]byte, 0, PadLength(len(pt), BlockSize)), pt, BlockSize)
	NewCBCEncrypter(c, iv).CryptBlocks(buf, buf)
	return buf, nil
}

// CBCDecrypt decrypts ct with AES-128 in CBC mode and strips padding if
// present. Use Unpad on the output of CBCDecryptRaw to tell bad padding
// apart from no padding.
func CBCDecrypt(ct, key, iv []byte) ([]byte, error) {
	pt, err := CBCDecryptRaw(ct, key, iv)
	if err != nil {
		return nil, err
	}
	return Strip(pt), nil
}

// CBCDecryptRaw decrypts ct with AES-128 in CBC mode and leaves any
// padding in place.
func CBCDecryptRaw(ct, key, iv []byte) ([]byte, error) {
	c, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if err := checkAligned(ct); err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	NewCBCDecrypter(c, iv).CryptBlocks(pt, ct)
	return pt, nil
}

// CTR encrypts or decrypts data with AES-128 in CTR mode. See CTRStream for
// the layout of the counter block. The output has the same length as data.
func CTR(data, key []byte, nonce uint64) ([]byte, error) {
	c, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	NewCTR(c, nonce).XORKeyStream(out, data)
	return out, nil
}

// CTREdit returns a copy of the CTR ciphertext ct in which the plaintext at
// offset has been replaced by text, without decrypting the rest.
func CTREdit(ct, key []byte, nonce uint64, offset int, text []byte) ([]byte, error) {
	if offset < 0 || offset+len(text) > len(ct) {
		return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrEditOutOfRange, offset, offset+len(text), len(ct))
	}
	c, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ct))
	copy(out, ct)
	s := NewCTR(c, nonce)
	s.Seek(offset)
	s.XORKeyStream(out[offset:offset+len(text)], text)
	return out, nil
}
