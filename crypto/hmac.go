package crypto

import "hash"

type hmac struct {
	inner, outer hash.Hash
	k            []byte
	pad          []byte
}

// NewHMAC returns an HMAC (RFC 2104) keyed with key over the hash returned by
// newH, for example NewHMAC(func() hash.Hash { return NewSHA1() }, key).
func NewHMAC(newH func() hash.Hash, key []byte) hash.Hash {
	inner := newH()
	outer := newH()

	bs := inner.BlockSize()
	k := make([]byte, bs)
	if len(key) <= bs {
		copy(k, key)
	} else {
		kh := newH()
		kh.Write(key)
		kh.Sum(k[:0])
	}

	hmac := &hmac{inner: inner, outer: outer, k: k, pad: make([]byte, bs)}
	hmac.Reset()
	return hmac
}

func (hmac *hmac) Write(b []byte) (int, error) {
	return hmac.inner.Write(b)
}

func (hmac *hmac) Sum(b []byte) []byte {
	bLen := len(b)
	b = hmac.inner.Sum(b)
	innerHash := b[bLen:]

	hmac.outer.Reset()
	hmac.outer.Write(XORByte(hmac.pad, hmac.k, 0x5c))
	hmac.outer.Write(innerHash)
	return hmac.outer.Sum(b[:bLen])
}

func (hmac *hmac) Reset() {
	hmac.inner.Reset()
	hmac.inner.Write(XORByte(hmac.pad, hmac.k, 0x36))
}

func (hmac *hmac) Size() int {
	return hmac.inner.Size()
}

func (hmac *hmac) BlockSize() int {
	return hmac.inner.BlockSize()
}
