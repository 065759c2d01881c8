package crypto

import "hash"

// SecretPrefixMAC returns H(key || msg) for the hash returned by newH. This
// construction is open to length extension for any Merkle–Damgård hash,
// which is why the hashes in this package expose NewSHA1FromState and
// NewMD4FromState; use NewHMAC for a sound MAC.
func SecretPrefixMAC(newH func() hash.Hash, key, msg []byte) []byte {
	h := newH()
	h.Write(key)
	h.Write(msg)
	return h.Sum(nil)
}
