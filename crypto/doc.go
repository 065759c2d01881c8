// Package crypto implements the primitives used by the cryptopals
// exercises: PKCS#7 padding, ECB, CBC and CTR modes on top of AES-128,
// the MD4 and SHA-1 hashes with their internal state exposed for
// length-extension work, and the MT19937 generator together with the
// inverse of its output tempering.
//
// None of this is suitable for protecting real data. Nothing here runs in
// constant time, and several constructors exist only so that internal state
// can be recovered and resumed.
package crypto
