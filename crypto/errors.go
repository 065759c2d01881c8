package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidIVLength is returned when a CBC initialization vector is not
	// BlockSize bytes.
	ErrInvalidIVLength = errors.New("invalid iv length")

	// ErrOversizedBlock is returned by PadBlock when the input does not fit in
	// a single block.
	ErrOversizedBlock = errors.New("input longer than block")

	// ErrMisalignedCiphertext is returned when a ciphertext is not a multiple
	// of the block size.
	ErrMisalignedCiphertext = errors.New("ciphertext not a multiple of block size")

	// ErrInvalidPadding is returned by Unpad when a buffer does not end in
	// valid PKCS#7 padding.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrEditOutOfRange is returned by CTREdit when the replacement text
	// extends past the end of the ciphertext.
	ErrEditOutOfRange = errors.New("edit out of range")
)
