package encryption

import "errors"

var (
	// ErrInvalidKeyLength is returned when the raw key blob cannot be split
	// into two valid AES keys.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrAuthentication is returned when the stored tag does not match the
	// tag recomputed over the ciphertext.
	ErrAuthentication = errors.New("authentication failed")
)
