package encryption

import "fmt"

// Valid AES key sizes for each half of the raw key blob.
const (
	minHalfKeySize = 16
	midHalfKeySize = 24
	maxHalfKeySize = 32
)

// SplitKeys partitions a raw symmetric key blob into its two halves: the
// cipher key (first half) and the MAC key (second half). The halves are
// views into the caller's buffer, not copies, so scrubbing the blob scrubs
// both keys. The two halves must never be used for each other's purpose.
func SplitKeys(raw []byte) (cipherKey, macKey []byte, err error) {
	length := len(raw)

	if length == 0 || length%2 != 0 {
		return nil, nil, fmt.Errorf("%w: key blob must have even, non-zero length, got %d", ErrInvalidKeyLength, length)
	}

	half := length / 2

	switch half {
	case minHalfKeySize, midHalfKeySize, maxHalfKeySize:
	default:
		return nil, nil, fmt.Errorf("%w: each key half must be 16, 24 or 32 bytes, got %d", ErrInvalidKeyLength, half)
	}

	return raw[:half], raw[half:], nil
}

// Scrub zeroes a key buffer. Callers defer it so key material is wiped on
// every exit path, success or failure.
func Scrub(buf []byte) {
	clear(buf)
}
