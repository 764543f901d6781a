package keyfile

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfInfo provides domain separation for keys derived from passphrases.
const hkdfInfo = "pvault/keyfile/v1"

// FromPassphrase deterministically expands a passphrase into a key blob of
// n bytes using HKDF-SHA256. The same passphrase and salt always yield the
// same key, so a vault key can be reconstructed instead of stored.
func FromPassphrase(passphrase string, salt []byte, n int) (RawKey, error) {
	reader := hkdf.New(sha256.New, []byte(passphrase), salt, []byte(hkdfInfo))

	derived := make([]byte, n)
	if _, err := io.ReadFull(reader, derived); err != nil {
		return nil, fmt.Errorf("deriving key from passphrase: %w", err)
	}

	return RawKey(derived), nil
}
