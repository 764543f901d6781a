// Package keyfile handles import, export and generation of the symmetric
// key blobs the vault encrypts under. Keys are stored hex-encoded in a
// file readable only by the owner.
package keyfile

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/tink-crypto/tink-go/v2/subtle/random"
)

// ErrNoKey is returned when a key file exists but holds no usable key.
var ErrNoKey = errors.New("no symmetric key found")

// RawKey is the raw symmetric key blob: two concatenated key halves. The
// holder is responsible for calling Scrub once the key is no longer needed.
type RawKey []byte

// Scrub zeroes the key material in place.
func (k RawKey) Scrub() {
	clear(k)
}

// Import reads and decodes the hex-encoded key blob from path. The buffer
// is either filled with a complete key or not returned at all.
func Import(path string) (RawKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("%w in %q", ErrNoKey, path)
	}

	raw, err := key.FromHex(text)
	if err != nil {
		return nil, fmt.Errorf("%w in %q: %w", ErrNoKey, path, err)
	}

	return RawKey(raw), nil
}

// Generate draws a fresh key blob of n bytes from the CSPRNG.
func Generate(n int) RawKey {
	return RawKey(random.GetRandomBytes(uint32(n)))
}

// Write stores the key blob hex-encoded at path, owner-readable only.
// Existing content is replaced.
func Write(path string, k RawKey) error {
	const keyFilePerm = 0o600

	encoded := hex.EncodeToString(k) + "\n"

	if err := os.WriteFile(path, []byte(encoded), keyFilePerm); err != nil {
		return fmt.Errorf("writing key file: %w", err)
	}

	return nil
}
