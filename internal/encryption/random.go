package encryption

import (
	"github.com/tink-crypto/tink-go/v2/subtle/random"
)

// tinkRandom adapts Tink's CSPRNG to io.Reader so tests can swap in a fixed
// IV source while production draws from the real generator.
type tinkRandom struct{}

func (tinkRandom) Read(p []byte) (int, error) {
	copy(p, random.GetRandomBytes(uint32(len(p))))

	return len(p), nil
}
