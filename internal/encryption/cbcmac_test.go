package encryption

import (
	"bytes"
	"crypto/aes"
	"testing"
)

var macTestKey = []byte("0123456789abcdef")

func newTestMAC(t *testing.T, iv []byte) *chainedMAC {
	t.Helper()

	block, err := aes.NewCipher(macTestKey)
	if err != nil {
		t.Fatalf("creating cipher: %v", err)
	}

	return newChainedMAC(block, iv)
}

func TestChainedMACEmptyInputIsIV(t *testing.T) {
	iv := bytes.Repeat([]byte{0x42}, aes.BlockSize)

	mac := newTestMAC(t, iv)

	if got := mac.Sum(); !bytes.Equal(got, iv) {
		t.Errorf("tag over zero blocks = %x, want the raw IV %x", got, iv)
	}
}

func TestChainedMACFullBlock(t *testing.T) {
	iv := bytes.Repeat([]byte{0x11}, aes.BlockSize)
	ct := bytes.Repeat([]byte{0x5a}, aes.BlockSize)

	mac := newTestMAC(t, iv)
	mac.writeBlock(ct)

	// Expected: E(iv XOR ct) computed directly.
	block, err := aes.NewCipher(macTestKey)
	if err != nil {
		t.Fatalf("creating cipher: %v", err)
	}

	in := make([]byte, aes.BlockSize)
	for i := range in {
		in[i] = iv[i] ^ ct[i]
	}

	want := make([]byte, aes.BlockSize)
	block.Encrypt(want, in)

	if got := mac.Sum(); !bytes.Equal(got, want) {
		t.Errorf("tag = %x, want %x", got, want)
	}
}

func TestChainedMACShortBlockPadsWithDigitZero(t *testing.T) {
	iv := bytes.Repeat([]byte{0x11}, aes.BlockSize)
	short := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}

	mac := newTestMAC(t, iv)
	mac.writeBlock(short)

	block, err := aes.NewCipher(macTestKey)
	if err != nil {
		t.Fatalf("creating cipher: %v", err)
	}

	padded := make([]byte, aes.BlockSize)
	copy(padded, short)
	for i := len(short); i < aes.BlockSize; i++ {
		padded[i] = '0'
	}

	in := make([]byte, aes.BlockSize)
	for i := range in {
		in[i] = iv[i] ^ padded[i]
	}

	want := make([]byte, aes.BlockSize)
	block.Encrypt(want, in)

	if got := mac.Sum(); !bytes.Equal(got, want) {
		t.Errorf("tag = %x, want %x", got, want)
	}

	// The same bytes zero-padded must produce a different tag; the scheme
	// pads with the printable '0'.
	zeroMAC := newTestMAC(t, iv)

	zeroPadded := make([]byte, aes.BlockSize)
	copy(zeroPadded, short)
	zeroMAC.writeBlock(zeroPadded)

	if bytes.Equal(zeroMAC.Sum(), mac.Sum()) {
		t.Error("short-block padding is indistinguishable from zero padding")
	}
}

func TestChainedMACChains(t *testing.T) {
	iv := make([]byte, aes.BlockSize)
	first := bytes.Repeat([]byte{0x01}, aes.BlockSize)
	second := bytes.Repeat([]byte{0x02}, aes.BlockSize)

	mac := newTestMAC(t, iv)
	mac.writeBlock(first)
	mac.writeBlock(second)

	block, err := aes.NewCipher(macTestKey)
	if err != nil {
		t.Fatalf("creating cipher: %v", err)
	}

	chain := make([]byte, aes.BlockSize)
	in := make([]byte, aes.BlockSize)

	for _, ct := range [][]byte{first, second} {
		for i := range in {
			in[i] = chain[i] ^ ct[i]
		}

		block.Encrypt(chain, in)
	}

	if got := mac.Sum(); !bytes.Equal(got, chain) {
		t.Errorf("tag = %x, want %x", got, chain)
	}
}

func TestChainedMACSumIsACopy(t *testing.T) {
	iv := bytes.Repeat([]byte{0x07}, aes.BlockSize)

	mac := newTestMAC(t, iv)

	tag := mac.Sum()
	tag[0] ^= 0xff

	if got := mac.Sum(); !bytes.Equal(got, iv) {
		t.Error("mutating a returned tag corrupted the chaining state")
	}
}
