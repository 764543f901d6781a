package encryption

import (
	"bufio"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"errors"
	"fmt"
	"io"
)

const defaultBufferSize = 32 * 1024

// Pipeline runs the authenticated encryption scheme for one key blob. It
// holds the two block ciphers keyed with the split halves and the source of
// session IVs. Each Encrypt or Decrypt call owns its own counter and
// chaining state, so one Pipeline may be shared by parallel file workers.
type Pipeline struct {
	cipherBlock cipher.Block
	macBlock    cipher.Block
	random      io.Reader
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRandom replaces the IV source. Used by tests to make encryption a
// deterministic function of (key, plaintext, IV).
func WithRandom(r io.Reader) Option {
	return func(p *Pipeline) {
		p.random = r
	}
}

// NewPipeline splits the raw key blob and keys the encryption and MAC
// ciphers with the respective halves. The blob remains owned by the caller,
// who must scrub it after use; the cipher schedules derived here live only
// as long as the Pipeline.
func NewPipeline(raw []byte, opts ...Option) (*Pipeline, error) {
	cipherKey, macKey, err := SplitKeys(raw)
	if err != nil {
		return nil, err
	}

	cipherBlock, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	macBlock, err := aes.NewCipher(macKey)
	if err != nil {
		return nil, fmt.Errorf("creating MAC cipher: %w", err)
	}

	p := &Pipeline{
		cipherBlock: cipherBlock,
		macBlock:    macBlock,
		random:      tinkRandom{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// BlockSize reports the width of the IV, the tag and every keystream block.
func (p *Pipeline) BlockSize() int {
	return p.cipherBlock.BlockSize()
}

// Encrypt reads plaintext from src and writes IV || ciphertext || tag to
// dst. Processing is strictly block at a time: each ciphertext block is
// written and folded into the MAC before the next plaintext block is read,
// so memory use is constant regardless of input size.
func (p *Pipeline) Encrypt(dst io.Writer, src io.Reader) error {
	size := p.BlockSize()

	iv := make([]byte, size)
	if _, err := io.ReadFull(p.random, iv); err != nil {
		return fmt.Errorf("generating IV: %w", err)
	}

	if _, err := dst.Write(iv); err != nil {
		return fmt.Errorf("writing IV: %w", err)
	}

	stream := newCounterStream(p.cipherBlock, iv)
	defer stream.scrub()

	mac := newChainedMAC(p.macBlock, iv)
	defer mac.scrub()

	reader := bufio.NewReaderSize(src, defaultBufferSize)

	buf := make([]byte, size)
	defer Scrub(buf)

	ct := make([]byte, size)

	for {
		n, readErr := io.ReadFull(reader, buf)
		if n > 0 {
			stream.xorBlock(ct[:n], buf[:n])

			if _, err := dst.Write(ct[:n]); err != nil {
				return fmt.Errorf("writing ciphertext: %w", err)
			}

			mac.writeBlock(ct[:n])
		}

		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}

		if readErr != nil {
			return fmt.Errorf("reading plaintext: %w", readErr)
		}
	}

	if _, err := dst.Write(mac.Sum()); err != nil {
		return fmt.Errorf("writing authentication tag: %w", err)
	}

	return nil
}

// Decrypt reads IV || ciphertext || tag from src, verifies the tag and only
// then writes the recovered plaintext to dst. Verification is a full first
// pass over the ciphertext; no plaintext is released before the stored and
// recomputed tags match under a constant-time comparison.
func (p *Pipeline) Decrypt(dst io.Writer, src io.ReadSeeker) error {
	size := p.BlockSize()

	total, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("sizing ciphertext: %w", err)
	}

	if total < int64(2*size) {
		return fmt.Errorf("%w: ciphertext shorter than IV and tag", ErrAuthentication)
	}

	ctLen := total - int64(2*size)

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding ciphertext: %w", err)
	}

	reader := bufio.NewReaderSize(src, defaultBufferSize)

	iv := make([]byte, size)
	if _, err := io.ReadFull(reader, iv); err != nil {
		return fmt.Errorf("reading IV: %w", err)
	}

	mac := newChainedMAC(p.macBlock, iv)
	defer mac.scrub()

	buf := make([]byte, size)
	defer Scrub(buf)

	for remaining := ctLen; remaining > 0; {
		n := size
		if remaining < int64(size) {
			n = int(remaining)
		}

		if _, err := io.ReadFull(reader, buf[:n]); err != nil {
			return fmt.Errorf("reading ciphertext: %w", err)
		}

		mac.writeBlock(buf[:n])
		remaining -= int64(n)
	}

	tag := make([]byte, size)
	if _, err := io.ReadFull(reader, tag); err != nil {
		return fmt.Errorf("reading authentication tag: %w", err)
	}

	if !hmac.Equal(tag, mac.Sum()) {
		return fmt.Errorf("%w: tag mismatch", ErrAuthentication)
	}

	// Tag verified; second pass recovers the plaintext.
	if _, err := src.Seek(int64(size), io.SeekStart); err != nil {
		return fmt.Errorf("rewinding ciphertext: %w", err)
	}

	stream := newCounterStream(p.cipherBlock, iv)
	defer stream.scrub()

	reader = bufio.NewReaderSize(src, defaultBufferSize)

	pt := make([]byte, size)
	defer Scrub(pt)

	for remaining := ctLen; remaining > 0; {
		n := size
		if remaining < int64(size) {
			n = int(remaining)
		}

		if _, err := io.ReadFull(reader, buf[:n]); err != nil {
			return fmt.Errorf("reading ciphertext: %w", err)
		}

		stream.xorBlock(pt[:n], buf[:n])

		if _, err := dst.Write(pt[:n]); err != nil {
			return fmt.Errorf("writing plaintext: %w", err)
		}

		remaining -= int64(n)
	}

	return nil
}
