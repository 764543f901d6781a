package encryption

import (
	"crypto/cipher"
	"crypto/subtle"
)

// counterStream generates the counter-mode keystream. It owns the counter
// buffer, which it mutates in place after every block, and is never shared
// between operations.
type counterStream struct {
	block     cipher.Block
	counter   []byte
	keystream []byte
}

// newCounterStream seeds a keystream generator from the session IV. The IV
// is copied: the stream's counter and the authenticator's chaining value
// must evolve independently from the same starting bytes.
func newCounterStream(block cipher.Block, iv []byte) *counterStream {
	size := block.BlockSize()

	s := &counterStream{
		block:     block,
		counter:   make([]byte, size),
		keystream: make([]byte, size),
	}
	copy(s.counter, iv)

	return s
}

// xorBlock XORs one block of keystream into dst. src may be shorter than
// the block size (the final short block); the surplus keystream bytes are
// discarded. The counter advances once per call regardless of src length.
func (s *counterStream) xorBlock(dst, src []byte) {
	s.block.Encrypt(s.keystream, s.counter)
	subtle.XORBytes(dst, src, s.keystream[:len(src)])
	incrementCounter(s.counter)
}

// scrub wipes the counter and keystream buffers.
func (s *counterStream) scrub() {
	clear(s.counter)
	clear(s.keystream)
}
