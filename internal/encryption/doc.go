// Package encryption implements the personal-vault authenticated encryption
// scheme: AES in counter mode for confidentiality, with an AES-CBC-MAC over
// the ciphertext for integrity, under two independent key halves split from a
// single symmetric key blob.
//
// The ciphertext file layout is fixed:
//
//	IV (one block) || ciphertext (same length as plaintext) || tag (one block)
//
// Encryption streams block by block, so arbitrarily large files are processed
// without buffering. Decryption verifies the tag over the full ciphertext
// before releasing a single byte of plaintext.
package encryption
