package encryption

// Result describes the outcome of one vault operation: a single file run
// through the pipeline by the Processor.
type Result struct {
	// Input is the path of the file that was processed.
	Input string

	// Output is the path the ciphertext (or recovered plaintext) landed at.
	Output string

	// OutputSize is the finished output size in bytes; for encryption this
	// includes the IV and tag blocks.
	OutputSize int64

	// Error is set when processing the file failed.
	Error error
}
