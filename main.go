// pvault encrypts and decrypts files under a symmetric key with
// CCA-secure authenticated encryption.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pvault/pvault/internal/commands"
	"github.com/pvault/pvault/internal/config"
	"github.com/pvault/pvault/internal/encryption"
	"github.com/pvault/pvault/internal/keyfile"
)

// version is set at build time.
var version = "dev"

const (
	exitUsage   = 1
	exitNoKey   = 2
	exitFailure = 255
)

func main() {
	os.Exit(exitCode(commands.Execute(version)))
}

// exitCode maps errors to process exit codes: usage problems (including
// missing input files) exit 1, missing or unusable key material exits 2,
// anything else (I/O failures, tampered ciphertext) exits nonzero.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, keyfile.ErrNoKey), errors.Is(err, encryption.ErrInvalidKeyLength):
		return exitNoKey
	case errors.Is(err, config.ErrUsage), errors.Is(err, fs.ErrNotExist):
		return exitUsage
	default:
		return exitFailure
	}
}
