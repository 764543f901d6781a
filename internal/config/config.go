// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrUsage marks errors caused by invalid command-line usage, mapped to
// exit code 1 by the caller.
var ErrUsage = errors.New("usage error")

// Config carries the settings for a single encrypt or decrypt run.
type Config struct {
	// Path to the file holding the hex-encoded symmetric key blob
	KeyFile string `validate:"required"`

	// Number of parallel workers in batch mode
	Parallel int `validate:"min=1"`

	// Suffix appended to (encrypt) or stripped from (decrypt) file names
	// in batch mode; empty means single-file mode with an explicit output
	Suffix string

	// Suppress non-error output
	Quiet bool

	// Print processing statistics at the end of the run
	Stats bool

	// Delete the input file after successful processing
	Delete bool

	// Enable debug logging
	Verbose bool

	// Decrypt instead of encrypt
	Decrypt bool

	// Explicit output path (single-file mode only)
	Output string

	// Input files
	Files []string `validate:"min=1"`
}

// Validate checks the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if c.Suffix == "" && c.Output == "" {
		return fmt.Errorf("%w: either an explicit output file or --suffix is required", ErrUsage)
	}

	if c.Suffix != "" && c.Output != "" {
		return fmt.Errorf("%w: --suffix and an explicit output file are mutually exclusive", ErrUsage)
	}

	return nil
}
