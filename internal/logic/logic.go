// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/pvault/pvault/internal/config"
	"github.com/pvault/pvault/internal/encryption"
	"github.com/pvault/pvault/internal/keyfile"
)

// Run is the main logic of the application: import the key, process the
// configured files, scrub the key. The deferred scrub covers every exit
// path, so key material never outlives the run even on error.
func Run(cfg *config.Config) error {
	start := time.Now()

	rawKey, err := keyfile.Import(cfg.KeyFile)
	if err != nil {
		return fmt.Errorf("importing key: %w", err)
	}

	defer rawKey.Scrub()

	logrus.Debugf("imported %d-byte key blob from %q", len(rawKey), cfg.KeyFile)

	proc, err := encryption.NewProcessor(cfg, rawKey)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

func printStats(processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
