package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pvault/pvault/internal/config"
	"github.com/pvault/pvault/internal/fileutil"
)

// Processor handles the encryption and decryption of the configured files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// pipeline runs the authenticated encryption scheme
	pipeline *Pipeline

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a Processor over the raw key blob. The blob stays
// owned by the caller, who scrubs it once processing finishes.
func NewProcessor(cfg *config.Config, rawKey []byte) (*Processor, error) {
	pipeline, err := NewPipeline(rawKey)
	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:      cfg,
		pipeline: pipeline,
		results:  make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles processes all configured files, in parallel when batch mode
// names more than one. Returns the number of successfully processed files,
// the number of errors and the total output size.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output)
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath, err := p.outputPath(file)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts a single file. Output goes to a temp
// file that is renamed into place only on success, so an I/O failure never
// leaves a truncated file under the final name.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	logrus.Debugf("processing %q -> %q", filename, outPath)

	tc, err := fileutil.NewTempContext(outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	const (
		// Ciphertext may be world-readable: the content is encrypted.
		ciphertextPerm = os.FileMode(0o644)
		plaintextPerm  = os.FileMode(0o600)
	)

	perm := ciphertextPerm

	if p.cfg.Decrypt {
		perm = plaintextPerm

		if err := p.pipeline.Decrypt(tc.TmpFile, inFile); err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		if err := p.pipeline.Encrypt(tc.TmpFile, inFile); err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	if err := inFile.Close(); err != nil {
		return 0, fmt.Errorf("closing input file: %w", err)
	}

	return tc.Finalize(outPath, perm)
}

// outputPath resolves where a processed file lands: the explicit output in
// single-file mode, otherwise the input name with the batch suffix appended
// (encrypt) or stripped (decrypt). A batch decrypt input without the suffix
// is rejected; stripping nothing would map the file onto itself.
func (p *Processor) outputPath(filename string) (string, error) {
	if p.cfg.Output != "" {
		return p.cfg.Output, nil
	}

	if p.cfg.Decrypt {
		if !strings.HasSuffix(filename, p.cfg.Suffix) {
			return "", fmt.Errorf("%q does not carry the %q suffix", filename, p.cfg.Suffix)
		}

		return strings.TrimSuffix(filename, p.cfg.Suffix), nil
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+p.cfg.Suffix), nil
}
