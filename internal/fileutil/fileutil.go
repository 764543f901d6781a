// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempContext holds state for an atomic file write: output is produced in
// a temp file next to the destination and renamed into place on success.
type TempContext struct {
	TmpFile *os.File
	TmpName string
}

// NewTempContext creates a temp file in the destination directory.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed,
// so a failed operation leaves nothing behind under any name.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close()

	if *errp != nil {
		os.Remove(tc.TmpName)
	}
}

// Finalize sets permissions, closes the temp file and renames it to the
// destination. Returns the size of the finished output.
func (tc *TempContext) Finalize(outPath string, perm os.FileMode) (int64, error) {
	if err := os.Chmod(tc.TmpName, perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
