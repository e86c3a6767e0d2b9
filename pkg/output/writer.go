// Package output persists rendered workflow documents.
package output

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/renameio/v2"
)

// ErrWriteFailure reports a destination that could not be written.
var ErrWriteFailure = errors.New("write failure")

const defaultPerm fs.FileMode = 0o644

// FileWriter writes documents to disk all at once: the payload goes to a
// temporary file which is then renamed over the destination, so a failed
// write never leaves a partial file behind.
type FileWriter struct {
	perm fs.FileMode
}

// NewFileWriter returns a FileWriter producing files with mode 0644.
func NewFileWriter() *FileWriter {
	return &FileWriter{perm: defaultPerm}
}

// Write stores data at path, replacing any existing file.
func (w *FileWriter) Write(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output: %w: path is required", ErrWriteFailure)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	perm := w.perm
	if perm == 0 {
		perm = defaultPerm
	}

	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("output: %w: %w", ErrWriteFailure, err)
	}
	return nil
}
