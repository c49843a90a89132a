// Package filecontent reads files verbatim.
package filecontent

import (
	"fmt"
	"os"

	"github.com/cuinixam/hello-ci/pkg/errors"
)

// Reader reads a single file.
type Reader struct {
	path string
}

// New creates a reader for path.
func New(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the file path.
func (r *Reader) Path() string {
	return r.path
}

// Read returns the file contents unchanged.
func (r *Reader) Read() (string, error) {
	if r.path == "" {
		return "", errors.ValidationError("file path cannot be empty", nil)
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", errors.IOError(fmt.Sprintf("failed to read file: %s", r.path), err).
			WithContext("path", r.path)
	}
	return string(data), nil
}
