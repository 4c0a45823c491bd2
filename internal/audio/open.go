package audio

import (
	"fmt"
	"io"
	"os"
)

// Open acquires the input PCM stream named by path, or stdin when path
// is empty. The returned closer must be called on every exit path
// (success, read error, or validation completion) to release the
// underlying file handle; closing the stdin-backed stream is a no-op.
func Open(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input %q: %w", path, err)
	}
	return f, f.Close, nil
}
