// Package security provides input size limits for files read from user paths.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSizeLimit is returned when an input exceeds its size limit.
var ErrSizeLimit = errors.New("size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Reading past the limit fails with ErrSizeLimit rather than truncating.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Only an error if the underlying reader still has data.
		var probe [1]byte
		if n, _ := l.R.Read(probe[:]); n > 0 {
			return 0, ErrSizeLimit
		}
		return 0, io.EOF
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadFile reads a user-specified file, failing with ErrSizeLimit if it is
// larger than maxBytes.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(NewLimitedReader(f, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w (max %d bytes)", path, err, maxBytes)
	}
	return data, nil
}
