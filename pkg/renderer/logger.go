package renderer

import (
	"fmt"
	"io"
	"sync"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// WriterLogger implements core.Logger by writing to an io.Writer.
// It is safe for concurrent use.
type WriterLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// Printf implements core.Logger
func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	fmt.Fprintf(wl.w, format, args...)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

// nopLogger discards all output
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() core.Logger {
	return nopLogger{}
}
