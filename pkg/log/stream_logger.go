package log

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// StreamLogger writes events as a CBOR stream to an io.Writer.
// It is safe for concurrent use.
type StreamLogger struct {
	mu      sync.Mutex
	encoder *cbor.Encoder
	closer  io.Closer
	closed  bool
	err     error
}

// NewStreamLogger returns a logger writing to w. Close does not close w.
func NewStreamLogger(w io.Writer) *StreamLogger {
	return &StreamLogger{encoder: NewEncoder(w)}
}

// NewFileLogger returns a logger appending to the file at path, creating it
// with mode 0644 if needed. Close closes the file.
func NewFileLogger(path string) (*StreamLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &StreamLogger{encoder: NewEncoder(f), closer: f}, nil
}

// Log writes the event. Write failures are remembered and reported by Err;
// they never reach the codec caller.
func (l *StreamLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil && l.err == nil {
		l.err = err
	}
}

// Err returns the first write error, if any.
func (l *StreamLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close stops the logger. Calling it more than once is safe; later Log
// calls are ignored.
func (l *StreamLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

var _ Logger = (*StreamLogger)(nil)
