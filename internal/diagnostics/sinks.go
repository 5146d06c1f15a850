package diagnostics

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/gravitational/trace"
)

// NopSink discards every event; it is the default when no diagnostics
// uploader is configured.
type NopSink struct{}

// Send always succeeds and does nothing.
func (NopSink) Send(Event) error { return nil }

// FileSink appends one JSON line per event to a local file, useful for
// offline inspection without a real uploader. No file handle is kept open:
// each Send opens the file for append, writes one line and closes it, and
// a mutex serializes Sends on the same sink.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink creates the file at path if it does not exist and checks
// that it can be opened for append; the file is closed again before
// NewFileSink returns.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	f.Close()
	return &FileSink{path: path}, nil
}

// Send appends event as a single JSON line.
func (s *FileSink) Send(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return trace.Wrap(err)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return trace.ConvertSystemError(err)
	}
	return nil
}
