package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// sessionLayout names session files; it sorts chronologically.
const sessionLayout = "20060102T150405Z"

// FileLogger appends CBOR-encoded events to a .swlog file.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *cbor.Encoder
	count   int
	closed  bool
}

// SessionFileName returns the file name of a session started at start.
func SessionFileName(start time.Time) string {
	return "session-" + start.UTC().Format(sessionLayout) + FileExtension
}

// Open opens an event log. A target that is an existing directory, or
// ends in a path separator, gets a new session file named after start;
// any other target is opened as a file.
func Open(target string, start time.Time) (*FileLogger, error) {
	if strings.HasSuffix(target, string(os.PathSeparator)) {
		return OpenSession(target, start)
	}
	if fi, err := os.Stat(target); err == nil && fi.IsDir() {
		return OpenSession(target, start)
	}
	return NewFileLogger(target)
}

// OpenSession creates dir if needed and opens a session file in it.
func OpenSession(dir string, start time.Time) (*FileLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return NewFileLogger(filepath.Join(dir, SessionFileName(start)))
}

// NewFileLogger opens path for appending, creating it with mode 0644 if
// needed. A path without an extension gets FileExtension.
func NewFileLogger(path string) (*FileLogger, error) {
	if filepath.Ext(path) == "" {
		path += FileExtension
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		path:    path,
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Path returns the file being written.
func (l *FileLogger) Path() string {
	return l.path
}

// Count returns how many events were written.
func (l *FileLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Log writes an event. Encoding errors drop the event.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if l.encoder.Encode(event) == nil {
		l.count++
	}
}

// Close syncs and closes the file. Later Log calls are ignored.
// It is safe to call Close multiple times.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.file.Sync(); err != nil {
		l.file.Close()
		return fmt.Errorf("sync %s: %w", l.path, err)
	}
	return l.file.Close()
}

var _ Logger = (*FileLogger)(nil)
