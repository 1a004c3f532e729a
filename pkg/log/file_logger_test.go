package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session"+FileExtension)

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session"+FileExtension)

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{Timestamp: time.Now(), WidgetID: "w", Category: CategoryControl,
			Control: &ControlEvent{Action: ActionStart, Accepted: true}})
		if err := logger.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "x"+FileExtension))
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Logging after close is ignored.
	logger.Log(Event{})
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent"+FileExtension)
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				logger.Log(Event{Category: CategoryTick, Tick: &TickEvent{Value: time.Duration(i)}})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v (interleaved writes?)", err)
	}
	if len(events) != 200 {
		t.Errorf("got %d events, want 200", len(events))
	}
}

func TestFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.swlog"))
	if err == nil {
		t.Error("NewFileLogger with missing directory error = nil, want error")
	}
}

func TestFileLoggerAddsExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "run")
	logger, err := NewFileLogger(base)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if got, want := logger.Path(), base+FileExtension; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if _, err := os.Stat(base + FileExtension); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestFileLoggerCount(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "x"+FileExtension))
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{WidgetID: "w", Category: CategoryControl, Control: &ControlEvent{Action: ActionReset, Accepted: true}})
	logger.Log(Event{WidgetID: "w", Category: CategoryControl, Control: &ControlEvent{Action: ActionStart}})
	logger.Close()
	logger.Log(Event{WidgetID: "w"})

	if got := logger.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestSessionFileName(t *testing.T) {
	start := time.Date(2026, 1, 28, 11, 15, 32, 0, time.FixedZone("CET", 3600))
	if got, want := SessionFileName(start), "session-20260128T101532Z.swlog"; got != want {
		t.Errorf("SessionFileName() = %q, want %q", got, want)
	}
}

func TestOpen(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	session := "session-20260128T101532Z" + FileExtension

	tests := []struct {
		name   string
		target func(dir string) string
		want   func(dir string) string
	}{
		{
			name:   "existing directory",
			target: func(dir string) string { return dir },
			want:   func(dir string) string { return filepath.Join(dir, session) },
		},
		{
			name:   "new directory with trailing separator",
			target: func(dir string) string { return filepath.Join(dir, "logs") + string(os.PathSeparator) },
			want:   func(dir string) string { return filepath.Join(dir, "logs", session) },
		},
		{
			name:   "file",
			target: func(dir string) string { return filepath.Join(dir, "events"+FileExtension) },
			want:   func(dir string) string { return filepath.Join(dir, "events"+FileExtension) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logger, err := Open(tt.target(dir), start)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer logger.Close()

			if got, want := logger.Path(), tt.want(dir); got != want {
				t.Errorf("Path() = %q, want %q", got, want)
			}
			if _, err := os.Stat(logger.Path()); err != nil {
				t.Errorf("log file not created: %v", err)
			}
		})
	}
}

func TestOpenSessionsDoNotCollideAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)

	first, err := OpenSession(dir, start)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	first.Close()
	second, err := OpenSession(dir, start.Add(time.Second))
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	second.Close()

	matches, err := filepath.Glob(filepath.Join(dir, "*"+FileExtension))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("got %d session files, want 2: %v", len(matches), matches)
	}
}
