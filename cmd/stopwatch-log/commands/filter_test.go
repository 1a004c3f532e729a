package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RajatGang07/stop-watch/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("failed to read events: %v", err)
	}
	return events
}

func TestFilterByWidgetPrefix(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, WidgetID: "aaaa-1111", Category: log.CategoryControl},
		{Timestamp: ts, WidgetID: "bbbb-2222", Category: log.CategoryControl},
		{Timestamp: ts, WidgetID: "aaaa-1111", Category: log.CategoryState},
	}

	path := createTestLogFile(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.swlog")

	n, err := RunFilter(path, outPath, FilterOptions{WidgetID: "aaaa"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("RunFilter() = %d, want 2", n)
	}

	for _, e := range readAll(t, outPath) {
		if e.WidgetID != "aaaa-1111" {
			t.Errorf("unexpected widget %s", e.WidgetID)
		}
	}
}

func TestFilterByTimeRangeAndKind(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: base, Kind: log.KindCountdown},
		{Timestamp: base.Add(time.Hour), Kind: log.KindCountdown},
		{Timestamp: base.Add(time.Hour), Kind: log.KindStopwatch},
		{Timestamp: base.Add(2 * time.Hour), Kind: log.KindCountdown},
	}

	path := createTestLogFile(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.swlog")

	n, err := RunFilter(path, outPath, FilterOptions{
		Kind:      "countdown",
		TimeStart: "2026-01-28T10:30:00Z",
		TimeEnd:   "2026-01-28T11:30:00Z",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("RunFilter() = %d, want 1", n)
	}

	got := readAll(t, outPath)
	if len(got) != 1 || !got[0].Timestamp.Equal(base.Add(time.Hour)) {
		t.Errorf("filtered events = %+v", got)
	}
}

func TestFilterOptionsBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"bad kind", FilterOptions{Kind: "hourglass"}},
		{"bad category", FilterOptions{Category: "frame"}},
		{"bad start", FilterOptions{TimeStart: "yesterday"}},
		{"bad end", FilterOptions{TimeEnd: "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.opts.Build(); err == nil {
				t.Error("Build() expected error")
			}
		})
	}
}
