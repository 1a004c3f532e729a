package commands

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/RajatGang07/stop-watch/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+log.FileExtension)

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func sessionEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	id := "3f2a9c1e-0000-4000-8000-000000000001"
	return []log.Event{
		{
			Timestamp: ts, WidgetID: id, Kind: log.KindCountdown, Category: log.CategoryInput,
			Input: &log.InputEvent{Field: log.FieldSecond, Raw: "5", Seconds: 5},
		},
		{
			Timestamp: ts.Add(time.Second), WidgetID: id, Kind: log.KindCountdown, Category: log.CategoryControl,
			Control: &log.ControlEvent{Action: log.ActionStart, Accepted: true},
		},
		{
			Timestamp: ts.Add(time.Second), WidgetID: id, Kind: log.KindCountdown, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "IDLE", NewState: "RUNNING"},
		},
		{
			Timestamp: ts.Add(2 * time.Second), WidgetID: id, Kind: log.KindCountdown, Category: log.CategoryTick,
			Tick: &log.TickEvent{Value: 4 * time.Second, Display: "00 : 00 : 04"},
		},
		{
			Timestamp: ts.Add(6 * time.Second), WidgetID: id, Kind: log.KindCountdown, Category: log.CategoryFinish,
			Finish: &log.FinishEvent{Target: 5 * time.Second},
		},
	}
}

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var decoded log.Event
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		lines++
	}

	if lines != 5 {
		t.Errorf("expected 5 lines, got %d", lines)
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	outPath := filepath.Join(t.TempDir(), "out.csv")
	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	if len(records) != 6 {
		t.Fatalf("expected header + 5 rows, got %d", len(records))
	}
	if records[0][1] != "widget_id" {
		t.Errorf("header[1] = %q, want widget_id", records[0][1])
	}

	tests := []struct {
		row      int
		typ, val string
		category string
	}{
		{1, "SECOND", "5", "INPUT"},
		{2, "START", "true", "CONTROL"},
		{3, "State", "RUNNING", "STATE"},
		{4, "4s", "00 : 00 : 04", "TICK"},
		{5, "Finished", "5s", "FINISH"},
	}
	for _, tt := range tests {
		r := records[tt.row]
		if r[3] != tt.category || r[4] != tt.typ || r[5] != tt.val {
			t.Errorf("row %d = %v, want category %s type %s value %s", tt.row, r, tt.category, tt.typ, tt.val)
		}
	}
	if records[1][0] != "2026-01-28T10:15:32.123456Z" {
		t.Errorf("timestamp = %q", records[1][0])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	if err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out.xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestExportMissingFile(t *testing.T) {
	if err := RunExport(filepath.Join(t.TempDir(), "missing.swlog"), "jsonl", ""); err == nil {
		t.Error("expected error for missing file")
	}
}
