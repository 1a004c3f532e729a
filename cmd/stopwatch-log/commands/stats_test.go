package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/RajatGang07/stop-watch/pkg/log"
)

func TestCollectStats(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := append(sessionEvents(),
		log.Event{
			Timestamp: ts, WidgetID: "sw-1", Kind: log.KindStopwatch, Category: log.CategoryControl,
			Control: &log.ControlEvent{Action: log.ActionStop, Accepted: false},
		},
		log.Event{
			Timestamp: ts.Add(time.Minute), WidgetID: "sw-1", Kind: log.KindStopwatch, Category: log.CategoryControl,
			Control: &log.ControlEvent{Action: log.ActionStart, Accepted: true},
		},
	)

	stats, err := CollectStats(createTestLogFile(t, events))
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 7 {
		t.Errorf("TotalEvents = %d, want 7", stats.TotalEvents)
	}
	if got := stats.EventsByKind[log.KindStopwatch]; got != 2 {
		t.Errorf("EventsByKind[STOPWATCH] = %d, want 2", got)
	}
	if got := stats.EventsByCategory[log.CategoryControl]; got != 3 {
		t.Errorf("EventsByCategory[CONTROL] = %d, want 3", got)
	}
	if len(stats.Widgets) != 2 {
		t.Fatalf("len(Widgets) = %d, want 2", len(stats.Widgets))
	}

	cd := stats.Widgets["3f2a9c1e-0000-4000-8000-000000000001"]
	if cd.Starts != 1 || cd.Finishes != 1 || cd.Counted != 5*time.Second {
		t.Errorf("countdown stats = %+v", cd)
	}

	sw := stats.Widgets["sw-1"]
	if sw.Starts != 1 || sw.Ignored != 1 {
		t.Errorf("stopwatch stats = %+v", sw)
	}
	if sw.LastSeen.Sub(sw.FirstSeen) != time.Minute {
		t.Errorf("stopwatch duration = %s, want 1m", sw.LastSeen.Sub(sw.FirstSeen))
	}
}

func TestRunStatsOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats(createTestLogFile(t, sessionEvents()), &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Total Events: 5",
		"COUNTDOWN:",
		"INPUT:",
		"FINISH:",
		"Widgets: 1",
		"[3f2a9c1e] COUNTDOWN",
		"Finished: 1 (counted 5s)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "STOPWATCH:") {
		t.Errorf("unexpected STOPWATCH count, got:\n%s", output)
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats(createTestLogFile(t, nil), &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events, got:\n%s", buf.String())
	}
}
