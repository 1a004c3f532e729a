package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/RajatGang07/stop-watch/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByKind     map[log.Kind]int
	EventsByCategory map[log.Category]int
	Widgets          map[string]*WidgetStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// WidgetStats holds statistics for a single widget instance.
type WidgetStats struct {
	Kind      log.Kind
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Starts    int
	Ignored   int
	Finishes  int

	// Counted is the total countdown target of finished runs.
	Counted time.Duration
}

// CollectStats reads every event of path.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind:     make(map[log.Kind]int),
		EventsByCategory: make(map[log.Category]int),
		Widgets:          make(map[string]*WidgetStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByKind[event.Kind]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	ws, ok := s.Widgets[event.WidgetID]
	if !ok {
		ws = &WidgetStats{
			Kind:      event.Kind,
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Widgets[event.WidgetID] = ws
	}
	ws.Events++
	if event.Timestamp.After(ws.LastSeen) {
		ws.LastSeen = event.Timestamp
	}

	switch {
	case event.Control != nil:
		if !event.Control.Accepted {
			ws.Ignored++
		} else if event.Control.Action == log.ActionStart || event.Control.Action == log.ActionResume {
			ws.Starts++
		}
	case event.Finish != nil:
		ws.Finishes++
		ws.Counted += event.Finish.Target
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Stopwatch Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []log.Kind{log.KindCountdown, log.KindStopwatch} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryControl, log.CategoryTick, log.CategoryInput, log.CategoryFinish} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Widgets: %d\n", len(stats.Widgets))
	if len(stats.Widgets) == 0 {
		return
	}

	type widgetInfo struct {
		id    string
		stats *WidgetStats
	}
	widgets := make([]widgetInfo, 0, len(stats.Widgets))
	for id, ws := range stats.Widgets {
		widgets = append(widgets, widgetInfo{id, ws})
	}
	sort.Slice(widgets, func(i, j int) bool {
		return widgets[i].stats.FirstSeen.Before(widgets[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, wi := range widgets {
		duration := wi.stats.LastSeen.Sub(wi.stats.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] %s %d events, duration %s\n",
			shortenID(wi.id), wi.stats.Kind.String(), wi.stats.Events, duration)
		fmt.Fprintf(w, "           Starts: %d, ignored controls: %d\n", wi.stats.Starts, wi.stats.Ignored)
		if wi.stats.Finishes > 0 {
			fmt.Fprintf(w, "           Finished: %d (counted %s)\n", wi.stats.Finishes, wi.stats.Counted)
		}
	}
}
