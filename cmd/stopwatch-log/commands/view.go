// Package commands implements the stopwatch-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/RajatGang07/stop-watch/pkg/log"
)

// timestampLayout is the timestamp format used by view and export.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [widget:id] KIND CATEGORY Label
	ts := event.Timestamp.UTC().Format(timestampLayout)
	fmt.Fprintf(w, "%s [widget:%s] %s %s %s\n",
		ts, shortenID(event.WidgetID), event.Kind.String(), event.Category.String(), eventLabel(event))

	switch {
	case event.StateChange != nil:
		if event.StateChange.OldState != "" {
			fmt.Fprintf(w, "  %s -> %s\n", event.StateChange.OldState, event.StateChange.NewState)
		} else {
			fmt.Fprintf(w, "  -> %s\n", event.StateChange.NewState)
		}
	case event.Control != nil:
		if !event.Control.Accepted {
			fmt.Fprintln(w, "  Ignored")
		}
	case event.Tick != nil:
		fmt.Fprintf(w, "  Display: %s\n", event.Tick.Display)
	case event.Input != nil:
		fmt.Fprintf(w, "  Raw: %q\n", event.Input.Raw)
		fmt.Fprintf(w, "  Normalized: %dh %dm %ds\n",
			event.Input.Hours, event.Input.Minutes, event.Input.Seconds)
	case event.Finish != nil:
		fmt.Fprintf(w, "  Target: %s\n", event.Finish.Target)
	}

	fmt.Fprintln(w)
}

// eventLabel names the payload of an event.
func eventLabel(event log.Event) string {
	switch {
	case event.StateChange != nil:
		return "State"
	case event.Control != nil:
		return event.Control.Action.String()
	case event.Tick != nil:
		return event.Tick.Value.String()
	case event.Input != nil:
		return event.Input.Field.String()
	case event.Finish != nil:
		return "Finished"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of a widget ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseKindFlag parses a widget kind (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	switch strings.ToLower(s) {
	case "countdown":
		return log.KindCountdown, nil
	case "stopwatch":
		return log.KindStopwatch, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be countdown or stopwatch)", s)
	}
}

// ParseCategoryFlag parses a category (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "control":
		return log.CategoryControl, nil
	case "tick":
		return log.CategoryTick, nil
	case "input":
		return log.CategoryInput, nil
	case "finish":
		return log.CategoryFinish, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, control, tick, input, or finish)", s)
	}
}

// RunView prints every event matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
