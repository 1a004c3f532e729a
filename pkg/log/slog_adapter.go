package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes widget events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("widget_id", event.WidgetID),
		slog.String("kind", event.Kind.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
	case event.Control != nil:
		attrs = append(attrs,
			slog.String("action", event.Control.Action.String()),
			slog.Bool("accepted", event.Control.Accepted),
		)
	case event.Tick != nil:
		attrs = append(attrs,
			slog.Duration("value", event.Tick.Value),
			slog.String("display", event.Tick.Display),
		)
	case event.Input != nil:
		attrs = append(attrs,
			slog.String("field", event.Input.Field.String()),
			slog.String("raw", event.Input.Raw),
			slog.Int("hours", event.Input.Hours),
			slog.Int("minutes", event.Input.Minutes),
			slog.Int("seconds", event.Input.Seconds),
		)
	case event.Finish != nil:
		attrs = append(attrs, slog.Duration("target", event.Finish.Target))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "widget", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
