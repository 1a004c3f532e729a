// Package interactive provides the interactive command-line interface
// for the stopwatch command.
package interactive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/chzyer/readline"

	"github.com/RajatGang07/stop-watch/pkg/config"
	"github.com/RajatGang07/stop-watch/pkg/display"
	"github.com/RajatGang07/stop-watch/pkg/log"
	"github.com/RajatGang07/stop-watch/pkg/widget"
)

// Mode selects which widgets the host creates.
type Mode string

const (
	ModeCountdown Mode = "countdown"
	ModeStopwatch Mode = "stopwatch"
	ModeBoth      Mode = "both"
)

// ParseMode validates a -mode flag value.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeCountdown, ModeStopwatch, ModeBoth:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be countdown, stopwatch or both)", s)
	}
}

// Config configures a Host.
type Config struct {
	Mode     Mode
	Settings config.Config

	// Level is the operational log level.
	Level slog.Leveler

	// Events receives widget events. Nil disables capture.
	Events log.Logger

	// Clock overrides the real clock.
	Clock clock.Clock
}

// Host drives the countdown and stopwatch widgets from typed commands.
type Host struct {
	rl     *readline.Instance
	out    io.Writer
	logger *slog.Logger

	countdown *widget.Countdown
	stopwatch *widget.Stopwatch
}

// New creates a Host reading commands from the terminal.
func New(cfg Config) (*Host, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timer> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	h := newHost(rl.Stdout(), rl.Stderr(), cfg)
	h.rl = rl
	return h, nil
}

// newHost creates a Host writing display lines to out and logs to logOut.
func newHost(out, logOut io.Writer, cfg Config) *Host {
	h := &Host{
		out:    out,
		logger: slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level})),
	}

	// Debug runs also mirror events into the operational log.
	events := cfg.Events
	if cfg.Level != nil && cfg.Level.Level() <= slog.LevelDebug {
		events = log.Combine(cfg.Events, log.NewSlogAdapter(h.logger))
	}

	if cfg.Mode != ModeStopwatch {
		h.countdown = widget.NewCountdown(widget.Options{
			Clock:    cfg.Clock,
			Interval: cfg.Settings.Countdown.Interval,
			MaxHours: cfg.Settings.Countdown.MaxHours,
			Sink:     newLineSink(out, "countdown", false),
			Logger:   h.logger,
			Events:   events,
			OnFinished: func() {
				fmt.Fprintln(out, "\aCountdown finished")
			},
		})
	}
	if cfg.Mode != ModeCountdown {
		h.stopwatch = widget.NewStopwatch(widget.Options{
			Clock:    cfg.Clock,
			Interval: cfg.Settings.Stopwatch.Interval,
			Sink:     newLineSink(out, "stopwatch", true),
			Logger:   h.logger,
			Events:   events,
		})
	}
	return h
}

// Logger returns the operational logger, which writes through the prompt.
func (h *Host) Logger() *slog.Logger {
	return h.logger
}

// Stdout returns a writer that coordinates with the readline input.
func (h *Host) Stdout() io.Writer {
	return h.out
}

// Close tears down both widgets and releases the terminal.
func (h *Host) Close() {
	if h.rl != nil {
		h.rl.Close()
	}
	if h.countdown != nil {
		h.countdown.Close()
	}
	if h.stopwatch != nil {
		h.stopwatch.Close()
	}
}

// Run starts the interactive command loop. It calls cancel when the user
// quits or closes the input.
func (h *Host) Run(ctx context.Context, cancel context.CancelFunc) {
	defer h.rl.Close()

	h.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := h.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(h.out, "Exiting...")
			cancel()
			return
		}

		if !h.Execute(line) {
			fmt.Fprintln(h.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns false when the user quits.
func (h *Host) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		h.printHelp()

	case "h", "hour":
		h.cmdField(h.countdownOrNil(), (*widget.Countdown).SetHour, args)
	case "m", "min":
		h.cmdField(h.countdownOrNil(), (*widget.Countdown).SetMinute, args)
	case "s", "sec":
		h.cmdField(h.countdownOrNil(), (*widget.Countdown).SetSecond, args)
	case "set":
		h.cmdSet(args)

	case "start":
		if c := h.countdownOrNil(); c != nil && !c.Start() {
			fmt.Fprintln(h.out, "Nothing to start (enter a time first, or already running)")
		}
	case "pause":
		if c := h.countdownOrNil(); c != nil && !c.Pause() {
			fmt.Fprintln(h.out, "Countdown is not running")
		}
	case "reset":
		if c := h.countdownOrNil(); c != nil {
			c.Reset()
		}

	case "sw":
		h.cmdStopwatch(args)

	case "status":
		h.cmdStatus()

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(h.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (h *Host) countdownOrNil() *widget.Countdown {
	if h.countdown == nil {
		fmt.Fprintln(h.out, "Countdown is disabled in this mode")
	}
	return h.countdown
}

// cmdField sets one countdown field. No argument clears the field.
func (h *Host) cmdField(c *widget.Countdown, set func(*widget.Countdown, string), args []string) {
	if c == nil {
		return
	}
	val := ""
	if len(args) > 0 {
		val = args[0]
	}
	set(c, val)
	h.printFields()
}

func (h *Host) cmdSet(args []string) {
	c := h.countdownOrNil()
	if c == nil {
		return
	}
	if len(args) != 3 {
		fmt.Fprintln(h.out, "Usage: set <hours> <minutes> <seconds>")
		return
	}
	c.SetFields(args[0], args[1], args[2])
	h.printFields()
}

func (h *Host) printFields() {
	v := h.countdown.View()
	if !v.FieldsEnabled {
		fmt.Fprintln(h.out, "Fields are locked while the countdown runs")
		return
	}
	fmt.Fprintf(h.out, "Fields: h=%q m=%q s=%q -> %s\n", v.Hour, v.Minute, v.Second, v.Display)
}

func (h *Host) cmdStopwatch(args []string) {
	if h.stopwatch == nil {
		fmt.Fprintln(h.out, "Stopwatch is disabled in this mode")
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(h.out, "Usage: sw start|stop|reset")
		return
	}

	switch strings.ToLower(args[0]) {
	case "start":
		if !h.stopwatch.Start() {
			fmt.Fprintln(h.out, "Stopwatch is already running")
		}
	case "stop":
		if h.stopwatch.Stop() {
			fmt.Fprintf(h.out, "[stopwatch] %s\n", h.stopwatch.View().Display)
		} else {
			fmt.Fprintln(h.out, "Stopwatch is not running")
		}
	case "reset":
		h.stopwatch.Reset()
	default:
		fmt.Fprintf(h.out, "Unknown stopwatch command: %s\n", args[0])
	}
}

func (h *Host) cmdStatus() {
	if h.countdown != nil {
		v := h.countdown.View()
		fmt.Fprintln(h.out, "Countdown:")
		fmt.Fprintf(h.out, "  State:   %s\n", v.State)
		fmt.Fprintf(h.out, "  Display: %s\n", v.Display)
		fmt.Fprintf(h.out, "  Fields:  h=%q m=%q s=%q\n", v.Hour, v.Minute, v.Second)
		fmt.Fprintf(h.out, "  Button:  %s\n", v.StartLabel)
	}
	if h.stopwatch != nil {
		v := h.stopwatch.View()
		fmt.Fprintln(h.out, "Stopwatch:")
		fmt.Fprintf(h.out, "  State:   %s\n", v.State)
		fmt.Fprintf(h.out, "  Display: %s\n", v.Display)
		fmt.Fprintf(h.out, "  Button:  %s\n", v.StartLabel)
	}
}

func (h *Host) printHelp() {
	fmt.Fprintln(h.out, `
Timer Commands:
  Countdown:
    h|hour [v]         - Set the hour field (no value clears it)
    m|min [v]          - Set the minute field (60 or more carries into hours)
    s|sec [v]          - Set the second field (60 or more carries into minutes)
    set <h> <m> <s>    - Set all three fields
    start              - Start, or continue after pause
    pause              - Pause the countdown
    reset              - Stop and clear the countdown

  Stopwatch:
    sw start           - Start or resume the stopwatch
    sw stop            - Stop the stopwatch
    sw reset           - Reset the stopwatch to zero

  General:
    status             - Show widget status
    help               - Show this help
    quit               - Exit`)
}

// lineSink prints a display line whenever the displayed second changes,
// so a fast widget prints at most once per second.
type lineSink struct {
	mu     sync.Mutex
	w      io.Writer
	name   string
	centis bool
	last   string
}

// newLineSink creates a lineSink. With centis set, the trailing
// centisecond field is ignored when deciding whether to print.
func newLineSink(w io.Writer, name string, centis bool) *lineSink {
	return &lineSink{w: w, name: name, centis: centis}
}

// Publish implements widget.Sink.
func (s *lineSink) Publish(text string) {
	key := text
	if s.centis {
		if i := strings.LastIndex(text, display.Separator); i >= 0 {
			key = text[:i]
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key == s.last {
		return
	}
	s.last = key
	fmt.Fprintf(s.w, "[%s] %s\n", s.name, text)
}
