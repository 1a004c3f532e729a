// Command stopwatch runs a countdown timer and a stopwatch in the terminal.
//
// Usage:
//
//	stopwatch [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-log-level string  Log level: debug, info, warn, error (overrides config)
//	-events string     File or directory for widget event logging (CBOR format)
//	-mode string       Widgets to run: countdown, stopwatch, both (default "both")
//
// Examples:
//
//	# Run both widgets with defaults
//	stopwatch
//
//	# Countdown only, recording events for stopwatch-log
//	stopwatch -mode countdown -events session.swlog
//
//	# One session file per run
//	stopwatch -events /var/log/stopwatch/
//
//	# Use a config file with debug logging
//	stopwatch -config /etc/stopwatch.yaml -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RajatGang07/stop-watch/cmd/stopwatch/interactive"
	"github.com/RajatGang07/stop-watch/pkg/config"
	"github.com/RajatGang07/stop-watch/pkg/log"
)

var (
	configFile = flag.String("config", "", "Configuration file path (YAML)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	eventsFile = flag.String("events", "", "File or directory for widget event logging (CBOR format)")
	mode       = flag.String("mode", "both", "Widgets to run: countdown, stopwatch, both")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := interactive.ParseMode(*mode)
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	var (
		events     log.Logger
		eventsPath string
	)
	if cfg.Log.Events != "" {
		fileLogger, err := log.Open(cfg.Log.Events, time.Now())
		if err != nil {
			return fmt.Errorf("failed to open event log: %w", err)
		}
		defer fileLogger.Close()
		events = fileLogger
		eventsPath = fileLogger.Path()
	}

	host, err := interactive.New(interactive.Config{
		Mode:     m,
		Settings: cfg,
		Level:    level,
		Events:   events,
	})
	if err != nil {
		return err
	}
	defer host.Close()

	// Route operational logging through the prompt.
	slog.SetDefault(host.Logger())
	if eventsPath != "" {
		slog.Info("Event logging enabled", "path", eventsPath)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go host.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Received signal", "signal", sig.String())
	case <-ctx.Done():
	}

	return nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return config.Config{}, err
		}
	}

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *eventsFile != "" {
		cfg.Log.Events = *eventsFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
