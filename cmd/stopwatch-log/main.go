// Command stopwatch-log views and analyzes stopwatch event log files.
//
// Event logs are written by the stopwatch command when run with -events.
//
// Usage:
//
//	stopwatch-log <command> [flags] <file.swlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSONL or CSV
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	stopwatch-log view session.swlog
//
//	# View countdown ticks only
//	stopwatch-log view -kind countdown -category tick session.swlog
//
//	# Export to CSV
//	stopwatch-log export -format csv -o session.csv session.swlog
//
//	# Keep one widget's events
//	stopwatch-log filter -widget 3f2a9c1e -o one.swlog session.swlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RajatGang07/stop-watch/cmd/stopwatch-log/commands"
)

const usage = `stopwatch-log - Stopwatch Event Log Analyzer

Usage:
  stopwatch-log <command> [flags] <file.swlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSONL or CSV
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "stopwatch-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the shared filter flags on fs.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.WidgetID, "widget", "", "Filter by widget ID (prefix)")
	fs.StringVar(&opts.Kind, "kind", "", "Filter by widget kind (countdown, stopwatch)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (state, control, tick, input, finish)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return opts
}

// parsePath parses args and returns the single log file argument.
func parsePath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stopwatch-log view - View log file in human-readable format

Usage:
  stopwatch-log view [flags] <file.swlog>

Flags:
`)
		fs.PrintDefaults()
	}

	opts := filterFlags(fs)
	path := parsePath(fs, args)

	filter, err := opts.Build()
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stopwatch-log export - Export log file to JSONL or CSV

Usage:
  stopwatch-log export [flags] <file.swlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := parsePath(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stopwatch-log filter - Filter log file and write to new file

Usage:
  stopwatch-log filter [flags] <file.swlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)
	path := parsePath(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	n, err := commands.RunFilter(path, *output, *opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stopwatch-log stats - Show statistics about the log file

Usage:
  stopwatch-log stats <file.swlog>

`)
	}

	path := parsePath(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
