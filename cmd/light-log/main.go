// Command light-log views and analyzes the light adjustment journal.
//
// The journal is written by light when journaling is enabled through
// LIGHT_JOURNAL=true or "journal: true" in config.yaml.
//
// Usage:
//
//	light-log <command> [flags] [journal.cbor]
//
// Commands:
//
//	view     View the journal in human-readable format
//	export   Export the journal to JSON lines or CSV
//	stats    Show statistics about the journal
//
// Without a file argument the journal of the current state directory is
// read.
//
// Examples:
//
//	# View all writes to the default backlight
//	light-log view -address sysfs/backlight/auto
//
//	# Export restore events to CSV
//	light-log export -format csv -command restore
//
//	# Show statistics
//	light-log stats
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/light-project/light-go/cmd/light-log/commands"
	"github.com/light-project/light-go/pkg/config"
	"github.com/light-project/light-go/pkg/journal"
)

const usage = `light-log - light Journal Analyzer

Usage:
  light-log <command> [flags] [journal.cbor]

Commands:
  view     View the journal in human-readable format
  export   Export the journal to JSON lines or CSV
  stats    Show statistics about the journal

Use "light-log <command> -help" for more information about a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	cmd, args := args[0], args[1:]
	var err error
	switch cmd {
	case "view":
		err = runView(args, stdout, stderr)
	case "export":
		err = runExport(args, stdout, stderr)
	case "stats":
		err = runStats(args, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}

	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newFlagSet(name, synopsis string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "light-log %s - %s\n\nUsage:\n  light-log %s [flags] [journal.cbor]\n\nFlags:\n", name, synopsis, name)
		fs.PrintDefaults()
	}
	return fs
}

func addFilterFlags(fs *flag.FlagSet, opts *commands.FilterOptions) {
	fs.StringVar(&opts.Address, "address", "", "Filter by target address (enumerator/device/target)")
	fs.StringVar(&opts.Command, "command", "", "Filter by command (set, add, subtract, set-mincap, save, restore)")
	fs.StringVar(&opts.Kind, "kind", "", "Filter by kind (VALUE, MINCAP, SAVE)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
}

// journalPath returns the file argument of fs, or the journal of the
// current state directory.
func journalPath(fs *flag.FlagSet) (string, error) {
	if fs.NArg() > 0 {
		return fs.Arg(0), nil
	}
	e, err := config.ParseEnv(nil)
	if err != nil {
		return "", err
	}
	dir, err := e.ResolveStateDir(os.Geteuid())
	if err != nil {
		return "", fmt.Errorf("journal path required: %w", err)
	}
	return filepath.Join(dir, journal.FileName), nil
}

func runView(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("view", "View the journal in human-readable format", stderr)
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := opts.Build()
	if err != nil {
		return err
	}
	path, err := journalPath(fs)
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, stdout)
}

func runExport(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", "Export the journal to JSON lines or CSV", stderr)
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := opts.Build()
	if err != nil {
		return err
	}
	path, err := journalPath(fs)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output, filter, stdout)
}

func runStats(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("stats", "Show statistics about the journal", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := journalPath(fs)
	if err != nil {
		return err
	}
	return commands.RunStats(path, stdout)
}
