// Command light reads and adjusts backlight and LED brightness through
// sysfs.
//
// Usage:
//
//	light [OPTIONS] [VALUE]
//
// Examples:
//
//	# Print the brightness of the best backlight in percent
//	light
//
//	# Set the keyboard LED to its raw maximum
//	light -r -s sysfs/leds/kbd_backlight -S 3
//
//	# Never go below 5% on the panel
//	light -N 5
//
// Exit status is 0 on success, 1 when the command failed and 2 when the
// arguments or the environment were unusable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/config"
	"github.com/light-project/light-go/pkg/engine"
	"github.com/light-project/light-go/pkg/fileio"
	"github.com/light-project/light-go/pkg/journal"
	"github.com/light-project/light-go/pkg/persistence"
	"github.com/light-project/light-go/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitExecFailure = 1
	exitInitFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:], nil, os.Geteuid(), os.Stdout, os.Stderr))
}

// run executes one invocation. environ nil means the process environment.
func run(args []string, environ map[string]string, euid int, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout)
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v.\n\n", err)
		printUsage(stderr)
		return exitInitFailure
	}

	switch opts.command {
	case engine.CommandHelp:
		printUsage(stdout)
		return exitOK
	case engine.CommandVersion:
		fmt.Fprintln(stdout, version.Banner())
		return exitOK
	}

	cfg, err := config.Load(environ, euid)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitInitFailure
	}
	applyFlags(cfg, opts)

	logger := config.NewLogger(stderr, cfg.Verbosity)

	if err := fileio.MkPath(cfg.StateDir, fileio.DirMode); err != nil {
		logger.WithError(err).Warn("couldn't create configuration directory")
	}

	reg, err := engine.NewRegistry(engine.DiscoverOptions{
		Sysroot:  cfg.Sysroot,
		StateDir: cfg.StateDir,
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Warn("failed to initialize all enumerators")
	}
	defer func() {
		if err := reg.Free(); err != nil {
			logger.WithError(err).Warn("failed to free all enumerators")
		}
	}()

	jl, closeJournal := openJournal(cfg, opts.command, logger)
	defer closeJournal()

	params := engine.Params{Command: opts.command, Raw: cfg.Raw}
	if opts.command.NeedsTarget() {
		explicit := opts.targetSet || cfg.Target != engine.DefaultAddress.String()
		target, err := engine.SelectTarget(reg, cfg.Target, explicit, logger)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n\n", err)
			return exitInitFailure
		}
		params.Target = target
	}
	if opts.command.NeedsValue() {
		if err := params.SetInput(opts.args[0]); err != nil {
			fmt.Fprintf(stderr, "%v\n\n", err)
			printUsage(stderr)
			return exitInitFailure
		}
	}

	eng := engine.New(engine.Config{
		Registry: reg,
		Store:    persistence.NewStore(cfg.StateDir),
		Journal:  jl,
		Logger:   logger,
	})
	res, err := eng.Execute(params)
	if err != nil {
		logger.WithError(err).Errorf("failed to execute %s", opts.command)
		return exitExecFailure
	}

	if res.Command == engine.CommandList && len(res.Addresses) == 0 {
		logger.Warn("no device targets were found")
	}
	fmt.Fprint(stdout, res.Format())
	return exitOK
}

// applyFlags lets explicit command line flags override the config file.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.verbositySet {
		cfg.Verbosity = opts.verbosity
	}
	if opts.targetSet {
		cfg.Target = opts.target
	}
	if opts.raw {
		cfg.Raw = true
	}
}

// openJournal returns the journal logger for cmd and a function closing it.
// Commands that write nothing never touch the journal file. A journal that
// cannot be opened is reported and disabled.
func openJournal(cfg *config.Config, cmd engine.Command, logger log.FieldLogger) (journal.Logger, func()) {
	if !cfg.Journal || !cmd.Writes() {
		return nil, func() {}
	}

	fl, err := journal.NewFileLogger(filepath.Join(cfg.StateDir, journal.FileName))
	if err != nil {
		logger.WithError(err).Warn("journal disabled")
		return journal.NewLogrusAdapter(logger), func() {}
	}
	return journal.NewMultiLogger(fl, journal.NewLogrusAdapter(logger)), func() {
		if err := fl.Close(); err != nil && !errors.Is(err, journal.ErrClosed) {
			logger.WithError(err).Warn("failed to close journal")
		}
	}
}
