package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/light-project/light-go/pkg/config"
	"github.com/light-project/light-go/pkg/engine"
)

// options holds the parsed command line.
type options struct {
	command  engine.Command
	selected bool

	raw       bool
	target    string
	verbosity int

	// verbositySet and targetSet record whether the flag was given, so the
	// config file is only overridden explicitly.
	verbositySet bool
	targetSet    bool

	args []string
}

// commandFlag is a boolean flag that selects a command. Selecting a second
// command is an error.
type commandFlag struct {
	opts *options
	cmd  engine.Command
}

func (f *commandFlag) IsBoolFlag() bool { return true }

func (f *commandFlag) String() string { return "false" }

func (f *commandFlag) Set(s string) error {
	if s != "true" {
		return fmt.Errorf("command flags take no value")
	}
	if f.opts.selected {
		return fmt.Errorf("%w (%s), cannot also run %s", engine.ErrCommandAlreadySelected, f.opts.command, f.cmd)
	}
	f.opts.command = f.cmd
	f.opts.selected = true
	return nil
}

// verbosityFlag validates -v while parsing.
type verbosityFlag struct {
	opts *options
}

func (f *verbosityFlag) String() string { return "0" }

func (f *verbosityFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("-v argument is not an integer")
	}
	if err := config.ValidateVerbosity(v); err != nil {
		return err
	}
	f.opts.verbosity = v
	f.opts.verbositySet = true
	return nil
}

// targetFlag records -s.
type targetFlag struct {
	opts *options
}

func (f *targetFlag) String() string { return engine.DefaultAddress.String() }

func (f *targetFlag) Set(s string) error {
	f.opts.target = s
	f.opts.targetSet = true
	return nil
}

var commandFlags = []struct {
	name string
	cmd  engine.Command
	help string
}{
	{"H", engine.CommandHelp, "Show this help and exit"},
	{"h", engine.CommandHelp, "Show this help and exit"},
	{"V", engine.CommandVersion, "Show program version and exit"},
	{"L", engine.CommandList, "List available devices"},
	{"A", engine.CommandAdd, "Increase brightness by value"},
	{"U", engine.CommandSubtract, "Decrease brightness by value"},
	{"S", engine.CommandSet, "Set brightness to value"},
	{"G", engine.CommandGet, "Get brightness"},
	{"M", engine.CommandGetMax, "Get max brightness"},
	{"N", engine.CommandSetMinCap, "Set minimum brightness to value"},
	{"P", engine.CommandGetMinCap, "Get minimum brightness"},
	{"O", engine.CommandSave, "Save the current brightness"},
	{"I", engine.CommandRestore, "Restore the previously saved brightness"},
}

// parseArgs parses args (without the program name). Errors are returned,
// never printed.
func parseArgs(args []string) (*options, error) {
	opts := &options{command: engine.CommandGet, target: engine.DefaultAddress.String()}

	fs := flag.NewFlagSet("light", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, cf := range commandFlags {
		fs.Var(&commandFlag{opts: opts, cmd: cf.cmd}, cf.name, cf.help)
	}
	fs.BoolVar(&opts.raw, "r", false, "Interpret input and output values in raw mode")
	fs.Var(&targetFlag{opts: opts}, "s", "Specify device target path to use, use -L to list available")
	fs.Var(&verbosityFlag{opts: opts}, "v", "Specify the verbosity level (default 0)")

	// flag stops at the first positional argument; resume after it so
	// options may follow the value.
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		consumed := len(rest) - fs.NArg()
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		if consumed > 0 && args[len(args)-len(rest)-1] == "--" {
			opts.args = append(opts.args, rest...)
			break
		}
		opts.args = append(opts.args, rest[0])
		rest = rest[1:]
	}

	switch {
	case opts.command.NeedsValue() && len(opts.args) == 0:
		return nil, engine.ErrMissingValue
	case opts.command.NeedsValue() && len(opts.args) > 1:
		return nil, fmt.Errorf("%w: %q", engine.ErrUnexpectedArgument, opts.args[1])
	case !opts.command.NeedsValue() && len(opts.args) > 0:
		return nil, fmt.Errorf("%w: %q", engine.ErrUnexpectedArgument, opts.args[0])
	}
	return opts, nil
}
