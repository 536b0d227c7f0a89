// Command light-shell is an interactive prompt for reading and adjusting
// brightness targets.
//
// It reads the same environment and config.yaml as light. The -s flag
// selects the initial target; "use" switches it at the prompt.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/light-project/light-go/cmd/light-shell/interactive"
	"github.com/light-project/light-go/pkg/config"
	"github.com/light-project/light-go/pkg/engine"
	"github.com/light-project/light-go/pkg/fileio"
	"github.com/light-project/light-go/pkg/journal"
	"github.com/light-project/light-go/pkg/persistence"
)

var (
	target    = flag.String("s", "", "Initial target address (enumerator/device/target)")
	raw       = flag.Bool("r", false, "Start in raw mode")
	verbosity = flag.Int("v", -1, "Verbosity 0-3 (default from config)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(nil, os.Geteuid())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 2
	}
	if *target != "" {
		cfg.Target = *target
	}
	explicit := *target != "" || cfg.Target != engine.DefaultAddress.String()
	if *raw {
		cfg.Raw = true
	}
	if *verbosity >= 0 {
		if err := config.ValidateVerbosity(*verbosity); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 2
		}
		cfg.Verbosity = *verbosity
	}

	logger := config.NewLogger(os.Stderr, cfg.Verbosity)

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

	var jl journal.Logger
	if cfg.Journal {
		fl, err := journal.NewFileLogger(filepath.Join(cfg.StateDir, journal.FileName))
		if err != nil {
			logger.WithError(err).Warn("journal disabled")
		} else {
			defer fl.Close()
			jl = journal.NewMultiLogger(fl, journal.NewLogrusAdapter(logger))
		}
	}

	sel, err := engine.SelectTarget(reg, cfg.Target, explicit, logger)
	if err != nil {
		// The shell is still useful for listing and "use".
		logger.WithError(err).Warn("no initial target")
	}

	sh := interactive.New(interactive.Config{
		Engine: engine.New(engine.Config{
			Registry: reg,
			Store:    persistence.NewStore(cfg.StateDir),
			Journal:  jl,
			Logger:   logger,
		}),
		Registry: reg,
		Target:   sel,
		Raw:      cfg.Raw,
		Logger:   logger,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	err = sh.Run(ctx, func(rl *readline.Instance) {
		logger.SetOutput(rl.Stderr())
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
