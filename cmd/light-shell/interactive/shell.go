// Package interactive provides the interactive command-line interface
// of light-shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/engine"
	"github.com/light-project/light-go/pkg/model"
)

// Prompt is the readline prompt.
const Prompt = "light> "

// Shell runs light commands read line by line against one selected target.
type Shell struct {
	eng    *engine.Engine
	reg    *model.Registry
	target *model.Target
	raw    bool
	out    io.Writer
	log    log.FieldLogger
}

// Config configures a Shell.
type Config struct {
	Engine   *engine.Engine
	Registry *model.Registry

	// Target is the initially selected target. It may be nil.
	Target *model.Target
	Raw    bool

	// Out receives command output. Run replaces it with the readline
	// stdout.
	Out    io.Writer
	Logger log.FieldLogger
}

// New creates a shell from cfg.
func New(cfg Config) *Shell {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	return &Shell{
		eng:    cfg.Engine,
		reg:    cfg.Registry,
		target: cfg.Target,
		raw:    cfg.Raw,
		out:    out,
		log:    cfg.Logger,
	}
}

// Target returns the selected target.
func (s *Shell) Target() *model.Target {
	return s.target
}

// Raw reports whether values are read and written in raw units.
func (s *Shell) Raw() bool {
	return s.raw
}

// Run reads lines from a readline instance until quit, EOF or ctx is done.
// The logger passed in Config should write to Stderr of the returned
// instance; onReady is called with it before the first prompt.
func (s *Shell) Run(ctx context.Context, onReady func(*readline.Instance)) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	if onReady != nil {
		onReady(rl)
	}
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if !s.Exec(line) {
			return nil
		}
	}
}

func (s *Shell) completer() *readline.PrefixCompleter {
	addresses := func(string) []string {
		addrs := s.reg.Addresses()
		names := make([]string, len(addrs))
		for i, a := range addrs {
			names[i] = a.String()
		}
		return names
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("use", readline.PcItemDynamic(addresses)),
		readline.PcItem("get"),
		readline.PcItem("max"),
		readline.PcItem("set"),
		readline.PcItem("add"),
		readline.PcItem("sub"),
		readline.PcItem("mincap"),
		readline.PcItem("save"),
		readline.PcItem("restore"),
		readline.PcItem("raw", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Exec runs one input line. It returns false when the shell should stop.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	case "use":
		s.cmdUse(args)
	case "raw":
		s.cmdRaw(args)
	case "list", "ls":
		s.run(engine.CommandList, args, 0)
	case "get":
		s.run(engine.CommandGet, args, 0)
	case "max":
		s.run(engine.CommandGetMax, args, 0)
	case "set":
		s.run(engine.CommandSet, args, 1)
	case "add":
		s.run(engine.CommandAdd, args, 1)
	case "sub":
		s.run(engine.CommandSubtract, args, 1)
	case "mincap":
		if len(args) == 0 {
			s.run(engine.CommandGetMinCap, args, 0)
		} else {
			s.run(engine.CommandSetMinCap, args, 1)
		}
	case "save":
		s.run(engine.CommandSave, args, 0)
	case "restore":
		s.run(engine.CommandRestore, args, 0)
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) cmdUse(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: use <enumerator/device/target>")
		return
	}
	t, err := s.reg.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.target = t
	fmt.Fprintf(s.out, "Using %s\n", t.Address())
}

func (s *Shell) cmdRaw(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "raw mode is %s\n", onOff(s.raw))
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		s.raw = true
	case "off":
		s.raw = false
	default:
		fmt.Fprintln(s.out, "Usage: raw on|off")
		return
	}
	fmt.Fprintf(s.out, "raw mode is %s\n", onOff(s.raw))
}

// run builds fresh parameters for cmd and executes them. nargs is the
// number of arguments cmd takes.
func (s *Shell) run(cmd engine.Command, args []string, nargs int) {
	if len(args) != nargs {
		if nargs == 0 {
			fmt.Fprintf(s.out, "Usage: %s takes no arguments\n", cmd)
		} else {
			fmt.Fprintf(s.out, "Usage: %s <value>\n", cmd)
		}
		return
	}

	p := engine.Params{Command: cmd, Raw: s.raw}
	if cmd.NeedsTarget() {
		if s.target == nil {
			fmt.Fprintln(s.out, "Error: no target selected (see 'list' and 'use')")
			return
		}
		p.Target = s.target
	}
	if nargs == 1 {
		if err := p.SetInput(args[0]); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
	}

	res, err := s.eng.Execute(p)
	if err != nil {
		s.log.WithError(err).Debugf("%s failed", cmd)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if cmd == engine.CommandList && len(res.Addresses) == 0 {
		fmt.Fprintln(s.out, "No device targets were found.")
		return
	}
	fmt.Fprint(s.out, res.Format())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Shell) printHelp() {
	target := "none"
	if s.target != nil {
		target = s.target.Address().String()
	}
	fmt.Fprintf(s.out, `
light Shell Commands:
  Targets:
    list               - List device targets
    use <address>      - Select a target (enumerator/device/target)

  Brightness:
    get                - Print the current value
    max                - Print the maximum value
    set <v>            - Set the value
    add <v>            - Increase the value
    sub <v>            - Decrease the value
    mincap [v]         - Print or set the minimum cap
    save               - Save the current value
    restore            - Restore the saved value
    raw on|off         - Use raw values instead of percent

  Other:
    help               - Show this help
    quit               - Exit

Selected target: %s
`, target)
}
