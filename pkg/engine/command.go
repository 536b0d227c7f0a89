package engine

import "fmt"

// Command is the operation a run performs.
type Command uint8

const (
	CommandGet Command = iota
	CommandSet
	CommandAdd
	CommandSubtract
	CommandGetMax
	CommandGetMinCap
	CommandSetMinCap
	CommandSave
	CommandRestore
	CommandList
	CommandHelp
	CommandVersion
)

var commandNames = [...]string{
	CommandGet:       "get",
	CommandSet:       "set",
	CommandAdd:       "add",
	CommandSubtract:  "subtract",
	CommandGetMax:    "get-max",
	CommandGetMinCap: "get-mincap",
	CommandSetMinCap: "set-mincap",
	CommandSave:      "save",
	CommandRestore:   "restore",
	CommandList:      "list",
	CommandHelp:      "help",
	CommandVersion:   "version",
}

// String returns the command name.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand returns the command named s, as returned by String.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if name == s {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", s)
}

// NeedsTarget reports whether the command operates on a target.
func (c Command) NeedsTarget() bool {
	switch c {
	case CommandList, CommandHelp, CommandVersion:
		return false
	default:
		return true
	}
}

// NeedsValue reports whether the command takes a numeric input.
func (c Command) NeedsValue() bool {
	switch c {
	case CommandSet, CommandAdd, CommandSubtract, CommandSetMinCap:
		return true
	default:
		return false
	}
}

// Writes reports whether the command changes the target or its persisted
// state.
func (c Command) Writes() bool {
	switch c {
	case CommandSet, CommandAdd, CommandSubtract, CommandSetMinCap, CommandSave, CommandRestore:
		return true
	default:
		return false
	}
}
