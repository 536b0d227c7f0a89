package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-project/light-go/pkg/engine"
)

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		args []string
		want engine.Command
	}{
		{nil, engine.CommandGet},
		{[]string{"-G"}, engine.CommandGet},
		{[]string{"-S", "1"}, engine.CommandSet},
		{[]string{"-A", "1"}, engine.CommandAdd},
		{[]string{"-U", "1"}, engine.CommandSubtract},
		{[]string{"-M"}, engine.CommandGetMax},
		{[]string{"-N", "1"}, engine.CommandSetMinCap},
		{[]string{"-P"}, engine.CommandGetMinCap},
		{[]string{"-O"}, engine.CommandSave},
		{[]string{"-I"}, engine.CommandRestore},
		{[]string{"-L"}, engine.CommandList},
		{[]string{"-H"}, engine.CommandHelp},
		{[]string{"-h"}, engine.CommandHelp},
		{[]string{"-V"}, engine.CommandVersion},
	}
	for _, tt := range tests {
		opts, err := parseArgs(tt.args)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, opts.command, tt.args)
	}
}

func TestParseArgsOptions(t *testing.T) {
	opts, err := parseArgs([]string{"-r", "-v", "3", "-s", "sysfs/leds/x", "-S", "7"})
	require.NoError(t, err)

	assert.True(t, opts.raw)
	assert.Equal(t, 3, opts.verbosity)
	assert.True(t, opts.verbositySet)
	assert.Equal(t, "sysfs/leds/x", opts.target)
	assert.True(t, opts.targetSet)
	assert.Equal(t, []string{"7"}, opts.args)
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "sysfs/backlight/auto", opts.target)
	assert.False(t, opts.targetSet)
	assert.False(t, opts.verbositySet)
}

func TestParseArgsRejectsSecondCommand(t *testing.T) {
	_, err := parseArgs([]string{"-L", "-G"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), engine.ErrCommandAlreadySelected.Error())

	_, err = parseArgs([]string{"-G", "-G"})
	assert.Error(t, err)
}

func TestParseArgsOptionsAfterValue(t *testing.T) {
	opts, err := parseArgs([]string{"-S", "50", "-r"})
	require.NoError(t, err)
	assert.True(t, opts.raw)
	assert.Equal(t, []string{"50"}, opts.args)

	opts, err = parseArgs([]string{"-A", "5", "-s", "sysfs/leds/x", "-v", "2"})
	require.NoError(t, err)
	assert.Equal(t, "sysfs/leds/x", opts.target)
	assert.Equal(t, 2, opts.verbosity)
	assert.Equal(t, []string{"5"}, opts.args)
}

func TestParseArgsEndOfOptions(t *testing.T) {
	opts, err := parseArgs([]string{"-r", "-S", "--", "7"})
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, opts.args)

	_, err = parseArgs([]string{"-S", "--", "7", "-r"})
	assert.ErrorIs(t, err, engine.ErrUnexpectedArgument)
}

func TestParseArgsRejectsExtraArguments(t *testing.T) {
	tests := [][]string{
		{"-S", "10", "20"},
		{"-r", "-N", "1", "2", "3"},
		{"-G", "5"},
		{"-L", "all"},
		{"extra"},
	}
	for _, args := range tests {
		_, err := parseArgs(args)
		assert.ErrorIs(t, err, engine.ErrUnexpectedArgument, args)
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	_, err := parseArgs([]string{"-A"})
	assert.ErrorIs(t, err, engine.ErrMissingValue)
}
