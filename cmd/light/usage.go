package main

import (
	"fmt"
	"io"

	"github.com/light-project/light-go/pkg/version"
)

const usage = `Usage:
  light [OPTIONS] [VALUE]

Commands:
  -H, -h      Show this help and exit
  -V          Show program version and exit
  -L          List available devices
  -A          Increase brightness by value
  -U          Decrease brightness by value
  -S          Set brightness to value
  -G          Get brightness
  -M          Get max brightness
  -N          Set minimum brightness to value
  -P          Get minimum brightness
  -O          Save the current brightness
  -I          Restore the previously saved brightness

Options:
  -r          Interpret input and output values in raw mode
  -s          Specify device target path to use, use -L to list available
  -v          Specify the verbosity level (default 0)
                 0: Values only
                 1: Values, Errors.
                 2: Values, Errors, Warnings.
                 3: Values, Errors, Warnings, Notices.

`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
	fmt.Fprint(w, version.CopyrightNotice())
}
