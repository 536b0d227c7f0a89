// Package version provides the light release version and its parsing and
// comparison helpers.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the version of this build.
const Current = "1.2.2"

// Copyright lines printed with the usage text.
const (
	Years  = "2012 - 2018"
	Author = "Fredrik Haikarainen"
)

// Version represents a parsed "major.minor.patch" version.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses a "major.minor.patch" version string. A leading "v" is
// accepted.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor.patch", s)
	}

	var nums [3]uint16
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.ParseUint(parts[i], 10, 16)
		if err != nil || parts[i] == "" {
			return Version{}, fmt.Errorf("invalid version %q: bad %s component", s, name)
		}
		nums[i] = uint16(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v precedes other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Banner returns the version line printed by -V, e.g. "v1.2.2".
func Banner() string {
	return "v" + Current
}

// CopyrightNotice returns the copyright and warranty lines.
func CopyrightNotice() string {
	return fmt.Sprintf("Copyright (C) %s  %s\n", Years, Author) +
		"This is free software, see the source for copying conditions.  There is NO\n" +
		"warranty; not even for MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE\n"
}
