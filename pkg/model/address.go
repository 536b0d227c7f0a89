package model

import (
	"errors"
	"fmt"
	"strings"
)

// Address errors.
var (
	ErrMalformedAddress = errors.New("address must have the form enumerator/device/target")
	ErrNotFound         = errors.New("not found")
)

// Segment names one level of an address.
type Segment string

const (
	SegmentEnumerator Segment = "enumerator"
	SegmentDevice     Segment = "device"
	SegmentTarget     Segment = "target"
)

// NotFoundError reports the address segment that did not match.
type NotFoundError struct {
	Segment Segment
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s %q", e.Segment, e.Name)
}

// Is makes NotFoundError match ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Address identifies a target as enumerator/device/target.
type Address struct {
	Enumerator string
	Device     string
	Target     string
}

// ParseAddress parses "enumerator/device/target". The input must contain
// exactly two separators and three non-empty segments.
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Address{}, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
	}
	for _, p := range parts {
		if p == "" {
			return Address{}, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
		}
	}
	return Address{Enumerator: parts[0], Device: parts[1], Target: parts[2]}, nil
}

// MustParseAddress is like ParseAddress but panics on error. Intended for
// package-level constants.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the address in enumerator/device/target form.
func (a Address) String() string {
	return a.Enumerator + "/" + a.Device + "/" + a.Target
}
