package model

import (
	"errors"
	"testing"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    Address
		wantErr bool
	}{
		{in: "sysfs/backlight/auto", want: Address{"sysfs", "backlight", "auto"}},
		{in: "util/test/dryrun", want: Address{"util", "test", "dryrun"}},
		{in: "sysfs/leds/input0::capslock", want: Address{"sysfs", "leds", "input0::capslock"}},
		{in: "", wantErr: true},
		{in: "a", wantErr: true},
		{in: "a/b", wantErr: true},
		{in: "a/b/c/d", wantErr: true},
		{in: "a//c", wantErr: true},
		{in: "/b/c", wantErr: true},
		{in: "a/b/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddress(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedAddress) {
					t.Fatalf("ParseAddress(%q) error = %v, want ErrMalformedAddress", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAddress(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAddress(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestMustParseAddressPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseAddress("bad")
}

func TestNotFoundErrorIs(t *testing.T) {
	err := error(&NotFoundError{Segment: SegmentDevice, Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if err.Error() != `no such device "x"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
