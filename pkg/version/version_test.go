package version

import (
	"strings"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"1.2.2", Version{1, 2, 2}},
		{"v1.2.2", Version{1, 2, 2}},
		{"0.0.1", Version{0, 0, 1}},
		{"10.23.4", Version{10, 23, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "1", "1.2", "1.2.3.4", "a.b.c", "1..2", "1.2.-1", "70000.0.0"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) expected error", input)
			}
		})
	}
}

func TestCurrentParses(t *testing.T) {
	v, err := Parse(Current)
	if err != nil {
		t.Fatalf("Parse(Current) error: %v", err)
	}
	if v.String() != Current {
		t.Errorf("String() = %q, want %q", v.String(), Current)
	}
	if Banner() != "v"+Current {
		t.Errorf("Banner() = %q", Banner())
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b Version
		want bool
	}{
		{Version{1, 2, 2}, Version{1, 2, 3}, true},
		{Version{1, 2, 2}, Version{1, 3, 0}, true},
		{Version{1, 9, 9}, Version{2, 0, 0}, true},
		{Version{1, 2, 2}, Version{1, 2, 2}, false},
		{Version{2, 0, 0}, Version{1, 9, 9}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCopyrightNotice(t *testing.T) {
	n := CopyrightNotice()
	if !strings.HasPrefix(n, "Copyright (C) 2012 - 2018  Fredrik Haikarainen\n") {
		t.Errorf("unexpected notice: %q", n)
	}
}
