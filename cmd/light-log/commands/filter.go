// Package commands implements the light-log CLI commands.
package commands

import (
	"fmt"
	"time"

	"github.com/light-project/light-go/pkg/journal"
)

// FilterOptions holds the filter flags shared by view and export.
type FilterOptions struct {
	Address   string
	Command   string
	Kind      string
	TimeStart string
	TimeEnd   string
}

// Build converts the options into a journal filter.
func (o FilterOptions) Build() (journal.Filter, error) {
	f := journal.Filter{
		Address: o.Address,
		Command: o.Command,
	}

	if o.Kind != "" {
		k, ok := journal.ParseKind(o.Kind)
		if !ok {
			return f, fmt.Errorf("invalid kind: %s (valid: VALUE, MINCAP, SAVE)", o.Kind)
		}
		f.Kind = &k
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return f, fmt.Errorf("invalid time-start format: %w", err)
		}
		f.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return f, fmt.Errorf("invalid time-end format: %w", err)
		}
		f.TimeEnd = &t
	}

	return f, nil
}
