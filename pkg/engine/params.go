package engine

import (
	"fmt"
	"strconv"

	"github.com/light-project/light-go/pkg/model"
)

// Params are the parameters of one run. The Target is borrowed from the
// registry and must not outlive it.
type Params struct {
	Command Command
	Target  *model.Target

	// Raw selects raw units for input and output. Otherwise values are
	// percentages of the target's max.
	Raw bool

	// Value is the input in raw mode.
	Value uint64

	// Percent is the input in percent mode.
	Percent float64
}

// SetInput parses s as the numeric input: an unsigned integer in raw
// mode, a decimal otherwise.
func (p *Params) SetInput(s string) error {
	if p.Raw {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: <value> is not an integer: %q", ErrInvalidValue, s)
		}
		p.Value = v
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: <value> is not a decimal: %q", ErrInvalidValue, s)
	}
	p.Percent = v
	return nil
}
