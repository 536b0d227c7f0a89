package engine

import (
	"fmt"
	"strings"
)

// Format renders r the way the CLI prints it. Raw values print as
// integers and percentages with two decimals. Commands without output
// return "".
func (r *Result) Format() string {
	switch {
	case r.Command == CommandList:
		var b strings.Builder
		b.WriteString("Listing device targets:\n")
		for _, a := range r.Addresses {
			fmt.Fprintf(&b, "\t%s\n", a)
		}
		return b.String()
	case !r.HasValue:
		return ""
	case r.Raw:
		return fmt.Sprintf("%d\n", r.Value)
	case r.Command == CommandGetMax:
		return "100.0\n"
	default:
		return fmt.Sprintf("%.2f\n", r.Percent)
	}
}
