package commands

import (
	"fmt"
	"io"

	"github.com/light-project/light-go/pkg/journal"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// RunView writes every event of the journal at path that matches filter
// in human-readable form.
func RunView(path string, filter journal.Filter, w io.Writer) error {
	reader, err := journal.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one event as a header line plus details.
func formatEvent(w io.Writer, event journal.Event) {
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [%s] %-10s %-6s %s\n", ts, shortenID(event.ID), event.Command, event.Kind, event.Address)

	if event.Previous != nil {
		fmt.Fprintf(w, "  Value: %d -> %d", *event.Previous, event.Value)
	} else {
		fmt.Fprintf(w, "  Value: %d", event.Value)
	}
	if event.Max > 0 {
		fmt.Fprintf(w, " (max %d, %.2f%%)", event.Max, float64(event.Value)*100/float64(event.Max))
	}
	fmt.Fprintln(w)
	if event.Raw {
		fmt.Fprintln(w, "  Input: raw")
	}
}

// shortenID returns the first 8 characters of an event ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
