package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/light-project/light-go/pkg/journal"
)

// Stats holds aggregate statistics about a journal.
type Stats struct {
	TotalEvents     int
	EventsByKind    map[journal.Kind]int
	EventsByCommand map[string]int
	Targets         map[string]*TargetStats
	TimeRange       struct {
		Start time.Time
		End   time.Time
	}
}

// TargetStats holds statistics for a single target address.
type TargetStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Writes    int
	LastValue uint64
}

// Collect reads the journal at path and aggregates it.
func Collect(path string) (*Stats, error) {
	reader, err := journal.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind:    make(map[journal.Kind]int),
		EventsByCommand: make(map[string]int),
		Targets:         make(map[string]*TargetStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++
		stats.EventsByCommand[event.Command]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ts, ok := stats.Targets[event.Address]
		if !ok {
			ts = &TargetStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Targets[event.Address] = ts
		}
		ts.Writes++
		if !event.Timestamp.Before(ts.LastSeen) {
			ts.LastSeen = event.Timestamp
			if event.Kind == journal.KindValue {
				ts.LastValue = event.Value
			}
		}
	}
	return stats, nil
}

// RunStats prints statistics about the journal at path.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== light Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, k := range []journal.Kind{journal.KindValue, journal.KindMinCap, journal.KindSave} {
		if count := stats.EventsByKind[k]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", k.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Command:")
	cmds := make([]string, 0, len(stats.EventsByCommand))
	for c := range stats.EventsByCommand {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-12s %d\n", c+":", stats.EventsByCommand[c])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Targets: %d\n", len(stats.Targets))
	addrs := make([]string, 0, len(stats.Targets))
	for a := range stats.Targets {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	for _, a := range addrs {
		ts := stats.Targets[a]
		fmt.Fprintf(w, "  %s: %d writes, last value %d\n", a, ts.Writes, ts.LastValue)
	}
}
