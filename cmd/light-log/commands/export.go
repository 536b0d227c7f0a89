package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/light-project/light-go/pkg/journal"
)

// jsonEvent is the JSON representation of an event.
type jsonEvent struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Command   string  `json:"command"`
	Address   string  `json:"address"`
	Kind      string  `json:"kind"`
	Value     uint64  `json:"value"`
	Previous  *uint64 `json:"previous,omitempty"`
	Max       uint64  `json:"max,omitempty"`
	Raw       bool    `json:"raw"`
}

// RunExport exports the matching events of the journal at path in format.
// An empty output writes to w.
func RunExport(path, format, output string, filter journal.Filter, w io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := journal.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *journal.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		je := jsonEvent{
			ID:        event.ID,
			Timestamp: event.Timestamp.UTC().Format(timeLayout),
			Command:   event.Command,
			Address:   event.Address,
			Kind:      event.Kind.String(),
			Value:     event.Value,
			Previous:  event.Previous,
			Max:       event.Max,
			Raw:       event.Raw,
		}
		if err := encoder.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *journal.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "id", "command", "address", "kind", "value", "previous", "max", "raw"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		prev := ""
		if event.Previous != nil {
			prev = strconv.FormatUint(*event.Previous, 10)
		}
		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.ID,
			event.Command,
			event.Address,
			event.Kind.String(),
			strconv.FormatUint(event.Value, 10),
			prev,
			strconv.FormatUint(event.Max, 10),
			strconv.FormatBool(event.Raw),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
