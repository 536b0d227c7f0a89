package journal

import (
	"time"

	"github.com/google/uuid"
)

// FileName is the journal file name inside the state directory.
const FileName = "journal.cbor"

// Event records one write made by a command.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// ID uniquely identifies the event (UUID).
	ID string `cbor:"1,keyasint"`

	// Timestamp when the write happened (nanosecond precision).
	Timestamp time.Time `cbor:"2,keyasint"`

	// Command that performed the write, e.g. "set" or "save".
	Command string `cbor:"3,keyasint"`

	// Address of the target, enumerator/device/target.
	Address string `cbor:"4,keyasint"`

	// Kind tells what was written.
	Kind Kind `cbor:"5,keyasint"`

	// Value is the raw value written.
	Value uint64 `cbor:"6,keyasint"`

	// Previous is the raw value before the write, when it was known.
	Previous *uint64 `cbor:"7,keyasint,omitempty"`

	// Max is the target's raw upper bound at the time of the write.
	Max uint64 `cbor:"8,keyasint,omitempty"`

	// Raw is true when the user gave the input in raw units.
	Raw bool `cbor:"9,keyasint,omitempty"`
}

// Kind tells which value an event changed.
type Kind uint8

const (
	// KindValue is a write to the controller itself.
	KindValue Kind = 0
	// KindMinCap is a write to the persisted minimum cap.
	KindMinCap Kind = 1
	// KindSave is a write to the persisted save slot.
	KindSave Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "VALUE"
	case KindMinCap:
		return "MINCAP"
	case KindSave:
		return "SAVE"
	default:
		return "UNKNOWN"
	}
}

// ParseKind returns the Kind named s (as returned by String).
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindValue, KindMinCap, KindSave} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// NewEvent returns an event with a fresh ID and the current time.
func NewEvent(command, address string, kind Kind, value uint64) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Command:   command,
		Address:   address,
		Kind:      kind,
		Value:     value,
	}
}

// WithPrevious returns a copy of e with Previous set to v.
func (e Event) WithPrevious(v uint64) Event {
	e.Previous = &v
	return e
}
