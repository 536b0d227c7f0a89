package model

import (
	"errors"
	"fmt"
)

// Device errors.
var (
	ErrDuplicateTarget = errors.New("duplicate target name")
	ErrEmptyName       = errors.New("empty name")
)

// Device is a named, ordered collection of Targets.
type Device struct {
	// Name is unique within the owning enumerator.
	name string

	// Enumerator that discovered the device.
	enumerator *Enumerator

	// Targets in discovery order.
	targets []*Target

	// Data is optional backend-defined device state.
	data any
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// Enumerator returns the enumerator that owns the device.
func (d *Device) Enumerator() *Enumerator {
	return d.enumerator
}

// Data returns the backend-defined device data, or nil.
func (d *Device) Data() any {
	return d.data
}

// AddTarget creates a target named name backed by ctrl.
// Returns an error if a target with the same name already exists.
func (d *Device) AddTarget(name string, ctrl Controller) (*Target, error) {
	if name == "" {
		return nil, fmt.Errorf("target: %w", ErrEmptyName)
	}
	if ctrl == nil {
		return nil, fmt.Errorf("target %s: nil controller", name)
	}
	if _, ok := d.lookup(name); ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTarget, d.name, name)
	}

	t := &Target{name: name, device: d, ctrl: ctrl}
	d.targets = append(d.targets, t)
	return t, nil
}

// Target returns the target with the given name.
func (d *Device) Target(name string) (*Target, error) {
	t, ok := d.lookup(name)
	if !ok {
		return nil, &NotFoundError{Segment: SegmentTarget, Name: name}
	}
	return t, nil
}

// Targets returns all targets in discovery order.
func (d *Device) Targets() []*Target {
	result := make([]*Target, len(d.targets))
	copy(result, d.targets)
	return result
}

// TargetCount returns the number of targets.
func (d *Device) TargetCount() int {
	return len(d.targets)
}

func (d *Device) lookup(name string) (*Target, bool) {
	for _, t := range d.targets {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// release drops all targets and device data.
func (d *Device) release() {
	d.targets = nil
	d.data = nil
}
