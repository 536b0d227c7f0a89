package model

import (
	"errors"
	"fmt"
)

// Enumerator errors.
var (
	ErrDuplicateDevice     = errors.New("duplicate device name")
	ErrDuplicateEnumerator = errors.New("duplicate enumerator name")
)

// Driver is the capability set of a backend family. Init discovers the
// hardware it knows about and registers devices and targets on e; Free
// releases whatever Init acquired. Absent hardware is not an error.
type Driver interface {
	Init(e *Enumerator) error
	Free(e *Enumerator) error
}

// Enumerator is a named backend owning the devices it discovered.
type Enumerator struct {
	// Name is unique within the registry.
	name string

	// Driver supplying discovery.
	driver Driver

	// Devices in discovery order.
	devices []*Device
}

// NewEnumerator creates an enumerator that is not attached to a registry.
// Most callers use Registry.Register instead.
func NewEnumerator(name string, driver Driver) *Enumerator {
	return &Enumerator{name: name, driver: driver}
}

// Name returns the enumerator name.
func (e *Enumerator) Name() string {
	return e.name
}

// AddDevice creates a device named name with optional backend data.
// Returns an error if a device with the same name already exists.
func (e *Enumerator) AddDevice(name string, data any) (*Device, error) {
	if name == "" {
		return nil, fmt.Errorf("device: %w", ErrEmptyName)
	}
	if _, ok := e.lookup(name); ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateDevice, e.name, name)
	}

	d := &Device{name: name, enumerator: e, data: data}
	e.devices = append(e.devices, d)
	return d, nil
}

// Device returns the device with the given name.
func (e *Enumerator) Device(name string) (*Device, error) {
	d, ok := e.lookup(name)
	if !ok {
		return nil, &NotFoundError{Segment: SegmentDevice, Name: name}
	}
	return d, nil
}

// Devices returns all devices in discovery order.
func (e *Enumerator) Devices() []*Device {
	result := make([]*Device, len(e.devices))
	copy(result, e.devices)
	return result
}

// DeviceCount returns the number of devices.
func (e *Enumerator) DeviceCount() int {
	return len(e.devices)
}

// Init runs the driver's discovery.
func (e *Enumerator) Init() error {
	if e.driver == nil {
		return nil
	}
	if err := e.driver.Init(e); err != nil {
		return fmt.Errorf("enumerator %s: init: %w", e.name, err)
	}
	return nil
}

// Free runs the driver's teardown and then drops every device and target.
// Devices are released even when the driver reports an error.
func (e *Enumerator) Free() error {
	var err error
	if e.driver != nil {
		if ferr := e.driver.Free(e); ferr != nil {
			err = fmt.Errorf("enumerator %s: free: %w", e.name, ferr)
		}
	}

	for _, d := range e.devices {
		d.release()
	}
	e.devices = nil
	return err
}

func (e *Enumerator) lookup(name string) (*Device, bool) {
	for _, d := range e.devices {
		if d.name == name {
			return d, true
		}
	}
	return nil, false
}
