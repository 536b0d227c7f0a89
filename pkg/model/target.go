package model

// Controller is the capability set a backend supplies for a single Target.
// The concrete value behind the interface is the backend's private state.
type Controller interface {
	// Value returns the current raw value.
	Value() (uint64, error)

	// SetValue writes a raw value.
	SetValue(v uint64) error

	// MaxValue returns the upper bound of the raw range.
	MaxValue() (uint64, error)

	// Command runs a backend-defined free-form command.
	Command(cmd string) error
}

// Target is the smallest addressable, controllable unit.
type Target struct {
	// Name is unique within the owning device.
	name string

	// Device owning this target.
	device *Device

	// Controller supplied by the enumerator that created the target.
	ctrl Controller
}

// Name returns the target name.
func (t *Target) Name() string {
	return t.name
}

// Device returns the device that owns the target.
func (t *Target) Device() *Device {
	return t.device
}

// Address returns the full address of the target.
func (t *Target) Address() Address {
	return Address{
		Enumerator: t.device.enumerator.name,
		Device:     t.device.name,
		Target:     t.name,
	}
}

// Value reads the current raw value.
func (t *Target) Value() (uint64, error) {
	return t.ctrl.Value()
}

// SetValue writes a raw value.
func (t *Target) SetValue(v uint64) error {
	return t.ctrl.SetValue(v)
}

// MaxValue reads the upper bound of the raw range.
func (t *Target) MaxValue() (uint64, error) {
	return t.ctrl.MaxValue()
}

// Command runs a custom backend command.
func (t *Target) Command(cmd string) error {
	return t.ctrl.Command(cmd)
}

// NopCommand can be embedded by controllers whose backend has no custom
// commands; it accepts every command and does nothing.
type NopCommand struct{}

// Command accepts cmd and does nothing.
func (NopCommand) Command(string) error { return nil }
