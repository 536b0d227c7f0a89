// Package model implements the light device model.
//
// # Hierarchy
//
// Controllable endpoints are organised in a 3-level hierarchy:
//
//	Enumerator > Device > Target
//
// An Enumerator is a backend that discovers hardware of one family (generic
// sysfs classes, a vendor driver, the dry-run utility backend). Each
// Enumerator owns Devices, named groupings of related endpoints such as all
// backlight controllers or all LEDs of one keyboard. Devices own Targets, the
// smallest addressable unit with a readable and writable value.
//
//	Registry
//	├── sysfs
//	│   ├── backlight
//	│   │   ├── intel_backlight
//	│   │   └── auto
//	│   └── leds
//	│       └── input3::capslock
//	└── util
//	    └── test
//	        └── dryrun
//
// # Capabilities
//
// Backends plug in through two interfaces:
//   - Driver: Init discovers devices and targets, Free releases them
//   - Controller: Value, SetValue, MaxValue and Command for one target
//
// Callers never inspect which backend created a Target; they only go
// through its Controller.
//
// # Addressing
//
// Targets are addressed by the slash-separated tuple
//
//	enumerator/device/target
//
// Every segment is matched exactly and case-sensitively against the names
// in the hierarchy.
package model
