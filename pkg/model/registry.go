package model

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Registry owns the ordered set of enumerators and resolves addresses.
type Registry struct {
	enumerators []*Enumerator
	log         log.FieldLogger
}

// NewRegistry creates an empty registry logging to l.
func NewRegistry(l log.FieldLogger) *Registry {
	return &Registry{log: l}
}

// Register adds an enumerator named name backed by driver.
func (r *Registry) Register(name string, driver Driver) (*Enumerator, error) {
	if name == "" {
		return nil, fmt.Errorf("enumerator: %w", ErrEmptyName)
	}
	if _, ok := r.lookup(name); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEnumerator, name)
	}

	e := NewEnumerator(name, driver)
	r.enumerators = append(r.enumerators, e)
	return e, nil
}

// Enumerator returns the enumerator with the given name.
func (r *Registry) Enumerator(name string) (*Enumerator, error) {
	e, ok := r.lookup(name)
	if !ok {
		return nil, &NotFoundError{Segment: SegmentEnumerator, Name: name}
	}
	return e, nil
}

// Enumerators returns all enumerators in registration order.
func (r *Registry) Enumerators() []*Enumerator {
	result := make([]*Enumerator, len(r.enumerators))
	copy(result, r.enumerators)
	return result
}

// Init initializes every enumerator in registration order. A failing
// enumerator is logged and skipped; the others still run. The returned
// error joins all failures.
func (r *Registry) Init() error {
	var errs []error
	for _, e := range r.enumerators {
		if err := e.Init(); err != nil {
			r.log.WithField("enumerator", e.name).WithError(err).Warn("failed to initialize enumerator")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Free finalizes every enumerator and empties the registry.
func (r *Registry) Free() error {
	var errs []error
	for _, e := range r.enumerators {
		if err := e.Free(); err != nil {
			r.log.WithField("enumerator", e.name).WithError(err).Warn("failed to free enumerator")
			errs = append(errs, err)
		}
	}
	r.enumerators = nil
	return errors.Join(errs...)
}

// Resolve parses addr and returns the matching target.
func (r *Registry) Resolve(addr string) (*Target, error) {
	a, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	return r.ResolveAddress(a)
}

// ResolveAddress returns the target at a. Errors name the first segment
// that does not match and satisfy errors.Is(err, ErrNotFound).
func (r *Registry) ResolveAddress(a Address) (*Target, error) {
	e, err := r.Enumerator(a.Enumerator)
	if err != nil {
		return nil, err
	}
	d, err := e.Device(a.Device)
	if err != nil {
		return nil, err
	}
	return d.Target(a.Target)
}

// Targets returns every target across all enumerators and devices, in
// registration and discovery order.
func (r *Registry) Targets() []*Target {
	var result []*Target
	for _, e := range r.enumerators {
		for _, d := range e.devices {
			result = append(result, d.targets...)
		}
	}
	return result
}

// Addresses returns the address of every target.
func (r *Registry) Addresses() []Address {
	targets := r.Targets()
	result := make([]Address, 0, len(targets))
	for _, t := range targets {
		result = append(result, t.Address())
	}
	return result
}

func (r *Registry) lookup(name string) (*Enumerator, bool) {
	for _, e := range r.enumerators {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}
