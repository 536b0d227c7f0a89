// Package engine executes light commands against a selected target.
//
// The engine converts between raw and percent units, enforces the
// persisted minimum cap, reads and writes the save slot and records every
// write in the journal. It never prints; callers render the Result.
package engine

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/codec"
	"github.com/light-project/light-go/pkg/journal"
	"github.com/light-project/light-go/pkg/model"
	"github.com/light-project/light-go/pkg/persistence"
)

// Engine errors.
var (
	ErrNoTarget               = errors.New("command needs a target")
	ErrNoSavedValue           = errors.New("no saved value")
	ErrNoAccessibleController = errors.New("no accessible controller")
	ErrInvalidValue           = errors.New("invalid value")
	ErrMissingValue           = errors.New("please specify a <value> for this command")
	ErrCommandAlreadySelected = errors.New("a command was already set")
	ErrUnexpectedArgument     = errors.New("unexpected argument")
)

// Config configures an Engine.
type Config struct {
	Registry *model.Registry
	Store    *persistence.Store

	// Journal receives an event per write. Nil disables the journal.
	Journal journal.Logger

	Logger log.FieldLogger
}

// Engine runs commands. It holds no per-run state.
type Engine struct {
	reg     *model.Registry
	store   *persistence.Store
	journal journal.Logger
	log     log.FieldLogger
	codec   *codec.Codec
}

// New creates an engine from cfg.
func New(cfg Config) *Engine {
	j := cfg.Journal
	if j == nil {
		j = journal.NoopLogger{}
	}
	return &Engine{
		reg:     cfg.Registry,
		store:   cfg.Store,
		journal: j,
		log:     cfg.Logger,
		codec:   codec.New(cfg.Logger),
	}
}

// Result is what a command produced for display.
type Result struct {
	Command Command
	Raw     bool

	// HasValue is set when Value or Percent should be printed.
	HasValue bool
	Value    uint64
	Percent  float64

	// Addresses is set by List.
	Addresses []model.Address
}

// Execute runs p.Command.
func (e *Engine) Execute(p Params) (*Result, error) {
	if p.Command.NeedsTarget() && p.Target == nil {
		return nil, fmt.Errorf("%s: %w", p.Command, ErrNoTarget)
	}

	res := &Result{Command: p.Command, Raw: p.Raw}
	var err error
	switch p.Command {
	case CommandGet:
		err = e.get(p, res)
	case CommandGetMax:
		err = e.getMax(p, res)
	case CommandSet:
		err = e.set(p)
	case CommandAdd:
		err = e.add(p)
	case CommandSubtract:
		err = e.subtract(p)
	case CommandGetMinCap:
		err = e.getMinCap(p, res)
	case CommandSetMinCap:
		err = e.setMinCap(p)
	case CommandSave:
		err = e.save(p)
	case CommandRestore:
		err = e.restore(p)
	case CommandList:
		res.Addresses = e.reg.Addresses()
	case CommandHelp, CommandVersion:
	default:
		err = fmt.Errorf("unknown command %s", p.Command)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) get(p Params, res *Result) error {
	v, err := p.Target.Value()
	if err != nil {
		return fmt.Errorf("failed to read from target: %w", err)
	}
	res.HasValue = true
	if p.Raw {
		res.Value = v
		return nil
	}

	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}
	pct, err := e.codec.RawToPercent(v, max)
	if err != nil {
		return err
	}
	res.Percent = pct
	return nil
}

func (e *Engine) getMax(p Params, res *Result) error {
	res.HasValue = true
	if !p.Raw {
		res.Percent = 100
		return nil
	}
	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}
	res.Value = max
	return nil
}

func (e *Engine) set(p Params) error {
	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}
	v := e.codec.ClampMin(e.input(p, max), e.minCap(p.Target))
	return e.write(p, journal.NewEvent(p.Command.String(), p.Target.Address().String(), journal.KindValue, v), max)
}

func (e *Engine) add(p Params) error {
	cur, err := p.Target.Value()
	if err != nil {
		return fmt.Errorf("failed to read from target: %w", err)
	}
	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}

	delta := e.input(p, max)
	v := cur + delta
	if delta > math.MaxUint64-cur {
		v = math.MaxUint64
	}
	v = e.codec.ClampMin(v, e.minCap(p.Target))
	v = e.codec.Clamp(v, 0, max)

	ev := journal.NewEvent(p.Command.String(), p.Target.Address().String(), journal.KindValue, v).WithPrevious(cur)
	return e.write(p, ev, max)
}

func (e *Engine) subtract(p Params) error {
	cur, err := p.Target.Value()
	if err != nil {
		return fmt.Errorf("failed to read from target: %w", err)
	}
	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}

	delta := e.input(p, max)
	var v uint64
	if cur > delta {
		v = cur - delta
	}
	v = e.codec.ClampMin(v, e.minCap(p.Target))

	ev := journal.NewEvent(p.Command.String(), p.Target.Address().String(), journal.KindValue, v).WithPrevious(cur)
	return e.write(p, ev, max)
}

func (e *Engine) getMinCap(p Params, res *Result) error {
	res.HasValue = true
	v, ok, err := e.store.MinCap(p.Target.Address())
	if err != nil {
		e.log.WithError(err).Warn("couldn't read minimum value, assuming 0")
	}
	if !ok || err != nil || p.Raw {
		res.Value = v
		return nil
	}

	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}
	pct, err := e.codec.RawToPercent(v, max)
	if err != nil {
		return err
	}
	res.Percent = pct
	return nil
}

func (e *Engine) setMinCap(p Params) error {
	max, err := e.maxValue(p.Target)
	if err != nil {
		return err
	}
	v := e.codec.Clamp(e.input(p, max), 0, max)

	addr := p.Target.Address()
	if err := e.store.SetMinCap(addr, v); err != nil {
		e.log.WithError(err).Error("couldn't write value to minimum file")
		return err
	}
	e.record(p, journal.NewEvent(p.Command.String(), addr.String(), journal.KindMinCap, v), max)
	return nil
}

func (e *Engine) save(p Params) error {
	v, err := p.Target.Value()
	if err != nil {
		return fmt.Errorf("failed to read from target: %w", err)
	}

	addr := p.Target.Address()
	if err := e.store.Save(addr, v); err != nil {
		e.log.WithError(err).Error("couldn't write value to savefile")
		return err
	}
	e.record(p, journal.NewEvent(p.Command.String(), addr.String(), journal.KindSave, v), 0)
	return nil
}

func (e *Engine) restore(p Params) error {
	addr := p.Target.Address()
	saved, ok, err := e.store.Saved(addr)
	if err != nil {
		e.log.WithError(err).Error("couldn't read value from savefile")
		return err
	}
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoSavedValue, addr)
	}

	v := e.codec.ClampMin(saved, e.minCap(p.Target))
	return e.write(p, journal.NewEvent(p.Command.String(), addr.String(), journal.KindValue, v), 0)
}

// input returns the numeric input of p in raw units.
func (e *Engine) input(p Params, max uint64) uint64 {
	if p.Raw {
		return p.Value
	}
	return e.codec.PercentToRaw(p.Percent, max)
}

// minCap returns the persisted minimum cap of t, or 0 when there is none
// or it cannot be read.
func (e *Engine) minCap(t *model.Target) uint64 {
	v, _, err := e.store.MinCap(t.Address())
	if err != nil {
		e.log.WithError(err).Warn("couldn't read minimum value, assuming 0")
		return 0
	}
	return v
}

func (e *Engine) maxValue(t *model.Target) (uint64, error) {
	max, err := t.MaxValue()
	if err != nil {
		return 0, fmt.Errorf("failed to read max value from target: %w", err)
	}
	return max, nil
}

// write sets the target to ev.Value and records ev.
func (e *Engine) write(p Params, ev journal.Event, max uint64) error {
	if err := p.Target.SetValue(ev.Value); err != nil {
		return fmt.Errorf("failed to write to target: %w", err)
	}
	e.record(p, ev, max)
	return nil
}

func (e *Engine) record(p Params, ev journal.Event, max uint64) {
	ev.Max = max
	ev.Raw = p.Raw
	if err := e.journal.Log(ev); err != nil {
		e.log.WithError(err).Warn("failed to record journal event")
	}
}
