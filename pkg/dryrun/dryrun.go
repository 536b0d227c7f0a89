// Package dryrun provides the "util" enumerator with its single test
// target, util/test/dryrun. The target reports 0 out of 255 and accepts
// every write without touching the system.
package dryrun

import (
	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/model"
)

// Names of the enumerator, device and target.
const (
	Name   = "util"
	Device = "test"
	Target = "dryrun"
)

// MaxValue is what the dry-run target reports as its upper bound.
const MaxValue uint64 = 255

// Address is the full address of the dry-run target.
var Address = model.Address{Enumerator: Name, Device: Device, Target: Target}

// Driver registers the dry-run target.
type Driver struct {
	log log.FieldLogger
}

// New creates the dry-run driver.
func New(l log.FieldLogger) *Driver {
	return &Driver{log: l.WithField("enumerator", Name)}
}

func (d *Driver) Init(e *model.Enumerator) error {
	dev, err := e.AddDevice(Device, nil)
	if err != nil {
		return err
	}
	_, err = dev.AddTarget(Target, &controller{log: d.log})
	return err
}

func (d *Driver) Free(*model.Enumerator) error {
	return nil
}

type controller struct {
	log log.FieldLogger
}

func (c *controller) Value() (uint64, error) {
	c.log.Info("dryrun: reading value, always 0")
	return 0, nil
}

func (c *controller) SetValue(v uint64) error {
	c.log.Infof("dryrun: would set value to %d", v)
	return nil
}

func (c *controller) MaxValue() (uint64, error) {
	c.log.Infof("dryrun: reading max value, always %d", MaxValue)
	return MaxValue, nil
}

func (c *controller) Command(cmd string) error {
	c.log.Infof("dryrun: would run command %q", cmd)
	return nil
}
