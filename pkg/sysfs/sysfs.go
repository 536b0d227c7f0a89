package sysfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/fileio"
	"github.com/light-project/light-go/pkg/model"
)

// Name is the enumerator name used for registration.
const Name = "sysfs"

// Device and target names.
const (
	DeviceBacklight = "backlight"
	DeviceLEDs      = "leds"
	TargetAuto      = "auto"
)

// Entry files.
const (
	brightnessFile    = "brightness"
	maxBrightnessFile = "max_brightness"
)

// Driver discovers backlight and LED controllers.
type Driver struct {
	root string
	log  log.FieldLogger
}

// New creates a driver that scans <sysroot>/sys/class.
func New(sysroot string, l log.FieldLogger) *Driver {
	if sysroot == "" {
		sysroot = "/"
	}
	return &Driver{root: sysroot, log: l.WithField("enumerator", Name)}
}

// ClassDir returns the directory scanned for class.
func (d *Driver) ClassDir(class string) string {
	return filepath.Join(d.root, "sys", "class", class)
}

// Init registers the backlight and leds devices. A class directory that
// cannot be opened is reported but does not stop the other class.
func (d *Driver) Init(e *model.Enumerator) error {
	return errors.Join(
		d.initClass(e, DeviceBacklight, true),
		d.initClass(e, DeviceLEDs, false),
	)
}

// Free has nothing to release.
func (d *Driver) Free(*model.Enumerator) error {
	return nil
}

func (d *Driver) initClass(e *model.Enumerator, class string, withAuto bool) error {
	dev, err := e.AddDevice(class, nil)
	if err != nil {
		return err
	}

	dir := d.ClassDir(class)
	entries, err := os.ReadDir(dir)
	if err != nil {
		d.log.WithError(err).WithField("dir", dir).Error("failed to open controller directory for reading")
		return fmt.Errorf("%w: %s: %w", fileio.ErrAccess, dir, err)
	}

	var (
		best    *classController
		bestMax uint64
	)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		ctrl := d.newController(filepath.Join(dir, name))
		logger := d.log.WithFields(log.Fields{"device": class, "target": name})

		if !fileio.Exists(ctrl.brightness) {
			logger.Warn("no brightness file, skipping controller")
			continue
		}
		max, err := fileio.ReadUint64(ctrl.maxBrightness)
		if err != nil {
			logger.WithError(err).Warn("unreadable max_brightness, skipping controller")
			continue
		}
		if max == 0 {
			logger.Warn("max_brightness is 0, skipping controller")
			continue
		}

		if _, err := dev.AddTarget(name, ctrl); err != nil {
			logger.WithError(err).Warn("failed to add target")
			continue
		}

		if withAuto && max > bestMax {
			best, bestMax = ctrl, max
		}
	}

	if best != nil {
		auto := d.newController(best.dir)
		if _, err := dev.AddTarget(TargetAuto, auto); err != nil {
			return err
		}
		d.log.WithField("target", filepath.Base(best.dir)).Debug("auto target selected")
	}
	return nil
}

func (d *Driver) newController(dir string) *classController {
	return &classController{
		dir:           dir,
		brightness:    filepath.Join(dir, brightnessFile),
		maxBrightness: filepath.Join(dir, maxBrightnessFile),
		log:           d.log,
	}
}

// classController reads and writes one sysfs class entry.
type classController struct {
	model.NopCommand

	dir           string
	brightness    string
	maxBrightness string
	log           log.FieldLogger
}

func (c *classController) Value() (uint64, error) {
	v, err := fileio.ReadUint64(c.brightness)
	if err != nil {
		c.log.WithError(err).Error("failed to read from sysfs device")
		return 0, err
	}
	return v, nil
}

func (c *classController) SetValue(v uint64) error {
	if err := fileio.WriteUint64(c.brightness, v); err != nil {
		c.log.WithError(err).Error("failed to write to sysfs device")
		return err
	}
	return nil
}

func (c *classController) MaxValue() (uint64, error) {
	v, err := fileio.ReadUint64(c.maxBrightness)
	if err != nil {
		c.log.WithError(err).Error("failed to read from sysfs device")
		return 0, err
	}
	return v, nil
}
