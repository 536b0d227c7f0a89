// Package driver implements vendor-specific enumerators described by YAML
// definitions.
//
// A definition names a driver directory such as
// /sys/bus/hid/drivers/razerkbd. Each entry in it is a device; each
// candidate target whose file exists in the device directory is added.
// Candidates that do not exist are skipped, since the set of files differs
// between models of the same vendor.
package driver

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/fileio"
	"github.com/light-project/light-go/pkg/model"
)

// Driver discovers the devices of one Definition.
type Driver struct {
	def  *Definition
	root string
	log  log.FieldLogger
}

// New creates a driver for def, resolving its root below sysroot.
func New(def *Definition, sysroot string, l log.FieldLogger) *Driver {
	if sysroot == "" {
		sysroot = "/"
	}
	return &Driver{
		def:  def,
		root: filepath.Join(sysroot, def.Root),
		log:  l.WithField("enumerator", def.Name),
	}
}

// Init adds one device per directory under the driver root. A missing root
// means the vendor driver is not installed and is not an error.
func (d *Driver) Init(e *model.Enumerator) error {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		d.log.WithError(err).Debug("driver directory unavailable, no devices")
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		dir := filepath.Join(d.root, name)
		// Device entries are usually symlinks; Stat follows them.
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		if err := d.addDevice(e, name, dir); err != nil {
			return err
		}
	}
	return nil
}

// Free has nothing to release.
func (d *Driver) Free(*model.Enumerator) error {
	return nil
}

func (d *Driver) addDevice(e *model.Enumerator, name, dir string) error {
	dev, err := e.AddDevice(name, dir)
	if err != nil {
		return err
	}

	logger := d.log.WithField("device", name)
	for _, td := range d.def.Targets {
		ctrl := &fileController{
			path: filepath.Join(dir, td.File),
			max:  td.Max,
			log:  logger.WithField("target", td.Name),
		}
		if td.MaxFile != "" {
			ctrl.maxPath = filepath.Join(dir, td.MaxFile)
		}

		if !fileio.Exists(ctrl.path) {
			logger.WithFields(log.Fields{"target": td.Name, "file": td.File}).Debug("candidate file missing, skipping target")
			continue
		}
		if _, err := dev.AddTarget(td.Name, ctrl); err != nil {
			return err
		}
	}
	return nil
}

// fileController reads and writes a single vendor attribute file. The
// upper bound is either fixed or read from maxPath.
type fileController struct {
	model.NopCommand

	path    string
	maxPath string
	max     uint64
	log     log.FieldLogger
}

func (c *fileController) Value() (uint64, error) {
	v, err := fileio.ReadUint64(c.path)
	if err != nil {
		c.log.WithError(err).Error("failed to read from device")
		return 0, err
	}
	return v, nil
}

func (c *fileController) SetValue(v uint64) error {
	if err := fileio.WriteUint64(c.path, v); err != nil {
		c.log.WithError(err).Error("failed to write to device")
		return err
	}
	return nil
}

func (c *fileController) MaxValue() (uint64, error) {
	if c.maxPath == "" {
		return c.max, nil
	}
	v, err := fileio.ReadUint64(c.maxPath)
	if err != nil {
		c.log.WithError(err).Error("failed to read max value from device")
		return 0, err
	}
	return v, nil
}
