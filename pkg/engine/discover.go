package engine

import (
	"errors"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/driver"
	"github.com/light-project/light-go/pkg/dryrun"
	"github.com/light-project/light-go/pkg/model"
	"github.com/light-project/light-go/pkg/sysfs"
)

// PluginDir is the directory below the state directory holding user
// driver definitions.
const PluginDir = "enumerators"

// DiscoverOptions configures NewRegistry.
type DiscoverOptions struct {
	// Sysroot is prefixed to every sysfs path.
	Sysroot string

	// StateDir holds user driver definitions under PluginDir. Empty skips
	// them.
	StateDir string

	Logger log.FieldLogger
}

// NewRegistry registers the sysfs, util and built-in vendor enumerators
// followed by user definitions, then initializes them all.
//
// The registry is usable even when an error is returned: the error joins
// per-enumerator failures, which callers usually report as a warning.
func NewRegistry(opts DiscoverOptions) (*model.Registry, error) {
	l := opts.Logger
	reg := model.NewRegistry(l)

	var errs []error
	if _, err := reg.Register(sysfs.Name, sysfs.New(opts.Sysroot, l)); err != nil {
		errs = append(errs, err)
	}
	if _, err := reg.Register(dryrun.Name, dryrun.New(l)); err != nil {
		errs = append(errs, err)
	}

	builtin, err := driver.Builtin()
	if err != nil {
		errs = append(errs, err)
	}
	if err := driver.Register(reg, builtin, opts.Sysroot, l); err != nil {
		errs = append(errs, err)
	}

	if opts.StateDir != "" {
		dir := filepath.Join(opts.StateDir, PluginDir)
		defs, err := driver.LoadDir(dir)
		if err != nil {
			l.WithError(err).WithField("dir", dir).Warn("failed to load driver definitions")
			errs = append(errs, err)
		}
		if err := driver.Register(reg, defs, opts.Sysroot, l); err != nil {
			errs = append(errs, err)
		}
	}

	if err := reg.Init(); err != nil {
		errs = append(errs, err)
	}
	return reg, errors.Join(errs...)
}
