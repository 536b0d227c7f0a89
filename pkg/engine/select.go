package engine

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/dryrun"
	"github.com/light-project/light-go/pkg/model"
	"github.com/light-project/light-go/pkg/sysfs"
)

// DefaultAddress is the target used when none is given.
var DefaultAddress = model.Address{
	Enumerator: sysfs.Name,
	Device:     sysfs.DeviceBacklight,
	Target:     sysfs.TargetAuto,
}

// FallbackAddress is used when the default target does not exist.
var FallbackAddress = dryrun.Address

// SelectTarget resolves addr. When addr was not chosen explicitly and does
// not resolve, it falls back to the dry-run target so the command runs
// without effect.
func SelectTarget(reg *model.Registry, addr string, explicit bool, l log.FieldLogger) (*model.Target, error) {
	t, err := reg.Resolve(addr)
	if err == nil {
		return t, nil
	}
	if explicit {
		return nil, fmt.Errorf("couldn't find the specified device target at the path %q, use -L to find one: %w", addr, err)
	}

	l.WithError(err).Warn("no backlight controller was found, so we could not decide an automatic target. " +
		"The current command will have no effect. Please use -L to find a target and then specify it with -s.")

	t, ferr := reg.ResolveAddress(FallbackAddress)
	if ferr != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAccessibleController, errors.Join(err, ferr))
	}
	return t, nil
}
