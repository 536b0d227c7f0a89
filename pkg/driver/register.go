package driver

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/light-project/light-go/pkg/model"
)

// Register adds an enumerator per definition to reg, in order. A definition
// whose name is already registered is rejected with a warning and the rest
// are still registered.
func Register(reg *model.Registry, defs []*Definition, sysroot string, l log.FieldLogger) error {
	var errs []error
	for _, def := range defs {
		if _, err := reg.Register(def.Name, New(def, sysroot, l)); err != nil {
			l.WithFields(log.Fields{
				"enumerator": def.Name,
				"source":     def.Source,
			}).WithError(err).Warn("rejected driver definition")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
