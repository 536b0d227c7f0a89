package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-project/light-go/internal/sysfstest"
	"github.com/light-project/light-go/pkg/model"
	"github.com/light-project/light-go/pkg/sysfs"
)

func emptyRegistry(t *testing.T) (*model.Registry, *logrus.Logger, *test.Hook) {
	t.Helper()
	tree := sysfstest.New(t)
	tree.Mkdir("sys/class/backlight")
	tree.Mkdir("sys/class/leds")

	logger, hook := test.NewNullLogger()
	reg, err := NewRegistry(DiscoverOptions{Sysroot: tree.Root, Logger: logger})
	require.NoError(t, err)
	return reg, logger, hook
}

func TestSelectTargetFallsBackToDryRun(t *testing.T) {
	reg, logger, hook := emptyRegistry(t)

	target, err := SelectTarget(reg, DefaultAddress.String(), false, logger)
	require.NoError(t, err)
	assert.Equal(t, "util/test/dryrun", target.Address().String())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestSelectTargetExplicitIsFatal(t *testing.T) {
	reg, logger, _ := emptyRegistry(t)

	_, err := SelectTarget(reg, "sysfs/backlight/nope", true, logger)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = SelectTarget(reg, "not-an-address", true, logger)
	assert.ErrorIs(t, err, model.ErrMalformedAddress)
}

func TestSelectTargetNoController(t *testing.T) {
	tree := sysfstest.New(t)
	logger, _ := test.NewNullLogger()
	reg := model.NewRegistry(logger)
	_, err := reg.Register(sysfs.Name, sysfs.New(tree.Root, logger))
	require.NoError(t, err)
	_ = reg.Init()

	_, err = SelectTarget(reg, DefaultAddress.String(), false, logger)
	assert.ErrorIs(t, err, ErrNoAccessibleController)
}

func TestSelectTargetDefault(t *testing.T) {
	tree := sysfstest.New(t)
	tree.Backlight("acpi_video0", 5, 15)
	tree.Mkdir("sys/class/leds")

	logger, _ := test.NewNullLogger()
	reg, err := NewRegistry(DiscoverOptions{Sysroot: tree.Root, Logger: logger})
	require.NoError(t, err)

	target, err := SelectTarget(reg, DefaultAddress.String(), false, logger)
	require.NoError(t, err)
	assert.Equal(t, "sysfs/backlight/auto", target.Address().String())
}

func TestNewRegistryOrderAndPlugins(t *testing.T) {
	tree := sysfstest.New(t)
	tree.Backlight("intel_backlight", 5, 15)
	tree.Mkdir("sys/class/leds")
	tree.WriteUint("sys/bus/platform/drivers/acme/kb0/level", 1)

	stateDir := sysfstest.New(t)
	stateDir.WriteFile("enumerators/acme.yaml",
		"name: acme\nroot: /sys/bus/platform/drivers/acme\ntargets:\n  - {name: keyboard, file: level, max: 3}\n")
	stateDir.WriteFile("enumerators/clash.yaml", "name: sysfs\nroot: /sys/none\n")

	logger, _ := test.NewNullLogger()
	reg, err := NewRegistry(DiscoverOptions{Sysroot: tree.Root, StateDir: stateDir.Root, Logger: logger})
	require.ErrorIs(t, err, model.ErrDuplicateEnumerator)

	var names []string
	for _, e := range reg.Enumerators() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"sysfs", "util", "razer", "acme"}, names)

	_, err = reg.Resolve("acme/kb0/keyboard")
	assert.NoError(t, err)
}
