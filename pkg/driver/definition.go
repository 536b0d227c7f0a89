package driver

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed definitions/*.yaml
var builtinFS embed.FS

// Definition errors.
var (
	ErrInvalidDefinition = errors.New("invalid driver definition")
)

// Definition describes a vendor driver directory. Every entry under Root
// becomes a device; each TargetDef whose file exists in that entry becomes
// a target.
type Definition struct {
	// Name is the enumerator name.
	Name string `yaml:"name"`

	// Root is the driver directory, relative to the sysfs root.
	Root string `yaml:"root"`

	Targets []TargetDef `yaml:"targets"`

	// Source is the file the definition was loaded from.
	Source string `yaml:"-"`
}

// TargetDef is one candidate target of a vendor device.
type TargetDef struct {
	Name string `yaml:"name"`

	// File holds the brightness value, relative to the device directory.
	File string `yaml:"file"`

	// Max is a fixed upper bound. Ignored when MaxFile is set.
	Max uint64 `yaml:"max,omitempty"`

	// MaxFile holds the upper bound, relative to the device directory.
	MaxFile string `yaml:"max_file,omitempty"`
}

// Validate checks that the definition can be registered.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if strings.Contains(d.Name, "/") {
		return fmt.Errorf("%w: name %q must not contain '/'", ErrInvalidDefinition, d.Name)
	}
	if d.Root == "" {
		return fmt.Errorf("%w: %s: root is required", ErrInvalidDefinition, d.Name)
	}

	seen := make(map[string]bool, len(d.Targets))
	for i, t := range d.Targets {
		if t.Name == "" || strings.Contains(t.Name, "/") {
			return fmt.Errorf("%w: %s: target %d has an invalid name %q", ErrInvalidDefinition, d.Name, i, t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: %s: duplicate target %q", ErrInvalidDefinition, d.Name, t.Name)
		}
		seen[t.Name] = true

		if t.File == "" {
			return fmt.Errorf("%w: %s/%s: file is required", ErrInvalidDefinition, d.Name, t.Name)
		}
		if t.Max == 0 && t.MaxFile == "" {
			return fmt.Errorf("%w: %s/%s: max or max_file is required", ErrInvalidDefinition, d.Name, t.Name)
		}
	}
	return nil
}

// Parse decodes and validates a YAML definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse driver definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile reads a single definition file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read driver definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// LoadDir loads every *.yaml and *.yml file in dir in file-name order.
// A missing directory yields no definitions and no error. Files that fail
// to load are returned in errs; the remaining files are still loaded.
func LoadDir(dir string) (defs []*Definition, errs error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read definitions directory %s: %w", dir, err)
	}

	var failures []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		def, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			failures = append(failures, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errors.Join(failures...)
}

// Builtin returns the definitions compiled into the binary, sorted by
// file name.
func Builtin() ([]*Definition, error) {
	entries, err := builtinFS.ReadDir("definitions")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	defs := make([]*Definition, 0, len(entries))
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("definitions/" + entry.Name())
		if err != nil {
			return nil, err
		}
		def, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", entry.Name(), err)
		}
		def.Source = "builtin:" + entry.Name()
		defs = append(defs, def)
	}
	return defs, nil
}
