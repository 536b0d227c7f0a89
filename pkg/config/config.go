// Package config assembles the process configuration of light from the
// environment and the optional config.yaml in the state directory.
//
// Precedence, lowest first: built-in defaults, environment, config file.
// Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/light-project/light-go/pkg/engine"
)

// FileName is the config file name inside the state directory.
const FileName = "config.yaml"

// RootStateDir is the state directory used when running as root.
const RootStateDir = "/etc/light"

// Configuration errors.
var (
	ErrNoStateDir       = errors.New("neither XDG_CONFIG_HOME nor HOME is set")
	ErrInvalidVerbosity = errors.New("verbosity must be between 0 and 3")
	ErrMalformedFile    = errors.New("malformed config file")
)

// Env holds the environment variables light reads.
type Env struct {
	XDGConfigHome string `env:"XDG_CONFIG_HOME"`
	Home          string `env:"HOME"`

	// Sysroot is prefixed to every sysfs path. Tests and containers point
	// it at a fake tree.
	Sysroot string `env:"LIGHT_SYSROOT" envDefault:"/"`

	// StateDir overrides the computed state directory.
	StateDir string `env:"LIGHT_STATE_DIR"`

	// Journal enables the adjustment journal.
	Journal bool `env:"LIGHT_JOURNAL"`
}

// ParseEnv loads Env from environ, or from the process environment when
// environ is nil.
func ParseEnv(environ map[string]string) (Env, error) {
	var e Env
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ResolveStateDir returns the writable state directory: the LIGHT_STATE_DIR
// override, /etc/light for root, else $XDG_CONFIG_HOME/light or
// $HOME/.config/light.
func (e Env) ResolveStateDir(euid int) (string, error) {
	switch {
	case e.StateDir != "":
		return e.StateDir, nil
	case euid == 0:
		return RootStateDir, nil
	case e.XDGConfigHome != "":
		return filepath.Join(e.XDGConfigHome, "light"), nil
	case e.Home != "":
		return filepath.Join(e.Home, ".config", "light"), nil
	default:
		return "", ErrNoStateDir
	}
}

// File is the optional config.yaml. Unset fields keep their defaults.
type File struct {
	Verbosity *int   `yaml:"verbosity,omitempty"`
	Target    string `yaml:"target,omitempty"`
	Raw       *bool  `yaml:"raw,omitempty"`
	Journal   *bool  `yaml:"journal,omitempty"`
}

// LoadFile reads path. A missing file yields an empty File.
func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %s: %w", ErrMalformedFile, path, err)
	}
	return f, nil
}

// Config is the process configuration handed to the engine and the
// backends. It is built once at startup.
type Config struct {
	StateDir  string
	Sysroot   string
	Verbosity int
	Target    string
	Raw       bool
	Journal   bool
}

// Load builds a Config for the process with effective user id euid.
func Load(environ map[string]string, euid int) (*Config, error) {
	e, err := ParseEnv(environ)
	if err != nil {
		return nil, err
	}
	dir, err := e.ResolveStateDir(euid)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StateDir: dir,
		Sysroot:  e.Sysroot,
		Target:   engine.DefaultAddress.String(),
		Journal:  e.Journal,
	}

	f, err := LoadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.apply(f); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(f File) error {
	if f.Verbosity != nil {
		if err := ValidateVerbosity(*f.Verbosity); err != nil {
			return err
		}
		c.Verbosity = *f.Verbosity
	}
	if f.Target != "" {
		c.Target = f.Target
	}
	if f.Raw != nil {
		c.Raw = *f.Raw
	}
	if f.Journal != nil {
		c.Journal = *f.Journal
	}
	return nil
}

// ValidateVerbosity checks that v is one of the levels 0 through 3.
func ValidateVerbosity(v int) error {
	if v < 0 || v > 3 {
		return fmt.Errorf("%w, got %d", ErrInvalidVerbosity, v)
	}
	return nil
}
