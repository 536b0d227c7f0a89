// Package sysfstest builds fake sysfs trees for tests.
package sysfstest

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// Tree is a fake filesystem root. Paths given to its methods are relative
// to Root.
type Tree struct {
	t    testing.TB
	Root string
}

// New creates an empty tree in a temporary directory.
func New(t testing.TB) *Tree {
	t.Helper()
	return &Tree{t: t, Root: t.TempDir()}
}

// Path joins elem onto the tree root.
func (tr *Tree) Path(elem ...string) string {
	return filepath.Join(append([]string{tr.Root}, elem...)...)
}

// WriteFile writes content to rel, creating parent directories.
func (tr *Tree) WriteFile(rel, content string) {
	tr.t.Helper()
	p := tr.Path(rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		tr.t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		tr.t.Fatalf("write %s: %v", p, err)
	}
}

// WriteUint writes v followed by a newline, the way the kernel renders
// attribute files.
func (tr *Tree) WriteUint(rel string, v uint64) {
	tr.t.Helper()
	tr.WriteFile(rel, strconv.FormatUint(v, 10)+"\n")
}

// ReadFile returns the content of rel.
func (tr *Tree) ReadFile(rel string) string {
	tr.t.Helper()
	b, err := os.ReadFile(tr.Path(rel))
	if err != nil {
		tr.t.Fatalf("read %s: %v", rel, err)
	}
	return string(b)
}

// Mkdir creates the directory rel and its parents.
func (tr *Tree) Mkdir(rel string) {
	tr.t.Helper()
	if err := os.MkdirAll(tr.Path(rel), 0o755); err != nil {
		tr.t.Fatalf("mkdir %s: %v", rel, err)
	}
}

// AddClassEntry creates /sys/class/<class>/<name> with brightness and
// max_brightness files.
func (tr *Tree) AddClassEntry(class, name string, brightness, max uint64) {
	tr.t.Helper()
	dir := filepath.Join("sys", "class", class, name)
	tr.WriteUint(filepath.Join(dir, "brightness"), brightness)
	tr.WriteUint(filepath.Join(dir, "max_brightness"), max)
}

// Backlight adds a backlight class entry.
func (tr *Tree) Backlight(name string, brightness, max uint64) {
	tr.t.Helper()
	tr.AddClassEntry("backlight", name, brightness, max)
}

// LED adds a leds class entry.
func (tr *Tree) LED(name string, brightness, max uint64) {
	tr.t.Helper()
	tr.AddClassEntry("leds", name, brightness, max)
}
