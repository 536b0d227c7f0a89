// Package fileio reads and writes the single-integer text files used by
// sysfs brightness controllers and by the persisted per-target state.
//
// A value file holds one non-negative decimal integer. Reads tolerate
// surrounding whitespace (sysfs attributes end with a newline); writes
// produce the bare decimal string with no trailing newline.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File errors.
var (
	// ErrAccess reports a file that is missing or cannot be opened with the
	// required access.
	ErrAccess = errors.New("file not accessible")

	// ErrParse reports file content that is not a non-negative integer.
	ErrParse = errors.New("invalid integer content")
)

// DirMode is the mode for directories created by MkPath.
const DirMode fs.FileMode = 0o775

// FileMode is the mode for value files created by WriteUint64.
const FileMode fs.FileMode = 0o644

// ReadUint64 reads the first whitespace-separated token of path as a
// decimal unsigned integer.
func ReadUint64(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %w", ErrAccess, path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %s is empty", ErrParse, path)
	}

	v, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrParse, path, fields[0])
	}
	return v, nil
}

// WriteUint64 writes v to path as a bare decimal string. Existing files are
// truncated; sysfs attributes accept the write as a single store.
func WriteUint64(path string, v uint64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrAccess, path, err)
	}

	if _, err := f.WriteString(strconv.FormatUint(v, 10)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReplaceUint64 writes v to a temporary file next to path and renames it
// over path, so readers see either the old value or the new one. Use it for
// regular files; sysfs attributes cannot be renamed over.
func ReplaceUint64(path string, v uint64) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrAccess, path, err)
	}
	tmp := f.Name()

	_, err = f.WriteString(strconv.FormatUint(v, 10))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, FileMode)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsMissing reports whether err indicates a file that does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// MkPath creates dir and any missing ancestors, walking the path one
// segment at a time from the root. It succeeds when dir already exists.
func MkPath(dir string, mode fs.FileMode) error {
	dir = filepath.Clean(dir)

	var segments []string
	for p := dir; ; {
		segments = append(segments, p)
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}

	// segments runs from dir up to the root; create top-down.
	for i := len(segments) - 1; i >= 0; i-- {
		p := segments[i]
		info, err := os.Stat(p)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("mkpath %s: %s is not a directory", dir, p)
			}
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("mkpath %s: %w", dir, err)
		}
		if err := os.Mkdir(p, mode); err != nil && !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("mkpath %s: %w", dir, err)
		}
	}
	return nil
}
