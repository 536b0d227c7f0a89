package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadUint64(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    uint64
		wantErr error
	}{
		{name: "bare value", content: "255", want: 255},
		{name: "trailing newline", content: "937\n", want: 937},
		{name: "surrounding whitespace", content: "  \t12 \n", want: 12},
		{name: "extra tokens ignored", content: "40 junk", want: 40},
		{name: "zero", content: "0", want: 0},
		{name: "empty", content: "", wantErr: ErrParse},
		{name: "whitespace only", content: " \n", wantErr: ErrParse},
		{name: "negative", content: "-5", wantErr: ErrParse},
		{name: "not a number", content: "bright", wantErr: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "brightness")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := ReadUint64(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadUint64() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadUint64() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadUint64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadUint64Missing(t *testing.T) {
	_, err := ReadUint64(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrAccess) {
		t.Fatalf("expected ErrAccess, got %v", err)
	}
	if !IsMissing(err) {
		t.Errorf("expected IsMissing to report the wrapped not-exist error")
	}
}

func TestWriteUint64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value")

	if err := WriteUint64(path, 1234); err != nil {
		t.Fatalf("WriteUint64() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1234" {
		t.Errorf("file content = %q, want %q", data, "1234")
	}

	// Overwrite with a shorter value truncates.
	if err := WriteUint64(path, 7); err != nil {
		t.Fatalf("WriteUint64() error = %v", err)
	}
	got, err := ReadUint64(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("ReadUint64() after overwrite = %d, want 7", got)
	}
}

func TestWriteUint64MissingDir(t *testing.T) {
	err := WriteUint64(filepath.Join(t.TempDir(), "missing", "value"), 1)
	if !errors.Is(err, ErrAccess) {
		t.Fatalf("expected ErrAccess, got %v", err)
	}
}

func TestMkPath(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "a", "b", "c")

	if err := MkPath(dir, DirMode); err != nil {
		t.Fatalf("MkPath() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat created dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected a directory")
	}

	// Idempotent.
	if err := MkPath(dir, DirMode); err != nil {
		t.Errorf("second MkPath() error = %v", err)
	}
}

func TestMkPathThroughFile(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MkPath(filepath.Join(file, "sub"), DirMode); err == nil {
		t.Fatal("expected error creating a directory below a regular file")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Error("Exists(tempdir) = false")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists(missing) = true")
	}
}

func TestReplaceUint64(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save")

	for _, v := range []uint64{42, 7} {
		if err := ReplaceUint64(path, v); err != nil {
			t.Fatalf("ReplaceUint64(%d) error = %v", v, err)
		}
		got, err := ReadUint64(path)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("ReadUint64() = %d, want %d", got, v)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != FileMode {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), FileMode)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the value file, found %d entries", len(entries))
	}
}

func TestReplaceUint64FailureKeepsNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimum")
	// A directory in place of the file makes the rename fail.
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceUint64(path, 1); err == nil {
		t.Fatal("expected error replacing a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "minimum" {
		t.Errorf("temporary file left behind: %v", entries)
	}
}

func TestReplaceUint64MissingDir(t *testing.T) {
	err := ReplaceUint64(filepath.Join(t.TempDir(), "missing", "value"), 1)
	if !errors.Is(err, ErrAccess) {
		t.Fatalf("expected ErrAccess, got %v", err)
	}
}
