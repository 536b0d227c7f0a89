package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr bool
	}{
		{
			name: "valid",
			def:  Definition{Name: "acme", Root: "/sys/x", Targets: []TargetDef{{Name: "a", File: "a", Max: 1}}},
		},
		{
			name:    "missing name",
			def:     Definition{Root: "/sys/x"},
			wantErr: true,
		},
		{
			name:    "slash in name",
			def:     Definition{Name: "a/b", Root: "/sys/x"},
			wantErr: true,
		},
		{
			name:    "missing root",
			def:     Definition{Name: "acme"},
			wantErr: true,
		},
		{
			name: "duplicate target",
			def: Definition{Name: "acme", Root: "/sys/x", Targets: []TargetDef{
				{Name: "a", File: "a", Max: 1},
				{Name: "a", File: "b", Max: 1},
			}},
			wantErr: true,
		},
		{
			name:    "missing file",
			def:     Definition{Name: "acme", Root: "/sys/x", Targets: []TargetDef{{Name: "a", Max: 1}}},
			wantErr: true,
		},
		{
			name:    "missing max",
			def:     Definition{Name: "acme", Root: "/sys/x", Targets: []TargetDef{{Name: "a", File: "a"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDefinition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("b.yaml", "name: beta\nroot: /sys/b\ntargets:\n  - {name: t, file: f, max: 3}\n")
	write("a.yml", "name: alpha\nroot: /sys/a\n")
	write("broken.yaml", "name: [\n")
	write("notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	defs, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")

	require.Len(t, defs, 2)
	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "beta", defs[1].Name)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), defs[1].Source)
	assert.Equal(t, uint64(3), defs[1].Targets[0].Max)
}

func TestLoadDirMissing(t *testing.T) {
	defs, err := LoadDir(filepath.Join(t.TempDir(), "enumerators"))
	assert.NoError(t, err)
	assert.Empty(t, defs)
}
