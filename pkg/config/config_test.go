package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStateDir(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		euid    int
		want    string
		wantErr error
	}{
		{
			name:    "root",
			environ: map[string]string{"HOME": "/root", "XDG_CONFIG_HOME": "/root/.cfg"},
			euid:    0,
			want:    "/etc/light",
		},
		{
			name:    "xdg",
			environ: map[string]string{"HOME": "/home/u", "XDG_CONFIG_HOME": "/home/u/.cfg"},
			euid:    1000,
			want:    "/home/u/.cfg/light",
		},
		{
			name:    "home",
			environ: map[string]string{"HOME": "/home/u"},
			euid:    1000,
			want:    "/home/u/.config/light",
		},
		{
			name:    "override wins over root",
			environ: map[string]string{"LIGHT_STATE_DIR": "/tmp/state"},
			euid:    0,
			want:    "/tmp/state",
		},
		{
			name:    "nothing set",
			environ: map[string]string{},
			euid:    1000,
			wantErr: ErrNoStateDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseEnv(tt.environ)
			require.NoError(t, err)

			got, err := e.ResolveStateDir(tt.euid)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvDefaults(t *testing.T) {
	e, err := ParseEnv(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "/", e.Sysroot)
	assert.False(t, e.Journal)
}

func TestParseEnvError(t *testing.T) {
	_, err := ParseEnv(map[string]string{"LIGHT_JOURNAL": "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(map[string]string{"LIGHT_STATE_DIR": dir, "LIGHT_SYSROOT": "/fake"}, 1000)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		StateDir: dir,
		Sysroot:  "/fake",
		Target:   "sysfs/backlight/auto",
	}, cfg)
}

func TestLoadAppliesFile(t *testing.T) {
	dir := t.TempDir()
	content := "verbosity: 2\ntarget: sysfs/leds/input0::capslock\nraw: true\njournal: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	cfg, err := Load(map[string]string{"LIGHT_STATE_DIR": dir}, 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "sysfs/leds/input0::capslock", cfg.Target)
	assert.True(t, cfg.Raw)
	assert.True(t, cfg.Journal)
}

func TestLoadFileCanDisableJournal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("journal: false\n"), 0o644))

	cfg, err := Load(map[string]string{"LIGHT_STATE_DIR": dir, "LIGHT_JOURNAL": "true"}, 1000)
	require.NoError(t, err)
	assert.False(t, cfg.Journal)
}

func TestLoadRejectsBadFile(t *testing.T) {
	tests := map[string]string{
		"malformed":     "verbosity: [\n",
		"bad verbosity": "verbosity: 7\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
			_, err := Load(map[string]string{"LIGHT_STATE_DIR": dir}, 1000)
			assert.Error(t, err)
		})
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, log.PanicLevel, LogLevel(0))
	assert.Equal(t, log.ErrorLevel, LogLevel(1))
	assert.Equal(t, log.WarnLevel, LogLevel(2))
	assert.Equal(t, log.InfoLevel, LogLevel(3))
}

func TestNewLoggerFiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, 2)

	l.Info("notice")
	l.Warn("warning")

	assert.NotContains(t, buf.String(), "notice")
	assert.Contains(t, buf.String(), "warning")
	assert.NotContains(t, buf.String(), "time=")
}

func TestValidateVerbosity(t *testing.T) {
	for v := 0; v <= 3; v++ {
		assert.NoError(t, ValidateVerbosity(v))
	}
	assert.ErrorIs(t, ValidateVerbosity(-1), ErrInvalidVerbosity)
	assert.ErrorIs(t, ValidateVerbosity(4), ErrInvalidVerbosity)
}
