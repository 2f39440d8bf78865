package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brandonbloom/wslrun/internal/cmdline"
	"github.com/brandonbloom/wslrun/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, cmdline.DefaultBridge(), cfg.BridgeCommand())
	assert.Equal(t, status.DefaultCaptions(), cfg.StatusCaptions())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadPartial(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	data := `log_level = "DEBUG"

[bridge]
path = '/usr/local/bin/guest'

[captions]
exit_code = "exit"
elapsed = "took"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, cmdline.Bridge{
		Path:            "/usr/local/bin/guest",
		EnvironmentFlag: "-d",
		UserFlag:        "-u",
		DirFlag:         "--cd",
	}, cfg.BridgeCommand())
	assert.Equal(t, "exit", cfg.Captions.ExitCode)
	assert.Equal(t, "took", cfg.Captions.Elapsed)
	assert.Equal(t, status.DefaultCaptions().Done, cfg.Captions.Done)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want error
	}{
		{"log level", `log_level = "loud"`, ErrInvalidLogLevel},
		{"bridge path with space", "[bridge]\npath = 'C:\\Program Files\\wsl.exe'", ErrInvalidBridge},
		{"flag with space", "[bridge]\nuser_flag = \"-u x\"", ErrInvalidBridge},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level = "), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse "+path)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.LogLevel = "info"
	cfg.Captions.Done = "done"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Bridge.Path = ""
	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), FileName), cfg), ErrInvalidBridge)
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, WriteDefault(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)

	require.NoError(t, os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o644))
	assert.ErrorIs(t, WriteDefault(path), ErrExists)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level = \"debug\"\n", string(data), "existing file must be kept")
}

func TestPathNextTo(t *testing.T) {
	t.Parallel()

	exe := filepath.Join("opt", "wslrun", "runner")
	assert.Equal(t, filepath.Join("opt", "wslrun", FileName), PathNextTo(exe))
}
