package launcher

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerPath(t *testing.T) {
	t.Parallel()

	exe := filepath.Join("opt", "wslrun", "wslrun")
	assert.Equal(t, filepath.Join("opt", "wslrun", RunnerName()), RunnerPath(exe))
}

func TestRelaunchMissingRunner(t *testing.T) {
	t.Parallel()

	err := Relaunch(filepath.Join(t.TempDir(), RunnerName()), []string{"d", "u", "/", "true"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locate runner")
}

func TestRelaunchForwardsArgs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as runner")
	}
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "args")
	runner := filepath.Join(dir, RunnerName())
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > '" + out + ".tmp' && mv '" + out + ".tmp' '" + out + "'\n"
	require.NoError(t, os.WriteFile(runner, []byte(script), 0o755))

	args := []string{"Ubuntu", "alice", "/home/alice/my dir", "vim", "-c", `echo "$x"`}
	require.NoError(t, Relaunch(runner, args))

	var data []byte
	require.Eventually(t, func() bool {
		var err error
		data, err = os.ReadFile(out)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, args, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"))
}
