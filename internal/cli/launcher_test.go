package cli

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/brandonbloom/wslrun/internal/config"
	"github.com/brandonbloom/wslrun/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncherRelaysArgs(t *testing.T) {
	t.Parallel()

	var gotRunner string
	var gotArgs []string
	cmd := newLauncherCommand(
		func() (string, error) { return "/opt/wslrun/runner", nil },
		func(runner string, args []string) error {
			gotRunner, gotArgs = runner, args
			return nil
		},
	)
	cmd.SetArgs([]string{"Ubuntu", "alice", "/home/alice", "vim", "-R", "--help"})
	cmd.SetOut(io.Discard)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/opt/wslrun/runner", gotRunner)
	assert.Equal(t, []string{"Ubuntu", "alice", "/home/alice", "vim", "-R", "--help"}, gotArgs)
}

func TestLauncherLocateFailure(t *testing.T) {
	t.Parallel()

	called := false
	cmd := newLauncherCommand(
		func() (string, error) { return "", errors.New("locate launcher: gone") },
		func(string, []string) error {
			called = true
			return nil
		},
	)
	cmd.SetArgs([]string{})

	assert.EqualError(t, cmd.Execute(), "locate launcher: gone")
	assert.False(t, called)
}

func TestLauncherVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newLauncherCommand(
		func() (string, error) { return "", errors.New("locate must not run") },
		func(string, []string) error { return errors.New("relaunch must not run") },
	)
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version.String()+"\n", out.String())
}

func TestLauncherInitConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	relaunched := false
	newCmd := func(out io.Writer) *cobra.Command {
		cmd := newLauncherCommand(
			func() (string, error) { return filepath.Join(dir, "runner"), nil },
			func(string, []string) error {
				relaunched = true
				return nil
			},
		)
		cmd.SetArgs([]string{"--init-config"})
		cmd.SetOut(out)
		return cmd
	}

	var out bytes.Buffer
	require.NoError(t, newCmd(&out).Execute())
	path := filepath.Join(dir, config.FileName)
	assert.Equal(t, "Wrote "+path+"\n", out.String())
	assert.False(t, relaunched)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	assert.ErrorIs(t, newCmd(io.Discard).Execute(), config.ErrExists)
}
