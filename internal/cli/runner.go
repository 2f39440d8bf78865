package cli

import (
	"fmt"
	"io"

	"github.com/brandonbloom/wslrun/internal/cmdline"
	"github.com/brandonbloom/wslrun/internal/session"
	"github.com/brandonbloom/wslrun/internal/status"
	"github.com/brandonbloom/wslrun/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	runnerUsage = "Usage: wslrun <distro name> <username> <cwd> <executable> <args...>"
	minArgs     = 4

	// versionFlag is recognized only as the sole argument; anything else is
	// relayed to the guest untouched.
	versionFlag = "--version"
)

type runnerEnv struct {
	stdout  io.Writer
	bridge  cmdline.Bridge
	session *session.Session
	status  *status.Renderer
	title   func(string) error
	pause   func() error
	log     logrus.FieldLogger
}

type invocation struct {
	Environment string
	User        string
	WorkingDir  string
	Args        []string
}

func parseInvocation(args []string) (invocation, bool) {
	if len(args) < minArgs {
		return invocation{}, false
	}
	return invocation{
		Environment: args[0],
		User:        args[1],
		WorkingDir:  args[2],
		Args:        append([]string(nil), args[3:]...),
	}, true
}

func newRunnerCommand(env runnerEnv) *cobra.Command {
	return &cobra.Command{
		Use:                "runner <distro name> <username> <cwd> <executable> [args...]",
		Short:              "Run a program inside a WSL distribution and report how it exited",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if soleArg(args, versionFlag) {
				fmt.Fprintln(env.stdout, version.String())
				return nil
			}
			env.log.WithField("version", version.String()).Debug("runner starting")
			return env.run(args)
		},
	}
}

func soleArg(args []string, flag string) bool {
	return len(args) == 1 && args[0] == flag
}

// run takes one invocation from argument parsing to the final keypress.
// System failures return before the pause; the caller aborts on them.
func (env runnerEnv) run(args []string) error {
	inv, ok := parseInvocation(args)
	if !ok {
		fmt.Fprintln(env.stdout, runnerUsage)
		env.waitForKey()
		return nil
	}

	line := cmdline.Build(env.bridge, inv.Environment, inv.User, inv.WorkingDir, inv.Args)
	if cmdline.DirOption(env.bridge, inv.WorkingDir) == "" {
		env.log.WithField("cwd", inv.WorkingDir).Info("working directory contains a space and a quote; starting in the default directory")
	}

	if err := env.title(inv.Args[0]); err != nil {
		env.log.WithError(err).Debug("failed to set console title")
	}

	result, err := env.session.Run(line)
	if err != nil {
		return err
	}

	if err := env.status.Render(result.ExitCode, result.Seconds()); err != nil {
		return err
	}

	env.waitForKey()
	return nil
}

func (env runnerEnv) waitForKey() {
	if err := env.pause(); err != nil {
		env.log.WithError(err).Warn("failed to read keypress")
	}
}
