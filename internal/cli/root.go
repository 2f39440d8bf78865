package cli

import (
	"os"

	"github.com/brandonbloom/wslrun/internal/config"
	"github.com/brandonbloom/wslrun/internal/console"
	"github.com/brandonbloom/wslrun/internal/launcher"
	"github.com/brandonbloom/wslrun/internal/logging"
	"github.com/brandonbloom/wslrun/internal/session"
	"github.com/brandonbloom/wslrun/internal/status"
	"github.com/mattn/go-colorable"
)

// ExecuteRunner runs the runner binary: the program named on the command
// line is started in the guest environment and a status footer follows.
func ExecuteRunner() error {
	console.EnableUTF8()

	cfgPath := config.FileName
	if exe, err := os.Executable(); err == nil {
		cfgPath = config.PathNextTo(exe)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, os.Stderr)
	log.WithField("config", cfgPath).Debug("loaded configuration")

	env := runnerEnv{
		stdout:  os.Stdout,
		bridge:  cfg.BridgeCommand(),
		session: session.New(session.NewExecSpawner(), log),
		status: &status.Renderer{
			Out:      colorable.NewColorableStdout(),
			Width:    func() (int, error) { return console.Width(os.Stdout) },
			Palette:  status.DefaultPalette(),
			Captions: cfg.StatusCaptions(),
		},
		title: func(title string) error { return console.SetTitle(os.Stdout, title) },
		pause: func() error { return console.WaitKey(os.Stdin) },
		log:   log,
	}
	return newRunnerCommand(env).Execute()
}

// ExecuteLauncher runs the launcher binary, which hands its arguments to the
// runner next to it and exits.
func ExecuteLauncher() error {
	return newLauncherCommand(launcher.Locate, launcher.Relaunch).Execute()
}
