package cli

import (
	"fmt"

	"github.com/brandonbloom/wslrun/internal/config"
	"github.com/brandonbloom/wslrun/internal/version"
	"github.com/spf13/cobra"
)

// initConfigFlag, given alone, makes the launcher write a default
// configuration next to the runner instead of relaunching it.
const initConfigFlag = "--init-config"

func newLauncherCommand(locate func() (string, error), relaunch func(string, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                "wslrun <distro name> <username> <cwd> <executable> [args...]",
		Short:              "Open the runner in its own console and return immediately",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if soleArg(args, versionFlag) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			runner, err := locate()
			if err != nil {
				return err
			}
			if soleArg(args, initConfigFlag) {
				path := config.PathNextTo(runner)
				if err := config.WriteDefault(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			}
			return relaunch(runner, args)
		},
	}
}
