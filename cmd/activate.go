package cmd

import (
	"github.com/spf13/cobra"

	"unity-activate/internal/app"
)

type activateOptions struct {
	debug     bool
	configDir string
	dryRun    bool
}

// Shared by the root command and the activate subcommand.
var activateOpts activateOptions

// reportedError marks an error the console reporter already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func addActivateFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&activateOpts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&activateOpts.configDir, "config", "", "Directory containing config.yaml (disables layered settings)")
	cmd.PersistentFlags().BoolVar(&activateOpts.dryRun, "dry-run", false, "Print the editor command lines instead of running them")
}

func newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Activate the Unity license (default command)",
		Long: `Activates the Unity license using the credentials in the environment.

With UNITY_CREDENTIALS set, each credential set in it is tried in order
until one activates; the winner is exported as UNITY_EMAIL, UNITY_PASSWORD
and UNITY_SERIAL (and written to UNITY_ACTIVATION_ENV_FILE if set) so the
license can be returned later. Otherwise UNITY_EMAIL, UNITY_PASSWORD and
UNITY_SERIAL are used directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActivate(cmd, &activateOpts)
		},
	}
}

func runActivate(cmd *cobra.Command, opts *activateOptions) error {
	cfg := app.NewConfig(opts.debug, opts.dryRun, opts.configDir)
	cfg.Out = cmd.OutOrStdout()
	cfg.Err = cmd.ErrOrStderr()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return reportedError{err}
	}
	if err := application.Run(); err != nil {
		return reportedError{err}
	}
	return nil
}
