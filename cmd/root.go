package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unity-activate/internal/activation"
)

// rootCmd represents the base command when called without any subcommands.
// Running it bare performs an activation, which is how CI steps call it.
var rootCmd = &cobra.Command{
	Use:   "unity-activate",
	Short: "Activate a Unity Editor license in a CI pipeline",
	Long: `unity-activate activates a Unity Editor license non-interactively.

It reads credentials from the environment, either a single set
(UNITY_EMAIL, UNITY_PASSWORD, UNITY_SERIAL) or a block of candidate sets
in UNITY_CREDENTIALS that are tried in order, and runs the Unity Editor
in batch mode against ACTIVATE_LICENSE_PATH.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing variables, failed activations)
	SilenceUsage: true,
	// Activation errors are printed by the console reporter.
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runActivate(cmd, &activateOpts)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "unity-activate version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(activation.ExitCode(err))
	}
}

func init() {
	addActivateFlags(rootCmd)

	rootCmd.AddCommand(newActivateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
