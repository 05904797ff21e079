package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "launchpad",
		Short: "Boot the AniMotion web app and expose it through a tunnel",
		Long: `Launchpad - one-shot bootstrap for the AniMotion web interface.

Starts the application with its credentials injected, waits for it to
come up on its port, then publishes it to the internet through a
tunnel provider and prints how to reach it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: run the full bootstrap.
			return runUp(cmd, args)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./launchpad.yaml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
