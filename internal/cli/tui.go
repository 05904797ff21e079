package cli

import (
	"github.com/spf13/cobra"

	"github.com/animotion/launchpad/internal/app"
	"github.com/animotion/launchpad/internal/config"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the bootstrap with a step dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		return app.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
