package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/animotion/launchpad/internal/config"
	"github.com/animotion/launchpad/internal/netutil"
	"github.com/animotion/launchpad/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the access summary without booting anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}

		if cfg.Report.AutoLAN {
			if ip, err := netutil.OutboundIP(); err == nil {
				cfg.Report.LANHost = ip
			} else {
				fmt.Fprintf(os.Stderr, "lan detection: %v (using configured address)\n", err)
			}
		}

		report.Print(os.Stdout, report.Info{
			Port:     cfg.App.Port,
			LANHost:  cfg.Report.LANHost,
			AuthUser: cfg.Env.AuthUser,
			AuthPass: cfg.Env.AuthPass,
			Tunneled: false,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
