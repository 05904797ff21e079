package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/animotion/launchpad/internal/boot"
	"github.com/animotion/launchpad/internal/browser"
	"github.com/animotion/launchpad/internal/config"
	"github.com/animotion/launchpad/internal/stats"
)

var (
	flagPort       int
	flagProvider   string
	flagProbe      bool
	flagOpen       bool
	flagPromptPass bool
	flagSkipTunnel bool
	flagHaltApp    bool

	upCmd = &cobra.Command{
		Use:   "up",
		Short: "Run the full bootstrap sequence",
		Long: `Run the full bootstrap sequence headlessly.

Examples:
  # Boot with the defaults (ngrok, port 5000, fixed 5s wait)
  launchpad up

  # Poll the port instead of sleeping, open a browser when it's up
  launchpad up --probe --open

  # Local-only session, no tunnel
  launchpad up --skip-tunnel`,
		RunE: runUp,
	}
)

func init() {
	upCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "Application port (overrides config)")
	upCmd.Flags().StringVar(&flagProvider, "provider", "", "Tunnel provider: ngrok or ssh (overrides config)")
	upCmd.Flags().BoolVar(&flagProbe, "probe", false, "Poll the app port instead of the fixed delay")
	upCmd.Flags().BoolVar(&flagOpen, "open", false, "Open the local URL in a browser once ready")
	upCmd.Flags().BoolVar(&flagPromptPass, "prompt-password", false, "Read the admin password interactively")
	upCmd.Flags().BoolVar(&flagSkipTunnel, "skip-tunnel", false, "Boot locally without publishing a tunnel")
	upCmd.Flags().BoolVar(&flagHaltApp, "halt-app", false, "Stop the application when the tunnel closes")

	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	if flagPromptPass {
		pass, err := promptPassword(cfg.Env.AuthUser)
		if err != nil {
			return err
		}
		cfg.Env.AuthPass = pass
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	orch, err := boot.New(cfg, boot.Options{
		SkipTunnel:  flagSkipTunnel,
		OpenBrowser: flagOpen,
	})
	if err != nil {
		return err
	}
	if flagOpen {
		orch.Opener = browser.NewOpener().Open
	}

	// The tunnel client exits on interrupt; the report still prints
	// afterwards.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventsDone := make(chan struct{})
	go func() {
		defer close(eventsDone)
		printEvents(os.Stdout, orch.Events())
	}()

	runErr := orch.Run(ctx)
	// Run closed the event channel; wait for the printer so the final
	// stage lines land before anything else is written.
	<-eventsDone

	if msg := stats.RecordBootstrap(runErr); msg != "" {
		fmt.Println(msg)
	}

	if flagHaltApp {
		if h := orch.Handle(); h != nil {
			if err := h.Terminate(); err != nil {
				fmt.Fprintf(os.Stderr, "halt-app: %v\n", err)
			} else {
				fmt.Printf("sent interrupt to application (pid %d)\n", h.Pid)
			}
		}
	}

	return runErr
}

// applyFlags overlays command-line overrides on the loaded config.
func applyFlags(cfg *config.Config) {
	if flagPort > 0 {
		cfg.App.Port = flagPort
	}
	if flagProvider != "" {
		cfg.Tunnel.Provider = flagProvider
	}
	if flagProbe {
		cfg.Readiness.Mode = config.ModeProbe
	}
}

// promptPassword reads the admin password without echo.
func promptPassword(user string) (string, error) {
	fmt.Printf("Password for %s: ", user)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(passwordBytes), nil
}

// printEvents renders stage events as terse progress lines. It returns
// once the orchestrator closes its event channel.
func printEvents(w io.Writer, events <-chan boot.StageEvent) {
	for ev := range events {
		switch ev.Type {
		case boot.EventStarted:
			if ev.Detail != "" {
				fmt.Fprintf(w, "⋯ %s (%s)\n", ev.Stage, ev.Detail)
			} else {
				fmt.Fprintf(w, "⋯ %s\n", ev.Stage)
			}
		case boot.EventDone:
			if ev.Detail != "" {
				fmt.Fprintf(w, "✓ %s (%s)\n", ev.Stage, ev.Detail)
			} else {
				fmt.Fprintf(w, "✓ %s\n", ev.Stage)
			}
		case boot.EventWarned:
			fmt.Fprintf(w, "! %s: %v\n", ev.Stage, ev.Err)
		case boot.EventFailed:
			fmt.Fprintf(w, "✗ %s: %v\n", ev.Stage, ev.Err)
		}
	}
}
