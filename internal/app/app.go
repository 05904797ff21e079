package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/animotion/launchpad/internal/boot"
	"github.com/animotion/launchpad/internal/config"
	"github.com/animotion/launchpad/internal/stats"
	"github.com/animotion/launchpad/internal/tui"
	"github.com/animotion/launchpad/internal/tunnel"
)

// Run starts the bootstrap dashboard. All process output is captured
// into the dashboard's log ring instead of hitting the alt screen.
func Run(cfg *config.Config) error {
	orch, err := boot.New(cfg, boot.Options{})
	if err != nil {
		return err
	}

	logger := tui.NewLogger(200)
	orch.Out = tui.NewLogWriter(logger, tui.LogInfo)
	orch.ErrOut = tui.NewLogWriter(logger, tui.LogError)

	// The tunnel client writes the public endpoint to its own stdout;
	// route it into the ring so the operator can read it.
	switch p := orch.Tunnel.(type) {
	case *tunnel.Ngrok:
		p.Stdout = orch.Out
		p.Stderr = orch.ErrOut
	case *tunnel.SSHRelay:
		p.Stdout = orch.Out
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(cfg, orch, logger, ctx, cancel)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(tui.Model); ok {
		if msg := stats.RecordBootstrap(m.Err()); msg != "" {
			fmt.Println(msg)
		}
	}
	return nil
}
