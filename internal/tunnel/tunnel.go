// Package tunnel exposes a local port through an external relay.
package tunnel

import (
	"context"
	"fmt"

	"github.com/animotion/launchpad/internal/config"
)

// Provider is a tunneling relay. Authenticate must complete before
// Publish is invoked; Publish blocks in the foreground until the relay
// exits or the context is cancelled.
type Provider interface {
	Name() string
	Authenticate(ctx context.Context) error
	Publish(ctx context.Context, port int) error
}

// New builds the provider selected by the configuration.
func New(cfg config.Tunnel) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderNgrok:
		return &Ngrok{
			Binary:   cfg.Ngrok.Binary,
			Token:    cfg.Ngrok.Token,
			Protocol: cfg.Protocol,
		}, nil
	case config.ProviderSSH:
		return &SSHRelay{
			Host:       cfg.SSH.Host,
			Port:       cfg.SSH.Port,
			User:       cfg.SSH.User,
			Password:   cfg.SSH.Password,
			RemotePort: cfg.SSH.RemotePort,
		}, nil
	default:
		return nil, fmt.Errorf("tunnel: unknown provider %q", cfg.Provider)
	}
}
