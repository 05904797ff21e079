package tunnel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/animotion/launchpad/internal/config"
)

func TestNewSelectsProvider(t *testing.T) {
	cfg := config.Default().Tunnel
	p, err := New(cfg)
	require.NoError(t, err)

	ngrok, ok := p.(*Ngrok)
	require.True(t, ok)
	require.Equal(t, "ngrok", ngrok.Binary)
	require.Equal(t, "http", ngrok.Protocol)
	require.Equal(t, cfg.Ngrok.Token, ngrok.Token)

	cfg.Provider = config.ProviderSSH
	cfg.SSH = config.SSH{Host: "relay.example.com", Port: 2222, User: "demo", RemotePort: 8080}
	p, err = New(cfg)
	require.NoError(t, err)

	relay, ok := p.(*SSHRelay)
	require.True(t, ok)
	require.Equal(t, "relay.example.com", relay.Host)
	require.Equal(t, 2222, relay.Port)
	require.Equal(t, 8080, relay.RemotePort)

	cfg.Provider = "smoke-signals"
	_, err = New(cfg)
	require.Error(t, err)
}

func TestNgrokArgs(t *testing.T) {
	n := &Ngrok{Binary: "ngrok", Token: "tok-123", Protocol: "http"}

	require.Equal(t, []string{"config", "add-authtoken", "tok-123"}, n.authArgs())
	require.Equal(t, []string{"http", "5000"}, n.publishArgs(5000))
}

func TestNgrokProtocolDefault(t *testing.T) {
	n := &Ngrok{Binary: "ngrok"}
	require.Equal(t, []string{"http", "5000"}, n.publishArgs(5000))

	n.Protocol = "tcp"
	require.Equal(t, []string{"tcp", "5000"}, n.publishArgs(5000))
}

func TestNgrokMissingBinary(t *testing.T) {
	n := &Ngrok{Binary: "definitely-not-ngrok-a6f3", Token: "tok"}

	require.Error(t, n.Authenticate(context.Background()))
	require.Error(t, n.Publish(context.Background(), 5000))
}

func TestSSHRelayPublishRequiresAuthenticate(t *testing.T) {
	r := &SSHRelay{Host: "relay.example.com"}

	err := r.Publish(context.Background(), 5000)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not authenticated")
}

func TestSSHRelayAuthenticateCancelled(t *testing.T) {
	// An unroutable address: the dial hangs until the context fires.
	r := &SSHRelay{Host: "203.0.113.1", Port: 22, User: "demo", Password: "pw"}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Authenticate(ctx)
	require.Error(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}
