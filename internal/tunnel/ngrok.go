package tunnel

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
)

// Ngrok drives the ngrok client binary. Authentication persists the
// access token into ngrok's own configuration store; publishing runs
// `ngrok <protocol> <port>` in the foreground. The client prints the
// assigned public endpoint to its own output -- launchpad passes that
// through for the operator and never parses it.
type Ngrok struct {
	Binary   string
	Token    string
	Protocol string

	// Stdout/Stderr receive the client's output. Nil means the
	// current process's stdout/stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Name identifies the provider in logs and events.
func (n *Ngrok) Name() string { return "ngrok" }

// Authenticate runs the token-persisting subcommand once and waits for
// it to exit. A missing binary or a non-zero exit is an explicit error.
func (n *Ngrok) Authenticate(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, n.Binary, n.authArgs()...)
	cmd.Stdout = n.stdout()
	cmd.Stderr = n.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tunnel: %s authtoken: %w", n.Binary, err)
	}
	return nil
}

// Publish forwards the local port and blocks until the client exits,
// either on relay failure or because the context was cancelled by an
// operator interrupt.
func (n *Ngrok) Publish(ctx context.Context, port int) error {
	cmd := exec.CommandContext(ctx, n.Binary, n.publishArgs(port)...)
	cmd.Stdout = n.stdout()
	cmd.Stderr = n.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tunnel: %s %s %d: %w", n.Binary, n.protocol(), port, err)
	}
	return nil
}

func (n *Ngrok) authArgs() []string {
	return []string{"config", "add-authtoken", n.Token}
}

func (n *Ngrok) publishArgs(port int) []string {
	return []string{n.protocol(), strconv.Itoa(port)}
}

func (n *Ngrok) protocol() string {
	if n.Protocol == "" {
		return "http"
	}
	return n.Protocol
}

func (n *Ngrok) stdout() io.Writer {
	if n.Stdout != nil {
		return n.Stdout
	}
	return os.Stdout
}

func (n *Ngrok) stderr() io.Writer {
	if n.Stderr != nil {
		return n.Stderr
	}
	return os.Stderr
}
