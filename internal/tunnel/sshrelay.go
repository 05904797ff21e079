package tunnel

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	gossh "golang.org/x/crypto/ssh"
)

// SSHRelay publishes the local port through a remote-forward on an SSH
// server the operator controls, the `ssh -R` idiom. It is the fallback
// for networks where the ngrok client is unavailable.
//
// Authenticate establishes the authenticated connection (the analog of
// persisting a token); Publish opens a listener on the remote host and
// forwards every accepted connection back to the local application.
type SSHRelay struct {
	Host     string
	Port     int
	User     string
	Password string

	// RemotePort 0 lets the server assign one; the bound address is
	// printed for the operator either way.
	RemotePort int

	// Stdout receives the "forwarding" banner. Nil means os.Stdout.
	Stdout io.Writer

	mu   sync.Mutex
	conn *gossh.Client
}

// Name identifies the provider in logs and events.
func (r *SSHRelay) Name() string { return "ssh" }

// Authenticate dials the relay host and completes the SSH handshake.
// The host key is trusted on first use: this is a one-shot process
// with no persisted known-hosts store, so the fingerprint is printed
// for the operator to eyeball.
func (r *SSHRelay) Authenticate(ctx context.Context) error {
	port := r.Port
	if port == 0 {
		port = 22
	}
	addr := net.JoinHostPort(r.Host, fmt.Sprintf("%d", port))

	config := &gossh.ClientConfig{
		User: r.User,
		Auth: []gossh.AuthMethod{
			gossh.Password(r.Password),
		},
		HostKeyCallback: func(hostname string, remote net.Addr, key gossh.PublicKey) error {
			fmt.Fprintf(r.stdout(), "Host key for %s (%s):\n  %s\n",
				hostname, key.Type(), gossh.FingerprintSHA256(key))
			return nil
		},
		Timeout: 10 * time.Second,
	}

	type result struct {
		conn *gossh.Client
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		conn, err := gossh.Dial("tcp", addr, config)
		ch <- result{conn, err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("tunnel: ssh connect to %s: %w", addr, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return fmt.Errorf("tunnel: ssh connect to %s: %w", addr, res.err)
		}
		r.mu.Lock()
		r.conn = res.conn
		r.mu.Unlock()
		return nil
	}
}

// Publish opens the remote listener and forwards connections to the
// local application port until the context is cancelled or the relay
// connection dies.
func (r *SSHRelay) Publish(ctx context.Context, port int) error {
	r.mu.Lock()
	conn := r.conn
	r.mu.Unlock()

	if conn == nil {
		return fmt.Errorf("tunnel: ssh not authenticated, cannot publish port %d", port)
	}
	defer conn.Close()

	remoteAddr := fmt.Sprintf("0.0.0.0:%d", r.RemotePort)
	ln, err := conn.Listen("tcp", remoteAddr)
	if err != nil {
		return fmt.Errorf("tunnel: ssh remote listen on %s: %w", remoteAddr, err)
	}
	defer ln.Close()

	fmt.Fprintf(r.stdout(), "Forwarding %s:%s -> 127.0.0.1:%d\n", r.Host, boundPort(ln), port)

	// Close the listener when the context is cancelled so Accept
	// unblocks and the publish loop exits.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-done:
		}
	}()

	localAddr := fmt.Sprintf("127.0.0.1:%d", port)
	for {
		remote, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("tunnel: ssh publish: %w", ctx.Err())
			}
			return fmt.Errorf("tunnel: ssh accept on %s: %w", remoteAddr, err)
		}
		go forward(ctx, remote, localAddr)
	}
}

// forward connects a remote-originated connection to the local
// application and copies data bidirectionally.
func forward(ctx context.Context, remote net.Conn, localAddr string) {
	defer remote.Close()

	local, err := net.Dial("tcp", localAddr)
	if err != nil {
		return
	}
	defer local.Close()

	// Buffer of 2 so neither goroutine blocks on send after the
	// function returns.
	done := make(chan struct{}, 2)

	go func() {
		io.Copy(local, remote)
		done <- struct{}{}
	}()

	go func() {
		io.Copy(remote, local)
		done <- struct{}{}
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// boundPort extracts the port the server actually assigned.
func boundPort(ln net.Listener) string {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("%d", addr.Port)
	}
	return ln.Addr().String()
}

func (r *SSHRelay) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}
