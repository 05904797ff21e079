// Package ready decides when the application is reachable on its port.
package ready

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrTimeout is returned by ProbeWaiter when the port never accepted a
// connection within the bound.
var ErrTimeout = errors.New("ready: timed out")

// Waiter blocks until the application on the given port is considered
// ready, or the context is cancelled.
type Waiter interface {
	Wait(ctx context.Context, port int) error
}

// DelayWaiter is the original fixed-delay heuristic: sleep for a
// constant and assume the application made it. Kept as the default
// because it reproduces the source behavior exactly; it can be both
// too short and too long.
type DelayWaiter struct {
	Delay time.Duration
}

// Wait sleeps for the configured delay.
func (w DelayWaiter) Wait(ctx context.Context, port int) error {
	timer := time.NewTimer(w.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("ready: delay wait: %w", ctx.Err())
	}
}

// ProbeWaiter polls the application port with TCP connects until one
// succeeds, bounded by Timeout. It turns "probably ready" into an
// explicit ready / timed-out result.
type ProbeWaiter struct {
	Timeout  time.Duration
	Interval time.Duration

	// Host defaults to 127.0.0.1.
	Host string
}

// Wait polls until the port accepts a connection, the timeout elapses,
// or the context is cancelled.
func (w ProbeWaiter) Wait(ctx context.Context, port int) error {
	host := w.Host
	if host == "" {
		host = "127.0.0.1"
	}
	interval := w.Interval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	deadline := time.Now().Add(w.Timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		conn, err := net.DialTimeout("tcp", addr, interval)
		if err == nil {
			conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s not accepting connections after %s", ErrTimeout, addr, w.Timeout)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("ready: probe %s: %w", addr, ctx.Err())
		case <-ticker.C:
		}
	}
}
