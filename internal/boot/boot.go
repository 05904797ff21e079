// Package boot runs the bootstrap sequence: prepare the environment,
// spawn the application, wait for it, publish the tunnel, report.
package boot

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/animotion/launchpad/internal/config"
	"github.com/animotion/launchpad/internal/env"
	"github.com/animotion/launchpad/internal/launch"
	"github.com/animotion/launchpad/internal/netutil"
	"github.com/animotion/launchpad/internal/ready"
	"github.com/animotion/launchpad/internal/report"
	"github.com/animotion/launchpad/internal/tunnel"
)

// EventType describes what happened to a stage.
type EventType int

const (
	EventStarted EventType = iota
	EventDone
	EventWarned
	EventFailed
)

// String returns a human-readable event type.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventDone:
		return "done"
	case EventWarned:
		return "warned"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageEvent is emitted as the orchestrator moves through the
// sequence. The TUI subscribes to these to drive its dashboard.
type StageEvent struct {
	Stage  Stage
	Type   EventType
	Detail string
	Err    error
}

// Options tweak the sequence without changing its shape.
type Options struct {
	// SkipTunnel ends the run after the readiness wait, for purely
	// local sessions.
	SkipTunnel bool

	// OpenBrowser opens the local URL once the application is ready.
	OpenBrowser bool
}

// Orchestrator executes the linear bootstrap sequence. It is single
// threaded: the only concurrency is the fire-and-forget application
// child and the optional exit watcher.
type Orchestrator struct {
	Config *config.Config
	Waiter ready.Waiter
	Tunnel tunnel.Provider
	Opts   Options

	// Out/ErrOut receive the orchestrator's own messages and the
	// report. Nil means the process's stdout/stderr.
	Out    io.Writer
	ErrOut io.Writer

	// BaseEnv is the environment the overlay is merged onto.
	// Nil means os.Environ().
	BaseEnv []string

	// Opener is called with the local URL when Opts.OpenBrowser is
	// set. Nil disables opening even if the flag is set.
	Opener func(url string) error

	events chan StageEvent
	handle *launch.Handle
}

// New wires an orchestrator from the configuration, choosing the
// waiter and tunnel provider it selects.
func New(cfg *config.Config, opts Options) (*Orchestrator, error) {
	var waiter ready.Waiter
	switch cfg.Readiness.Mode {
	case config.ModeProbe:
		waiter = ready.ProbeWaiter{
			Timeout:  cfg.Readiness.Timeout.Std(),
			Interval: cfg.Readiness.Interval.Std(),
		}
	default:
		waiter = ready.DelayWaiter{Delay: cfg.Readiness.Delay.Std()}
	}

	if cfg.Report.AutoLAN {
		if ip, err := netutil.OutboundIP(); err == nil {
			cfg.Report.LANHost = ip
		}
	}

	var provider tunnel.Provider
	if !opts.SkipTunnel {
		var err error
		provider, err = tunnel.New(cfg.Tunnel)
		if err != nil {
			return nil, err
		}
	}

	return &Orchestrator{
		Config: cfg,
		Waiter: waiter,
		Tunnel: provider,
		Opts:   opts,
		events: make(chan StageEvent, 32),
	}, nil
}

// Events returns the stage lifecycle event channel. Events are dropped
// rather than blocking the sequence when nobody is draining them.
func (o *Orchestrator) Events() <-chan StageEvent {
	return o.events
}

// Handle returns the spawned application's handle, nil before launch.
func (o *Orchestrator) Handle() *launch.Handle {
	return o.handle
}

// Run executes the sequence. Every step yields an explicit result: a
// preflight, launch, or authenticate failure halts; a readiness
// timeout is a warning and the sequence keeps going (publishing a
// tunnel to a slow backend is still more useful than halting); the
// report is emitted exactly once after the publish step returns, no
// matter how it exited.
func (o *Orchestrator) Run(ctx context.Context) error {
	defer close(o.events)

	if err := o.preflight(); err != nil {
		return o.fail(StagePreflight, err)
	}

	o.emit(StageEvent{Stage: StagePrepare, Type: EventStarted})
	overlay := env.Prepare(o.Config.Env)
	base := o.BaseEnv
	if base == nil {
		base = os.Environ()
	}
	childEnv := env.Merge(base, overlay)
	o.emit(StageEvent{Stage: StagePrepare, Type: EventDone,
		Detail: fmt.Sprintf("%d variables injected", len(overlay))})

	if err := o.launch(childEnv); err != nil {
		return o.fail(StageLaunch, err)
	}

	o.waitReady(ctx)

	var publishErr error
	if !o.Opts.SkipTunnel {
		if err := o.authenticate(ctx); err != nil {
			return o.fail(StageAuth, err)
		}
		publishErr = o.publish(ctx)
	}

	o.report()

	// An operator interrupt kills the tunnel process; that is the
	// normal way a session ends, not a failure.
	if publishErr != nil && ctx.Err() == nil {
		return publishErr
	}
	return nil
}

// preflight checks the app port is free and the executables resolve
// before anything is spawned. The original proceeded blindly; a spawn
// failure then surfaced as nothing at all.
func (o *Orchestrator) preflight() error {
	o.emit(StageEvent{Stage: StagePreflight, Type: EventStarted})

	if err := netutil.PortFree(o.Config.App.Port); err != nil {
		return err
	}
	if err := netutil.BinaryOnPath(o.Config.App.Command[0]); err != nil {
		return err
	}
	if !o.Opts.SkipTunnel && o.Config.Tunnel.Provider == config.ProviderNgrok {
		if err := netutil.BinaryOnPath(o.Config.Tunnel.Ngrok.Binary); err != nil {
			return err
		}
	}

	o.emit(StageEvent{Stage: StagePreflight, Type: EventDone})
	return nil
}

// launch spawns the application fire-and-forget and starts the exit
// watcher so a crash is at least visible in the output.
func (o *Orchestrator) launch(childEnv []string) error {
	o.emit(StageEvent{Stage: StageLaunch, Type: EventStarted})

	launcher := &launch.Launcher{
		Command: o.Config.App.Command,
		Dir:     o.Config.App.Dir,
		Env:     childEnv,
		Stdout:  o.out(),
		Stderr:  o.errOut(),
	}
	handle, err := launcher.Start()
	if err != nil {
		return err
	}
	o.handle = handle

	exitCh := handle.Watch()
	go func() {
		ev := <-exitCh
		if ev.Err != nil {
			fmt.Fprintf(o.errOut(), "application (pid %d) exited: %v\n", ev.Pid, ev.Err)
		} else {
			fmt.Fprintf(o.errOut(), "application (pid %d) exited\n", ev.Pid)
		}
	}()

	o.emit(StageEvent{Stage: StageLaunch, Type: EventDone,
		Detail: fmt.Sprintf("pid %d", handle.Pid)})
	return nil
}

// waitReady runs the configured waiter. A probe timeout downgrades to
// a warning: the tunnel may expose a backend that is still starting,
// which matches the original fixed-delay behavior.
func (o *Orchestrator) waitReady(ctx context.Context) {
	o.emit(StageEvent{Stage: StageReady, Type: EventStarted})

	if err := o.Waiter.Wait(ctx, o.Config.App.Port); err != nil {
		o.emit(StageEvent{Stage: StageReady, Type: EventWarned, Err: err})
		fmt.Fprintf(o.errOut(), "readiness: %v (continuing)\n", err)
		return
	}
	o.emit(StageEvent{Stage: StageReady, Type: EventDone})

	if o.Opts.OpenBrowser && o.Opener != nil {
		if err := o.Opener(o.Config.LocalURL()); err != nil {
			fmt.Fprintf(o.errOut(), "browser: %v\n", err)
		}
	}
}

func (o *Orchestrator) authenticate(ctx context.Context) error {
	o.emit(StageEvent{Stage: StageAuth, Type: EventStarted,
		Detail: o.Tunnel.Name()})
	if err := o.Tunnel.Authenticate(ctx); err != nil {
		return err
	}
	o.emit(StageEvent{Stage: StageAuth, Type: EventDone})
	return nil
}

// publish blocks until the tunnel process exits. The error is carried
// to the caller but never prevents the report.
func (o *Orchestrator) publish(ctx context.Context) error {
	o.emit(StageEvent{Stage: StagePublish, Type: EventStarted,
		Detail: fmt.Sprintf("%s port %d", o.Config.Tunnel.Protocol, o.Config.App.Port)})

	err := o.Tunnel.Publish(ctx, o.Config.App.Port)
	if err != nil {
		o.emit(StageEvent{Stage: StagePublish, Type: EventWarned, Err: err})
	} else {
		o.emit(StageEvent{Stage: StagePublish, Type: EventDone})
	}
	return err
}

func (o *Orchestrator) report() {
	o.emit(StageEvent{Stage: StageReport, Type: EventStarted})
	report.Print(o.out(), report.Info{
		Port:     o.Config.App.Port,
		LANHost:  o.Config.Report.LANHost,
		AuthUser: o.Config.Env.AuthUser,
		AuthPass: o.Config.Env.AuthPass,
		Tunneled: !o.Opts.SkipTunnel,
	})
	if o.handle != nil {
		// Fire-and-forget contract: the application keeps running.
		// Say so instead of leaking it silently.
		fmt.Fprintf(o.out(), "application still running (pid %d); stop it yourself when done\n", o.handle.Pid)
	}
	o.emit(StageEvent{Stage: StageReport, Type: EventDone})
}

func (o *Orchestrator) fail(stage Stage, err error) error {
	o.emit(StageEvent{Stage: stage, Type: EventFailed, Err: err})
	return fmt.Errorf("boot: %s: %w", stage, err)
}

// emit delivers an event without ever blocking the sequence.
func (o *Orchestrator) emit(ev StageEvent) {
	select {
	case o.events <- ev:
	default:
	}
}

func (o *Orchestrator) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o *Orchestrator) errOut() io.Writer {
	if o.ErrOut != nil {
		return o.ErrOut
	}
	return os.Stderr
}
