// Package launch starts the application process without supervising it.
package launch

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

// Launcher spawns the web application as an independent child process.
// The call is fire-and-forget: Start returns as soon as the process
// exists, it never waits for the application to initialize.
type Launcher struct {
	Command []string
	Dir     string
	Env     []string

	// Stdout/Stderr receive the application's output. Nil means the
	// launcher's own stdout/stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Handle refers to a spawned application process.
type Handle struct {
	Pid     int
	started time.Time

	cmd    *exec.Cmd
	waitMu sync.Mutex
	exitCh chan ExitEvent
}

// ExitEvent reports that the application process exited. Err is nil on
// a zero exit status.
type ExitEvent struct {
	Pid int
	Err error
}

// Start spawns the application and returns immediately. A missing
// interpreter or executable surfaces here as an error rather than a
// silently dead child.
func (l *Launcher) Start() (*Handle, error) {
	if len(l.Command) == 0 {
		return nil, fmt.Errorf("launch: empty command")
	}

	cmd := exec.Command(l.Command[0], l.Command[1:]...)
	cmd.Dir = l.Dir
	cmd.Env = l.Env
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("launch: start %q: %w", l.Command[0], err)
	}

	return &Handle{
		Pid:     cmd.Process.Pid,
		started: time.Now(),
		cmd:     cmd,
	}, nil
}

// Watch starts a reaper goroutine on first call and returns a channel
// that delivers the process's exit exactly once. This keeps the
// launch itself non-blocking while still letting a caller observe a
// crashed application instead of tunneling to a dead backend.
func (h *Handle) Watch() <-chan ExitEvent {
	h.waitMu.Lock()
	defer h.waitMu.Unlock()

	if h.exitCh == nil {
		h.exitCh = make(chan ExitEvent, 1)
		go func() {
			err := h.cmd.Wait()
			h.exitCh <- ExitEvent{Pid: h.Pid, Err: err}
		}()
	}
	return h.exitCh
}

// Uptime reports how long ago the process was started.
func (h *Handle) Uptime() time.Duration {
	return time.Since(h.started)
}

// Terminate sends an interrupt to the application. The orchestrator never
// calls this on its own -- leaving the application running after the
// tunnel closes is the documented contract -- but the CLI offers it
// behind an explicit flag.
func (h *Handle) Terminate() error {
	if h.cmd.Process == nil {
		return fmt.Errorf("launch: no process to terminate")
	}
	if err := h.cmd.Process.Signal(os.Interrupt); err != nil {
		return fmt.Errorf("launch: terminate pid %d: %w", h.Pid, err)
	}
	return nil
}
