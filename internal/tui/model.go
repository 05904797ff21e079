package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/animotion/launchpad/internal/boot"
	"github.com/animotion/launchpad/internal/config"
	"github.com/animotion/launchpad/internal/report"
	"github.com/animotion/launchpad/internal/tui/components"
)

// stageStatus is the dashboard's view of one stage.
type stageStatus int

const (
	statusPending stageStatus = iota
	statusRunning
	statusDone
	statusWarned
	statusFailed
)

// stageEventMsg carries one orchestrator event into the model.
type stageEventMsg struct {
	ev boot.StageEvent
}

// eventsClosedMsg signals the orchestrator closed its event channel.
type eventsClosedMsg struct{}

// runDoneMsg carries the orchestrator's final result.
type runDoneMsg struct {
	err error
}

// Model is the bootstrap dashboard: a stage checklist, a spinner on
// the running stage, and the tail of the captured process output.
type Model struct {
	cfg    *config.Config
	orch   *boot.Orchestrator
	logger *Logger
	ctx    context.Context
	cancel context.CancelFunc

	stages  []boot.Stage
	status  map[boot.Stage]stageStatus
	detail  map[boot.Stage]string
	spin    components.Spinner
	current boot.Stage

	showReport bool
	done       bool
	runErr     error

	width, height int
}

// NewModel creates the dashboard model. Cancelling the context is how
// the user interrupts the foreground tunnel.
func NewModel(cfg *config.Config, orch *boot.Orchestrator, logger *Logger, ctx context.Context, cancel context.CancelFunc) Model {
	status := make(map[boot.Stage]stageStatus)
	for _, s := range boot.Stages() {
		status[s] = statusPending
	}
	return Model{
		cfg:    cfg,
		orch:   orch,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		stages: boot.Stages(),
		status: status,
		detail: make(map[boot.Stage]string),
		spin:   components.NewSpinner("starting", ActiveStyle, LogStyle),
	}
}

// Init kicks off the bootstrap run and event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Init(),
		m.runCmd(),
		m.waitForEvent(),
	)
}

// runCmd executes the whole sequence; bubbletea runs it off the UI
// goroutine and delivers the result as a message.
func (m Model) runCmd() tea.Cmd {
	return func() tea.Msg {
		return runDoneMsg{err: m.orch.Run(m.ctx)}
	}
}

// waitForEvent pumps one orchestrator event into the model.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.orch.Events()
		if !ok {
			return eventsClosedMsg{}
		}
		return stageEventMsg{ev: ev}
	}
}

// Update handles key, event, and completion messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.done {
				return m, tea.Quit
			}
			// First press interrupts the tunnel; the sequence then
			// finishes with the report on its own.
			m.cancel()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stageEventMsg:
		m.applyEvent(msg.ev)
		return m, m.waitForEvent()

	case eventsClosedMsg:
		return m, nil

	case runDoneMsg:
		m.done = true
		m.runErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// Err returns the bootstrap result once the run has finished, nil
// before that.
func (m Model) Err() error {
	return m.runErr
}

// applyEvent folds one orchestrator event into the checklist.
func (m *Model) applyEvent(ev boot.StageEvent) {
	switch ev.Type {
	case boot.EventStarted:
		m.status[ev.Stage] = statusRunning
		m.current = ev.Stage
		label := ev.Stage.String()
		if ev.Detail != "" {
			label += " (" + ev.Detail + ")"
		}
		m.spin.SetLabel(label)
	case boot.EventDone:
		m.status[ev.Stage] = statusDone
		if ev.Stage == boot.StageReport {
			m.showReport = true
		}
	case boot.EventWarned:
		m.status[ev.Stage] = statusWarned
		if ev.Err != nil {
			m.detail[ev.Stage] = ev.Err.Error()
		}
	case boot.EventFailed:
		m.status[ev.Stage] = statusFailed
		if ev.Err != nil {
			m.detail[ev.Stage] = ev.Err.Error()
		}
	}
	if ev.Detail != "" {
		m.detail[ev.Stage] = ev.Detail
	}
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	if m.width > 0 && m.width < 50 {
		b.WriteString(BannerCompact() + "\n\n")
	} else {
		b.WriteString(Banner() + "\n\n")
	}

	for _, s := range m.stages {
		b.WriteString(m.stageLine(s) + "\n")
	}

	if logs := m.logger.Recent(8); len(logs) > 0 {
		b.WriteString("\n" + DimStyle.Render("── output ──") + "\n")
		for _, entry := range logs {
			line := entry.Message
			if entry.Level == LogError {
				line = WarningStyle.Render(line)
			} else {
				line = LogStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.showReport {
		b.WriteString("\n" + report.Render(report.Info{
			Port:     m.cfg.App.Port,
			LANHost:  m.cfg.Report.LANHost,
			AuthUser: m.cfg.Env.AuthUser,
			AuthPass: m.cfg.Env.AuthPass,
			Tunneled: true,
		}) + "\n")
		b.WriteString(DimStyle.Render("local: ") + components.HTTPLink(m.cfg.App.Port) + "\n")
	}

	if m.done {
		if m.runErr != nil {
			b.WriteString("\n" + ErrorStyle.Render(fmt.Sprintf("bootstrap failed: %v", m.runErr)) + "\n")
		}
		b.WriteString(FooterStyle.Render("q: quit"))
	} else {
		b.WriteString(FooterStyle.Render("q: stop tunnel and finish"))
	}

	return PanelStyle.Render(b.String())
}

// stageLine renders one checklist row.
func (m Model) stageLine(s boot.Stage) string {
	label := s.String()
	if d, ok := m.detail[s]; ok && d != "" {
		label += DimStyle.Render(" - " + d)
	}

	switch m.status[s] {
	case statusRunning:
		return m.spin.View()
	case statusDone:
		return SuccessStyle.Render("✓ ") + label
	case statusWarned:
		return WarningStyle.Render("! ") + label
	case statusFailed:
		return ErrorStyle.Render("✗ ") + label
	default:
		return DimStyle.Render("○ " + s.String())
	}
}
