package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner pairs a bubbles spinner with the label of whatever is
// currently in flight. Styling comes from the caller so the glyph and
// label follow the dashboard palette.
type Spinner struct {
	spin  spinner.Model
	label string
	text  lipgloss.Style
}

// NewSpinner builds a spinner. glyph styles the animation, text the
// label next to it.
func NewSpinner(label string, glyph, text lipgloss.Style) Spinner {
	return Spinner{
		spin:  spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(glyph)),
		label: label,
		text:  text,
	}
}

// SetLabel swaps the label without restarting the animation.
func (s *Spinner) SetLabel(label string) {
	s.label = label
}

// Init starts the tick loop.
func (s Spinner) Init() tea.Cmd {
	return s.spin.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spin, cmd = s.spin.Update(msg)
	return s, cmd
}

// View renders the glyph followed by the label.
func (s Spinner) View() string {
	return s.spin.View() + " " + s.text.Render(s.label)
}
