// Package report prints the operator-facing access summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Info carries everything the access summary needs.
type Info struct {
	Port     int
	LANHost  string
	AuthUser string
	AuthPass string

	// Tunneled indicates a tunnel step actually ran, so the summary
	// should point at the relay's own output for the public address.
	Tunneled bool
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Dark: "#AF87FF", Light: "#7B5FBF"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Dark: "#5FD75F", Light: "#2E8B2E"}).
			Width(10)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Dark: "#585858", Light: "#999999"})

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Dark: "#3A3A3A", Light: "#CCCCCC"}).
			Padding(1, 2)
)

// Render builds the summary block. The local URL always names the
// loopback address and the credentials always match what was injected
// into the application's environment.
func Render(i Info) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AniMotion is up") + "\n\n")
	b.WriteString(labelStyle.Render("Local") + fmt.Sprintf("http://127.0.0.1:%d\n", i.Port))
	b.WriteString(labelStyle.Render("LAN") + fmt.Sprintf("http://%s:%d\n", i.LANHost, i.Port))
	if i.Tunneled {
		b.WriteString(labelStyle.Render("Public") + dimStyle.Render("see the tunnel output above") + "\n")
	}
	b.WriteString(labelStyle.Render("Login") + fmt.Sprintf("%s / %s\n", i.AuthUser, i.AuthPass))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Print writes the rendered summary to w, exactly once per call.
func Print(w io.Writer, i Info) {
	fmt.Fprintln(w, Render(i))
}
