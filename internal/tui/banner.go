package tui

import (
	"math/rand"
	"time"
)

// taglines is a rotating set of quips shown under the banner.
var taglines = []string{
	"Demo to internet in one keypress.",
	"localhost, but make it public.",
	"Five seconds of sleep, a lifetime of uptime.",
	"Your port 5000 called. It wants visitors.",
	"Shipping straight from the laptop.",
	"No packets were harmed. Probably.",
	"Tunnels all the way down.",
}

// sessionTagline is selected once at startup and stays for the session.
var sessionTagline string

func init() {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)
	sessionTagline = taglines[r.Intn(len(taglines))]
}

// Banner returns the ASCII art launchpad banner with a random tagline.
func Banner() string {
	art := `
 ██╗      ██████╗  █████╗ ██████╗
 ██║      ██╔══██╗██╔══██╗██╔══██╗
 ██║      ██████╔╝███████║██║  ██║
 ██║      ██╔═══╝ ██╔══██║██║  ██║
 ███████╗ ██║     ██║  ██║██████╔╝
 ╚══════╝ ╚═╝     ╚═╝  ╚═╝╚═════╝`

	return BannerStyle.Render(art) + "\n" +
		SubtitleStyle.Render(" launchpad -- "+sessionTagline)
}

// BannerCompact returns a single-line version for smaller screens.
func BannerCompact() string {
	return ActiveStyle.Render("[ launchpad ]") +
		DimStyle.Render(" "+sessionTagline)
}
