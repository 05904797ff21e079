package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderContents(t *testing.T) {
	out := Render(Info{
		Port:     5000,
		LANHost:  "192.168.1.100",
		AuthUser: "admin",
		AuthPass: "animotion123",
		Tunneled: true,
	})

	require.Contains(t, out, "127.0.0.1:5000")
	require.Contains(t, out, "192.168.1.100:5000")
	require.Contains(t, out, "admin / animotion123")
	require.Contains(t, out, "tunnel output")
}

func TestRenderWithoutTunnel(t *testing.T) {
	out := Render(Info{
		Port:     8080,
		LANHost:  "10.0.0.7",
		AuthUser: "admin",
		AuthPass: "pw",
	})

	require.Contains(t, out, "127.0.0.1:8080")
	require.NotContains(t, out, "tunnel output")
}

func TestPrintEmitsOnce(t *testing.T) {
	var buf bytes.Buffer
	info := Info{Port: 5000, LANHost: "192.168.1.100", AuthUser: "admin", AuthPass: "animotion123"}

	Print(&buf, info)

	require.Equal(t, 1, strings.Count(buf.String(), "admin / animotion123"))
}
