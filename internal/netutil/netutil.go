// Package netutil holds the small network checks the bootstrap runs
// before spawning anything.
package netutil

import (
	"fmt"
	"net"
	"os/exec"
)

// PortFree verifies nothing is already bound to the loopback port the
// application wants. A stale instance would make the launch fail
// invisibly and the tunnel would forward to the wrong process.
func PortFree(port int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("netutil: port %d already in use: %w", port, err)
	}
	ln.Close()
	return nil
}

// BinaryOnPath checks that an executable can be resolved via PATH.
func BinaryOnPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("netutil: %q not found on PATH: %w", name, err)
	}
	return nil
}

// OutboundIP returns the address of the interface the OS would route
// external traffic through. The UDP dial never sends a packet; it only
// asks the kernel to pick a source address.
func OutboundIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("netutil: detect outbound interface: %w", err)
	}
	defer conn.Close()

	local, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("netutil: unexpected local address type %T", conn.LocalAddr())
	}
	return local.IP.String(), nil
}
