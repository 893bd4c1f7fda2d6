package sntp

import (
	"net"
	"strconv"
	"time"
)

// Channel is the datagram endpoint the transport drives. Bind opens the
// local port; LocalPort reports 0 until then. Pending reports the size of
// the next queued datagram without consuming it, or 0 if none has arrived.
// Read consumes that datagram, copying at most len(p) bytes and discarding
// the remainder.
type Channel interface {
	Bind(port int) error
	LocalPort() int
	WriteTo(host string, port int, p []byte) (int, error)
	Pending() int
	Read(p []byte) (int, error)
}

// Network reports whether usable network connectivity exists at all.
type Network interface {
	Up() bool
}

// datagramMax is enough for any NTP reply this client accepts; trailing
// extension fields past it would be cut off with the rest of the datagram.
const datagramMax = 1300

// UDPChannel implements Channel on a connectionless UDP socket.
type UDPChannel struct {
	conn    *net.UDPConn
	pending []byte
}

func (c *UDPChannel) Bind(port int) error {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: port})
	if err != nil {
		return err
	}
	c.conn = conn
	return nil
}

func (c *UDPChannel) LocalPort() int {
	if c.conn == nil {
		return 0
	}
	return c.conn.LocalAddr().(*net.UDPAddr).Port
}

// WriteTo resolves host on every call, so a pool name may rotate between
// exchanges.
func (c *UDPChannel) WriteTo(host string, port int, p []byte) (int, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return 0, err
	}
	return c.conn.WriteToUDP(p, addr)
}

// Pending polls the socket without blocking. A datagram, once seen, is held
// back for the next Read.
func (c *UDPChannel) Pending() int {
	if c.pending != nil {
		return len(c.pending)
	}
	if c.conn == nil {
		return 0
	}

	// The deadline must lie in the future: an already-expired deadline makes
	// the poller fail the read before it ever looks at the socket, hiding
	// datagrams that are already queued.
	buffer := make([]byte, datagramMax)
	if err := c.conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return 0
	}
	n, _, err := c.conn.ReadFromUDP(buffer)
	if err != nil {
		return 0
	}
	c.pending = buffer[:n]
	return n
}

func (c *UDPChannel) Read(p []byte) (int, error) {
	if c.pending == nil && c.Pending() == 0 {
		return 0, ErrProtocolMismatch
	}
	n := copy(p, c.pending)
	c.pending = nil
	return n, nil
}

// SystemNetwork answers from the interface table: connectivity exists when
// some non-loopback interface is up and has an address.
type SystemNetwork struct{}

func (SystemNetwork) Up() bool {
	interfaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if addrs, err := iface.Addrs(); err == nil && len(addrs) > 0 {
			return true
		}
	}
	return false
}
