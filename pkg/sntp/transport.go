package sntp

import (
	"errors"
	"net"
	"time"

	"github.com/42nibbles/SNTPv4/internal/ntp"
	"github.com/sirupsen/logrus"
)

// DefaultServerName is queried when no server has been configured.
const DefaultServerName = "europe.pool.ntp.org"

// LocalPort is the fixed client-side UDP port.
const LocalPort = 8123

// Transport carries exactly one request/reply exchange at a time. It knows
// the wire layout of NTP messages but none of the protocol rules; those live
// in Client.
//
// The local endpoint is bound lazily on the first exchange and stays bound
// for the life of the process. Closing and reopening the port per call (or
// on error) is explicitly avoided.
type Transport struct {
	serverName string
	channel    Channel
	network    Network
	clock      Clock
	log        logrus.FieldLogger
}

func NewTransport(channel Channel, network Network, clock Clock, log logrus.FieldLogger) *Transport {
	return &Transport{
		serverName: DefaultServerName,
		channel:    channel,
		network:    network,
		clock:      clock,
		log:        log,
	}
}

// ServerName returns the name of the current NTP server.
func (t *Transport) ServerName() string {
	return t.serverName
}

// SetServerName sets the destination host for subsequent exchanges. The name
// is not resolved until a datagram is sent.
func (t *Transport) SetServerName(name string) error {
	if name == "" {
		return ErrInvalidArgument
	}
	t.serverName = name
	return nil
}

// Exchange sends the request and blocks until a reply arrives or the receive
// budget runs out. The timeout is a polling-iteration count at roughly one
// poll per millisecond, not a wall-clock deadline.
func (t *Transport) Exchange(request *ntp.Packet, timeout uint) (*ntp.Packet, error) {
	if request == nil || timeout == 0 {
		return nil, ErrInvalidArgument
	}
	if !t.network.Up() {
		return nil, ErrNetworkDown
	}
	if err := t.bind(); err != nil {
		return nil, err
	}
	if err := t.send(request); err != nil {
		return nil, err
	}
	return t.receive(timeout)
}

// bind opens the local endpoint once. LocalPort() == 0 signals "not yet
// bound"; anything else signals "ready".
func (t *Transport) bind() error {
	if t.channel.LocalPort() != 0 {
		return nil
	}
	if err := t.channel.Bind(LocalPort); err != nil {
		t.log.WithError(err).Error("cannot bind local UDP port")
		return ErrNetworkDown
	}
	return nil
}

func (t *Transport) send(request *ntp.Packet) error {
	raw := request.Encode()
	n, err := t.channel.WriteTo(t.serverName, ntp.Port, raw)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			t.log.WithError(err).Error("cannot resolve server name")
			return ErrAddressUnavailable
		}
		t.log.WithError(err).Error("request send failed")
		return ErrSendFailed
	}
	if n != len(raw) {
		return ErrBufferOverflow
	}
	return nil
}

// receive polls for an arriving datagram once per minimal time unit, up to
// timeout iterations, yielding between polls so cooperative work elsewhere
// is not starved.
func (t *Transport) receive(timeout uint) (*ntp.Packet, error) {
	var size int
	for cycle := uint(0); cycle < timeout; cycle++ {
		if size = t.channel.Pending(); size != 0 {
			break
		}
		t.clock.Sleep(time.Millisecond)
	}

	if size < ntp.PacketSize {
		// Timed out, or the datagram is too small to be valid.
		return nil, ErrProtocolMismatch
	}

	// Read exactly one header; the channel discards any trailing bytes as
	// the unsupported authentication extension.
	raw := make([]byte, ntp.PacketSize)
	n, err := t.channel.Read(raw)
	if err != nil || n != ntp.PacketSize {
		return nil, ErrBufferOverflow
	}

	reply, err := ntp.DecodePacket(raw)
	if err != nil {
		return nil, ErrProtocolMismatch
	}
	return reply, nil
}
