// Package sntp implements a single-shot SNTP client: one request/reply
// exchange per call, validated against the rules of RFC 4330 section 5, with
// the on-wire algorithm computing clock offset and round-trip delay from the
// four protocol timestamps.
package sntp

import (
	"math"
	"time"

	"github.com/42nibbles/SNTPv4/internal/ntp"
	"github.com/sirupsen/logrus"
)

// ExchangeTimeout is the default receive budget in polling cycles, roughly
// milliseconds.
const ExchangeTimeout = 1024

// Client owns the request/response semantics on top of a Transport. It is
// synchronous and not reentrant; one exchange completes or fails before the
// next may start.
type Client struct {
	transport *Transport
	clock     Clock
	log       logrus.FieldLogger
	timeout   uint
}

// New returns a client on the system network stack. An empty server name
// selects DefaultServerName.
func New(server string) *Client {
	clock := SystemClock{}
	log := logrus.StandardLogger()
	transport := NewTransport(&UDPChannel{}, SystemNetwork{}, clock, log)
	if server != "" {
		transport.serverName = server
	}
	return NewClient(transport, clock, log)
}

// NewClient wires a client to an explicit transport and clock.
func NewClient(transport *Transport, clock Clock, log logrus.FieldLogger) *Client {
	return &Client{
		transport: transport,
		clock:     clock,
		log:       log,
		timeout:   ExchangeTimeout,
	}
}

func (c *Client) ServerName() string {
	return c.transport.ServerName()
}

func (c *Client) SetServerName(name string) error {
	return c.transport.SetServerName(name)
}

// SetTimeout replaces the receive budget for subsequent exchanges.
func (c *Client) SetTimeout(cycles uint) error {
	if cycles == 0 {
		return ErrInvalidArgument
	}
	c.timeout = cycles
	return nil
}

// Result is the outcome of one on-wire exchange.
type Result struct {
	Time   int64   // corrected Unix time, whole seconds
	Offset float64 // clock offset in seconds
	Delay  float64 // round-trip delay in seconds
}

// Time performs one complete exchange and returns the corrected time as the
// NEXT whole Unix second, sleeping out the fractional remainder so the
// returned second is current the moment the call returns. That trades a
// sub-second wait for a clean integer-second contract to callers that have
// no sub-second clock.
//
// unixEstimate is the caller's estimate of the current Unix time in seconds.
// It seeds the transmit timestamp T1, which both anchors the offset
// arithmetic and lets the origin check tell this exchange's reply apart from
// a stale one.
func (c *Client) Time(unixEstimate int64) (*Result, error) {
	// T1's fraction is 0.0 by agreement, so T4 can later be derived from T1
	// plus the elapsed local milliseconds alone.
	t1 := ntp.NewTimestamp(uint32(unixEstimate+ntp.UnixEraOffset), 0.0)

	// A fresh zeroed packet with only the header byte and T1 restored; no
	// stale field from a previous use can leak into the request.
	request := &ntp.Packet{
		Leap:    ntp.LeapNoWarning,
		Version: ntp.Version,
		Mode:    ntp.Client,
		Xmt:     t1,
	}

	millisStart := c.clock.Millis()
	reply, err := c.transport.Exchange(request, c.timeout)
	if err != nil {
		return nil, err
	}
	millisDelta := c.clock.Millis() - millisStart
	// Restart the counter so the arithmetic and logging below do not count
	// against the exchange delay.
	millisStart = c.clock.Millis()

	if err := c.validate(reply, t1); err != nil {
		return nil, err
	}

	// On-wire algorithm, RFC 4330 section 5. T1 is exact by construction and
	// T4 is T1 plus the measured exchange delay. All arithmetic is in
	// float64 seconds from here on to keep sub-second precision.
	t1d := float64(t1.Seconds())
	t2d := reply.Rec.Double()
	t3d := reply.Xmt.Double()
	t4d := t1d + float64(millisDelta)/1e3

	delay := (t4d - t1d) - (t3d - t2d)
	offset := ((t2d - t1d) + (t3d - t4d)) / 2

	c.log.WithFields(logrus.Fields{
		"t1":     t1d,
		"t2":     t2d,
		"t3":     t3d,
		"t4":     t4d,
		"offset": offset,
		"delay":  delay,
	}).Info("on-wire exchange complete")

	// Round up to the next whole second and block until it arrives.
	corrected := 1.0 + offset + float64(unixEstimate) + float64(c.clock.Millis()-millisStart)/1e3
	seconds, fraction := math.Modf(corrected)
	c.clock.Sleep(time.Duration((1 - fraction) * float64(time.Second)))

	return &Result{Time: int64(seconds), Offset: offset, Delay: delay}, nil
}

// validate applies the reply sanity checks of RFC 4330 section 5 in priority
// order; the first failing check wins and the rest are skipped.
func (c *Client) validate(reply *ntp.Packet, t1 ntp.Timestamp) error {
	if reply.Mode != ntp.Server {
		return ErrUnexpectedMode
	}
	if reply.Version != ntp.Version {
		return ErrVersionMismatch
	}
	if reply.Leap == ntp.LeapAlarm {
		return ErrServerUnsynchronized
	}
	if reply.Stratum > ntp.MaxStratum {
		// 16-255 is reserved and must not be interpreted.
		return ErrReservedStratum
	}
	if reply.Stratum == 0 {
		// Kiss-o'-death. The server message is discarded no matter how
		// well-formed the rest of it is (RFC 4330 section 6).
		code := ntp.KissCode(reply.RefID)
		if msg, ok := ntp.KissMessage(code); ok {
			c.log.WithField("code", code).Warn("kiss-o'-death: ", msg)
		} else {
			c.log.WithField("code", code).Warn("kiss-o'-death with unknown code")
		}
		return ErrKissOfDeath
	}
	if reply.Org != t1 {
		// The server must echo our transmit timestamp; anything else is a
		// replayed or reordered datagram.
		return ErrOriginMismatch
	}
	return nil
}
