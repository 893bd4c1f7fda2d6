// Package ntp holds the protocol-level pieces of the SNTP client: the packet
// layout of RFC 5905 section 7.3, the fixed-point timestamp formats of
// section 6, and the kiss-o'-death codes of RFC 4330 section 8.
package ntp

// Mode is the association mode carried in the low three bits of the first
// header byte.
type Mode byte

const (
	Reserved Mode = iota
	SymmetricActive
	SymmetricPassive
	Client
	Server
	Broadcast
	ControlMessage
	ReservedPrivate
)

// Leap is the two-bit leap indicator.
type Leap byte

const (
	LeapNoWarning Leap = iota
	LeapAddSecond
	LeapDelSecond
	LeapAlarm // clock never synchronized
)

const (
	Version = 4 // NTP version number

	Port = 123 // IANA-assigned NTP port

	// MaxStratum is the largest valid stratum. Stratum 0 is a kiss-o'-death
	// reply and 16-255 are reserved.
	MaxStratum = 15
)
