package sntp

import "errors"

// Every failure is terminal for the current exchange. A caller wanting a
// retry re-invokes the exchange, which refreshes T1 and so stays safe
// against stale-timestamp replay.
var (
	ErrInvalidArgument      = errors.New("sntp: invalid argument")
	ErrNetworkDown          = errors.New("sntp: network is unavailable")
	ErrAddressUnavailable   = errors.New("sntp: cannot resolve server name")
	ErrBufferOverflow       = errors.New("sntp: datagram buffer lost or too small")
	ErrSendFailed           = errors.New("sntp: request was not sent correctly")
	ErrProtocolMismatch     = errors.New("sntp: no reply of protocol size within timeout")
	ErrUnexpectedMode       = errors.New("sntp: reply mode is not server")
	ErrVersionMismatch      = errors.New("sntp: reply version differs from request")
	ErrServerUnsynchronized = errors.New("sntp: server clock not synchronized")
	ErrReservedStratum      = errors.New("sntp: reply stratum in reserved range")
	ErrKissOfDeath          = errors.New("sntp: kiss-o'-death reply")
	ErrOriginMismatch       = errors.New("sntp: originate timestamp does not match request")
)
