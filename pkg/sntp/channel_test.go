package sntp

import (
	"testing"

	"github.com/42nibbles/SNTPv4/internal/ntp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDPChannelBind(t *testing.T) {
	channel := &UDPChannel{}
	assert.Zero(t, channel.LocalPort())

	// Port 0 lets the kernel pick, so parallel test runs cannot collide.
	require.NoError(t, channel.Bind(0))
	assert.NotZero(t, channel.LocalPort())
}

func TestUDPChannelPendingEmptyQueue(t *testing.T) {
	channel := &UDPChannel{}
	assert.Zero(t, channel.Pending())

	require.NoError(t, channel.Bind(0))
	assert.Zero(t, channel.Pending())
}

func TestUDPChannelLoopbackExchange(t *testing.T) {
	receiver := &UDPChannel{}
	require.NoError(t, receiver.Bind(0))

	sender := &UDPChannel{}
	require.NoError(t, sender.Bind(0))

	// A reply with twenty trailing bytes, like an authenticator we ignore.
	payload := append(serverReplyBytes(nil), make([]byte, 20)...)
	n, err := sender.WriteTo("127.0.0.1", receiver.LocalPort(), payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)

	// The datagram is queued in the kernel; polling must surface it even
	// though no poll blocks for more than a moment.
	size := 0
	for cycle := 0; cycle < 1000 && size == 0; cycle++ {
		size = receiver.Pending()
	}
	require.Equal(t, len(payload), size)

	// A second poll reports the same datagram, it is held until read.
	assert.Equal(t, len(payload), receiver.Pending())

	raw := make([]byte, ntp.PacketSize)
	n, err = receiver.Read(raw)
	require.NoError(t, err)
	assert.Equal(t, ntp.PacketSize, n)

	reply, err := ntp.DecodePacket(raw)
	require.NoError(t, err)
	assert.Equal(t, ntp.Server, reply.Mode)

	// Reading consumed the datagram, trailing bytes included.
	assert.Zero(t, receiver.Pending())
}
