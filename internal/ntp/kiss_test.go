package ntp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKissCode(t *testing.T) {
	assert.Equal(t, "RATE", KissCode(0x52415445))
	assert.Equal(t, "DENY", KissCode(0x44454e59))
	// Exactly four bytes, zero filled, no terminator handling.
	assert.Equal(t, "X\x00\x00\x00", KissCode(0x58000000))
}

func TestKissMessageKnownCodes(t *testing.T) {
	for _, code := range []string{
		"ACST", "AUTH", "AUTO", "BCST", "CRYP", "DENY", "DROP",
		"RSTR", "INIT", "MCST", "NKEY", "RATE", "RMOT", "STEP",
	} {
		msg, ok := KissMessage(code)
		assert.Truef(t, ok, "code %s", code)
		assert.NotEmptyf(t, msg, "code %s", code)
	}
}

func TestKissMessageUnknownCode(t *testing.T) {
	msg, ok := KissMessage("XXXX")
	assert.False(t, ok)
	assert.Empty(t, msg)
}
