package ntp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestampRoundTrip(t *testing.T) {
	cases := []struct {
		seconds  uint32
		fraction float64
	}{
		{0, 0},
		{1, 0.5},
		{3_846_310_349, 0.25},
		{4_294_967_295, 0.999999},
		{2_208_988_800, 0.123456789},
	}

	for _, c := range cases {
		ts := NewTimestamp(c.seconds, c.fraction)
		assert.Equal(t, c.seconds, ts.Seconds())
		// Quantization step of the 32-bit fraction field.
		assert.InDelta(t, c.fraction, ts.Fraction(), 1.0/EraLength)
	}
}

func TestShortRoundTrip(t *testing.T) {
	cases := []struct {
		seconds  uint16
		fraction float64
	}{
		{0, 0},
		{1, 0.5},
		{65535, 0.75},
		{12345, 0.0001},
	}

	for _, c := range cases {
		ts := NewShort(c.seconds, c.fraction)
		assert.Equal(t, c.seconds, ts.Seconds())
		assert.InDelta(t, c.fraction, ts.Fraction(), 1.0/ShortLength)
	}
}

func TestTimestampBitLayout(t *testing.T) {
	// Seconds occupy the high-order half, the fraction the low-order half.
	ts := NewTimestamp(1, 0.5)
	assert.Equal(t, Timestamp(1)<<32|Timestamp(0x80000000), ts)

	short := NewShort(1, 0.5)
	assert.Equal(t, Short(1)<<16|Short(0x8000), short)
}

func TestTimestampDouble(t *testing.T) {
	ts := NewTimestamp(1000, 0.5)
	assert.InDelta(t, 1000.5, ts.Double(), 1.0/EraLength)
}

func TestFractionTruncates(t *testing.T) {
	// One quantization step below 1.0 survives; the codec never rounds up
	// into the seconds field.
	ts := NewTimestamp(7, 1.0-1.0/EraLength)
	assert.Equal(t, uint32(7), ts.Seconds())
	assert.Less(t, ts.Fraction(), 1.0)
}
