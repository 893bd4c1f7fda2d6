package ntp

// Scaling constants from the RFC 5905 reference implementation, A.1.1.
const (
	ShortLength   float64 = 65536         // 2^16
	EraLength     float64 = 4_294_967_296 // 2^32
	UnixEraOffset int64   = 2_208_988_800 // 1970 - 1900 in seconds
)

// Short is the 32-bit NTP short format: 16 bits of whole seconds over 16
// bits of binary fraction.
type Short uint32

// Timestamp is the 64-bit NTP timestamp format: 32 bits of whole seconds
// since era 0 (1 Jan 1900) over 32 bits of binary fraction.
type Timestamp uint64

// NewShort packs seconds and a real fraction in [0,1) into the short format.
// Out-of-range fractions are the caller's problem; the conversion truncates
// the way fixed-point hardware would.
func NewShort(seconds uint16, fraction float64) Short {
	return Short(seconds)<<16 | Short(uint16(fraction*ShortLength))
}

func (t Short) Seconds() uint16 {
	return uint16(t >> 16)
}

func (t Short) Fraction() float64 {
	return float64(uint16(t)) / ShortLength
}

// NewTimestamp packs seconds and a real fraction in [0,1) into the timestamp
// format, truncating the fraction to 32 bits.
func NewTimestamp(seconds uint32, fraction float64) Timestamp {
	return Timestamp(seconds)<<32 | Timestamp(uint32(fraction*EraLength))
}

func (t Timestamp) Seconds() uint32 {
	return uint32(t >> 32)
}

func (t Timestamp) Fraction() float64 {
	return float64(uint32(t)) / EraLength
}

// Double is the timestamp as real seconds since era 0. float64 keeps about
// 15.7 significant digits, so the error stays below 10 us for era-0 values.
func (t Timestamp) Double() float64 {
	return float64(t.Seconds()) + t.Fraction()
}
