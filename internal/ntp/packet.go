package ntp

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// PacketSize is the wire size of the header without the authentication
// trailer. Datagrams shorter than this are invalid; longer ones carry
// extension fields this client does not handle.
const PacketSize = 48

// Packet is the RFC 5905 header shared by requests and replies. Leap,
// version and mode are kept as separate fields and packed into the first
// wire byte on encode.
type Packet struct {
	Leap      Leap
	Version   byte
	Mode      Mode
	Stratum   byte
	Poll      int8
	Precision int8
	RootDelay Short
	RootDisp  Short
	RefID     uint32 /* 4-character kiss code when stratum is 0 */
	RefTime   Timestamp
	Org       Timestamp /* T1 as echoed by the server */
	Rec       Timestamp /* T2, server receive time */
	Xmt       Timestamp /* T3 in a reply, T1 in a request */
}

// wireFields covers every header field after the packed first byte, in wire
// order.
type wireFields struct {
	Stratum   byte
	Poll      int8
	Precision int8
	RootDelay uint32
	RootDisp  uint32
	RefID     uint32
	RefTime   uint64
	Org       uint64
	Rec       uint64
	Xmt       uint64
}

// Encode serializes the packet into its 48-byte network-order layout.
func (p *Packet) Encode() []byte {
	firstByte := byte(p.Leap)<<6 | p.Version<<3 | byte(p.Mode)

	var buffer bytes.Buffer
	buffer.WriteByte(firstByte)
	binary.Write(&buffer, binary.BigEndian, &wireFields{
		Stratum:   p.Stratum,
		Poll:      p.Poll,
		Precision: p.Precision,
		RootDelay: uint32(p.RootDelay),
		RootDisp:  uint32(p.RootDisp),
		RefID:     p.RefID,
		RefTime:   uint64(p.RefTime),
		Org:       uint64(p.Org),
		Rec:       uint64(p.Rec),
		Xmt:       uint64(p.Xmt),
	})
	return buffer.Bytes()
}

// DecodePacket parses the first 48 bytes of a datagram. Anything shorter is
// rejected before any field is read.
func DecodePacket(raw []byte) (*Packet, error) {
	if len(raw) < PacketSize {
		return nil, fmt.Errorf("ntp: datagram too short: %d bytes", len(raw))
	}

	firstByte := raw[0]
	fields := wireFields{}
	if err := binary.Read(bytes.NewReader(raw[1:PacketSize]), binary.BigEndian, &fields); err != nil {
		return nil, err
	}

	return &Packet{
		Leap:      Leap(firstByte >> 6),
		Version:   (firstByte >> 3) & 0b111,
		Mode:      Mode(firstByte & 0b111),
		Stratum:   fields.Stratum,
		Poll:      fields.Poll,
		Precision: fields.Precision,
		RootDelay: Short(fields.RootDelay),
		RootDisp:  Short(fields.RootDisp),
		RefID:     fields.RefID,
		RefTime:   Timestamp(fields.RefTime),
		Org:       Timestamp(fields.Org),
		Rec:       Timestamp(fields.Rec),
		Xmt:       Timestamp(fields.Xmt),
	}, nil
}
