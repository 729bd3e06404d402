// Package protocol implements the binary feature-report frame format spoken
// by Razer laptop firmware: a fixed-size request/response structure with a
// random correlation id, a 16-bit command word and an 80-byte argument
// payload. Encoding and decoding are pure byte shuffling; response
// validation is a separate step (see Validate).
package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand"
	"strings"
)

const (
	// ArgsSize is the capacity of the argument payload. Arguments beyond
	// the caller's explicit bytes are always zero.
	ArgsSize = 80

	// FrameSize is the wire size of every frame, request or response.
	FrameSize = 90
)

// Status byte values reported by the firmware.
const (
	StatusNew          byte = 0x00
	StatusSuccessful   byte = 0x02
	StatusNotSupported byte = 0x05
)

// Frame is a single feature-report exchange unit. A frame is built fresh
// for every call, sent once and discarded after its paired response is
// consumed.
type Frame struct {
	Status           byte
	ID               byte
	RemainingPackets uint16
	ProtocolType     byte
	DataSize         byte
	CommandClass     byte
	CommandID        byte
	Args             [ArgsSize]byte
	CRC              byte
	Reserved         byte
}

// NewFrame builds a request frame for the given command word with a fresh
// random correlation id. The command word packs command class in the high
// byte and command id in the low byte, e.g. 0x0d82.
func NewFrame(command uint16, args []byte) (*Frame, error) {
	if len(args) > ArgsSize {
		return nil, &ArgsTooLongError{Len: len(args)}
	}

	f := &Frame{
		Status:       StatusNew,
		ID:           byte(rand.Intn(256)),
		ProtocolType: 0x00,
		DataSize:     byte(len(args)),
		CommandClass: byte(command >> 8),
		CommandID:    byte(command & 0xff),
	}
	copy(f.Args[:], args)
	return f, nil
}

// Command returns the 16-bit command word.
func (f *Frame) Command() uint16 {
	return uint16(f.CommandClass)<<8 | uint16(f.CommandID)
}

// Marshal serializes the frame to its fixed wire layout. The crc byte is
// written as zero: the firmware neither computes nor checks it, and this
// implementation reproduces that behavior rather than hardening it.
func (f *Frame) Marshal() []byte {
	b := make([]byte, FrameSize)
	b[0] = f.Status
	b[1] = f.ID
	binary.LittleEndian.PutUint16(b[2:4], f.RemainingPackets)
	b[4] = f.ProtocolType
	b[5] = f.DataSize
	b[6] = f.CommandClass
	b[7] = f.CommandID
	copy(b[8:8+ArgsSize], f.Args[:])
	b[88] = f.CRC
	b[89] = f.Reserved
	return b
}

// Unmarshal deserializes a frame. The only structural requirement is that
// the buffer is exactly FrameSize bytes; semantic checks against the
// originating request belong to Validate.
func Unmarshal(b []byte) (*Frame, error) {
	if len(b) != FrameSize {
		return nil, &InvalidSizeError{Size: len(b)}
	}

	f := &Frame{
		Status:           b[0],
		ID:               b[1],
		RemainingPackets: binary.LittleEndian.Uint16(b[2:4]),
		ProtocolType:     b[4],
		DataSize:         b[5],
		CommandClass:     b[6],
		CommandID:        b[7],
		CRC:              b[88],
		Reserved:         b[89],
	}
	copy(f.Args[:], b[8:8+ArgsSize])
	return f, nil
}

// HexString renders a byte buffer as dash-separated hex for debug logs.
func HexString(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
