package pdu

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed byte length of the SMPP PDU header.
const HeaderSize = 16

// Header represents PDU header.
type Header interface {
	encoding.BinaryUnmarshaler
	Length() uint32
	CommandID() CommandID
	Status() Status
	Sequence() uint32
}

type header struct {
	length    uint32
	commandID CommandID
	status    Status
	sequence  uint32
}

func (h header) Length() uint32 {
	return h.length
}
func (h header) CommandID() CommandID {
	return h.commandID
}
func (h header) Status() Status {
	return h.status
}
func (h header) Sequence() uint32 {
	return h.sequence
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface, validating
// command_length against the package-level DefaultMaxPDUSize. Callers that
// need a configurable ceiling should use UnmarshalBinaryWithLimit instead.
func (h *header) UnmarshalBinary(body []byte) error {
	return h.UnmarshalBinaryWithLimit(body, DefaultMaxPDUSize)
}

// UnmarshalBinaryWithLimit decodes the header and validates that
// command_length falls within [HeaderSize, maxSize].
func (h *header) UnmarshalBinaryWithLimit(body []byte, maxSize uint32) error {
	if len(body) < HeaderSize {
		return fmt.Errorf("smpp/pdu: short header: %d bytes", len(body))
	}
	length := binary.BigEndian.Uint32(body[:4])
	if length < HeaderSize || length > maxSize {
		return &InvalidPduLengthError{Length: length, Min: HeaderSize, Max: maxSize}
	}
	h.length = length
	h.commandID = CommandID(binary.BigEndian.Uint32(body[4:8]))
	h.status = Status(binary.BigEndian.Uint32(body[8:12]))
	h.sequence = binary.BigEndian.Uint32(body[12:16])
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (h header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[:4], h.length)
	binary.BigEndian.PutUint32(buf[4:8], uint32(h.commandID))
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.status))
	binary.BigEndian.PutUint32(buf[12:16], h.sequence)
	return buf, nil
}

// InvalidPduLengthError reports a command_length outside [Min, Max]. It is
// fatal to the connection: the byte stream can no longer be trusted to be
// frame-aligned once a header fails this check.
type InvalidPduLengthError struct {
	Length uint32
	Min    uint32
	Max    uint32
}

func (e *InvalidPduLengthError) Error() string {
	return fmt.Sprintf("smpp/pdu: invalid pdu length %d, want [%d, %d]", e.Length, e.Min, e.Max)
}
