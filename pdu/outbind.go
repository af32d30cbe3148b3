package pdu

import "fmt"

// Outbind is sent unsolicited by an SMSC over a new connection to invite an
// ESME to bind back as a receiver or transceiver. It carries no response.
type Outbind struct {
	SystemID string
	Password string
}

// CommandID implements pdu.PDU interface.
func (p Outbind) CommandID() CommandID {
	return OutbindID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p Outbind) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.SystemID), 0)
	out = append(out, append([]byte(p.Password), 0)...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *Outbind) UnmarshalBinary(body []byte) error {
	buf := newBuffer(body)
	res, err := buf.ReadCString(16)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding system_id %s", err)
	}
	p.SystemID = string(res)
	res, err = buf.ReadCString(9)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding password %s", err)
	}
	p.Password = string(res)
	return nil
}
