package pdu

import "fmt"

// CancelSm cancels a previously submitted short message identified either by
// message_id or by the originating source/destination address pair.
type CancelSm struct {
	ServiceType     string
	MessageID       string
	SourceAddrTon   int
	SourceAddrNpi   int
	SourceAddr      string
	DestAddrTon     int
	DestAddrNpi     int
	DestinationAddr string
}

// CommandID implements pdu.PDU interface.
func (p CancelSm) CommandID() CommandID {
	return CancelSmID
}

// Response creates new CancelSmResp.
func (p CancelSm) Response() *CancelSmResp {
	return &CancelSmResp{}
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p CancelSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, append([]byte(p.MessageID), 0)...)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.DestAddrTon), byte(p.DestAddrNpi))
	out = append(out, append([]byte(p.DestinationAddr), 0)...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *CancelSm) UnmarshalBinary(body []byte) error {
	buf := newBuffer(body)
	res, err := buf.ReadCString(6)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding service_type %s", err)
	}
	p.ServiceType = string(res)
	res, err = buf.ReadCString(65)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding message_id %s", err)
	}
	p.MessageID = string(res)
	b, err := buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding source_addr_ton %s", err)
	}
	p.SourceAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding source_addr_npi %s", err)
	}
	p.SourceAddrNpi = int(b)
	res, err = buf.ReadCString(21)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding source_addr %s", err)
	}
	p.SourceAddr = string(res)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding dest_addr_ton %s", err)
	}
	p.DestAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding dest_addr_npi %s", err)
	}
	p.DestAddrNpi = int(b)
	res, err = buf.ReadCString(21)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding destination_addr %s", err)
	}
	p.DestinationAddr = string(res)
	return nil
}

// CancelSmResp is header-only: success is implied by command_status OK.
type CancelSmResp struct{}

// CommandID implements pdu.PDU interface.
func (p CancelSmResp) CommandID() CommandID {
	return CancelSmRespID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p CancelSmResp) MarshalBinary() ([]byte, error) {
	return encodeEmptyBody()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p CancelSmResp) UnmarshalBinary(body []byte) error {
	return decodeEmptyBody("cancel_sm_resp", body)
}
