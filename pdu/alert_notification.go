package pdu

import "fmt"

// AlertNotification is sent by an SMSC to a bound receiver/transceiver to
// signal that a mobile subscriber has become available (e.g. after being
// unreachable). It carries no response.
type AlertNotification struct {
	SourceAddrTon int
	SourceAddrNpi int
	SourceAddr    string
	EsmeAddrTon   int
	EsmeAddrNpi   int
	EsmeAddr      string
	Options       *Options
}

// CommandID implements pdu.PDU interface.
func (p AlertNotification) CommandID() CommandID {
	return AlertNotificationID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p AlertNotification) MarshalBinary() ([]byte, error) {
	out := []byte{byte(p.SourceAddrTon), byte(p.SourceAddrNpi)}
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.EsmeAddrTon), byte(p.EsmeAddrNpi))
	out = append(out, append([]byte(p.EsmeAddr), 0)...)
	if p.Options == nil {
		return out, nil
	}
	opts, err := p.Options.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, opts...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *AlertNotification) UnmarshalBinary(body []byte) error {
	buf := newBuffer(body)
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
	res, err := buf.ReadCString(65)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding source_addr %s", err)
	}
	p.SourceAddr = string(res)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding esme_addr_ton %s", err)
	}
	p.EsmeAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding esme_addr_npi %s", err)
	}
	p.EsmeAddrNpi = int(b)
	res, err = buf.ReadCString(65)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding esme_addr %s", err)
	}
	p.EsmeAddr = string(res)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// MsAvailabilityStatus is helper function for getting this option.
func (o *Options) MsAvailabilityStatus() int {
	val, ok := o.GetSingle(TagMsAvailabilityStatus)
	if !ok {
		return 0
	}
	return val
}

// SetMsAvailabilityStatus is helper function for setting this option.
func (o *Options) SetMsAvailabilityStatus(val int) *Options {
	return o.SetSingle(TagMsAvailabilityStatus, val)
}
