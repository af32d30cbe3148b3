package pdu

import (
	"fmt"

	"github.com/smppcore/smpp/pdu/charset"
)

// DataSm carries an application-defined short message via the
// message_payload optional parameter rather than the fixed-length
// short_message field submit_sm uses, making it the preferred command for
// interactive/data-session traffic.
type DataSm struct {
	ServiceType        string
	SourceAddrTon      int
	SourceAddrNpi      int
	SourceAddr         string
	DestAddrTon        int
	DestAddrNpi        int
	DestinationAddr    string
	EsmClass           EsmClass
	RegisteredDelivery RegisteredDelivery
	DataCoding         int
	Options            *Options
}

// CommandID implements pdu.PDU interface.
func (p DataSm) CommandID() CommandID {
	return DataSmID
}

// Response creates new DataSmResp.
func (p DataSm) Response(msgID string) *DataSmResp {
	return &DataSmResp{
		MessageID: msgID,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p DataSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.DestAddrTon), byte(p.DestAddrNpi))
	out = append(out, append([]byte(p.DestinationAddr), 0)...)
	out = append(out, p.EsmClass.Byte(), p.RegisteredDelivery.Byte(), byte(p.DataCoding))
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
func (p *DataSm) UnmarshalBinary(body []byte) error {
	buf := newBuffer(body)
	res, err := buf.ReadCString(6)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding service_type %s", err)
	}
	p.ServiceType = string(res)
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
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding esm_class %s", err)
	}
	p.EsmClass = ParseEsmClass(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding registered_delivery %s", err)
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding data_coding %s", err)
	}
	p.DataCoding = int(b)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// ShortMessageText decodes the message_payload optional parameter per
// DataCoding into a UTF-8 string. data_sm has no short_message field, so
// the message body always travels as message_payload.
func (p DataSm) ShortMessageText() (string, error) {
	var raw []byte
	if p.Options != nil {
		raw, _ = p.Options.Get(TagMessagePayload)
	}
	return charset.Decode(p.DataCoding, raw)
}

// SetShortMessageText encodes s per DataCoding into the message_payload
// optional parameter.
func (p *DataSm) SetShortMessageText(s string) error {
	raw, err := charset.Encode(p.DataCoding, s)
	if err != nil {
		return err
	}
	if p.Options == nil {
		p.Options = NewOptions()
	}
	p.Options.Set(TagMessagePayload, raw)
	return nil
}

// DataSmResp holds response to data_sm PDU.
type DataSmResp struct {
	MessageID string
	Options   *Options
}

// CommandID implements pdu.PDU interface.
func (p DataSmResp) CommandID() CommandID {
	return DataSmRespID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p DataSmResp) MarshalBinary() ([]byte, error) {
	return cStringOptsRespMarshal(p.MessageID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *DataSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsRespUnmarshal(body)
	return err
}
