package pdu

import (
	"fmt"
	"time"

	smpptime "github.com/smppcore/smpp/time"
)

// BroadcastSm submits a message for broadcast distribution across one or
// more broadcast areas. Introduced in SMPP v5.0; sessions must reject it
// unless the negotiated interface_version is 0x50 or later.
type BroadcastSm struct {
	ServiceType          string
	SourceAddrTon        int
	SourceAddrNpi        int
	SourceAddr           string
	MessageID            string
	PriorityFlag         int
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	ReplaceIfPresentFlag int
	DataCoding           int
	SmDefaultMsgID       int
	Options              *Options
}

// CommandID implements pdu.PDU interface.
func (p BroadcastSm) CommandID() CommandID {
	return BroadcastSmID
}

// Response creates new BroadcastSmResp.
func (p BroadcastSm) Response(msgID string) *BroadcastSmResp {
	return &BroadcastSmResp{
		MessageID: msgID,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p BroadcastSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, append([]byte(p.MessageID), 0)...)
	out = append(out, byte(p.PriorityFlag))
	tm, err := writeTime(smpptime.Absolute, p.ScheduleDeliveryTime)
	if err != nil {
		return nil, err
	}
	out = append(out, tm...)
	tm, err = writeTime(smpptime.Absolute, p.ValidityPeriod)
	if err != nil {
		return nil, err
	}
	out = append(out, tm...)
	out = append(out, byte(p.ReplaceIfPresentFlag), byte(p.DataCoding), byte(p.SmDefaultMsgID))
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
func (p *BroadcastSm) UnmarshalBinary(body []byte) error {
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
	res, err = buf.ReadCString(65)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding message_id %s", err)
	}
	p.MessageID = string(res)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding priority_flag %s", err)
	}
	if err := ValidatePriorityFlag(int(b)); err != nil {
		return err
	}
	p.PriorityFlag = int(b)
	res, err = buf.ReadCString(17)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding schedule_delivery_time %s", err)
	}
	t, err := smpptime.Parse(res)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding schedule_delivery_time %s", err)
	}
	p.ScheduleDeliveryTime = t
	res, err = buf.ReadCString(17)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding validity_period %s", err)
	}
	t, err = smpptime.Parse(res)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding validity_period %s", err)
	}
	p.ValidityPeriod = t
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding replace_if_present_flag %s", err)
	}
	p.ReplaceIfPresentFlag = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding data_coding %s", err)
	}
	p.DataCoding = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding sm_default_msg_id %s", err)
	}
	p.SmDefaultMsgID = int(b)
	if buf.Len() == 0 {
		return &FieldValidationError{Field: BroadcastAreaIdentFld, Reason: "missing required broadcast_area_identifier tlv"}
	}
	p.Options = NewOptions()
	if err := p.Options.UnmarshalBinary(buf.Bytes()); err != nil {
		return err
	}
	if _, ok := p.Options.Get(TagBroadcastAreaIdentifier); !ok {
		return &FieldValidationError{Field: BroadcastAreaIdentFld, Reason: "missing required broadcast_area_identifier tlv"}
	}
	return nil
}

// BroadcastSmResp holds the response to broadcast_sm.
type BroadcastSmResp struct {
	MessageID string
	Options   *Options
}

// CommandID implements pdu.PDU interface.
func (p BroadcastSmResp) CommandID() CommandID {
	return BroadcastSmRespID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p BroadcastSmResp) MarshalBinary() ([]byte, error) {
	return cStringOptsRespMarshal(p.MessageID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *BroadcastSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsRespUnmarshal(body)
	return err
}

// QueryBroadcastSm queries the state of a previously submitted broadcast.
type QueryBroadcastSm struct {
	MessageID     string
	SourceAddrTon int
	SourceAddrNpi int
	SourceAddr    string
}

// CommandID implements pdu.PDU interface.
func (p QueryBroadcastSm) CommandID() CommandID {
	return QueryBroadcastSmID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p QueryBroadcastSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *QueryBroadcastSm) UnmarshalBinary(body []byte) error {
	buf := newBuffer(body)
	res, err := buf.ReadCString(65)
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
	return nil
}

// QueryBroadcastSmResp holds the response to query_broadcast_sm.
// MessageState travels in the message_state TLV. Options holds one value
// per tag, so a response that repeats the
// broadcast_area_identifier/broadcast_area_success pair for several areas
// fails to decode with a *ProtocolViolationError.
type QueryBroadcastSmResp struct {
	MessageID    string
	MessageState int
	Options      *Options
}

// CommandID implements pdu.PDU interface.
func (p QueryBroadcastSmResp) CommandID() CommandID {
	return QueryBroadcastSmRespID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p QueryBroadcastSmResp) MarshalBinary() ([]byte, error) {
	opts := p.Options
	if opts == nil {
		opts = NewOptions()
	}
	opts.SetSingle(TagMessageState, p.MessageState)
	return cStringOptsRespMarshal(p.MessageID, opts)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *QueryBroadcastSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsRespUnmarshal(body)
	if err != nil {
		return err
	}
	if p.Options != nil {
		p.MessageState, _ = p.Options.GetSingle(TagMessageState)
	}
	return nil
}

// CancelBroadcastSm cancels a previously submitted broadcast identified by
// message_id.
type CancelBroadcastSm struct {
	ServiceType   string
	MessageID     string
	SourceAddrTon int
	SourceAddrNpi int
	SourceAddr    string
	Options       *Options
}

// CommandID implements pdu.PDU interface.
func (p CancelBroadcastSm) CommandID() CommandID {
	return CancelBroadcastSmID
}

// Response creates new CancelBroadcastSmResp.
func (p CancelBroadcastSm) Response() *CancelBroadcastSmResp {
	return &CancelBroadcastSmResp{}
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p CancelBroadcastSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, append([]byte(p.MessageID), 0)...)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
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
func (p *CancelBroadcastSm) UnmarshalBinary(body []byte) error {
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
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// CancelBroadcastSmResp is header-only: success is implied by command_status OK.
type CancelBroadcastSmResp struct{}

// CommandID implements pdu.PDU interface.
func (p CancelBroadcastSmResp) CommandID() CommandID {
	return CancelBroadcastSmRespID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p CancelBroadcastSmResp) MarshalBinary() ([]byte, error) {
	return encodeEmptyBody()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p CancelBroadcastSmResp) UnmarshalBinary(body []byte) error {
	return decodeEmptyBody("cancel_broadcast_sm_resp", body)
}
