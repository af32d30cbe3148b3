package pdu

import (
	"fmt"
	"time"

	smpptime "github.com/smppcore/smpp/time"
)

// ReplaceSm replaces the short message, validity period, and delivery
// attributes of a previously submitted message identified by message_id.
type ReplaceSm struct {
	MessageID            string
	SourceAddrTon        int
	SourceAddrNpi        int
	SourceAddr           string
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	RegisteredDelivery   RegisteredDelivery
	SmDefaultMsgID       int
	ShortMessage         string
}

// CommandID implements pdu.PDU interface.
func (p ReplaceSm) CommandID() CommandID {
	return ReplaceSmID
}

// Response creates new ReplaceSmResp.
func (p ReplaceSm) Response() *ReplaceSmResp {
	return &ReplaceSmResp{}
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p ReplaceSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
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
	l := len(p.ShortMessage)
	out = append(out, p.RegisteredDelivery.Byte(), byte(p.SmDefaultMsgID), byte(l))
	if l > 0 {
		out = append(out, []byte(p.ShortMessage)...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p *ReplaceSm) UnmarshalBinary(body []byte) error {
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
		return fmt.Errorf("smpp/pdu: decoding registered_delivery %s", err)
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding sm_default_msg_id %s", err)
	}
	p.SmDefaultMsgID = int(b)
	sm, err := buf.ReadString(254)
	if err != nil {
		return fmt.Errorf("smpp/pdu: decoding short_message %s", err)
	}
	p.ShortMessage = string(sm)
	return nil
}

// ReplaceSmResp is header-only: success is implied by command_status OK.
type ReplaceSmResp struct{}

// CommandID implements pdu.PDU interface.
func (p ReplaceSmResp) CommandID() CommandID {
	return ReplaceSmRespID
}

// MarshalBinary implements encoding.BinaryMarshaler interface.
func (p ReplaceSmResp) MarshalBinary() ([]byte, error) {
	return encodeEmptyBody()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler interface.
func (p ReplaceSmResp) UnmarshalBinary(body []byte) error {
	return decodeEmptyBody("replace_sm_resp", body)
}
