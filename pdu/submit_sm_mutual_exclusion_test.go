package pdu

import "testing"

func buildSubmitSmBodyWithPayload(t *testing.T, shortMessage string) []byte {
	t.Helper()
	body := append([]byte("svc"), 0)
	body = append(body, 1, 1)
	body = append(body, append([]byte("source"), 0)...)
	body = append(body, 2, 2)
	body = append(body, append([]byte("dest"), 0)...)
	body = append(body, 0)          // esm_class
	body = append(body, 0)          // protocol_id
	body = append(body, 0)          // priority_flag
	body = append(body, 0)          // schedule_delivery_time
	body = append(body, 0)          // validity_period
	body = append(body, 0, 0, 0, 0) // registered_delivery, replace_if_present_flag, data_coding, sm_default_msg_id
	body = append(body, byte(len(shortMessage)))
	body = append(body, []byte(shortMessage)...)

	opts := NewOptions().SetMessagePayload("payload body")
	b, err := opts.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary opts: %s", err)
	}
	return append(body, b...)
}

func TestSubmitSmRejectsPayloadAndShortMessageTogether(t *testing.T) {
	body := buildSubmitSmBodyWithPayload(t, "hello")
	p := &SubmitSm{}
	err := p.UnmarshalBinary(body)
	if _, ok := err.(*ProtocolViolationError); !ok {
		t.Fatalf("expected *ProtocolViolationError, got %T (%v)", err, err)
	}
}

func TestSubmitSmAllowsPayloadAloneWithoutShortMessage(t *testing.T) {
	body := buildSubmitSmBodyWithPayload(t, "")
	p := &SubmitSm{}
	if err := p.UnmarshalBinary(body); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := p.Options.MessagePayload(); got != "payload body" {
		t.Errorf("MessagePayload() = %q, want %q", got, "payload body")
	}
}

func TestDeliverSmRejectsPayloadAndShortMessageTogether(t *testing.T) {
	body := buildSubmitSmBodyWithPayload(t, "hello")
	p := &DeliverSm{}
	err := p.UnmarshalBinary(body)
	if _, ok := err.(*ProtocolViolationError); !ok {
		t.Fatalf("expected *ProtocolViolationError, got %T (%v)", err, err)
	}
}
