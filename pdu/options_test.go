package pdu

import "testing"

func TestOptionsUnmarshalTruncatedHeader(t *testing.T) {
	buf := []byte{0x02, 0x0C, 0x00} // 3 bytes, not enough for a tag/length header
	o := NewOptions()
	err := o.UnmarshalBinary(buf)
	if _, ok := err.(*TruncatedTlvError); !ok {
		t.Fatalf("expected *TruncatedTlvError, got %T (%v)", err, err)
	}
}

func TestOptionsUnmarshalDeclaredLengthExceedsBuffer(t *testing.T) {
	// tag sar_msg_ref_num (0x020C), declared length 4, only 1 byte follows.
	buf := []byte{0x02, 0x0C, 0x00, 0x04, 0xFF}
	o := NewOptions()
	err := o.UnmarshalBinary(buf)
	if _, ok := err.(*TruncatedTlvError); !ok {
		t.Fatalf("expected *TruncatedTlvError, got %T (%v)", err, err)
	}
}

func TestOptionsUnmarshalDuplicateTag(t *testing.T) {
	// tag sar_msg_ref_num (0x020C), length 2, twice.
	buf := []byte{0x02, 0x0C, 0x00, 0x02, 0x00, 0x01, 0x02, 0x0C, 0x00, 0x02, 0x00, 0x02}
	o := NewOptions()
	err := o.UnmarshalBinary(buf)
	if _, ok := err.(*ProtocolViolationError); !ok {
		t.Fatalf("expected *ProtocolViolationError, got %T (%v)", err, err)
	}
}

func TestOptionsSetGetRoundTrip(t *testing.T) {
	o := NewOptions().SetSarMsgRefNum(7).SetMessagePayload("hello")
	if v := o.SarMsgRefNum(); v != 7 {
		t.Errorf("SarMsgRefNum() = %d, want 7", v)
	}
	if v := o.MessagePayload(); v != "hello" {
		t.Errorf("MessagePayload() = %q, want %q", v, "hello")
	}
	b, err := o.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %s", err)
	}
	o2 := NewOptions()
	if err := o2.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %s", err)
	}
	if v := o2.SarMsgRefNum(); v != 7 {
		t.Errorf("round-tripped SarMsgRefNum() = %d, want 7", v)
	}
	if v := o2.MessagePayload(); v != "hello" {
		t.Errorf("round-tripped MessagePayload() = %q, want %q", v, "hello")
	}
}
