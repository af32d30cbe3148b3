package pdu

import "testing"

func buildBroadcastSmBody(t *testing.T, opts []byte) []byte {
	t.Helper()
	body := append([]byte("svc"), 0)
	body = append(body, 1, 1)
	body = append(body, append([]byte("source"), 0)...)
	body = append(body, append([]byte("msg01"), 0)...)
	body = append(body, 0)    // priority_flag
	body = append(body, 0)    // schedule_delivery_time (empty c-string)
	body = append(body, 0)    // validity_period (empty c-string)
	body = append(body, 0, 0) // replace_if_present_flag, data_coding
	body = append(body, 0)    // sm_default_msg_id
	return append(body, opts...)
}

func TestBroadcastSmRequiresAreaIdentifier(t *testing.T) {
	p := &BroadcastSm{}
	err := p.UnmarshalBinary(buildBroadcastSmBody(t, nil))
	if _, ok := err.(*FieldValidationError); !ok {
		t.Fatalf("expected *FieldValidationError for missing broadcast_area_identifier, got %T (%v)", err, err)
	}
}

func TestBroadcastSmRequiresAreaIdentifierTag(t *testing.T) {
	// present TLV block, but not the required tag.
	opts := NewOptions().SetSarMsgRefNum(1)
	b, err := opts.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary opts: %s", err)
	}
	p := &BroadcastSm{}
	err = p.UnmarshalBinary(buildBroadcastSmBody(t, b))
	if _, ok := err.(*FieldValidationError); !ok {
		t.Fatalf("expected *FieldValidationError for missing broadcast_area_identifier tag, got %T (%v)", err, err)
	}
}

func TestBroadcastSmWithAreaIdentifier(t *testing.T) {
	opts := NewOptions().Set(TagBroadcastAreaIdentifier, []byte{0x00, 'a', 'r', 'e', 'a', '1'})
	b, err := opts.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary opts: %s", err)
	}
	p := &BroadcastSm{}
	if err := p.UnmarshalBinary(buildBroadcastSmBody(t, b)); err != nil {
		t.Fatalf("UnmarshalBinary: %s", err)
	}
	if p.ServiceType != "svc" || p.SourceAddr != "source" || p.MessageID != "msg01" {
		t.Errorf("unexpected fields: %+v", p)
	}
	if _, ok := p.Options.Get(TagBroadcastAreaIdentifier); !ok {
		t.Error("expected broadcast_area_identifier to survive into Options")
	}
}

func TestBroadcastSmInvalidPriorityFlag(t *testing.T) {
	body := append([]byte("svc"), 0)
	body = append(body, 1, 1)
	body = append(body, append([]byte("source"), 0)...)
	body = append(body, append([]byte("msg01"), 0)...)
	body = append(body, 9) // priority_flag out of [0,3]
	p := &BroadcastSm{}
	err := p.UnmarshalBinary(body)
	if _, ok := err.(*FieldValidationError); !ok {
		t.Fatalf("expected *FieldValidationError for invalid priority_flag, got %T (%v)", err, err)
	}
}

func TestQueryBroadcastSmRespMessageStateRoundTrip(t *testing.T) {
	p := QueryBroadcastSmResp{MessageID: "msg01", MessageState: 2}
	b, err := p.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %s", err)
	}
	var out QueryBroadcastSmResp
	if err := out.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %s", err)
	}
	if out.MessageID != "msg01" {
		t.Errorf("MessageID = %q, want %q", out.MessageID, "msg01")
	}
	if out.MessageState != 2 {
		t.Errorf("MessageState = %d, want 2", out.MessageState)
	}
}

func TestCancelBroadcastSmRespEmptyBody(t *testing.T) {
	p := CancelBroadcastSmResp{}
	if err := p.UnmarshalBinary([]byte{1}); err == nil {
		t.Fatal("expected error for non-empty cancel_broadcast_sm_resp body")
	}
}
