package pdu

import "testing"

func TestDecodeEmptyBodyRejectsExtraBytes(t *testing.T) {
	if err := decodeEmptyBody("enquire_link", []byte{0x00}); err == nil {
		t.Fatal("expected error for non-empty header-only body")
	}
	if err := decodeEmptyBody("enquire_link", nil); err != nil {
		t.Fatalf("unexpected error for empty body: %s", err)
	}
}

func TestHeaderOnlyPDUsRoundTrip(t *testing.T) {
	types := []PDU{
		&Unbind{}, &UnbindResp{}, &EnquireLink{}, &EnquireLinkResp{}, &GenericNack{},
	}
	for _, p := range types {
		b, err := p.MarshalBinary()
		if err != nil {
			t.Fatalf("%T MarshalBinary: %s", p, err)
		}
		if len(b) != 0 {
			t.Errorf("%T MarshalBinary() = %x, want empty", p, b)
		}
		if err := p.UnmarshalBinary(nil); err != nil {
			t.Fatalf("%T UnmarshalBinary(nil): %s", p, err)
		}
		if err := p.UnmarshalBinary([]byte{0x01}); err == nil {
			t.Errorf("%T UnmarshalBinary: expected error for stray body byte", p)
		}
	}
}
