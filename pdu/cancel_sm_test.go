package pdu

import "testing"

func TestCancelSmUnmarshalBinary(t *testing.T) {
	body := append([]byte("svc"), 0)
	body = append(body, append([]byte("msg01"), 0)...)
	body = append(body, 1, 1)
	body = append(body, append([]byte("source"), 0)...)
	body = append(body, 2, 2)
	body = append(body, append([]byte("dest"), 0)...)

	p := &CancelSm{}
	if err := p.UnmarshalBinary(body); err != nil {
		t.Fatalf("UnmarshalBinary: %s", err)
	}
	if p.ServiceType != "svc" {
		t.Errorf("ServiceType = %q, want %q", p.ServiceType, "svc")
	}
	if p.MessageID != "msg01" {
		t.Errorf("MessageID = %q, want %q", p.MessageID, "msg01")
	}
	if p.SourceAddrTon != 1 || p.SourceAddrNpi != 1 || p.SourceAddr != "source" {
		t.Errorf("source addr fields = (%d, %d, %q), want (1, 1, %q)", p.SourceAddrTon, p.SourceAddrNpi, p.SourceAddr, "source")
	}
	if p.DestAddrTon != 2 || p.DestAddrNpi != 2 || p.DestinationAddr != "dest" {
		t.Errorf("dest addr fields = (%d, %d, %q), want (2, 2, %q)", p.DestAddrTon, p.DestAddrNpi, p.DestinationAddr, "dest")
	}

	out, err := p.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %s", err)
	}
	if string(out) != string(body) {
		t.Errorf("MarshalBinary round-trip mismatch:\ngot:  %x\nwant: %x", out, body)
	}
}

func TestCancelSmRespEmptyBody(t *testing.T) {
	p := CancelSmResp{}
	if err := p.UnmarshalBinary([]byte{1}); err == nil {
		t.Fatal("expected error for non-empty cancel_sm_resp body")
	}
	if err := p.UnmarshalBinary(nil); err != nil {
		t.Fatalf("unexpected error for empty body: %s", err)
	}
}
