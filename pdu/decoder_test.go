package pdu

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func encodeHeader(length uint32, commandID CommandID, status Status, seq uint32) []byte {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(b[0:4], length)
	binary.BigEndian.PutUint32(b[4:8], uint32(commandID))
	binary.BigEndian.PutUint32(b[8:12], uint32(status))
	binary.BigEndian.PutUint32(b[12:16], seq)
	return b
}

func TestNewPDUUnrecognizedCommandIDReturnsUnknown(t *testing.T) {
	const reserved CommandID = SubmitMultiID
	p := NewPDU(reserved)
	unk, ok := p.(*Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", p)
	}
	if unk.CommandID() != reserved {
		t.Errorf("CommandID() = %v, want %v", unk.CommandID(), reserved)
	}
}

func TestDecoderDecodesUnknownCommandBody(t *testing.T) {
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	header := encodeHeader(HeaderSize+uint32(len(body)), SubmitMultiID, StatusOK, 1)
	r := bytes.NewReader(append(header, body...))
	d := NewDecoder(r)
	_, p, err := d.Decode()
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	unk, ok := p.(*Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", p)
	}
	if !bytes.Equal(unk.Body, body) {
		t.Errorf("Body = %x, want %x", unk.Body, body)
	}
}

func TestDecoderRejectsOversizedPDU(t *testing.T) {
	header := encodeHeader(100, EnquireLinkID, StatusOK, 1)
	r := bytes.NewReader(header)
	d := NewDecoder(r, WithMaxPDUSize(50))
	_, _, err := d.Decode()
	if err == nil {
		t.Fatal("expected error for command_length exceeding the configured max")
	}
}

func TestDecoderTruncatedBody(t *testing.T) {
	header := encodeHeader(HeaderSize+4, SubmitSmID, StatusOK, 1)
	r := bytes.NewReader(append(header, 0x01, 0x02)) // only 2 of the 4 declared body bytes
	d := NewDecoder(r)
	_, _, err := d.Decode()
	if _, ok := err.(*TruncatedBodyError); !ok {
		t.Fatalf("expected *TruncatedBodyError, got %T (%v)", err, err)
	}
}
