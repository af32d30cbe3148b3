package charset

import "testing"

func TestDecodeEncodeGSM7(t *testing.T) {
	tt := []struct {
		desc string
		raw  []byte
		str  string
	}{
		{"plain ascii", []byte("hello"), "hello"},
		{"accented letters", []byte{0x04, 0x05, 0x06}, "èéù"},
		{"euro sign via extension table", []byte{0x1B, 0x65}, "€"},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := Decode(GSM7, tc.raw)
			if err != nil {
				t.Fatalf("Decode: %s", err)
			}
			if got != tc.str {
				t.Fatalf("Decode: got %q want %q", got, tc.str)
			}
			back, err := Encode(GSM7, tc.str)
			if err != nil {
				t.Fatalf("Encode: %s", err)
			}
			if string(back) != string(tc.raw) {
				t.Fatalf("Encode: got %x want %x", back, tc.raw)
			}
		})
	}
}

func TestDecodeEncodeUCS2(t *testing.T) {
	raw := []byte{0x00, 0x68, 0x00, 0x69} // "hi" as UTF-16BE
	got, err := Decode(UCS2, raw)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if got != "hi" {
		t.Fatalf("Decode: got %q want %q", got, "hi")
	}
	back, err := Encode(UCS2, "hi")
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if string(back) != string(raw) {
		t.Fatalf("Encode: got %x want %x", back, raw)
	}
}

func TestDecodeUnknownDataCodingPassthrough(t *testing.T) {
	raw := []byte{0x41, 0x42, 0xE9}
	got, err := Decode(0x04, raw)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	back, err := Encode(0x04, got)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if string(back) != string(raw) {
		t.Fatalf("round-trip mismatch: got %x want %x", back, raw)
	}
}
