// Package charset transcodes SMPP short_message/message_payload bytes
// between the wire encodings named by data_coding and UTF-8.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// data_coding values known to Decode/Encode. GSM7, ASCII and UCS2 are
// transcoded; Latin1 and any value outside this set go through the
// Latin-1 passthrough in Decode/Encode.
const (
	GSM7   = 0x00
	ASCII  = 0x01
	Latin1 = 0x03
	UCS2   = 0x08
)

var ucs2 = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// Decode converts raw PDU bytes encoded per dataCoding into a UTF-8 string.
// Unrecognized data_coding values are returned unchanged as a Latin-1
// passthrough, since SMPP allows operator-specific encodings this package
// has no table for.
func Decode(dataCoding int, raw []byte) (string, error) {
	switch dataCoding {
	case GSM7, ASCII:
		return decodeGSM7(raw), nil
	case UCS2:
		dec := ucs2.NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("smpp/pdu/charset: decoding ucs-2: %w", err)
		}
		return string(out), nil
	default:
		return latin1ToUTF8(raw), nil
	}
}

// Encode converts a UTF-8 string into the wire bytes for dataCoding.
func Encode(dataCoding int, s string) ([]byte, error) {
	switch dataCoding {
	case GSM7, ASCII:
		return encodeGSM7(s), nil
	case UCS2:
		enc := ucs2.NewEncoder()
		out, err := enc.Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("smpp/pdu/charset: encoding ucs-2: %w", err)
		}
		return out, nil
	default:
		return utf8ToLatin1(s), nil
	}
}

func latin1ToUTF8(raw []byte) string {
	out := make([]rune, len(raw))
	for i, b := range raw {
		out[i] = rune(b)
	}
	return string(out)
}

func utf8ToLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}
