package charset

// gsm7Default maps GSM 03.38 default alphabet code points (0x00-0x7F) to
// their Unicode rune equivalents. Code points with no direct ASCII
// equivalent (accented letters, currency symbols, Greek capitals) are
// included explicitly; everything else falls back to its ASCII value.
var gsm7Default = [128]rune{
	0x00: '@', 0x01: '£', 0x02: '$', 0x03: '¥', 0x04: 'è', 0x05: 'é', 0x06: 'ù', 0x07: 'ì',
	0x08: 'ò', 0x09: 'Ç', 0x0A: '\n', 0x0B: 'Ø', 0x0C: 'ø', 0x0D: '\r', 0x0E: 'Å', 0x0F: 'å',
	0x10: 'Δ', 0x11: '_', 0x12: 'Φ', 0x13: 'Γ', 0x14: 'Λ', 0x15: 'Ω', 0x16: 'Π', 0x17: 'Ψ',
	0x18: 'Σ', 0x19: 'Θ', 0x1A: 'Ξ', 0x1B: 0x1B, 0x1C: 'Æ', 0x1D: 'æ', 0x1E: 'ß', 0x1F: 'É',
	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#', 0x24: '¤', 0x25: '%', 0x26: '&', 0x27: '\'',
	0x28: '(', 0x29: ')', 0x2A: '*', 0x2B: '+', 0x2C: ',', 0x2D: '-', 0x2E: '.', 0x2F: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3', 0x34: '4', 0x35: '5', 0x36: '6', 0x37: '7',
	0x38: '8', 0x39: '9', 0x3A: ':', 0x3B: ';', 0x3C: '<', 0x3D: '=', 0x3E: '>', 0x3F: '?',
	0x40: '¡', 0x41: 'A', 0x42: 'B', 0x43: 'C', 0x44: 'D', 0x45: 'E', 0x46: 'F', 0x47: 'G',
	0x48: 'H', 0x49: 'I', 0x4A: 'J', 0x4B: 'K', 0x4C: 'L', 0x4D: 'M', 0x4E: 'N', 0x4F: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S', 0x54: 'T', 0x55: 'U', 0x56: 'V', 0x57: 'W',
	0x58: 'X', 0x59: 'Y', 0x5A: 'Z', 0x5B: 'Ä', 0x5C: 'Ö', 0x5D: 'Ñ', 0x5E: 'Ü', 0x5F: '§',
	0x60: '¿', 0x61: 'a', 0x62: 'b', 0x63: 'c', 0x64: 'd', 0x65: 'e', 0x66: 'f', 0x67: 'g',
	0x68: 'h', 0x69: 'i', 0x6A: 'j', 0x6B: 'k', 0x6C: 'l', 0x6D: 'm', 0x6E: 'n', 0x6F: 'o',
	0x70: 'p', 0x71: 'q', 0x72: 'r', 0x73: 's', 0x74: 't', 0x75: 'u', 0x76: 'v', 0x77: 'w',
	0x78: 'x', 0x79: 'y', 0x7A: 'z', 0x7B: 'ä', 0x7C: 'ö', 0x7D: 'ñ', 0x7E: 'ü', 0x7F: 'à',
}

// gsm7Extension maps the escape-prefixed (0x1B) extension table to runes.
// Only the commonly deployed subset is populated; everything else decodes
// to the ASCII '?' fallback used by most carriers.
var gsm7Extension = map[byte]rune{
	0x0A: '\f', 0x14: '^', 0x28: '{', 0x29: '}', 0x2F: '\\',
	0x3C: '[', 0x3D: '~', 0x3E: ']', 0x40: '|', 0x65: '€',
}

var (
	gsm7Reverse          map[rune]byte
	gsm7ExtensionReverse map[rune]byte
)

func init() {
	gsm7Reverse = make(map[rune]byte, len(gsm7Default))
	for b, r := range gsm7Default {
		if b == 0x1B {
			continue
		}
		gsm7Reverse[r] = byte(b)
	}
	gsm7ExtensionReverse = make(map[rune]byte, len(gsm7Extension))
	for b, r := range gsm7Extension {
		gsm7ExtensionReverse[r] = b
	}
}

// decodeGSM7 converts GSM 03.38 default-alphabet bytes into a UTF-8 string.
func decodeGSM7(raw []byte) string {
	out := make([]rune, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b == 0x1B && i+1 < len(raw) {
			i++
			if r, ok := gsm7Extension[raw[i]]; ok {
				out = append(out, r)
				continue
			}
			out = append(out, '?')
			continue
		}
		if int(b) >= len(gsm7Default) {
			out = append(out, '?')
			continue
		}
		out = append(out, gsm7Default[b])
	}
	return string(out)
}

// encodeGSM7 converts a UTF-8 string into GSM 03.38 default-alphabet bytes.
// Runes with no representation in the default or extension table are
// encoded as '?' (0x3F).
func encodeGSM7(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := gsm7Reverse[r]; ok {
			out = append(out, b)
			continue
		}
		if b, ok := gsm7ExtensionReverse[r]; ok {
			out = append(out, 0x1B, b)
			continue
		}
		out = append(out, '?')
	}
	return out
}
