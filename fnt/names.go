package fnt

import "fmt"

var charNames [NumGlyphs]string

func init() {
	for i := range charNames {
		switch {
		case i < ' ':
			charNames[i] = fmt.Sprintf("H-%02X", i)
		case i < 0x7f:
			charNames[i] = string([]byte{byte(i)})
		default:
			// Raw byte, the offsets text is ISO 8859-1
			charNames[i] = fmt.Sprintf("H-%02X (%s)", i, []byte{byte(i)})
		}
	}

	charNames[0x00] = "H-00 NULL"
	charNames[0x07] = "H-07 BELL"
	charNames[0x08] = "H-08 BACKSPACE"
	charNames[0x09] = "H-09 TAB"
	charNames[0x0a] = "H-0A LINE FEED"
	charNames[0x0b] = "H-0B VERTICAL TAB"
	charNames[0x0c] = "H-0C FORM FEED"
	charNames[0x0d] = "H-0D CARRIAGE RETURN"
	charNames[0x1b] = "H-1B ESCAPE"
	charNames[0x20] = "SPACE"
	charNames[0xa0] = "H-A0 NBSP"
}

// CharName returns a description of character c as used in the offsets text.
// Printable ASCII characters describe themselves.
func CharName(c byte) string {
	return charNames[c]
}
