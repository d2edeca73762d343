package fnt

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const offsetsLines = gridSize + 1

var errMalformedCell = errors.New("is malformed")

// Offsets holds the font data that has no place in the image form: the five
// opaque header bytes and the spacing before and after every glyph. It
// implements the encoding.TextMarshaler and encoding.TextUnmarshaler
// interfaces.
//
// The text form has 17 lines. The first holds the header bytes in decimal
// separated by spaces. Each of the other 16 lines holds one row of the glyph
// grid as 16 tab separated cells, each cell being the space before and the
// space after the glyph separated by a single space, followed by a space and
// a description of the character which is ignored when parsing.
type Offsets struct {
	header [headerBytes]byte
	before [NumGlyphs]int
	after  [NumGlyphs]int
}

// NewOffsets returns the offsets for the given header bytes and spacing.
func NewOffsets(header [headerBytes]byte, before, after [NumGlyphs]int) *Offsets {
	return &Offsets{
		header: header,
		before: before,
		after:  after,
	}
}

// Header returns header byte i. It panics if i is outside [0, 5).
func (o *Offsets) Header(i int) byte {
	return o.header[i]
}

// HeaderBytes returns all five header bytes.
func (o *Offsets) HeaderBytes() [headerBytes]byte {
	return o.header
}

// Before returns the space before the glyph for character c. It panics if c
// is outside [0, 256).
func (o *Offsets) Before(c int) int {
	return o.before[c]
}

// After returns the space after the glyph for character c. It panics if c is
// outside [0, 256).
func (o *Offsets) After(c int) int {
	return o.after[c]
}

// splitLine behaves like strings.Split but drops trailing empty fields.
func splitLine(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// ParseOffsets parses the text form of the offsets. Carriage returns are
// ignored.
func ParseOffsets(text []byte) (*Offsets, error) {
	o := new(Offsets)
	if err := o.UnmarshalText(text); err != nil {
		return nil, err
	}
	return o, nil
}

// UnmarshalText parses the text form of the offsets.
func (o *Offsets) UnmarshalText(text []byte) error {
	lines := splitLine(strings.ReplaceAll(string(text), "\r", ""), "\n")
	if len(lines) != offsetsLines {
		return &OffsetsError{
			Message: fmt.Sprintf("expected %d lines, found %d", offsetsLines, len(lines)),
		}
	}

	var n Offsets

	fields := splitLine(lines[0], " ")
	if len(fields) != headerBytes {
		return &OffsetsError{
			Message: fmt.Sprintf("the header must have %d values", headerBytes),
			Line:    1,
		}
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 0xff {
			return &OffsetsError{
				Message: "the header values must be between 0 and 255",
				Line:    1,
			}
		}
		n.header[i] = byte(v)
	}

	for i := 0; i < gridSize; i++ {
		cells := splitLine(lines[i+1], "\t")
		if len(cells) != gridSize {
			return &OffsetsError{
				Message: fmt.Sprintf("expected %d columns, found %d", gridSize, len(cells)),
				Line:    i + 2,
			}
		}
		for j, cell := range cells {
			c := i*gridSize + j
			before, after, err := parseCell(cell)
			if err != nil {
				return &OffsetsError{
					Message: fmt.Sprintf("character #%d %s", c, err),
					Line:    i + 2,
				}
			}
			n.before[c], n.after[c] = before, after
		}
	}

	*o = n
	return nil
}

func parseCell(cell string) (int, int, error) {
	i := strings.IndexByte(cell, ' ')
	if i < 0 {
		return 0, 0, errMalformedCell
	}
	j := strings.IndexByte(cell[i+1:], ' ')
	if j < 0 {
		return 0, 0, errMalformedCell
	}
	j += i + 1

	before, err := strconv.ParseInt(cell[:i], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("has an unreadable space before %q", cell[:i])
	}
	after, err := strconv.ParseInt(cell[i+1:j], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("has an unreadable space after %q", cell[i+1:j])
	}
	return int(before), int(after), nil
}

// MarshalText returns the text form of the offsets. Character descriptions
// for bytes above 127 are written as the raw byte, so the text is ISO 8859-1.
func (o *Offsets) MarshalText() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(4096)

	for i, v := range o.header {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte('\n')

	for i := 0; i < gridSize; i++ {
		if i != 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < gridSize; j++ {
			if j != 0 {
				b.WriteByte('\t')
			}
			c := i*gridSize + j
			fmt.Fprintf(b, "%d %d %s", o.before[c], o.after[c], CharName(byte(c)))
		}
	}

	return b.Bytes(), nil
}

func (o *Offsets) String() string {
	b, _ := o.MarshalText()
	return string(b)
}
