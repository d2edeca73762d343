package fnt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

type decoder struct {
	r   io.Reader
	pos int64

	header  [headerBytes]byte
	height  int
	before  [NumGlyphs]int
	width   [NumGlyphs]int
	after   [NumGlyphs]int
	offsets [NumGlyphs]int64
	glyphs  [NumGlyphs]*Glyph

	// Enough to hold the attribute table, the largest fixed size section
	tmp [attributeBytes]byte
}

func (d *decoder) errorf(pos int64, format string, a ...interface{}) error {
	return &InputError{
		Message: fmt.Sprintf(format, a...),
		Offset:  pos,
	}
}

func (d *decoder) readFull(b []byte) error {
	n, err := io.ReadFull(d.r, b)
	d.pos += int64(n)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return d.errorf(d.pos, "premature end of stream")
	default:
		return err
	}
}

func int32At(b []byte, i int) int {
	return int(int32(binary.LittleEndian.Uint32(b[i*intSize:])))
}

func (d *decoder) readHeader() error {
	if err := d.readFull(d.tmp[:attributeOffset]); err != nil {
		return err
	}

	copy(d.header[:], d.tmp[:headerBytes])

	d.height = int32At(d.tmp[heightOffset:], 0)
	if d.height < 0 {
		return d.errorf(heightOffset, "negative glyph height %d", d.height)
	}

	for i := reservedOffset; i < attributeOffset; i++ {
		if b := d.tmp[i]; b != 0 {
			return d.errorf(int64(i), "bad stream header, byte is %d", b)
		}
	}
	return nil
}

func (d *decoder) readAttributes() error {
	if err := d.readFull(d.tmp[:attributeBytes]); err != nil {
		return err
	}

	for i := 0; i < NumGlyphs; i++ {
		d.before[i] = int32At(d.tmp[:], i*attributeCount)
		d.width[i] = int32At(d.tmp[:], i*attributeCount+1)
		d.after[i] = int32At(d.tmp[:], i*attributeCount+2)

		pos := int64(attributeOffset + (i*attributeCount+1)*intSize)
		switch {
		case d.width[i] < 0:
			return d.errorf(pos, "glyph %d has negative width %d", i, d.width[i])
		case d.width[i] > 0 && d.height == 0:
			return d.errorf(pos, "glyph %d has width %d but the glyph height is zero", i, d.width[i])
		}
	}
	return nil
}

func (d *decoder) readOffsets() error {
	if err := d.readFull(d.tmp[:offsetsBytes]); err != nil {
		return err
	}

	for i := 0; i < NumGlyphs; i++ {
		d.offsets[i] = int64(int32At(d.tmp[:], i))
	}
	return nil
}

func (d *decoder) readGlyphs() error {
	var (
		current int64
		buf     bytes.Buffer
	)
	for i := 0; i < NumGlyphs; i++ {
		if d.offsets[i] != current {
			return d.errorf(int64(offsetsOffset+i*intSize), "bad offset data for glyph %d", i)
		}

		// Copy rather than allocate up front, the size comes from the
		// stream and may be bogus
		size := int64(d.width[i]) * int64(d.height)
		buf.Reset()
		n, err := io.CopyN(&buf, d.r, size)
		d.pos += n
		if err != nil {
			if err == io.EOF {
				return d.errorf(d.pos, "premature end of stream")
			}
			return err
		}

		pix := make([]int8, size)
		for j, b := range buf.Bytes() {
			v := int8(b)
			if v < -1 || v > 1 {
				return d.errorf(pixelOffset+current+int64(j), "glyph %d has invalid pixel value %d", i, v)
			}
			pix[j] = v
		}

		d.glyphs[i] = NewGlyph(pix, d.width[i], d.before[i], d.after[i])
		current += size
	}
	return nil
}

func (d *decoder) readTrailer() error {
	n, err := io.ReadFull(d.r, d.tmp[:1])
	switch {
	case n != 0:
		return d.errorf(d.pos, "unexpected data beyond the end of the font")
	case err == io.EOF:
		return nil
	default:
		return err
	}
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		return err
	}

	if err := d.readAttributes(); err != nil {
		return err
	}

	if err := d.readOffsets(); err != nil {
		return err
	}

	if err := d.readGlyphs(); err != nil {
		return err
	}

	return d.readTrailer()
}

// Decode reads an FNT font from r. The whole of r must be consumed by the
// font.
func Decode(r io.Reader) (*Font, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return NewFont(d.header, d.height, d.glyphs), nil
}

// UnmarshalBinary decodes the font from binary form.
func (f *Font) UnmarshalBinary(b []byte) error {
	n, err := Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*f = *n
	return nil
}
