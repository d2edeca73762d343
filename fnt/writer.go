package fnt

import (
	"bytes"
	"encoding/binary"
	"io"
)

type encoder struct {
	w io.Writer

	tmp [pixelOffset]byte
}

func putInt32(b []byte, i int, v int) {
	binary.LittleEndian.PutUint32(b[i*intSize:], uint32(int32(v)))
}

func (e *encoder) encode(f *Font) error {
	// Header, height and the reserved bytes, which stay zero
	h := f.offsets.HeaderBytes()
	copy(e.tmp[:], h[:])
	putInt32(e.tmp[heightOffset:], 0, f.height)

	// Attributes and offsets
	var offset int
	for i, g := range f.glyphs {
		putInt32(e.tmp[attributeOffset:], i*attributeCount, g.before)
		putInt32(e.tmp[attributeOffset:], i*attributeCount+1, g.width)
		putInt32(e.tmp[attributeOffset:], i*attributeCount+2, g.after)

		putInt32(e.tmp[offsetsOffset:], i, offset)
		offset += g.Size()
	}

	if _, err := e.w.Write(e.tmp[:]); err != nil {
		return err
	}

	// Pixels
	b := make([]byte, 0, offset)
	for _, g := range f.glyphs {
		b = g.appendPixels(b)
	}
	_, err := e.w.Write(b)
	return err
}

// Encode writes the font f to w in FNT format.
func Encode(w io.Writer, f *Font) error {
	e := encoder{w: w}
	return e.encode(f)
}

// MarshalBinary encodes the font into binary form and returns the result.
func (f *Font) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	if err := Encode(b, f); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
