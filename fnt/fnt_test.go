package fnt

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = [headerBytes]byte{0x01, 0x02, 0xfe, 0x00, 0x7f}

// randomFont returns a font with glyphs of random width, pixels and spacing
func randomFont(t *testing.T, seed int64, height, maxWidth int) *Font {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	var glyphs [NumGlyphs]*Glyph
	for i := range glyphs {
		w := r.Intn(maxWidth + 1)
		if height == 0 {
			w = 0
		}
		pix := make([]int8, w*height)
		for j := range pix {
			pix[j] = int8(r.Intn(3) - 1)
		}
		glyphs[i] = NewGlyph(pix, w, r.Intn(5), r.Intn(5))
	}
	return NewFont(testHeader, height, glyphs)
}

// emptyGlyphs returns 256 glyphs with no width
func emptyGlyphs() [NumGlyphs]*Glyph {
	var glyphs [NumGlyphs]*Glyph
	for i := range glyphs {
		glyphs[i] = NewGlyph(nil, 0, 0, 0)
	}
	return glyphs
}

func TestEncodeLayout(t *testing.T) {
	glyphs := emptyGlyphs()
	glyphs['A'] = NewGlyph([]int8{-1, 1}, 2, 3, 4)
	glyphs['B'] = NewGlyph([]int8{0, 0, 0}, 3, -1, 0)
	f := NewFont(testHeader, 1, glyphs)

	b, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, pixelOffset+5)

	le := binary.LittleEndian

	assert.Equal(t, testHeader[:], b[:headerBytes])
	assert.Equal(t, uint32(1), le.Uint32(b[heightOffset:]))
	assert.Equal(t, make([]byte, attributeOffset-reservedOffset), b[reservedOffset:attributeOffset])

	a := attributeOffset + 'A'*attributeCount*intSize
	assert.Equal(t, uint32(3), le.Uint32(b[a:]))
	assert.Equal(t, uint32(2), le.Uint32(b[a+intSize:]))
	assert.Equal(t, uint32(4), le.Uint32(b[a+2*intSize:]))

	a = attributeOffset + 'B'*attributeCount*intSize
	assert.Equal(t, uint32(0xffffffff), le.Uint32(b[a:]))

	for i := 0; i < NumGlyphs; i++ {
		var want uint32
		switch {
		case i > 'B':
			want = 5
		case i > 'A':
			want = 2
		}
		assert.Equal(t, want, le.Uint32(b[offsetsOffset+i*intSize:]), "offset of glyph %d", i)
	}

	assert.Equal(t, []byte{0xff, 0x01, 0x00, 0x00, 0x00}, b[pixelOffset:])
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		seed     int64
		height   int
		maxWidth int
	}{
		{"empty", 1, 0, 0},
		{"zero width", 2, 9, 0},
		{"small", 3, 1, 3},
		{"typical", 4, 12, 10},
		{"wide", 5, 7, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := randomFont(t, tt.seed, tt.height, tt.maxWidth)

			b := new(bytes.Buffer)
			require.NoError(t, Encode(b, f))
			encoded := append([]byte(nil), b.Bytes()...)

			g, err := Decode(b)
			require.NoError(t, err)
			assert.True(t, f.Equal(g))
			assert.Equal(t, f.Offsets(), g.Offsets())

			again, err := g.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, encoded, again)

			var h Font
			require.NoError(t, h.UnmarshalBinary(encoded))
			assert.True(t, f.Equal(&h))
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	b, err := randomFont(t, 6, 3, 4).MarshalBinary()
	require.NoError(t, err)

	for n := 0; n < len(b); n++ {
		_, err := Decode(bytes.NewReader(b[:n]))
		require.Error(t, err, "truncated at %d", n)
		assert.ErrorIs(t, err, ErrBadInput)

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, int64(n), ie.Offset)
	}
}

func TestDecodeBad(t *testing.T) {
	glyphs := emptyGlyphs()
	glyphs[0] = NewGlyph([]int8{-1, 0, 1, 0}, 2, 0, 0)
	glyphs[5] = NewGlyph([]int8{1, 1}, 1, 0, 0)
	good, err := NewFont(testHeader, 2, glyphs).MarshalBinary()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mangle  func([]byte) []byte
		offset  int64
		message string
	}{
		{
			name: "reserved",
			mangle: func(b []byte) []byte {
				b[20] = 7
				return b
			},
			offset:  20,
			message: "byte is 7",
		},
		{
			name: "trailing",
			mangle: func(b []byte) []byte {
				return append(b, 0)
			},
			offset:  int64(len(good)),
			message: "unexpected data",
		},
		{
			name: "offset gap",
			mangle: func(b []byte) []byte {
				putInt32(b[offsetsOffset:], 5, 5)
				return b
			},
			offset:  offsetsOffset + 5*intSize,
			message: "glyph 5",
		},
		{
			name: "offset overlap",
			mangle: func(b []byte) []byte {
				putInt32(b[offsetsOffset:], 1, 0)
				return b
			},
			offset:  offsetsOffset + 1*intSize,
			message: "glyph 1",
		},
		{
			name: "pixel value",
			mangle: func(b []byte) []byte {
				b[pixelOffset+2] = 2
				return b
			},
			offset:  pixelOffset + 2,
			message: "invalid pixel value 2",
		},
		{
			name: "negative height",
			mangle: func(b []byte) []byte {
				putInt32(b[heightOffset:], 0, -2)
				return b
			},
			offset:  heightOffset,
			message: "negative glyph height",
		},
		{
			name: "negative width",
			mangle: func(b []byte) []byte {
				putInt32(b[attributeOffset:], 3*attributeCount+1, -1)
				return b
			},
			offset:  attributeOffset + (3*attributeCount+1)*intSize,
			message: "glyph 3 has negative width",
		},
		{
			name: "width without height",
			mangle: func(b []byte) []byte {
				putInt32(b[heightOffset:], 0, 0)
				return b
			},
			offset:  attributeOffset + intSize,
			message: "glyph 0 has width 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.mangle(append([]byte(nil), good...))
			_, err := Decode(bytes.NewReader(b))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadInput)

			var ie *InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.offset, ie.Offset)
			assert.Contains(t, ie.Message, tt.message)
		})
	}
}

func TestNewFontPanics(t *testing.T) {
	glyphs := emptyGlyphs()
	assert.Panics(t, func() { NewFont(testHeader, -1, glyphs) })

	glyphs[9] = NewGlyph([]int8{0, 0}, 1, 0, 0)
	assert.Panics(t, func() { NewFont(testHeader, 3, glyphs) })
	assert.NotPanics(t, func() { NewFont(testHeader, 2, glyphs) })

	glyphs[10] = nil
	assert.Panics(t, func() { NewFont(testHeader, 2, glyphs) })
}

func TestFontAccessors(t *testing.T) {
	glyphs := emptyGlyphs()
	glyphs['x'] = NewGlyph([]int8{0, 0, 0, -1, -1, -1}, 3, 1, 2)
	f := NewFont(testHeader, 2, glyphs)

	assert.Equal(t, 2, f.Height())
	assert.Equal(t, 3, f.MaxWidth())
	assert.Equal(t, int8(-1), f.Glyph('x').At(0, 1))
	assert.Equal(t, 1, f.Offsets().Before('x'))
	assert.Equal(t, 2, f.Offsets().After('x'))
	assert.Equal(t, testHeader, f.Offsets().HeaderBytes())
}

func TestFontOffsetsCopy(t *testing.T) {
	glyphs := emptyGlyphs()
	glyphs['x'] = NewGlyph([]int8{0, -1}, 2, 3, 4)
	f := NewFont(testHeader, 1, glyphs)
	g := NewFont(testHeader, 1, glyphs)

	o := f.Offsets()
	require.NoError(t, o.UnmarshalText([]byte(randomOffsets(3).String())))
	assert.NotEqual(t, o, f.Offsets())

	assert.Equal(t, testHeader, f.Offsets().HeaderBytes())
	assert.Equal(t, 3, f.Offsets().Before('x'))
	assert.Equal(t, 4, f.Offsets().After('x'))
	assert.True(t, f.Equal(g))
}
