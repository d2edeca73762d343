package fnt

import "fmt"

// Font is a complete FNT font. It implements the encoding.BinaryMarshaler
// and encoding.BinaryUnmarshaler interfaces.
type Font struct {
	glyphs  [NumGlyphs]*Glyph
	height  int
	offsets *Offsets
}

// NewFont returns a font made of the given glyphs, all of which must be
// height pixels tall unless they have no width. The spacing of each glyph is
// recorded in the font offsets along with the header bytes. It panics if a
// glyph is missing or has the wrong height.
func NewFont(header [headerBytes]byte, height int, glyphs [NumGlyphs]*Glyph) *Font {
	if height < 0 {
		panic(fmt.Sprintf("fnt: negative font height %d", height))
	}

	var before, after [NumGlyphs]int
	for i, g := range glyphs {
		if g == nil {
			panic(fmt.Sprintf("fnt: missing glyph %d", i))
		}
		if g.width != 0 && g.height != height {
			panic(fmt.Sprintf("fnt: glyph %d is %d pixels tall, font is %d", i, g.height, height))
		}
		before[i], after[i] = g.before, g.after
	}

	return &Font{
		glyphs:  glyphs,
		height:  height,
		offsets: NewOffsets(header, before, after),
	}
}

// Glyph returns the glyph for character c.
func (f *Font) Glyph(c byte) *Glyph {
	return f.glyphs[c]
}

// Height returns the height shared by every glyph.
func (f *Font) Height() int {
	return f.height
}

// Offsets returns a copy of the header bytes and spacing of the font.
func (f *Font) Offsets() *Offsets {
	o := *f.offsets
	return &o
}

// MaxWidth returns the width of the widest glyph.
func (f *Font) MaxWidth() int {
	w := 0
	for _, g := range f.glyphs {
		if g.width > w {
			w = g.width
		}
	}
	return w
}

// Equal reports whether f and o hold the same header bytes, height and
// glyphs, pixel for pixel.
func (f *Font) Equal(o *Font) bool {
	if f.height != o.height || *f.offsets != *o.offsets {
		return false
	}
	for i, g := range f.glyphs {
		h := o.glyphs[i]
		if g.width != h.width || len(g.pix) != len(h.pix) {
			return false
		}
		for j := range g.pix {
			if g.pix[j] != h.pix[j] {
				return false
			}
		}
	}
	return true
}
