package colors

import (
	"fmt"
	"image/color"
)

// Pixel values as stored in a font.
const (
	Foreground int8 = -1
	Background int8 = 0
	Shadow     int8 = 1
)

// Set holds the colors used for each role when a font is drawn as an image.
// The four colors must be visually distinct for an image to decode back
// into the same font. A Set can only be built with NewSet and never changes
// afterwards.
type Set struct {
	// Indexed by pixel value + 1
	rgbs [3]Color
	out  Color
}

// NewSet returns a Set for the given roles.
func NewSet(background, foreground, shadow, outOfBounds Color) Set {
	return Set{
		rgbs: [3]Color{foreground, background, shadow},
		out:  outOfBounds,
	}
}

// Background returns the color of background pixels.
func (s Set) Background() Color {
	return s.rgbs[Background+1]
}

// Foreground returns the color of foreground pixels.
func (s Set) Foreground() Color {
	return s.rgbs[Foreground+1]
}

// Shadow returns the color of shadow pixels.
func (s Set) Shadow() Color {
	return s.rgbs[Shadow+1]
}

// OutOfBounds returns the color of the grid lines and of the unused part of
// each glyph cell.
func (s Set) OutOfBounds() Color {
	return s.out
}

// DefaultSet returns the white background, red foreground, black shadow and
// blue outline used when no colors are given.
func DefaultSet() Set {
	return NewSet(White, Red, Black, Blue)
}

// Color returns the color drawn for pixel value v. It panics if v isn't one
// of Foreground, Background or Shadow.
func (s Set) Color(v int8) Color {
	if v < Foreground || v > Shadow {
		panic(fmt.Sprintf("colors: invalid pixel value %d", v))
	}
	return s.rgbs[v+1]
}

// RGB returns the packed form of the color drawn for pixel value v.
func (s Set) RGB(v int8) uint32 {
	return s.Color(v).RGB()
}

// Value returns the pixel value whose color is the packed color rgb. The
// out of bounds color is never a pixel value.
func (s Set) Value(rgb uint32) (int8, bool) {
	switch rgb {
	case s.Background().RGB():
		return Background, true
	case s.Foreground().RGB():
		return Foreground, true
	case s.Shadow().RGB():
		return Shadow, true
	}
	return 0, false
}

// Palette returns the four role colors with the out of bounds color first,
// so index 0 of a paletted image is the out of bounds color.
func (s Set) Palette() color.Palette {
	return color.Palette{s.out, s.Foreground(), s.Background(), s.Shadow()}
}
