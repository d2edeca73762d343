/*
Package colors implements the colors used to draw a font as an image and the
mapping between those colors and the three pixel values stored in a font.

A Set binds four roles: the background, foreground and shadow colors used
inside a glyph and the out of bounds color used for grid lines and for the
unused part of each glyph cell.
*/
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadColor is matched by any error returned when a color name can't be
// understood.
var ErrBadColor = errors.New("colors: bad color")

// BadColorError reports a color name that is neither in the palette nor a
// six digit hexadecimal literal.
type BadColorError struct {
	Name string
}

func (e *BadColorError) Error() string {
	return fmt.Sprintf("colors: no color called %q is understood", e.Name)
}

// Unwrap returns ErrBadColor.
func (e *BadColorError) Unwrap() error {
	return ErrBadColor
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	Red     = Color{0xff, 0x00, 0x00}
	Green   = Color{0x00, 0xff, 0x00}
	Blue    = Color{0x00, 0x00, 0xff}
	Yellow  = Color{0xff, 0xff, 0x00}
	Magenta = Color{0xff, 0x00, 0xff}
	Cyan    = Color{0x00, 0xff, 0xff}
	Black   = Color{0x00, 0x00, 0x00}
	White   = Color{0xff, 0xff, 0xff}
)

// Ordered so String is deterministic
var names = []struct {
	name  string
	color Color
}{
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
	{"yellow", Yellow},
	{"magenta", Magenta},
	{"cyan", Cyan},
	{"black", Black},
	{"white", White},
}

// Names returns the names accepted by ForName besides hexadecimal literals.
func Names() []string {
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = n.name
	}
	return s
}

// ForName returns the color with the given name, matched case-insensitively,
// or the color described by exactly six hexadecimal digits in RRGGBB order.
func ForName(name string) (Color, error) {
	lower := strings.ToLower(name)
	for _, n := range names {
		if n.name == lower {
			return n.color, nil
		}
	}

	if len(name) == 6 && isHex(name) {
		v, _ := strconv.ParseUint(name, 16, 32)
		return FromRGB(uint32(v)), nil
	}

	return Color{}, &BadColorError{Name: name}
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// FromRGB returns the color held in the lower 24 bits of v, packed as
// 0xRRGGBB. Any alpha in the upper byte is ignored.
func FromRGB(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// RGB returns the color packed as opaque 0xFFRRGGBB.
func (c Color) RGB() uint32 {
	return 0xff<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func (c Color) String() string {
	for _, n := range names {
		if n.color == c {
			return n.name
		}
	}
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// PackedRGB returns the packed 0xFFRRGGBB form of any color. A color that
// isn't fully opaque keeps its alpha so it never compares equal to a Color.
func PackedRGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
