package fnt

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/bodgit/fontworker/colors"
)

// Glyph is the image of a single character along with its spacing. The
// spacing is kept but plays no part in drawing the glyph.
type Glyph struct {
	pix    []int8
	width  int
	height int
	before int
	after  int
}

// NewGlyph returns a glyph width pixels wide using the pixel values in pix,
// stored row by row. It panics unless len(pix) is a multiple of width, pix is
// empty exactly when width is zero and every value is -1, 0 or 1.
func NewGlyph(pix []int8, width, spaceBefore, spaceAfter int) *Glyph {
	if width < 0 {
		panic(fmt.Sprintf("fnt: negative glyph width %d", width))
	}
	if width == 0 && len(pix) != 0 || width != 0 && (len(pix) == 0 || len(pix)%width != 0) {
		panic(fmt.Sprintf("fnt: %d pixels can't form a glyph %d pixels wide", len(pix), width))
	}
	for _, v := range pix {
		if v < colors.Foreground || v > colors.Shadow {
			panic(fmt.Sprintf("fnt: invalid pixel value %d", v))
		}
	}

	g := &Glyph{
		pix:    append([]int8(nil), pix...),
		width:  width,
		before: spaceBefore,
		after:  spaceAfter,
	}
	if width != 0 {
		g.height = len(pix) / width
	}
	return g
}

// Width returns the width of the glyph in pixels.
func (g *Glyph) Width() int {
	return g.width
}

// Height returns the height of the glyph in pixels, zero if the glyph has no
// width.
func (g *Glyph) Height() int {
	return g.height
}

// SpaceBefore returns the spacing before the glyph.
func (g *Glyph) SpaceBefore() int {
	return g.before
}

// SpaceAfter returns the spacing after the glyph.
func (g *Glyph) SpaceAfter() int {
	return g.after
}

// Size returns the number of pixels in the glyph.
func (g *Glyph) Size() int {
	return len(g.pix)
}

// At returns the pixel value at (x, y). It panics if the coordinate is
// outside the glyph.
func (g *Glyph) At(x, y int) int8 {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		panic(fmt.Sprintf("fnt: pixel (%d, %d) outside %dx%d glyph", x, y, g.width, g.height))
	}
	return g.pix[y*g.width+x]
}

// Pixels returns a copy of the pixel values, row by row.
func (g *Glyph) Pixels() []int8 {
	return append([]int8(nil), g.pix...)
}

func (g *Glyph) appendPixels(b []byte) []byte {
	for _, v := range g.pix {
		b = append(b, byte(v))
	}
	return b
}

func rgbAt(m image.Image, x, y int) uint32 {
	b := m.Bounds()
	return colors.PackedRGB(m.At(b.Min.X+x, b.Min.Y+y))
}

// ExtractGlyph reads a glyph from the cell of m whose top left corner is at
// (x, y), measured from the top left corner of m. The cell is maxWidth pixels
// wide and height pixels tall.
//
// The width of the glyph is found by moving left from the rightmost column of
// the cell while the top pixel of the column is the out of bounds color. Each
// of those columns must be entirely out of bounds. Every pixel left of them
// must then be the background, foreground or shadow color.
//
// It panics if the cell doesn't fit inside m.
func ExtractGlyph(cs colors.Set, m image.Image, x, y, maxWidth, height, spaceBefore, spaceAfter int) (*Glyph, error) {
	b := m.Bounds()
	if x < 0 || y < 0 || maxWidth < 0 || height < 0 || x+maxWidth > b.Dx() || y+height > b.Dy() {
		panic(fmt.Sprintf("fnt: %dx%d cell at (%d, %d) outside %dx%d image", maxWidth, height, x, y, b.Dx(), b.Dy()))
	}
	if height == 0 {
		return NewGlyph(nil, 0, spaceBefore, spaceAfter), nil
	}

	out := cs.OutOfBounds().RGB()

	w := maxWidth - 1
	for ; w >= 0; w-- {
		if rgbAt(m, x+w, y) != out {
			break
		}
		for j := 1; j < height; j++ {
			if rgbAt(m, x+w, y+j) != out {
				return nil, &ImageError{
					Message: "irregularly-shaped or misaligned glyph",
					X:       x + w,
					Y:       y + j,
				}
			}
		}
	}
	w++

	pix := make([]int8, w*height)
	for j := 0; j < height; j++ {
		for i := 0; i < w; i++ {
			px, py := x+i, y+j
			c := rgbAt(m, px, py)
			if c == out {
				return nil, &ImageError{
					Message: "irregularly-shaped or misaligned glyph",
					X:       px,
					Y:       py,
				}
			}
			v, ok := cs.Value(c)
			if !ok {
				return nil, &ImageError{
					Message: fmt.Sprintf("unrecognized color %s", describeRGB(c)),
					X:       px,
					Y:       py,
				}
			}
			pix[j*w+i] = v
		}
	}

	return NewGlyph(pix, w, spaceBefore, spaceAfter), nil
}

func describeRGB(c uint32) string {
	if a := c >> 24; a != 0xff {
		return fmt.Sprintf("%s with alpha %d", colors.FromRGB(c), a)
	}
	return colors.FromRGB(c).String()
}

// Render draws the glyph onto dst with its top left corner at (x, y),
// measured from the top left corner of dst. It panics if the glyph doesn't
// fit.
func (g *Glyph) Render(cs colors.Set, dst draw.Image, x, y int) {
	if g.width == 0 {
		return
	}
	b := dst.Bounds()
	if x < 0 || y < 0 || x > b.Dx()-g.width || y > b.Dy()-g.height {
		panic(fmt.Sprintf("fnt: %dx%d glyph at (%d, %d) outside %dx%d image", g.width, g.height, x, y, b.Dx(), b.Dy()))
	}

	for j := 0; j < g.height; j++ {
		for i := 0; i < g.width; i++ {
			dst.Set(b.Min.X+x+i, b.Min.Y+y+j, cs.Color(g.pix[j*g.width+i]))
		}
	}
}
