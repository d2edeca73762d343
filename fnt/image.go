package fnt

import (
	"fmt"
	"image"
	"sync"

	"github.com/bodgit/fontworker/colors"
)

// eachRow calls fn for each row of the glyph grid concurrently and waits for
// them all to return. Each call only touches its own row of cells.
func eachRow(fn func(gy int)) {
	var wg sync.WaitGroup
	wg.Add(gridSize)
	for gy := 0; gy < gridSize; gy++ {
		go func(gy int) {
			defer wg.Done()
			fn(gy)
		}(gy)
	}
	wg.Wait()
}

// Image draws the font onto a new paletted image using the colors in cs.
//
// The image is a 16 by 16 grid of cells, each one pixel wider than the
// widest glyph and one pixel taller than the font, plus one extra row and
// column so the grid is closed. Everything that isn't a glyph pixel is drawn
// with the out of bounds color.
func (f *Font) Image(cs colors.Set) *image.Paletted {
	cw, ch := f.MaxWidth()+1, f.height+1

	// Index 0 of the palette is the out of bounds color
	m := image.NewPaletted(image.Rect(0, 0, gridSize*cw+1, gridSize*ch+1), cs.Palette())

	eachRow(func(gy int) {
		for gx := 0; gx < gridSize; gx++ {
			f.glyphs[gy*gridSize+gx].Render(cs, m, gx*cw+1, gy*ch+1)
		}
	})

	return m
}

func checkGridLines(cs colors.Set, m image.Image, cw, ch int) error {
	out := cs.OutOfBounds().RGB()
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	for i := 0; i <= gridSize; i++ {
		x := i * cw
		for y := 0; y < h; y++ {
			if rgbAt(m, x, y) != out {
				return &ImageError{Message: "unexpected data over outlines", X: x, Y: y}
			}
		}
		y := i * ch
		for x := 0; x < w; x++ {
			if rgbAt(m, x, y) != out {
				return &ImageError{Message: "unexpected data over outlines", X: x, Y: y}
			}
		}
	}
	return nil
}

// DecodeImage reads a font from its image form m, drawn with the colors in
// cs, and the text form of its offsets.
func DecodeImage(cs colors.Set, m image.Image, offsets []byte) (*Font, error) {
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	if w%gridSize != 1 {
		return nil, fmt.Errorf("%w: incorrect image width %d (%d %% %d != 1)", ErrBadImage, w, w, gridSize)
	}
	if h%gridSize != 1 {
		return nil, fmt.Errorf("%w: incorrect image height %d (%d %% %d != 1)", ErrBadImage, h, h, gridSize)
	}
	if h < gridSize+1 {
		return nil, fmt.Errorf("%w: image height %d is too small", ErrBadImage, h)
	}

	o, err := ParseOffsets(offsets)
	if err != nil {
		return nil, err
	}

	cw, ch := (w-1)/gridSize, (h-1)/gridSize
	if err := checkGridLines(cs, m, cw, ch); err != nil {
		return nil, err
	}

	var (
		glyphs [NumGlyphs]*Glyph
		errs   [NumGlyphs]error
	)
	eachRow(func(gy int) {
		for gx := 0; gx < gridSize; gx++ {
			i := gy*gridSize + gx
			glyphs[i], errs[i] = ExtractGlyph(cs, m, gx*cw+1, gy*ch+1, cw, ch-1, o.Before(i), o.After(i))
			if errs[i] != nil {
				return
			}
		}
	})

	// Report the same error as reading the glyphs in order would
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return NewFont(o.HeaderBytes(), ch-1, glyphs), nil
}
