/*
Package raster reads and writes the images holding a drawn font. The image
format is chosen by file extension when writing and detected from the data
when reading.
*/
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when an image can't be written in the
// requested format.
var ErrUnsupportedFormat = errors.New("raster: unsupported image format")

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	"bmp":  bmp.Encode,
	"gif":  encodeGIF,
	"jpeg": encodeJPEG,
	"jpg":  encodeJPEG,
	"png":  encodePNG,
	"tif":  encodeTIFF,
	"tiff": encodeTIFF,
}

// Formats returns the formats that can be written, sorted by name.
func Formats() []string {
	f := make([]string, 0, len(encoders))
	for k := range encoders {
		f = append(f, k)
	}
	sort.Strings(f)
	return f
}

// FormatFromPath returns the format used for writing an image to the given
// file, based on its extension.
func FormatFromPath(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
	}
	format := strings.ToLower(ext[1:])
	if _, ok := encoders[format]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return format, nil
}

// Decode reads an image in any of the supported formats from r, returning
// the image and the name of its format.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Encode writes the image m to w in the given format, as returned by
// FormatFromPath.
func Encode(w io.Writer, m image.Image, format string) error {
	enc, ok := encoders[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return enc(w, m)
}

func encodeJPEG(w io.Writer, m image.Image) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: 100})
}

func encodeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngEncoder = &png.Encoder{
	CompressionLevel: png.BestCompression,
	BufferPool: &pngEncoderBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &png.EncoderBuffer{}
			},
		},
	},
}

func encodePNG(w io.Writer, m image.Image) error {
	return pngEncoder.Encode(w, m)
}

const maxGIFColors = 256

// paletted returns m as a paletted image without altering any color if
// possible, otherwise the colors are reduced to fit a GIF palette.
func paletted(m image.Image) *image.Paletted {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= maxGIFColors {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}

	if pm == nil {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxGIFColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return pm
}

func encodeGIF(w io.Writer, m image.Image) error {
	return gif.Encode(w, paletted(m), nil)
}
