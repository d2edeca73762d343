/*
Package fnt implements a decoder and encoder for the FNT bitmap font format
used by the Heroes of Might and Magic games, along with its image form.

A font holds exactly 256 glyphs sharing a single height. Each pixel of a glyph
is one of three values: -1 for the foreground, 0 for the background and 1 for
the shadow.

The file starts with five opaque header bytes followed by the glyph height as
a little-endian 32-bit integer and 23 zero bytes. At offset 32 there are 256
records of three little-endian 32-bit integers: the space before, the width
and the space after each glyph. At offset 3104 there are 256 little-endian
32-bit offsets, each being the sum of the sizes of the glyphs before it, and
from offset 4128 the pixels of every glyph follow one after the other, one
byte per pixel, width times height bytes each.

The image form lays the glyphs out on a 16 by 16 grid of cells separated by
one pixel wide lines of the out of bounds color. Each cell is one pixel wider
than the widest glyph and one pixel taller than the font so the out of bounds
color also marks where a narrower glyph ends. The spacing of each glyph and
the header bytes are kept in a text file alongside the image, see Offsets.
*/
package fnt

const (
	// NumGlyphs is the number of glyphs in every font
	NumGlyphs = 256
	gridSize  = 16

	headerBytes     = 5
	heightOffset    = headerBytes
	reservedOffset  = heightOffset + intSize
	intSize         = 4
	attributeCount  = 3
	attributeOffset = 32
	attributeBytes  = NumGlyphs * attributeCount * intSize
	offsetsOffset   = attributeOffset + attributeBytes
	offsetsBytes    = NumGlyphs * intSize
	pixelOffset     = offsetsOffset + offsetsBytes
)
