/*
Package fontworker is a library for editing the FNT bitmap fonts used by the
Heroes of Might and Magic games. A font is exported to an image, with the
glyphs drawn on a 16 by 16 grid, and a companion offsets text file. Both can
be edited and imported back to a font.
*/
package fontworker

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/fontworker/colors"
	"github.com/bodgit/fontworker/fnt"
	"github.com/bodgit/fontworker/raster"
)

// FontWorker exports and imports fonts using a set of colors.
type FontWorker struct {
	colors colors.Set
	logger *log.Logger
}

// New returns a FontWorker drawing glyphs with the given colors.
func New(cs colors.Set, logger *log.Logger) *FontWorker {
	return &FontWorker{
		colors: cs,
		logger: logger,
	}
}

// writeFile creates name and writes it with fn. The file is removed if
// anything fails so a partial file is never left behind.
func writeFile(name string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		return err
	}

	return w.Flush()
}

func readFont(name string) (*fnt.Font, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	font, err := fnt.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return font, nil
}

// Export reads the font in fontFile and writes it out as an image to
// imageFile and the glyph spacing to offsetsFile. The image format is taken
// from the extension of imageFile. Empty paths are defaulted as by
// DefaultPaths.
func (fw *FontWorker) Export(fontFile, imageFile, offsetsFile string) error {
	fontFile, imageFile, offsetsFile, err := DefaultPaths(OpExport, fontFile, imageFile, offsetsFile)
	if err != nil {
		return err
	}

	format, err := raster.FormatFromPath(imageFile)
	if err != nil {
		return fmt.Errorf("%w: %w", fnt.ErrBadInput, err)
	}

	font, err := readFont(fontFile)
	if err != nil {
		return err
	}

	m := font.Image(fw.colors)
	if err := writeFile(imageFile, func(w io.Writer) error {
		return raster.Encode(w, m, format)
	}); err != nil {
		return err
	}

	text, err := font.Offsets().MarshalText()
	if err != nil {
		return err
	}
	if err := os.WriteFile(offsetsFile, text, 0666); err != nil {
		return err
	}

	fw.logger.Printf("Exported \"%s\" to \"%s\" and \"%s\"\n", fontFile, imageFile, offsetsFile)

	return nil
}

// Import reads the image in imageFile and the glyph spacing in offsetsFile
// and writes the font they describe to fontFile. Empty paths are defaulted
// as by DefaultPaths.
func (fw *FontWorker) Import(fontFile, imageFile, offsetsFile string) error {
	fontFile, imageFile, offsetsFile, err := DefaultPaths(OpImport, fontFile, imageFile, offsetsFile)
	if err != nil {
		return err
	}

	f, err := os.Open(imageFile)
	if err != nil {
		return err
	}
	defer f.Close()

	m, format, err := raster.Decode(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("%s: %w", imageFile, err)
	}

	text, err := os.ReadFile(offsetsFile)
	if err != nil {
		return err
	}

	font, err := fnt.DecodeImage(fw.colors, m, text)
	if err != nil {
		return fmt.Errorf("%s: %w", imageFile, err)
	}

	if err := writeFile(fontFile, func(w io.Writer) error {
		return fnt.Encode(w, font)
	}); err != nil {
		return err
	}

	fw.logger.Printf("Imported \"%s\" (%s) and \"%s\" to \"%s\"\n", imageFile, format, offsetsFile, fontFile)

	return nil
}
