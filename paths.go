package fontworker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Operation is either an export or an import.
type Operation int

const (
	// OpExport converts a font to an image and offsets file.
	OpExport Operation = iota
	// OpImport converts an image and offsets file to a font.
	OpImport
)

func (op Operation) String() string {
	switch op {
	case OpExport:
		return "export"
	case OpImport:
		return "import"
	}
	return "unknown"
}

// ErrMissingPath is returned when the one path an operation can't do
// without is empty.
var ErrMissingPath = errors.New("fontworker: missing file name")

const (
	fontExt    = ".fnt"
	imageExt   = ".png"
	offsetsExt = ".txt"
)

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// DefaultPaths fills in any empty paths for the operation. The image defaults
// to the font with a .png extension, the font to the image with a .fnt
// extension and the offsets to the image with a .txt extension. An export
// needs at least the font and an import at least the image.
func DefaultPaths(op Operation, font, image, offsets string) (string, string, string, error) {
	switch op {
	case OpExport:
		if font == "" {
			return "", "", "", fmt.Errorf("%w: the font file name is mandatory for the %s operation", ErrMissingPath, op)
		}
		if image == "" {
			image = replaceExt(font, imageExt)
		}
	case OpImport:
		if image == "" {
			return "", "", "", fmt.Errorf("%w: the image file name is mandatory for the %s operation", ErrMissingPath, op)
		}
		if font == "" {
			font = replaceExt(image, fontExt)
		}
	default:
		panic("fontworker: unknown operation")
	}

	if offsets == "" {
		offsets = replaceExt(image, offsetsExt)
	}

	return font, image, offsets, nil
}
