package fnt

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput is matched by any error caused by a malformed font file.
	ErrBadInput = errors.New("fnt: bad input data")
	// ErrBadImage is matched by any error caused by a malformed image or
	// offsets text.
	ErrBadImage = errors.New("fnt: bad image data")
)

// InputError reports a malformed font file and the position of the byte
// where the problem was found.
type InputError struct {
	Message string
	Offset  int64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("fnt: %s at position %d", e.Message, e.Offset)
}

// Unwrap returns ErrBadInput.
func (e *InputError) Unwrap() error {
	return ErrBadInput
}

// ImageError reports a malformed image and the coordinate of the pixel
// where the problem was found.
type ImageError struct {
	Message string
	X, Y    int
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("fnt: %s (see [%d, %d])", e.Message, e.X, e.Y)
}

// Unwrap returns ErrBadImage.
func (e *ImageError) Unwrap() error {
	return ErrBadImage
}

// OffsetsError reports malformed offsets text. Line is counted from one, or
// is zero if the problem isn't with any single line.
type OffsetsError struct {
	Message string
	Line    int
}

func (e *OffsetsError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("fnt: offsets: %s", e.Message)
	}
	return fmt.Sprintf("fnt: offsets line %d: %s", e.Line, e.Message)
}

// Unwrap returns ErrBadImage.
func (e *OffsetsError) Unwrap() error {
	return ErrBadImage
}
