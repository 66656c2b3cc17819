package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for unsupported output formats
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat parses a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Write encodes img to w in the given format
func Write(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return WritePNG(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
