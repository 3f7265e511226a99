package render

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a lossless image file format.
type Format int

// Supported formats
const (
	PNG Format = iota
	BMP
	TIFF
	GIF
)

var errUnknownFormat = errors.New("render: unknown format")

var formats = map[Format]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	GIF:  "gif",
}

// ParseFormat returns the format named by s, ignoring case
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if s == "tif" {
		s = "tiff"
	}
	for f, name := range formats {
		if name == s {
			return f, nil
		}
	}
	return PNG, fmt.Errorf("%w: %q", errUnknownFormat, s)
}

func (f Format) String() string {
	if name, ok := formats[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for f, including the leading dot
func (f Format) Ext() string {
	return "." + f.String()
}

// Encode writes the image m to w in format f.
func Encode(w io.Writer, m image.Image, f Format) error {
	switch f {
	case PNG:
		e := png.Encoder{CompressionLevel: png.BestCompression}
		return e.Encode(w, m)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	case GIF:
		// Paletted images have at most 256 colors so this is exact
		if _, ok := m.(*image.Paletted); !ok {
			return errors.New("render: gif requires a paletted image")
		}
		return gif.Encode(w, m, nil)
	default:
		return fmt.Errorf("%w: %v", errUnknownFormat, f)
	}
}

// WriteFile encodes m in format f and writes it to the named file.
func WriteFile(file string, m image.Image, f Format) (err error) {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(w, m, f)
}
