/*
Package render draws a digit sequence as an image and encodes it.

Digits are laid out one per pixel in row-major order starting from the top
left corner. The image uses a palette of eleven colors; index 0 is the black
background and index d+1 holds the color for digit d. Any pixel after the last
digit, or for a character that isn't a digit, is left as background.
*/
package render

import (
	"image"

	"github.com/bodgit/digitmap/digits"
	"github.com/bodgit/digitmap/palette"
)

const background = 0

func colorIndex(s palette.Scheme, c rune) uint8 {
	if !s.Has(c) {
		return background
	}
	return uint8(c-'0') + 1
}

// Render returns a width by height image of s drawn with scheme.
func Render(s digits.Sequence, scheme palette.Scheme, width, height int) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, width, height), scheme.Palette())
	if width <= 0 {
		return m
	}

	for i, c := range s {
		x, y := i%width, i/width
		// Plan should always leave enough room but don't trust it
		if y >= height {
			break
		}
		m.Pix[y*m.Stride+x] = colorIndex(scheme, c)
	}

	return m
}
