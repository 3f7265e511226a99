/*
Package palette defines the color schemes used to map decimal digits to
pixels.

Each scheme assigns an opaque RGB color to some or all of the ten digits.
Looking up a digit that has no color, or a character that isn't a digit at
all, yields Background.
*/
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const numDigits = 10

// Background is the color of any pixel that has no digit color
var Background = color.RGBA{0x00, 0x00, 0x00, 0xff}

// Scheme maps each digit to a color.
type Scheme struct {
	Name   string
	colors [numDigits]color.RGBA
	set    uint16
}

// New returns a scheme with the given colors. Digits missing from colors fall
// back to Background, as do any keys that aren't '0' to '9'.
func New(name string, colors map[rune]color.RGBA) Scheme {
	s := Scheme{Name: name}
	for k, c := range colors {
		if k < '0' || k > '9' {
			continue
		}
		c.A = 0xff
		s.colors[k-'0'] = c
		s.set |= 1 << (k - '0')
	}
	return s
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

func fromArray(name string, colors [numDigits]color.RGBA) Scheme {
	return Scheme{
		Name:   name,
		colors: colors,
		set:    1<<numDigits - 1,
	}
}

// Has reports whether c has its own color in the scheme
func (s Scheme) Has(c rune) bool {
	return c >= '0' && c <= '9' && s.set&(1<<(c-'0')) != 0
}

// Lookup returns the color for the character c
func (s Scheme) Lookup(c rune) color.RGBA {
	if !s.Has(c) {
		return Background
	}
	return s.colors[c-'0']
}

// Palette returns Background followed by the color of each digit '0' to '9',
// so digit d is found at index d+1.
func (s Scheme) Palette() color.Palette {
	p := make(color.Palette, 0, numDigits+1)
	p = append(p, Background)
	for d := '0'; d <= '9'; d++ {
		p = append(p, s.Lookup(d))
	}
	return p
}

// Hex returns the color for c in "#rrggbb" form
func (s Scheme) Hex(c rune) string {
	cf, _ := colorful.MakeColor(s.Lookup(c))
	return cf.Hex()
}
