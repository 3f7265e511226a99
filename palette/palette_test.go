package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemes(t *testing.T) {
	schemes := Schemes()
	if assert.Len(t, schemes, 4) {
		assert.Equal(t, "grayscale", schemes[0].Name)
		assert.Equal(t, "rainbow", schemes[1].Name)
		assert.Equal(t, "earth", schemes[2].Name)
		assert.Equal(t, "coolwarm", schemes[3].Name)
	}

	for _, s := range schemes {
		for d := '0'; d <= '9'; d++ {
			assert.True(t, s.Has(d), "%s: %c", s.Name, d)
			assert.Equal(t, uint8(0xff), s.Lookup(d).A)
		}
	}

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Grayscale.Lookup('0'))
	assert.Equal(t, color.RGBA{3, 3, 3, 255}, Grayscale.Lookup('9'))
	assert.Equal(t, color.RGBA{0, 128, 255, 255}, Rainbow.Lookup('6'))
	assert.Equal(t, color.RGBA{218, 165, 32, 255}, EarthTones.Lookup('4'))
	assert.Equal(t, color.RGBA{255, 64, 0, 255}, CoolWarm.Lookup('8'))
}

func TestLookupFallback(t *testing.T) {
	s := New("partial", map[rune]color.RGBA{
		'1': {10, 20, 30, 0},
		'x': {1, 2, 3, 255},
	})

	assert.Equal(t, color.RGBA{10, 20, 30, 255}, s.Lookup('1'))
	assert.Equal(t, Background, s.Lookup('3'))
	assert.Equal(t, Background, s.Lookup('x'))
	assert.Equal(t, Background, s.Lookup(' '))
	assert.False(t, s.Has('x'))

	for _, c := range []rune{'a', '.', '-', 'é', '٣', 0, 0xff} {
		assert.Equal(t, Background, Rainbow.Lookup(c))
	}
}

func TestPalette(t *testing.T) {
	p := Rainbow.Palette()
	if assert.Len(t, p, 11) {
		assert.Equal(t, Background, p[0])
		assert.Equal(t, Rainbow.Lookup('0'), p[1])
		assert.Equal(t, Rainbow.Lookup('9'), p[10])
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#e3e3e3", Grayscale.Hex('1'))
	assert.Equal(t, "#ff8000", Rainbow.Hex('1'))
	assert.Equal(t, "#000000", Rainbow.Hex('z'))
}
