/*
Package preview produces small thumbnails of rendered digit images.

A full size render of a million digits is over a thousand pixels wide, which
is awkward to flick through. Thumbnails are scaled down to a maximum width and
reduced to at most 16 colors.
*/
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultWidth is the thumbnail width used when none is given
	DefaultWidth = 320
	maxColors    = 16
)

// Thumbnail returns m scaled so that it is no wider than maxWidth, keeping
// the aspect ratio. Images already narrow enough are not scaled. The result
// always uses a palette of no more than 16 colors.
func Thumbnail(m image.Image, maxWidth int) *image.Paletted {
	if maxWidth <= 0 {
		maxWidth = DefaultWidth
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
	}
	if h < 1 {
		h = 1
	}

	r := image.Rect(0, 0, w, h)
	scaled := image.NewRGBA(r)
	xdraw.ApproxBiLinear.Scale(scaled, r, m, b, xdraw.Src, nil)

	// Small enough already so keep the colors exact
	if p := uniqueColors(scaled, maxColors); p != nil {
		pm := image.NewPaletted(r, p)
		draw.Draw(pm, r, scaled, r.Min, draw.Src)
		return pm
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(r, q.Quantize(make(color.Palette, 0, maxColors), scaled))
	draw.Draw(pm, r, scaled, r.Min, draw.Src)

	return pm
}

// Returns nil if m has more than n colors
func uniqueColors(m *image.RGBA, n int) color.Palette {
	seen := make(map[color.RGBA]struct{})
	var p color.Palette
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.RGBAAt(x, y)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(seen) == n {
				return nil
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p
}
