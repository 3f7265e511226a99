/*
Package layout works out the pixel dimensions of an image large enough to
hold a given number of digits at roughly a 16:9 aspect ratio.
*/
package layout

import "math"

// AspectRatio is the target width to height ratio
const AspectRatio = 16.0 / 9.0

// Plan returns the width and height of a grid with at least count cells.
//
// The height is estimated first from the square root of count and the width
// is then derived from it, both rounded up. The result is not necessarily the
// smallest such grid. A count of zero or less returns a 1 by 1 grid.
func Plan(count int) (int, int) {
	if count <= 0 {
		return 1, 1
	}

	height := int(math.Ceil(math.Sqrt(float64(count) / AspectRatio)))
	width := int(math.Ceil(AspectRatio * float64(height)))

	return width, height
}
