package palette

import "image/color"

var (
	// Grayscale runs from white for 0 down to nearly black for 9
	Grayscale = fromArray("grayscale", [numDigits]color.RGBA{
		rgb(255, 255, 255), rgb(227, 227, 227), rgb(199, 199, 199), rgb(171, 171, 171), rgb(143, 143, 143),
		rgb(115, 115, 115), rgb(87, 87, 87), rgb(59, 59, 59), rgb(31, 31, 31), rgb(3, 3, 3),
	})

	// Rainbow steps around the hue wheel from red to magenta
	Rainbow = fromArray("rainbow", [numDigits]color.RGBA{
		rgb(255, 0, 0), rgb(255, 128, 0), rgb(255, 255, 0), rgb(128, 255, 0), rgb(0, 255, 0),
		rgb(0, 255, 128), rgb(0, 128, 255), rgb(0, 0, 255), rgb(128, 0, 255), rgb(255, 0, 255),
	})

	// EarthTones uses greens, golds and browns
	EarthTones = fromArray("earth", [numDigits]color.RGBA{
		rgb(0, 100, 0), rgb(34, 139, 34), rgb(107, 142, 35), rgb(154, 205, 50), rgb(218, 165, 32),
		rgb(184, 134, 11), rgb(139, 69, 19), rgb(160, 82, 45), rgb(188, 143, 143), rgb(216, 191, 216),
	})

	// CoolWarm runs from dark blue for 0 to red for 9
	CoolWarm = fromArray("coolwarm", [numDigits]color.RGBA{
		rgb(0, 0, 112), rgb(0, 0, 224), rgb(0, 128, 255), rgb(0, 255, 255), rgb(0, 255, 128),
		rgb(128, 255, 0), rgb(255, 255, 0), rgb(255, 128, 0), rgb(255, 64, 0), rgb(255, 0, 0),
	})
)

// Schemes returns the predefined schemes in output order
func Schemes() []Scheme {
	return []Scheme{Grayscale, Rainbow, EarthTones, CoolWarm}
}
