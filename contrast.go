package donut

import "github.com/wcharczuk/go-chart/v2/drawing"

// Luminance is the perceptual brightness of c in [0, 1] using the Rec. 601
// weights on 8-bit channels. Alpha is ignored.
func Luminance(c drawing.Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ContrastColor picks black or white text for a background. Luminance of
// exactly 0.5 gets white.
func ContrastColor(bg drawing.Color) drawing.Color {
	if Luminance(bg) > 0.5 {
		return drawing.ColorBlack
	}
	return drawing.ColorWhite
}
