package donut

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// SlicePalette hands out slice colors. It satisfies chart.ColorPalette so the
// same palette can drive go-chart graphs drawn next to a donut.
type SlicePalette struct {
	Background drawing.Color
}

var _ chart.ColorPalette = SlicePalette{}

func (p SlicePalette) BackgroundColor() drawing.Color {
	return p.Background
}

func (p SlicePalette) BackgroundStrokeColor() drawing.Color {
	return chart.ColorTransparent
}

func (p SlicePalette) CanvasColor() drawing.Color {
	return p.Background
}

func (p SlicePalette) CanvasStrokeColor() drawing.Color {
	return chart.ColorTransparent
}

func (p SlicePalette) AxisStrokeColor() drawing.Color {
	return chart.ColorTransparent
}

// TextColor contrasts with the palette background, black on transparent.
func (p SlicePalette) TextColor() drawing.Color {
	if p.Background.A == 0 {
		return drawing.ColorBlack
	}
	return ContrastColor(p.Background)
}

func (p SlicePalette) GetSeriesColor(index int) drawing.Color {
	c := chart.GetAlternateColor(index)
	c.A = 255
	return c
}

// FillColors gives every slice without a color one from the palette, by
// position.
func (p SlicePalette) FillColors(slices []Slice) []Slice {
	out := copySlices(slices)
	for i := range out {
		if out[i].Color == (drawing.Color{}) {
			out[i].Color = p.GetSeriesColor(i)
		}
	}
	return out
}
