package donut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		name string
		bg   drawing.Color
		want drawing.Color
	}{
		{"white", drawing.Color{R: 255, G: 255, B: 255, A: 255}, drawing.ColorBlack},
		{"black", drawing.Color{A: 255}, drawing.ColorWhite},
		{"mid gray", drawing.Color{R: 128, G: 128, B: 128, A: 255}, drawing.ColorBlack},
		{"dark gray", drawing.Color{R: 127, G: 127, B: 127, A: 255}, drawing.ColorWhite},
		{"red", drawing.Color{R: 255, A: 255}, drawing.ColorWhite},
		{"green", drawing.Color{G: 255, A: 255}, drawing.ColorBlack},
		{"blue", drawing.Color{B: 255, A: 255}, drawing.ColorWhite},
		{"yellow", drawing.Color{R: 255, G: 255, A: 255}, drawing.ColorBlack},
		{"alpha is ignored", drawing.Color{R: 255, G: 255, B: 255}, drawing.ColorBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContrastColor(tt.bg))
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0.50196, Luminance(drawing.Color{R: 128, G: 128, B: 128}), 1e-5)
	assert.Equal(t, 0.0, Luminance(drawing.Color{}))
	assert.InDelta(t, 1.0, Luminance(drawing.Color{R: 255, G: 255, B: 255}), 1e-9)
}
