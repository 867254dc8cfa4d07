package donut

import (
	"github.com/jbeda/geom"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"image"
)

// FontSpec describes the text style of a draw call. Surfaces map it onto the
// faces they have loaded.
type FontSpec struct {
	Size float64
	Bold bool
}

// Surface is the 2D drawing target a chart renders onto. Angles are in
// degrees, clockwise, with 0 at 3 o'clock. Everything drawn outside the
// surface bounds is clipped.
type Surface interface {
	FillArc(rect geom.Rect, startDeg, sweepDeg float64, c drawing.Color)
	FillEllipse(rect geom.Rect, c drawing.Color)
	FillRect(rect geom.Rect, c drawing.Color)
	StrokeRect(rect geom.Rect, c drawing.Color)
	// DrawTextCentered centers text horizontally and vertically on at.
	DrawTextCentered(text string, font FontSpec, c drawing.Color, at geom.Coord)
	// DrawText places the top left corner of text at topLeft.
	DrawText(text string, font FontSpec, c drawing.Color, topLeft geom.Coord)
	DrawImage(img image.Image, at geom.Coord)
}
