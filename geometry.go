package donut

import (
	"github.com/jbeda/geom"
	"math"
)

// Layout holds the fixed spacing of the chart, in drawing units.
type Layout struct {
	// Margin surrounds the ring on every side.
	Margin int
	// LegendWidth is reserved to the right of the ring.
	LegendWidth int
	// LegendOffset places the legend column this far left of the right edge.
	LegendOffset int
	RowHeight    int
	Swatch       int
	// TextGap separates a swatch from its legend text.
	TextGap int
}

func DefaultLayout() Layout {
	return Layout{
		Margin:       20,
		LegendWidth:  140,
		LegendOffset: 160,
		RowHeight:    20,
		Swatch:       10,
		TextGap:      4,
	}
}

// Geometry is everything the renderer needs to place the ring for one frame.
type Geometry struct {
	Side        int
	Outer       geom.Rect
	Inner       geom.Rect
	Center      geom.Coord
	OuterRadius float64
	InnerRadius float64
	// LabelRadius lies halfway between the outer edge and the hole.
	LabelRadius float64
	Anchors     []geom.Coord
}

// Compute lays out the ring on a w by h canvas. ok is false when the space
// left after margins and legend is empty, in which case nothing is drawn.
func (l Layout) Compute(w, h int, thickness float64, spans []Span) (g Geometry, ok bool) {
	availW := w - l.Margin - (l.Margin + l.LegendWidth)
	availH := h - 2*l.Margin
	side := availW
	if availH < side {
		side = availH
	}
	if side <= 0 {
		return Geometry{}, false
	}

	x := l.Margin
	y := l.Margin
	if availH > side {
		y += (availH - side) / 2
	}
	g.Side = side
	g.Outer = geom.Rect{
		Min: geom.Coord{X: float64(x), Y: float64(y)},
		Max: geom.Coord{X: float64(x + side), Y: float64(y + side)},
	}

	inset := float64(side) * ClampThickness(thickness)
	g.Inner = geom.Rect{
		Min: geom.Coord{X: g.Outer.Min.X + inset, Y: g.Outer.Min.Y + inset},
		Max: geom.Coord{X: g.Outer.Max.X - inset, Y: g.Outer.Max.Y - inset},
	}

	g.OuterRadius = float64(side) / 2
	g.InnerRadius = g.Inner.Width() / 2
	g.LabelRadius = (g.OuterRadius + g.InnerRadius) / 2
	g.Center = geom.Coord{X: g.Outer.Min.X + g.OuterRadius, Y: g.Outer.Min.Y + g.OuterRadius}

	g.Anchors = make([]geom.Coord, len(spans))
	for i, span := range spans {
		g.Anchors[i] = PolarPoint(g.Center, g.LabelRadius, span.Mid())
	}
	return g, true
}

func degToRads(deg float64) float64 {
	return deg * math.Pi / 180
}

// PolarPoint returns the point at radius r and angle deg (clockwise from
// 3 o'clock, y growing downwards) around c.
func PolarPoint(c geom.Coord, r, deg float64) geom.Coord {
	rad := degToRads(deg)
	return geom.Coord{
		X: c.X + r*math.Cos(rad),
		Y: c.Y + r*math.Sin(rad),
	}
}
