package donut

import (
	"fmt"
	"github.com/jbeda/geom"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"math"
	"strconv"
)

var (
	LegendOutlineColor = drawing.Color{R: 128, G: 128, B: 128, A: 255}
	LegendTextColor    = drawing.ColorBlack
)

// LegendRow is one swatch and its caption.
type LegendRow struct {
	Swatch geom.Rect
	Color  drawing.Color
	Text   string
	// TextOrigin is the top left corner of the caption.
	TextOrigin geom.Coord
}

// FormatWhole rounds half away from zero for display.
func FormatWhole(v float64) string {
	r := math.Round(v)
	if r == 0 {
		// drop the sign of negative zero
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// LegendText renders "{label}: {value} ({percent}%)".
func LegendText(s Slice, pct float64) string {
	return fmt.Sprintf("%s: %s (%s%%)", s.Label, FormatWhole(s.Value), FormatWhole(pct))
}

// LabelText is the percentage drawn on the ring itself.
func LabelText(pct float64) string {
	return FormatWhole(pct) + "%"
}

// LegendRows stacks one row per slice in a column anchored LegendOffset units
// from the right edge, starting level with the top of the ring. Rows never
// wrap; anything below the canvas is clipped by the surface. spans come from
// Partition on the same slices.
func (l Layout) LegendRows(canvasW int, top float64, slices []Slice, spans []Span) []LegendRow {
	rows := make([]LegendRow, len(slices))
	x := float64(canvasW - l.LegendOffset)
	for i, s := range slices {
		var pct float64
		if i < len(spans) {
			pct = spans[i].Percent()
		}
		y := top + float64(i*l.RowHeight)
		box := geom.Rect{
			Min: geom.Coord{X: x, Y: y},
			Max: geom.Coord{X: x + float64(l.Swatch), Y: y + float64(l.Swatch)},
		}
		rows[i] = LegendRow{
			Swatch:     box,
			Color:      s.Color,
			Text:       LegendText(s, pct),
			TextOrigin: geom.Coord{X: box.Max.X + float64(l.TextGap), Y: box.Min.Y - 1},
		}
	}
	return rows
}
