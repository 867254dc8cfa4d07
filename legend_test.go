package donut

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWhole(t *testing.T) {
	tests := map[float64]string{
		0:      "0",
		30:     "30",
		2.5:    "3",
		0.5:    "1",
		1.49:   "1",
		-0.4:   "0",
		-2.5:   "-3",
		1234.6: "1235",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatWhole(in), "%v", in)
	}
}

func TestLegendText(t *testing.T) {
	assert.Equal(t, "A: 30 (30%)", LegendText(Slice{Label: "A", Value: 30}, 30))
	assert.Equal(t, "X: 5 (100%)", LegendText(Slice{Label: "X", Value: 5}, 100))
	assert.Equal(t, "third: 1 (33%)", LegendText(Slice{Label: "third", Value: 1}, 100.0/3))
	assert.Equal(t, "neg: -4 (0%)", LegendText(Slice{Label: "neg", Value: -4}, 0))
	assert.Equal(t, "33%", LabelText(100.0/3))

	spans, _ := Partition([]Slice{{Label: "neg", Value: -4}, {Label: "pos", Value: 1}, {Label: "two", Value: 2}})
	assert.Equal(t, "neg: -4 (0%)", LegendText(Slice{Label: "neg", Value: -4}, spans[0].Percent()))
	assert.Equal(t, "pos: 1 (33%)", LegendText(Slice{Label: "pos", Value: 1}, spans[1].Percent()))
	assert.Equal(t, "two: 2 (67%)", LegendText(Slice{Label: "two", Value: 2}, spans[2].Percent()))
}

func TestLegendRows(t *testing.T) {
	l := DefaultLayout()
	sl := values(30, 70)
	spans, _ := Partition(sl)
	rows := l.LegendRows(480, 20, sl, spans)
	require.Len(t, rows, 2)

	assert.Equal(t, geom.Rect{Min: geom.Coord{X: 320, Y: 20}, Max: geom.Coord{X: 330, Y: 30}}, rows[0].Swatch)
	assert.Equal(t, geom.Coord{X: 334, Y: 19}, rows[0].TextOrigin)
	assert.Equal(t, "A: 30 (30%)", rows[0].Text)

	assert.Equal(t, 40.0, rows[1].Swatch.Min.Y)
	assert.Equal(t, geom.Coord{X: 334, Y: 39}, rows[1].TextOrigin)
	assert.Equal(t, "B: 70 (70%)", rows[1].Text)
}

func TestLegendRowsDoNotWrap(t *testing.T) {
	l := DefaultLayout()
	sl := make([]Slice, 50)
	for i := range sl {
		sl[i] = Slice{Label: "s", Value: 1}
	}
	spans, _ := Partition(sl)
	rows := l.LegendRows(300, 20, sl, spans)
	require.Len(t, rows, 50)
	last := rows[len(rows)-1]
	assert.Equal(t, 140.0, last.Swatch.Min.X)
	assert.Equal(t, 20.0+49*20, last.Swatch.Min.Y)
}

func TestLegendRowsWithoutSpans(t *testing.T) {
	rows := DefaultLayout().LegendRows(480, 20, values(1, 2), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "A: 1 (0%)", rows[0].Text)
}
