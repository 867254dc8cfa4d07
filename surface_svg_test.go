package donut

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func renderSVG(t *testing.T, snap Snapshot) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	s := NewSVGSurface(buf, 480, 320)
	NewRenderer().Render(s, 480, 320, snap)
	require.NoError(t, s.Close())
	return buf.String()
}

func TestSVGTransparentHoleMasksRing(t *testing.T) {
	out := renderSVG(t, Snapshot{Slices: redBlue(), ThicknessRatio: 0.3})

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `<mask id="donut-hole-1"`)
	assert.Contains(t, out, `mask="url(#donut-hole-1)"`)
	assert.Contains(t, out, "fill:rgb(255,0,0)")
	assert.Contains(t, out, "fill:rgb(0,0,255)")
	assert.Contains(t, out, ">30%<")
	assert.Contains(t, out, ">A: 30 (30%)<")
	assert.Contains(t, out, ">B: 70 (70%)<")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	// arcs sit inside the masked group, before the labels
	group := strings.Index(out, `mask="url(#donut-hole-1)"`)
	arc := strings.Index(out, "fill:rgb(255,0,0)")
	label := strings.Index(out, ">30%<")
	assert.Less(t, group, arc)
	assert.Less(t, arc, label)
}

func TestSVGHoleKeepsBackgroundSnapshot(t *testing.T) {
	out := renderSVG(t, Snapshot{
		Slices:         redBlue(),
		ThicknessRatio: 0.3,
		Source:         StaticBackground{Image: image.NewRGBA(image.Rect(0, 0, 480, 320))},
	})

	// the snapshot sits outside the masked group
	img := strings.Index(out, "<image")
	group := strings.Index(out, `mask="url(#donut-hole-1)"`)
	require.NotEqual(t, -1, img)
	require.NotEqual(t, -1, group)
	assert.Less(t, img, group)
}

func TestSVGOpaqueHole(t *testing.T) {
	out := renderSVG(t, Snapshot{Slices: redBlue(), ThicknessRatio: 0.3, Background: drawing.ColorWhite})

	assert.NotContains(t, out, "<mask")
	assert.Contains(t, out, "fill:rgb(255,255,255)")
}

func TestSVGEmptyChart(t *testing.T) {
	out := renderSVG(t, Snapshot{})

	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "<path")
	assert.NotContains(t, out, "<text")
}

func TestSVGCloseTwice(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	s := NewSVGSurface(buf, 10, 10)
	require.NoError(t, s.Close())
	n := buf.Len()
	require.NoError(t, s.Close())
	assert.Equal(t, n, buf.Len())
}

func TestSVGFullCircle(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	s := NewSVGSurface(buf, 100, 100)
	s.FillArc(geom.Rect{Max: geom.Coord{X: 100, Y: 100}}, -90, 360, drawing.ColorBlack)
	require.NoError(t, s.Close())

	// two half arcs, a single arc back to its start point draws nothing
	assert.Contains(t, buf.String(), "M 100 50 A 50 50 0 1 1 0 50 A 50 50 0 1 1 100 50 Z")
}

func TestSVGArcFlags(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	s := NewSVGSurface(buf, 100, 100)
	rect := geom.Rect{Max: geom.Coord{X: 100, Y: 100}}
	s.FillArc(rect, 0, 90, drawing.ColorBlack)
	s.FillArc(rect, 90, 270, drawing.ColorWhite)
	require.NoError(t, s.Close())
	out := buf.String()

	assert.Contains(t, out, "M 50 50 L 100 50 A 50 50 0 0 1 ")
	assert.Contains(t, out, " A 50 50 0 1 1 ")
}

func TestSVGImage(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	s := NewSVGSurface(buf, 10, 10)
	s.DrawImage(image.NewRGBA(image.Rect(0, 0, 4, 3)), geom.Coord{})
	require.NoError(t, s.Close())

	assert.Contains(t, buf.String(), "data:image/png;base64,")
	assert.Contains(t, buf.String(), `width="4"`)
}
