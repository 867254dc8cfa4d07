package donut

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"
)

const svgFontFamily = "Segoe UI, Go, sans-serif"

type svgPath struct {
	d     string
	style string
}

// SVGSurface writes the chart as an SVG document. Close must be called to
// finish the document.
type SVGSurface struct {
	canvas *svg.SVG
	width  int
	height int
	closed bool
	masks  int
	// arcs are held back until the next call of another kind, so a
	// transparent hole can still mask them.
	arcs []svgPath
}

func NewSVGSurface(w io.Writer, width, height int) *SVGSurface {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVGSurface{canvas: canvas, width: width, height: height}
}

func (s *SVGSurface) Close() error {
	if s.closed {
		return nil
	}
	s.flush()
	s.closed = true
	s.canvas.End()
	return nil
}

func (s *SVGSurface) flush() {
	for _, a := range s.arcs {
		s.canvas.Path(a.d, a.style)
	}
	s.arcs = s.arcs[:0]
}

func f64s(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fillStyle(c drawing.Color) string {
	st := fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
	if c.A < 255 {
		st += ";fill-opacity:" + f64s(float64(c.A)/255)
	}
	return st
}

func strokeStyle(c drawing.Color) string {
	st := fmt.Sprintf("fill:none;stroke-width:1;stroke:rgb(%d,%d,%d)", c.R, c.G, c.B)
	if c.A < 255 {
		st += ";stroke-opacity:" + f64s(float64(c.A)/255)
	}
	return st
}

func fontStyle(font FontSpec, c drawing.Color) string {
	weight := "normal"
	if font.Bold {
		weight = "bold"
	}
	// points at 96dpi, the scale the raster surface uses
	px := font.Size * 96 / 72
	return fmt.Sprintf("font-family:%s;font-size:%spx;font-weight:%s;%s", svgFontFamily, f64s(px), weight, fillStyle(c))
}

func (s *SVGSurface) FillArc(rect geom.Rect, startDeg, sweepDeg float64, c drawing.Color) {
	if sweepDeg == 0 {
		return
	}
	cx, cy := (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2
	rx, ry := rect.Width()/2, rect.Height()/2
	if math.Abs(sweepDeg) >= 360 {
		s.arcs = append(s.arcs, svgPath{d: ellipsePath(cx, cy, rx, ry), style: fillStyle(c)})
		return
	}
	start, end := degToRads(startDeg), degToRads(startDeg+sweepDeg)
	large, sweep := "0", "1"
	if math.Abs(sweepDeg) > 180 {
		large = "1"
	}
	if sweepDeg < 0 {
		sweep = "0"
	}
	d := strings.Join([]string{
		"M", f64s(cx), f64s(cy),
		"L", f64s(cx + rx*math.Cos(start)), f64s(cy + ry*math.Sin(start)),
		"A", f64s(rx), f64s(ry), "0", large, sweep, f64s(cx + rx*math.Cos(end)), f64s(cy + ry*math.Sin(end)),
		"Z",
	}, " ")
	s.arcs = append(s.arcs, svgPath{d: d, style: fillStyle(c)})
}

// ellipsePath draws a full ellipse as two half arcs, a single arc with equal
// end points renders nothing.
func ellipsePath(cx, cy, rx, ry float64) string {
	return strings.Join([]string{
		"M", f64s(cx + rx), f64s(cy),
		"A", f64s(rx), f64s(ry), "0", "1", "1", f64s(cx - rx), f64s(cy),
		"A", f64s(rx), f64s(ry), "0", "1", "1", f64s(cx + rx), f64s(cy),
		"Z",
	}, " ")
}

// FillEllipse with a transparent color cuts the ellipse out of the arcs
// drawn since the previous call instead of painting over them.
func (s *SVGSurface) FillEllipse(rect geom.Rect, c drawing.Color) {
	if rect.Width() <= 0 || rect.Height() <= 0 {
		s.flush()
		return
	}
	cx, cy := (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2
	hole := ellipsePath(cx, cy, rect.Width()/2, rect.Height()/2)
	if c.A > 0 || len(s.arcs) == 0 {
		s.flush()
		if c.A > 0 {
			s.canvas.Path(hole, fillStyle(c))
		}
		return
	}

	s.masks++
	id := fmt.Sprintf("donut-hole-%d", s.masks)
	s.canvas.Def()
	s.canvas.Mask(id, 0, 0, s.width, s.height, `maskUnits="userSpaceOnUse"`)
	s.canvas.Rect(0, 0, s.width, s.height, "fill:white")
	s.canvas.Path(hole, "fill:black")
	s.canvas.MaskEnd()
	s.canvas.DefEnd()
	s.canvas.Group(fmt.Sprintf(`mask="url(#%s)"`, id))
	s.flush()
	s.canvas.Gend()
}

func rectPath(rect geom.Rect) string {
	return strings.Join([]string{
		"M", f64s(rect.Min.X), f64s(rect.Min.Y),
		"H", f64s(rect.Max.X),
		"V", f64s(rect.Max.Y),
		"H", f64s(rect.Min.X),
		"Z",
	}, " ")
}

func (s *SVGSurface) FillRect(rect geom.Rect, c drawing.Color) {
	s.flush()
	s.canvas.Path(rectPath(rect), fillStyle(c))
}

func (s *SVGSurface) StrokeRect(rect geom.Rect, c drawing.Color) {
	s.flush()
	s.canvas.Path(rectPath(rect), strokeStyle(c))
}

func (s *SVGSurface) DrawTextCentered(text string, font FontSpec, c drawing.Color, at geom.Coord) {
	s.flush()
	s.canvas.Text(int(math.Round(at.X)), int(math.Round(at.Y)), text,
		fontStyle(font, c)+";text-anchor:middle;dominant-baseline:central")
}

func (s *SVGSurface) DrawText(text string, font FontSpec, c drawing.Color, topLeft geom.Coord) {
	s.flush()
	s.canvas.Text(int(math.Round(topLeft.X)), int(math.Round(topLeft.Y)), text,
		fontStyle(font, c)+";dominant-baseline:hanging")
}

// DrawImage embeds img as a PNG data URI.
func (s *SVGSurface) DrawImage(img image.Image, at geom.Coord) {
	s.flush()
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		return
	}
	b := img.Bounds()
	s.canvas.Image(int(math.Round(at.X)), int(math.Round(at.Y)), b.Dx(), b.Dy(),
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(buf.Bytes()))
}
