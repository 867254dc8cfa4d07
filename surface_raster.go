package donut

import (
	"github.com/jbeda/geom"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
)

// RasterSurface draws anti-aliased shapes into an RGBA image.
type RasterSurface struct {
	img   *image.RGBA
	gc    *drawing.RasterGraphicContext
	fonts Fonts
	// arcs collects the arcs drawn since the last call of another kind, so a
	// transparent hole cuts the ring and leaves the background alone.
	arcs   *image.RGBA
	arcsGC *drawing.RasterGraphicContext
}

func NewRasterSurface(w, h int, fonts Fonts) (*RasterSurface, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, errors.Wrap(err, "raster context")
	}
	return &RasterSurface{img: img, gc: gc, fonts: fonts}, nil
}

// Image returns the finished frame.
func (r *RasterSurface) Image() *image.RGBA {
	r.flush()
	return r.img
}

func (r *RasterSurface) EncodePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, r.Image()), "encode png")
}

// flush composites pending arcs over the frame.
func (r *RasterSurface) flush() {
	if r.arcs == nil {
		return
	}
	draw.Draw(r.img, r.img.Bounds(), r.arcs, r.img.Bounds().Min, draw.Over)
	r.arcs, r.arcsGC = nil, nil
}

func (r *RasterSurface) arcLayer() *drawing.RasterGraphicContext {
	if r.arcsGC != nil {
		return r.arcsGC
	}
	layer := image.NewRGBA(r.img.Bounds())
	gc, err := drawing.NewRasterGraphicContext(layer)
	if err != nil {
		return r.gc
	}
	r.arcs, r.arcsGC = layer, gc
	return gc
}

func (r *RasterSurface) FillArc(rect geom.Rect, startDeg, sweepDeg float64, c drawing.Color) {
	if sweepDeg == 0 {
		return
	}
	cx, cy := (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2
	rx, ry := rect.Width()/2, rect.Height()/2
	gc := r.arcLayer()
	gc.Save()
	defer gc.Restore()
	gc.BeginPath()
	gc.SetFillColor(c)
	if math.Abs(sweepDeg) >= 360 {
		gc.MoveTo(cx+rx, cy)
		gc.ArcTo(cx, cy, rx, ry, 0, 2*math.Pi)
	} else {
		gc.MoveTo(cx, cy)
		gc.ArcTo(cx, cy, rx, ry, degToRads(startDeg), degToRads(sweepDeg))
		gc.LineTo(cx, cy)
	}
	gc.Close()
	gc.Fill()
}

// FillEllipse with a transparent color cuts the ellipse out of the arcs
// drawn since the previous call instead of painting over them.
func (r *RasterSurface) FillEllipse(rect geom.Rect, c drawing.Color) {
	if rect.Width() <= 0 || rect.Height() <= 0 {
		r.flush()
		return
	}
	cx, cy := (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2
	rx, ry := rect.Width()/2, rect.Height()/2
	if c.A == 0 {
		if r.arcs != nil {
			clearEllipse(r.arcs, cx, cy, rx, ry)
		}
		r.flush()
		return
	}
	r.flush()
	r.gc.Save()
	defer r.gc.Restore()
	r.gc.BeginPath()
	r.gc.SetFillColor(c)
	r.gc.MoveTo(cx+rx, cy)
	r.gc.ArcTo(cx, cy, rx, ry, 0, 2*math.Pi)
	r.gc.Close()
	r.gc.Fill()
}

// clearEllipse punches a transparent, anti-aliased hole into img. Filling
// with a transparent color would leave the pixels underneath untouched.
func clearEllipse(img *image.RGBA, cx, cy, rx, ry float64) {
	b := img.Bounds().Intersect(image.Rect(
		int(math.Floor(cx-rx)), int(math.Floor(cy-ry)),
		int(math.Ceil(cx+rx))+1, int(math.Ceil(cy+ry))+1,
	))
	edge := math.Min(rx, ry)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			// distance outside the ellipse edge, in pixels
			d := (math.Sqrt(dx*dx+dy*dy) - 1) * edge
			keep := math.Max(0, math.Min(1, d+0.5))
			if keep >= 1 {
				continue
			}
			i := img.PixOffset(x, y)
			for k := 0; k < 4; k++ {
				img.Pix[i+k] = uint8(math.Round(float64(img.Pix[i+k]) * keep))
			}
		}
	}
}

func (r *RasterSurface) rectPath(rect geom.Rect) {
	r.gc.BeginPath()
	r.gc.MoveTo(rect.Min.X, rect.Min.Y)
	r.gc.LineTo(rect.Max.X, rect.Min.Y)
	r.gc.LineTo(rect.Max.X, rect.Max.Y)
	r.gc.LineTo(rect.Min.X, rect.Max.Y)
	r.gc.Close()
}

func (r *RasterSurface) FillRect(rect geom.Rect, c drawing.Color) {
	r.flush()
	r.gc.Save()
	defer r.gc.Restore()
	r.gc.SetFillColor(c)
	r.rectPath(rect)
	r.gc.Fill()
}

func (r *RasterSurface) StrokeRect(rect geom.Rect, c drawing.Color) {
	r.flush()
	r.gc.Save()
	defer r.gc.Restore()
	r.gc.SetStrokeColor(c)
	r.gc.SetLineWidth(1)
	r.rectPath(rect)
	r.gc.Stroke()
}

func (r *RasterSurface) setFont(spec FontSpec) bool {
	face := r.fonts.Face(spec)
	if face == nil {
		return false
	}
	r.gc.SetFont(face)
	r.gc.SetFontSize(spec.Size)
	return true
}

func (r *RasterSurface) DrawTextCentered(text string, font FontSpec, c drawing.Color, at geom.Coord) {
	r.flush()
	r.gc.Save()
	defer r.gc.Restore()
	if !r.setFont(font) {
		return
	}
	left, top, right, bottom, err := r.gc.GetStringBounds(text)
	if err != nil {
		return
	}
	x := at.X - (left+right)/2
	y := at.Y - (top+bottom)/2
	r.fillString(text, c, x, y)
}

func (r *RasterSurface) DrawText(text string, font FontSpec, c drawing.Color, topLeft geom.Coord) {
	r.flush()
	r.gc.Save()
	defer r.gc.Restore()
	if !r.setFont(font) {
		return
	}
	left, top, _, _, err := r.gc.GetStringBounds(text)
	if err != nil {
		return
	}
	r.fillString(text, c, topLeft.X-left, topLeft.Y-top)
}

// fillString draws text with its baseline starting at x, y.
func (r *RasterSurface) fillString(text string, c drawing.Color, x, y float64) {
	r.gc.BeginPath()
	r.gc.SetFillColor(c)
	if _, err := r.gc.CreateStringPath(text, x, y); err != nil {
		return
	}
	r.gc.Fill()
}

// DrawImage copies img with its top left corner at the nearest pixel to at.
func (r *RasterSurface) DrawImage(img image.Image, at geom.Coord) {
	r.flush()
	b := img.Bounds()
	pt := image.Pt(int(math.Round(at.X)), int(math.Round(at.Y)))
	draw.Draw(r.img, image.Rectangle{Min: pt, Max: pt.Add(b.Size())}, img, b.Min, draw.Over)
}
