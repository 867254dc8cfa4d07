package donut

import (
	"fmt"
	"github.com/jbeda/geom"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"image"
	"strings"
)

type OpKind int

const (
	OpFillArc OpKind = iota
	OpFillEllipse
	OpFillRect
	OpStrokeRect
	OpTextCentered
	OpText
	OpImage
)

var opNames = [...]string{"fill-arc", "fill-ellipse", "fill-rect", "stroke-rect", "text-centered", "text", "image"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is one recorded draw call. Fields not used by the kind are zero.
type Op struct {
	Kind  OpKind
	Rect  geom.Rect
	Start float64
	Sweep float64
	Color drawing.Color
	Text  string
	Font  FontSpec
	At    geom.Coord
	Image image.Image
}

func (o Op) String() string {
	switch o.Kind {
	case OpFillArc:
		return fmt.Sprintf("%s %s start=%.2f sweep=%.2f %s", o.Kind, rectString(o.Rect), o.Start, o.Sweep, o.Color)
	case OpFillEllipse, OpFillRect, OpStrokeRect:
		return fmt.Sprintf("%s %s %s", o.Kind, rectString(o.Rect), o.Color)
	case OpTextCentered, OpText:
		return fmt.Sprintf("%s %q at (%.2f,%.2f) %s", o.Kind, o.Text, o.At.X, o.At.Y, o.Color)
	default:
		return fmt.Sprintf("%s at (%.2f,%.2f)", o.Kind, o.At.X, o.At.Y)
	}
}

func rectString(r geom.Rect) string {
	return fmt.Sprintf("[%.2f,%.2f %.2fx%.2f]", r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// Recorder is a Surface that keeps every call instead of drawing it.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillArc(rect geom.Rect, startDeg, sweepDeg float64, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillArc, Rect: rect, Start: startDeg, Sweep: sweepDeg, Color: c})
}

func (r *Recorder) FillEllipse(rect geom.Rect, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillEllipse, Rect: rect, Color: c})
}

func (r *Recorder) FillRect(rect geom.Rect, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Color: c})
}

func (r *Recorder) DrawTextCentered(text string, font FontSpec, c drawing.Color, at geom.Coord) {
	r.Ops = append(r.Ops, Op{Kind: OpTextCentered, Text: text, Font: font, Color: c, At: at})
}

func (r *Recorder) DrawText(text string, font FontSpec, c drawing.Color, topLeft geom.Coord) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, Font: font, Color: c, At: topLeft})
}

func (r *Recorder) DrawImage(img image.Image, at geom.Coord) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Image: img, At: at})
}

// Filter returns the recorded calls of one kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, o := range r.Ops {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *Recorder) String() string {
	b := strings.Builder{}
	for _, o := range r.Ops {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}
