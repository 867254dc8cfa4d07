package donut

import (
	"github.com/jbeda/geom"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

// Renderer turns a configuration snapshot into draw calls. It keeps no state
// between frames and is safe to share.
type Renderer struct {
	layout    Layout
	labelFont FontSpec
	legend    FontSpec
	legendInk drawing.Color
	log       *zap.Logger
}

type RendererOption func(*Renderer)

func WithLayout(l Layout) RendererOption {
	return func(r *Renderer) {
		r.layout = l
	}
}

func WithFontSize(size float64) RendererOption {
	return func(r *Renderer) {
		r.labelFont.Size = size
		r.legend.Size = size
	}
}

// WithLegendTextColor changes the legend caption color, black by default.
func WithLegendTextColor(c drawing.Color) RendererOption {
	return func(r *Renderer) {
		r.legendInk = c
	}
}

// WithLogger enables debug logging of each frame. A nil logger disables it.
func WithLogger(l *zap.Logger) RendererOption {
	return func(r *Renderer) {
		if l == nil {
			l = zap.NewNop()
		}
		r.log = l
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		layout:    DefaultLayout(),
		labelFont: FontSpec{Size: DefaultFontSize, Bold: true},
		legend:    FontSpec{Size: DefaultFontSize, Bold: true},
		legendInk: LegendTextColor,
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// Stats summarises a frame.
type Stats struct {
	Slices int
	Total  float64
	Side   int
	Drawn  bool
}

// Render draws snap onto s, sized w by h. Empty charts, non-positive totals
// and canvases too small for the ring produce no draw calls at all.
func (r *Renderer) Render(s Surface, w, h int, snap Snapshot) Stats {
	stats := Stats{Slices: len(snap.Slices)}
	spans, total := Partition(snap.Slices)
	stats.Total = total
	if spans == nil {
		r.log.Debug("nothing to draw", zap.Int("slices", stats.Slices), zap.Float64("total", total))
		return stats
	}
	g, ok := r.layout.Compute(w, h, snap.ThicknessRatio, spans)
	if !ok {
		r.log.Debug("canvas too small", zap.Int("width", w), zap.Int("height", h))
		return stats
	}
	stats.Side = g.Side

	r.drawBackground(s, w, h, snap)

	for i, span := range spans {
		s.FillArc(g.Outer, span.Start, span.Sweep, snap.Slices[i].Color)
	}

	s.FillEllipse(g.Inner, HoleColor(snap))

	for i, span := range spans {
		if span.Sweep == 0 {
			continue
		}
		sl := snap.Slices[i]
		s.DrawTextCentered(LabelText(span.Percent()), r.labelFont, ContrastColor(sl.Color), g.Anchors[i])
	}

	for _, row := range r.layout.LegendRows(w, g.Outer.Min.Y, snap.Slices, spans) {
		s.FillRect(row.Swatch, row.Color)
		s.StrokeRect(row.Swatch, LegendOutlineColor)
		s.DrawText(row.Text, r.legend, r.legendInk, row.TextOrigin)
	}

	stats.Drawn = true
	r.log.Debug("rendered",
		zap.Int("slices", stats.Slices),
		zap.Float64("total", total),
		zap.Int("side", g.Side),
		zap.Float64("thickness", snap.ThicknessRatio),
	)
	return stats
}

// drawBackground paints what sits behind the ring. In a design time preview
// the plain background is used, the host snapshot is only taken at runtime.
func (r *Renderer) drawBackground(s Surface, w, h int, snap Snapshot) {
	canvas := geom.Rect{Max: geom.Coord{X: float64(w), Y: float64(h)}}
	designTime := snap.Env != nil && snap.Env.IsDesignTimePreview()
	if !designTime && snap.Source != nil && snap.Background.A == 0 {
		if img := snap.Source.BackgroundImage(); img != nil {
			s.DrawImage(img, geom.Coord{})
			return
		}
	}
	if snap.Background.A > 0 {
		s.FillRect(canvas, snap.Background)
	}
}
