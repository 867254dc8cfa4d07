package donut

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
	"image"
)

//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks

// BackgroundSource supplies what sits behind the chart, so the ring can look
// like it floats over it. Either result may be absent.
type BackgroundSource interface {
	BackgroundColor() (drawing.Color, bool)
	// BackgroundImage returns a snapshot of the area behind the chart,
	// aligned with the chart's own origin, or nil.
	BackgroundImage() image.Image
}

// Environment answers questions about the host the chart lives in.
type Environment interface {
	IsDesignTimePreview() bool
	// ResolvedBackgroundColor is the container's background, if known.
	ResolvedBackgroundColor() (drawing.Color, bool)
}

// StaticBackground is a BackgroundSource with fixed answers.
type StaticBackground struct {
	Color drawing.Color
	Image image.Image
}

func (s StaticBackground) BackgroundColor() (drawing.Color, bool) {
	return s.Color, s.Color != (drawing.Color{})
}

func (s StaticBackground) BackgroundImage() image.Image {
	return s.Image
}

// StaticEnvironment is an Environment with fixed answers.
type StaticEnvironment struct {
	DesignTime bool
	Background drawing.Color
}

func (e StaticEnvironment) IsDesignTimePreview() bool {
	return e.DesignTime
}

func (e StaticEnvironment) ResolvedBackgroundColor() (drawing.Color, bool) {
	return e.Background, e.Background != (drawing.Color{})
}

// HoleColor resolves the color the hole is filled with: the background source
// first, then the host container, then the chart's own background.
func HoleColor(snap Snapshot) drawing.Color {
	if snap.Source != nil {
		if c, ok := snap.Source.BackgroundColor(); ok {
			return c
		}
	}
	if snap.Env != nil {
		if c, ok := snap.Env.ResolvedBackgroundColor(); ok {
			return c
		}
	}
	return snap.Background
}
