package donut

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"math"
	"sync"
)

const (
	DefaultThicknessRatio = 0.3
	MaxThicknessRatio     = 0.5
)

var ErrNegativeValue = errors.New("slice value is negative")

// Slice is one labeled, colored segment of the chart. Its identity is its
// position in the chart's slice list.
type Slice struct {
	Label string
	Value float64
	Color drawing.Color
}

// NewSlice returns the placeholder slice a freshly added row starts with.
func NewSlice() Slice {
	return Slice{
		Label: "New Slice",
		Value: 10,
		Color: drawing.Color{R: 128, G: 128, B: 128, A: 255},
	}
}

func (s Slice) String() string {
	return fmt.Sprintf("%s (%.0f)", s.Label, s.Value)
}

// ClampThickness keeps a thickness ratio inside [0, 0.5].
func ClampThickness(r float64) float64 {
	if math.IsNaN(r) {
		return 0
	}
	return math.Max(0, math.Min(MaxThicknessRatio, r))
}

// Snapshot is an immutable copy of a chart's configuration taken at the start
// of a render.
type Snapshot struct {
	Slices         []Slice
	ThicknessRatio float64
	Background     drawing.Color
	Source         BackgroundSource
	Env            Environment
}

// Chart holds the configuration a host renders from. Every setter notifies
// subscribers so the host can schedule a repaint.
type Chart struct {
	mux        sync.RWMutex
	slices     []Slice
	thickness  float64
	background drawing.Color
	source     BackgroundSource
	env        Environment

	subMux sync.Mutex
	subs   map[int]func()
	nextID int
}

func NewChart(slices ...Slice) *Chart {
	c := &Chart{
		thickness: DefaultThicknessRatio,
		subs:      make(map[int]func()),
	}
	c.slices = copySlices(slices)
	return c
}

func copySlices(in []Slice) []Slice {
	out := make([]Slice, len(in))
	copy(out, in)
	return out
}

// Subscribe registers fn to be called after every configuration change. The
// returned func removes the subscription.
func (c *Chart) Subscribe(fn func()) (cancel func()) {
	c.subMux.Lock()
	defer c.subMux.Unlock()
	if c.subs == nil {
		c.subs = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.subMux.Lock()
		delete(c.subs, id)
		c.subMux.Unlock()
	}
}

func (c *Chart) invalidate() {
	c.subMux.Lock()
	fns := make([]func(), 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.subMux.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (c *Chart) Slices() []Slice {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return copySlices(c.slices)
}

// SetSlices replaces the slice list. A nil list is stored as empty.
func (c *Chart) SetSlices(slices []Slice) {
	c.mux.Lock()
	c.slices = copySlices(slices)
	c.mux.Unlock()
	c.invalidate()
}

func (c *Chart) ThicknessRatio() float64 {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.thickness
}

// SetThicknessRatio stores r clamped to [0, 0.5]. Out of range values are
// never rejected.
func (c *Chart) SetThicknessRatio(r float64) {
	c.mux.Lock()
	c.thickness = ClampThickness(r)
	c.mux.Unlock()
	c.invalidate()
}

func (c *Chart) BackgroundColor() drawing.Color {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.background
}

func (c *Chart) SetBackgroundColor(bg drawing.Color) {
	c.mux.Lock()
	c.background = bg
	c.mux.Unlock()
	c.invalidate()
}

func (c *Chart) SetBackgroundSource(src BackgroundSource) {
	c.mux.Lock()
	c.source = src
	c.mux.Unlock()
	c.invalidate()
}

func (c *Chart) SetEnvironment(env Environment) {
	c.mux.Lock()
	c.env = env
	c.mux.Unlock()
	c.invalidate()
}

// Validate reports the first slice with a negative value. Rendering does not
// require a valid chart, negative values are drawn as empty slices.
func (c *Chart) Validate() error {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return validateSlices(c.slices)
}

func validateSlices(slices []Slice) error {
	for i, s := range slices {
		if s.Value < 0 || math.IsNaN(s.Value) {
			return errors.Wrapf(ErrNegativeValue, "slice %d (%q): %v", i, s.Label, s.Value)
		}
	}
	return nil
}

func (c *Chart) Snapshot() Snapshot {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return Snapshot{
		Slices:         copySlices(c.slices),
		ThicknessRatio: c.thickness,
		Background:     c.background,
		Source:         c.source,
		Env:            c.env,
	}
}

// Render draws the current configuration with a default renderer.
func (c *Chart) Render(s Surface, w, h int) Stats {
	return NewRenderer().Render(s, w, h, c.Snapshot())
}
