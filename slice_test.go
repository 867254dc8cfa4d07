package donut

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestThicknessClamp(t *testing.T) {
	c := NewChart()
	assert.Equal(t, DefaultThicknessRatio, c.ThicknessRatio())
	for in, want := range map[float64]float64{-1: 0, 0.7: 0.5, 0.3: 0.3, 0.5: 0.5, 0: 0} {
		c.SetThicknessRatio(in)
		assert.Equal(t, want, c.ThicknessRatio(), "%v", in)
	}
}

func TestSetSlicesNormalizesNil(t *testing.T) {
	c := NewChart(values(1, 2)...)
	c.SetSlices(nil)
	got := c.Slices()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSlicesAreCopied(t *testing.T) {
	in := values(1, 2)
	c := NewChart(in...)
	in[0].Value = 99
	assert.Equal(t, 1.0, c.Slices()[0].Value)

	out := c.Slices()
	out[1].Label = "changed"
	assert.Equal(t, "B", c.Snapshot().Slices[1].Label)
}

func TestSubscribe(t *testing.T) {
	c := NewChart()
	var calls int
	cancel := c.Subscribe(func() { calls++ })

	c.SetSlices(values(1))
	c.SetThicknessRatio(0.2)
	c.SetBackgroundColor(drawing.ColorWhite)
	c.SetBackgroundSource(StaticBackground{})
	c.SetEnvironment(StaticEnvironment{})
	assert.Equal(t, 5, calls)

	cancel()
	c.SetThicknessRatio(0.1)
	assert.Equal(t, 5, calls)
}

func TestSubscribersRunInOrder(t *testing.T) {
	c := NewChart()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		c.Subscribe(func() { order = append(order, i) })
	}
	c.SetThicknessRatio(0.4)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestSubscriberMayReadChart(t *testing.T) {
	c := NewChart()
	var seen float64
	c.Subscribe(func() { seen = c.ThicknessRatio() })
	c.SetThicknessRatio(0.45)
	assert.Equal(t, 0.45, seen)
}

func TestValidate(t *testing.T) {
	c := NewChart(values(1, 2)...)
	require.NoError(t, c.Validate())

	c.SetSlices(values(1, -2))
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeValue)
	assert.Contains(t, err.Error(), `slice 1 ("B")`)
}

func TestNewSlice(t *testing.T) {
	s := NewSlice()
	assert.Equal(t, "New Slice (10)", s.String())
	assert.Equal(t, uint8(255), s.Color.A)
}

func TestConcurrentMutationAndRender(t *testing.T) {
	c := NewChart(values(1, 2, 3)...)
	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.SetThicknessRatio(float64(i%6) / 10)
			c.SetSlices(values(float64(i), 1))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.Render(&Recorder{}, 480, 320)
		}
	}()
	wg.Wait()
}
