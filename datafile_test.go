package donut

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want drawing.Color
	}{
		{"", drawing.Color{}},
		{"#ff0000", drawing.Color{R: 255, A: 255}},
		{"#00F", drawing.Color{B: 255, A: 255}},
		{"  #ffffff ", drawing.Color{R: 255, G: 255, B: 255, A: 255}},
		{"transparent", drawing.ColorTransparent},
		{"none", drawing.ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"red", "#12", "#12345g", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDataJSON(t *testing.T) {
	df, err := ParseData("chart.json", []byte(`{
		"thickness": 0.25,
		"background": "#ffffff",
		"slices": [
			{"label": "A", "value": 30, "color": "#ff0000"},
			{"label": "B", "value": 70}
		]
	}`))
	require.NoError(t, err)
	require.NotNil(t, df.Thickness)
	assert.Equal(t, 0.25, *df.Thickness)
	assert.Equal(t, "#ffffff", df.Background)
	require.Len(t, df.Slices, 2)
	assert.Equal(t, SliceEntry{Label: "A", Value: 30, Color: "#ff0000"}, df.Slices[0])
}

func TestParseDataYAML(t *testing.T) {
	df, err := ParseData("chart.YML", []byte(`
slices:
  - label: A
    value: 30
  - label: B
    value: 70
    color: "#00ff00"
`))
	require.NoError(t, err)
	assert.Nil(t, df.Thickness)
	require.Len(t, df.Slices, 2)
	assert.Equal(t, "#00ff00", df.Slices[1].Color)
}

func TestParseDataErrors(t *testing.T) {
	_, err := ParseData("chart.json", []byte(`{"slices": [`))
	assert.ErrorContains(t, err, "decode json chart.json")

	_, err = ParseData("chart.yaml", []byte("slices: [1, 2"))
	assert.ErrorContains(t, err, "decode yaml chart.yaml")
}

func TestToSlices(t *testing.T) {
	df := &DataFile{Slices: []SliceEntry{
		{Label: "A", Value: 1, Color: "#ff0000"},
		{Label: "B", Value: 2},
	}}
	slices, err := df.ToSlices()
	require.NoError(t, err)
	assert.Equal(t, drawing.Color{R: 255, A: 255}, slices[0].Color)
	assert.Equal(t, SlicePalette{}.GetSeriesColor(1), slices[1].Color)

	df.Slices[1].Value = -2
	_, err = df.ToSlices()
	assert.ErrorIs(t, err, ErrNegativeValue)

	df.Slices[1] = SliceEntry{Label: "B", Value: 2, Color: "blue"}
	_, err = df.ToSlices()
	assert.ErrorContains(t, err, `slice 1 ("B")`)
}

func TestApply(t *testing.T) {
	thick := 0.9
	df := &DataFile{Thickness: &thick, Background: "#000000", Slices: []SliceEntry{{Label: "A", Value: 3}}}
	c := NewChart()
	require.NoError(t, df.Apply(c))

	assert.Equal(t, MaxThicknessRatio, c.ThicknessRatio())
	assert.Equal(t, drawing.ColorBlack, c.BackgroundColor())
	require.Len(t, c.Slices(), 1)
	assert.Equal(t, "A", c.Slices()[0].Label)

	// unset fields leave the chart alone
	c.SetThicknessRatio(0.2)
	require.NoError(t, (&DataFile{Slices: []SliceEntry{{Label: "B", Value: 1}}}).Apply(c))
	assert.Equal(t, 0.2, c.ThicknessRatio())
	assert.Equal(t, drawing.ColorBlack, c.BackgroundColor())
}

func TestApplyRejectsBadFileWithoutChanges(t *testing.T) {
	c := NewChart(values(1)...)
	df := &DataFile{Slices: []SliceEntry{{Label: "bad", Value: -1}}}
	assert.Error(t, df.Apply(c))
	assert.Equal(t, "A", c.Slices()[0].Label)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slices:\n  - {label: A, value: 5}\n"), 0644))

	df, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []SliceEntry{{Label: "A", Value: 5}}, df.Slices)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
