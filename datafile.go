package donut

import (
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

// SliceEntry is one slice as written in a data file.
type SliceEntry struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// DataFile is the on-disk description of a chart, JSON or YAML.
type DataFile struct {
	Thickness  *float64     `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Background string       `json:"background,omitempty" yaml:"background,omitempty"`
	Slices     []SliceEntry `json:"slices" yaml:"slices"`
}

// ParseColor accepts "#rgb", "#rrggbb" and "transparent". An empty string is
// the zero color.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return drawing.Color{}, nil
	case "transparent", "none":
		return drawing.ColorTransparent, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, errors.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return drawing.Color{}, errors.Errorf("invalid color %q", s)
		}
	}
	return drawing.ColorFromHex(hex), nil
}

// ParseData decodes a data file. Names ending in .yaml or .yml are read as
// YAML, everything else as JSON.
func ParseData(name string, b []byte) (*DataFile, error) {
	df := &DataFile{}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, df); err != nil {
			return nil, errors.Wrapf(err, "decode yaml %s", name)
		}
	default:
		if err := json.Unmarshal(b, df); err != nil {
			return nil, errors.Wrapf(err, "decode json %s", name)
		}
	}
	return df, nil
}

func LoadFile(path string) (*DataFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return ParseData(path, b)
}

// ToSlices converts the entries, filling missing colors from the palette and
// rejecting negative values.
func (df *DataFile) ToSlices() ([]Slice, error) {
	slices := make([]Slice, len(df.Slices))
	for i, e := range df.Slices {
		c, err := ParseColor(e.Color)
		if err != nil {
			return nil, errors.Wrapf(err, "slice %d (%q)", i, e.Label)
		}
		slices[i] = Slice{Label: e.Label, Value: e.Value, Color: c}
	}
	if err := validateSlices(slices); err != nil {
		return nil, err
	}
	return SlicePalette{}.FillColors(slices), nil
}

// Apply loads the file's contents into c. Thickness and background are only
// touched when the file sets them.
func (df *DataFile) Apply(c *Chart) error {
	slices, err := df.ToSlices()
	if err != nil {
		return err
	}
	if df.Background != "" {
		bg, err := ParseColor(df.Background)
		if err != nil {
			return errors.Wrap(err, "background")
		}
		c.SetBackgroundColor(bg)
	}
	if df.Thickness != nil {
		c.SetThicknessRatio(*df.Thickness)
	}
	c.SetSlices(slices)
	return nil
}
