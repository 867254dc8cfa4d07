package donut

import (
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"os"
	"sync"
)

// DefaultFontSize matches the 9pt bold face the chart was designed around.
const DefaultFontSize = 9

// Fonts holds the faces surfaces draw text with.
type Fonts struct {
	Regular *truetype.Font
	Bold    *truetype.Font
}

func (f Fonts) Face(spec FontSpec) *truetype.Font {
	if spec.Bold && f.Bold != nil {
		return f.Bold
	}
	if f.Regular != nil {
		return f.Regular
	}
	return f.Bold
}

var (
	defaultFonts     Fonts
	defaultFontsErr  error
	defaultFontsOnce sync.Once
)

// DefaultFonts returns the embedded Go fonts, parsed once.
func DefaultFonts() (Fonts, error) {
	defaultFontsOnce.Do(func() {
		regular, err := truetype.Parse(goregular.TTF)
		if err != nil {
			defaultFontsErr = errors.Wrap(err, "parse regular font")
			return
		}
		bold, err := truetype.Parse(gobold.TTF)
		if err != nil {
			defaultFontsErr = errors.Wrap(err, "parse bold font")
			return
		}
		defaultFonts = Fonts{Regular: regular, Bold: bold}
	})
	return defaultFonts, defaultFontsErr
}

// LoadFont parses a TrueType file, used for both the regular and bold face.
func LoadFont(path string) (Fonts, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fonts{}, errors.Wrapf(err, "read font %s", path)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return Fonts{}, errors.Wrapf(err, "parse font %s", path)
	}
	return Fonts{Regular: f, Bold: f}, nil
}
