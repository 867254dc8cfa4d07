package main

import (
	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/canvas"
	"fyne.io/fyne/theme"
	"github.com/frameloss/donut"
	"github.com/frameloss/prettyfyne"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"image"
	"image/color"
	"sync/atomic"
	"time"
)

func toDrawing(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// windowEnvironment reports the window theme as the chart's container.
type windowEnvironment struct{}

func (windowEnvironment) IsDesignTimePreview() bool {
	return false
}

func (windowEnvironment) ResolvedBackgroundColor() (drawing.Color, bool) {
	return toDrawing(theme.BackgroundColor()), true
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show a chart in a desktop window, redrawn when the data file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := loadChart()
			if err != nil {
				return err
			}
			fonts, err := loadFonts()
			if err != nil {
				return err
			}
			return runViewer(chart, fonts, viper.GetString("data"), viper.GetBool("full"))
		},
	}
	cmd.Flags().Bool("full", false, "start in full-screen mode")
	return cmd
}

func runViewer(chart *donut.Chart, fonts donut.Fonts, dataPath string, fullscreen bool) error {
	title := "Donut - " + dataPath
	me := app.NewWithID("org.frameloss.donut")

	th := prettyfyne.ExampleDracula
	th.TextSize = 13
	me.Settings().SetTheme(th.ToFyneTheme())

	chart.SetEnvironment(windowEnvironment{})
	renderer := donut.NewRenderer(
		donut.WithLogger(log),
		donut.WithFontSize(viper.GetFloat64("font-size")),
		donut.WithLegendTextColor(toDrawing(theme.TextColor())),
	)

	win := me.NewWindow(title)
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillContain
	win.SetContent(img)

	// set by chart changes, cleared once the frame is redrawn
	var dirty int32 = 1
	cancel := chart.Subscribe(func() {
		atomic.StoreInt32(&dirty, 1)
	})
	defer cancel()

	p := message.NewPrinter(language.AmericanEnglish)
	done := make(chan struct{})
	var lastSize fyne.Size
	redraw := func() {
		size := win.Canvas().Size()
		if size == lastSize && atomic.LoadInt32(&dirty) == 0 {
			return
		}
		scale := win.Canvas().Scale()
		w, h := int(float32(size.Width)*scale), int(float32(size.Height)*scale)
		if w <= 0 || h <= 0 {
			return
		}
		atomic.StoreInt32(&dirty, 0)
		lastSize = size
		s, err := donut.NewRasterSurface(w, h, fonts)
		if err != nil {
			log.Error("raster surface", zap.Error(err))
			return
		}
		stats := renderer.Render(s, w, h, chart.Snapshot())
		img.Image = s.Image()
		img.Refresh()
		win.SetTitle(p.Sprintf("%s (%d slices, total %v)", title, stats.Slices, stats.Total))
	}

	go func() {
		tick := time.NewTicker(250 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				redraw()
			}
		}
	}()
	go watchData(chart, dataPath, time.Second, done)

	win.SetOnClosed(func() {
		close(done)
	})

	rect := displayBounds()
	if fullscreen || rect.Dy() == 0 {
		win.SetFullScreen(true)
	} else {
		win.Resize(fyne.NewSize(rect.Dx()/3, rect.Dy()/3))
	}
	win.SetMaster()
	win.ShowAndRun()
	return nil
}
