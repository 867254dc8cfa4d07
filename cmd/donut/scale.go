//go:build !arm && !android && !ios

package main

import (
	"github.com/kbinani/screenshot"
	"image"
)

// displayBounds is the size of the primary display, used to size the viewer.
func displayBounds() image.Rectangle {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}
	}
	return screenshot.GetDisplayBounds(0)
}
