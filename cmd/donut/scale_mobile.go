//go:build arm || android || ios

package main

import "image"

// displayBounds is a noop on mobile platforms, always full screen
func displayBounds() image.Rectangle {
	return image.Rectangle{}
}
