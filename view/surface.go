package view

import "image/color"

// Surface is a 2D drawing target. Coordinates are in stage units with the
// origin at the top-left corner.
type Surface interface {
	ClearRect(x, y, w, h int)
	FillRect(x, y, w, h int, c color.Color)
}

// Colours used by the renderers.
var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
