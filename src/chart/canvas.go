// Package chart draws the grain-size charts: a frequency histogram and a
// cumulative percent-passing curve. Layout is computed in integer pixel space
// and emitted as primitive drawing calls on a Canvas, so the same chart can be
// rasterised for the window, written as SVG, or recorded in tests.
package chart

import (
	"image"
	"image/color"
)

// Rotation selects the text direction.
type Rotation int

const (
	// Horizontal text reads left to right.
	Horizontal Rotation = iota
	// Vertical text is turned 90° counter-clockwise and reads bottom to top.
	Vertical
)

// TextStyle describes a text run. Size is in pixels.
type TextStyle struct {
	Color    color.Color
	Size     float64
	Rotation Rotation
}

// Canvas is the set of primitives the renderer needs. Coordinates are pixels
// with the origin at the top-left corner. Text is centred on the given point.
// Drawing between PushClip and the matching PopClip leaves everything outside
// the clip rectangle untouched.
type Canvas interface {
	PushClip(r image.Rectangle)
	PopClip()

	FillRect(r image.Rectangle, c color.Color)
	StrokeRect(r image.Rectangle, c color.Color, width float64)
	StrokeRoundedRect(r image.Rectangle, radius float64, c color.Color, width float64)
	Line(from, to image.Point, c color.Color, width float64)
	Polyline(pts []image.Point, c color.Color, width float64)
	FillCircle(center image.Point, radius float64, c color.Color)
	Text(s string, center image.Point, style TextStyle)
}
