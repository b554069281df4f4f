package chart

import "fmt"

// InvalidSurfaceError is returned when a surface is too small to lay out a chart.
type InvalidSurfaceError struct {
	Width  int
	Height int
}

func (e *InvalidSurfaceError) Error() string {
	return fmt.Sprintf("invalid chart surface %dx%d (minimum %dx%d)", e.Width, e.Height, MinSurfaceWidth, MinSurfaceHeight)
}
