package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/iafilius/GrainEye/src/grain"
)

// PairGap is the horizontal space between the two charts of a pair.
const PairGap = 20

// SurfaceAllocator hands out off-screen buffers for chart regions.
type SurfaceAllocator interface {
	Allocate(width, height int) (*RasterCanvas, error)
}

// Allocator creates RasterCanvas buffers pre-filled with Background.
// A nil Background leaves the buffer transparent.
type Allocator struct {
	Background color.Color
}

func (a Allocator) Allocate(width, height int) (*RasterCanvas, error) {
	cv, err := NewRasterCanvas(width, height)
	if err != nil {
		return nil, err
	}
	if a.Background != nil {
		cv.Clear(a.Background)
	}
	return cv, nil
}

// Composite copies the finished buffer onto dst with its top-left corner at at.
func Composite(dst draw.Image, at image.Point, src *RasterCanvas) {
	img := src.Image()
	r := img.Bounds().Sub(img.Bounds().Min).Add(at)
	draw.Draw(dst, r, img, img.Bounds().Min, draw.Over)
}

// RenderPair draws the histogram and the cumulative curve side by side into
// one buffer of (2*width+PairGap)×height. The caller owns the returned canvas.
func RenderPair(alloc SurfaceAllocator, width, height int, ds grain.Dataset, opts ...Option) (*RasterCanvas, error) {
	left := Surface{Bounds: image.Rect(0, 0, width, height)}
	right := Surface{Bounds: image.Rect(width+PairGap, 0, 2*width+PairGap, height)}
	if err := left.Validate(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	cv, err := alloc.Allocate(2*width+PairGap, height)
	if err != nil {
		return nil, fmt.Errorf("allocate chart buffer: %w", err)
	}
	if err := Render(cv, left, Histogram, ds, opts...); err != nil {
		_ = cv.Close()
		return nil, err
	}
	if err := Render(cv, right, Cumulative, ds, opts...); err != nil {
		_ = cv.Close()
		return nil, err
	}
	if err := cv.Err(); err != nil {
		_ = cv.Close()
		return nil, fmt.Errorf("rasterize charts: %w", err)
	}
	return cv, nil
}
