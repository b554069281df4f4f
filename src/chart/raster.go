package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// defaultFont parses the embedded Go regular font once per process.
func defaultFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// RasterCanvas draws into an RGBA pixel buffer using the gg software rasterizer.
type RasterCanvas struct {
	pm    *gg.Pixmap
	dc    *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face
	clips []clipFrame
	err   error
}

// clipFrame keeps the pixels as they were when the clip was pushed, so
// anything drawn outside r can be put back on pop.
type clipFrame struct {
	r     image.Rectangle
	saved []uint8
}

// NewRasterCanvas allocates a transparent width×height buffer.
func NewRasterCanvas(width, height int) (*RasterCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidSurfaceError{Width: width, Height: height}
	}
	src, err := defaultFont()
	if err != nil {
		return nil, fmt.Errorf("load chart font: %w", err)
	}
	pm := gg.NewPixmap(width, height)
	return &RasterCanvas{
		pm:    pm,
		dc:    gg.NewContext(width, height, gg.WithPixmap(pm)),
		font:  src,
		faces: map[float64]text.Face{},
	}, nil
}

// Width and Height return the buffer size.
func (c *RasterCanvas) Width() int  { return c.dc.Width() }
func (c *RasterCanvas) Height() int { return c.dc.Height() }

// Err returns the first rasterizer failure seen while drawing.
func (c *RasterCanvas) Err() error { return c.err }

func (c *RasterCanvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Clear fills the whole buffer with col.
func (c *RasterCanvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// PushClip limits the visible effect of later drawing to r, intersected with
// any clip already in place.
func (c *RasterCanvas) PushClip(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, c.pm.Width(), c.pm.Height()))
	if n := len(c.clips); n > 0 {
		r = r.Intersect(c.clips[n-1].r)
	}
	c.keep(c.dc.FlushGPU())
	saved := make([]uint8, len(c.pm.Data()))
	copy(saved, c.pm.Data())
	c.clips = append(c.clips, clipFrame{r: r, saved: saved})
}

// PopClip restores every pixel outside the innermost clip.
func (c *RasterCanvas) PopClip() {
	n := len(c.clips)
	if n == 0 {
		return
	}
	f := c.clips[n-1]
	c.clips = c.clips[:n-1]
	c.keep(c.dc.FlushGPU())
	data := c.pm.Data()
	stride := c.pm.Width() * 4
	left, right := f.r.Min.X*4, f.r.Max.X*4
	for y := 0; y < c.pm.Height(); y++ {
		row := data[y*stride : (y+1)*stride]
		old := f.saved[y*stride : (y+1)*stride]
		if f.r.Empty() || y < f.r.Min.Y || y >= f.r.Max.Y {
			copy(row, old)
			continue
		}
		copy(row[:left], old[:left])
		copy(row[right:], old[right:])
	}
}

// crisp shifts odd-width strokes onto pixel centres.
func crisp(v int, width float64) float64 {
	if int(math.Round(width))%2 == 1 {
		return float64(v) + 0.5
	}
	return float64(v)
}

func (c *RasterCanvas) FillRect(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.keep(c.dc.Fill())
}

func (c *RasterCanvas) StrokeRect(r image.Rectangle, col color.Color, width float64) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	x, y := crisp(r.Min.X, width), crisp(r.Min.Y, width)
	c.dc.DrawRectangle(x, y, float64(r.Dx()-1), float64(r.Dy()-1))
	c.keep(c.dc.Stroke())
}

func (c *RasterCanvas) StrokeRoundedRect(r image.Rectangle, radius float64, col color.Color, width float64) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	x, y := crisp(r.Min.X, width), crisp(r.Min.Y, width)
	c.dc.DrawRoundedRectangle(x, y, float64(r.Dx()-1), float64(r.Dy()-1), radius)
	c.keep(c.dc.Stroke())
}

func (c *RasterCanvas) Line(from, to image.Point, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(crisp(from.X, width), crisp(from.Y, width), crisp(to.X, width), crisp(to.Y, width))
	c.keep(c.dc.Stroke())
}

func (c *RasterCanvas) Polyline(pts []image.Point, col color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(crisp(pts[0].X, width), crisp(pts[0].Y, width))
	for _, p := range pts[1:] {
		c.dc.LineTo(crisp(p.X, width), crisp(p.Y, width))
	}
	c.keep(c.dc.Stroke())
}

func (c *RasterCanvas) FillCircle(center image.Point, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(float64(center.X)+0.5, float64(center.Y)+0.5, radius)
	c.keep(c.dc.Fill())
}

func (c *RasterCanvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.font.Face(size)
		c.faces[size] = f
	}
	return f
}

func (c *RasterCanvas) Text(s string, center image.Point, style TextStyle) {
	if s == "" {
		return
	}
	face := c.face(style.Size)
	if style.Rotation == Vertical {
		c.verticalText(s, center, face, style.Color)
		return
	}
	c.dc.SetFont(face)
	c.dc.SetColor(style.Color)
	c.dc.DrawStringAnchored(s, float64(center.X), float64(center.Y), 0.5, 0.5)
}

// verticalText renders s into a scratch buffer, turns it 90° counter-clockwise
// and composites it onto the pixmap.
func (c *RasterCanvas) verticalText(s string, center image.Point, face text.Face, col color.Color) {
	c.dc.SetFont(face)
	w, h := c.dc.MeasureString(s)
	tw, th := int(math.Ceil(w))+2, int(math.Ceil(h))+2
	scratch := gg.NewContext(tw, th)
	defer scratch.Close()
	scratch.SetFont(face)
	scratch.SetColor(col)
	scratch.DrawStringAnchored(s, float64(tw)/2, float64(th)/2, 0.5, 0.5)
	label := rotateCCW(toRGBA(scratch.Image()))

	c.keep(c.dc.FlushGPU())
	at := image.Pt(center.X-label.Bounds().Dx()/2, center.Y-label.Bounds().Dy()/2)
	draw.Draw(c.pixels(), label.Bounds().Add(at), label, image.Point{}, draw.Over)
}

// pixels views the live pixmap as an image without copying.
func (c *RasterCanvas) pixels() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pm.Data(),
		Stride: c.pm.Width() * 4,
		Rect:   image.Rect(0, 0, c.pm.Width(), c.pm.Height()),
	}
}

// rotateCCW turns img 90° counter-clockwise.
func rotateCCW(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetRGBA(y, b.Dx()-1-x, img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Image returns a snapshot of the buffer.
func (c *RasterCanvas) Image() *image.RGBA {
	c.keep(c.dc.FlushGPU())
	return toRGBA(c.dc.Image())
}

// EncodePNG writes the buffer as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the rasterizer state.
func (c *RasterCanvas) Close() error { return c.dc.Close() }
