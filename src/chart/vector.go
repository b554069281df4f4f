package chart

import (
	"fmt"
	"image"
	"image/color"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// VectorCanvas emits SVG through the go-chart vector renderer. The SVG
// renderer has no clip paths, so text that would cross the active clip is
// shortened with an ellipsis instead. Shapes are laid out inside the surface.
type VectorCanvas struct {
	r     gochart.Renderer
	clips []image.Rectangle
}

// NewVectorCanvas creates an SVG document of the given size. Font sizes are
// interpreted as pixels.
func NewVectorCanvas(width, height int) (*VectorCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidSurfaceError{Width: width, Height: height}
	}
	r, err := gochart.SVG(width, height)
	if err != nil {
		return nil, fmt.Errorf("svg renderer: %w", err)
	}
	f, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load chart font: %w", err)
	}
	r.SetDPI(72)
	r.SetFont(f)
	return &VectorCanvas{r: r}, nil
}

func drawingColor(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (v *VectorCanvas) PushClip(r image.Rectangle) {
	if n := len(v.clips); n > 0 {
		r = r.Intersect(v.clips[n-1])
	}
	v.clips = append(v.clips, r)
}

func (v *VectorCanvas) PopClip() {
	if n := len(v.clips); n > 0 {
		v.clips = v.clips[:n-1]
	}
}

// fit shortens s until it measures at most avail pixels along the baseline.
func (v *VectorCanvas) fit(s string, avail int) string {
	if v.r.MeasureText(s).Width() <= avail {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		if t := string(rs) + "…"; v.r.MeasureText(t).Width() <= avail {
			return t
		}
	}
	return ""
}

func (v *VectorCanvas) rectPath(r image.Rectangle) {
	v.r.MoveTo(r.Min.X, r.Min.Y)
	v.r.LineTo(r.Max.X, r.Min.Y)
	v.r.LineTo(r.Max.X, r.Max.Y)
	v.r.LineTo(r.Min.X, r.Max.Y)
	v.r.Close()
}

func (v *VectorCanvas) FillRect(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	v.r.ResetStyle()
	v.r.SetFillColor(drawingColor(c))
	v.rectPath(r)
	v.r.Fill()
}

func (v *VectorCanvas) StrokeRect(r image.Rectangle, c color.Color, width float64) {
	if r.Empty() {
		return
	}
	v.r.ResetStyle()
	v.r.SetStrokeColor(drawingColor(c))
	v.r.SetStrokeWidth(width)
	v.rectPath(r)
	v.r.Stroke()
}

func (v *VectorCanvas) StrokeRoundedRect(r image.Rectangle, radius float64, c color.Color, width float64) {
	if r.Empty() {
		return
	}
	rad := int(radius)
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	v.r.ResetStyle()
	v.r.SetStrokeColor(drawingColor(c))
	v.r.SetStrokeWidth(width)
	v.r.MoveTo(x0+rad, y0)
	v.r.LineTo(x1-rad, y0)
	v.r.QuadCurveTo(x1, y0, x1, y0+rad)
	v.r.LineTo(x1, y1-rad)
	v.r.QuadCurveTo(x1, y1, x1-rad, y1)
	v.r.LineTo(x0+rad, y1)
	v.r.QuadCurveTo(x0, y1, x0, y1-rad)
	v.r.LineTo(x0, y0+rad)
	v.r.QuadCurveTo(x0, y0, x0+rad, y0)
	v.r.Close()
	v.r.Stroke()
}

func (v *VectorCanvas) Line(from, to image.Point, c color.Color, width float64) {
	v.r.ResetStyle()
	v.r.SetStrokeColor(drawingColor(c))
	v.r.SetStrokeWidth(width)
	v.r.MoveTo(from.X, from.Y)
	v.r.LineTo(to.X, to.Y)
	v.r.Stroke()
}

func (v *VectorCanvas) Polyline(pts []image.Point, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	v.r.ResetStyle()
	v.r.SetStrokeColor(drawingColor(c))
	v.r.SetStrokeWidth(width)
	v.r.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		v.r.LineTo(p.X, p.Y)
	}
	v.r.Stroke()
}

// FillCircle is emitted as an SVG circle element right away by the renderer.
func (v *VectorCanvas) FillCircle(center image.Point, radius float64, c color.Color) {
	v.r.ResetStyle()
	v.r.SetFillColor(drawingColor(c))
	v.r.SetStrokeColor(drawingColor(c))
	v.r.Circle(radius, center.X, center.Y)
}

func (v *VectorCanvas) Text(s string, center image.Point, style TextStyle) {
	if s == "" {
		return
	}
	v.r.ResetStyle()
	v.r.SetFontColor(drawingColor(style.Color))
	v.r.SetFontSize(style.Size)
	if n := len(v.clips); n > 0 {
		clip := v.clips[n-1]
		if !center.In(clip) {
			return
		}
		avail := 2 * min(center.X-clip.Min.X, clip.Max.X-center.X)
		if style.Rotation == Vertical {
			avail = 2 * min(center.Y-clip.Min.Y, clip.Max.Y-center.Y)
		}
		if s = v.fit(s, avail); s == "" {
			return
		}
	}
	box := v.r.MeasureText(s)
	w, h := box.Width(), box.Height()
	if style.Rotation == Vertical {
		// Rotated about the baseline origin: glyphs extend left of x and above y.
		v.r.SetTextRotation(gochart.DegreesToRadians(270))
		v.r.Text(s, center.X+h/2, center.Y+w/2)
		v.r.ClearTextRotation()
		return
	}
	v.r.Text(s, center.X-w/2, center.Y+h/2)
}

// Save writes the SVG document.
func (v *VectorCanvas) Save(w io.Writer) error {
	return v.r.Save(w)
}
