package chart

import (
	"fmt"
	"image"

	"github.com/iafilius/GrainEye/src/grain"
)

type config struct {
	theme Theme
	ticks bool
}

// Option tunes a Render call.
type Option func(*config)

// WithTheme overrides the default dark theme.
func WithTheme(t Theme) Option { return func(c *config) { c.theme = t } }

// WithTicks adds value labels along both axes.
func WithTicks(on bool) Option { return func(c *config) { c.ticks = on } }

func newConfig(opts []Option) config {
	c := config{theme: DefaultTheme()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Render draws one chart of the given kind into s.Bounds on cv. All geometry is
// resolved before the first drawing call, so a rejected surface or dataset
// leaves the canvas untouched. Drawing is clipped to s.Bounds.
func Render(cv Canvas, s Surface, kind Kind, ds grain.Dataset, opts ...Option) error {
	l, err := NewLayout(s)
	if err != nil {
		return err
	}
	cfg := newConfig(opts)
	th := cfg.theme

	var (
		bars []image.Rectangle
		pts  []image.Point
		xs   []int
	)
	switch kind {
	case Histogram:
		if bars, err = HistogramBars(l.Plot, ds); err != nil {
			return err
		}
		for _, b := range bars {
			xs = append(xs, b.Min.X+b.Dx()/2)
		}
	case Cumulative:
		if pts, err = CurvePoints(l.Plot, ds); err != nil {
			return err
		}
		for _, p := range pts {
			xs = append(xs, p.X)
		}
	default:
		return fmt.Errorf("unknown chart kind %v", kind)
	}
	title := s.Title
	if title == "" {
		title = kind.Title()
	}

	b := l.Bounds
	cv.PushClip(b)
	defer cv.PopClip()
	cv.FillRect(b, th.Background)
	cv.StrokeRoundedRect(b, 10, th.Frame, 1)
	cv.Text(title, image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+23), TextStyle{Color: th.Text, Size: th.TitleSize})

	for _, y := range l.HGrid {
		cv.Line(image.Pt(l.Plot.Min.X, y), image.Pt(l.Plot.Max.X, y), th.Grid, 1)
	}
	for _, x := range l.VGrid {
		cv.Line(image.Pt(x, l.Plot.Min.Y), image.Pt(x, l.Plot.Max.Y), th.Grid, 1)
	}
	cv.Line(image.Pt(l.Plot.Min.X, l.Plot.Max.Y), image.Pt(l.Plot.Max.X, l.Plot.Max.Y), th.Axis, AxisWidth)
	cv.Line(image.Pt(l.Plot.Min.X, l.Plot.Min.Y), image.Pt(l.Plot.Min.X, l.Plot.Max.Y), th.Axis, AxisWidth)

	switch kind {
	case Histogram:
		for _, r := range bars {
			if r.Empty() {
				continue
			}
			cv.FillRect(r, th.Bar)
			cv.StrokeRect(r, th.BarBorder, 1)
		}
	case Cumulative:
		cv.Polyline(pts, th.Line, CurveWidth)
		for _, p := range pts {
			cv.FillCircle(p, MarkerRadius, th.Line)
		}
	}

	xLabelY := b.Max.Y - 32
	if cfg.ticks {
		tickStyle := TextStyle{Color: th.Text, Size: th.TickSize}
		for _, t := range yTicks(l, kind, ds) {
			cv.Text(t.Label, t.At, tickStyle)
		}
		for _, t := range xTicks(l, xs, ds) {
			cv.Text(t.Label, t.At, tickStyle)
		}
		xLabelY = b.Max.Y - 14
	}
	labelStyle := TextStyle{Color: th.Text, Size: th.LabelSize}
	cv.Text(XLabel, image.Pt(b.Min.X+b.Dx()/2, xLabelY), labelStyle)
	labelStyle.Rotation = Vertical
	cv.Text(kind.YLabel(), image.Pt(b.Min.X+22, l.Plot.Min.Y+l.Plot.Dy()/2), labelStyle)
	return nil
}
