package chart

import (
	"fmt"
	"image"
	"math"

	"github.com/iafilius/GrainEye/src/grain"
)

// Plot margins reserve room for the title, tick labels and axis labels.
const (
	MarginLeft   = 60
	MarginRight  = 30
	MarginTop    = 50
	MarginBottom = 50

	MinSurfaceWidth  = 200
	MinSurfaceHeight = 150

	HorizontalBands = 5
	VerticalBands   = 10

	// A histogram bar is 1/15 of the plot width.
	BarWidthDivisor = 15
	MarkerRadius    = 4
	CurveWidth      = 3
	AxisWidth       = 2
)

// Kind selects which chart is drawn.
type Kind int

const (
	Histogram Kind = iota
	Cumulative
)

func (k Kind) String() string {
	switch k {
	case Histogram:
		return "histogram"
	case Cumulative:
		return "cumulative"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Title is the default surface title for the kind.
func (k Kind) Title() string {
	if k == Cumulative {
		return "Cumulative Grain Size Curve"
	}
	return "Grain Size Distribution"
}

// YLabel is the vertical axis caption.
func (k Kind) YLabel() string {
	if k == Cumulative {
		return "Cumulative % Passing"
	}
	return "Frequency"
}

// FileStem is the base file name used when the chart is exported.
func (k Kind) FileStem() string {
	if k == Cumulative {
		return "cumulative_curve"
	}
	return "grain_size_distribution"
}

// XLabel is shared by both charts.
const XLabel = "Grain Size (mm)"

// Surface is the region of a canvas a chart is drawn into.
type Surface struct {
	Bounds image.Rectangle
	Title  string
}

// Validate rejects surfaces too small for the fixed margins.
func (s Surface) Validate() error {
	if s.Bounds.Dx() < MinSurfaceWidth || s.Bounds.Dy() < MinSurfaceHeight {
		return &InvalidSurfaceError{Width: s.Bounds.Dx(), Height: s.Bounds.Dy()}
	}
	return nil
}

// Layout is the resolved geometry of one chart surface.
type Layout struct {
	Bounds image.Rectangle
	Plot   image.Rectangle
	// HGrid holds the y of each horizontal gridline, bottom first.
	HGrid []int
	// VGrid holds the x of each vertical gridline, left first.
	VGrid []int
}

// NewLayout insets the plotting rectangle and spaces the gridlines.
func NewLayout(s Surface) (Layout, error) {
	if err := s.Validate(); err != nil {
		return Layout{}, err
	}
	b := s.Bounds
	plot := image.Rect(b.Min.X+MarginLeft, b.Min.Y+MarginTop, b.Max.X-MarginRight, b.Max.Y-MarginBottom)
	l := Layout{Bounds: b, Plot: plot}
	for i := 0; i <= HorizontalBands; i++ {
		l.HGrid = append(l.HGrid, plot.Max.Y-i*plot.Dy()/HorizontalBands)
	}
	for i := 0; i <= VerticalBands; i++ {
		l.VGrid = append(l.VGrid, plot.Min.X+i*plot.Dx()/VerticalBands)
	}
	return l, nil
}

// BarWidth returns the histogram bar width for a plot.
func BarWidth(plot image.Rectangle) int { return plot.Dx() / BarWidthDivisor }

// HistogramBars returns one bottom-anchored rectangle per bin. Heights are
// scaled against the tallest bin so it always reaches the top of the plot.
func HistogramBars(plot image.Rectangle, ds grain.Dataset) ([]image.Rectangle, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	barW := BarWidth(plot)
	track := float64(plot.Dx() - barW)
	maxCount := float64(ds.MaxCount())
	bars := make([]image.Rectangle, len(ds))
	for i, b := range ds {
		h := int(math.Round(float64(b.Count) / maxCount * float64(plot.Dy())))
		x := plot.Min.X + int(math.Round(ds.Normalized(b.DiameterMM)*track))
		bars[i] = image.Rect(x, plot.Max.Y-h, x+barW, plot.Max.Y)
	}
	return bars, nil
}

// CurvePoints maps each bin to its cumulative-percentage point in the plot.
// 100% sits on the top edge.
func CurvePoints(plot image.Rectangle, ds grain.Dataset) ([]image.Point, error) {
	cum, err := ds.Cumulative()
	if err != nil {
		return nil, err
	}
	pts := make([]image.Point, len(ds))
	for i, b := range ds {
		x := plot.Min.X + int(math.Round(ds.Normalized(b.DiameterMM)*float64(plot.Dx())))
		y := plot.Max.Y - int(math.Round(cum[i]/100*float64(plot.Dy())))
		pts[i] = image.Pt(x, y)
	}
	return pts, nil
}
