package chart

import (
	"image"
	"math"
	"strconv"

	"github.com/iafilius/GrainEye/src/grain"
)

// Tick is a label anchored at a pixel position.
type Tick struct {
	At    image.Point
	Label string
}

// FormatTick provides a compact label: integers stay integers, sub-unit values
// keep two significant decimals.
func FormatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == math.Trunc(av) && av < 1e6:
		return strconv.FormatInt(int64(v), 10)
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// yTicks labels each horizontal gridline with its data value.
func yTicks(l Layout, kind Kind, ds grain.Dataset) []Tick {
	top := 100.0
	if kind == Histogram {
		top = float64(ds.MaxCount())
	}
	ticks := make([]Tick, 0, len(l.HGrid))
	for i, y := range l.HGrid {
		v := top * float64(i) / HorizontalBands
		if kind == Histogram {
			v = math.Round(v*10) / 10
		}
		ticks = append(ticks, Tick{At: image.Pt(l.Plot.Min.X-16, y), Label: FormatTick(v)})
	}
	return ticks
}

// xTicks labels every second bin under its bar centre or curve point.
func xTicks(l Layout, xs []int, ds grain.Dataset) []Tick {
	ticks := make([]Tick, 0, len(ds)/2+1)
	for i := 0; i < len(ds); i += 2 {
		ticks = append(ticks, Tick{At: image.Pt(xs[i], l.Plot.Max.Y+11), Label: FormatTick(ds[i].DiameterMM)})
	}
	return ticks
}
