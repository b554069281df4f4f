package chart

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iafilius/GrainEye/src/grain"
)

func defaultSurface() Surface {
	return Surface{Bounds: image.Rect(0, 0, 330, 260)}
}

func TestNewLayoutMarginsAndGrid(t *testing.T) {
	l, err := NewLayout(defaultSurface())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if want := image.Rect(60, 50, 300, 210); l.Plot != want {
		t.Fatalf("plot = %v, want %v", l.Plot, want)
	}
	if diff := cmp.Diff([]int{210, 178, 146, 114, 82, 50}, l.HGrid); diff != "" {
		t.Fatalf("hgrid mismatch (-want +got):\n%s", diff)
	}
	if len(l.VGrid) != VerticalBands+1 || l.VGrid[0] != 60 || l.VGrid[VerticalBands] != 300 {
		t.Fatalf("vgrid = %v", l.VGrid)
	}
}

func TestNewLayoutRejectsSmallSurfaces(t *testing.T) {
	cases := []image.Rectangle{
		image.Rect(0, 0, 0, 0),
		image.Rect(0, 0, 199, 260),
		image.Rect(0, 0, 330, 149),
		image.Rect(10, 10, 0, 0),
	}
	for _, r := range cases {
		_, err := NewLayout(Surface{Bounds: r})
		var se *InvalidSurfaceError
		if !errors.As(err, &se) {
			t.Fatalf("%v: expected InvalidSurfaceError, got %v", r, err)
		}
	}
	if _, err := NewLayout(Surface{Bounds: image.Rect(0, 0, MinSurfaceWidth, MinSurfaceHeight)}); err != nil {
		t.Fatalf("minimum surface rejected: %v", err)
	}
}

func TestHistogramBarsGeometry(t *testing.T) {
	l, _ := NewLayout(defaultSurface())
	bars, err := HistogramBars(l.Plot, grain.DefaultDataset())
	if err != nil {
		t.Fatalf("bars: %v", err)
	}
	if len(bars) != 10 {
		t.Fatalf("expected 10 bars, got %d", len(bars))
	}
	want := map[int]image.Rectangle{
		0: image.Rect(60, 178, 76, 210),
		3: image.Rect(135, 50, 151, 210),
		9: image.Rect(284, 204, 300, 210),
	}
	for i, r := range want {
		if bars[i] != r {
			t.Errorf("bar %d = %v, want %v", i, bars[i], r)
		}
	}
	for i, b := range bars {
		if b.Max.Y != l.Plot.Max.Y {
			t.Errorf("bar %d not bottom-anchored: %v", i, b)
		}
		if !b.In(l.Plot) {
			t.Errorf("bar %d escapes plot: %v", i, b)
		}
		if i > 0 && b.Min.X <= bars[i-1].Min.X {
			t.Errorf("bar x not increasing at %d", i)
		}
	}
}

func TestHistogramBarHeightsScaleToMaxCount(t *testing.T) {
	cases := []struct {
		name string
		ds   grain.Dataset
	}{
		{"default", grain.DefaultDataset()},
		{"single non-zero bin", grain.Dataset{{DiameterMM: 0.3, Count: 0}, {DiameterMM: 0.4, Count: 7}, {DiameterMM: 0.5, Count: 0}}},
		{"zero-count bins", grain.Dataset{{DiameterMM: 0.1, Count: 3}, {DiameterMM: 0.2, Count: 0}, {DiameterMM: 0.4, Count: 9}, {DiameterMM: 0.8, Count: 0}, {DiameterMM: 1.6, Count: 1}}},
		{"one bin", grain.Dataset{{DiameterMM: 0.25, Count: 4}}},
		{"uneven", grain.Dataset{{DiameterMM: 0.05, Count: 1}, {DiameterMM: 0.07, Count: 2}, {DiameterMM: 0.3, Count: 3}, {DiameterMM: 0.31, Count: 1000}}},
	}
	surfaces := []Surface{
		defaultSurface(),
		{Bounds: image.Rect(0, 0, MinSurfaceWidth, MinSurfaceHeight)},
		{Bounds: image.Rect(37, 11, 700, 523)},
	}
	for _, tc := range cases {
		for _, s := range surfaces {
			l, err := NewLayout(s)
			if err != nil {
				t.Fatalf("layout: %v", err)
			}
			bars, err := HistogramBars(l.Plot, tc.ds)
			if err != nil {
				t.Fatalf("%s: bars: %v", tc.name, err)
			}
			maxCount := float64(tc.ds.MaxCount())
			for i, b := range bars {
				want := int(math.Round(float64(tc.ds[i].Count) / maxCount * float64(l.Plot.Dy())))
				if got := b.Dy(); got != want {
					t.Errorf("%s %v: bar %d height = %d, want %d", tc.name, s.Bounds, i, got, want)
				}
				if b.Dy() < 0 || b.Dy() > l.Plot.Dy() {
					t.Errorf("%s %v: bar %d height %d outside [0, %d]", tc.name, s.Bounds, i, b.Dy(), l.Plot.Dy())
				}
				if tc.ds[i].Count == tc.ds.MaxCount() && b.Min.Y != l.Plot.Min.Y {
					t.Errorf("%s %v: tallest bar %d does not reach the plot top", tc.name, s.Bounds, i)
				}
			}
		}
	}
}

func TestCurvePointsGeometry(t *testing.T) {
	l, _ := NewLayout(defaultSurface())
	pts, err := CurvePoints(l.Plot, grain.DefaultDataset())
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	if pts[0] != image.Pt(60, 202) {
		t.Fatalf("first point = %v", pts[0])
	}
	if last := pts[len(pts)-1]; last != image.Pt(300, 50) {
		t.Fatalf("last point = %v, want top-right corner", last)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X || pts[i].Y > pts[i-1].Y {
			t.Fatalf("curve not monotone at %d: %v -> %v", i, pts[i-1], pts[i])
		}
	}
}

func TestSingleBinDataset(t *testing.T) {
	l, _ := NewLayout(defaultSurface())
	ds := grain.Dataset{{DiameterMM: 0.3, Count: 4}}
	bars, err := HistogramBars(l.Plot, ds)
	if err != nil {
		t.Fatalf("bars: %v", err)
	}
	if bars[0].Min.X != l.Plot.Min.X || bars[0].Dy() != l.Plot.Dy() {
		t.Fatalf("single bar = %v", bars[0])
	}
	pts, err := CurvePoints(l.Plot, ds)
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	if pts[0] != image.Pt(l.Plot.Min.X, l.Plot.Min.Y) {
		t.Fatalf("single point = %v", pts[0])
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		25:     "25",
		5:      "5",
		0.25:   "0.25",
		12.5:   "12.5",
		150.4:  "150",
		0.005:  "0.0050",
		-0.5:   "-0.50",
		1000.0: "1000",
	}
	for in, want := range cases {
		if got := FormatTick(in); got != want {
			t.Errorf("FormatTick(%v) = %q, want %q", in, got, want)
		}
	}
}
