package chart

import "image/color"

// Theme holds the colours and text sizes used by Render.
type Theme struct {
	Background color.Color
	Frame      color.Color
	Grid       color.Color
	Axis       color.Color
	Text       color.Color
	Bar        color.Color
	BarBorder  color.Color
	Line       color.Color

	TitleSize float64
	LabelSize float64
	TickSize  float64
}

// DefaultTheme is the dark card look of the desktop client: #121212 background,
// #aaaaaa frame, grid and text, emerald #2ecc71 data.
func DefaultTheme() Theme {
	grey := color.RGBA{R: 170, G: 170, B: 170, A: 255}
	emerald := color.RGBA{R: 46, G: 204, B: 113, A: 255}
	return Theme{
		Background: color.RGBA{R: 18, G: 18, B: 18, A: 255},
		Frame:      grey,
		Grid:       grey,
		Axis:       grey,
		Text:       grey,
		Bar:        emerald,
		BarBorder:  grey,
		Line:       emerald,
		TitleSize:  16,
		LabelSize:  15,
		TickSize:   11,
	}
}

// LightTheme is used for exports meant for printing.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	t.Frame = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	t.Grid = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	t.Axis = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	t.Text = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	t.BarBorder = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	t.Bar = color.RGBA{R: 39, G: 174, B: 96, A: 255}
	t.Line = t.Bar
	return t
}
