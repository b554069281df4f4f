package uihelpers

import (
	"image/color"
	"path/filepath"
)

// ControlID names one of the action buttons.
type ControlID int

const (
	Upload ControlID = iota
	Analyze
	Save
	Restart
	FetchLocation
	Tag
)

// Controls lists every button in display order.
var Controls = []ControlID{Upload, Analyze, Save, Restart, FetchLocation, Tag}

func (id ControlID) String() string {
	switch id {
	case Upload:
		return "upload"
	case Analyze:
		return "analyze"
	case Save:
		return "save"
	case Restart:
		return "restart"
	case FetchLocation:
		return "fetch-location"
	case Tag:
		return "tag"
	}
	return "unknown"
}

// ButtonState is the visual state of a button.
type ButtonState int

const (
	StateNormal ButtonState = iota
	StateHover
	StatePressed
	StateDisabled
)

// Palette holds the colours of one button state.
type Palette struct {
	Fill   color.NRGBA
	Border color.NRGBA
	Text   color.NRGBA
}

// Style describes how a button is drawn.
type Style struct {
	Label        string
	CornerRadius float32
	Normal       Palette
	Hover        Palette
	Pressed      Palette
	Disabled     Palette
}

var (
	green        = color.NRGBA{R: 16, G: 160, B: 70, A: 255}
	greenHover   = color.NRGBA{R: 24, G: 200, B: 90, A: 255}
	greenActive  = color.NRGBA{R: 12, G: 130, B: 55, A: 255}
	white        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	disabledFill = color.NRGBA{R: 45, G: 45, B: 45, A: 255}
	disabledLine = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	disabledText = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
)

// GreenStyle is the style shared by all action buttons.
func GreenStyle(label string) Style {
	return Style{
		Label:        label,
		CornerRadius: 10,
		Normal:       Palette{Fill: green, Border: green, Text: white},
		Hover:        Palette{Fill: greenHover, Border: green, Text: white},
		Pressed:      Palette{Fill: greenActive, Border: green, Text: white},
		Disabled:     Palette{Fill: disabledFill, Border: disabledLine, Text: disabledText},
	}
}

// Colors resolves the palette for a state.
func (s Style) Colors(st ButtonState) Palette {
	switch st {
	case StateHover:
		return s.Hover
	case StatePressed:
		return s.Pressed
	case StateDisabled:
		return s.Disabled
	default:
		return s.Normal
	}
}

// ComputeChartDimensions fits two side-by-side charts separated by gap into
// the available width, keeping the 330:260 aspect of the default charts and
// never going below the renderer minimum of 200x150.
func ComputeChartDimensions(availW, gap int) (int, int) {
	w := (availW - gap) / 2
	if w < 200 {
		w = 200
	}
	if w > 660 {
		w = 660
	}
	h := w * 260 / 330
	if h < 150 {
		h = 150
	}
	return w, h
}

// TruncatePath shortens p to about n characters, always keeping the file name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
