package chart

import (
	"image"
	"image/color"
)

// Op is one recorded drawing call.
type Op struct {
	Name   string
	Rect   image.Rectangle
	Points []image.Point
	Color  color.Color
	Width  float64
	Radius float64
	Text   string
	Style  TextStyle
}

// Recorder is a Canvas that keeps the calls it receives instead of drawing.
// It backs the renderer tests and the -dump-ops diagnostics of grainchart.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) PushClip(rect image.Rectangle) {
	r.Ops = append(r.Ops, Op{Name: "PushClip", Rect: rect})
}

func (r *Recorder) PopClip() {
	r.Ops = append(r.Ops, Op{Name: "PopClip"})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "FillRect", Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect image.Rectangle, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Name: "StrokeRect", Rect: rect, Color: c, Width: width})
}

func (r *Recorder) StrokeRoundedRect(rect image.Rectangle, radius float64, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Name: "StrokeRoundedRect", Rect: rect, Radius: radius, Color: c, Width: width})
}

func (r *Recorder) Line(from, to image.Point, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Name: "Line", Points: []image.Point{from, to}, Color: c, Width: width})
}

func (r *Recorder) Polyline(pts []image.Point, c color.Color, width float64) {
	cp := append([]image.Point(nil), pts...)
	r.Ops = append(r.Ops, Op{Name: "Polyline", Points: cp, Color: c, Width: width})
}

func (r *Recorder) FillCircle(center image.Point, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "FillCircle", Points: []image.Point{center}, Radius: radius, Color: c})
}

func (r *Recorder) Text(s string, center image.Point, style TextStyle) {
	r.Ops = append(r.Ops, Op{Name: "Text", Points: []image.Point{center}, Text: s, Style: style})
}

// Filter returns the recorded ops with the given name.
func (r *Recorder) Filter(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Extent returns the smallest rectangle covering every recorded geometry
// (circle radii included, text anchors only). Clip ops are not geometry.
func (r *Recorder) Extent() image.Rectangle {
	var ext image.Rectangle
	add := func(rect image.Rectangle) {
		if ext.Empty() {
			ext = rect
			return
		}
		ext = ext.Union(rect)
	}
	for _, op := range r.Ops {
		if op.Name == "PushClip" || op.Name == "PopClip" {
			continue
		}
		if !op.Rect.Empty() {
			add(op.Rect)
		}
		rad := int(op.Radius + 0.5)
		for _, p := range op.Points {
			add(image.Rect(p.X-rad, p.Y-rad, p.X+rad+1, p.Y+rad+1))
		}
	}
	return ext
}
