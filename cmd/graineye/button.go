package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/GrainEye/cmd/graineye/uihelpers"
)

// modernButton is a rounded, flat button whose colours come from the
// registry entry of its control.
type modernButton struct {
	widget.BaseWidget
	id    uihelpers.ControlID
	reg   *uihelpers.Registry
	onTap func()
}

func newModernButton(reg *uihelpers.Registry, id uihelpers.ControlID, onTap func()) *modernButton {
	b := &modernButton{id: id, reg: reg, onTap: onTap}
	b.ExtendBaseWidget(b)
	return b
}

func (b *modernButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(nil)
	label := canvas.NewText("", nil)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = 15
	r := &modernButtonRenderer{b: b, bg: bg, label: label, objs: []fyne.CanvasObject{bg, label}}
	r.Refresh()
	return r
}

func (b *modernButton) Tapped(*fyne.PointEvent) {
	if !b.reg.Enabled(b.id) || b.onTap == nil {
		return
	}
	b.onTap()
}

func (b *modernButton) MouseIn(*desktop.MouseEvent) {
	b.reg.SetHovered(b.id, true)
	b.Refresh()
}

func (b *modernButton) MouseMoved(*desktop.MouseEvent) {}

func (b *modernButton) MouseOut() {
	b.reg.SetHovered(b.id, false)
	b.Refresh()
}

func (b *modernButton) MouseDown(*desktop.MouseEvent) {
	b.reg.SetPressed(b.id, true)
	b.Refresh()
}

func (b *modernButton) MouseUp(*desktop.MouseEvent) {
	b.reg.SetPressed(b.id, false)
	b.Refresh()
}

type modernButtonRenderer struct {
	b     *modernButton
	bg    *canvas.Rectangle
	label *canvas.Text
	objs  []fyne.CanvasObject
}

func (r *modernButtonRenderer) Destroy() {}

func (r *modernButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	ts := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width-12, ts.Height))
	r.label.Move(fyne.NewPos(6, (size.Height-ts.Height)/2))
}

func (r *modernButtonRenderer) MinSize() fyne.Size {
	ts := r.label.MinSize()
	return fyne.NewSize(ts.Width+32, 45)
}

func (r *modernButtonRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *modernButtonRenderer) Refresh() {
	c := r.b.reg.Get(r.b.id)
	if c == nil {
		return
	}
	p := c.Style.Colors(c.State)
	r.bg.FillColor = p.Fill
	r.bg.StrokeColor = p.Border
	r.bg.StrokeWidth = 1
	r.bg.CornerRadius = c.Style.CornerRadius
	r.label.Text = c.Style.Label
	r.label.Color = p.Text
	r.bg.Refresh()
	r.label.Refresh()
}
