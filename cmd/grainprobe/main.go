package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/GrainEye/src/chart"
	"github.com/iafilius/GrainEye/src/grain"
)

// grainprobe opens a window with the reference charts and closes it again,
// to check that the toolkit, the rasterizer and fyne.Do work on this machine.
func main() {
	hold := flag.Duration("hold", 5*time.Second, "How long to keep the window open")
	flag.Parse()

	fmt.Println("[grainprobe] rendering reference charts")
	cv, err := chart.RenderPair(chart.Allocator{Background: chart.DefaultTheme().Background}, 330, 260, grain.DefaultDataset())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[grainprobe] render: %v\n", err)
		os.Exit(1)
	}
	img := cv.Image()
	_ = cv.Close()

	a := app.New()
	w := a.NewWindow("GrainEye Probe")
	chartImg := canvas.NewImageFromImage(img)
	chartImg.FillMode = canvas.ImageFillOriginal
	w.SetContent(container.NewBorder(nil,
		widget.NewLabel(fmt.Sprintf("Reference charts - window will close in %s", *hold)), nil, nil, chartImg))
	go func() {
		time.Sleep(*hold)
		fmt.Println("[grainprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[grainprobe] exited cleanly")
}
